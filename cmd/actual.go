package cmd

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
)

var (
	flagActualSource string
	flagActualNote   string
)

var actualCmd = &cobra.Command{
	Use:   "actual",
	Short: "Record and inspect realized monthly revenue",
}

var actualSetCmd = &cobra.Command{
	Use:   "set <month> <amount>",
	Short: "Record realized revenue for a month",
	Args:  cobra.ExactArgs(2),
	RunE:  runActualSet,
}

var actualListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded actuals for the working year",
	RunE:  runActualList,
}

var actualRmCmd = &cobra.Command{
	Use:   "rm <month>",
	Short: "Remove the recorded value for a month",
	Args:  cobra.ExactArgs(1),
	RunE:  runActualRm,
}

func init() {
	actualSetCmd.Flags().StringVar(&flagActualSource, "source", "", "Where the figure came from")
	actualSetCmd.Flags().StringVar(&flagActualNote, "note", "", "Free-form note")

	actualCmd.AddCommand(actualSetCmd)
	actualCmd.AddCommand(actualListCmd)
	actualCmd.AddCommand(actualRmCmd)
	rootCmd.AddCommand(actualCmd)
}

func parseMonthArg(arg string) (int, error) {
	month, err := strconv.Atoi(arg)
	if err != nil || month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month %q, want 1-12", arg)
	}
	return month, nil
}

func runActualSet(_ *cobra.Command, args []string) error {
	month, err := parseMonthArg(args[0])
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	company, err := resolveCompany(st)
	if err != nil {
		return err
	}
	year := resolveYear()

	err = st.UpsertActual(model.MonthlyActual{
		CompanyID: company.ID,
		Year:      year,
		Month:     month,
		Amount:    amount,
		Source:    flagActualSource,
		Note:      flagActualNote,
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Recorded %s for %s %d\n", cli.FormatMoney(amount), model.MonthName(month), year)
	}
	return nil
}

func runActualList(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	company, err := resolveCompany(st)
	if err != nil {
		return err
	}
	year := resolveYear()

	actuals, err := st.ListActuals(company.ID, year)
	if err != nil {
		return err
	}
	if len(actuals) == 0 {
		fmt.Printf("\n  No actuals recorded for %s, %d.\n", company.Name, year)
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(actuals))
	total := decimal.Zero
	for _, a := range actuals {
		total = total.Add(a.Amount)
		rows = append(rows, []string{
			model.MonthName(a.Month),
			cli.FormatMoney(a.Amount),
			a.Source,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatMoney(total), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s  %d actuals", company.Name, year),
		Headers: []string{"Month", "Amount", "Source"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runActualRm(_ *cobra.Command, args []string) error {
	month, err := parseMonthArg(args[0])
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	company, err := resolveCompany(st)
	if err != nil {
		return err
	}
	year := resolveYear()

	if err := st.DeleteActual(company.ID, year, month); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Removed actual for %s %d\n", model.MonthName(month), year)
	}
	return nil
}
