package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/budget"
	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
)

var (
	flagPeriodFrom int
	flagPeriodTo   int
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Planned vs realized summary for a month range",
	RunE:  runPeriod,
}

func init() {
	periodCmd.Flags().IntVar(&flagPeriodFrom, "from", 1, "First month of the period (1-12)")
	periodCmd.Flags().IntVar(&flagPeriodTo, "to", 12, "Last month of the period (1-12)")
	rootCmd.AddCommand(periodCmd)
}

func runPeriod(_ *cobra.Command, _ []string) error {
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

	entries, err := st.ListEntriesByYear(company.ID, year)
	if err != nil {
		return err
	}

	summary, err := budget.SummarizePeriod(entries, year, flagPeriodFrom, flagPeriodTo)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s-%s %d",
		company.Name, model.MonthName(flagPeriodFrom), model.MonthName(flagPeriodTo), year)))
	fmt.Println()

	if summary.EntryCount == 0 {
		fmt.Println("  No entries in the selected period.")
		fmt.Println("  Add one with `orca entry add`.")
		fmt.Println()
		return nil
	}

	t := summary.Totals
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Totals",
		Headers: []string{"", "Revenue", "Expense", "Balance"},
		Rows: [][]string{
			{"Realized", cli.FormatMoney(t.RealizedRevenue), cli.FormatMoney(t.RealizedExpense), cli.FormatSignedMoney(t.RealizedBalance)},
			{"Planned", cli.FormatMoney(t.PlannedRevenue), cli.FormatMoney(t.PlannedExpense), cli.FormatSignedMoney(t.PlannedBalance)},
		},
	}))
	fmt.Println()

	monthRows := make([][]string, 0, len(summary.ByMonth))
	for _, m := range summary.ByMonth {
		monthRows = append(monthRows, []string{
			model.MonthName(m.Month),
			cli.FormatMoney(m.Revenue),
			cli.FormatMoney(m.Expense),
			cli.FormatSignedMoney(m.Net),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By month",
		Headers: []string{"Month", "Revenue", "Expense", "Net"},
		Rows:    monthRows,
	}))
	fmt.Println()

	catRows := make([][]string, 0, len(summary.ByCategory))
	var maxAbs float64
	for _, c := range summary.ByCategory {
		f, _ := c.Net.Abs().Float64()
		if f > maxAbs {
			maxAbs = f
		}
		catRows = append(catRows, []string{
			c.Category,
			cli.FormatMoney(c.Revenue),
			cli.FormatMoney(c.Expense),
			cli.FormatSignedMoney(c.Net),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By category",
		Headers: []string{"Category", "Revenue", "Expense", "Net"},
		Rows:    catRows,
	}))

	fmt.Println()
	for _, c := range summary.ByCategory {
		f, _ := c.Net.Float64()
		fmt.Println(cli.RenderHorizontalBar(c.Category, f, maxAbs, 30))
	}
	fmt.Println()

	return nil
}
