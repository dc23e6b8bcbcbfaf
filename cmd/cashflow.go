package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/budget"
	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
)

var cashflowCmd = &cobra.Command{
	Use:   "cashflow [month]",
	Short: "Daily cash-flow projection for a month",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCashFlow,
}

func init() {
	rootCmd.AddCommand(cashflowCmd)
}

func runCashFlow(_ *cobra.Command, args []string) error {
	month := int(time.Now().Month())
	if len(args) == 1 {
		m, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid month %q", args[0])
		}
		month = m
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

	premise, err := loadPremise(st, company.ID, year)
	if err != nil {
		return err
	}
	expenses, err := st.ListExpenses(company.ID)
	if err != nil {
		return err
	}
	entries, err := st.ListEntriesByMonth(company.ID, year, month)
	if err != nil {
		return err
	}

	monthlyRevenue := budget.Allocate(premise, month)
	monthlyExpense := model.SumActiveExpenses(expenses)

	days, err := budget.SynthesizeMonth(year, month, monthlyRevenue, monthlyExpense, budget.DropCancelled(entries))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  CASH FLOW  %s %d", company.Name, model.MonthName(month), year)))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		note := ""
		if d.Entry != nil {
			note = d.Entry.Description
		}
		rows = append(rows, []string{
			d.Date.Format("Jan 02"),
			cli.FormatMoney(d.Revenue),
			cli.FormatMoney(d.Expense),
			cli.FormatSignedMoney(d.Net),
			cli.FormatMoney(d.Cumulative),
			note,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Revenue", "Expense", "Net", "Balance", "Entry"},
		Rows:    rows,
	}))

	last := days[len(days)-1]
	fmt.Println()
	fmt.Printf("  Projected monthly revenue: %s\n", cli.FormatMoney(monthlyRevenue))
	fmt.Printf("  Monthly fixed expenses:    %s\n", cli.FormatMoney(monthlyExpense))
	fmt.Printf("  End-of-month balance:      %s\n", cli.FormatSignedMoney(last.Cumulative))

	nets := make([]float64, 0, len(days))
	for _, d := range days {
		f, _ := d.Cumulative.Float64()
		nets = append(nets, f)
	}
	fmt.Printf("\n  Balance: %s\n\n", cli.RenderSparkline(nets))

	return nil
}
