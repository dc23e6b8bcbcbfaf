package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/budget"
	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Quick year-to-date overview",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
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
	actuals, err := st.ListActuals(company.ID, year)
	if err != nil {
		return err
	}
	entries, err := st.ListEntriesByYear(company.ID, year)
	if err != nil {
		return err
	}
	expenses, err := st.ListExpenses(company.ID)
	if err != nil {
		return err
	}

	_, summary := budget.Reconcile(premise, actuals)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %d", company.Name, year)))
	fmt.Println()

	if premise == nil {
		fmt.Println("  No premise set. Run `orca premise set --revenue <amount>`.")
	} else {
		fmt.Printf("  Annual target:   %s\n", cli.FormatMoney(premise.AnnualRevenue))
	}
	fmt.Printf("  Realized so far: %s (%s of plan)\n",
		cli.FormatMoney(summary.TotalRealized), cli.FormatPercent(summary.PercentRealized))
	fmt.Printf("  Variance:        %s\n", cli.FormatSignedMoney(summary.Variance))
	fmt.Printf("  Months reported: %d of 12\n", summary.MonthsReported)
	if summary.MonthsReported > 0 {
		fmt.Printf("  Best month:      %s\n", model.MonthName(summary.BestMonth))
		fmt.Printf("  Worst month:     %s\n", model.MonthName(summary.WorstMonth))
	}
	fmt.Println()
	fmt.Printf("  Entries this year:     %d\n", len(entries))
	fmt.Printf("  Fixed expenses/month:  %s\n", cli.FormatMoney(model.SumActiveExpenses(expenses)))
	if summary.TotalPlanned.IsPositive() {
		fmt.Println()
		fmt.Println("  " + cli.RenderProgressBar(summary.TotalRealized, summary.TotalPlanned, 40))
	}
	fmt.Println()

	return nil
}
