package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/budget"
	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Monthly realized vs planned reconciliation",
	RunE:  runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(_ *cobra.Command, _ []string) error {
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

	if premise == nil && len(actuals) == 0 {
		fmt.Println("\n  Nothing to reconcile yet.")
		fmt.Println("  Set a premise with `orca premise set` and record actuals with `orca actual set`.")
		return nil
	}

	months, summary := budget.Reconcile(premise, actuals)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %d RECONCILIATION", company.Name, year)))
	fmt.Println()

	rows := make([][]string, 0, len(months)+2)
	for _, m := range months {
		rows = append(rows, []string{
			model.MonthName(m.Month),
			cli.FormatMoney(m.Planned),
			cli.FormatMoney(m.Realized),
			cli.FormatSignedMoney(m.Variance),
			cli.FormatPercent(m.PercentRealized),
			cli.RenderStatus(m.Status),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatMoney(summary.TotalPlanned),
		cli.FormatMoney(summary.TotalRealized),
		cli.FormatSignedMoney(summary.Variance),
		cli.FormatPercent(summary.PercentRealized),
		"",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Planned", "Realized", "Variance", "%", "Status"},
		Rows:    rows,
	}))

	if summary.MonthsReported > 0 {
		fmt.Println()
		fmt.Printf("  %d of 12 months reported\n", summary.MonthsReported)
		fmt.Printf("  Best month:  %s\n", model.MonthName(summary.BestMonth))
		fmt.Printf("  Worst month: %s\n", model.MonthName(summary.WorstMonth))
		fmt.Println()
		fmt.Println("  " + cli.RenderProgressBar(summary.TotalRealized, summary.TotalPlanned, 40))
	}
	fmt.Println()

	return nil
}
