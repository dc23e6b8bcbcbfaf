package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a sample company with demo data",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func runSeed(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	const name = "Demo Company"
	company, err := st.FindCompanyByName(name)
	if errors.Is(err, store.ErrNotFound) {
		company, err = st.AddCompany(name)
	}
	if err != nil {
		return err
	}

	year := 2025

	err = st.SavePremise(model.Premise{
		CompanyID:        company.ID,
		Year:             year,
		AnnualRevenue:    mustDec("186163.52"),
		MonthlyGrowthPct: decimal.Zero,
		Notes:            "demo planning baseline",
	})
	if err != nil {
		return err
	}

	actuals := []string{"175000", "190000", "165000", "180000", "195000", "170000"}
	for i, amount := range actuals {
		err = st.UpsertActual(model.MonthlyActual{
			CompanyID: company.ID,
			Year:      year,
			Month:     i + 1,
			Amount:    mustDec(amount),
			Source:    "demo",
		})
		if err != nil {
			return err
		}
	}

	entries := []model.Entry{
		{Kind: model.KindExpense, Date: time.Date(year, 1, 15, 0, 0, 0, 0, time.UTC),
			Description: "Equipment purchase", Amount: mustDec("15000"), Category: "Equipment", Status: model.StatusRealized},
		{Kind: model.KindRevenue, Date: time.Date(year, 2, 20, 0, 0, 0, 0, time.UTC),
			Description: "Extra project", Amount: mustDec("8500"), Category: "Extra", Status: model.StatusRealized},
		{Kind: model.KindExpense, Date: time.Date(year, 3, 10, 0, 0, 0, 0, time.UTC),
			Description: "Maintenance", Amount: mustDec("5200"), Category: "Maintenance", Status: model.StatusRealized},
		{Kind: model.KindRevenue, Date: time.Date(year, 4, 5, 0, 0, 0, 0, time.UTC),
			Description: "Product sales", Amount: mustDec("12000"), Category: "Sales", Status: model.StatusPlanned},
	}
	for _, e := range entries {
		e.CompanyID = company.ID
		if _, err := st.AddEntry(e); err != nil {
			return err
		}
	}

	expenses := []struct {
		category, name, amount string
	}{
		{"Facilities", "Office rent", "4200"},
		{"Payroll", "Salaries", "12500"},
		{"Facilities", "Utilities", "680"},
		{"Software", "Licenses", "850"},
		{"Services", "Accounting", "750"},
		{"Marketing", "Online ads", "1400"},
		{"Services", "Insurance", "520"},
		{"Facilities", "Cleaning", "391.92"},
		{"Services", "Phone and internet", "1200"},
	}
	for _, e := range expenses {
		_, err := st.AddExpense(model.FixedExpense{
			CompanyID:     company.ID,
			Category:      e.category,
			Name:          e.name,
			MonthlyAmount: mustDec(e.amount),
			Active:        true,
		})
		if err != nil {
			return err
		}
	}

	if !flagQuiet {
		fmt.Printf("  Seeded %q for %d: premise, %d actuals, %d entries, %d fixed expenses\n",
			name, year, len(actuals), len(entries), len(expenses))
		fmt.Printf("  Try: orca reconcile --company %q --year %d\n", name, year)
	}
	return nil
}
