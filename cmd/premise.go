package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/budget"
	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
)

var (
	flagPremiseRevenue string
	flagPremiseGrowth  string
	flagPremiseSeason  []string
	flagPremiseNotes   string
)

var premiseCmd = &cobra.Command{
	Use:   "premise",
	Short: "Manage the annual revenue premise",
}

var premiseSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the revenue premise for the working year",
	RunE:  runPremiseSet,
}

var premiseShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the premise and monthly allocation",
	RunE:  runPremiseShow,
}

func init() {
	premiseSetCmd.Flags().StringVar(&flagPremiseRevenue, "revenue", "", "Annual revenue target (required)")
	premiseSetCmd.Flags().StringVar(&flagPremiseGrowth, "growth", "0", "Monthly growth percentage")
	premiseSetCmd.Flags().StringSliceVar(&flagPremiseSeason, "season", nil, "Seasonality weight as month=percent (e.g. january=12.5)")
	premiseSetCmd.Flags().StringVar(&flagPremiseNotes, "notes", "", "Free-form notes")
	_ = premiseSetCmd.MarkFlagRequired("revenue")

	premiseCmd.AddCommand(premiseSetCmd)
	premiseCmd.AddCommand(premiseShowCmd)
	rootCmd.AddCommand(premiseCmd)
}

func runPremiseSet(_ *cobra.Command, _ []string) error {
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

	revenue, err := decimal.NewFromString(flagPremiseRevenue)
	if err != nil {
		return fmt.Errorf("invalid revenue %q", flagPremiseRevenue)
	}
	growth, err := decimal.NewFromString(flagPremiseGrowth)
	if err != nil {
		return fmt.Errorf("invalid growth %q", flagPremiseGrowth)
	}

	seasonality, err := parseSeasonality(flagPremiseSeason)
	if err != nil {
		return err
	}

	p := model.Premise{
		CompanyID:        company.ID,
		Year:             year,
		AnnualRevenue:    revenue,
		MonthlyGrowthPct: growth,
		Seasonality:      seasonality,
		Notes:            flagPremiseNotes,
	}
	if err := st.SavePremise(p); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Premise saved for %s, %d: %s/year", company.Name, year, cli.FormatMoney(revenue))
		if !growth.IsZero() {
			fmt.Printf(" at %s%%/month growth", growth)
		}
		fmt.Println()
	}
	return nil
}

func parseSeasonality(pairs []string) (map[string]decimal.Decimal, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]decimal.Decimal, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid seasonality %q, want month=percent", pair)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if !model.ValidMonthKey(key) {
			return nil, fmt.Errorf("unknown month %q", key)
		}
		w, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q for %s", val, key)
		}
		out[key] = w
	}
	return out, nil
}

func runPremiseShow(_ *cobra.Command, _ []string) error {
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
	if premise == nil {
		fmt.Printf("\n  No premise set for %s, %d. Use `orca premise set --revenue <amount>`.\n", company.Name, year)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %d PREMISE", company.Name, year)))
	fmt.Println()
	fmt.Printf("  Annual revenue: %s\n", cli.FormatMoney(premise.AnnualRevenue))
	fmt.Printf("  Monthly growth: %s%%\n", premise.MonthlyGrowthPct)
	if premise.Notes != "" {
		fmt.Printf("  Notes: %s\n", premise.Notes)
	}
	fmt.Println()

	rows := make([][]string, 0, 12)
	total := decimal.Zero
	for month := 1; month <= 12; month++ {
		planned := budget.Allocate(premise, month)
		total = total.Add(planned)
		rows = append(rows, []string{
			model.MonthName(month),
			premise.SeasonalityWeight(month).StringFixed(2) + "%",
			cli.FormatMoney(planned),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", cli.FormatMoney(total)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Weight", "Planned"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
