package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/config"
	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/store"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	companyName := cfg.General.DefaultCompany
	yearStr := strconv.Itoa(time.Now().Year())
	if cfg.General.DefaultYear != 0 {
		yearStr = strconv.Itoa(cfg.General.DefaultYear)
	}
	var revenueStr, growthStr string
	theme := cfg.Appearance.Theme

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company name").
				Description("The business you are planning for.").
				Value(&companyName).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("company name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Planning year").
				Value(&yearStr).
				Validate(func(s string) error {
					y, err := strconv.Atoi(s)
					if err != nil || y < 2000 || y > 2100 {
						return errors.New("enter a four-digit year")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Annual revenue target").
				Description("Leave blank to set the premise later.").
				Value(&revenueStr).
				Validate(validateOptionalAmount),
			huh.NewInput().
				Title("Monthly growth %").
				Placeholder("0").
				Value(&growthStr).
				Validate(validateOptionalAmount),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
					huh.NewOption("Gruvbox", "gruvbox"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	year, _ := strconv.Atoi(yearStr)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	company, err := st.FindCompanyByName(companyName)
	if errors.Is(err, store.ErrNotFound) {
		company, err = st.AddCompany(companyName)
	}
	if err != nil {
		return err
	}

	if revenueStr != "" {
		revenue, err := decimal.NewFromString(revenueStr)
		if err != nil {
			return fmt.Errorf("invalid revenue %q", revenueStr)
		}
		growth := decimal.Zero
		if growthStr != "" {
			if growth, err = decimal.NewFromString(growthStr); err != nil {
				return fmt.Errorf("invalid growth %q", growthStr)
			}
		}
		err = st.SavePremise(model.Premise{
			CompanyID:        company.ID,
			Year:             year,
			AnnualRevenue:    revenue,
			MonthlyGrowthPct: growth,
		})
		if err != nil {
			return err
		}
	}

	cfg.General.DefaultCompany = companyName
	cfg.General.DefaultYear = year
	cfg.Appearance.Theme = theme
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  All set! %s, %d\n", company.Name, year)
	if revenueStr != "" {
		revenue, _ := decimal.NewFromString(revenueStr)
		fmt.Printf("  Annual revenue target: %s\n", cli.FormatMoney(revenue))
	}
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `orca setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func validateOptionalAmount(s string) error {
	if s == "" {
		return nil
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return errors.New("enter a number")
	}
	return nil
}
