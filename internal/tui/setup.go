package tui

import (
	"errors"
	"strconv"
	"time"

	"github.com/MuriloHTS/orca/internal/config"
	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

// setupValues collects first-run form answers.
type setupValues struct {
	CompanyName string
	YearStr     string
	RevenueStr  string
}

func newSetupForm(vals *setupValues) *huh.Form {
	if vals.YearStr == "" {
		vals.YearStr = strconv.Itoa(time.Now().Year())
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company name").
				Description("The business you are planning for.").
				Value(&vals.CompanyName).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("company name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Planning year").
				Value(&vals.YearStr).
				Validate(func(s string) error {
					y, err := strconv.Atoi(s)
					if err != nil || y < 2000 || y > 2100 {
						return errors.New("enter a four-digit year")
					}
					return nil
				}),
			huh.NewInput().
				Title("Annual revenue target").
				Description("Leave blank to set the premise later.").
				Value(&vals.RevenueStr).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := decimal.NewFromString(s); err != nil {
						return errors.New("enter a number")
					}
					return nil
				}),
		),
	)
}

// applySetup persists the first-run answers: company record, optional
// premise, and config defaults.
func applySetup(dbPath string, vals setupValues) error {
	year, err := strconv.Atoi(vals.YearStr)
	if err != nil {
		return errors.New("invalid year")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	company, err := st.FindCompanyByName(vals.CompanyName)
	if errors.Is(err, store.ErrNotFound) {
		company, err = st.AddCompany(vals.CompanyName)
	}
	if err != nil {
		return err
	}

	if vals.RevenueStr != "" {
		revenue, err := decimal.NewFromString(vals.RevenueStr)
		if err != nil {
			return err
		}
		err = st.SavePremise(model.Premise{
			CompanyID:        company.ID,
			Year:             year,
			AnnualRevenue:    revenue,
			MonthlyGrowthPct: decimal.Zero,
		})
		if err != nil {
			return err
		}
	}

	cfg, _ := config.Load()
	cfg.General.DefaultCompany = vals.CompanyName
	cfg.General.DefaultYear = year
	return config.Save(cfg)
}
