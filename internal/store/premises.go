package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

// SavePremise inserts or replaces the premise for a company-year pair.
func (s *Store) SavePremise(p model.Premise) error {
	var seasonality sql.NullString
	if len(p.Seasonality) > 0 {
		data, err := json.Marshal(p.Seasonality)
		if err != nil {
			return fmt.Errorf("encoding seasonality: %w", err)
		}
		seasonality = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO premises
		(company_id, year, annual_revenue, monthly_growth_pct, seasonality, notes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.CompanyID, p.Year, p.AnnualRevenue.String(), p.MonthlyGrowthPct.String(),
		seasonality, p.Notes, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetPremise returns the premise for a company-year pair, or ErrNotFound.
func (s *Store) GetPremise(companyID string, year int) (model.Premise, error) {
	row := s.db.QueryRow(`SELECT company_id, year, annual_revenue, monthly_growth_pct, seasonality, notes
		FROM premises WHERE company_id = ? AND year = ?`, companyID, year)

	var p model.Premise
	var revenue, growth string
	var seasonality, notes sql.NullString

	err := row.Scan(&p.CompanyID, &p.Year, &revenue, &growth, &seasonality, &notes)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Premise{}, ErrNotFound
	}
	if err != nil {
		return model.Premise{}, err
	}

	if p.AnnualRevenue, err = decimal.NewFromString(revenue); err != nil {
		return model.Premise{}, fmt.Errorf("bad annual_revenue %q: %w", revenue, err)
	}
	if p.MonthlyGrowthPct, err = decimal.NewFromString(growth); err != nil {
		return model.Premise{}, fmt.Errorf("bad monthly_growth_pct %q: %w", growth, err)
	}
	if seasonality.Valid && seasonality.String != "" {
		if err := json.Unmarshal([]byte(seasonality.String), &p.Seasonality); err != nil {
			return model.Premise{}, fmt.Errorf("bad seasonality: %w", err)
		}
	}
	if notes.Valid {
		p.Notes = notes.String
	}
	return p, nil
}
