package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

// UpsertActual records the realized revenue for a company month,
// replacing any value recorded earlier for the same month.
func (s *Store) UpsertActual(a model.MonthlyActual) error {
	if a.Month < 1 || a.Month > 12 {
		return fmt.Errorf("month %d out of range", a.Month)
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO actuals
		(company_id, year, month, amount, source, note, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.CompanyID, a.Year, a.Month, a.Amount.String(), a.Source, a.Note,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// ListActuals returns all recorded actuals for a company year, ordered by month.
func (s *Store) ListActuals(companyID string, year int) ([]model.MonthlyActual, error) {
	rows, err := s.db.Query(`SELECT company_id, year, month, amount, source, note
		FROM actuals WHERE company_id = ? AND year = ? ORDER BY month`, companyID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MonthlyActual
	for rows.Next() {
		var a model.MonthlyActual
		var amount string
		var source, note sql.NullString
		if err := rows.Scan(&a.CompanyID, &a.Year, &a.Month, &amount, &source, &note); err != nil {
			return nil, err
		}
		if a.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("bad amount %q for month %d: %w", amount, a.Month, err)
		}
		a.Source = source.String
		a.Note = note.String
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteActual removes the recorded value for a single month.
func (s *Store) DeleteActual(companyID string, year, month int) error {
	res, err := s.db.Exec(`DELETE FROM actuals WHERE company_id = ? AND year = ? AND month = ?`,
		companyID, year, month)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
