package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

// AddExpense stores a recurring fixed expense and returns it with a
// generated ID.
func (s *Store) AddExpense(e model.FixedExpense) (model.FixedExpense, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	active := 0
	if e.Active {
		active = 1
	}
	_, err := s.db.Exec(`INSERT INTO fixed_expenses
		(id, company_id, category, name, monthly_amount, active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.CompanyID, e.Category, e.Name, e.MonthlyAmount.String(), active,
	)
	if err != nil {
		return model.FixedExpense{}, err
	}
	return e, nil
}

// ListExpenses returns a company's fixed expenses, active first.
func (s *Store) ListExpenses(companyID string) ([]model.FixedExpense, error) {
	rows, err := s.db.Query(`SELECT id, company_id, category, name, monthly_amount, active
		FROM fixed_expenses WHERE company_id = ? ORDER BY active DESC, category, name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.FixedExpense
	for rows.Next() {
		var e model.FixedExpense
		var amount string
		var category sql.NullString
		var active int
		if err := rows.Scan(&e.ID, &e.CompanyID, &category, &e.Name, &amount, &active); err != nil {
			return nil, err
		}
		e.Category = category.String
		e.Active = active != 0
		if e.MonthlyAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("bad monthly_amount %q for expense %s: %w", amount, e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SetExpenseActive toggles whether an expense counts toward the
// monthly outflow baseline.
func (s *Store) SetExpenseActive(id string, active bool) error {
	v := 0
	if active {
		v = 1
	}
	res, err := s.db.Exec(`UPDATE fixed_expenses SET active = ? WHERE id = ?`, v, id)
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
