package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MuriloHTS/orca/internal/model"
)

// AddCompany inserts a new company and returns it with a generated ID.
func (s *Store) AddCompany(name string) (model.Company, error) {
	c := model.Company{
		ID:        uuid.NewString(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(`INSERT INTO companies (id, name, active, created_at) VALUES (?, ?, 1, ?)`,
		c.ID, c.Name, c.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return model.Company{}, err
	}
	return c, nil
}

// GetCompany looks a company up by ID.
func (s *Store) GetCompany(id string) (model.Company, error) {
	return s.scanCompany(s.db.QueryRow(
		`SELECT id, name, active, created_at FROM companies WHERE id = ?`, id))
}

// FindCompanyByName looks an active company up by exact name.
func (s *Store) FindCompanyByName(name string) (model.Company, error) {
	return s.scanCompany(s.db.QueryRow(
		`SELECT id, name, active, created_at FROM companies WHERE name = ? AND active = 1`, name))
}

// ListCompanies returns all companies, active first, then by name.
func (s *Store) ListCompanies() ([]model.Company, error) {
	rows, err := s.db.Query(`SELECT id, name, active, created_at FROM companies ORDER BY active DESC, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var companies []model.Company
	for rows.Next() {
		var c model.Company
		var active int
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &active, &createdAt); err != nil {
			return nil, err
		}
		c.Active = active != 0
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (s *Store) scanCompany(row *sql.Row) (model.Company, error) {
	var c model.Company
	var active int
	var createdAt string
	err := row.Scan(&c.ID, &c.Name, &active, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Company{}, ErrNotFound
	}
	if err != nil {
		return model.Company{}, err
	}
	c.Active = active != 0
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return c, nil
}
