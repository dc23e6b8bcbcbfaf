package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

// AddEntry stores a dated revenue or expense entry and returns it with
// a generated ID.
func (s *Store) AddEntry(e model.Entry) (model.Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = model.StatusPlanned
	}
	_, err := s.db.Exec(`INSERT INTO entries
		(id, company_id, kind, date, description, amount, category, status, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CompanyID, string(e.Kind), e.Date.Format("2006-01-02"),
		e.Description, e.Amount.String(), e.Category, string(e.Status), e.Note,
	)
	if err != nil {
		return model.Entry{}, err
	}
	return e, nil
}

// ListEntriesByYear returns a company's entries for a calendar year,
// ordered by date.
func (s *Store) ListEntriesByYear(companyID string, year int) ([]model.Entry, error) {
	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-12-31", year)
	return s.listEntries(`SELECT id, company_id, kind, date, description, amount, category, status, note
		FROM entries WHERE company_id = ? AND date >= ? AND date <= ? ORDER BY date, id`,
		companyID, start, end)
}

// ListEntriesByMonth returns a company's entries for a single month,
// ordered by date.
func (s *Store) ListEntriesByMonth(companyID string, year, month int) ([]model.Entry, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	return s.listEntries(`SELECT id, company_id, kind, date, description, amount, category, status, note
		FROM entries WHERE company_id = ? AND date LIKE ? ORDER BY date, id`,
		companyID, prefix+"%")
}

func (s *Store) listEntries(query string, args ...any) ([]model.Entry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Entry
	for rows.Next() {
		var e model.Entry
		var kind, date, amount, status string
		var category, note sql.NullString
		if err := rows.Scan(&e.ID, &e.CompanyID, &kind, &date, &e.Description,
			&amount, &category, &status, &note); err != nil {
			return nil, err
		}
		e.Kind = model.EntryKind(kind)
		e.Status = model.EntryStatus(status)
		e.Category = category.String
		e.Note = note.String
		if e.Date, err = time.Parse("2006-01-02", date); err != nil {
			return nil, fmt.Errorf("bad date %q for entry %s: %w", date, e.ID, err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("bad amount %q for entry %s: %w", amount, e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateEntryStatus moves an entry between planned, realized and cancelled.
func (s *Store) UpdateEntryStatus(id string, status model.EntryStatus) error {
	res, err := s.db.Exec(`UPDATE entries SET status = ? WHERE id = ?`, string(status), id)
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

// ExpandEntryID resolves a short ID prefix to the full entry ID.
// Returns ErrNotFound when nothing matches and an error when the
// prefix is ambiguous.
func (s *Store) ExpandEntryID(prefix string) (string, error) {
	rows, err := s.db.Query(`SELECT id FROM entries WHERE id LIKE ? LIMIT 2`, prefix+"%")
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	switch len(ids) {
	case 0:
		return "", ErrNotFound
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("entry ID %q is ambiguous", prefix)
	}
}

// DeleteEntry removes an entry by ID.
func (s *Store) DeleteEntry(id string) error {
	res, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
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
