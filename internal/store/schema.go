package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS companies (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL UNIQUE,
    active               INTEGER NOT NULL DEFAULT 1,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS premises (
    company_id           TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
    year                 INTEGER NOT NULL,
    annual_revenue       TEXT NOT NULL,
    monthly_growth_pct   TEXT NOT NULL,
    seasonality          TEXT,
    notes                TEXT,
    updated_at           TEXT NOT NULL,
    PRIMARY KEY (company_id, year)
);

CREATE TABLE IF NOT EXISTS actuals (
    company_id           TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
    year                 INTEGER NOT NULL,
    month                INTEGER NOT NULL,
    amount               TEXT NOT NULL,
    source               TEXT,
    note                 TEXT,
    updated_at           TEXT NOT NULL,
    PRIMARY KEY (company_id, year, month)
);

CREATE TABLE IF NOT EXISTS entries (
    id                   TEXT PRIMARY KEY,
    company_id           TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
    kind                 TEXT NOT NULL,
    date                 TEXT NOT NULL,
    description          TEXT NOT NULL,
    amount               TEXT NOT NULL,
    category             TEXT,
    status               TEXT NOT NULL,
    note                 TEXT
);

CREATE TABLE IF NOT EXISTS fixed_expenses (
    id                   TEXT PRIMARY KEY,
    company_id           TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
    category             TEXT,
    name                 TEXT NOT NULL,
    monthly_amount       TEXT NOT NULL,
    active               INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_entries_company_date ON entries(company_id, date);
CREATE INDEX IF NOT EXISTS idx_actuals_company_year ON actuals(company_id, year);
`
