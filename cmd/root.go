package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/config"
	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/store"
)

var (
	flagCompany string
	flagYear    int
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "orca",
	Short: "Budget reconciliation and cash-flow projection CLI",
	Long:  "Plan annual revenue, record monthly actuals, and track realized vs planned cash flow.",
	RunE:  runReconcile,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCompany, "company", "c", "", "Company name (defaults to configured company)")
	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", 0, "Planning year (defaults to current year)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory override")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openStore is the shared storage path used by all commands.
func openStore() (*store.Store, error) {
	path := dbPath()
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return st, nil
}

func dbPath() string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "orca.db")
	}
	if dir := os.Getenv("ORCA_DATA_DIR"); dir != "" {
		return filepath.Join(dir, "orca.db")
	}
	cfg, _ := config.Load()
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "orca.db")
	}
	return store.DataPath()
}

// resolveCompany picks the working company from the --company flag, the
// configured default, or the only active company in the database.
func resolveCompany(st *store.Store) (model.Company, error) {
	name := flagCompany
	if name == "" {
		cfg, _ := config.Load()
		name = cfg.General.DefaultCompany
	}

	if name != "" {
		c, err := st.FindCompanyByName(name)
		if errors.Is(err, store.ErrNotFound) {
			return model.Company{}, fmt.Errorf("no company named %q (run `orca company add %q` first)", name, name)
		}
		return c, err
	}

	companies, err := st.ListCompanies()
	if err != nil {
		return model.Company{}, err
	}
	var active []model.Company
	for _, c := range companies {
		if c.Active {
			active = append(active, c)
		}
	}
	switch len(active) {
	case 0:
		return model.Company{}, errors.New("no companies yet (run `orca setup` or `orca company add <name>`)")
	case 1:
		return active[0], nil
	default:
		return model.Company{}, errors.New("multiple companies found, pick one with --company")
	}
}

func resolveYear() int {
	if flagYear != 0 {
		return flagYear
	}
	cfg, _ := config.Load()
	if cfg.General.DefaultYear != 0 {
		return cfg.General.DefaultYear
	}
	return time.Now().Year()
}

// loadPremise returns the company's premise for the year, or nil when
// none has been set yet.
func loadPremise(st *store.Store, companyID string, year int) (*model.Premise, error) {
	p, err := st.GetPremise(companyID, year)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
