package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/store"
)

var (
	flagEntryKind     string
	flagEntryDate     string
	flagEntryCategory string
	flagEntryStatus   string
	flagEntryNote     string
	flagEntryMonth    int
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage dated revenue and expense entries",
}

var entryAddCmd = &cobra.Command{
	Use:   "add <description> <amount>",
	Short: "Add a dated entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runEntryAdd,
}

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries for the working year",
	RunE:  runEntryList,
}

var entryStatusCmd = &cobra.Command{
	Use:   "status <id> <planned|realized|cancelled>",
	Short: "Change an entry's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runEntryStatus,
}

var entryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryRm,
}

func init() {
	entryAddCmd.Flags().StringVar(&flagEntryKind, "kind", "expense", "Entry kind: revenue or expense")
	entryAddCmd.Flags().StringVar(&flagEntryDate, "date", "", "Entry date as YYYY-MM-DD (default today)")
	entryAddCmd.Flags().StringVar(&flagEntryCategory, "category", "", "Category label")
	entryAddCmd.Flags().StringVar(&flagEntryStatus, "status", "planned", "Initial status: planned or realized")
	entryAddCmd.Flags().StringVar(&flagEntryNote, "note", "", "Free-form note")

	entryListCmd.Flags().IntVar(&flagEntryMonth, "month", 0, "Restrict to a single month (1-12)")

	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryListCmd)
	entryCmd.AddCommand(entryStatusCmd)
	entryCmd.AddCommand(entryRmCmd)
	rootCmd.AddCommand(entryCmd)
}

func parseEntryKind(s string) (model.EntryKind, error) {
	switch s {
	case "revenue":
		return model.KindRevenue, nil
	case "expense":
		return model.KindExpense, nil
	default:
		return "", fmt.Errorf("invalid kind %q, want revenue or expense", s)
	}
}

func parseEntryStatus(s string) (model.EntryStatus, error) {
	switch s {
	case "planned":
		return model.StatusPlanned, nil
	case "realized":
		return model.StatusRealized, nil
	case "cancelled":
		return model.StatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid status %q, want planned, realized or cancelled", s)
	}
}

func runEntryAdd(_ *cobra.Command, args []string) error {
	kind, err := parseEntryKind(flagEntryKind)
	if err != nil {
		return err
	}
	status, err := parseEntryStatus(flagEntryStatus)
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive, got %s", args[1])
	}

	date := time.Now().Truncate(24 * time.Hour)
	if flagEntryDate != "" {
		date, err = time.Parse("2006-01-02", flagEntryDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagEntryDate)
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	company, err := resolveCompany(st)
	if err != nil {
		return err
	}

	e, err := st.AddEntry(model.Entry{
		CompanyID:   company.ID,
		Kind:        kind,
		Date:        date,
		Description: args[0],
		Amount:      amount,
		Category:    flagEntryCategory,
		Status:      status,
		Note:        flagEntryNote,
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added %s %s on %s (id %s)\n",
			kind, cli.FormatMoney(amount), date.Format("2006-01-02"), shortID(e.ID))
	}
	return nil
}

func runEntryList(_ *cobra.Command, _ []string) error {
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

	var entries []model.Entry
	if flagEntryMonth != 0 {
		entries, err = st.ListEntriesByMonth(company.ID, year, flagEntryMonth)
	} else {
		entries, err = st.ListEntriesByYear(company.ID, year)
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("\n  No entries for %s, %d.\n", company.Name, year)
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			shortID(e.ID),
			e.Date.Format("2006-01-02"),
			string(e.Kind),
			e.Description,
			cli.FormatMoney(e.Amount),
			e.Category,
			string(e.Status),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s  %d entries", company.Name, year),
		Headers: []string{"ID", "Date", "Kind", "Description", "Amount", "Category", "Status"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runEntryStatus(_ *cobra.Command, args []string) error {
	status, err := parseEntryStatus(args[1])
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := expandEntryID(st, args[0])
	if err != nil {
		return err
	}
	if err := st.UpdateEntryStatus(id, status); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Entry %s is now %s\n", shortID(id), status)
	}
	return nil
}

func runEntryRm(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := expandEntryID(st, args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteEntry(id); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Deleted entry %s\n", shortID(id))
	}
	return nil
}

// shortID trims a UUID to its first segment for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// expandEntryID resolves a short ID prefix to a full entry ID.
func expandEntryID(st *store.Store, prefix string) (string, error) {
	return st.ExpandEntryID(prefix)
}
