package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
)

var flagExpenseCategory string

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage recurring fixed expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <name> <monthly-amount>",
	Short: "Add a recurring fixed expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fixed expenses",
	RunE:  runExpenseList,
}

var expenseToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Activate or deactivate a fixed expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseToggle,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpenseCategory, "category", "", "Expense category")

	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseToggleCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive, got %s", args[1])
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

	e, err := st.AddExpense(model.FixedExpense{
		CompanyID:     company.ID,
		Category:      flagExpenseCategory,
		Name:          args[0],
		MonthlyAmount: amount,
		Active:        true,
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added %s at %s/month (id %s)\n", e.Name, cli.FormatMoney(amount), shortID(e.ID))
	}
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	company, err := resolveCompany(st)
	if err != nil {
		return err
	}

	expenses, err := st.ListExpenses(company.ID)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Printf("\n  No fixed expenses for %s.\n", company.Name)
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		state := "active"
		if !e.Active {
			state = "inactive"
		}
		rows = append(rows, []string{
			shortID(e.ID),
			e.Category,
			e.Name,
			cli.FormatMoney(e.MonthlyAmount),
			state,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "Active total", cli.FormatMoney(model.SumActiveExpenses(expenses)), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s  fixed expenses", company.Name),
		Headers: []string{"ID", "Category", "Name", "Monthly", "State"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runExpenseToggle(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	company, err := resolveCompany(st)
	if err != nil {
		return err
	}

	expenses, err := st.ListExpenses(company.ID)
	if err != nil {
		return err
	}

	prefix := args[0]
	var target *model.FixedExpense
	for i := range expenses {
		if strings.HasPrefix(expenses[i].ID, prefix) {
			if target != nil {
				return fmt.Errorf("expense ID %q is ambiguous", prefix)
			}
			target = &expenses[i]
		}
	}
	if target == nil {
		return fmt.Errorf("no expense with ID %q", prefix)
	}

	if err := st.SetExpenseActive(target.ID, !target.Active); err != nil {
		return err
	}
	if !flagQuiet {
		state := "active"
		if target.Active {
			state = "inactive"
		}
		fmt.Printf("  %s is now %s\n", target.Name, state)
	}
	return nil
}
