package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/cli"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage companies",
}

var companyAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new company",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyAdd,
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered companies",
	RunE:  runCompanyList,
}

func init() {
	companyCmd.AddCommand(companyAddCmd)
	companyCmd.AddCommand(companyListCmd)
	rootCmd.AddCommand(companyCmd)
}

func runCompanyAdd(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	c, err := st.AddCompany(args[0])
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added company %s (id %s)\n", c.Name, shortID(c.ID))
	}
	return nil
}

func runCompanyList(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	companies, err := st.ListCompanies()
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		fmt.Println("\n  No companies yet. Add one with `orca company add <name>`.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(companies))
	for _, c := range companies {
		state := "active"
		if !c.Active {
			state = "inactive"
		}
		rows = append(rows, []string{shortID(c.ID), c.Name, state, c.CreatedAt.Format("2006-01-02")})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "State", "Created"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
