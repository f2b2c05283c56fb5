package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"raigo/known"
	"raigo/units"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <account>",
	Short: "Check an account's balance",
	Long: `Check the settled and pending balance of an account.

Amounts are shown in XRB unless --unit picks another denomination.

Examples:
  raigo balance xrb_3e3j...              # Balance in XRB
  raigo balance xrb_3e3j... --unit raw   # Balance in raw
  raigo balance xrb_3e3j... --unit Mrai  # Balance in Mrai`,
	Args: cobra.ExactArgs(1),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().String("unit", "XRB", "denomination to display amounts in")
}

func runBalance(cmd *cobra.Command, args []string) error {
	account := args[0]
	unit, _ := cmd.Flags().GetString("unit")

	client := newRPCClient()

	balance, err := client.AccountBalance(account)
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	settled, err := units.Convert(balance.Balance, "raw", unit)
	if err != nil {
		return err
	}
	pending, err := units.Convert(balance.Pending, "raw", unit)
	if err != nil {
		return err
	}

	if name, ok := known.AccountIDs[account]; ok {
		fmt.Printf("Account: %s (%s)\n", account, name)
	} else {
		fmt.Printf("Account: %s\n", account)
	}
	fmt.Printf("Balance: %s %s\n", settled.String(), unit)
	fmt.Printf("Pending: %s %s\n", pending.String(), unit)

	return nil
}
