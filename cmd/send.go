package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"raigo/units"
)

var sendCmd = &cobra.Command{
	Use:   "send <wallet> <source> <destination> <amount>",
	Short: "Send funds from a node wallet",
	Long: `Send an amount from a source account inside a node-side wallet to a
destination account. The amount is given in XRB unless --unit says
otherwise; it is converted to raw before the node sees it.

The wallet, its accounts and its keys all live on the node. Raigo never
handles keys.

Examples:
  raigo send 000D1B... xrb_3e3j... xrb_3i1a... 1.5
  raigo send 000D1B... xrb_3e3j... xrb_3i1a... 250 --unit krai`,
	Args: cobra.ExactArgs(4),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().String("unit", "XRB", "denomination the amount is given in")
}

func runSend(cmd *cobra.Command, args []string) error {
	wallet, source, destination := args[0], args[1], args[2]
	unit, _ := cmd.Flags().GetString("unit")

	raw, err := units.Convert(args[3], unit, "raw")
	if err != nil {
		return err
	}
	if !raw.IsInteger() {
		return fmt.Errorf("amount %s %s is not a whole number of raw", args[3], unit)
	}
	if !raw.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	client := newRPCClient()

	block, err := client.Send(wallet, source, destination, raw)
	if err != nil {
		return fmt.Errorf("failed to send: %w", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s Sent %s %s (%s raw)\n", green("✓"), args[3], unit, raw.String())
	fmt.Printf("Block: %s\n", block)

	return nil
}
