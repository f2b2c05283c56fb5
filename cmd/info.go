package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"raigo/units"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show node status",
	Long: `Show the node's version, ledger block count, peer count and the
available supply.

Examples:
  raigo info`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	client := newRPCClient()

	version, err := client.Version()
	if err != nil {
		return fmt.Errorf("failed to fetch version: %w", err)
	}

	fmt.Printf("Node:    %s (rpc v%d, store v%d)\n", version.NodeVendor, version.RPCVersion, version.StoreVersion)

	count, err := client.BlockCount()
	if err != nil {
		return fmt.Errorf("failed to fetch block count: %w", err)
	}
	fmt.Printf("Blocks:  %d checked, %d unchecked\n", count.Count, count.Unchecked)

	peers, err := client.Peers()
	if err != nil {
		return fmt.Errorf("failed to fetch peers: %w", err)
	}
	fmt.Printf("Peers:   %d\n", len(peers))

	supply, err := client.AvailableSupply()
	if err != nil {
		return fmt.Errorf("failed to fetch supply: %w", err)
	}
	xrb, err := units.Convert(supply, "raw", "XRB")
	if err != nil {
		return err
	}
	fmt.Printf("Supply:  %s XRB\n", xrb.String())

	return nil
}
