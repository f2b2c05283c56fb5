package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "raigo",
	Short: "A command-line client for a RaiBlocks node",
	Long: `Raigo talks to a running RaiBlocks node over its HTTP RPC interface.
It queries balances, node status and account history, sends funds from
node-side wallets, and converts amounts between denominations offline.

Examples:
  raigo node http://localhost:7076       # Point at your node
  raigo info                             # Node version, block count, peers
  raigo balance xrb_3e3j...              # Account balance in XRB
  raigo send <wallet> <src> <dst> 1.5    # Send 1.5 XRB
  raigo convert 12 XRB raw               # Offline unit conversion`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("raigo v%s\n", version)
	},
}
