package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"raigo/rpc"
)

var nodeCmd = &cobra.Command{
	Use:   "node [url]",
	Short: "Show or change the node endpoint",
	Long: `Show the node endpoint in use, or persist a new one.

The endpoint is stored in ~/.raigo/node.txt and used by every command that
talks to the node. Without it, ` + rpc.DefaultURL + ` is assumed.

Examples:
  raigo node                          # Show current endpoint
  raigo node http://localhost:7076    # Point at a local node
  raigo node http://10.0.0.5:7076     # Point at a remote node`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNode,
}

func runNode(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Printf("Node endpoint: %s\n", nodeEndpoint())
		return nil
	}

	endpoint := strings.TrimSpace(args[0])
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid node URL: %s", endpoint)
	}

	path, err := nodeFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(endpoint+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to save node endpoint: %w", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s Node endpoint set to %s\n", green("✓"), endpoint)
	return nil
}

func nodeFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".raigo", "node.txt"), nil
}

// nodeEndpoint returns the persisted endpoint, or the default when none is
// saved.
func nodeEndpoint() string {
	path, err := nodeFilePath()
	if err != nil {
		return rpc.DefaultURL
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rpc.DefaultURL
	}

	endpoint := strings.TrimSpace(string(data))
	if endpoint == "" {
		return rpc.DefaultURL
	}
	return endpoint
}

func newRPCClient() *rpc.Client {
	return rpc.NewClient(nodeEndpoint())
}
