package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"raigo/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert <amount> <from-unit> <to-unit>",
	Short: "Convert between denominations",
	Long: `Convert an amount between denominations without talking to the node.

Valid units: ` + strings.Join(units.Names(), ", ") + `

Examples:
  raigo convert 12 XRB raw
  raigo convert 0.4 krai XRB`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	result, err := units.Convert(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	fmt.Printf("%s %s = %s %s\n", args[0], args[1], result.String(), args[2])
	return nil
}
