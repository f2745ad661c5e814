package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <ico>...",
	Short: "Print the formal citation of one or more subjects",
	Long: `Describe looks up each IČO in ARES and prints its citation on its own line:
name, IČO and registered office. It stops at the first identifier that
cannot be described.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		ico, err := normalizeICO(arg)
		if err != nil {
			return err
		}

		text, err := registry.Describe(cmd.Context(), ico)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}
