package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ares-cite/internal/ares"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <ico>",
	Short: "Print the ARES record of a subject",
	Long: `Lookup fetches the subject registered under the given IČO and prints the
parsed record as YAML, or as JSON with --json. Dissolved subjects are
reported with status "dissolved" and their dissolution date.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().Bool("json", false, "output the record as JSON")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	ico, err := normalizeICO(args[0])
	if err != nil {
		return err
	}

	subject, err := registry.Lookup(cmd.Context(), ico)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(subject)
	}

	enc := yaml.NewEncoder(out)
	defer enc.Close()
	if err := enc.Encode(subject); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return nil
}

// normalizeICO applies --pad. Validation of the result is left to the client.
func normalizeICO(arg string) (string, error) {
	if !padICO {
		return arg, nil
	}
	return ares.PadICO(arg)
}
