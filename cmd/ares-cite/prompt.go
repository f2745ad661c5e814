package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/ares-cite/internal/prompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Enter identifiers interactively",
	Long: `Prompt reads one IČO per line from standard input and prints its citation
or the reason it could not be built. Type q, quit or exit, or send EOF,
to leave.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	s := &prompt.Session{
		Describer: registry,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Pad:       padICO,
		Logger:    logger,
	}
	return s.Run(cmd.Context())
}
