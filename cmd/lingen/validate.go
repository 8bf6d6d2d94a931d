package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linearmap/gen"
)

var validateCmd = &cobra.Command{
	Use:   "validate <schema.yaml>",
	Short: "Check a schema without generating code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading schema: %w", err)
		}
		s, err := gen.ParseSchema(data)
		if err != nil {
			return err
		}
		if err := gen.Validate(s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d types OK\n", args[0], len(s.Types))
		return nil
	},
}
