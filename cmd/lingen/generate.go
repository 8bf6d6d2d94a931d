package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linearmap/gen"
)

var outPath string

var generateCmd = &cobra.Command{
	Use:   "generate <schema.yaml>",
	Short: "Generate Go source from a schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath := args[0]
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("reading schema: %w", err)
		}

		out := outPath
		if out == "" {
			out = cfg.GetString("out")
		}
		if out == "" {
			out = strings.TrimSuffix(schemaPath, ".yaml") + ".gen.go"
		}

		logger.Debug("generating", "schema", schemaPath, "out", out)
		if err := gen.Generate(cmd.Context(), data, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: schema name with .gen.go)")
}
