// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"

	"github.com/h315uk3/mcp-forge/src/internal/forge/schema"
	mcpserver "github.com/h315uk3/mcp-forge/src/mcp-server"
	"github.com/h315uk3/mcp-forge/src/mcp-server/templates"
	"github.com/spf13/cobra"
)

// Execute runs the root command, handling any errors that occur during execution.
//
// The root command defaults to starting the MCP server over stdio, matching
// how MCP clients launch server binaries. The validate subcommand offers
// manifest checking without a protocol round-trip.
func Execute(version string) {
	framework := mcpserver.NewCLIFramework("", mcpserver.ServerDependencies{
		Version:       version,
		Embed:         templates.MagicEmbed,
		PopulateCache: true,
	})

	rootCmd := framework.BuildRootCommand()
	rootCmd.AddCommand(newValidateCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newValidateCommand builds the validate subcommand. It checks a manifest
// file against the publication rules and prints the full report. An invalid
// manifest is reported through the exit code, not treated as a command error.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate MANIFEST_FILE",
		Short: "Validate a server manifest against the publication rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read manifest: %w", err)
			}

			report, err := schema.ValidateManifest(string(content))
			if err != nil {
				return fmt.Errorf("failed to validate manifest: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), report.Render())

			if !report.Valid {
				// Violations are in the report already, keep stderr quiet.
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return errManifestInvalid
			}
			return nil
		},
	}
}

// errManifestInvalid signals a clean validation run that found violations.
var errManifestInvalid = fmt.Errorf("manifest has violations")
