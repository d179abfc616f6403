//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PartDesk/PartDesk/cli/functions/export"
	"github.com/PartDesk/PartDesk/cli/functions/imports"
	"github.com/PartDesk/PartDesk/cli/functions/info"
	"github.com/PartDesk/PartDesk/cli/functions/order"
	"github.com/PartDesk/PartDesk/cli/functions/part"
	"github.com/PartDesk/PartDesk/cli/functions/scanner"
	"github.com/PartDesk/PartDesk/cli/functions/stock"
	"github.com/PartDesk/PartDesk/cli/functions/user"
	"github.com/PartDesk/PartDesk/cli/functions/version"
	"github.com/PartDesk/PartDesk/cli/global"
)

func main() {
	var err error

	// Get the name of this binary, eliminating any path information
	progName := os.Args[0]
	progName = progName[strings.LastIndex(progName, "/")+1:]

	// Initialize the root command
	rootCmd := &cobra.Command{
		Use:   progName,
		Short: global.Description,
		Long:  global.LongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("A subcommand is required\n")
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Allow the server URL to be overridden on the command line
	rootCmd.PersistentFlags().StringVar(&global.ServerURL, "server", "", "server URL (defaults to PD_SERVER)")

	// Add the functions
	rootCmd.AddCommand(export.Register())
	rootCmd.AddCommand(imports.Register())
	rootCmd.AddCommand(info.Register())
	rootCmd.AddCommand(order.Register())
	rootCmd.AddCommand(part.Register())
	rootCmd.AddCommand(scanner.Register())
	rootCmd.AddCommand(stock.Register())
	rootCmd.AddCommand(user.Register())
	rootCmd.AddCommand(version.Register())

	// Execute the CLI
	err = rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
