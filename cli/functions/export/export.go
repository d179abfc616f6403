//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/PartDesk/PartDesk/cli/communications"
	"github.com/PartDesk/PartDesk/cli/display"
	"github.com/PartDesk/PartDesk/cli/importer"
	"github.com/PartDesk/PartDesk/cli/login"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "export <part|stock> [file.csv]",
		Short: "export records to CSV",
		Long:  "export parts or stock items as CSV, to a file or stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args)
		},
	}
}

func execute(args []string) error {
	if len(args) == 0 {
		return errors.New("model is required\n")
	}

	var out io.Writer = os.Stdout
	if len(args) > 1 {
		file, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("unable to create %s: %w", args[1], err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	c := communications.New(login.Login())

	var count int
	var err error
	switch args[0] {
	case "part", "parts":
		count, err = importer.ExportParts(c, out)
	case "stock":
		count, err = importer.ExportStock(c, out)
	default:
		return fmt.Errorf("unknown export model: %s", args[0])
	}
	if err != nil {
		return err
	}

	if len(args) > 1 {
		display.Success("exported %d record(s) to %s", count, args[1])
	}
	return nil
}
