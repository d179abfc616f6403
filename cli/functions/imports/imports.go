//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package imports

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PartDesk/PartDesk/cli/communications"
	"github.com/PartDesk/PartDesk/cli/display"
	"github.com/PartDesk/PartDesk/cli/importer"
	"github.com/PartDesk/PartDesk/cli/login"
	"github.com/PartDesk/PartDesk/cli/session"
)

func Register() *cobra.Command {
	var rejects []int
	var mappings []string

	cmd := &cobra.Command{
		Use:   "import <part|stock> <file.csv>",
		Short: "import records from CSV",
		Long:  "upload a CSV file, map its columns, and commit the rows to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args, rejects, mappings)
		},
	}

	cmd.Flags().IntSliceVar(&rejects, "reject", nil, "row numbers to exclude (1-based, repeatable)")
	cmd.Flags().StringSliceVar(&mappings, "map", nil, "column mapping as col=field (repeatable, overrides auto-mapping)")
	return cmd
}

func execute(args []string, rejects []int, mappings []string) error {
	if !session.New(session.DefaultPath()).CanWrite() {
		return errors.New("Your role does not permit importing records\n")
	}

	if len(args) < 2 {
		return errors.New("model and file are required\n")
	}

	model := args[0]
	file, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", args[1], err)
	}
	defer func() { _ = file.Close() }()

	imp, err := importer.Upload(model, file)
	if err != nil {
		return err
	}

	// Apply manual column mappings
	for _, m := range mappings {
		parts := strings.SplitN(m, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid mapping %q, expected col=field", m)
		}
		col, convErr := strconv.Atoi(parts[0])
		if convErr != nil {
			return fmt.Errorf("invalid column in mapping %q", m)
		}
		if err = imp.MapColumn(col-1, parts[1]); err != nil {
			return err
		}
	}

	if len(imp.Mapping) == 0 {
		return errors.New("no columns could be mapped; use --map col=field\n")
	}

	// Exclude rejected rows
	for _, row := range rejects {
		imp.Reject(row)
	}

	display.Info("%d rows uploaded, %d columns mapped", len(imp.Rows), len(imp.Mapping))

	c := communications.New(login.Login())
	result, err := imp.Commit(c)
	if err != nil {
		return err
	}

	display.Success("created %d, duplicates %d, failed %d, skipped %d",
		result.Created, result.Duplicates, result.Failed, result.Skipped)

	// Show field errors for rows that failed
	for _, row := range imp.Rows {
		if len(row.Errors) > 0 {
			for field, msgs := range row.Errors {
				display.Failure("row %d %s: %s", row.Index, field, strings.Join(msgs, "; "))
			}
		}
	}

	return nil
}
