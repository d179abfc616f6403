//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package scanner

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PartDesk/PartDesk/cli/communications"
	"github.com/PartDesk/PartDesk/cli/display"
	"github.com/PartDesk/PartDesk/cli/login"
	"github.com/PartDesk/PartDesk/cli/scan"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [payload]",
		Short: "resolve barcodes",
		Long:  "resolve one barcode payload, or read payloads line by line from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args)
		},
	}
	return cmd
}

func execute(args []string) error {
	c := communications.New(login.Login())
	s := scan.New(c)

	report := func(r scan.Record) {
		if r.Success {
			display.Success("%s #%d -> %s", r.Kind, r.PK, r.URL)
		} else {
			display.Warning("no match: %s", r.Input)
		}
	}

	// Single payload on the command line
	if len(args) > 0 {
		record, err := s.Scan(args[0])
		if err != nil {
			return err
		}
		report(record)
		return nil
	}

	// Stream payloads from stdin until EOF
	fmt.Println("Reading barcode payloads from stdin, one per line...")
	if err := s.Run(scan.NewReaderSource(os.Stdin), report); err != nil {
		return err
	}

	if len(s.History()) == 0 {
		return errors.New("no payloads were scanned\n")
	}

	display.Info("%d scan(s) completed", len(s.History()))
	return nil
}
