//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package info

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/PartDesk/PartDesk/cli/communications"
	"github.com/PartDesk/PartDesk/cli/display"
	"github.com/PartDesk/PartDesk/cli/global"
	"github.com/PartDesk/PartDesk/cli/session"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "server information",
		Long:  "fetch instance metadata and authentication configuration; does not require login",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute()
		},
	}
}

func execute() error {

	// The info endpoints are served without credentials, so only the
	// server URL is needed
	if global.ServerURL == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			_ = godotenv.Load(filepath.Join(homeDir, ".pdesk"))
		}
		global.ServerURL = os.Getenv("PD_SERVER")
	}
	if global.ServerURL == "" {
		return errors.New("PD_SERVER is not set\n")
	}

	store := session.New(session.DefaultPath())
	store.SetServer(global.ServerURL)

	state, err := store.FetchServerInfo(communications.New())
	if err != nil {
		// The previous snapshot, if any, is still valid
		display.Warning("%s", err.Error())
		state = store.Get()
		if state.FetchedAt.IsZero() {
			return errors.New("no server information available\n")
		}
		display.Info("showing cached server information from %s", state.FetchedAt.Format("2006-01-02 15:04:05"))
	}

	global.Pretty(state.Server)
	global.Pretty(state.Auth)
	return nil
}
