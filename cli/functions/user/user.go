//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package user

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PartDesk/PartDesk/cli/communications"
	"github.com/PartDesk/PartDesk/cli/display"
	"github.com/PartDesk/PartDesk/cli/login"
	"github.com/PartDesk/PartDesk/cli/session"
	"github.com/PartDesk/PartDesk/common/schema"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "user functions",
		Long:  "user account functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a subcommand is required\n")
			}
			return fmt.Errorf("unknown subcommand: %s\n", args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "me",
		Short: "current user",
		Long:  "get the signed-in user's own account record",
		RunE: func(cmd *cobra.Command, args []string) error {
			return userMe()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list users",
		Long:  "request the list of user accounts (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return userList()
		},
	})

	return cmd
}

func userMe() error {
	c := communications.New(login.Login())
	code, data, err := c.Get(schema.EndpointUserMe)

	// Cache the account record so other commands can consult the role
	// without a round trip
	if err == nil && code == 200 {
		var resp schema.APIUserResponse
		if json.Unmarshal(data, &resp) == nil {
			session.New(session.DefaultPath()).SetUser(resp.Data)
		}
	}

	display.ErrorWrapper(display.GenericResp(code, data, err))
	return nil
}

func userList() error {
	c := communications.New(login.Login())
	display.ErrorWrapper(display.UserTable(c.Get(schema.EndpointUserList)))
	return nil
}
