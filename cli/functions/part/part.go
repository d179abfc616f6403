//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package part

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/PartDesk/PartDesk/cli/communications"
	"github.com/PartDesk/PartDesk/cli/display"
	"github.com/PartDesk/PartDesk/cli/login"
	"github.com/PartDesk/PartDesk/cli/session"
	"github.com/PartDesk/PartDesk/cli/util"
	"github.com/PartDesk/PartDesk/common/schema"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "part",
		Short: "part functions",
		Long:  "part-related functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a subcommand is required\n")
			}
			return fmt.Errorf("unknown subcommand: %s\n", args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list parts",
		Long:  "request a list of parts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return partList()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <pk>",
		Short: "get part",
		Long:  "get information about the specified part",
		RunE: func(cmd *cobra.Command, args []string) error {
			return partGet(args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create name=<name> [ipn=<ipn>] [description=<text>] [category=<pk>] [units=<units>]",
		Short: "create part",
		Long:  "create a new part from key=value pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return partCreate(util.NewNVPairs(args))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <pk>",
		Short: "delete part",
		Long:  "delete the specified part from the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return partDelete(args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "list categories",
		Long:  "request the list of part categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return categoryList()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "tree <pk>",
		Short: "category tree",
		Long:  "request a category and all of its descendants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return categoryTree(args)
		},
	})

	return cmd
}

func partList() error {
	c := communications.New(login.Login())
	display.ErrorWrapper(display.PartTable(c.Get(schema.EndpointPartList)))
	return nil
}

func partGet(args []string) error {
	if len(args) == 0 {
		return errors.New("Part PK is required\n")
	}

	pk, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("Part PK must be numeric\n")
	}

	c := communications.New(login.Login())
	display.ErrorWrapper(display.GenericResp(c.Get(schema.Resolve(schema.EndpointPartDetail, schema.WithPK(pk)))))
	return nil
}

func partCreate(pairs *util.NVPairs) error {
	if !session.New(session.DefaultPath()).CanWrite() {
		return errors.New("Your role does not permit creating records\n")
	}

	values := pairs.ToMap()
	if values["name"] == "" {
		return errors.New("name=<name> is required\n")
	}

	req := schema.PartRequest{
		Name:        values["name"],
		IPN:         values["ipn"],
		Description: values["description"],
		Units:       values["units"],
		Active:      true,
	}
	if v := values["category"]; v != "" {
		req.CategoryPK, _ = strconv.Atoi(v)
	}

	c := communications.New(login.Login())
	display.ErrorWrapper(display.GenericResp(c.Post(schema.EndpointPartList, req)))
	return nil
}

func partDelete(args []string) error {
	if !session.New(session.DefaultPath()).CanDelete() {
		return errors.New("Your role does not permit deleting records\n")
	}

	if len(args) == 0 {
		return errors.New("Part PK is required\n")
	}

	pk, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("Part PK must be numeric\n")
	}

	c := communications.New(login.Login())
	display.ErrorWrapper(display.GenericResp(c.Delete(schema.Resolve(schema.EndpointPartDetail, schema.WithPK(pk)))))
	return nil
}

func categoryList() error {
	c := communications.New(login.Login())
	display.ErrorWrapper(display.CategoryTable(c.Get(schema.EndpointCategoryList)))
	return nil
}

func categoryTree(args []string) error {
	if len(args) == 0 {
		return errors.New("Category PK is required\n")
	}

	c := communications.New(login.Login())
	path, err := schema.ResolveStrict(schema.EndpointCategoryTree, schema.WithParam("id", args[0]))
	if err != nil {
		return err
	}
	display.ErrorWrapper(display.CategoryTable(c.Get(path)))
	return nil
}
