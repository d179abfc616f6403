//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package order

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
		Use:   "order",
		Short: "order functions",
		Long:  "purchase, sales, and build order functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a subcommand is required\n")
			}
			return fmt.Errorf("unknown subcommand: %s\n", args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "po",
		Short: "list purchase orders",
		Long:  "request the list of purchase orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return orderList(schema.EndpointPurchaseOrderList)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "so",
		Short: "list sales orders",
		Long:  "request the list of sales orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return orderList(schema.EndpointSalesOrderList)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "bo",
		Short: "list build orders",
		Long:  "request the list of build orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return orderList(schema.EndpointBuildOrderList)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "allocate <build_pk> stock_item=<pk> quantity=<n>",
		Short: "allocate stock to a build",
		Long:  "allocate a stock item against the specified build order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildAllocate(args, util.NewNVPairs(args))
		},
	})

	return cmd
}

func orderList(endpoint string) error {
	c := communications.New(login.Login())
	display.ErrorWrapper(display.OrderTable(c.Get(endpoint)))
	return nil
}

func buildAllocate(args []string, pairs *util.NVPairs) error {
	if !session.New(session.DefaultPath()).CanWrite() {
		return errors.New("Your role does not permit modifying records\n")
	}

	if len(args) == 0 {
		return errors.New("Build order PK is required\n")
	}

	if _, err := strconv.Atoi(args[0]); err != nil {
		return errors.New("Build order PK must be numeric\n")
	}

	values := pairs.ToMap()
	if values["stock_item"] == "" || values["quantity"] == "" {
		return errors.New("stock_item=<pk> and quantity=<n> are required\n")
	}

	req := schema.BuildAllocateRequest{}
	req.StockItemPK, _ = strconv.Atoi(values["stock_item"])
	q, err := strconv.ParseFloat(values["quantity"], 64)
	if err != nil {
		return errors.New("quantity must be numeric\n")
	}
	req.Quantity = q

	path, err := schema.ResolveStrict(schema.EndpointBuildAllocate, schema.WithParam("id", args[0]))
	if err != nil {
		return err
	}

	c := communications.New(login.Login())
	display.ErrorWrapper(display.GenericResp(c.Post(path, req)))
	return nil
}
