//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package stock

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
		Use:   "stock",
		Short: "stock functions",
		Long:  "stock-related functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a subcommand is required\n")
			}
			return fmt.Errorf("unknown subcommand: %s\n", args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [part=<pk>]",
		Short: "list stock items",
		Long:  "request a list of stock items, optionally filtered by part",
		RunE: func(cmd *cobra.Command, args []string) error {
			return stockList(util.NewNVPairs(args))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <pk>",
		Short: "get stock item",
		Long:  "get information about the specified stock item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return stockGet(args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create part=<pk> quantity=<n> [location=<pk>] [batch=<batch>] [serial=<serial>]",
		Short: "create stock item",
		Long:  "create a new stock item from key=value pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return stockCreate(util.NewNVPairs(args))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "transfer <pk> location=<pk> [quantity=<n>]",
		Short: "transfer stock",
		Long:  "move a stock item, or part of it, to another location",
		RunE: func(cmd *cobra.Command, args []string) error {
			return stockTransfer(args, util.NewNVPairs(args))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <pk>",
		Short: "delete stock item",
		Long:  "delete the specified stock item from the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return stockDelete(args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "locations",
		Short: "list locations",
		Long:  "request the list of stock locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return locationList()
		},
	})

	return cmd
}

func stockList(pairs *util.NVPairs) error {
	c := communications.New(login.Login())
	if len(pairs.Pairs) > 0 {
		display.ErrorWrapper(display.StockTable(c.GetQuery(schema.EndpointStockList, pairs)))
	} else {
		display.ErrorWrapper(display.StockTable(c.Get(schema.EndpointStockList)))
	}
	return nil
}

func stockGet(args []string) error {
	if len(args) == 0 {
		return errors.New("Stock item PK is required\n")
	}

	pk, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("Stock item PK must be numeric\n")
	}

	c := communications.New(login.Login())
	display.ErrorWrapper(display.GenericResp(c.Get(schema.Resolve(schema.EndpointStockDetail, schema.WithPK(pk)))))
	return nil
}

func stockCreate(pairs *util.NVPairs) error {
	if !session.New(session.DefaultPath()).CanWrite() {
		return errors.New("Your role does not permit creating records\n")
	}

	values := pairs.ToMap()
	if values["part"] == "" {
		return errors.New("part=<pk> is required\n")
	}

	req := schema.StockItemRequest{
		Batch:  values["batch"],
		Serial: values["serial"],
	}
	req.PartPK, _ = strconv.Atoi(values["part"])
	if v := values["location"]; v != "" {
		req.LocationPK, _ = strconv.Atoi(v)
	}
	if v := values["quantity"]; v != "" {
		q, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("quantity must be numeric\n")
		}
		req.Quantity = q
	}

	c := communications.New(login.Login())
	display.ErrorWrapper(display.GenericResp(c.Post(schema.EndpointStockList, req)))
	return nil
}

func stockTransfer(args []string, pairs *util.NVPairs) error {
	if !session.New(session.DefaultPath()).CanWrite() {
		return errors.New("Your role does not permit modifying records\n")
	}

	if len(args) == 0 {
		return errors.New("Stock item PK is required\n")
	}

	if _, err := strconv.Atoi(args[0]); err != nil {
		return errors.New("Stock item PK must be numeric\n")
	}

	values := pairs.ToMap()
	if values["location"] == "" {
		return errors.New("location=<pk> is required\n")
	}

	req := schema.StockTransferRequest{}
	req.LocationPK, _ = strconv.Atoi(values["location"])
	if v := values["quantity"]; v != "" {
		q, qErr := strconv.ParseFloat(v, 64)
		if qErr != nil {
			return errors.New("quantity must be numeric\n")
		}
		req.Quantity = q
	}

	c := communications.New(login.Login())
	display.ErrorWrapper(display.GenericResp(c.Post(schema.Resolve(schema.EndpointStockTransfer, schema.WithParam("id", args[0])), req)))
	return nil
}

func stockDelete(args []string) error {
	if !session.New(session.DefaultPath()).CanDelete() {
		return errors.New("Your role does not permit deleting records\n")
	}

	if len(args) == 0 {
		return errors.New("Stock item PK is required\n")
	}

	pk, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("Stock item PK must be numeric\n")
	}

	c := communications.New(login.Login())
	display.ErrorWrapper(display.GenericResp(c.Delete(schema.Resolve(schema.EndpointStockDetail, schema.WithPK(pk)))))
	return nil
}

func locationList() error {
	c := communications.New(login.Login())
	display.ErrorWrapper(display.LocationTable(c.Get(schema.EndpointLocationList)))
	return nil
}
