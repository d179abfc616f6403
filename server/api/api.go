//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PartDesk/PartDesk/common/interfaces"
	"github.com/PartDesk/PartDesk/common/pserver"
	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/data"
	"github.com/PartDesk/PartDesk/server/global"
)

type API struct {
	logger interfaces.Logger
	conf   *global.ServerConfig
	data   *data.Data
}

func New(config *global.ServerConfig, logger interfaces.Logger) *API {
	return &API{logger: logger, conf: config}
}

func (a *API) Start() {
	var err error

	// Set up data access
	a.data, err = data.New(a.conf, a.logger)
	if err != nil {
		a.logger.Errorf(2004, "Data error: %s", err.Error())
		return
	}

	// Create the default admin account and demo data on first run
	if err = a.data.Seed(); err != nil {
		a.logger.Errorf(2005, "Seed error: %s", err.Error())
		return
	}

	// Loop until stopped
	for {
		// Start the API
		a.logger.Infof(2001, "Starting API")
		err = a.startAPI()
		if err != nil {
			a.logger.Errorf(2003, "API error: %s", err.Error())
		} else {
			a.logger.Infof(2002, "API stopped")
			return
		}

		// Sleep before trying again
		time.Sleep(10 * time.Second)
	}
}

func (a *API) startAPI() error {
	s, err := a.Build()
	if err != nil {
		return err
	}

	// Start the server
	err = s.Start()
	if err != nil {
		return fmt.Errorf("pserver Start(): %w", err)
	}
	return nil
}

// Build creates the server instance with all routes configured but does not
// start it. Tests drive the returned server through its Handler().
func (a *API) Build() (*pserver.PServer, error) {

	// Data access may already exist when called from Start()
	if a.data == nil {
		var err error
		a.data, err = data.New(a.conf, a.logger)
		if err != nil {
			return nil, err
		}
		if err = a.data.Seed(); err != nil {
			return nil, err
		}
	}

	// Obtain the listen address and check for command line override
	listen := a.conf.SC.Get(global.ConfigListen).String()
	if global.ListenOverride != "" {
		listen = global.ListenOverride
	}

	s, err := pserver.New(
		pserver.WithLogger(a.logger),
		pserver.WithSEid(2500),
		pserver.WithListen(listen),
		pserver.WithHTTPTimeout(a.conf.SC.Get(global.ConfigHTTPTimeout).Int()),
		pserver.WithHTTPIdleTimeout(a.conf.SC.Get(global.ConfigHTTPIdleTimeout).Int()),
		pserver.WithHandlerTimeout(a.conf.SC.Get(global.ConfigHandlerTimeout).Int()),
		pserver.WithMaxConcurrent(a.conf.SC.Get(global.ConfigMaxConcurrent).Int()),
		pserver.WithPenaltyBox(
			a.conf.SC.Get(global.ConfigPenaltyBoxMin).Int(),
			a.conf.SC.Get(global.ConfigPenaltyBoxMax).Int()))

	if err != nil {
		return nil, err
	}

	if s == nil {
		return nil, errors.New("pserver.New() returned nil")
	}

	// Unauthenticated routes: instance metadata, auth configuration,
	// login, and token refresh
	s.AddRoute(pserver.Route{
		Name:     "serverInfo",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointServerInfo),
		JHandler: a.getServerInfo,
		AuthFunc: nil})

	s.AddRoute(pserver.Route{
		Name:     "authConfig",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointAuthConfig),
		JHandler: a.getAuthConfig,
		AuthFunc: nil})

	s.AddRoute(pserver.Route{
		Name:     "login",
		Methods:  []string{"POST"},
		Pattern:  pattern(schema.EndpointLogin),
		JHandler: a.postLogin,
		AuthFunc: nil})

	s.AddRoute(pserver.Route{
		Name:     "refresh",
		Methods:  []string{"POST"},
		Pattern:  pattern(schema.EndpointRefresh),
		JHandler: a.postRefresh,
		AuthFunc: nil})

	s.AddRoute(pserver.Route{
		Name:     "logout",
		Methods:  []string{"POST"},
		Pattern:  pattern(schema.EndpointLogout),
		JHandler: a.postLogout,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	// Users
	s.AddRoute(pserver.Route{
		Name:     "userMe",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointUserMe),
		JHandler: a.getUserMe,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "userList",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointUserList),
		JHandler: a.getUserList,
		AuthFunc: a.NewAuthFunc(a.AuthAdmins())})

	// Parts and categories
	s.AddRoute(pserver.Route{
		Name:     "partList",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointPartList),
		JHandler: a.getPartList,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "partCreate",
		Methods:  []string{"POST"},
		Pattern:  pattern(schema.EndpointPartList),
		JHandler: a.postPart,
		AuthFunc: a.NewAuthFunc(a.AuthWriters())})

	s.AddRoute(pserver.Route{
		Name:     "partDetail",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointPartDetail),
		JHandler: a.getPart,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "partUpdate",
		Methods:  []string{"PUT", "PATCH"},
		Pattern:  pattern(schema.EndpointPartDetail),
		JHandler: a.putPart,
		AuthFunc: a.NewAuthFunc(a.AuthWriters())})

	s.AddRoute(pserver.Route{
		Name:     "partDelete",
		Methods:  []string{"DELETE"},
		Pattern:  pattern(schema.EndpointPartDetail),
		JHandler: a.deletePart,
		AuthFunc: a.NewAuthFunc(a.AuthAdmins())})

	s.AddRoute(pserver.Route{
		Name:     "categoryList",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointCategoryList),
		JHandler: a.getCategoryList,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "categoryTree",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointCategoryTree),
		JHandler: a.getCategoryTree,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	// Stock and locations
	s.AddRoute(pserver.Route{
		Name:     "stockList",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointStockList),
		JHandler: a.getStockList,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "stockCreate",
		Methods:  []string{"POST"},
		Pattern:  pattern(schema.EndpointStockList),
		JHandler: a.postStock,
		AuthFunc: a.NewAuthFunc(a.AuthWriters())})

	s.AddRoute(pserver.Route{
		Name:     "stockDetail",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointStockDetail),
		JHandler: a.getStock,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "stockDelete",
		Methods:  []string{"DELETE"},
		Pattern:  pattern(schema.EndpointStockDetail),
		JHandler: a.deleteStock,
		AuthFunc: a.NewAuthFunc(a.AuthAdmins())})

	s.AddRoute(pserver.Route{
		Name:     "stockTransfer",
		Methods:  []string{"POST"},
		Pattern:  pattern(schema.EndpointStockTransfer),
		JHandler: a.postStockTransfer,
		AuthFunc: a.NewAuthFunc(a.AuthWriters())})

	s.AddRoute(pserver.Route{
		Name:     "locationList",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointLocationList),
		JHandler: a.getLocationList,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	// Orders
	s.AddRoute(pserver.Route{
		Name:     "purchaseOrders",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointPurchaseOrderList),
		JHandler: a.getOrders(schema.OrderKindPurchase),
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "salesOrders",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointSalesOrderList),
		JHandler: a.getOrders(schema.OrderKindSales),
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "buildOrders",
		Methods:  []string{"GET"},
		Pattern:  pattern(schema.EndpointBuildOrderList),
		JHandler: a.getOrders(schema.OrderKindBuild),
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "buildAllocate",
		Methods:  []string{"POST"},
		Pattern:  pattern(schema.EndpointBuildAllocate),
		JHandler: a.postBuildAllocate,
		AuthFunc: a.NewAuthFunc(a.AuthWriters())})

	// Barcode resolution and import
	s.AddRoute(pserver.Route{
		Name:     "barcode",
		Methods:  []string{"POST"},
		Pattern:  pattern(schema.EndpointBarcode),
		JHandler: a.postBarcode,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(pserver.Route{
		Name:     "import",
		Methods:  []string{"POST"},
		Pattern:  pattern(schema.EndpointImport),
		JHandler: a.postImportRow,
		AuthFunc: a.NewAuthFunc(a.AuthWriters())})

	return s, nil
}

// Close closes open files, etc.
func (a *API) Close() {
	a.data.Close()
}

// pattern converts an endpoint's path template to a gorilla/mux pattern
func pattern(endpoint string) string {
	return strings.ReplaceAll(schema.Resolve(endpoint), ":id", "{id}")
}
