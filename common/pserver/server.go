/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package pserver implements an HTTP server using the standard Go libraries
// and gorilla/mux. It provides a simple way to create a server with a set of
// routes and handlers. Each handler can be either a traditional
// http.Handler or a JHandler that returns an object to be marshalled to
// JSON. The assembled router is exposed via Handler() so tests can drive
// the server in-process without opening a socket.
package pserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"

	"github.com/gorilla/mux"

	"github.com/PartDesk/PartDesk/common/fields"
	"github.com/PartDesk/PartDesk/common/plogger"
)

// New returns a PServer struct with default values and options applied
func New(options ...func(*PServer) error) (*PServer, error) {
	s := &PServer{
		Listen:          "127.0.0.1:8080",
		HTTPTimeout:     60,
		HTTPIdleTimeout: 60,
		HandlerTimeout:  60,
		PenaltyBoxMin:   0,
		PenaltyBoxMax:   0,
		MaxConcurrent:   100,
		LogFile:         "",
		SEid:            0,
		HealthHandler:   true,
		DefaultHeaders:  true,
		Debug:           false,
	}

	// Process options (see options.go)
	for _, op := range options {
		err := op(s)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Handler assembles and returns the router as a plain http.Handler. It is
// used by Start and by in-process test harnesses.
func (s *PServer) Handler() (http.Handler, error) {
	var err error

	// If there is no logger, create a new one and include stdout
	if s.Logger == nil {
		s.Logger, err = plogger.New(
			plogger.WithLogFile(s.LogFile),
			plogger.WithLogStdout(true),
			plogger.WithRetention(0),
			plogger.WithDebug(s.Debug))
		if err != nil {
			return nil, err
		}
	}

	// Add default headers if requested
	if s.DefaultHeaders {
		s.AddHeader("Cache-Control", "no-cache, no-store, must-revalidate")
		s.AddHeader("Pragma", "no-cache")
		s.AddHeader("Expires", "0")
	}

	// Add the health handler if requested
	if s.HealthHandler {
		s.AddRoute(Route{
			Name:     "health",
			Methods:  []string{"GET"},
			Pattern:  "/health",
			JHandler: s.HandlerHealth,
		})
	}

	// Create a new gorilla/mux router
	router := mux.NewRouter()

	// Iterate through routes. Use JHandler if set, otherwise use Handler.
	// Wrap either with Wrapper() for logging.
	for _, route := range s.Routes {
		if route.JHandler != nil {
			handler := s.Wrapper(route.Name, s.JWrapper(route.Name, route.JHandler), route.AuthFunc)
			router.Handle(route.Pattern, handler).Methods(route.Methods...)
		} else if route.Handler != nil {
			handler := s.Wrapper(route.Name, route.Handler, route.AuthFunc)
			router.Handle(route.Pattern, handler).Methods(route.Methods...)
		}
	}

	// Add catch all and not found handlers
	router.NotFoundHandler = s.Wrapper("Handler404", s.JWrapper("Handler404", s.Handler404), s.AuthFunc)
	router.MethodNotAllowedHandler = s.Wrapper("Handler405", s.JWrapper("Handler405", s.Handler405), s.AuthFunc)

	return router, nil
}

// Start assembles the router and serves it
func (s *PServer) Start() error {

	router, err := s.Handler()
	if err != nil {
		return err
	}

	s.Logger.Info(s.SEid+1,
		"Starting server", fields.NewFields(fields.NewField("listen", s.Listen)))

	serv := &http.Server{
		Addr:              s.Listen,
		Handler:           router,
		ReadHeaderTimeout: time.Duration(s.HTTPTimeout) * time.Second,
		ReadTimeout:       time.Duration(s.HTTPTimeout) * time.Second,
		WriteTimeout:      time.Duration(s.HTTPTimeout) * time.Second,
		IdleTimeout:       time.Duration(s.HTTPIdleTimeout) * time.Second,
	}

	return s.listen(serv)
}

func (s *PServer) Stop() error {

	// Tell the server it has 10 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Protect against nil server
	if s.server == nil {
		return errors.New("server is not running")
	}

	// Shutdown the server
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %s", err.Error())
	}

	return nil
}

// AddRoutes adds routes to the router
func (s *PServer) AddRoutes(routes Routes) {
	for _, route := range routes {
		s.AddRoute(route)
	}
}

// AddRoute adds a route to the router
func (s *PServer) AddRoute(route Route) {
	s.Routes = append(s.Routes, route)
}

// AddHeader adds a header to the list
func (s *PServer) AddHeader(key, value string) {
	s.Headers = append(s.Headers, Header{key, value})
}

// listen is a replacement for ListenAndServe that implements a concurrent
// session limit using netutil.LimitListener. If MaxConcurrent is 0, no
// limit is imposed.
func (s *PServer) listen(server *http.Server) error {

	// Store the server to allow for a graceful shutdown
	s.server = server

	addr := s.server.Addr
	if addr == "" {
		addr = ":http"
	}

	rawListener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	var listener net.Listener
	if s.MaxConcurrent > 0 {
		listener = netutil.LimitListener(rawListener, s.MaxConcurrent)
	} else {
		listener = rawListener
	}

	return s.server.Serve(listener)
}
