//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package pserver

import "github.com/PartDesk/PartDesk/common/interfaces"

// Functional options

//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger interfaces.Logger) func(*PServer) error {
	return func(e *PServer) error {
		e.Logger = logger
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithListen(listen string) func(*PServer) error {
	return func(e *PServer) error {
		e.Listen = listen
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithHTTPTimeout(t int) func(*PServer) error {
	return func(e *PServer) error {
		e.HTTPTimeout = t
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithHTTPIdleTimeout(t int) func(*PServer) error {
	return func(e *PServer) error {
		e.HTTPIdleTimeout = t
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithHandlerTimeout(t int) func(*PServer) error {
	return func(e *PServer) error {
		e.HandlerTimeout = t
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithPenaltyBox(min, max int) func(*PServer) error {
	return func(e *PServer) error {
		e.PenaltyBoxMin = min
		e.PenaltyBoxMax = max
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithMaxConcurrent(m int) func(*PServer) error {
	return func(e *PServer) error {
		e.MaxConcurrent = m
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithLogFile(logfile string) func(*PServer) error {
	return func(e *PServer) error {
		e.LogFile = logfile
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithSEid(seid uint32) func(*PServer) error {
	return func(e *PServer) error {
		e.SEid = seid
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithHealthHandler(h bool) func(*PServer) error {
	return func(e *PServer) error {
		e.HealthHandler = h
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithDefaultHeaders(d bool) func(*PServer) error {
	return func(e *PServer) error {
		e.DefaultHeaders = d
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithDebug(d bool) func(*PServer) error {
	return func(e *PServer) error {
		e.Debug = d
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithAuthFunc(authFunc AuthFunc) func(*PServer) error {
	return func(e *PServer) error {
		e.AuthFunc = authFunc
		return nil
	}
}
