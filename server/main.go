//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package main

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/PartDesk/PartDesk/common"
	"github.com/PartDesk/PartDesk/common/interfaces"
	"github.com/PartDesk/PartDesk/common/null"
	"github.com/PartDesk/PartDesk/common/plogger"
	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/api"
	"github.com/PartDesk/PartDesk/server/data"
	"github.com/PartDesk/PartDesk/server/global"
)

var conf *global.ServerConfig
var logger interfaces.Logger
var apiInstance *api.API

func main() {
	var err error

	fmt.Println("")

	if len(os.Args) < 2 {
		usage()
		return
	}

	// Check for version request before loading any configuration
	if strings.ToLower(os.Args[1]) == "version" {
		common.Banner(global.Description, global.Version, global.Build)
		exit(0, false)
	}

	// Load or create configuration file
	conf, err = global.Config()
	if err != nil {
		fmt.Printf("Fatal config error: %v\n", err)
		exit(1, true)
	}

	switch strings.ToLower(os.Args[1]) {

	case "admin":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin <username> <password>")
			return
		}

		// Set up data access
		d, dataErr := data.New(conf, null.Logger())
		if dataErr != nil {
			fmt.Printf("Data error: %s\n", dataErr.Error())
			return
		}

		user := os.Args[2]
		pass := os.Args[3]

		// Set the admin user
		err = d.SetAuth(user, pass, schema.RoleAdmin)
		if err != nil {
			fmt.Printf("Error setting admin user: %s\n", err.Error())
			return
		}

		fmt.Printf("Password set for admin user \"%s\"\n", os.Args[2])
		d.Close()
		return

	case "foreground":
		startServer()

	case "listen":
		if len(os.Args) != 3 {
			fmt.Println("Usage: listen <address>")
			fmt.Println("Example: pd-server listen 127.0.0.1:8080")
			return
		}

		address := os.Args[2]
		if _, err = net.ResolveTCPAddr("tcp", address); err != nil {
			fmt.Printf("Invalid listen address: %v\n", err)
			return
		}

		global.ListenOverride = address
		startServer()

	default:
		usage()
	}
}

func usage() {
	fmt.Printf("Usage: %s <foreground | listen <address> | admin <user> <pass> | version>\n", os.Args[0])
}

func exit(code int, delay bool) {
	if delay {
		fmt.Printf("\nExiting with code %d in %d seconds...\n\n", code, global.ConsoleExitDelay)
		time.Sleep(global.ConsoleExitDelay * time.Second)
	} else {
		fmt.Printf("\nExiting with code %d\n\n", code)
	}
	os.Exit(code)
}

// startServer creates a logger from the loaded configuration and runs the
// API in the foreground until it stops
func startServer() {
	var err error

	logger, err = plogger.New(
		plogger.WithPrefix(global.LogName),
		plogger.WithLogFile(conf.SC.Get(global.ConfigLogFile).String()),
		plogger.WithLogStdout(conf.SC.Get(global.ConfigLogStdout).Bool()),
		plogger.WithRetention(conf.SC.Get(global.ConfigLogRetention).Int()),
		plogger.WithDebug(global.Debug))

	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		exit(1, false)
	}

	logger.Infof(1001, "%s %s (build %d) starting", global.Name, global.Version, global.Build)

	apiInstance = api.New(conf, logger)
	apiInstance.Start()
	apiInstance.Close()

	logger.Infof(1002, "%s stopped", global.Name)
}
