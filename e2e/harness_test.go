//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

// Package e2e drives the CLI client packages against an in-process server.
// The server is assembled through the same Build path production uses, but
// served via httptest so no port is opened and each test gets a fresh
// database.
package e2e

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/PartDesk/PartDesk/cli/communications"
	cliglobal "github.com/PartDesk/PartDesk/cli/global"
	"github.com/PartDesk/PartDesk/common/null"
	"github.com/PartDesk/PartDesk/common/pconf"
	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/api"
	"github.com/PartDesk/PartDesk/server/global"
)

// newServer points the CLI communications layer at the server under test.
// PD_SERVER (from the environment or a .env file) selects an external
// instance; when unset, a seeded in-process server on a temp database is
// built instead.
func newServer(t *testing.T) {
	t.Helper()

	_ = godotenv.Load()
	if url := os.Getenv("PD_SERVER"); url != "" {
		cliglobal.ServerURL = url
		return
	}

	dir := t.TempDir()

	c, err := pconf.New(pconf.WithFile(filepath.Join(dir, "pd-server.conf")))
	require.NoError(t, err)

	conf := &global.ServerConfig{C: c}
	conf.SC = c.NewSet(global.ConfigServerSet)
	conf.SP = c.NewSet(global.ConfigPrivate)
	conf.SC.Set(global.ConfigDBPath, dir)
	conf.SC.Set(global.ConfigInstanceName, "E2E Bench")
	conf.SC.Set(global.ConfigAccessTokenLife, 60)
	conf.SC.Set(global.ConfigRefreshTokenLife, 120)
	conf.SC.Set(global.ConfigHTTPTimeout, 30)
	conf.SC.Set(global.ConfigHTTPIdleTimeout, 30)
	conf.SC.Set(global.ConfigHandlerTimeout, 30)
	conf.SC.Set(global.ConfigMaxConcurrent, 10)

	a := api.New(conf, null.Logger())

	srv, err := a.Build()
	require.NoError(t, err)

	handler, err := srv.Handler()
	require.NoError(t, err)

	ts := httptest.NewServer(handler)
	t.Cleanup(func() {
		ts.Close()
		a.Close()
	})

	cliglobal.ServerURL = ts.URL
}

// credentials returns the demo login, overridable via PD_USER and PD_PASS
func credentials() (string, string) {
	user := os.Getenv("PD_USER")
	if user == "" {
		user = "admin"
	}
	pass := os.Getenv("PD_PASS")
	if pass == "" {
		pass = "inventree"
	}
	return user, pass
}

// login authenticates with the demo credentials and returns a comms
// instance carrying the access token, plus the refresh token
func login(t *testing.T) (cliglobal.Comms, string) {
	t.Helper()

	user, pass := credentials()
	code, data, err := communications.New().Post(
		schema.EndpointLogin, schema.NewLoginRequest(user, pass))
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var resp schema.APILoginResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	return communications.New(resp.AccessToken), resp.RefreshToken
}
