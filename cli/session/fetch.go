/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/PartDesk/PartDesk/cli/global"
	"github.com/PartDesk/PartDesk/common/schema"
)

// SetServer records the server URL in the session
func (s *Store) SetServer(url string) State {
	return s.Replace(func(state State) State {
		state.ServerURL = url
		return state
	})
}

// SetUser records the signed-in user in the session
func (s *Store) SetUser(user schema.UserMeta) State {
	return s.Replace(func(state State) State {
		state.User = user
		state.Authenticated = true
		return state
	})
}

// ClearAuth removes the signed-in user, keeping the server metadata
func (s *Store) ClearAuth() State {
	return s.Replace(func(state State) State {
		state.User = schema.UserMeta{}
		state.Authenticated = false
		return state
	})
}

// FetchServerInfo refreshes the instance metadata and authentication
// configuration from the server. On any failure the previous snapshot is
// left in place, so a flaky network never blanks the session. A fetch that
// started before a newer fetch completed is discarded rather than
// installed, so a slow response cannot overwrite fresher state.
//
// Both endpoints are served before login. The auth-config endpoint must be
// reached without credentials, so callers pass a Comms that carries no
// bearer token; this method sends whatever credentials c holds.
func (s *Store) FetchServerInfo(c global.Comms) (State, error) {

	started := s.Generation()

	code, data, err := c.Get(schema.EndpointServerInfo)
	if err != nil {
		return s.Get(), fmt.Errorf("server info fetch failed: %w", err)
	}
	if code != 200 {
		return s.Get(), fmt.Errorf("server info fetch failed with HTTP status %d", code)
	}

	var infoResp schema.APIServerInfoResponse
	if err = json.Unmarshal(data, &infoResp); err != nil {
		return s.Get(), fmt.Errorf("failed to unmarshal server info: %w", err)
	}

	code, data, err = c.Get(schema.EndpointAuthConfig)
	if err != nil {
		return s.Get(), fmt.Errorf("auth config fetch failed: %w", err)
	}
	if code != 200 {
		return s.Get(), fmt.Errorf("auth config fetch failed with HTTP status %d", code)
	}

	var authResp schema.APIAuthConfigResponse
	if err = json.Unmarshal(data, &authResp); err != nil {
		return s.Get(), fmt.Errorf("failed to unmarshal auth config: %w", err)
	}

	// If the store moved on while this fetch was in flight, the result is
	// stale; keep the newer state
	state, _ := s.ReplaceFrom(started, func(state State) State {
		state.Server = infoResp.Data
		state.Auth = authResp.Data
		state.FetchedAt = time.Now()
		return state
	})
	return state, nil
}

// CanWrite reports whether the cached user's role permits creating or
// modifying records. A session with no signed-in user defaults to
// permitted; the server remains the authority either way.
func (s *Store) CanWrite() bool {
	state := s.Get()
	if !state.Authenticated {
		return true
	}
	return schema.CanWrite(state.User.Role)
}

// CanDelete reports whether the cached user's role permits deleting
// records, with the same unknown-session default as CanWrite
func (s *Store) CanDelete() bool {
	state := s.Get()
	if !state.Authenticated {
		return true
	}
	return schema.CanDelete(state.User.Role)
}

// SSOEnabled reports whether the connected server offers any SSO provider
func (s *Store) SSOEnabled() bool {
	return len(s.Get().Auth.SSOProviders) > 0
}

// RegistrationEnabled reports whether self-registration is offered
func (s *Store) RegistrationEnabled() bool {
	return s.Get().Auth.RegistrationEnabled
}
