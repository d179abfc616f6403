/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PartDesk/PartDesk/cli/util"
	"github.com/PartDesk/PartDesk/common/schema"
)

// fakeComms serves canned responses keyed by endpoint name
type fakeComms struct {
	responses map[string]fakeResponse
	calls     []string
}

type fakeResponse struct {
	code int
	body []byte
	err  error
}

func (f *fakeComms) SetToken(_ string) {}

func (f *fakeComms) Get(endpoint string) (int, []byte, error) {
	f.calls = append(f.calls, endpoint)
	r, ok := f.responses[endpoint]
	if !ok {
		return 404, nil, nil
	}
	return r.code, r.body, r.err
}

func (f *fakeComms) GetQuery(endpoint string, _ *util.NVPairs) (int, []byte, error) {
	return f.Get(endpoint)
}

func (f *fakeComms) Post(endpoint string, _ interface{}) (int, []byte, error) {
	return f.Get(endpoint)
}

func (f *fakeComms) Put(endpoint string, _ interface{}) (int, []byte, error) {
	return f.Get(endpoint)
}

func (f *fakeComms) Delete(endpoint string) (int, []byte, error) {
	return f.Get(endpoint)
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestStoreStartsEmpty(t *testing.T) {
	s := New("")
	state := s.Get()
	assert.Equal(t, uint64(0), state.Generation)
	assert.False(t, state.Authenticated)
	assert.Empty(t, state.ServerURL)
}

func TestReplaceIsWholeValue(t *testing.T) {
	s := New("")

	s.SetServer("http://localhost:8080")
	s.SetUser(schema.UserMeta{User: "admin", Role: schema.RoleAdmin})

	state := s.Get()
	assert.Equal(t, "http://localhost:8080", state.ServerURL)
	assert.Equal(t, "admin", state.User.User)
	assert.True(t, state.Authenticated)

	// Clearing auth removes the user but keeps the server metadata
	s.ClearAuth()
	state = s.Get()
	assert.Equal(t, "http://localhost:8080", state.ServerURL)
	assert.Empty(t, state.User.User)
	assert.False(t, state.Authenticated)
}

func TestGenerationOrdersReplacements(t *testing.T) {
	s := New("")

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				s.Replace(func(state State) State {
					return state
				})
			}
		}()
	}
	wg.Wait()

	// Every replacement advanced the counter exactly once
	assert.Equal(t, uint64(writers*perWriter), s.Generation())
}

func TestSubscribe(t *testing.T) {
	s := New("")

	ch, cancel := s.Subscribe()
	defer cancel()

	s.SetServer("http://example.test")

	select {
	case state := <-ch:
		assert.Equal(t, "http://example.test", state.ServerURL)
		assert.Equal(t, uint64(1), state.Generation)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the new snapshot")
	}
}

func TestSubscribeNeverBlocksWriters(t *testing.T) {
	s := New("")

	// Subscriber that never reads
	_, cancel := s.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			s.SetServer("http://example.test")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("a slow subscriber blocked Replace")
	}
}

func TestSubscribeCancel(t *testing.T) {
	s := New("")

	ch, cancel := s.Subscribe()
	cancel()

	// Channel is closed, not leaked
	_, open := <-ch
	assert.False(t, open)

	// Cancel is idempotent
	cancel()
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := New(path)
	s.SetServer("http://localhost:8080")
	s.SetUser(schema.UserMeta{User: "admin"})

	// A new store at the same path resumes where the old one stopped
	restored := New(path)
	state := restored.Get()
	assert.Equal(t, uint64(2), state.Generation)
	assert.Equal(t, "http://localhost:8080", state.ServerURL)
	assert.Equal(t, "admin", state.User.User)
	assert.True(t, state.Authenticated)
}

func TestFetchServerInfo(t *testing.T) {
	c := &fakeComms{responses: map[string]fakeResponse{
		schema.EndpointServerInfo: {code: 200, body: mustMarshal(t, schema.APIServerInfoResponse{
			Status: "ok", Code: 200,
			Data: schema.ServerInfo{Server: "PartDesk", InstanceName: "Test Bench", APIVersion: 1},
		})},
		schema.EndpointAuthConfig: {code: 200, body: mustMarshal(t, schema.APIAuthConfigResponse{
			Status: "ok", Code: 200,
			Data: schema.AuthConfig{RegistrationEnabled: true},
		})},
	}}

	s := New("")
	state, err := s.FetchServerInfo(c)
	require.NoError(t, err)

	assert.Equal(t, "Test Bench", state.Server.InstanceName)
	assert.True(t, s.RegistrationEnabled())
	assert.False(t, s.SSOEnabled())
	assert.False(t, state.FetchedAt.IsZero())
}

func TestFetchServerInfoKeepsStaleStateOnFailure(t *testing.T) {
	good := &fakeComms{responses: map[string]fakeResponse{
		schema.EndpointServerInfo: {code: 200, body: mustMarshal(t, schema.APIServerInfoResponse{
			Data: schema.ServerInfo{InstanceName: "Original"},
		})},
		schema.EndpointAuthConfig: {code: 200, body: mustMarshal(t, schema.APIAuthConfigResponse{})},
	}}

	s := New("")
	_, err := s.FetchServerInfo(good)
	require.NoError(t, err)
	before := s.Get()

	// The refresh fails; the previous snapshot must survive untouched
	bad := &fakeComms{responses: map[string]fakeResponse{
		schema.EndpointServerInfo: {err: errors.New("connection refused")},
	}}

	state, err := s.FetchServerInfo(bad)
	require.Error(t, err)
	assert.Equal(t, before, state)
	assert.Equal(t, before.Generation, s.Generation())
	assert.Equal(t, "Original", s.Get().Server.InstanceName)
}

func TestRolePredicates(t *testing.T) {
	s := New("")

	// With no signed-in user the session defers to the server
	assert.True(t, s.CanWrite())
	assert.True(t, s.CanDelete())

	s.SetUser(schema.UserMeta{User: "viewer", Role: schema.RoleReadOnly})
	assert.False(t, s.CanWrite())
	assert.False(t, s.CanDelete())

	s.SetUser(schema.UserMeta{User: "clerk", Role: schema.RoleUser})
	assert.True(t, s.CanWrite())
	assert.False(t, s.CanDelete())

	s.SetUser(schema.UserMeta{User: "admin", Role: schema.RoleAdmin})
	assert.True(t, s.CanWrite())
	assert.True(t, s.CanDelete())

	s.ClearAuth()
	assert.True(t, s.CanWrite())
	assert.True(t, s.CanDelete())
}

// gatedComms stalls the server-info GET until released, signalling when the
// fetch has entered the stalled call
type gatedComms struct {
	*fakeComms
	entered chan struct{}
	gate    <-chan struct{}
}

func (g *gatedComms) Get(endpoint string) (int, []byte, error) {
	if endpoint == schema.EndpointServerInfo {
		close(g.entered)
		<-g.gate
	}
	return g.fakeComms.Get(endpoint)
}

func TestFetchServerInfoDiscardsStaleFetch(t *testing.T) {
	s := New("")

	authBody := mustMarshal(t, schema.APIAuthConfigResponse{})

	gate := make(chan struct{})
	slow := &gatedComms{
		fakeComms: &fakeComms{responses: map[string]fakeResponse{
			schema.EndpointServerInfo: {code: 200, body: mustMarshal(t, schema.APIServerInfoResponse{
				Data: schema.ServerInfo{InstanceName: "Old"},
			})},
			schema.EndpointAuthConfig: {code: 200, body: authBody},
		}},
		entered: make(chan struct{}),
		gate:    gate,
	}

	fast := &fakeComms{responses: map[string]fakeResponse{
		schema.EndpointServerInfo: {code: 200, body: mustMarshal(t, schema.APIServerInfoResponse{
			Data: schema.ServerInfo{InstanceName: "New"},
		})},
		schema.EndpointAuthConfig: {code: 200, body: authBody},
	}}

	done := make(chan State, 1)
	go func() {
		state, _ := s.FetchServerInfo(slow)
		done <- state
	}()

	// Wait until the older fetch is in flight, then let a newer one
	// complete ahead of it
	select {
	case <-slow.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("stalled fetch never started")
	}

	_, err := s.FetchServerInfo(fast)
	require.NoError(t, err)
	require.Equal(t, "New", s.Get().Server.InstanceName)
	newer := s.Generation()

	close(gate)

	select {
	case state := <-done:
		// The older result was discarded and the newer snapshot returned
		assert.Equal(t, "New", state.Server.InstanceName)
	case <-time.After(5 * time.Second):
		t.Fatal("stalled fetch did not finish")
	}

	assert.Equal(t, "New", s.Get().Server.InstanceName)
	assert.Equal(t, newer, s.Generation())
}

func TestReplaceFrom(t *testing.T) {
	s := New("")

	// Matching generation installs and advances
	state, installed := s.ReplaceFrom(0, func(state State) State {
		state.ServerURL = "http://first.test"
		return state
	})
	assert.True(t, installed)
	assert.Equal(t, uint64(1), state.Generation)

	// A stale generation is rejected and the current state returned
	state, installed = s.ReplaceFrom(0, func(state State) State {
		state.ServerURL = "http://stale.test"
		return state
	})
	assert.False(t, installed)
	assert.Equal(t, "http://first.test", state.ServerURL)
	assert.Equal(t, uint64(1), s.Generation())
}
