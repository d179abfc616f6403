//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// The resolver turns a symbolic endpoint (or a literal path) plus an
// optional primary key and named path parameters into a concrete request
// path. It is a pure function: no I/O, no global state, identical inputs
// always produce identical output.

type resolution struct {
	pk     int
	hasPK  bool
	params map[string]string
}

// ResolveOption configures a single resolution
type ResolveOption func(*resolution)

// WithPK supplies a record primary key. If the template contains an :id
// placeholder the key replaces it, otherwise the key is appended as a path
// segment with a trailing slash.
func WithPK(pk int) ResolveOption {
	return func(r *resolution) {
		r.pk = pk
		r.hasPK = true
	}
}

// WithParam supplies a single named path parameter, replacing the
// corresponding :name token in the template.
func WithParam(name, value string) ResolveOption {
	return func(r *resolution) {
		if r.params == nil {
			r.params = make(map[string]string)
		}
		r.params[name] = value
	}
}

// WithParams supplies named path parameters in bulk
func WithParams(params map[string]string) ResolveOption {
	return func(r *resolution) {
		if r.params == nil {
			r.params = make(map[string]string, len(params))
		}
		for k, v := range params {
			r.params[k] = v
		}
	}
}

// Resolve builds a request path from a symbolic endpoint name or a literal
// path. Tokens without a matching parameter are left intact; validating
// that every token was substituted is the caller's responsibility (see
// ResolveStrict).
func Resolve(endpoint string, opts ...ResolveOption) string {
	var r resolution
	for _, opt := range opts {
		opt(&r)
	}

	// Known symbolic endpoint translates to its template, anything else
	// is treated as a literal path
	path, ok := endpointPaths[endpoint]
	if !ok {
		path = endpoint
	}

	// Prepend the API prefix unless already present
	if !strings.HasPrefix(path, APIPrefix) {
		path = APIPrefix + strings.TrimPrefix(path, "/")
	}

	// Primary key: substitute the :id placeholder if the template has
	// one, otherwise append the key as its own segment
	if r.hasPK {
		pk := strconv.Itoa(r.pk)
		if strings.Contains(path, ":id") {
			path = strings.ReplaceAll(path, ":id", pk)
		} else {
			if !strings.HasSuffix(path, "/") {
				path += "/"
			}
			path += pk + "/"
		}
	}

	// Named path parameters
	for name, value := range r.params {
		path = strings.ReplaceAll(path, ":"+name, value)
	}

	return path
}

// ResolveStrict behaves like Resolve but returns an error if any :token
// remains unresolved in the result. A typo in a parameter name or a missing
// map entry therefore fails loudly instead of producing a malformed request.
func ResolveStrict(endpoint string, opts ...ResolveOption) (string, error) {
	path := Resolve(endpoint, opts...)
	if unresolved := unresolvedTokens(path); len(unresolved) > 0 {
		return "", fmt.Errorf("unresolved path parameters: %s", strings.Join(unresolved, ", "))
	}
	return path, nil
}

// unresolvedTokens returns the :name tokens still present in a path
func unresolvedTokens(path string) []string {
	var tokens []string
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, ":") && len(segment) > 1 {
			tokens = append(tokens, segment)
		}
	}
	return tokens
}
