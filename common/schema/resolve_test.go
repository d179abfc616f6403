/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSymbolicName(t *testing.T) {
	assert.Equal(t, "/api/part/", Resolve(EndpointPartList))
	assert.Equal(t, "/api/stock/", Resolve(EndpointStockList))
	assert.Equal(t, "/api/", Resolve(EndpointServerInfo))
}

func TestResolvePKSubstitution(t *testing.T) {
	// A template with an :id placeholder gets the key substituted
	assert.Equal(t, "/api/part/42/", Resolve(EndpointPartDetail, WithPK(42)))
	assert.Equal(t, "/api/stock/7/", Resolve(EndpointStockDetail, WithPK(7)))
	assert.Equal(t, "/api/stock/7/transfer/", Resolve(EndpointStockTransfer, WithPK(7)))
}

func TestResolvePKAppended(t *testing.T) {
	// A template without a placeholder gets the key appended as a
	// segment with a trailing slash
	assert.Equal(t, "/api/part/42/", Resolve(EndpointPartList, WithPK(42)))
	assert.Equal(t, "/api/location/3/", Resolve(EndpointLocationList, WithPK(3)))
}

func TestResolveLiteralPath(t *testing.T) {
	// Paths already carrying the prefix pass through unchanged
	assert.Equal(t, "/api/part/1/", Resolve("/api/part/1/"))

	// Anything else is treated as a path relative to the prefix
	assert.Equal(t, "/api/custom/", Resolve("custom/"))
	assert.Equal(t, "/api/custom/", Resolve("/custom/"))
}

func TestResolveNamedParams(t *testing.T) {
	assert.Equal(t, "/api/category/3/tree/",
		Resolve(EndpointCategoryTree, WithParam("id", "3")))

	assert.Equal(t, "/api/build/9/allocate/",
		Resolve(EndpointBuildAllocate, WithParams(map[string]string{"id": "9"})))
}

func TestResolveIsPure(t *testing.T) {
	first := Resolve(EndpointPartDetail, WithPK(5))
	second := Resolve(EndpointPartDetail, WithPK(5))
	assert.Equal(t, first, second)
}

func TestResolveStrict(t *testing.T) {
	// All tokens substituted
	path, err := ResolveStrict(EndpointCategoryTree, WithPK(4))
	require.NoError(t, err)
	assert.Equal(t, "/api/category/4/tree/", path)

	// Missing parameter fails loudly instead of producing a request
	// containing a raw token
	_, err = ResolveStrict(EndpointCategoryTree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":id")

	// A typo in the parameter name is a failure, not a silent pass-through
	_, err = ResolveStrict(EndpointCategoryTree, WithParam("pk", "4"))
	require.Error(t, err)
}

func TestKnownEndpoint(t *testing.T) {
	assert.True(t, KnownEndpoint(EndpointPartList))
	assert.True(t, KnownEndpoint(EndpointBarcode))
	assert.False(t, KnownEndpoint("no_such_endpoint"))
}

func TestEndpointsComplete(t *testing.T) {
	names := Endpoints()
	assert.Contains(t, names, EndpointLogin)
	assert.Contains(t, names, EndpointImport)
	assert.Contains(t, names, EndpointBuildAllocate)
}
