//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package data

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/db"
)

// ResolveBarcode matches a decoded barcode payload against parts, stock
// items, and locations. Payloads are JSON objects keyed by record kind,
// for example {"part": 1}. A non-match is not an error; the response
// carries Success=false and the caller reports HTTP 200.
func (d *Data) ResolveBarcode(payload string) (schema.APIBarcodeResponse, error) {
	if !gjson.Valid(payload) {
		return noMatch("barcode payload is not valid JSON"), nil
	}

	if r := gjson.Get(payload, "part"); r.Exists() {
		part, err := d.database.GetPart(int(r.Int()))
		if err != nil {
			return barcodeLookupResult(err)
		}
		return match("part", part.PK, part.Name, schema.EndpointPartDetail), nil
	}

	if r := gjson.Get(payload, "stockitem"); r.Exists() {
		item, err := d.database.GetStockItem(int(r.Int()))
		if err != nil {
			return barcodeLookupResult(err)
		}
		return match("stockitem", item.PK, "", schema.EndpointStockDetail), nil
	}

	if r := gjson.Get(payload, "stocklocation"); r.Exists() {
		loc, err := d.database.GetLocation(int(r.Int()))
		if err != nil {
			return barcodeLookupResult(err)
		}
		// Locations have no detail template; the resolver appends the key
		return match("stocklocation", loc.PK, loc.Name, schema.EndpointLocationList), nil
	}

	return noMatch("no matching records found"), nil
}

// barcodeLookupResult maps a record lookup failure to a no-match response,
// passing real database errors through
func barcodeLookupResult(err error) (schema.APIBarcodeResponse, error) {
	if errors.Is(err, db.ErrKeyNotFound) {
		return noMatch("no matching records found"), nil
	}
	return schema.APIBarcodeResponse{}, err
}

func match(kind string, pk int, name string, endpoint string) schema.APIBarcodeResponse {
	return schema.APIBarcodeResponse{
		Status:  schema.APIStatusOK,
		Code:    200,
		Success: true,
		URL:     schema.Resolve(endpoint, schema.WithPK(pk)),
		Match:   &schema.BarcodeMatch{Kind: kind, PK: pk, Name: name},
	}
}

func noMatch(details string) schema.APIBarcodeResponse {
	return schema.APIBarcodeResponse{
		Status:  schema.APIStatusOK,
		Code:    200,
		Details: details,
		Success: false,
	}
}
