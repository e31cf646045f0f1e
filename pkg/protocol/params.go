// Copyright (C) 2026 FCB2B Project
//
// This file is part of fcb2b-go.
//
// fcb2b-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fcb2b-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fcb2b-go.  If not, see <https://www.gnu.org/licenses/>.

package protocol

import "time"

// Wire parameter names. Canonicalization is case-sensitive, so these exact
// spellings are load-bearing: a request built with "timestamp" instead of
// "TimeStamp" produces a different signature and is rejected server-side.
const (
	// ParamGlobalIdentifier carries the per-request correlation UUID.
	ParamGlobalIdentifier = "GlobalIdentifier"

	// ParamTimeStamp carries the request time. Note the capital S; fcB2B
	// servers validate against this spelling.
	ParamTimeStamp = "TimeStamp"

	// ParamAPIKey identifies the calling trading partner. The shared
	// anonymous key is accepted by services whose profile advertises
	// AnonymousAccessAllowed.
	ParamAPIKey = "apiKey"

	// ParamSupplierItemSKU is the item identifier understood by the
	// item-oriented services (StockCheck, InventoryInquiry, RelatedItems).
	ParamSupplierItemSKU = "SupplierItemSKU"

	// ParamSignature carries the request signature. It is appended to the
	// final URL after signing and is never part of the canonical query.
	ParamSignature = "Signature"
)

// AnonymousAPIKey is the well-known key accepted by services that permit
// anonymous access.
const AnonymousAPIKey = "anonymous"

// CoreNamespace is the XML namespace of the fcB2B core schema. Directory
// documents qualify the service name, description, and access-permission
// elements with it.
const CoreNamespace = "http://fcb2b.com/schemas/1.0/core"

// FormatTimeStamp renders t in the timestamp format fcB2B servers expect:
// YYYY-MM-DDTHH:MM:SSZ. The time is converted to UTC and fractional seconds
// are dropped.
func FormatTimeStamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// BaseParams builds the three parameters every signed fcB2B request
// carries. Service-specific parameters are merged on top by the caller.
func BaseParams(globalID string, ts time.Time, apiKey string) map[string]string {
	return map[string]string{
		ParamGlobalIdentifier: globalID,
		ParamTimeStamp:        FormatTimeStamp(ts),
		ParamAPIKey:           apiKey,
	}
}
