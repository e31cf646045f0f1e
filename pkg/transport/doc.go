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

// Package transport provides the HTTP plumbing shared by catalog fetches
// and signed service invocations.
//
// The fcB2B protocol is GET-only: a directory fetch and a signed service
// call differ only in their URL. HTTPTransport centralizes what both need:
//
//   - a pooled HTTP client with a bounded per-request timeout
//   - User-Agent and Accept headers
//   - fully-read response bodies, so connections are always released
//   - error classification into the module's error taxonomy
//
// # Usage
//
//	t := transport.NewHTTPTransport(transport.WithTimeout(10 * time.Second))
//	resp, err := t.Get(ctx, signedURL)
//	if err != nil {
//	    // resp is still populated on non-2xx: the server's error body
//	    // passes through for the caller to surface
//	}
//
// Network failures and non-2xx statuses are both reported as
// *errors.FetchError; errors.IsFetch matches either. A non-2xx response
// additionally returns the Response so callers can relay the server's
// diagnostic body unmodified.
package transport
