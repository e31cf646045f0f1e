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

// Package fcb2b provides version information for fcb2b-go and the fcB2B
// schema revision it targets.
package fcb2b

const (
	// Version is the current version of fcb2b-go
	Version = "1.0.0"

	// SchemaVersion is the fcB2B core schema revision this library targets.
	// The core namespace of catalog documents is pinned to this revision.
	SchemaVersion = "1.0"

	// UserAgent is sent on outbound HTTP requests
	UserAgent = "fcb2b-go/" + Version
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	Version       string
	SchemaVersion string
	UserAgent     string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:       Version,
		SchemaVersion: SchemaVersion,
		UserAgent:     UserAgent,
	}
}
