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

package fcb2b

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionConstants(t *testing.T) {
	// Verify version constants are not empty
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, SchemaVersion, "SchemaVersion should not be empty")
	assert.NotEmpty(t, UserAgent, "UserAgent should not be empty")

	// Verify expected values
	assert.Equal(t, "1.0.0", Version)
	assert.Equal(t, "1.0", SchemaVersion)
	assert.Equal(t, "fcb2b-go/1.0.0", UserAgent)
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	// Verify all fields are populated
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, SchemaVersion, info.SchemaVersion)
	assert.Equal(t, UserAgent, info.UserAgent)
}

func TestUserAgentCarriesVersion(t *testing.T) {
	assert.True(t, strings.HasSuffix(UserAgent, Version))
}
