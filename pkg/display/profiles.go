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

package display

import (
	"fmt"
	"io"

	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
)

// FprintProfiles writes a numbered listing of the discovered services.
// Numbering starts at 1 so it matches the selection prompt of the
// interactive tester.
func FprintProfiles(w io.Writer, profiles []*protocol.ServiceProfile) {
	fmt.Fprintf(w, "\nAvailable fcB2B Services:\n\n")
	for i, sp := range profiles {
		anonymous := "No"
		if sp.AnonymousAccessAllowed {
			anonymous = "Yes"
		}
		fmt.Fprintf(w, "%d. %s (v%s, %s)\n", i+1, sp.Name, sp.VersionNumber, sp.PublishedDate)
		fmt.Fprintf(w, "   Description : %s\n", sp.Description)
		fmt.Fprintf(w, "   Anonymous   : %s\n", anonymous)
		fmt.Fprintf(w, "   HTTPS URL   : %s\n\n", sp.EndpointURL)
	}
}
