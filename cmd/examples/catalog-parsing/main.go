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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fcb2b-project/fcb2b-go/pkg/catalog"
	"github.com/fcb2b-project/fcb2b-go/pkg/display"
)

// directoryXML is a small service directory. The third entry is missing
// its AnonymousAccessPermitted element and is dropped during parsing.
const directoryXML = `<?xml version="1.0" encoding="UTF-8"?>
<ServiceDirectory xmlns:core="http://fcb2b.com/schemas/1.0/core">
  <ServiceProfile>
    <core:Name>StockCheck</core:Name>
    <core:Description>Real-time stock levels</core:Description>
    <core:AnonymousAccessPermitted>true</core:AnonymousAccessPermitted>
    <Version>
      <HTTPSRequestPath>https://des.buckwold.com/danciko/bwl/dancik-b2b/StockCheck</HTTPSRequestPath>
      <VersionNumber>1.0</VersionNumber>
      <Date>2024-01-15</Date>
    </Version>
  </ServiceProfile>
  <ServiceProfile>
    <core:Name>PriceList</core:Name>
    <core:Description>Current price book, no HTTPS binding yet</core:Description>
    <core:AnonymousAccessPermitted>false</core:AnonymousAccessPermitted>
    <Version>
      <VersionNumber>1.0</VersionNumber>
      <Date>2024-02-01</Date>
    </Version>
  </ServiceProfile>
  <ServiceProfile>
    <core:Name>Broken</core:Name>
    <core:Description>Entry without an access flag</core:Description>
    <Version>
      <VersionNumber>1.0</VersionNumber>
    </Version>
  </ServiceProfile>
</ServiceDirectory>`

func main() {
	fmt.Println("fcb2b-go - Catalog Parsing Example")
	fmt.Println("==================================")

	// Parse the directory document. Entries missing a mandatory element
	// are dropped rather than failing the whole document.
	fmt.Println("\n1. Parsing the directory document...")
	profiles, err := catalog.ParseCatalog([]byte(directoryXML))
	if err != nil {
		log.Fatalf("Failed to parse directory: %v", err)
	}
	fmt.Printf("   Parsed %d of 3 entries (one dropped as incomplete)\n", len(profiles))

	// List the surviving profiles.
	fmt.Println("\n2. Services in the directory:")
	display.FprintProfiles(os.Stdout, profiles)

	// Callable tells whether a profile carries an HTTPS binding.
	fmt.Println("3. Checking which services can be invoked:")
	for _, p := range profiles {
		fmt.Printf("   %-12s callable=%v\n", p.Name, p.Callable())
	}

	// Pretty-print and colorize the raw document, the way the interactive
	// tester shows it.
	fmt.Println("\n4. The document itself, highlighted:")
	fmt.Println(display.ColorizeXML(display.PrettyXML(directoryXML)))

	fmt.Println("\n✅ Example completed!")
}
