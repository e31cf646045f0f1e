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
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fcb2b-project/fcb2b-go/pkg/client"
	"github.com/fcb2b-project/fcb2b-go/pkg/display"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
)

func main() {
	fmt.Println("fcb2b-go - Simple Client Example")
	fmt.Println("================================")

	servicesURL := os.Getenv("FCB2B_SERVICES_URL")
	if servicesURL == "" {
		servicesURL = "https://des.buckwold.com/danciko/bwl/dancik-b2b/services"
	}
	secretKey := os.Getenv("FCB2B_SECRET_KEY")
	if secretKey == "" {
		secretKey = "yoursecretkey"
	}

	ctx := context.Background()

	// Create the client
	fmt.Println("\n1. Creating fcB2B client...")
	c := client.New(client.Config{
		ServicesURL: servicesURL,
		APIKey:      protocol.AnonymousAPIKey,
		SecretKey:   secretKey,
		Timeout:     20 * time.Second,
	})
	fmt.Printf("   Directory: %s\n", servicesURL)

	// Fetch the service directory
	fmt.Println("\n2. Fetching the service directory...")
	fmt.Println("   (Note: This will fail without network access to the supplier)")
	cat, err := c.Services(ctx)
	if err != nil {
		fmt.Printf("   ⚠️  Expected error (supplier unreachable): %v\n", err)
		fmt.Println("\nTo run against a real supplier:")
		fmt.Println("  1. Set FCB2B_SERVICES_URL to your supplier's directory URL")
		fmt.Println("  2. Set FCB2B_SECRET_KEY to your shared secret")
		fmt.Println("  3. Run this example again")
		return
	}

	// List the advertised services
	fmt.Println("\n3. Services advertised by the directory:")
	display.FprintProfiles(os.Stdout, cat.Profiles)

	// Sign a StockCheck request
	fmt.Println("4. Signing a StockCheck request...")
	service := cat.Profile("StockCheck")
	if !service.Callable() {
		log.Fatalf("directory advertises no callable StockCheck service")
	}

	signed, err := c.Sign(ctx, service.EndpointURL, map[string]string{
		protocol.ParamSupplierItemSKU: "B725-1612",
	})
	if err != nil {
		log.Fatalf("Failed to sign request: %v", err)
	}
	fmt.Printf("   Signed URL: %s\n", signed.URL)

	// Call the service
	fmt.Println("\n5. Calling the service...")
	resp, err := c.Get(ctx, signed.URL)
	if err != nil && resp == nil {
		log.Fatalf("Request failed: %v", err)
	}
	fmt.Printf("   HTTP %d\n", resp.StatusCode)
	fmt.Println(display.PrettyXML(string(resp.Body)))

	fmt.Println("\n✅ Example completed!")
}
