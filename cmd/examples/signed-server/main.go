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
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fcb2b-project/fcb2b-go/pkg/client"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
	"github.com/fcb2b-project/fcb2b-go/pkg/server"
)

func main() {
	fmt.Println("fcb2b-go - Signed Server Example")
	fmt.Println("================================")

	ctx := context.Background()
	secretKey := "yoursecretkey"

	// Start a service endpoint guarded by the signature middleware.
	fmt.Println("\n1. Starting a signature-checking StockCheck endpoint...")
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	middleware := server.NewSignatureMiddleware(secretKey)
	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verification, _ := server.GetVerificationFromContext(r.Context())
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprintf(w, "<StockCheckResponse><GlobalIdentifier>%s</GlobalIdentifier><Quantity>42</Quantity></StockCheckResponse>",
			verification.GlobalIdentifier())
	}))

	srv := &http.Server{Handler: handler}
	go func() { _ = srv.Serve(listener) }()
	defer func() { _ = srv.Shutdown(ctx) }()

	addr := listener.Addr().String()
	fmt.Printf("   Listening on %s\n", addr)

	// Sign a request against the endpoint.
	fmt.Println("\n2. Signing a StockCheck request...")
	c := client.New(client.Config{
		APIKey:    protocol.AnonymousAPIKey,
		SecretKey: secretKey,
		Timeout:   5 * time.Second,
	})

	signed, err := c.Sign(ctx, "https://"+addr+"/dancik-b2b/StockCheck", map[string]string{
		protocol.ParamSupplierItemSKU: "B725-1612",
	})
	if err != nil {
		log.Fatalf("Failed to sign request: %v", err)
	}
	fmt.Printf("   Signed URL: %s\n", signed.URL)

	// Call the endpoint. The signature covers host, path, and query, not
	// the scheme, so the plain-HTTP demo server verifies it fine.
	fmt.Println("\n3. Calling the endpoint with the signed URL...")
	callURL := strings.Replace(signed.URL, "https://", "http://", 1)
	resp, err := http.Get(callURL)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	fmt.Printf("   HTTP %d\n", resp.StatusCode)
	fmt.Printf("   %s\n", body)

	// A tampered query parameter must be rejected.
	fmt.Println("\n4. Calling with a tampered item number...")
	tamperedURL := strings.Replace(callURL, "B725-1612", "B725-9999", 1)
	resp, err = http.Get(tamperedURL)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	fmt.Printf("   HTTP %d (%s)\n", resp.StatusCode, strings.TrimSpace(string(body)))
	if resp.StatusCode == http.StatusUnauthorized {
		fmt.Println("   ✅ Tampering detected by the middleware")
	}

	fmt.Println("\n✅ Example completed!")
}
