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
	"strings"
	"time"

	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
	"github.com/fcb2b-project/fcb2b-go/pkg/signer"
	"github.com/fcb2b-project/fcb2b-go/pkg/verifier"
)

func main() {
	fmt.Println("fcb2b-go - Offline Signing Example")
	fmt.Println("==================================")

	ctx := context.Background()
	secretKey := "yoursecretkey"

	// Build a fixed parameter set. Production code would generate a fresh
	// GlobalIdentifier and TimeStamp per request; fixed values make the
	// output of this example reproducible.
	fmt.Println("\n1. Building request parameters...")
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	params := protocol.BaseParams("id1", ts, protocol.AnonymousAPIKey)
	for key, value := range params {
		fmt.Printf("   %s = %s\n", key, value)
	}

	// Sign the request. No network access is needed at any point.
	fmt.Println("\n2. Signing the request...")
	s := signer.NewDefaultRequestSigner()
	signed, err := s.SignRequest(ctx, "https://example.com/path", params, secretKey)
	if err != nil {
		log.Fatalf("Failed to sign request: %v", err)
	}

	fmt.Printf("   Canonical query: %s\n", signed.CanonicalQuery)
	fmt.Printf("   String to sign:  %q\n", signed.StringToSign)
	fmt.Printf("   Signature:       %s\n", signed.Signature)
	fmt.Printf("   Signed URL:      %s\n", signed.URL)

	// Verify the signed URL the way a receiving server would.
	fmt.Println("\n3. Verifying the signed URL...")
	v := verifier.NewDefaultURLVerifier()
	verification, err := v.VerifyURL(ctx, signed.URL, secretKey)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	fmt.Printf("   ✅ Signature valid for request %s\n", verification.GlobalIdentifier())

	// A tampered URL must fail verification.
	fmt.Println("\n4. Verifying a tampered URL...")
	tampered := strings.Replace(signed.URL, "id1", "id2", 1)
	if _, err := v.VerifyURL(ctx, tampered, secretKey); err != nil {
		fmt.Printf("   ✅ Tampering detected: %v\n", err)
	} else {
		log.Fatal("tampered URL unexpectedly verified")
	}

	fmt.Println("\n✅ Example completed!")
}
