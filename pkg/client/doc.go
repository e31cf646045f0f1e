// Package client provides the high-level fcB2B client: service discovery,
// request signing, and invocation behind one type.
//
// Client ties the lower layers together — catalog for discovery, signer
// for canonicalization and HMAC, transport for HTTP — and supplies the
// per-request values every call needs: a fresh correlation identifier, a
// UTC timestamp, and the API key.
//
// # Basic Usage
//
//	c := client.New(client.Config{
//	    ServicesURL: "https://b2b.example.com/services",
//	    APIKey:      "anonymous",
//	    SecretKey:   secretKey,
//	})
//
//	cat, err := c.Services(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	profile := cat.Profile("StockCheck")
//	resp, err := c.Invoke(ctx, profile, map[string]string{
//	    protocol.ParamSupplierItemSKU: "ABC-123",
//	})
//	if err != nil && resp == nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.StatusCode, string(resp.Body))
//
// A non-2xx invocation returns both the response and an error: the error
// classifies the failure, the response carries the server's diagnostic
// body unmodified.
//
// # Deterministic Signing
//
// Identifier and timestamp generation are injectable, which makes signed
// URLs reproducible in tests:
//
//	c := client.New(cfg,
//	    client.WithIDGenerator(func() string { return "id1" }),
//	    client.WithClock(func() time.Time { return fixedTime }),
//	)
//
// Sign builds and signs a request without issuing it, for offline signing
// or inspection; Get issues a URL signed earlier.
package client
