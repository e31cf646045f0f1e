// Package server provides HTTP middleware for signed-URL verification.
//
// The server package implements HTTP middleware that verifies the Signature
// query parameter on incoming fcB2B requests. This is the receiving side of
// the protocol: a supplier wraps its service handlers with the middleware and
// every request is checked against the shared secret before the handler runs.
//
// # Features
//
//   - Automatic signature verification for incoming requests
//   - Verified parameters propagated through the request context
//   - Optional verification mode (allow unsigned requests)
//   - CORS preflight support (OPTIONS requests)
//   - Custom error handler support
//
// # Basic Usage
//
//	middleware := server.NewSignatureMiddleware("yoursecretkey")
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    result, ok := server.GetVerificationFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//
//	    // Process authenticated request
//	    fmt.Fprintf(w, "Request %s accepted", result.GlobalIdentifier())
//	})
//
//	http.Handle("/dancik-b2b/", middleware.Wrap(handler))
//
// # Optional Verification
//
//	// Allow unsigned requests to pass through
//	middleware.SetOptional(true)
//
// Optional mode only admits requests that carry no Signature parameter at
// all. A request that presents a Signature is always verified, so a forged
// signature cannot slip through by flipping the mode.
//
// # Custom Error Handler
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    log.Printf("Verification failed: %v", err)
//	    http.Error(w, "Custom error message", http.StatusForbidden)
//	})
//
// The error passed to the handler is the verifier's typed error, so a custom
// handler can distinguish a bad signature from a malformed URL with the
// errors package predicates.
//
// # How It Works
//
// The SignatureMiddleware performs the following steps for each request:
//
//  1. Skips verification for OPTIONS requests (CORS preflight)
//  2. In optional mode, passes unsigned requests straight through
//  3. Recomputes the canonical query and string-to-sign from the request
//  4. Compares the recomputed signature against the presented one
//  5. Adds the verification result to the request context
//  6. Calls the next handler in the chain
//
// If verification fails at any step, the middleware returns 401 Unauthorized
// and does not call the next handler.
//
// # Context Propagation
//
//	func myHandler(w http.ResponseWriter, r *http.Request) {
//	    result, ok := server.GetVerificationFromContext(r.Context())
//	    if !ok {
//	        // Unsigned request admitted by optional mode
//	        http.Error(w, "Forbidden", http.StatusForbidden)
//	        return
//	    }
//
//	    // Verified parameters, already decoded
//	    sku := result.Params[protocol.ParamSupplierItemSKU]
//	    log.Printf("request %s for item %s", result.GlobalIdentifier(), sku)
//	}
//
// # Thread Safety
//
// The middleware is safe for concurrent use by multiple goroutines once
// configured. Call SetOptional and SetErrorHandler before serving traffic.
//
// # Security Notes
//
//   - Always serve signed endpoints over HTTPS; the signature authenticates
//     the request but does not encrypt it
//   - Error responses never echo the expected signature
//   - Combine with verifier.WithMaxClockSkew to bound replay of old URLs
//
// See the verifier package for the verification rules and the signer package
// for the corresponding client-side URL construction.
package server
