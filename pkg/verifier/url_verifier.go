package verifier

import (
	"context"
	"net/http"

	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
)

// URLVerifier validates fcB2B signed URLs: the server-side mirror of the
// signer
type URLVerifier interface {
	// VerifyURL checks the Signature parameter on a complete signed URL
	// against the shared secret, returning the verified parameters
	VerifyURL(ctx context.Context, signedURL string, secretKey string) (*Verification, error)

	// VerifyRequest verifies an inbound HTTP request as received by a
	// server handler
	VerifyRequest(ctx context.Context, req *http.Request, secretKey string) (*Verification, error)
}

// Verification is the successful outcome of verifying a signed URL.
type Verification struct {
	// Params are the decoded query parameters the signature covers. The
	// Signature parameter itself is not among them.
	Params map[string]string

	// StringToSign is the canonical payload recomputed from the request
	StringToSign string

	// Signature is the base64 signature the caller presented
	Signature string
}

// GlobalIdentifier returns the request correlation identifier, or "".
func (v *Verification) GlobalIdentifier() string {
	if v == nil {
		return ""
	}
	return v.Params[protocol.ParamGlobalIdentifier]
}
