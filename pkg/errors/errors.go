// Package errors provides the error taxonomy for the fcb2b-go client.
// Callers can classify failures programmatically with errors.Is against the
// sentinel values, or unpack details with errors.As against the typed errors.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Sentinel errors for the fcb2b-go client
var (
	// ErrFetch indicates a transport or HTTP status failure reaching the
	// catalog endpoint or a signed service endpoint
	ErrFetch = errors.New("fetch failed")

	// ErrParse indicates a malformed or structurally unusable document
	ErrParse = errors.New("parse failed")

	// ErrInvalidURL indicates a URL that cannot be canonicalized for signing
	ErrInvalidURL = errors.New("invalid url")

	// ErrSignatureMismatch indicates a signed URL whose signature does not
	// match the canonical query it carries
	ErrSignatureMismatch = errors.New("signature mismatch")

	// ErrConfig indicates invalid application configuration
	ErrConfig = errors.New("invalid configuration")
)

// FetchError represents a failure to retrieve a remote document: either the
// request never completed, or it completed with a non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int // zero when the failure happened before a response arrived
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// NewFetchError creates a FetchError for a transport-level failure
func NewFetchError(url string, err error) *FetchError {
	return &FetchError{URL: url, Err: err}
}

// NewStatusError creates a FetchError for a non-2xx HTTP status
func NewStatusError(url string, statusCode int) *FetchError {
	return &FetchError{URL: url, StatusCode: statusCode}
}

// ParseError represents a document that could not be decoded. One skipped
// catalog entry is not a ParseError; an undecodable document is.
type ParseError struct {
	URL     string // source of the document, when known
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("parse document from %s: %s", e.URL, e.Message)
	}
	return fmt.Sprintf("parse document: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(url string, err error) *ParseError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{URL: url, Message: message, Err: err}
}

// InvalidURLError represents a URL that cannot be decomposed into the host
// and path needed for canonicalization.
type InvalidURLError struct {
	URL     string
	Message string
}

// Error implements the error interface
func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid url %q: %s", e.URL, e.Message)
}

// Is implements errors.Is support
func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

// NewInvalidURLError creates a new InvalidURLError
func NewInvalidURLError(url, message string) *InvalidURLError {
	return &InvalidURLError{URL: url, Message: message}
}

// SignatureError represents a signed URL that failed verification.
type SignatureError struct {
	URL     string
	Message string
}

// Error implements the error interface
func (e *SignatureError) Error() string {
	return fmt.Sprintf("verify %s: %s", e.URL, e.Message)
}

// Is implements errors.Is support
func (e *SignatureError) Is(target error) bool {
	return target == ErrSignatureMismatch
}

// NewSignatureError creates a new SignatureError
func NewSignatureError(url, message string) *SignatureError {
	return &SignatureError{URL: url, Message: message}
}

// ConfigError represents invalid application configuration.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Err: err}
}

// Helper functions for error checking

// IsFetch checks if an error is a fetch failure
func IsFetch(err error) bool {
	return errors.Is(err, ErrFetch)
}

// IsParse checks if an error is a parse failure
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsInvalidURL checks if an error is an invalid URL failure
func IsInvalidURL(err error) bool {
	return errors.Is(err, ErrInvalidURL)
}

// IsSignatureMismatch checks if an error is a signature verification failure
func IsSignatureMismatch(err error) bool {
	return errors.Is(err, ErrSignatureMismatch)
}

// IsConfig checks if an error is a configuration failure
func IsConfig(err error) bool {
	return errors.Is(err, ErrConfig)
}
