package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"sort"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// escapable reports whether byte c must be percent-encoded. Only the
// RFC 3986 unreserved set passes through: ASCII letters, digits, and
// '-', '_', '.', '~'.
func escapable(c byte) bool {
	if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '~':
		return false
	}
	return true
}

// PercentEncode escapes s using the unreserved alphabet: letters, digits,
// and '-', '_', '.', '~' pass through; every other byte of the UTF-8
// encoding becomes %XX in uppercase hex. Space becomes %20, never '+'.
//
// This is stricter than url.QueryEscape (which emits '+' for spaces) and
// than url.PathEscape (which leaves sub-delimiters unescaped), both of
// which would change the signed bytes.
func PercentEncode(s string) string {
	escapes := 0
	for i := 0; i < len(s); i++ {
		if escapable(s[i]) {
			escapes++
		}
	}
	if escapes == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*escapes)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escapable(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CanonicalQuery builds the canonical query string for params:
// encodedKey=encodedValue pairs joined by '&', ordered by byte-wise
// comparison of the raw (unencoded) keys. An empty or nil map yields "".
//
// The input map is never modified.
func CanonicalQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = PercentEncode(k) + "=" + PercentEncode(params[k])
	}
	return strings.Join(pairs, "&")
}

// StringToSign assembles the signing payload: the literal verb GET, the
// host, the path, and the canonical query string, joined by '\n'. There is
// no trailing newline; an empty canonical query leaves the fourth line
// empty.
func StringToSign(host, path, canonicalQuery string) string {
	return "GET\n" + host + "\n" + path + "\n" + canonicalQuery
}

// ComputeSignature returns the HMAC-SHA256 of stringToSign keyed with
// secretKey, base64-encoded with the standard alphabet and padding. Both
// inputs contribute their UTF-8 bytes.
func ComputeSignature(secretKey, stringToSign string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
