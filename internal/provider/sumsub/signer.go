// Package sumsub is the outbound adapter for the Sumsub verification API
// every request carries a per-request HMAC signature over ts+method+path+body
package sumsub

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Header names the provider expects on every call
const (
	HeaderAppToken = "X-App-Token"
	HeaderTs       = "X-App-Access-Ts"
	HeaderSig      = "X-App-Access-Sig"
)

// Headers is the signed header triple emitted for one request
type Headers struct {
	Token string
	Ts    string
	Sig   string
}

// Signer produces the auth headers for a single request
// stateless apart from the injected clock
type Signer struct {
	token  string
	secret []byte
	now    func() time.Time
}

// NewSigner builds a Signer from explicit credentials, no ambient config
func NewSigner(token, secret string) *Signer {
	return &Signer{token: token, secret: []byte(secret), now: time.Now}
}

// Sign reads the clock once and signs method, path (including query) and body
// the same timestamp goes into the payload and the Ts header, a mismatch
// would invalidate the signature at the provider
func (s *Signer) Sign(method, pathWithQuery string, body []byte) Headers {
	ts := strconv.FormatInt(s.now().Unix(), 10)
	return s.signAt(ts, method, pathWithQuery, body)
}

// signAt is the deterministic core, the payload is the raw concatenation
// ts + UPPER(method) + path + body with no separators
func (s *Signer) signAt(ts, method, pathWithQuery string, body []byte) Headers {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(ts))
	mac.Write([]byte(strings.ToUpper(method)))
	mac.Write([]byte(pathWithQuery))
	mac.Write(body)
	return Headers{
		Token: s.token,
		Ts:    ts,
		Sig:   hex.EncodeToString(mac.Sum(nil)),
	}
}
