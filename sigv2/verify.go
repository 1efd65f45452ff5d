package sigv2

import (
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"time"
)

// KeyResolver returns a Verifier for the given access key id.
// The request is provided for context (e.g., to select keys based on
// the request host).
type KeyResolver func(r *http.Request, accessKeyID string) (Verifier, error)

// VerifyConfig configures request signature verification.
type VerifyConfig struct {
	// Resolver looks up a Verifier for the AWSAccessKeyId parameter.
	// Required.
	Resolver KeyResolver

	// MaxSkew is the maximum distance between the Timestamp parameter and
	// the verifier's clock. Zero disables the check.
	MaxSkew time.Duration

	// Now returns the verifier's clock. Defaults to time.Now.
	Now func() time.Time
}

// StaticResolver returns a KeyResolver backed by a map of access key id to
// secret access key.
func StaticResolver(secrets map[string]string) KeyResolver {
	return func(_ *http.Request, accessKeyID string) (Verifier, error) {
		secret, ok := secrets[accessKeyID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, accessKeyID)
		}

		return NewHMACSHA256Verifier(accessKeyID, []byte(secret))
	}
}

// VerifyRequest recomputes the signature of an incoming request from its
// method, host, path and query string and compares it with the Signature
// parameter.
func VerifyRequest(r *http.Request, cfg VerifyConfig) error {
	if cfg.Resolver == nil {
		return ErrNoResolver
	}

	params := ParamsFromValues(r.URL.Query())

	encoded, ok := params[ParamSignature]
	if !ok {
		return ErrSignatureNotFound
	}

	accessKeyID, ok := params[ParamAccessKeyID]
	if !ok {
		return ErrSignatureNotFound
	}

	if params[ParamSignatureMethod] != AlgorithmHMACSHA256.String() {
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, params[ParamSignatureMethod])
	}

	if params[ParamSignatureVersion] != Version {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, params[ParamSignatureVersion])
	}

	if cfg.MaxSkew > 0 {
		if err := checkTimestamp(params[ParamTimestamp], cfg); err != nil {
			return err
		}
	}

	if err := VerifyContentMD5(r); err != nil {
		return err
	}

	sig, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("%w: invalid base64 in signature", ErrSignatureInvalid)
	}

	verifier, err := cfg.Resolver(r, accessKeyID)
	if err != nil {
		return err
	}

	base := CanonicalString(r.Method, requestHost(r), r.URL.Path, params)

	return verifier.Verify([]byte(base), sig)
}

func checkTimestamp(value string, cfg VerifyConfig) error {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrTimestampSkew, value)
	}

	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}

	skew := now().Sub(ts)
	if skew < 0 {
		skew = -skew
	}

	if skew > cfg.MaxSkew {
		return fmt.Errorf("%w: %s", ErrTimestampSkew, skew)
	}

	return nil
}

// requestHost returns the Host header without port.
func requestHost(r *http.Request) string {
	host := r.Host
	if host == "" {
		host = r.URL.Host
	}

	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}

	return host
}
