package sigv2

import (
	"encoding/base64"
	"net/http"
	"time"
)

// SignConfig configures request signing.
type SignConfig struct {
	// Signer produces signatures. Required.
	Signer Signer

	// Method is the HTTP method placed in the canonical string. Defaults to
	// POST.
	Method string

	// SellerID, when set, is injected as SellerId unless the parameters
	// already carry one.
	SellerID string

	// Now returns the time used for a missing Timestamp. Defaults to
	// time.Now.
	Now func() time.Time
}

// Sign returns a signed copy of p. The copy carries AWSAccessKeyId,
// SellerId and Timestamp when p lacks them, SignatureMethod and
// SignatureVersion unconditionally, and finally Signature computed over the
// canonical string of every other parameter. p itself is not modified.
func Sign(cfg SignConfig, host, path string, p Params) (Params, error) {
	if cfg.Signer == nil {
		return nil, ErrNoSigner
	}

	out := p.Clone()
	applyDefaults(cfg, out)

	out[ParamSignatureMethod] = cfg.Signer.Algorithm().String()
	out[ParamSignatureVersion] = Version
	delete(out, ParamSignature)

	method := cfg.Method
	if method == "" {
		method = http.MethodPost
	}

	sig, err := cfg.Signer.Sign([]byte(CanonicalString(method, host, path, out)))
	if err != nil {
		return nil, err
	}

	out[ParamSignature] = base64.StdEncoding.EncodeToString(sig)

	return out, nil
}

// applyDefaults fills identity and time parameters that are absent from p.
// Present keys are kept even when their value is empty.
func applyDefaults(cfg SignConfig, p Params) {
	if !p.Has(ParamTimestamp) {
		now := cfg.Now
		if now == nil {
			now = time.Now
		}

		p[ParamTimestamp] = FormatTimestamp(now())
	}

	if !p.Has(ParamAccessKeyID) {
		p[ParamAccessKeyID] = cfg.Signer.KeyID()
	}

	if !p.Has(ParamSellerID) && cfg.SellerID != "" {
		p[ParamSellerID] = cfg.SellerID
	}
}

// FormatTimestamp formats t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
