package sigv2

import "net/http"

// Transport is an http.RoundTripper that signs the query string of outgoing
// requests.
//
// It serves code that builds its own *http.Request values, such as a
// generated API client or a reverse proxy, and needs them signed on the way
// out. Transports compose: the base may itself be a logging or recording
// RoundTripper, and the Transport may be wrapped in turn.
type Transport struct {
	base   http.RoundTripper
	config SignConfig
}

// NewTransport creates a signing Transport that delegates to base after
// signing each request. When base is nil, a clone of http.DefaultTransport
// is used, giving an independent connection pool with default proxy, TLS,
// and timeout settings.
func NewTransport(base http.RoundTripper, cfg SignConfig) *Transport {
	if base == nil {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Transport{
		base:   base,
		config: cfg,
	}
}

// RoundTrip signs the request and then delegates to the base transport.
// The original request is cloned before signing to avoid mutation.
// When GetBody is available, the clone receives its own body copy so
// that Content-MD5 computation does not consume the caller's body.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if clone.Body != nil && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}

		clone.Body = body
	}

	if err := SignRequest(clone, t.config); err != nil {
		return nil, err
	}

	return t.base.RoundTrip(clone)
}

// SignRequest signs r in place: its query string is replaced by the signed
// parameter set and Content-MD5 is set when r has a body and no Content-MD5
// header yet. The canonical host is the URL host without port.
func SignRequest(r *http.Request, cfg SignConfig) error {
	if cfg.Signer == nil {
		return ErrNoSigner
	}

	if r.Header.Get(HeaderContentMD5) == "" {
		if err := SetContentMD5(r); err != nil {
			return err
		}
	}

	if cfg.Method == "" {
		cfg.Method = r.Method
	}

	signed, err := Sign(cfg, r.URL.Hostname(), r.URL.Path, ParamsFromValues(r.URL.Query()))
	if err != nil {
		return err
	}

	r.URL.RawQuery = signed.Encode()

	return nil
}
