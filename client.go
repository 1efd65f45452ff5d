package mws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vitalvas/mws/payload"
	"github.com/vitalvas/mws/sigv2"
)

// Version is the library version reported in the default User-Agent.
const Version = "0.3.0"

// Endpoint defaults.
const (
	DefaultHost = "mws.amazonservices.com"
	DefaultPort = 443
)

// Doer sends an HTTP request and returns its response. *http.Client
// implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Identity holds the endpoint and credentials of a Client.
type Identity struct {
	Host            string
	Port            int
	AccessKeyID     string
	SecretAccessKey string
	SellerID        string
}

// String describes the identity without the secret access key.
func (id Identity) String() string {
	return fmt.Sprintf("%s:%d access_key_id=%s seller_id=%s", id.Host, id.Port, id.AccessKeyID, id.SellerID)
}

// Client signs and sends MWS requests. It is immutable after New and safe
// for concurrent use.
type Client struct {
	identity  Identity
	signer    sigv2.Signer
	http      *http.Client
	doer      Doer
	logger    zerolog.Logger
	now       func() time.Time
	userAgent string
	debug     bool
}

// New constructs a Client for the given credentials. sellerID may be empty,
// in which case no SellerId parameter is injected.
func New(accessKeyID, secretAccessKey, sellerID string, opts ...Option) (*Client, error) {
	if accessKeyID == "" || secretAccessKey == "" {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		identity: Identity{
			Host:            DefaultHost,
			Port:            DefaultPort,
			AccessKeyID:     accessKeyID,
			SecretAccessKey: secretAccessKey,
			SellerID:        sellerID,
		},
		http:      &http.Client{Timeout: 30 * time.Second},
		logger:    log.Logger,
		now:       time.Now,
		userAgent: fmt.Sprintf("mws-go/%s (Language=Go)", Version),
		debug:     debugLoggingRequested(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	signer, err := sigv2.NewHMACSHA256Signer(accessKeyID, []byte(secretAccessKey))
	if err != nil {
		return nil, err
	}
	c.signer = signer

	if c.doer == nil {
		if c.debug {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base, logger: c.logger}
		}
		c.doer = c.http
	}

	return c, nil
}

// Identity returns the endpoint and credentials the Client signs with.
func (c *Client) Identity() Identity {
	return c.identity
}

// Sign fills defaults into a copy of req, signs it, and assembles headers
// and body. req is not modified. No network access happens.
func (c *Client) Sign(req Request) (*SignedRequest, error) {
	path := req.Path
	if path == "" {
		path = "/"
	}

	format := req.ResponseFormat
	if format == "" {
		format = DefaultResponseFormat
	}

	cfg := sigv2.SignConfig{
		Signer:   c.signer,
		Method:   http.MethodPost,
		SellerID: c.identity.SellerID,
		Now:      c.now,
	}

	query, err := sigv2.Sign(cfg, c.identity.Host, path, sigv2.Params(req.Query))
	if err != nil {
		return nil, err
	}

	header := make(http.Header, len(req.Headers)+3)
	for k, v := range req.Headers {
		key := http.CanonicalHeaderKey(k)
		header[key] = append(header[key], v...)
	}

	header.Set(HeaderContentType, contentType(req))

	var body []byte
	if req.Feed != nil {
		body = append([]byte{}, req.Feed...)
		header.Set(sigv2.HeaderContentMD5, sigv2.ContentMD5(body))
	}

	if header.Get("User-Agent") == "" && c.userAgent != "" {
		header.Set("User-Agent", c.userAgent)
	}

	return &SignedRequest{
		host:           c.identity.Host,
		port:           c.identity.Port,
		path:           path,
		query:          query,
		header:         header,
		body:           body,
		responseFormat: format,
		canonical:      sigv2.CanonicalString(http.MethodPost, c.identity.Host, path, query),
	}, nil
}

// Send signs req, POSTs it, and parses the response body. Exactly one of
// the returned values is non-nil.
//
// Failures to reach the endpoint or read the body are *TransportError;
// bodies rejected by the parser are *payload.ParseError.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	callID := uuid.NewString()

	logger := c.logger.With().
		Str("call_id", callID).
		Str("action", req.Query["Action"]).
		Logger()

	signed, err := c.Sign(req)
	if err != nil {
		observeCall(outcomeSignError, start)
		logger.Warn().Err(err).Msg("mws request signing failed")
		return nil, err
	}

	httpReq, err := signed.HTTPRequest(ctx)
	if err != nil {
		observeCall(outcomeSignError, start)
		return nil, err
	}

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		observeCall(outcomeTransportError, start)
		logger.Warn().Err(err).Str("url", signed.Endpoint()).Msg("mws request failed")
		return nil, &TransportError{Op: "post", URL: signed.Endpoint(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observeCall(outcomeTransportError, start)
		logger.Warn().Err(err).Str("url", signed.Endpoint()).Msg("mws response read failed")
		return nil, &TransportError{Op: "read", URL: signed.Endpoint(), Err: err}
	}

	result, err := dispatch(logger, body, resp.Header.Get(HeaderContentType))
	if err != nil {
		observeCall(outcomeParseError, start)
		logger.Warn().Err(err).Int("status_code", resp.StatusCode).Msg("mws response parse failed")
		return nil, err
	}

	observeCall(outcomeOK, start)
	responsesTotal.WithLabelValues(result.Format.String()).Inc()

	logger.Debug().
		Str("path", signed.Path()).
		Str("response_format", signed.ResponseFormat()).
		Int("status_code", resp.StatusCode).
		Str("format", result.Format.String()).
		Dur("duration", time.Since(start)).
		Msg("mws request completed")

	return &Response{
		CallID:     callID,
		RequestID:  resp.Header.Get(HeaderRequestID),
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Payload:    result,
	}, nil
}

// dispatch picks the parser from the first bytes of body. Tab-separated
// bodies are transcoded to UTF-8 first when contentType names a known
// charset; otherwise the raw bytes are parsed.
func dispatch(logger zerolog.Logger, body []byte, contentType string) (*payload.Result, error) {
	if payload.Sniff(body) == payload.FormatXML {
		return payload.Parse(body)
	}

	decoded, err := payload.Decode(body, contentType)
	switch {
	case errors.Is(err, payload.ErrUnknownCharset):
		logger.Debug().Err(err).Str("content_type", contentType).Msg("parsing response without transcoding")
		decoded = body
	case err != nil:
		return nil, &payload.ParseError{Format: payload.FormatTSV, Err: err}
	}

	return payload.Parse(decoded)
}
