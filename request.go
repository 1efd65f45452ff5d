package mws

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/vitalvas/mws/sigv2"
)

// Header names and content types used on the wire.
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Mws-Request-Id"

	ContentTypeXML  = "text/xml"
	ContentTypeTSV  = "text/tab-separated-values; charset=iso-8859-1"
	ContentTypeForm = "application/x-www-form-urlencoded; charset=utf-8"
)

// DefaultResponseFormat is recorded on requests that do not name one.
const DefaultResponseFormat = "xml"

// Request describes one MWS call.
type Request struct {
	// Path is the API section path, e.g. "/Orders/2013-09-01". Empty
	// means "/".
	Path string

	// Query holds the operation parameters. Timestamp, AWSAccessKeyId and
	// SellerId are filled in when their keys are absent; a key that is
	// present keeps its value even when empty. SignatureMethod,
	// SignatureVersion and Signature are always computed.
	Query map[string]string

	// Headers are sent with the request. A Content-Type header here
	// replaces the inferred one.
	Headers http.Header

	// Feed is the request body. nil means no body.
	Feed []byte

	// ResponseFormat is informational only; the parser is always chosen by
	// inspecting the response body. Empty means "xml".
	ResponseFormat string
}

// contentType returns the caller's Content-Type when set to a non-empty
// value under any key casing, otherwise one inferred from the feed.
func contentType(req Request) string {
	for _, v := range req.Headers.Values(HeaderContentType) {
		if v != "" {
			return v
		}
	}

	for name, values := range req.Headers {
		if !strings.EqualFold(name, HeaderContentType) {
			continue
		}

		for _, v := range values {
			if v != "" {
				return v
			}
		}
	}

	if req.Feed == nil {
		return ContentTypeForm
	}

	if bytes.HasPrefix(req.Feed, []byte("<?xml")) {
		return ContentTypeXML
	}

	return ContentTypeTSV
}

// SignedRequest is a Request with defaults applied, the signature computed,
// and headers and body assembled. It is immutable; accessors return copies.
type SignedRequest struct {
	host           string
	port           int
	path           string
	query          sigv2.Params
	header         http.Header
	body           []byte
	responseFormat string
	canonical      string
}

// Method returns the HTTP method, always POST.
func (s *SignedRequest) Method() string { return http.MethodPost }

// Host returns the endpoint host that was signed.
func (s *SignedRequest) Host() string { return s.host }

// Port returns the endpoint port.
func (s *SignedRequest) Port() int { return s.port }

// Path returns the request path.
func (s *SignedRequest) Path() string { return s.path }

// ResponseFormat returns the recorded response format hint.
func (s *SignedRequest) ResponseFormat() string { return s.responseFormat }

// CanonicalString returns the string the signature was computed over.
func (s *SignedRequest) CanonicalString() string { return s.canonical }

// Query returns a copy of the final parameters including Signature.
func (s *SignedRequest) Query() sigv2.Params { return s.query.Clone() }

// Header returns a copy of the request headers.
func (s *SignedRequest) Header() http.Header { return s.header.Clone() }

// Body returns a copy of the request body, or nil when there is none.
func (s *SignedRequest) Body() []byte {
	if s.body == nil {
		return nil
	}

	return append([]byte{}, s.body...)
}

// Endpoint returns https://host:port/path without the query string.
func (s *SignedRequest) Endpoint() string {
	return "https://" + net.JoinHostPort(s.host, strconv.Itoa(s.port)) + s.path
}

// URL returns the full request URL including the signed query string.
func (s *SignedRequest) URL() string {
	return s.Endpoint() + "?" + s.query.Encode()
}

// HTTPRequest builds the outgoing *http.Request. The Host header carries
// the bare host, matching the canonical string.
func (s *SignedRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if s.body != nil {
		body = bytes.NewReader(s.body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL(), body)
	if err != nil {
		return nil, err
	}

	req.Header = s.header.Clone()
	req.Host = s.host

	return req, nil
}
