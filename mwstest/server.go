package mwstest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/vitalvas/mws/sigv2"
)

// Config configures a Server.
type Config struct {
	// Credentials maps access key ids to secret access keys.
	Credentials map[string]string

	// Handler answers verified requests. Defaults to a handler that replies
	// with a GetServiceStatus XML document.
	Handler http.HandlerFunc

	// MaxSkew bounds the Timestamp parameter. Zero disables the check.
	MaxSkew time.Duration

	// RequestID assigns the X-Mws-Request-Id of each response. Defaults to
	// DefaultRequestID for every request.
	RequestID func(r *http.Request) string
}

// Request is a verified request as seen by the server.
type Request struct {
	Method string
	Host   string
	Path   string
	Query  sigv2.Params
	Header http.Header
	Body   []byte
}

// Server is a TLS endpoint that verifies request signatures.
type Server struct {
	srv *httptest.Server
	url *url.URL

	mu       sync.Mutex
	requests []Request
}

// ServiceStatusXML is the default response body for requests carrying
// DefaultRequestID.
var ServiceStatusXML = ServiceStatus(DefaultRequestID)

// ServiceStatus renders a GREEN GetServiceStatus response for requestID.
func ServiceStatus(requestID string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<GetServiceStatusResponse xmlns="https://mws.amazonservices.com/">
  <GetServiceStatusResult>
    <Status>GREEN</Status>
  </GetServiceStatusResult>
  <ResponseMetadata>
    <RequestId>%s</RequestId>
  </ResponseMetadata>
</GetServiceStatusResponse>`, xmlEscape(requestID))
}

// NewServer starts a Server. Call Close when done.
func NewServer(cfg Config) *Server {
	s := &Server{}

	handler := cfg.Handler
	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/xml")
			_, _ = io.WriteString(w, ServiceStatus(RequestIDFromContext(r.Context())))
		}
	}

	mw, err := sigv2.Middleware(sigv2.MiddlewareConfig{
		Verify: sigv2.VerifyConfig{
			Resolver: sigv2.StaticResolver(cfg.Credentials),
			MaxSkew:  cfg.MaxSkew,
		},
		OnError: writeError,
	})
	if err != nil {
		panic(err)
	}

	withID := requestIDMiddleware(cfg.RequestID)

	s.srv = httptest.NewTLSServer(withID(mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		handler(w, r)
	}))))

	u, err := url.Parse(s.srv.URL)
	if err != nil {
		panic(err)
	}
	s.url = u

	return s
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

// Host returns the loopback host the server listens on.
func (s *Server) Host() string {
	return s.url.Hostname()
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	port, _ := strconv.Atoi(s.url.Port())
	return port
}

// Addr returns host:port.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host(), strconv.Itoa(s.Port()))
}

// Client returns an *http.Client that trusts the server certificate.
func (s *Server) Client() *http.Client {
	return s.srv.Client()
}

// Requests returns the verified requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

func (s *Server) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	rec := Request{
		Method: r.Method,
		Host:   r.Host,
		Path:   r.URL.Path,
		Query:  sigv2.ParamsFromValues(r.URL.Query()),
		Header: r.Header.Clone(),
		Body:   body,
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	s.mu.Unlock()
}

// writeError answers a rejected request the way the service does.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusForbidden)
	fmt.Fprintf(w, `<?xml version="1.0"?>
<ErrorResponse xmlns="https://mws.amazonservices.com/">
  <Error>
    <Type>Sender</Type>
    <Code>SignatureDoesNotMatch</Code>
    <Message>%s</Message>
  </Error>
  <RequestId>%s</RequestId>
</ErrorResponse>`, xmlEscape(err.Error()), xmlEscape(RequestIDFromContext(r.Context())))
}

func xmlEscape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
