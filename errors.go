package mws

import (
	"errors"
	"fmt"

	"github.com/vitalvas/mws/payload"
)

// Construction errors.
var (
	// ErrMissingCredentials is returned by New when the access key id or the
	// secret access key is empty.
	ErrMissingCredentials = errors.New("mws: access key id and secret access key are required")

	// ErrInvalidHost is returned when the endpoint host is empty.
	ErrInvalidHost = errors.New("mws: host must not be empty")

	// ErrInvalidPort is returned when the endpoint port is outside 1-65535.
	ErrInvalidPort = errors.New("mws: port must be between 1 and 65535")

	// ErrNilHTTPClient is returned by WithHTTPClient(nil).
	ErrNilHTTPClient = errors.New("mws: http client must not be nil")
)

// TransportError reports a request that did not produce a readable
// response: connection, TLS or body read failures. No parsing is attempted
// after a TransportError.
type TransportError struct {
	// Op is "post" or "read".
	Op string

	// URL is the endpoint without query string.
	URL string

	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mws: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsParse reports whether err is or wraps a *payload.ParseError.
func IsParse(err error) bool {
	var pe *payload.ParseError
	return errors.As(err, &pe)
}
