package mws

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHost sets the endpoint host. The host is also the one placed in the
// canonical string. Defaults to mws.amazonservices.com.
func WithHost(host string) Option {
	return func(c *Client) error {
		if host == "" {
			return ErrInvalidHost
		}
		c.identity.Host = host
		return nil
	}
}

// WithPort sets the endpoint port. Defaults to 443.
func WithPort(port int) Option {
	return func(c *Client) error {
		if port < 1 || port > 65535 {
			return fmt.Errorf("%w: %d", ErrInvalidPort, port)
		}
		c.identity.Port = port
		return nil
	}
}

// WithHTTPClient replaces the transport collaborator. Any type with a Do
// method works, including *http.Client. WithHTTPTimeout and
// WithDebugLogging only affect the built-in client and have no effect once
// this option is used.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) error {
		if d == nil {
			return ErrNilHTTPClient
		}
		c.doer = d
		return nil
	}
}

// WithHTTPTimeout sets the Timeout of the built-in http.Client.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a whole request including reading the response.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging logs every request and response dump at debug level
// when enabled is true. Dumps include the signed query string and feed
// bodies; do not enable it in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithLogger sets the logger used for per-call logging. Defaults to the
// global zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithClock sets the time source for the Timestamp parameter.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		c.now = now
		return nil
	}
}

// WithUserAgent sets the default User-Agent header. Requests that carry
// their own User-Agent keep it.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}
