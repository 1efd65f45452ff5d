package mws

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitalvas/mws/mwstest"
)

var fixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, fmt.Errorf("read error") }
func (errReader) Close() error             { return nil }

// newTestClient returns a client with fixed credentials and clock pointed at
// mws.amazonservices.com.
func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	opts = append([]Option{WithClock(fixedClock)}, opts...)
	c, err := New("AKIDEXAMPLE", "secret-key", "A1SELLER", opts...)
	require.NoError(t, err)

	return c
}

// newServerClient starts a fake endpoint and returns a client wired to it.
func newServerClient(t *testing.T, cfg mwstest.Config) (*Client, *mwstest.Server) {
	t.Helper()

	if cfg.Credentials == nil {
		cfg.Credentials = map[string]string{"AKIDEXAMPLE": "secret-key"}
	}

	srv := mwstest.NewServer(cfg)
	t.Cleanup(srv.Close)

	c, err := New("AKIDEXAMPLE", "secret-key", "A1SELLER",
		WithHost(srv.Host()),
		WithPort(srv.Port()),
		WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return c, srv
}
