package sigv2

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransport(t *testing.T) {
	signer, err := NewHMACSHA256Signer("transport-key", []byte("transport-secret"))
	require.NoError(t, err)

	verifyCfg := VerifyConfig{
		Resolver: StaticResolver(map[string]string{"transport-key": "transport-secret"}),
		MaxSkew:  15 * time.Minute,
	}

	t.Run("nil base clones default transport", func(t *testing.T) {
		transport := NewTransport(nil, SignConfig{Signer: signer})
		assert.NotNil(t, transport)
		assert.NotNil(t, transport.base)

		assert.NotSame(t, http.DefaultTransport, transport.base)
	})

	t.Run("custom base is used", func(t *testing.T) {
		base := &http.Transport{
			IdleConnTimeout: 42 * time.Second,
		}

		transport := NewTransport(base, SignConfig{Signer: signer})
		assert.Same(t, base, transport.base)
	})

	t.Run("wraps any round tripper", func(t *testing.T) {
		var seen *http.Request
		base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
			seen = r
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
		})

		transport := NewTransport(base, SignConfig{Signer: signer})

		req, err := http.NewRequest(http.MethodPost, "https://mws.example.com/Orders/2013-09-01?Action=ListOrders", strings.NewReader("sku\tqty"))
		require.NoError(t, err)

		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.NotNil(t, seen)
		assert.NotSame(t, req, seen)
		assert.NotEmpty(t, seen.URL.Query().Get(ParamSignature))
		assert.Equal(t, "ListOrders", seen.URL.Query().Get("Action"))
		assert.NotEmpty(t, seen.Header.Get(HeaderContentMD5))
		assert.Empty(t, req.URL.Query().Get(ParamSignature))

		verifyReq, err := http.NewRequest(http.MethodPost, seen.URL.String(), strings.NewReader("sku\tqty"))
		require.NoError(t, err)
		verifyReq.Header = seen.Header.Clone()
		assert.NoError(t, VerifyRequest(verifyReq, verifyCfg))
	})

	t.Run("signs requests automatically", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.NotEmpty(t, q.Get(ParamSignature))
			assert.Equal(t, "transport-key", q.Get(ParamAccessKeyID))
			assert.Equal(t, "GetServiceStatus", q.Get("Action"))

			if err := VerifyRequest(r, verifyCfg); err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{
			Transport: NewTransport(nil, SignConfig{Signer: signer}),
		}

		resp, err := client.Post(server.URL+"/Sellers/2011-07-01?Action=GetServiceStatus", "text/xml", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("sets content md5 for bodies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "RAtMtCqKqZzqQChUosc9+g==", r.Header.Get(HeaderContentMD5))

			if err := VerifyRequest(r, verifyCfg); err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{
			Transport: NewTransport(nil, SignConfig{Signer: signer}),
		}

		resp, err := client.Post(server.URL+"/?Action=SubmitFeed", "text/tab-separated-values", strings.NewReader("sku\tqty\n123\t5"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("nil signer returns error", func(t *testing.T) {
		client := &http.Client{
			Transport: NewTransport(nil, SignConfig{}),
		}

		_, err := client.Get("http://localhost/test")
		assert.ErrorIs(t, err, ErrNoSigner)
	})

	t.Run("does not mutate original request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{
			Transport: NewTransport(nil, SignConfig{Signer: signer}),
		}

		body := "sku\tqty"
		req, err := http.NewRequest(http.MethodPost, server.URL+"/?Action=SubmitFeed", strings.NewReader(body))
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "Action=SubmitFeed", req.URL.RawQuery)
		assert.Empty(t, req.Header.Get(HeaderContentMD5))

		rc, err := req.GetBody()
		require.NoError(t, err)

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, body, string(data))
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
