package mws

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/mws/sigv2"
)

func TestClientSign(t *testing.T) {
	c := newTestClient(t)

	t.Run("fills defaults", func(t *testing.T) {
		signed, err := c.Sign(Request{Query: map[string]string{"Action": "GetReportList"}})
		require.NoError(t, err)

		q := signed.Query()
		assert.Equal(t, "/", signed.Path())
		assert.Equal(t, "2024-01-02T03:04:05.000Z", q["Timestamp"])
		assert.Equal(t, "AKIDEXAMPLE", q["AWSAccessKeyId"])
		assert.Equal(t, "A1SELLER", q["SellerId"])
		assert.Equal(t, "xml", signed.ResponseFormat())
		assert.Equal(t, "HmacSHA256", q["SignatureMethod"])
		assert.Equal(t, "2", q["SignatureVersion"])
		assert.NotEmpty(t, q["Signature"])
	})

	t.Run("keeps caller values", func(t *testing.T) {
		signed, err := c.Sign(Request{
			Path: "/Orders/2013-09-01",
			Query: map[string]string{
				"Action":         "ListOrders",
				"Timestamp":      "2020-01-01T00:00:00.000Z",
				"AWSAccessKeyId": "OVERRIDE",
				"SellerId":       "",
			},
			ResponseFormat: "tsv",
		})
		require.NoError(t, err)

		q := signed.Query()
		assert.Equal(t, "/Orders/2013-09-01", signed.Path())
		assert.Equal(t, "2020-01-01T00:00:00.000Z", q["Timestamp"])
		assert.Equal(t, "OVERRIDE", q["AWSAccessKeyId"])
		assert.Equal(t, "", q["SellerId"])
		assert.Equal(t, "tsv", signed.ResponseFormat())
	})

	t.Run("overwrites signature method and version", func(t *testing.T) {
		signed, err := c.Sign(Request{Query: map[string]string{
			"SignatureMethod":  "HmacSHA1",
			"SignatureVersion": "1",
		}})
		require.NoError(t, err)

		q := signed.Query()
		assert.Equal(t, "HmacSHA256", q["SignatureMethod"])
		assert.Equal(t, "2", q["SignatureVersion"])
	})

	t.Run("canonical string and signature", func(t *testing.T) {
		signed, err := c.Sign(Request{Query: map[string]string{
			"Action":         "GetReportList",
			"Marketplace Id": "a b*~",
		}})
		require.NoError(t, err)

		want := "POST\nmws.amazonservices.com\n/\n" +
			"AWSAccessKeyId=AKIDEXAMPLE&Action=GetReportList&Marketplace%20Id=a%20b%2A~" +
			"&SellerId=A1SELLER&SignatureMethod=HmacSHA256&SignatureVersion=2" +
			"&Timestamp=2024-01-02T03%3A04%3A05.000Z"

		assert.Equal(t, want, signed.CanonicalString())
		assert.Equal(t, "wrd+Lr4kunPNsQI1dvrJ2t0BKLDICraOQM4xdpFkyHo=", signed.Query()["Signature"])
	})

	t.Run("does not modify the request", func(t *testing.T) {
		req := Request{
			Query:   map[string]string{"Action": "SubmitFeed"},
			Headers: http.Header{"X-Custom": {"1"}},
			Feed:    []byte("sku\tqty"),
		}

		_, err := c.Sign(req)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"Action": "SubmitFeed"}, req.Query)
		assert.Equal(t, http.Header{"X-Custom": {"1"}}, req.Headers)
		assert.Equal(t, "", req.Path)
		assert.Equal(t, "", req.ResponseFormat)
	})

	t.Run("accessors return copies", func(t *testing.T) {
		signed, err := c.Sign(Request{Feed: []byte("body")})
		require.NoError(t, err)

		signed.Query()["Action"] = "Mutated"
		signed.Header().Set("Content-Type", "mutated")
		signed.Body()[0] = 'X'

		assert.NotContains(t, signed.Query(), "Action")
		assert.NotEqual(t, "mutated", signed.Header().Get("Content-Type"))
		assert.Equal(t, []byte("body"), signed.Body())
	})

	t.Run("nil query", func(t *testing.T) {
		signed, err := c.Sign(Request{})
		require.NoError(t, err)
		assert.Len(t, signed.Query(), 6)
	})

	t.Run("no seller id configured", func(t *testing.T) {
		noSeller, err := New("AKIDEXAMPLE", "secret-key", "", WithClock(fixedClock))
		require.NoError(t, err)

		signed, err := noSeller.Sign(Request{})
		require.NoError(t, err)
		assert.NotContains(t, signed.Query(), "SellerId")
	})
}

func TestContentType(t *testing.T) {
	c := newTestClient(t)

	tests := []struct {
		name    string
		headers http.Header
		feed    []byte
		want    string
	}{
		{"xml feed", nil, []byte(`<?xml version="1.0"?><AmazonEnvelope/>`), "text/xml"},
		{"tab separated feed", nil, []byte("sku\tqty\n123\t5"), "text/tab-separated-values; charset=iso-8859-1"},
		{"empty feed", nil, []byte{}, "text/tab-separated-values; charset=iso-8859-1"},
		{"no feed", nil, nil, "application/x-www-form-urlencoded; charset=utf-8"},
		{"explicit header with xml feed", http.Header{"Content-Type": {"application/octet-stream"}}, []byte("<?xml"), "application/octet-stream"},
		{"explicit header without feed", http.Header{"Content-Type": {"text/plain"}}, nil, "text/plain"},
		{"lowercase header key", http.Header{"content-type": {"text/plain"}}, nil, "text/plain"},
		{"uppercase header key with feed", http.Header{"CONTENT-TYPE": {"application/octet-stream"}}, []byte("<?xml"), "application/octet-stream"},
		{"empty explicit value", http.Header{"Content-Type": {""}}, []byte(`<?xml version="1.0"?><Feed/>`), "text/xml"},
		{"empty lowercase value", http.Header{"content-type": {""}}, nil, "application/x-www-form-urlencoded; charset=utf-8"},
		{"first non-empty value", http.Header{"Content-Type": {"", "text/csv"}}, nil, "text/csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := c.Sign(Request{Headers: tt.headers, Feed: tt.feed})
			require.NoError(t, err)

			header := signed.Header()
			assert.Equal(t, []string{tt.want}, header.Values("Content-Type"))
			for name := range header {
				assert.Equal(t, http.CanonicalHeaderKey(name), name)
			}
		})
	}
}

func TestSignCanonicalizesHeaders(t *testing.T) {
	c := newTestClient(t)

	caller := http.Header{
		"x-amz-trace": {"a"},
		"X-Amz-Trace": {"b"},
		"user-agent":  {"custom/1.0"},
	}

	signed, err := c.Sign(Request{Headers: caller})
	require.NoError(t, err)

	header := signed.Header()
	assert.ElementsMatch(t, []string{"a", "b"}, header.Values("X-Amz-Trace"))
	assert.Equal(t, []string{"custom/1.0"}, header.Values("User-Agent"))
	assert.NotContains(t, header, "x-amz-trace")
	assert.NotContains(t, header, "user-agent")

	assert.Equal(t, []string{"a"}, caller["x-amz-trace"])
}

func TestContentMD5Header(t *testing.T) {
	c := newTestClient(t)

	t.Run("set for feeds", func(t *testing.T) {
		signed, err := c.Sign(Request{Feed: []byte("sku\tqty\n123\t5")})
		require.NoError(t, err)

		assert.Equal(t, "RAtMtCqKqZzqQChUosc9+g==", signed.Header().Get("Content-MD5"))
		assert.Equal(t, []byte("sku\tqty\n123\t5"), signed.Body())
	})

	t.Run("absent without feed", func(t *testing.T) {
		signed, err := c.Sign(Request{})
		require.NoError(t, err)

		assert.Empty(t, signed.Header().Get("Content-MD5"))
		assert.Nil(t, signed.Body())
	})
}

func TestSignedRequestHTTPRequest(t *testing.T) {
	c := newTestClient(t, WithPort(8443))

	signed, err := c.Sign(Request{
		Path:    "/Feeds/2009-01-01",
		Query:   map[string]string{"Action": "SubmitFeed"},
		Headers: http.Header{"X-Custom": {"1"}},
		Feed:    []byte("sku\tqty"),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://mws.amazonservices.com:8443/Feeds/2009-01-01", signed.Endpoint())

	req, err := signed.HTTPRequest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "mws.amazonservices.com", req.Host)
	assert.Equal(t, "mws.amazonservices.com:8443", req.URL.Host)
	assert.Equal(t, "/Feeds/2009-01-01", req.URL.Path)
	assert.Equal(t, signed.Query().Encode(), req.URL.RawQuery)
	assert.Equal(t, "1", req.Header.Get("X-Custom"))
	assert.Equal(t, "mws-go/"+Version+" (Language=Go)", req.Header.Get("User-Agent"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "sku\tqty", string(body))

	params := sigv2.ParamsFromValues(req.URL.Query())
	assert.Equal(t, signed.Query(), params)
}
