package mws

import (
	"net/http"

	"github.com/vitalvas/mws/payload"
)

// Response is a parsed MWS response.
type Response struct {
	// CallID identifies this call in client logs.
	CallID string

	// RequestID is the service's x-mws-request-id header.
	RequestID string

	// StatusCode is the HTTP status. It is not interpreted by the client.
	StatusCode int

	Header http.Header

	// Body is the raw response body as received.
	Body []byte

	Payload *payload.Result
}

// Format returns the detected body format.
func (r *Response) Format() payload.Format {
	return r.Payload.Format
}

// XML returns the document root for XML responses, or nil.
func (r *Response) XML() *payload.Node {
	return r.Payload.XML
}

// Records returns the rows of a tab-separated response, or nil.
func (r *Response) Records() []payload.Record {
	if r.Payload.Table == nil {
		return nil
	}

	return r.Payload.Table.Records
}
