// Package sigv2 implements the query-string request signing scheme used by
// Amazon Marketplace Web Service (Signature Version 2, HmacSHA256).
//
// A request is signed by building a canonical string from the HTTP method,
// the host, the path and the sorted, RFC 3986 encoded query parameters, and
// attaching the base64 HMAC-SHA256 of that string as the Signature
// parameter.
//
// # Signing Parameters
//
// Use Sign to obtain a signed copy of a parameter set:
//
//	signer, err := sigv2.NewHMACSHA256Signer(accessKeyID, []byte(secret))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	signed, err := sigv2.Sign(sigv2.SignConfig{Signer: signer}, "mws.amazonservices.com", "/", params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	u := "https://mws.amazonservices.com/?" + signed.Encode()
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that signs the query string of
// every outgoing request and sets Content-MD5 for requests with a body. It
// is meant for callers that assemble requests themselves rather than going
// through a higher level client:
//
//	client := &http.Client{
//	    Transport: sigv2.NewTransport(nil, sigv2.SignConfig{Signer: signer}),
//	}
//
// Any http.RoundTripper can serve as the base, so signing stacks with
// logging or retrying transports:
//
//	signing := sigv2.NewTransport(loggingTransport, sigv2.SignConfig{Signer: signer})
//
// # Server Middleware
//
// VerifyRequest and Middleware recompute the signature of incoming requests.
// They are used by the mwstest fake endpoint:
//
//	mw, err := sigv2.Middleware(sigv2.MiddlewareConfig{
//	    Verify: sigv2.VerifyConfig{Resolver: resolver},
//	})
package sigv2
