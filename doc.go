// Package mws is a client for the Amazon Marketplace Web Service API.
//
// A Client signs each request with Signature Version 2 (see package sigv2),
// POSTs it over HTTPS with the parameters in the query string, and parses
// the response body as XML or as a tab-separated flat file depending on its
// first bytes (see package payload).
//
//	client, err := mws.New(accessKeyID, secretAccessKey, sellerID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Send(ctx, mws.Request{
//	    Path:  "/Reports/2009-01-01",
//	    Query: map[string]string{"Action": "GetReportList"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, info := range resp.XML().Find("GetReportListResult").ChildrenNamed("ReportInfo") {
//	    fmt.Println(info.Value("ReportId"))
//	}
//
// Send blocks for one network round trip. A Client is safe for concurrent
// use; callers that want asynchronous calls run Send in a goroutine.
//
// HTTP status codes are not interpreted. Error responses from the service
// are XML documents and are returned like any other body, with the status
// in Response.StatusCode.
package mws
