// Package mwstest provides an in-process MWS endpoint for tests.
//
// The server listens with TLS on a loopback address and verifies the
// Signature Version 2 signature of every request before handing it to the
// configured handler. Requests that fail verification are answered with a
// 403 and an MWS style XML error document.
package mwstest
