// Package payload parses MWS response bodies.
//
// The service answers either with an XML document or with a tab-separated
// flat file whose first row names the columns. The format is chosen by
// looking at the first five bytes of the body: "<?xml" selects the XML
// parser, anything else the tab-separated one. Content-Type headers are
// ignored because the service does not set them reliably.
package payload
