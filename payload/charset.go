package payload

import (
	"fmt"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
)

// Decode transcodes body to UTF-8 according to the charset parameter of
// contentType. Bodies without a charset, or already in UTF-8, are returned
// unchanged.
//
// An unrecognised charset label returns body unchanged together with an
// error wrapping ErrUnknownCharset, so callers may keep the raw bytes.
func Decode(body []byte, contentType string) ([]byte, error) {
	if contentType == "" {
		return body, nil
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}

	label := strings.TrimSpace(params["charset"])
	if label == "" {
		return body, nil
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return body, fmt.Errorf("%w: %s", ErrUnknownCharset, label)
	}

	if name == "utf-8" {
		return body, nil
	}

	return enc.NewDecoder().Bytes(body)
}
