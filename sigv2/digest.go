package sigv2

import (
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"io"
	"net/http"
)

// HeaderContentMD5 carries the base64 MD5 of a request body.
const HeaderContentMD5 = "Content-MD5"

// ContentMD5 returns base64(MD5(body)).
func ContentMD5(body []byte) string {
	sum := md5.Sum(body)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// SetContentMD5 reads the request body, sets the Content-MD5 header, and
// replaces the body so it can be read again. Requests without a body are
// left untouched.
func SetContentMD5(r *http.Request) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	body, err := readAndRestoreBody(r)
	if err != nil {
		return err
	}

	r.Header.Set(HeaderContentMD5, ContentMD5(body))

	return nil
}

// VerifyContentMD5 checks the Content-MD5 header against the request body.
// A request without the header passes.
func VerifyContentMD5(r *http.Request) error {
	header := r.Header.Get(HeaderContentMD5)
	if header == "" {
		return nil
	}

	body, err := readAndRestoreBody(r)
	if err != nil {
		return err
	}

	if ContentMD5(body) != header {
		return ErrDigestMismatch
	}

	return nil
}

// readAndRestoreBody reads the entire request body and replaces it with a
// new reader so the body can be consumed again by downstream handlers.
func readAndRestoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
