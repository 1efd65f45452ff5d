package sigv2

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Params is a set of single-valued query parameters.
type Params map[string]string

// ParamsFromValues converts url.Values to Params, keeping the first value of
// each key.
func ParamsFromValues(v url.Values) Params {
	p := make(Params, len(v))
	for k, vals := range v {
		if len(vals) > 0 {
			p[k] = vals[0]
		} else {
			p[k] = ""
		}
	}

	return p
}

// Clone returns an independent copy of p. A nil Params clones to an empty,
// non-nil Params.
func (p Params) Clone() Params {
	out := make(Params, len(p)+6)
	maps.Copy(out, p)

	return out
}

// Has reports whether key is present, regardless of its value.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Encode returns the parameters as a query string with keys in ascending
// byte order and keys and values percent-encoded per RFC 3986.
func (p Params) Encode() string {
	return EncodeQuery(p)
}

// EncodeQuery encodes p as name=value pairs joined by '&', sorted by name.
func EncodeQuery(p Params) string {
	keys := slices.Sorted(maps.Keys(p))

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(Escape(k))
		b.WriteByte('=')
		b.WriteString(Escape(p[k]))
	}

	return b.String()
}

// Escape percent-encodes s leaving only the RFC 3986 unreserved characters
// (A-Z a-z 0-9 - _ . ~) literal. Spaces become %20.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// CanonicalString builds the string that is signed:
//
//	METHOD \n host \n path \n encoded-query
//
// The Signature parameter is never part of the canonical string.
func CanonicalString(method, host, path string, p Params) string {
	if path == "" {
		path = "/"
	}

	q := p
	if p.Has(ParamSignature) {
		q = p.Clone()
		delete(q, ParamSignature)
	}

	return strings.Join([]string{strings.ToUpper(method), host, path, EncodeQuery(q)}, "\n")
}
