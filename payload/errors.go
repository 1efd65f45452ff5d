package payload

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when the body holds no document or no header row.
	ErrEmpty = errors.New("payload: empty body")

	// ErrTrailingData is returned when an XML document has more than one
	// root element.
	ErrTrailingData = errors.New("payload: unexpected data after root element")

	// ErrUnknownCharset is returned when a Content-Type declares a charset
	// that has no decoder.
	ErrUnknownCharset = errors.New("payload: unknown charset")
)

// ParseError reports a body that the selected parser rejected.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("payload: parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
