package payload

import "bytes"

// Format identifies a response body format.
type Format string

const (
	// FormatXML is an XML document.
	FormatXML Format = "xml"

	// FormatTSV is tab-separated text with a header row.
	FormatTSV Format = "tsv"
)

func (f Format) String() string {
	return string(f)
}

// xmlPrefix is compared against the first five bytes of a body.
var xmlPrefix = []byte("<?xml")

// Sniff returns FormatXML when data starts with "<?xml" and FormatTSV
// otherwise. No whitespace or byte order mark is skipped.
func Sniff(data []byte) Format {
	if bytes.HasPrefix(data, xmlPrefix) {
		return FormatXML
	}

	return FormatTSV
}

// Result is a parsed body. Exactly one of XML and Table is set, matching
// Format.
type Result struct {
	Format Format
	XML    *Node
	Table  *Table
}

// Parse sniffs data and hands it to the matching parser. Errors are of type
// *ParseError.
func Parse(data []byte) (*Result, error) {
	format := Sniff(data)

	switch format {
	case FormatXML:
		node, err := ParseXML(data)
		if err != nil {
			return nil, err
		}

		return &Result{Format: format, XML: node}, nil
	default:
		table, err := ParseTSV(data)
		if err != nil {
			return nil, err
		}

		return &Result{Format: format, Table: table}, nil
	}
}

// Value returns the parsed document as plain Go values: the output of
// Node.Map for XML, or a slice of records for tab-separated bodies.
func (r *Result) Value() any {
	switch {
	case r == nil:
		return nil
	case r.XML != nil:
		return r.XML.Map()
	case r.Table != nil:
		return r.Table.Records
	default:
		return nil
	}
}
