package payload

import (
	"bytes"
	"strings"
)

// Record is one data row keyed by column name.
type Record map[string]string

// Table is a parsed tab-separated body.
type Table struct {
	// Columns holds the header row in file order.
	Columns []string

	// Records holds the data rows in file order.
	Records []Record
}

// ParseTSV parses tab-separated data whose first row names the columns.
//
// Lines end with "\n" or "\r\n" and cells are split on every tab. There is
// no quoting: quote characters anywhere in a cell are kept literally.
// Column counts are not enforced: cells missing from a short row are set to
// "" and cells beyond the header are dropped. Blank lines are skipped.
func ParseTSV(data []byte) (*Table, error) {
	table, err := parseTSV(data)
	if err != nil {
		return nil, &ParseError{Format: FormatTSV, Err: err}
	}

	return table, nil
}

func parseTSV(data []byte) (*Table, error) {
	var table *Table

	for line := range bytes.SplitSeq(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			continue
		}

		cells := strings.Split(string(line), "\t")

		if table == nil {
			table = &Table{Columns: cells}
			continue
		}

		rec := make(Record, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(cells) {
				rec[col] = cells[i]
			} else {
				rec[col] = ""
			}
		}

		table.Records = append(table.Records, rec)
	}

	if table == nil {
		return nil, ErrEmpty
	}

	return table, nil
}

// Column returns the values of column name in row order. Rows always carry
// every header column, so the result has one entry per record.
func (t *Table) Column(name string) []string {
	out := make([]string, 0, len(t.Records))
	for _, rec := range t.Records {
		out = append(out, rec[name])
	}

	return out
}
