package payload

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Node is an XML element with its attributes, text and child elements.
// Namespaces are dropped; names are local names.
type Node struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// ParseXML parses data into a Node tree rooted at the document element.
// Documents declaring a non-UTF-8 encoding are transcoded.
func ParseXML(data []byte) (*Node, error) {
	root, err := parseXML(data)
	if err != nil {
		return nil, &ParseError{Format: FormatXML, Err: err}
	}

	return root, nil
}

func parseXML(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
		text  []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, ErrTrailingData
			}

			node := &Node{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				node.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
						continue
					}

					node.Attrs[a.Name.Local] = a.Value
				}
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else {
				root = node
			}

			stack = append(stack, node)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			node := stack[len(stack)-1]
			node.Text = strings.TrimSpace(text[len(text)-1].String())

			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(stack) > 0 {
				text[len(text)-1].Write(t)
			} else if len(bytes.TrimSpace(t)) > 0 {
				return nil, ErrTrailingData
			}
		}
	}

	if root == nil {
		return nil, ErrEmpty
	}

	return root, nil
}

// Child returns the first direct child named name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// ChildrenNamed returns every direct child named name.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}

	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}

	return out
}

// Find follows path through first-match children and returns the element
// reached, or nil when any step is missing.
//
//	node.Find("GetReportListResult", "ReportInfo", "ReportId")
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, name := range path {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}

	return cur
}

// Value returns the text of the element at path, or "" when it is missing.
func (n *Node) Value(path ...string) string {
	if found := n.Find(path...); found != nil {
		return found.Text
	}

	return ""
}

// Map converts the tree below n to plain values keyed by element name.
// Leaf elements without attributes become their text. Other elements become
// a map holding children, attributes under "@name" and non-empty text under
// "#text". Repeated child names collect into a slice.
func (n *Node) Map() map[string]any {
	if n == nil {
		return nil
	}

	return map[string]any{n.Name: n.value()}
}

func (n *Node) value() any {
	if len(n.Children) == 0 && len(n.Attrs) == 0 {
		return n.Text
	}

	m := make(map[string]any, len(n.Children)+len(n.Attrs))
	for k, v := range n.Attrs {
		m["@"+k] = v
	}

	if n.Text != "" {
		m["#text"] = n.Text
	}

	for _, c := range n.Children {
		v := c.value()

		switch existing := m[c.Name].(type) {
		case nil:
			m[c.Name] = v
		case []any:
			m[c.Name] = append(existing, v)
		default:
			m[c.Name] = []any{existing, v}
		}
	}

	return m
}
