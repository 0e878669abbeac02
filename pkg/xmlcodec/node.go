package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// element is a parsed XML element: its local name, the character data
// appearing directly under it, and its child elements in document
// order. Namespaces and XML attributes are out of scope and dropped.
type element struct {
	name     string
	text     string
	children []*element
}

// child returns the first child with the given name, or nil.
func (e *element) child(name string) *element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// parseDocument tokenizes an XML document into an element tree and
// returns its root. Tokenizer failures wrap ErrMalformedDocument.
func parseDocument(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			e := &element{name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedDocument)
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, e)
			}
			stack = append(stack, e)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.text += string(t)
			}
		}
		// Comments, directives and processing instructions are skipped.
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}
	return root, nil
}

// writeDocument renders an element tree as an indented XML document.
// Leaf text is written inline so leaf values round-trip exactly.
func writeDocument(root *element) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	if err := writeElement(enc, root); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeElement(enc *xml.Encoder, e *element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := writeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// trimmedText returns the element's direct character data stripped of
// surrounding whitespace, so pretty-printed documents from external
// producers decode the same as compact ones.
func (e *element) trimmedText() string {
	return strings.TrimSpace(e.text)
}
