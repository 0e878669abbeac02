package xmlcodec

import "fmt"

// decodeOptional decodes a single optional numeric field from its raw
// text. Empty text means absent, by design rather than as error
// recovery; anything else must parse as a number. A nil element (the
// field is missing entirely) is also absent.
func decodeOptional(e *element) (*float32, error) {
	if e == nil {
		return nil, nil
	}
	text := e.trimmedText()
	if text == "" {
		return nil, nil
	}
	f, err := ParseLeaf(text)
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", e.name, err)
	}
	return &f, nil
}

// encodeOptional renders an optional numeric field: an empty element
// when absent, the formatted value as bare text when present.
func encodeOptional(name string, v *float32) *element {
	e := &element{name: name}
	if v != nil {
		e.text = FormatLeaf(*v)
	}
	return e
}
