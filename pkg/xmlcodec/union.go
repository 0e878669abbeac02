package xmlcodec

import "fmt"

// textContentTag is the child element name that carries an element's
// direct text content in the structural leaf form, e.g.
// <Voltage><Text>2.0</Text></Voltage>.
const textContentTag = "Text"

// leafShape distinguishes the accepted encodings of a leaf value.
type leafShape uint8

const (
	// leafPlain is bare character data directly under the element.
	leafPlain leafShape = iota

	// leafWrapped is a single Text child holding the character data.
	leafWrapped
)

// leafValue is a leaf's text after shape normalization but before
// numeric parsing. Keeping the two steps separate lets new wire shapes
// be added without touching the value codec.
type leafValue struct {
	shape leafShape
	text  string
}

// normalizeLeaf classifies a leaf element's shape and extracts its
// text. Anything other than the two accepted shapes fails with
// ErrUnexpectedShape.
func normalizeLeaf(e *element) (leafValue, error) {
	switch {
	case len(e.children) == 0:
		return leafValue{shape: leafPlain, text: e.trimmedText()}, nil

	case len(e.children) == 1 &&
		e.children[0].name == textContentTag &&
		len(e.children[0].children) == 0:
		return leafValue{shape: leafWrapped, text: e.children[0].trimmedText()}, nil

	default:
		return leafValue{}, fmt.Errorf("%w: element %q is neither bare text nor a single %s child",
			ErrUnexpectedShape, e.name, textContentTag)
	}
}

// decodeUnion scans parent's children in document order and constructs
// a variant from the first child whose name resolves in the registry.
//
// First match wins: if a document carries more than one recognized
// child, the later ones are silently ignored. This mirrors the wire
// format's behavior and is deliberate; exhaustiveness checking is not
// performed.
func decodeUnion[T Variant](parent *element, reg *Registry[T]) (T, error) {
	var zero T

	for _, c := range parent.children {
		construct, ok := reg.Resolve(c.name)
		if !ok {
			continue
		}

		leaf, err := normalizeLeaf(c)
		if err != nil {
			return zero, err
		}

		f, err := ParseLeaf(leaf.text)
		if err != nil {
			return zero, fmt.Errorf("element %q: %w", c.name, err)
		}
		return construct(f), nil
	}

	return zero, fmt.Errorf("%w: expected one of %v", ErrMissingVariantTag, reg.Tags())
}

// encodeUnion renders a variant as a single child element named after
// its tag, with the payload as bare text. The encoder never emits the
// wrapped form; that shape exists only for interoperability on input.
func encodeUnion[T Variant](v T) *element {
	return &element{name: v.Tag(), text: FormatLeaf(v.Value())}
}
