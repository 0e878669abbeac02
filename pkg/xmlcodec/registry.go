package xmlcodec

import "fmt"

// Variant is implemented by every member of a tagged union. The tag is
// both the variant's identity and its wire element name.
type Variant interface {
	// Tag returns the wire element name for the variant.
	Tag() string

	// Value returns the numeric payload.
	Value() float32
}

// Registry is the fixed, ordered table mapping element names to union
// variant constructors. Lookup is case-sensitive exact match. A
// registry is immutable after construction and safe for concurrent use.
type Registry[T Variant] struct {
	entries []registryEntry[T]
}

type registryEntry[T Variant] struct {
	tag       string
	construct func(float32) T
}

// NewRegistry builds a registry from variant constructors. The tag for
// each entry is taken from the constructed variant itself, so the table
// and the variants cannot disagree. Registering two constructors with
// the same tag panics: registries are built at package init, and a
// duplicate is a programming error, not a runtime condition.
func NewRegistry[T Variant](constructors ...func(float32) T) *Registry[T] {
	r := &Registry[T]{}
	for _, construct := range constructors {
		tag := construct(0).Tag()
		for _, e := range r.entries {
			if e.tag == tag {
				panic(fmt.Sprintf("xmlcodec: duplicate variant tag %q", tag))
			}
		}
		r.entries = append(r.entries, registryEntry[T]{tag: tag, construct: construct})
	}
	return r
}

// Resolve returns the constructor registered for tag.
func (r *Registry[T]) Resolve(tag string) (func(float32) T, bool) {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.construct, true
		}
	}
	return nil, false
}

// Tags returns the registered tags in registration order.
func (r *Registry[T]) Tags() []string {
	tags := make([]string, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.tag
	}
	return tags
}
