package record

// PriceKind is the price attribute of a product record.
// It is a closed union: the only implementations are Dollars and Euros.
type PriceKind interface {
	// Tag returns the wire element name for the active variant.
	Tag() string

	// Value returns the numeric payload.
	Value() float32

	priceKind()
}

// Dollars is a price in US dollars.
type Dollars float32

// Tag returns the wire element name.
func (Dollars) Tag() string { return "Dollars" }

// Value returns the amount in dollars.
func (d Dollars) Value() float32 { return float32(d) }

func (Dollars) priceKind() {}

// Euros is a price in euros.
type Euros float32

// Tag returns the wire element name.
func (Euros) Tag() string { return "Euros" }

// Value returns the amount in euros.
func (e Euros) Value() float32 { return float32(e) }

func (Euros) priceKind() {}
