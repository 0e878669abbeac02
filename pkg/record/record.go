package record

// DeviceRecord describes a device and its control attribute.
type DeviceRecord struct {
	// Name is the human-readable device name.
	Name string

	// Control is the active control attribute variant.
	Control ControlKind
}

// ProductRecord describes a product and its price attribute.
type ProductRecord struct {
	// Name is the human-readable product name.
	Name string

	// Price is the active price attribute variant.
	Price PriceKind

	// Discount is the discount percentage. Nil means no discount is set,
	// which is distinct from a discount of zero.
	Discount *float32
}

// Equal reports whether two device records have the same name and the
// same control variant with the same payload.
func (r *DeviceRecord) Equal(other *DeviceRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Name == other.Name && r.Control == other.Control
}

// Equal reports whether two product records have the same name, price
// variant and discount state.
func (r *ProductRecord) Equal(other *ProductRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Name != other.Name || r.Price != other.Price {
		return false
	}
	if (r.Discount == nil) != (other.Discount == nil) {
		return false
	}
	return r.Discount == nil || *r.Discount == *other.Discount
}
