package xmlcodec

import (
	"github.com/mash-protocol/attrfile/pkg/record"
)

// Root and field element names. The decoder accepts any root element
// name; only child element names are significant.
const (
	deviceRootTag  = "Device"
	productRootTag = "Product"
	nameTag        = "Name"
	discountTag    = "Discount"
)

// ControlRegistry maps control element names to ControlKind variants.
var ControlRegistry = NewRegistry(
	func(f float32) record.ControlKind { return record.Voltage(f) },
	func(f float32) record.ControlKind { return record.Power(f) },
)

// PriceRegistry maps price element names to PriceKind variants.
var PriceRegistry = NewRegistry(
	func(f float32) record.PriceKind { return record.Dollars(f) },
	func(f float32) record.PriceKind { return record.Euros(f) },
)

// MarshalDevice renders a device record as an XML document. Child
// order is deterministic: Name first, then the control variant.
func MarshalDevice(rec *record.DeviceRecord) ([]byte, error) {
	root := &element{name: deviceRootTag}
	root.children = append(root.children,
		&element{name: nameTag, text: rec.Name},
		encodeUnion(rec.Control),
	)
	return writeDocument(root)
}

// UnmarshalDevice parses an XML document into a device record. The
// control variant may appear anywhere among the root's children.
func UnmarshalDevice(data []byte) (*record.DeviceRecord, error) {
	root, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	rec := &record.DeviceRecord{}
	if name := root.child(nameTag); name != nil {
		rec.Name = name.trimmedText()
	}

	ctrl, err := decodeUnion(root, ControlRegistry)
	if err != nil {
		return nil, err
	}
	rec.Control = ctrl

	return rec, nil
}

// MarshalProduct renders a product record as an XML document. Child
// order is deterministic: Name, the price variant, then Discount. An
// absent discount is written as an empty element.
func MarshalProduct(rec *record.ProductRecord) ([]byte, error) {
	root := &element{name: productRootTag}
	root.children = append(root.children,
		&element{name: nameTag, text: rec.Name},
		encodeUnion(rec.Price),
		encodeOptional(discountTag, rec.Discount),
	)
	return writeDocument(root)
}

// UnmarshalProduct parses an XML document into a product record. The
// price variant and the discount may appear anywhere among the root's
// children; a missing or empty Discount element means no discount.
func UnmarshalProduct(data []byte) (*record.ProductRecord, error) {
	root, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	rec := &record.ProductRecord{}
	if name := root.child(nameTag); name != nil {
		rec.Name = name.trimmedText()
	}

	price, err := decodeUnion(root, PriceRegistry)
	if err != nil {
		return nil, err
	}
	rec.Price = price

	discount, err := decodeOptional(root.child(discountTag))
	if err != nil {
		return nil, err
	}
	rec.Discount = discount

	return rec, nil
}
