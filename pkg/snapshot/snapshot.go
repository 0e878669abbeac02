package snapshot

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/mash-protocol/attrfile/pkg/record"
	"github.com/mash-protocol/attrfile/pkg/xmlcodec"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// encMode is the CBOR encoder mode for snapshots.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for snapshots.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Snapshot is a point-in-time capture of a set of records.
type Snapshot struct {
	// Version is the snapshot format version.
	Version int `cbor:"1,keyasint"`

	// SnapshotID uniquely identifies this snapshot.
	SnapshotID string `cbor:"2,keyasint"`

	// CreatedAt is when the snapshot was taken (second precision).
	CreatedAt time.Time `cbor:"3,keyasint"`

	// Devices are the captured device records.
	Devices []DeviceEntry `cbor:"4,keyasint,omitempty"`

	// Products are the captured product records.
	Products []ProductEntry `cbor:"5,keyasint,omitempty"`
}

// DeviceEntry is the snapshot form of a device record. The control
// variant is stored as an explicit tag plus payload.
type DeviceEntry struct {
	Name         string  `cbor:"1,keyasint"`
	ControlTag   string  `cbor:"2,keyasint"`
	ControlValue float32 `cbor:"3,keyasint"`
}

// ProductEntry is the snapshot form of a product record.
type ProductEntry struct {
	Name       string   `cbor:"1,keyasint"`
	PriceTag   string   `cbor:"2,keyasint"`
	PriceValue float32  `cbor:"3,keyasint"`
	Discount   *float32 `cbor:"4,keyasint,omitempty"`
}

// New captures the given records into a snapshot with a fresh id and
// the current time.
func New(devices []*record.DeviceRecord, products []*record.ProductRecord) *Snapshot {
	s := &Snapshot{
		Version:    SnapshotVersion,
		SnapshotID: uuid.NewString(),
		CreatedAt:  time.Now().Truncate(time.Second),
	}
	for _, d := range devices {
		s.Devices = append(s.Devices, DeviceEntry{
			Name:         d.Name,
			ControlTag:   d.Control.Tag(),
			ControlValue: d.Control.Value(),
		})
	}
	for _, p := range products {
		s.Products = append(s.Products, ProductEntry{
			Name:       p.Name,
			PriceTag:   p.Price.Tag(),
			PriceValue: p.Price.Value(),
			Discount:   p.Discount,
		})
	}
	return s
}

// DeviceRecords reconstructs the captured device records. An entry
// whose tag is not in the control registry fails with
// xmlcodec.ErrMissingVariantTag.
func (s *Snapshot) DeviceRecords() ([]*record.DeviceRecord, error) {
	records := make([]*record.DeviceRecord, 0, len(s.Devices))
	for _, e := range s.Devices {
		construct, ok := xmlcodec.ControlRegistry.Resolve(e.ControlTag)
		if !ok {
			return nil, fmt.Errorf("%w: tag %q for device %q",
				xmlcodec.ErrMissingVariantTag, e.ControlTag, e.Name)
		}
		records = append(records, &record.DeviceRecord{
			Name:    e.Name,
			Control: construct(e.ControlValue),
		})
	}
	return records, nil
}

// ProductRecords reconstructs the captured product records.
func (s *Snapshot) ProductRecords() ([]*record.ProductRecord, error) {
	records := make([]*record.ProductRecord, 0, len(s.Products))
	for _, e := range s.Products {
		construct, ok := xmlcodec.PriceRegistry.Resolve(e.PriceTag)
		if !ok {
			return nil, fmt.Errorf("%w: tag %q for product %q",
				xmlcodec.ErrMissingVariantTag, e.PriceTag, e.Name)
		}
		records = append(records, &record.ProductRecord{
			Name:     e.Name,
			Price:    construct(e.PriceValue),
			Discount: e.Discount,
		})
	}
	return records, nil
}

// Encode serializes the snapshot to CBOR bytes.
func Encode(s *Snapshot) ([]byte, error) {
	return encMode.Marshal(s)
}

// Decode deserializes CBOR bytes into a snapshot.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := decMode.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &s, nil
}
