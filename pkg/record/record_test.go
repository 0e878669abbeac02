package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mash-protocol/attrfile/pkg/record"
)

func ptr(v float32) *float32 { return &v }

func TestVariantTags(t *testing.T) {
	assert.Equal(t, "Voltage", record.Voltage(0).Tag())
	assert.Equal(t, "Power", record.Power(0).Tag())
	assert.Equal(t, "Dollars", record.Dollars(0).Tag())
	assert.Equal(t, "Euros", record.Euros(0).Tag())

	assert.Equal(t, float32(2.5), record.Voltage(2.5).Value())
	assert.Equal(t, float32(-3), record.Power(-3).Value())
}

func TestDeviceRecordEqual(t *testing.T) {
	a := &record.DeviceRecord{Name: "x", Control: record.Voltage(2)}

	assert.True(t, a.Equal(&record.DeviceRecord{Name: "x", Control: record.Voltage(2)}))
	assert.False(t, a.Equal(&record.DeviceRecord{Name: "y", Control: record.Voltage(2)}))
	assert.False(t, a.Equal(&record.DeviceRecord{Name: "x", Control: record.Voltage(3)}))

	// Same payload, different variant: not equal.
	assert.False(t, a.Equal(&record.DeviceRecord{Name: "x", Control: record.Power(2)}))

	assert.False(t, a.Equal(nil))
	var nilRec *record.DeviceRecord
	assert.True(t, nilRec.Equal(nil))
}

func TestProductRecordEqual(t *testing.T) {
	a := &record.ProductRecord{Name: "x", Price: record.Dollars(6), Discount: ptr(25.5)}

	assert.True(t, a.Equal(&record.ProductRecord{Name: "x", Price: record.Dollars(6), Discount: ptr(25.5)}))
	assert.False(t, a.Equal(&record.ProductRecord{Name: "x", Price: record.Euros(6), Discount: ptr(25.5)}))
	assert.False(t, a.Equal(&record.ProductRecord{Name: "x", Price: record.Dollars(6), Discount: ptr(10)}))
	assert.False(t, a.Equal(&record.ProductRecord{Name: "x", Price: record.Dollars(6)}))

	// Absent compares equal to absent, not to zero.
	b := &record.ProductRecord{Name: "x", Price: record.Dollars(6)}
	assert.True(t, b.Equal(&record.ProductRecord{Name: "x", Price: record.Dollars(6)}))
	assert.False(t, b.Equal(&record.ProductRecord{Name: "x", Price: record.Dollars(6), Discount: ptr(0)}))
}
