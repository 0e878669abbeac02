package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/attrfile/pkg/catalog"
	"github.com/mash-protocol/attrfile/pkg/record"
	"github.com/mash-protocol/attrfile/pkg/store"
)

const sampleCatalog = `
version: 1
devices:
  - name: charger
    file: charger.xml
products:
  - file: sponge.xml
`

func TestParse(t *testing.T) {
	c, err := catalog.Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, 1, c.Version)
	require.Len(t, c.Devices, 1)
	assert.Equal(t, "charger", c.Devices[0].Name)
	assert.Equal(t, "charger.xml", c.Devices[0].File)
	require.Len(t, c.Products, 1)
	assert.Equal(t, "sponge.xml", c.Products[0].File)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad yaml", data: "version: [unclosed"},
		{name: "missing version", data: "devices:\n  - file: a.xml\n"},
		{name: "unsupported version", data: "version: 2\n"},
		{name: "entry without file", data: "version: 1\ndevices:\n  - name: orphan\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.data))
			require.Error(t, err)

			var le *catalog.LoadError
			assert.True(t, errors.As(err, &le), "error %T is not a LoadError", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var le *catalog.LoadError
	require.True(t, errors.As(err, &le))
	assert.NotEmpty(t, le.File)
	assert.True(t, os.IsNotExist(le.Cause))
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()
	s := store.New(dir)

	device := &record.DeviceRecord{Name: "Charger", Control: record.Power(11000)}
	require.NoError(t, s.SaveDevice("charger.xml", device))
	discount := float32(25.5)
	product := &record.ProductRecord{Name: "Scrub Daddy", Price: record.Dollars(6.0), Discount: &discount}
	require.NoError(t, s.SaveProduct("sponge.xml", product))

	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0644))

	c, err := catalog.Load(path)
	require.NoError(t, err)

	devices, products, err := c.LoadRecords(s)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.True(t, devices[0].Equal(device))
	require.Len(t, products, 1)
	assert.True(t, products[0].Equal(product))
}

func TestLoadRecordsMissingRecordFile(t *testing.T) {
	c, err := catalog.Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	_, _, err = c.LoadRecords(store.New(t.TempDir()))
	require.Error(t, err)

	var le *catalog.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "charger.xml", le.File)
}
