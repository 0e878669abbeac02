package catalog

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/attrfile/pkg/record"
	"github.com/mash-protocol/attrfile/pkg/store"
)

// Catalog names a set of record files to load from a store.
type Catalog struct {
	// Version is the catalog format version.
	Version int `yaml:"version"`

	// Devices lists device record files.
	Devices []Entry `yaml:"devices,omitempty"`

	// Products lists product record files.
	Products []Entry `yaml:"products,omitempty"`
}

// Entry names one record file.
type Entry struct {
	// Name is an optional label for the entry.
	Name string `yaml:"name,omitempty"`

	// File is the record file name, relative to the store directory.
	File string `yaml:"file"`
}

// LoadError provides details about a catalog loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	if e.File != "" {
		return e.File + ": " + e.Message
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse parses a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if c.Version != 1 {
		return nil, &LoadError{
			Message: "unsupported catalog version " + strconv.Itoa(c.Version),
		}
	}

	for _, e := range append(append([]Entry{}, c.Devices...), c.Products...) {
		if e.File == "" {
			return nil, &LoadError{
				Message: "catalog entry is missing a file",
			}
		}
	}

	return &c, nil
}

// Load loads a catalog from a file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	c, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return c, nil
}

// LoadRecords loads every record the catalog names from the given
// store. The first file that fails to read or decode fails the whole
// load.
func (c *Catalog) LoadRecords(s *store.Store) ([]*record.DeviceRecord, []*record.ProductRecord, error) {
	var devices []*record.DeviceRecord
	for _, e := range c.Devices {
		rec, err := s.LoadDevice(e.File)
		if err != nil {
			return nil, nil, &LoadError{
				File:    e.File,
				Message: "failed to load device record",
				Cause:   err,
			}
		}
		devices = append(devices, rec)
	}

	var products []*record.ProductRecord
	for _, e := range c.Products {
		rec, err := s.LoadProduct(e.File)
		if err != nil {
			return nil, nil, &LoadError{
				File:    e.File,
				Message: "failed to load product record",
				Cause:   err,
			}
		}
		products = append(products, rec)
	}

	return devices, products, nil
}
