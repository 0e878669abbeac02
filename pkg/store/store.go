package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/mash-protocol/attrfile/pkg/record"
	"github.com/mash-protocol/attrfile/pkg/snapshot"
	"github.com/mash-protocol/attrfile/pkg/xmlcodec"
)

// snapshotFile is the fixed name of the snapshot within a store
// directory.
const snapshotFile = "snapshot.cbor"

// Store manages a directory of record files.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates a store rooted at dir. The directory is created on the
// first save, not here.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveDevice writes a device record to the named file within the store.
func (s *Store) SaveDevice(name string, rec *record.DeviceRecord) error {
	data, err := xmlcodec.MarshalDevice(rec)
	if err != nil {
		return err
	}
	return s.writeFile(name, data)
}

// LoadDevice reads a device record from the named file within the store.
func (s *Store) LoadDevice(name string) (*record.DeviceRecord, error) {
	data, err := s.readFile(name)
	if err != nil {
		return nil, err
	}
	return xmlcodec.UnmarshalDevice(data)
}

// SaveProduct writes a product record to the named file within the store.
func (s *Store) SaveProduct(name string, rec *record.ProductRecord) error {
	data, err := xmlcodec.MarshalProduct(rec)
	if err != nil {
		return err
	}
	return s.writeFile(name, data)
}

// LoadProduct reads a product record from the named file within the store.
func (s *Store) LoadProduct(name string) (*record.ProductRecord, error) {
	data, err := s.readFile(name)
	if err != nil {
		return nil, err
	}
	return xmlcodec.UnmarshalProduct(data)
}

// SaveSnapshot writes the store's snapshot file.
func (s *Store) SaveSnapshot(snap *snapshot.Snapshot) error {
	data, err := snapshot.Encode(snap)
	if err != nil {
		return err
	}
	return s.writeFile(snapshotFile, data)
}

// LoadSnapshot reads the store's snapshot file.
// Returns nil, nil if no snapshot exists.
func (s *Store) LoadSnapshot() (*snapshot.Snapshot, error) {
	data, err := s.readFile(snapshotFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snapshot.Decode(data)
}

// ClearSnapshot removes the snapshot file.
func (s *Store) ClearSnapshot() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, snapshotFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) writeFile(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0644)
}

func (s *Store) readFile(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return os.ReadFile(filepath.Join(s.dir, name))
}
