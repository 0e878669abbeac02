// Package store persists attribute exchange records to a directory.
//
// Record files are XML documents produced by pkg/xmlcodec; a directory
// additionally holds at most one CBOR snapshot. The store creates its
// directory on first save and passes I/O errors through untouched so
// callers can inspect them with the os error predicates.
package store
