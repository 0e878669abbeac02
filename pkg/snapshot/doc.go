// Package snapshot provides a CBOR binary snapshot of a set of
// attribute exchange records.
//
// Snapshots are the compact companion to the XML exchange format: a
// single file capturing many records at once, with a unique snapshot
// id and creation time. Unlike the XML format, the CBOR encoding
// carries the union discriminator as an explicit tag field, since CBOR
// maps use integer keys rather than named elements.
//
// Encoding is deterministic (canonical key order, Unix timestamps) so
// identical snapshots produce identical bytes.
package snapshot
