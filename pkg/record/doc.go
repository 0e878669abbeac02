// Package record defines the attribute exchange record types.
//
// Records pair a human-readable name with one numeric attribute drawn
// from a closed set of kinds. The kinds form tagged unions: exactly one
// variant is active at a time, and the variant's tag doubles as its XML
// element name on the wire. There is no separate discriminator field,
// in memory or on the wire.
//
// Records are plain values. They carry no references to each other and
// are safe to copy; codecs for them live in pkg/xmlcodec and
// pkg/snapshot.
package record
