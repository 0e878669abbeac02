// Package xmlcodec encodes and decodes attribute exchange records as
// XML documents.
//
// The wire format uses the element name itself as the union
// discriminator: a device with a power setpoint is written as
//
//	<Device>
//	  <Name>MyDevice</Name>
//	  <Power>3.5</Power>
//	</Device>
//
// There is no wrapper element and no discriminator field; the decoder
// recognizes the variant by which registered element name appears among
// the record's children. Leaf values are accepted in two shapes, bare
// text (<Power>3.5</Power>) and a single Text child
// (<Power><Text>3.5</Text></Power>); the encoder always emits the bare
// form.
//
// # Decoding Rules
//
// Field decoding is driven by element name, not position. Within a
// union, the first child in document order whose name resolves in the
// variant registry wins; additional recognized children are ignored.
// A union with no recognized child fails with ErrMissingVariantTag.
//
// An optional field decodes the empty string as absent rather than as a
// number parse error. A parse failure anywhere fails the whole record
// decode; nothing is retried or defaulted.
package xmlcodec
