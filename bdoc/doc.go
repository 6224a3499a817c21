// Package bdoc implements BDOC, a compact binary document format.
//
// BDOC is the storage/transport sibling of our text codecs: a
// length-prefixed sequence of named, typed fields that systems can
// store, index, and exchange without a schema.
//
// # Data Model
//
// Scalars: double, int32, int64, string, symbol, bool, null, undefined,
// datetime, timestamp, objectid, binary, regex, code
// Containers: object (nested document), array (document with decimal
// index names)
// Sentinels: minkey, maxkey (absolute range-scan extrema)
//
// # Wire Layout
//
// A document is a little-endian int32 byte length (including itself and
// the trailing terminator), the fields, and a 0x00 terminator. Each
// field is a one-byte type tag, a NUL-terminated field name, and a
// type-specific value encoding.
//
// # Building
//
//	b := bdoc.NewBuilder()
//	b.AppendString("name", "Arsenal")
//	b.AppendInt32("founded", 1886)
//	doc := b.Finish()
//
// A Builder is a private, exclusively-owned resource: it is not safe
// for concurrent mutation, and any iterator taken from it is
// invalidated by further appends. Distinct builders may be used from
// distinct goroutines freely.
//
// # Canonical Type Order
//
// For index range scans, every type tag has minimum and maximum
// sentinel values (AppendMinForType, AppendMaxForType). The tags form a
// single total order with MinKey below everything and MaxKey above
// everything; for most non-numeric types the maximum of one type is
// defined as the minimum of the next, so adjacent type buckets meet
// without gaps. See CanonicalOrder.
//
// # Merging
//
// Fields of an existing document can be copied into a builder under
// three policies: AppendFields (verbatim), AppendFieldsUnique
// (first-writer-wins by name), and AppendKeyed (positional pairing of a
// key pattern's names with a values document's contents).
package bdoc
