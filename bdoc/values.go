package bdoc

import (
	"encoding/hex"
	"fmt"
	"math"
)

// ============================================================
// Scalar Value Types
// ============================================================

// ObjectID is a 12-byte document identifier.
type ObjectID [12]byte

// Hex returns the lowercase hex rendering of the id.
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the id is the all-zero minimum id.
func (id ObjectID) IsZero() bool {
	return id == ObjectID{}
}

// String returns the canonical debug form.
func (id ObjectID) String() string {
	return "ObjectID(" + id.Hex() + ")"
}

// MaxObjectID returns the all-0xFF id, the upper bound of the objectid
// sort bucket.
func MaxObjectID() ObjectID {
	var id ObjectID
	for i := range id {
		id[i] = 0xFF
	}
	return id
}

// ObjectIDFromHex parses a 24-character hex string into an ObjectID.
func ObjectIDFromHex(s string) (ObjectID, error) {
	var id ObjectID
	if len(s) != 24 {
		return id, fmt.Errorf("bdoc: objectid hex must be 24 characters, got %d", len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("bdoc: invalid objectid hex: %w", err)
	}
	copy(id[:], raw)
	return id, nil
}

// Timestamp is an internal ordered timestamp: a seconds value and a
// per-second increment. It sorts by seconds, then increment.
type Timestamp struct {
	Seconds   uint32
	Increment uint32
}

// MaxTimestamp returns the upper bound of the timestamp sort bucket.
// Both halves saturate at the positive int32 range for compatibility
// with readers that treat the fields as signed.
func MaxTimestamp() Timestamp {
	return Timestamp{Seconds: math.MaxInt32, Increment: math.MaxInt32}
}

// Binary subtypes. Only the tag byte is interpreted by this package;
// the payload is opaque.
const (
	BinaryGeneric  byte = 0x00
	BinaryFunction byte = 0x01
	BinaryUUID     byte = 0x04
	BinaryMD5      byte = 0x05
	BinaryUser     byte = 0x80
)

// Binary is a subtyped byte payload.
type Binary struct {
	Subtype byte
	Data    []byte
}

// emptyDocBytes is the canonical encoding of a document with no fields:
// a length of 5 and the terminator. Never mutated.
var emptyDocBytes = []byte{0x05, 0x00, 0x00, 0x00, 0x00}

// EmptyDocument returns the canonical empty document.
func EmptyDocument() Document {
	return Document(emptyDocBytes)
}
