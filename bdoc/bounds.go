package bdoc

import (
	"errors"
	"fmt"
	"math"
)

// ============================================================
// Canonical Type Order
// ============================================================

// canonicalOrder is the total order over canonical type tags used for
// index range-scan boundaries. It is persisted in index structures:
// the order must never change between releases. Non-canonical tags
// (int32, int64, symbol, EOO) collapse onto their bucket representative
// via canonicalType.
var canonicalOrder = []Type{
	TypeMinKey,
	TypeUndefined,
	TypeNull,
	TypeDouble, // the numeric bucket
	TypeString, // the string/symbol bucket
	TypeObject,
	TypeArray,
	TypeBinary,
	TypeObjectID,
	TypeBool,
	TypeDateTime,
	TypeTimestamp,
	TypeRegex,
	TypeDBPointer,
	TypeCode,
	TypeCodeWithScope,
	TypeMaxKey,
}

// CanonicalOrder returns the canonical type chain, lowest bucket first.
// The returned slice is a copy.
func CanonicalOrder() []Type {
	out := make([]Type, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// nextCanonical returns the type bucket immediately above t's bucket.
func nextCanonical(t Type) (Type, bool) {
	ct := canonicalType(t)
	for i, o := range canonicalOrder {
		if o == ct {
			if i+1 < len(canonicalOrder) {
				return canonicalOrder[i+1], true
			}
			return TypeEOO, false
		}
	}
	return TypeEOO, false
}

// ErrUnsupportedType reports a type tag outside the closed enumeration
// passed to a sentinel-value append. This is a caller bug, not a
// runtime condition: nothing is appended and the operation aborts.
var ErrUnsupportedType = errors.New("bdoc: type not supported for sentinel value")

// AppendMinForType appends one field holding the minimal value that
// sorts within t's type bucket, independent of any real data.
func (b *Builder) AppendMinForType(name string, t Type) error {
	switch t {
	// Shared buckets.
	case TypeInt32, TypeInt64, TypeDouble:
		// Bounds the integer variants too.
		b.AppendDouble(name, -math.MaxFloat64)
	case TypeSymbol, TypeString:
		b.AppendString(name, "")
	case TypeDateTime:
		// Legacy index formats disagree on the date minimum, so the
		// sentinel drops one canonical bucket lower: a boolean true.
		// Intentional historical behavior, do not "fix".
		b.AppendBool(name, true)
	case TypeTimestamp:
		b.AppendTimestamp(name, Timestamp{})
	case TypeUndefined, TypeEOO:
		b.AppendUndefined(name)

	// Separate buckets.
	case TypeMinKey:
		b.AppendMinKey(name)
	case TypeMaxKey:
		b.AppendMaxKey(name)
	case TypeObjectID:
		b.AppendObjectID(name, ObjectID{})
	case TypeBool:
		b.AppendBool(name, false)
	case TypeNull:
		b.AppendNull(name)
	case TypeObject:
		b.AppendObject(name, EmptyDocument())
	case TypeArray:
		b.AppendArray(name, EmptyDocument())
	case TypeBinary:
		b.AppendBinary(name, BinaryGeneric, nil)
	case TypeRegex:
		b.AppendRegex(name, "", "")
	case TypeDBPointer:
		b.AppendDBPointer(name, "", ObjectID{})
	case TypeCode:
		b.AppendCode(name, "")
	case TypeCodeWithScope:
		b.AppendCodeWithScope(name, "", EmptyDocument())
	default:
		return fmt.Errorf("%w: minimum for tag 0x%02x", ErrUnsupportedType, byte(t))
	}
	return nil
}

// AppendMaxForType appends one field holding the maximal value that
// sorts within t's type bucket. For most non-numeric types the maximum
// is defined by delegation: the minimum of the next bucket in the
// canonical chain, so adjacent buckets meet without gaps.
func (b *Builder) AppendMaxForType(name string, t Type) error {
	switch t {
	// Shared buckets.
	case TypeInt32, TypeInt64, TypeDouble:
		b.AppendDouble(name, math.MaxFloat64)
	case TypeDateTime:
		b.AppendDateTime(name, math.MaxInt64)
	case TypeTimestamp:
		b.AppendTimestamp(name, MaxTimestamp())
	case TypeUndefined, TypeEOO:
		b.AppendUndefined(name)

	// Separate buckets with literal maxima.
	case TypeMinKey:
		b.AppendMinKey(name)
	case TypeMaxKey:
		b.AppendMaxKey(name)
	case TypeObjectID:
		b.AppendObjectID(name, MaxObjectID())
	case TypeBool:
		b.AppendBool(name, true)
	case TypeNull:
		b.AppendNull(name)

	// Chained buckets: max(T) = min(next(T)). CodeWithScope chains to
	// MaxKey; this upper bound moves if a new type is ever added above.
	case TypeString, TypeSymbol, TypeObject, TypeArray, TypeBinary,
		TypeRegex, TypeDBPointer, TypeCode, TypeCodeWithScope:
		next, ok := nextCanonical(t)
		if !ok {
			return fmt.Errorf("%w: maximum for tag 0x%02x", ErrUnsupportedType, byte(t))
		}
		return b.AppendMinForType(name, next)

	default:
		return fmt.Errorf("%w: maximum for tag 0x%02x", ErrUnsupportedType, byte(t))
	}
	return nil
}
