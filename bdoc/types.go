package bdoc

// Type identifies the wire type of a document field. The enumeration is
// closed: tag values are part of the persisted format and never change.
type Type byte

const (
	TypeEOO           Type = 0x00 // end-of-object terminator, never a field tag
	TypeDouble        Type = 0x01
	TypeString        Type = 0x02
	TypeObject        Type = 0x03
	TypeArray         Type = 0x04
	TypeBinary        Type = 0x05
	TypeUndefined     Type = 0x06
	TypeObjectID      Type = 0x07
	TypeBool          Type = 0x08
	TypeDateTime      Type = 0x09
	TypeNull          Type = 0x0A
	TypeRegex         Type = 0x0B
	TypeDBPointer     Type = 0x0C
	TypeCode          Type = 0x0D
	TypeSymbol        Type = 0x0E
	TypeCodeWithScope Type = 0x0F
	TypeInt32         Type = 0x10
	TypeTimestamp     Type = 0x11
	TypeInt64         Type = 0x12
	TypeMaxKey        Type = 0x7F
	TypeMinKey        Type = 0xFF
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeEOO:
		return "eoo"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeBinary:
		return "binary"
	case TypeUndefined:
		return "undefined"
	case TypeObjectID:
		return "objectid"
	case TypeBool:
		return "bool"
	case TypeDateTime:
		return "datetime"
	case TypeNull:
		return "null"
	case TypeRegex:
		return "regex"
	case TypeDBPointer:
		return "dbpointer"
	case TypeCode:
		return "code"
	case TypeSymbol:
		return "symbol"
	case TypeCodeWithScope:
		return "codewithscope"
	case TypeInt32:
		return "int32"
	case TypeTimestamp:
		return "timestamp"
	case TypeInt64:
		return "int64"
	case TypeMaxKey:
		return "maxkey"
	case TypeMinKey:
		return "minkey"
	default:
		return "unknown"
	}
}

// canonicalType collapses tags that share a sort bucket onto one
// representative: the numeric variants sort together (represented by
// double), symbol sorts with string, and EOO shares undefined's slot.
func canonicalType(t Type) Type {
	switch t {
	case TypeInt32, TypeInt64:
		return TypeDouble
	case TypeSymbol:
		return TypeString
	case TypeEOO:
		return TypeUndefined
	default:
		return t
	}
}
