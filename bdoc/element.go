package bdoc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Element is a read-only view of one field: type tag, name, and raw
// value bytes. It borrows from the underlying document or builder
// buffer and is only valid while that buffer is alive and unmodified.
type Element struct {
	data []byte // tag, NUL-terminated name, value
}

// Type returns the element's type tag.
func (e Element) Type() Type {
	if len(e.data) == 0 {
		return TypeEOO
	}
	return Type(e.data[0])
}

// Name returns the field name.
func (e Element) Name() string {
	if len(e.data) < 2 {
		return ""
	}
	i := bytes.IndexByte(e.data[1:], 0)
	if i < 0 {
		return ""
	}
	return string(e.data[1 : 1+i])
}

// Value returns the raw value bytes, excluding tag and name.
func (e Element) Value() []byte {
	if len(e.data) < 2 {
		return nil
	}
	i := bytes.IndexByte(e.data[1:], 0)
	if i < 0 {
		return nil
	}
	return e.data[1+i+1:]
}

// Raw returns the complete element bytes including tag and name.
func (e Element) Raw() []byte {
	return e.data
}

// ============================================================
// Typed Accessors
// ============================================================

// Double returns the double value.
func (e Element) Double() (float64, error) {
	if e.Type() != TypeDouble {
		return 0, fmt.Errorf("bdoc: expected double, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 8 {
		return 0, fmt.Errorf("bdoc: truncated double value for field %q", e.Name())
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(v)), nil
}

// Int32 returns the int32 value.
func (e Element) Int32() (int32, error) {
	if e.Type() != TypeInt32 {
		return 0, fmt.Errorf("bdoc: expected int32, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 4 {
		return 0, fmt.Errorf("bdoc: truncated int32 value for field %q", e.Name())
	}
	return int32(binary.LittleEndian.Uint32(v)), nil
}

// Int64 returns the int64 value.
func (e Element) Int64() (int64, error) {
	if e.Type() != TypeInt64 {
		return 0, fmt.Errorf("bdoc: expected int64, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 8 {
		return 0, fmt.Errorf("bdoc: truncated int64 value for field %q", e.Name())
	}
	return int64(binary.LittleEndian.Uint64(v)), nil
}

// StringValue returns the text of a string, symbol, or code value.
func (e Element) StringValue() (string, error) {
	switch e.Type() {
	case TypeString, TypeSymbol, TypeCode:
	default:
		return "", fmt.Errorf("bdoc: expected string, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 5 {
		return "", fmt.Errorf("bdoc: truncated string value for field %q", e.Name())
	}
	n := int(int32(binary.LittleEndian.Uint32(v)))
	if n < 1 || 4+n > len(v) {
		return "", fmt.Errorf("bdoc: malformed string length %d for field %q", n, e.Name())
	}
	return string(v[4 : 4+n-1]), nil
}

// Boolean returns the boolean value.
func (e Element) Boolean() (bool, error) {
	if e.Type() != TypeBool {
		return false, fmt.Errorf("bdoc: expected bool, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 1 {
		return false, fmt.Errorf("bdoc: truncated bool value for field %q", e.Name())
	}
	return v[0] != 0, nil
}

// DateTime returns the datetime value as milliseconds since the Unix
// epoch.
func (e Element) DateTime() (int64, error) {
	if e.Type() != TypeDateTime {
		return 0, fmt.Errorf("bdoc: expected datetime, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 8 {
		return 0, fmt.Errorf("bdoc: truncated datetime value for field %q", e.Name())
	}
	return int64(binary.LittleEndian.Uint64(v)), nil
}

// Time returns the datetime value as a UTC time.Time.
func (e Element) Time() (time.Time, error) {
	ms, err := e.DateTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// TimestampValue returns the internal timestamp value.
func (e Element) TimestampValue() (Timestamp, error) {
	if e.Type() != TypeTimestamp {
		return Timestamp{}, fmt.Errorf("bdoc: expected timestamp, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 8 {
		return Timestamp{}, fmt.Errorf("bdoc: truncated timestamp value for field %q", e.Name())
	}
	return Timestamp{
		Increment: binary.LittleEndian.Uint32(v),
		Seconds:   binary.LittleEndian.Uint32(v[4:]),
	}, nil
}

// ObjectIDValue returns the objectid value.
func (e Element) ObjectIDValue() (ObjectID, error) {
	var id ObjectID
	if e.Type() != TypeObjectID {
		return id, fmt.Errorf("bdoc: expected objectid, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 12 {
		return id, fmt.Errorf("bdoc: truncated objectid value for field %q", e.Name())
	}
	copy(id[:], v)
	return id, nil
}

// BinaryValue returns the binary value. The returned data borrows from
// the element's buffer.
func (e Element) BinaryValue() (Binary, error) {
	if e.Type() != TypeBinary {
		return Binary{}, fmt.Errorf("bdoc: expected binary, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 5 {
		return Binary{}, fmt.Errorf("bdoc: truncated binary value for field %q", e.Name())
	}
	n := int(int32(binary.LittleEndian.Uint32(v)))
	if n < 0 || 5+n > len(v) {
		return Binary{}, fmt.Errorf("bdoc: malformed binary length %d for field %q", n, e.Name())
	}
	return Binary{Subtype: v[4], Data: v[5 : 5+n]}, nil
}

// RegexValue returns the pattern and options of a regex value.
func (e Element) RegexValue() (pattern, options string, err error) {
	if e.Type() != TypeRegex {
		return "", "", fmt.Errorf("bdoc: expected regex, got %s", e.Type())
	}
	v := e.Value()
	i := bytes.IndexByte(v, 0)
	if i < 0 {
		return "", "", fmt.Errorf("bdoc: unterminated regex pattern for field %q", e.Name())
	}
	j := bytes.IndexByte(v[i+1:], 0)
	if j < 0 {
		return "", "", fmt.Errorf("bdoc: unterminated regex options for field %q", e.Name())
	}
	return string(v[:i]), string(v[i+1 : i+1+j]), nil
}

// DocumentValue returns a nested object or array as a Document. The
// returned document borrows from the element's buffer.
func (e Element) DocumentValue() (Document, error) {
	switch e.Type() {
	case TypeObject, TypeArray:
	default:
		return nil, fmt.Errorf("bdoc: expected object or array, got %s", e.Type())
	}
	v := e.Value()
	if len(v) < 5 {
		return nil, fmt.Errorf("bdoc: truncated document value for field %q", e.Name())
	}
	return Document(v), nil
}

// Number returns a numeric value widened to float64, for any of the
// numeric variants.
func (e Element) Number() (float64, bool) {
	switch e.Type() {
	case TypeDouble:
		f, err := e.Double()
		return f, err == nil
	case TypeInt32:
		n, err := e.Int32()
		return float64(n), err == nil
	case TypeInt64:
		n, err := e.Int64()
		return float64(n), err == nil
	default:
		return 0, false
	}
}

// ============================================================
// Field Iteration
// ============================================================

// Iter walks the fields of a document or builder in order. It is lazy,
// single-pass, and non-restartable; it borrows the underlying buffer.
type Iter struct {
	data []byte
	pos  int
}

func newIter(data []byte) *Iter {
	return &Iter{data: data}
}

// More reports whether unconsumed field bytes remain.
func (it *Iter) More() bool {
	return it.pos < len(it.data)
}

// Next parses and returns the next element, advancing the iterator.
func (it *Iter) Next() (Element, error) {
	if it.pos >= len(it.data) {
		return Element{}, fmt.Errorf("bdoc: no more fields")
	}
	rest := it.data[it.pos:]
	t := Type(rest[0])
	if t == TypeEOO {
		return Element{}, fmt.Errorf("bdoc: unexpected terminator inside field region")
	}
	nul := bytes.IndexByte(rest[1:], 0)
	if nul < 0 {
		return Element{}, fmt.Errorf("bdoc: unterminated field name")
	}
	valStart := 1 + nul + 1
	vlen, err := valueLength(t, rest[valStart:])
	if err != nil {
		return Element{}, fmt.Errorf("bdoc: field %q: %w", string(rest[1:1+nul]), err)
	}
	end := valStart + vlen
	it.pos += end
	return Element{data: rest[:end:end]}, nil
}

// valueLength computes the encoded size of a value of type t whose
// bytes begin at data. It validates only as much structure as sizing
// requires.
func valueLength(t Type, data []byte) (int, error) {
	need := func(n int) error {
		if len(data) < n {
			return fmt.Errorf("truncated %s value: need %d bytes, have %d", t, n, len(data))
		}
		return nil
	}
	le32 := func() int {
		return int(int32(binary.LittleEndian.Uint32(data)))
	}

	switch t {
	case TypeNull, TypeUndefined, TypeMinKey, TypeMaxKey:
		return 0, nil
	case TypeBool:
		return 1, need(1)
	case TypeInt32:
		return 4, need(4)
	case TypeDouble, TypeInt64, TypeDateTime, TypeTimestamp:
		return 8, need(8)
	case TypeObjectID:
		return 12, need(12)
	case TypeString, TypeSymbol, TypeCode:
		if err := need(4); err != nil {
			return 0, err
		}
		n := le32()
		if n < 1 {
			return 0, fmt.Errorf("invalid %s length %d", t, n)
		}
		return 4 + n, need(4 + n)
	case TypeObject, TypeArray, TypeCodeWithScope:
		if err := need(4); err != nil {
			return 0, err
		}
		n := le32()
		if n < 5 {
			return 0, fmt.Errorf("invalid %s length %d", t, n)
		}
		return n, need(n)
	case TypeBinary:
		if err := need(5); err != nil {
			return 0, err
		}
		n := le32()
		if n < 0 {
			return 0, fmt.Errorf("invalid binary length %d", n)
		}
		return 4 + 1 + n, need(4 + 1 + n)
	case TypeDBPointer:
		if err := need(4); err != nil {
			return 0, err
		}
		n := le32()
		if n < 1 {
			return 0, fmt.Errorf("invalid dbpointer namespace length %d", n)
		}
		return 4 + n + 12, need(4 + n + 12)
	case TypeRegex:
		i := bytes.IndexByte(data, 0)
		if i < 0 {
			return 0, fmt.Errorf("unterminated regex pattern")
		}
		j := bytes.IndexByte(data[i+1:], 0)
		if j < 0 {
			return 0, fmt.Errorf("unterminated regex options")
		}
		return i + 1 + j + 1, nil
	default:
		return 0, fmt.Errorf("unknown type tag 0x%02x", byte(t))
	}
}
