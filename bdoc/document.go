package bdoc

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Document is an immutable, sealed document: a length prefix, the
// fields, and a terminator byte. A Document is never modified in place;
// building a variant always goes through a new Builder.
type Document []byte

// IsEmpty reports whether the document has no fields.
func (d Document) IsEmpty() bool {
	return len(d) <= 5
}

// ByteSize returns the size recorded in the length prefix.
func (d Document) ByteSize() int {
	if len(d) < 4 {
		return 0
	}
	return int(int32(binary.LittleEndian.Uint32(d)))
}

// Raw returns the underlying bytes.
func (d Document) Raw() []byte {
	return []byte(d)
}

// fields returns the interior field region, without prefix and
// terminator.
func (d Document) fields() []byte {
	if len(d) < 5 {
		return nil
	}
	return d[4 : len(d)-1]
}

// Iter returns a single-pass iterator over the document's fields.
func (d Document) Iter() *Iter {
	return newIter(d.fields())
}

// Lookup returns the first field with the given name. The second return
// is false if no such field exists or the document is malformed.
func (d Document) Lookup(name string) (Element, bool) {
	it := d.Iter()
	for it.More() {
		e, err := it.Next()
		if err != nil {
			return Element{}, false
		}
		if e.Name() == name {
			return e, true
		}
	}
	return Element{}, false
}

// FieldCount returns the number of fields, walking the document once.
func (d Document) FieldCount() (int, error) {
	n := 0
	it := d.Iter()
	for it.More() {
		if _, err := it.Next(); err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// Validate checks the document's framing and walks every field,
// recursing into nested objects and arrays.
func (d Document) Validate() error {
	if len(d) < 5 {
		return fmt.Errorf("bdoc: document too short: %d bytes", len(d))
	}
	if d.ByteSize() != len(d) {
		return fmt.Errorf("bdoc: length prefix %d does not match %d actual bytes", d.ByteSize(), len(d))
	}
	if d[len(d)-1] != 0 {
		return fmt.Errorf("bdoc: missing document terminator")
	}
	it := d.Iter()
	for it.More() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		switch e.Type() {
		case TypeObject, TypeArray:
			sub, err := e.DocumentValue()
			if err != nil {
				return err
			}
			if err := sub.Validate(); err != nil {
				return fmt.Errorf("bdoc: field %q: %w", e.Name(), err)
			}
		}
	}
	return nil
}

// ============================================================
// Debug Rendering
// ============================================================

// String renders the document in a compact text form for debugging and
// test failure output. It is not a serialization format.
func (d Document) String() string {
	var sb strings.Builder
	d.render(&sb)
	return sb.String()
}

func (d Document) render(sb *strings.Builder) {
	sb.WriteByte('{')
	it := d.Iter()
	first := true
	for it.More() {
		e, err := it.Next()
		if err != nil {
			sb.WriteString("<malformed: ")
			sb.WriteString(err.Error())
			sb.WriteByte('>')
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(e.Name())
		sb.WriteByte(':')
		renderValue(sb, e)
	}
	sb.WriteByte('}')
}

func renderArray(sb *strings.Builder, d Document) {
	sb.WriteByte('[')
	it := d.Iter()
	first := true
	for it.More() {
		e, err := it.Next()
		if err != nil {
			sb.WriteString("<malformed: ")
			sb.WriteString(err.Error())
			sb.WriteByte('>')
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		renderValue(sb, e)
	}
	sb.WriteByte(']')
}

func renderValue(sb *strings.Builder, e Element) {
	switch e.Type() {
	case TypeDouble:
		f, _ := e.Double()
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case TypeInt32:
		n, _ := e.Int32()
		sb.WriteString(strconv.FormatInt(int64(n), 10))
	case TypeInt64:
		n, _ := e.Int64()
		sb.WriteString(strconv.FormatInt(n, 10))
	case TypeString, TypeSymbol:
		s, _ := e.StringValue()
		sb.WriteString(strconv.Quote(s))
	case TypeCode:
		s, _ := e.StringValue()
		sb.WriteString("code(")
		sb.WriteString(strconv.Quote(s))
		sb.WriteByte(')')
	case TypeBool:
		v, _ := e.Boolean()
		if v {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case TypeNull:
		sb.WriteString("null")
	case TypeUndefined:
		sb.WriteString("undefined")
	case TypeMinKey:
		sb.WriteString("minkey")
	case TypeMaxKey:
		sb.WriteString("maxkey")
	case TypeDateTime:
		ms, _ := e.DateTime()
		sb.WriteString("datetime(")
		sb.WriteString(strconv.FormatInt(ms, 10))
		sb.WriteByte(')')
	case TypeTimestamp:
		ts, _ := e.TimestampValue()
		fmt.Fprintf(sb, "timestamp(%d,%d)", ts.Seconds, ts.Increment)
	case TypeObjectID:
		id, _ := e.ObjectIDValue()
		sb.WriteString(id.String())
	case TypeBinary:
		bin, _ := e.BinaryValue()
		fmt.Fprintf(sb, "binary(%d,%s)", bin.Subtype, hex.EncodeToString(bin.Data))
	case TypeRegex:
		p, o, _ := e.RegexValue()
		sb.WriteByte('/')
		sb.WriteString(p)
		sb.WriteByte('/')
		sb.WriteString(o)
	case TypeDBPointer:
		sb.WriteString("dbpointer")
	case TypeCodeWithScope:
		sb.WriteString("codewithscope")
	case TypeObject:
		sub, err := e.DocumentValue()
		if err != nil {
			sb.WriteString("<malformed object>")
			return
		}
		sub.render(sb)
	case TypeArray:
		sub, err := e.DocumentValue()
		if err != nil {
			sb.WriteString("<malformed array>")
			return
		}
		renderArray(sb, sub)
	default:
		fmt.Fprintf(sb, "<unknown tag 0x%02x>", byte(e.Type()))
	}
}
