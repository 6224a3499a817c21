package bdoc

import (
	"encoding/binary"
	"math"
	"time"
)

// Builder assembles the byte representation of one document. Fields are
// appended sequentially; Finish seals the bytes into an immutable
// Document.
//
// A Builder owns its buffer exclusively until sealed. It provides no
// internal synchronization: concurrent appends on one Builder are a
// data race. Iterators taken via Iter borrow the buffer and are
// invalidated by any subsequent append.
type Builder struct {
	buf    []byte
	start  int // index of this document's length prefix
	offset int // index where fields begin, fixed at construction
	done   bool
}

// NewBuilder returns an empty top-level builder.
func NewBuilder() *Builder {
	b := &Builder{buf: make([]byte, 4, 64)}
	b.offset = 4
	return b
}

// NewBuilderWithin returns a builder whose document starts at the end
// of prefix, for assembling a document in place inside a larger buffer.
// The builder takes ownership of prefix's backing array; Finish returns
// only the new document's span.
func NewBuilderWithin(prefix []byte) *Builder {
	start := len(prefix)
	buf := append(prefix, 0, 0, 0, 0)
	return &Builder{buf: buf, start: start, offset: start + 4}
}

// Len returns the number of bytes accumulated for this document so far,
// including the length prefix.
func (b *Builder) Len() int {
	return len(b.buf) - b.start
}

// header writes the field's type tag and NUL-terminated name.
func (b *Builder) header(t Type, name string) {
	if b.done {
		panic("bdoc: append to a finished builder")
	}
	b.buf = append(b.buf, byte(t))
	b.buf = append(b.buf, name...)
	b.buf = append(b.buf, 0)
}

func (b *Builder) rawInt32(v int32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(v))
}

func (b *Builder) rawInt64(v int64) {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, uint64(v))
}

// rawString writes a length-prefixed, NUL-terminated string value.
func (b *Builder) rawString(s string) {
	b.rawInt32(int32(len(s) + 1))
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, 0)
}

// ============================================================
// Primitive Typed Appends
// ============================================================

// AppendDouble appends a double field.
func (b *Builder) AppendDouble(name string, v float64) {
	b.header(TypeDouble, name)
	b.buf = binary.LittleEndian.AppendUint64(b.buf, math.Float64bits(v))
}

// AppendInt32 appends an int32 field.
func (b *Builder) AppendInt32(name string, v int32) {
	b.header(TypeInt32, name)
	b.rawInt32(v)
}

// AppendInt64 appends an int64 field.
func (b *Builder) AppendInt64(name string, v int64) {
	b.header(TypeInt64, name)
	b.rawInt64(v)
}

// AppendString appends a string field.
func (b *Builder) AppendString(name, v string) {
	b.header(TypeString, name)
	b.rawString(v)
}

// AppendSymbol appends a symbol field. Symbols sort with strings.
func (b *Builder) AppendSymbol(name, v string) {
	b.header(TypeSymbol, name)
	b.rawString(v)
}

// AppendBool appends a boolean field.
func (b *Builder) AppendBool(name string, v bool) {
	b.header(TypeBool, name)
	if v {
		b.buf = append(b.buf, 1)
	} else {
		b.buf = append(b.buf, 0)
	}
}

// AppendNull appends a null field.
func (b *Builder) AppendNull(name string) {
	b.header(TypeNull, name)
}

// AppendUndefined appends an undefined field.
func (b *Builder) AppendUndefined(name string) {
	b.header(TypeUndefined, name)
}

// AppendMinKey appends a minkey field, the absolute sort minimum.
func (b *Builder) AppendMinKey(name string) {
	b.header(TypeMinKey, name)
}

// AppendMaxKey appends a maxkey field, the absolute sort maximum.
func (b *Builder) AppendMaxKey(name string) {
	b.header(TypeMaxKey, name)
}

// AppendDateTime appends a datetime field holding milliseconds since
// the Unix epoch.
func (b *Builder) AppendDateTime(name string, millis int64) {
	b.header(TypeDateTime, name)
	b.rawInt64(millis)
}

// AppendTime appends t as a datetime field, truncated to millisecond
// precision.
func (b *Builder) AppendTime(name string, t time.Time) {
	b.AppendDateTime(name, t.UnixMilli())
}

// AppendTimestamp appends an internal timestamp field.
func (b *Builder) AppendTimestamp(name string, ts Timestamp) {
	b.header(TypeTimestamp, name)
	b.buf = binary.LittleEndian.AppendUint32(b.buf, ts.Increment)
	b.buf = binary.LittleEndian.AppendUint32(b.buf, ts.Seconds)
}

// AppendObjectID appends an objectid field.
func (b *Builder) AppendObjectID(name string, id ObjectID) {
	b.header(TypeObjectID, name)
	b.buf = append(b.buf, id[:]...)
}

// AppendBinary appends a subtyped binary field.
func (b *Builder) AppendBinary(name string, subtype byte, data []byte) {
	b.header(TypeBinary, name)
	b.rawInt32(int32(len(data)))
	b.buf = append(b.buf, subtype)
	b.buf = append(b.buf, data...)
}

// AppendRegex appends a regular expression field. Pattern and options
// must not contain NUL bytes.
func (b *Builder) AppendRegex(name, pattern, options string) {
	b.header(TypeRegex, name)
	b.buf = append(b.buf, pattern...)
	b.buf = append(b.buf, 0)
	b.buf = append(b.buf, options...)
	b.buf = append(b.buf, 0)
}

// AppendDBPointer appends a namespace reference field.
func (b *Builder) AppendDBPointer(name, namespace string, id ObjectID) {
	b.header(TypeDBPointer, name)
	b.rawString(namespace)
	b.buf = append(b.buf, id[:]...)
}

// AppendCode appends a code field.
func (b *Builder) AppendCode(name, code string) {
	b.header(TypeCode, name)
	b.rawString(code)
}

// AppendCodeWithScope appends a code field carrying a scope document.
// A nil or empty scope encodes as the empty document.
func (b *Builder) AppendCodeWithScope(name, code string, scope Document) {
	if len(scope) == 0 {
		scope = EmptyDocument()
	}
	b.header(TypeCodeWithScope, name)
	b.rawInt32(int32(4 + 4 + len(code) + 1 + len(scope)))
	b.rawString(code)
	b.buf = append(b.buf, scope...)
}

// AppendObject appends a nested document field. A nil doc encodes as
// the empty document.
func (b *Builder) AppendObject(name string, doc Document) {
	if len(doc) == 0 {
		doc = EmptyDocument()
	}
	b.header(TypeObject, name)
	b.buf = append(b.buf, doc...)
}

// AppendArray appends an array field. The doc is expected to use
// decimal index names; see ArrayBuilder.
func (b *Builder) AppendArray(name string, doc Document) {
	if len(doc) == 0 {
		doc = EmptyDocument()
	}
	b.header(TypeArray, name)
	b.buf = append(b.buf, doc...)
}

// ============================================================
// Element Appends
// ============================================================

// AppendElement copies an existing element verbatim, keeping its name.
func (b *Builder) AppendElement(e Element) {
	if b.done {
		panic("bdoc: append to a finished builder")
	}
	b.buf = append(b.buf, e.data...)
}

// AppendElementAs copies an element's type and value under a new name.
func (b *Builder) AppendElementAs(e Element, name string) {
	b.header(e.Type(), name)
	b.buf = append(b.buf, e.Value()...)
}

// ============================================================
// Introspection
// ============================================================

// Iter returns a single-pass iterator over the fields appended so far.
// The iterator borrows the builder's buffer: any append invalidates it.
func (b *Builder) Iter() *Iter {
	return newIter(b.buf[b.offset:len(b.buf):len(b.buf)])
}

// HasField reports whether a field with the exact name has already been
// appended. Linear in the number of fields.
func (b *Builder) HasField(name string) bool {
	it := b.Iter()
	for it.More() {
		e, err := it.Next()
		if err != nil {
			return false
		}
		if e.Name() == name {
			return true
		}
	}
	return false
}

// ============================================================
// Sealing
// ============================================================

// Finish writes the terminator, patches the length prefix, and returns
// the sealed document. Ownership of the bytes transfers to the
// Document; further appends panic.
func (b *Builder) Finish() Document {
	if b.done {
		panic("bdoc: builder already finished")
	}
	b.buf = append(b.buf, 0)
	binary.LittleEndian.PutUint32(b.buf[b.start:], uint32(len(b.buf)-b.start))
	b.done = true
	return Document(b.buf[b.start:])
}
