package bdoc

import (
	"strings"
	"testing"
)

// ============================================================
// Document Framing Tests
// ============================================================

func TestDocument_Empty(t *testing.T) {
	doc := EmptyDocument()
	if !doc.IsEmpty() {
		t.Error("EmptyDocument should be empty")
	}
	if doc.ByteSize() != 5 {
		t.Errorf("expected byte size 5, got %d", doc.ByteSize())
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
	n, err := doc.FieldCount()
	if err != nil || n != 0 {
		t.Errorf("expected 0 fields, got %d (err %v)", n, err)
	}
}

func TestDocument_ValidateNested(t *testing.T) {
	inner := NewBuilder()
	inner.AppendString("s", "deep")
	innerDoc := inner.Finish()

	arr := NewArrayBuilder()
	arr.AppendInt32(1)
	arr.AppendObject(innerDoc)

	b := NewBuilder()
	b.AppendObject("obj", innerDoc)
	b.AppendArray("arr", arr.Finish())
	doc := b.Finish()

	if err := doc.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestDocument_ValidateRejectsCorruption(t *testing.T) {
	valid := func() Document {
		b := NewBuilder()
		b.AppendString("a", "x")
		b.AppendInt32("b", 7)
		return b.Finish()
	}

	tests := []struct {
		name    string
		corrupt func(d Document) Document
	}{
		{
			name: "length prefix too large",
			corrupt: func(d Document) Document {
				d[0]++
				return d
			},
		},
		{
			name: "missing terminator",
			corrupt: func(d Document) Document {
				return d[:len(d)-1]
			},
		},
		{
			name: "truncated value",
			corrupt: func(d Document) Document {
				return d[:len(d)-3]
			},
		},
		{
			name: "too short",
			corrupt: func(d Document) Document {
				return d[:3]
			},
		},
		{
			name: "unknown type tag",
			corrupt: func(d Document) Document {
				d[4] = 0x42
				return d
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.corrupt(valid())
			if err := d.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

// ============================================================
// Lookup and Iteration Tests
// ============================================================

func TestDocument_Lookup(t *testing.T) {
	b := NewBuilder()
	b.AppendInt32("a", 1)
	b.AppendInt32("b", 2)
	b.AppendInt32("a", 3) // duplicate, raw appends allow this
	doc := b.Finish()

	e, ok := doc.Lookup("a")
	if !ok {
		t.Fatal("lookup of a failed")
	}
	v, _ := e.Int32()
	if v != 1 {
		t.Errorf("Lookup must return the first match, got %d", v)
	}

	if _, ok := doc.Lookup("missing"); ok {
		t.Error("lookup of missing field succeeded")
	}
}

func TestDocument_IterSinglePass(t *testing.T) {
	b := NewBuilder()
	b.AppendInt32("a", 1)
	doc := b.Finish()

	it := doc.Iter()
	if !it.More() {
		t.Fatal("expected one field")
	}
	if _, err := it.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if it.More() {
		t.Error("iterator should be exhausted")
	}
	if _, err := it.Next(); err == nil {
		t.Error("Next past the end should fail")
	}
}

// ============================================================
// Debug Rendering Tests
// ============================================================

func TestDocument_String(t *testing.T) {
	arr := NewArrayBuilder()
	arr.AppendInt32(1)
	arr.AppendInt32(2)

	b := NewBuilder()
	b.AppendInt32("a", 1)
	b.AppendString("b", "x")
	b.AppendArray("c", arr.Finish())
	doc := b.Finish()

	if got := doc.String(); got != `{a:1 b:"x" c:[1 2]}` {
		t.Errorf("unexpected rendering: %s", got)
	}
}

func TestDocument_StringMalformed(t *testing.T) {
	b := NewBuilder()
	b.AppendString("a", "x")
	doc := b.Finish()
	doc[4] = 0x42 // unknown tag

	if !strings.Contains(doc.String(), "malformed") {
		t.Errorf("expected malformed marker, got %s", doc.String())
	}
}
