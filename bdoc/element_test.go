package bdoc

import (
	"bytes"
	"testing"
)

func singleField(t *testing.T, build func(b *Builder)) Element {
	t.Helper()
	b := NewBuilder()
	build(b)
	doc := b.Finish()
	it := doc.Iter()
	e, err := it.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	return e
}

func TestElement_TypedAccessors(t *testing.T) {
	e := singleField(t, func(b *Builder) { b.AppendDouble("d", 2.5) })
	if v, err := e.Double(); err != nil || v != 2.5 {
		t.Errorf("Double: %v, %v", v, err)
	}

	e = singleField(t, func(b *Builder) { b.AppendInt32("n", -9) })
	if v, err := e.Int32(); err != nil || v != -9 {
		t.Errorf("Int32: %v, %v", v, err)
	}

	e = singleField(t, func(b *Builder) { b.AppendInt64("n", 1<<40) })
	if v, err := e.Int64(); err != nil || v != 1<<40 {
		t.Errorf("Int64: %v, %v", v, err)
	}

	e = singleField(t, func(b *Builder) { b.AppendSymbol("s", "sym") })
	if e.Type() != TypeSymbol {
		t.Errorf("expected symbol, got %s", e.Type())
	}
	if v, err := e.StringValue(); err != nil || v != "sym" {
		t.Errorf("StringValue: %q, %v", v, err)
	}

	e = singleField(t, func(b *Builder) { b.AppendCode("c", "return 1") })
	if v, err := e.StringValue(); err != nil || v != "return 1" {
		t.Errorf("code StringValue: %q, %v", v, err)
	}

	e = singleField(t, func(b *Builder) { b.AppendBool("b", true) })
	if v, err := e.Boolean(); err != nil || !v {
		t.Errorf("Boolean: %v, %v", v, err)
	}

	e = singleField(t, func(b *Builder) { b.AppendDateTime("t", 1700000000000) })
	if v, err := e.DateTime(); err != nil || v != 1700000000000 {
		t.Errorf("DateTime: %v, %v", v, err)
	}
}

func TestElement_ObjectID(t *testing.T) {
	id, err := ObjectIDFromHex("0102030405060708090a0b0c")
	if err != nil {
		t.Fatalf("ObjectIDFromHex failed: %v", err)
	}
	e := singleField(t, func(b *Builder) { b.AppendObjectID("id", id) })
	got, err := e.ObjectIDValue()
	if err != nil {
		t.Fatalf("ObjectIDValue failed: %v", err)
	}
	if got != id {
		t.Errorf("round-trip mismatch: %s vs %s", got.Hex(), id.Hex())
	}
}

func TestElement_Binary(t *testing.T) {
	payload := []byte{0xCA, 0xFE, 0x00, 0x01}
	e := singleField(t, func(b *Builder) { b.AppendBinary("bin", BinaryUser, payload) })
	bin, err := e.BinaryValue()
	if err != nil {
		t.Fatalf("BinaryValue failed: %v", err)
	}
	if bin.Subtype != BinaryUser {
		t.Errorf("subtype: %d", bin.Subtype)
	}
	if !bytes.Equal(bin.Data, payload) {
		t.Errorf("payload mismatch: %#v", bin.Data)
	}
}

func TestElement_Regex(t *testing.T) {
	e := singleField(t, func(b *Builder) { b.AppendRegex("re", "^a.*b$", "i") })
	p, o, err := e.RegexValue()
	if err != nil {
		t.Fatalf("RegexValue failed: %v", err)
	}
	if p != "^a.*b$" || o != "i" {
		t.Errorf("got /%s/%s", p, o)
	}
}

func TestElement_NestedDocument(t *testing.T) {
	inner := NewBuilder()
	inner.AppendInt32("deep", 9)
	innerDoc := inner.Finish()

	e := singleField(t, func(b *Builder) { b.AppendObject("o", innerDoc) })
	sub, err := e.DocumentValue()
	if err != nil {
		t.Fatalf("DocumentValue failed: %v", err)
	}
	if !bytes.Equal(sub.Raw(), innerDoc.Raw()) {
		t.Error("nested document bytes differ from the original")
	}
	got, ok := sub.Lookup("deep")
	if !ok {
		t.Fatal("nested lookup failed")
	}
	if v, _ := got.Int32(); v != 9 {
		t.Errorf("nested value: %d", v)
	}
}

func TestElement_CodeWithScope(t *testing.T) {
	scope := NewBuilder()
	scope.AppendInt32("x", 1)
	e := singleField(t, func(b *Builder) { b.AppendCodeWithScope("f", "x", scope.Finish()) })
	if e.Type() != TypeCodeWithScope {
		t.Fatalf("expected codewithscope, got %s", e.Type())
	}
	// The element must size itself correctly so iteration can skip it;
	// reaching here via singleField already proves Next parsed it.
}

func TestElement_WrongTypeErrors(t *testing.T) {
	e := singleField(t, func(b *Builder) { b.AppendString("s", "x") })

	if _, err := e.Int32(); err == nil {
		t.Error("Int32 on a string should fail")
	}
	if _, err := e.Double(); err == nil {
		t.Error("Double on a string should fail")
	}
	if _, err := e.Boolean(); err == nil {
		t.Error("Boolean on a string should fail")
	}
	if _, _, err := e.RegexValue(); err == nil {
		t.Error("RegexValue on a string should fail")
	}
	if _, err := e.DocumentValue(); err == nil {
		t.Error("DocumentValue on a string should fail")
	}
}

func TestElement_NumberWidening(t *testing.T) {
	tests := []struct {
		name     string
		build    func(b *Builder)
		expected float64
		ok       bool
	}{
		{"int32", func(b *Builder) { b.AppendInt32("n", 7) }, 7, true},
		{"int64", func(b *Builder) { b.AppendInt64("n", 1 << 33) }, float64(int64(1) << 33), true},
		{"double", func(b *Builder) { b.AppendDouble("n", 0.25) }, 0.25, true},
		{"string", func(b *Builder) { b.AppendString("n", "7") }, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := singleField(t, tt.build)
			got, ok := e.Number()
			if ok != tt.ok || got != tt.expected {
				t.Errorf("Number() = %v, %v; want %v, %v", got, ok, tt.expected, tt.ok)
			}
		})
	}
}
