package bdoc

import "testing"

func TestType_String(t *testing.T) {
	tests := []struct {
		tag      Type
		expected string
	}{
		{TypeEOO, "eoo"},
		{TypeDouble, "double"},
		{TypeString, "string"},
		{TypeObject, "object"},
		{TypeArray, "array"},
		{TypeBinary, "binary"},
		{TypeUndefined, "undefined"},
		{TypeObjectID, "objectid"},
		{TypeBool, "bool"},
		{TypeDateTime, "datetime"},
		{TypeNull, "null"},
		{TypeRegex, "regex"},
		{TypeDBPointer, "dbpointer"},
		{TypeCode, "code"},
		{TypeSymbol, "symbol"},
		{TypeCodeWithScope, "codewithscope"},
		{TypeInt32, "int32"},
		{TypeTimestamp, "timestamp"},
		{TypeInt64, "int64"},
		{TypeMaxKey, "maxkey"},
		{TypeMinKey, "minkey"},
		{Type(0x42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.expected {
			t.Errorf("Type(0x%02x).String() = %q, want %q", byte(tt.tag), got, tt.expected)
		}
	}
}

func TestCanonicalType_Buckets(t *testing.T) {
	tests := []struct {
		tag      Type
		expected Type
	}{
		{TypeInt32, TypeDouble},
		{TypeInt64, TypeDouble},
		{TypeDouble, TypeDouble},
		{TypeSymbol, TypeString},
		{TypeString, TypeString},
		{TypeEOO, TypeUndefined},
		{TypeUndefined, TypeUndefined},
		{TypeObjectID, TypeObjectID},
		{TypeMinKey, TypeMinKey},
	}

	for _, tt := range tests {
		if got := canonicalType(tt.tag); got != tt.expected {
			t.Errorf("canonicalType(%s) = %s, want %s", tt.tag, got, tt.expected)
		}
	}
}

func TestObjectIDFromHex_Rejections(t *testing.T) {
	for _, in := range []string{"", "zzzz", "0102030405060708090a0b", "0102030405060708090a0b0c0d"} {
		if _, err := ObjectIDFromHex(in); err == nil {
			t.Errorf("ObjectIDFromHex(%q) should fail", in)
		}
	}
}

func TestMaxObjectID(t *testing.T) {
	id := MaxObjectID()
	for i, b := range id {
		if b != 0xFF {
			t.Fatalf("byte %d is 0x%02x, want 0xFF", i, b)
		}
	}
	if id.IsZero() {
		t.Error("max id reported zero")
	}
	if id.Hex() != "ffffffffffffffffffffffff" {
		t.Errorf("Hex() = %s", id.Hex())
	}
}
