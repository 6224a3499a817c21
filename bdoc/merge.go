package bdoc

import (
	"errors"
	"fmt"
)

// ============================================================
// Document Merge
// ============================================================

// AppendFields copies every field of src into the builder verbatim, in
// source order. No duplicate detection is performed: the destination
// may end up with repeated field names, which downstream consumers must
// tolerate or reject.
func (b *Builder) AppendFields(src Document) {
	if src.IsEmpty() {
		return
	}
	if b.done {
		panic("bdoc: append to a finished builder")
	}
	// Splice the interior: skip the length prefix and the terminator.
	b.buf = append(b.buf, src[4:len(src)-1]...)
}

// AppendFieldsUnique copies each field of src whose name is not already
// present in the builder. Fields already in the destination are never
// overwritten; the appended subset keeps source order.
func (b *Builder) AppendFieldsUnique(src Document) error {
	have := make(map[string]struct{})
	it := b.Iter()
	for it.More() {
		e, err := it.Next()
		if err != nil {
			return fmt.Errorf("bdoc: scanning destination fields: %w", err)
		}
		have[e.Name()] = struct{}{}
	}

	si := src.Iter()
	for si.More() {
		e, err := si.Next()
		if err != nil {
			return fmt.Errorf("bdoc: scanning source fields: %w", err)
		}
		if _, ok := have[e.Name()]; ok {
			continue
		}
		b.AppendElement(e)
	}
	return nil
}

// ErrFieldCountMismatch reports a keyed append whose key pattern and
// values documents differ in field count. The pair is structurally
// invalid; partial pairing is never attempted.
var ErrFieldCountMismatch = errors.New("bdoc: key pattern and values differ in field count")

// AppendKeyed walks keyPattern and values in lockstep and appends, for
// each position, a field named after the pattern field but holding the
// value field's type and content. The pattern fields' values are
// ignored. Field counts are verified before anything is appended.
func (b *Builder) AppendKeyed(keyPattern, values Document) error {
	kn, err := keyPattern.FieldCount()
	if err != nil {
		return fmt.Errorf("bdoc: scanning key pattern: %w", err)
	}
	vn, err := values.FieldCount()
	if err != nil {
		return fmt.Errorf("bdoc: scanning values: %w", err)
	}
	if kn != vn {
		return fmt.Errorf("%w: %d key fields, %d value fields", ErrFieldCountMismatch, kn, vn)
	}

	ki := keyPattern.Iter()
	vi := values.Iter()
	for ki.More() {
		ke, err := ki.Next()
		if err != nil {
			return fmt.Errorf("bdoc: scanning key pattern: %w", err)
		}
		ve, err := vi.Next()
		if err != nil {
			return fmt.Errorf("bdoc: scanning values: %w", err)
		}
		b.AppendElementAs(ve, ke.Name())
	}
	return nil
}
