package bdoc

// ArrayBuilder assembles an array document, synthesizing decimal index
// names positionally. Like Builder, it is single-owner and not safe for
// concurrent mutation.
type ArrayBuilder struct {
	b *Builder
	n int
}

// NewArrayBuilder returns an empty array builder.
func NewArrayBuilder() *ArrayBuilder {
	return &ArrayBuilder{b: NewBuilder()}
}

// next returns the field name for the next element.
func (a *ArrayBuilder) next() string {
	name := IndexName(a.n)
	a.n++
	return name
}

// Len returns the number of elements appended so far.
func (a *ArrayBuilder) Len() int {
	return a.n
}

// AppendDouble appends a double element.
func (a *ArrayBuilder) AppendDouble(v float64) {
	a.b.AppendDouble(a.next(), v)
}

// AppendInt32 appends an int32 element.
func (a *ArrayBuilder) AppendInt32(v int32) {
	a.b.AppendInt32(a.next(), v)
}

// AppendInt64 appends an int64 element.
func (a *ArrayBuilder) AppendInt64(v int64) {
	a.b.AppendInt64(a.next(), v)
}

// AppendString appends a string element.
func (a *ArrayBuilder) AppendString(v string) {
	a.b.AppendString(a.next(), v)
}

// AppendBool appends a boolean element.
func (a *ArrayBuilder) AppendBool(v bool) {
	a.b.AppendBool(a.next(), v)
}

// AppendNull appends a null element.
func (a *ArrayBuilder) AppendNull() {
	a.b.AppendNull(a.next())
}

// AppendObject appends a nested document element.
func (a *ArrayBuilder) AppendObject(d Document) {
	a.b.AppendObject(a.next(), d)
}

// AppendArray appends a nested array element.
func (a *ArrayBuilder) AppendArray(d Document) {
	a.b.AppendArray(a.next(), d)
}

// AppendElementValue appends an existing element's type and value under
// the next positional name.
func (a *ArrayBuilder) AppendElementValue(e Element) {
	a.b.AppendElementAs(e, a.next())
}

// Finish seals and returns the array document.
func (a *ArrayBuilder) Finish() Document {
	return a.b.Finish()
}
