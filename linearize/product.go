package linearize

// FieldSpec describes one field of a product composition: its bijection
// plus how to read it from and write it into the enclosing record. Build
// one with Field.
type FieldSpec[S any] interface {
	fieldLength() int
	fieldLinearize(record *S) int
	fieldAssign(record *S, index int)
}

type fieldSpec[S, F any] struct {
	codec Bijection[F]
	get   func(*S) F
	set   func(*S, F)
}

// Field binds a field of type F inside a record of type S to its
// bijection. get and set must address the same field.
func Field[S, F any](codec Bijection[F], get func(*S) F, set func(*S, F)) FieldSpec[S] {
	return fieldSpec[S, F]{codec: codec, get: get, set: set}
}

func (f fieldSpec[S, F]) fieldLength() int { return f.codec.Length() }

func (f fieldSpec[S, F]) fieldLinearize(record *S) int {
	return f.codec.Linearize(f.get(record))
}

func (f fieldSpec[S, F]) fieldAssign(record *S, index int) {
	f.set(record, f.codec.DelinearizeUnchecked(index))
}

// productBijection is the mixed-radix composition of its fields. radix[i]
// holds the suffix product of the lengths of all fields after i, so the
// first field is the most significant digit.
type productBijection[S any] struct {
	fields []FieldSpec[S]
	radix  []int
	length int
}

// Product composes field bijections into the bijection of the whole
// record. The cardinality is the product of the field cardinalities; a
// record with no fields has cardinality 1, and any uninhabited field makes
// the whole record uninhabited.
//
// Index arithmetic uses Go's native wrapping int semantics with no
// overflow checks: a well-formed bijection never produces an index at or
// above its own cardinality, and that invariant is trusted unconditionally.
// Overflow is only reachable when the combined cardinality exceeds the int
// range, at which point the type is far too large to enumerate anyway.
func Product[S any](fields ...FieldSpec[S]) Bijection[S] {
	radix := make([]int, len(fields))
	length := 1
	for i := len(fields) - 1; i >= 0; i-- {
		radix[i] = length
		length *= fields[i].fieldLength()
	}
	return productBijection[S]{fields: fields, radix: radix, length: length}
}

func (p productBijection[S]) Length() int { return p.length }

func (p productBijection[S]) Linearize(key S) int {
	res := 0
	for i, f := range p.fields {
		res += f.fieldLinearize(&key) * p.radix[i]
	}
	return res
}

func (p productBijection[S]) DelinearizeUnchecked(index int) S {
	var record S
	for i, f := range p.fields {
		f.fieldAssign(&record, (index/p.radix[i])%f.fieldLength())
	}
	return record
}
