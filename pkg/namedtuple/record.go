package namedtuple

import "github.com/rawbytedev/metastr"

// Record is a read-only fixed-arity record: one name list plus a matching
// positional value tuple. Record values behave like plain aggregates; no
// mutator is exposed once built.
type Record[C metastr.Unit] struct {
	names  *Names[C]
	values []any
}

// Make builds a record from a name list and a matching value list. Panics
// when the counts differ.
func Make[C metastr.Unit](names *Names[C], values ...any) Record[C] {
	if len(values) != names.Size() {
		panic("namedtuple: field count mismatch")
	}
	vals := make([]any, len(values))
	copy(vals, values)
	return Record[C]{names: names, values: vals}
}

// Size returns the field count.
func (r Record[C]) Size() int {
	return len(r.values)
}

// Names returns the record's name list.
func (r Record[C]) Names() *Names[C] {
	return r.names
}

// Get resolves name to a position and returns the field there. Panics when
// no field has that name.
func (r Record[C]) Get(name metastr.String[C]) any {
	return r.values[r.names.IndexOf(name)]
}

// GetText is Get for decoded name text, served by the construction-time
// map.
func (r Record[C]) GetText(name string) any {
	return r.values[r.names.IndexOfText(name)]
}

// At returns the field at position i. Panics when i is out of range.
func (r Record[C]) At(i int) any {
	if i < 0 || i >= len(r.values) {
		panic("namedtuple: field index out of range")
	}
	return r.values[i]
}

// As returns the named field asserted to type T. A wrong type is a
// programmer error and panics via the assertion.
func As[T any, C metastr.Unit](r Record[C], name metastr.String[C]) T {
	return r.Get(name).(T)
}
