// Package namedtuple implements fixed-arity records whose fields are
// addressed by name instead of positional index.
//
// Name resolution is set up once at construction: the ordered name list
// keeps a map from name text to position, so lookups cost a map consult
// rather than per-access string scanning. Every misuse (unknown name,
// index out of range, field count mismatch) is a programmer error and
// panics; nothing here returns a recoverable error.
package namedtuple

import "github.com/rawbytedev/metastr"

// Names is an ordered list of field names sharing one unit type.
type Names[C metastr.Unit] struct {
	list []metastr.String[C]
	// first occurrence wins: duplicate names resolve to the lowest index
	index map[string]int
}

// NewNames builds a name list. At least one name is required.
func NewNames[C metastr.Unit](first metastr.String[C], rest ...metastr.String[C]) *Names[C] {
	list := make([]metastr.String[C], 0, len(rest)+1)
	list = append(list, first)
	list = append(list, rest...)
	index := make(map[string]int, len(list))
	for i, name := range list {
		key := name.Text()
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}
	return &Names[C]{list: list, index: index}
}

// Size returns the number of names.
func (n *Names[C]) Size() int {
	return len(n.list)
}

// At returns the name at position i. Panics when i is out of range.
func (n *Names[C]) At(i int) metastr.String[C] {
	if i < 0 || i >= len(n.list) {
		panic("namedtuple: name index out of range")
	}
	return n.list[i]
}

// IndexOf resolves a name to its position by linear scan with
// padding-insensitive string equality; the first match wins. Panics when
// no name matches.
func (n *Names[C]) IndexOf(name metastr.String[C]) int {
	for i, cand := range n.list {
		if metastr.Equal(cand, name) {
			return i
		}
	}
	panic("namedtuple: no field named " + name.Text())
}

// IndexOfText resolves decoded name text to a position via the
// construction-time map. Panics when absent.
func (n *Names[C]) IndexOfText(name string) int {
	i, ok := n.index[name]
	if !ok {
		panic("namedtuple: no field named " + name)
	}
	return i
}
