package metastr

// Concat joins strings of one unit type into a single string whose
// capacity is the exact sum of the operand capacities minus the merged
// terminators: the first operand keeps its terminator slot as the shared
// terminator of the result. Mixing unit types or calling with no operands
// does not compile.
func Concat[C Unit](first String[C], rest ...String[C]) String[C] {
	total := len(first.str)
	for _, s := range rest {
		total += len(s.str) - 1
	}
	out := make([]C, total)
	copy(out, first.Content())
	offset := len(first.str) - 1
	for _, s := range rest {
		copy(out[offset:], s.Content())
		offset += len(s.str) - 1
	}
	return String[C]{str: out}
}

// ConcatUnits is Concat over raw unit slices, each wrapped into a String
// first.
func ConcatUnits[C Unit](first []C, rest ...[]C) String[C] {
	wrapped := make([]String[C], len(rest))
	for i, units := range rest {
		wrapped[i] = FromUnits(units...)
	}
	return Concat(FromUnits(first...), wrapped...)
}

// ConcatStrings is Concat over Go string literals in the byte family.
func ConcatStrings(first string, rest ...string) String[byte] {
	wrapped := make([]String[byte], len(rest))
	for i, s := range rest {
		wrapped[i] = New(s)
	}
	return Concat(New(first), wrapped...)
}
