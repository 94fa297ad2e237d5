//go:build !windows

package metastr

// Wide is the platform wide character unit. Outside Windows the wide unit
// is 32 bits and carries UTF-32.
type Wide = rune

// W builds a String of platform wide units from a Go string literal.
func W(s string) String[Wide] {
	return U32(s)
}
