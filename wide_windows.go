//go:build windows

package metastr

// Wide is the platform wide character unit. On Windows the wide unit is
// 16 bits and carries UTF-16.
type Wide = uint16

// W builds a String of platform wide units from a Go string literal.
func W(s string) String[Wide] {
	return U16(s)
}
