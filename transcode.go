package metastr

import "github.com/rawbytedev/metastr/internal/fatal"

const (
	leadSurrogateMin  uint32 = 0xD800
	leadSurrogateMax  uint32 = 0xDBFF
	trailSurrogateMin uint32 = 0xDC00
	trailSurrogateMax uint32 = 0xDFFF
	// 0x10000 - (leadSurrogateMin << 10) - trailSurrogateMin, mod 2^32
	surrogateOffset uint32 = 0xFCA02400
	// maximum valid Unicode scalar value
	codePointMax uint32 = 0x10FFFF
)

// ToUTF8 converts a string of any unit family to UTF-8 units.
//
// Same-family sources are copied unit-wise with unchanged capacity. UTF-16
// sources have surrogate pairs reassembled first; UTF-16 and UTF-32 sources
// reserve the worst-case capacity 4*N-3, padding the slack with zero units.
//
// Malformed input (a code point above 0x10FFFF, a code point inside the
// surrogate range, a lone or mispaired surrogate) terminates the process.
// Use ToUTF8Unchecked to skip that validation.
func ToUTF8[D UTF8Unit, S Unit](s String[S]) String[D] {
	return toUTF8[D](s, true)
}

// ToUTF8Unchecked is ToUTF8 with input validation compiled out. On
// malformed input the output units are unspecified. The trade-off is
// deliberate: validation costs on every unit, and malformed literals are
// logic errors rather than runtime conditions.
func ToUTF8Unchecked[D UTF8Unit, S Unit](s String[S]) String[D] {
	return toUTF8[D](s, false)
}

// ToUTF16 changes the representation of a UTF-16 string to another 16-bit
// unit type. Cross-family sources are rejected at compile time; UTF-8 is
// the only cross-family conversion target this package defines.
func ToUTF16[D UTF16Unit, S UTF16Unit](s String[S]) String[D] {
	out := make([]D, len(s.str))
	for i, u := range s.Content() {
		out[i] = D(u)
	}
	return String[D]{str: out}
}

// ToUTF32 changes the representation of a UTF-32 string to another 32-bit
// unit type.
func ToUTF32[D UTF32Unit, S UTF32Unit](s String[S]) String[D] {
	out := make([]D, len(s.str))
	for i, u := range s.Content() {
		out[i] = D(u)
	}
	return String[D]{str: out}
}

func toUTF8[D UTF8Unit, S Unit](s String[S], validate bool) String[D] {
	n := len(s.str)
	switch FamilyOf[S]() {
	case UTF8:
		out := make([]D, n)
		for i, u := range s.str[:n-1] {
			out[i] = D(u)
		}
		return String[D]{str: out}
	case UTF16:
		// worst case is 4 output bytes per reassembled pair; the final
		// terminator unit always emits a single byte, hence 4*N-3
		out := make([]D, 4*n-3)
		index := 0
		for i := 0; i < n; {
			u32 := uint32(s.str[i]) & 0xFFFF
			i++
			if validate && u32 >= trailSurrogateMin && u32 <= trailSurrogateMax {
				fatal.Terminate()
			}
			if u32 >= leadSurrogateMin && u32 <= leadSurrogateMax {
				if i >= n {
					if validate {
						fatal.Terminate()
					}
					break
				}
				trail := uint32(s.str[i]) & 0xFFFF
				i++
				if validate && (trail < trailSurrogateMin || trail > trailSurrogateMax) {
					fatal.Terminate()
				}
				u32 = (u32 << 10) + trail + surrogateOffset
			}
			index = emitUTF8(out, index, u32)
		}
		return String[D]{str: out}
	default:
		out := make([]D, 4*n-3)
		index := 0
		for _, u := range s.str {
			u32 := uint32(u)
			if validate && (u32 > codePointMax ||
				u32 >= leadSurrogateMin && u32 <= trailSurrogateMax) {
				fatal.Terminate()
			}
			index = emitUTF8(out, index, u32)
		}
		return String[D]{str: out}
	}
}

// emitUTF8 writes one code point as 1-4 UTF-8 bytes and returns the
// advanced write index.
func emitUTF8[D UTF8Unit](out []D, index int, u32 uint32) int {
	switch {
	case u32 < 0x80:
		out[index] = D(u32)
		return index + 1
	case u32 < 0x800:
		out[index] = D(u32>>6 | 0xC0)
		out[index+1] = D(u32&0x3F | 0x80)
		return index + 2
	case u32 < 0x10000:
		out[index] = D(u32>>12 | 0xE0)
		out[index+1] = D(u32>>6&0x3F | 0x80)
		out[index+2] = D(u32&0x3F | 0x80)
		return index + 3
	default:
		out[index] = D(u32>>18 | 0xF0)
		out[index+1] = D(u32>>12&0x3F | 0x80)
		out[index+2] = D(u32>>6&0x3F | 0x80)
		out[index+3] = D(u32&0x3F | 0x80)
		return index + 4
	}
}
