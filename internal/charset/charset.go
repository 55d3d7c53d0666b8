// Package charset maps alphanumeric bytes onto a dense 62-slot address space.
// Used by the flag table for O(1) short flag lookup.
package charset

// Size is the number of addressable slots: a-z (0-25), A-Z (26-51), 0-9 (52-61).
const Size = 62

// NoSlot is returned by Slot for bytes outside the alphanumeric ranges.
const NoSlot = -1

// IsAlnum reports whether b is an ASCII letter or digit
func IsAlnum(b byte) bool {
	return Slot(b) != NoSlot
}

// IsAlnumString reports whether s is non-empty and made only of ASCII letters and digits.
func IsAlnumString(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsAlnum(s[i]) {
			return false
		}
	}
	return true
}

// Slot returns the dense slot for b, or NoSlot.
func Slot(b byte) int {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a')
	case b >= 'A' && b <= 'Z':
		return 26 + int(b-'A')
	case b >= '0' && b <= '9':
		return 52 + int(b-'0')
	default:
		return NoSlot
	}
}

// Char is the inverse of Slot. It returns 0 for out of range slots.
func Char(slot int) byte {
	if slot < 0 || slot >= Size {
		return 0
	}
	return chars[slot]
}

// String returns the single character string for b without allocating
// when b is alphanumeric.
func String(b byte) string {
	if s := Slot(b); s != NoSlot {
		return singleCharStrings[s]
	}
	return string(rune(b))
}

const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var singleCharStrings = [Size]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}
