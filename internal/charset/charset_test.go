package charset

import (
	"testing"
)

func TestSlot_Ranges(t *testing.T) {
	tests := []struct {
		input    byte
		expected int
	}{
		{'a', 0},
		{'z', 25},
		{'A', 26},
		{'Z', 51},
		{'0', 52},
		{'9', 61},
		{'-', NoSlot},
		{'=', NoSlot},
		{' ', NoSlot},
		{0x80, NoSlot},
	}

	for _, test := range tests {
		if got := Slot(test.input); got != test.expected {
			t.Errorf("Slot(%q) = %d, want %d", test.input, got, test.expected)
		}
	}
}

func TestSlot_CaseSensitive(t *testing.T) {
	if Slot('d') == Slot('D') {
		t.Fatalf("expected 'd' and 'D' to map to distinct slots")
	}
}

func TestSlot_CharRoundTrip(t *testing.T) {
	seen := make(map[int]bool, Size)
	for i := 0; i < 256; i++ {
		b := byte(i)
		s := Slot(b)
		if s == NoSlot {
			continue
		}
		if seen[s] {
			t.Fatalf("slot %d assigned twice", s)
		}
		seen[s] = true
		if Char(s) != b {
			t.Errorf("Char(Slot(%q)) = %q", b, Char(s))
		}
	}
	if len(seen) != Size {
		t.Fatalf("expected %d slots in use, got %d", Size, len(seen))
	}
	if Char(-1) != 0 || Char(Size) != 0 {
		t.Errorf("expected out of range slots to return 0")
	}
}

func TestIsAlnumString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"document", true},
		{"depth2", true},
		{"", false},
		{"dry-run", false},
		{"a=b", false},
	}

	for _, test := range tests {
		if got := IsAlnumString(test.input); got != test.expected {
			t.Errorf("IsAlnumString(%q) = %v, want %v", test.input, got, test.expected)
		}
	}
}

func TestString_NoAlloc(t *testing.T) {
	if String('q') != "q" || String('7') != "7" || String('@') != "@" {
		t.Fatalf("unexpected single character strings")
	}

	allocs := testing.AllocsPerRun(100, func() {
		_ = String('H')
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocs for alphanumeric String, got %.2f", allocs)
	}
}
