package runeprop

import "testing"

// TestLookupTotal walks the entire code space through both tables. Every
// lookup must return a known code; the point is that no index entry or page
// reference is malformed.
func TestLookupTotal(t *testing.T) {
	validCategory := map[byte]bool{
		catLu: true, catLl: true, catLt: true, catLm: true, catLo: true,
		catMn: true, catMc: true, catMe: true,
		catNd: true, catNl: true, catNo: true,
		catPc: true, catPd: true, catPs: true, catPe: true, catPi: true, catPf: true, catPo: true,
		catSm: true, catSc: true, catSk: true, catSo: true,
		catZs: true, catZl: true, catZp: true,
		catCc: true, catCf: true, catCs: true, catCo: true, catCn: true,
	}
	for r := rune(0); r <= 0x10ffff; r++ {
		if c := categoryTable.lookup(r); !validCategory[c] {
			t.Fatalf("categoryTable.lookup(%#x) = %#02x, not a category code", r, c)
		}
		if p := graphemeTable.lookup(r); p > gpLVT || p == 0x0a || p == 0x0b {
			t.Fatalf("graphemeTable.lookup(%#x) = %#02x, not a break property", r, p)
		}
	}
}

func TestLookupKnownValues(t *testing.T) {
	tests := []struct {
		r        rune
		expected byte
	}{
		{0x200d, gpZWJ},
		{0x0301, gpExtend},
		{0x0e33, gpSpacingMark},
		{'\r', gpControl},
		{'\n', gpControl},
		{0x0600, gpPrepend},
		{0x1f1e6, gpRegionalIndicator},
		{0x1f469, gpExtendedPictograph},
		{0x1100, gpL},
		{0x1161, gpV},
		{0x11a8, gpT},
		{0xac00, gpLV},
		{0xac01, gpLVT},
		{'a', gpOther},
	}
	for _, tt := range tests {
		if got := graphemeTable.lookup(tt.r); got != tt.expected {
			t.Errorf("graphemeTable.lookup(%#x) = %#02x, want %#02x", tt.r, got, tt.expected)
		}
	}
}

// TestHangulSyllableCycle checks the precomposed Hangul block: syllables at
// multiples of 28 from 0xac00 are LV, the rest LVT.
func TestHangulSyllableCycle(t *testing.T) {
	for r := rune(0xac00); r <= 0xd7a3; r++ {
		want := byte(gpLVT)
		if (r-0xac00)%28 == 0 {
			want = gpLV
		}
		if got := graphemeTable.lookup(r); got != want {
			t.Fatalf("lookup(%#x) = %#02x, want %#02x", r, got, want)
		}
	}
}

func TestPropertyGraphemesASCII(t *testing.T) {
	// The ASCII fast path must agree with the table.
	for r := rune(0); r < 0x80; r++ {
		if got, want := propertyGraphemes(r), graphemeTable.lookup(r); got != want {
			t.Errorf("propertyGraphemes(%#x) = %#02x, table says %#02x", r, got, want)
		}
	}
}

func TestPropertyGraphemesOutOfRange(t *testing.T) {
	for _, r := range []rune{-1, 0x110000, 1 << 30} {
		if got := propertyGraphemes(r); got != gpOther {
			t.Errorf("propertyGraphemes(%#x) = %#02x, want gpOther", r, got)
		}
	}
}
