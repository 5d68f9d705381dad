package runeprop

import "testing"

func TestCategorySpotChecks(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected byte
	}{
		{"latin lowercase", 'a', catLl},
		{"latin uppercase", 'Ü', catLu},
		{"cyrillic uppercase", 'Я', catLu},
		{"greek titlecase", 'ᾮ', catLt},
		{"modifier letter", 'ゞ', catLm},
		{"cjk ideograph", '子', catLo},
		{"tab", '\t', catCc},
		{"space", ' ', catZs},
		{"line separator", 0x2028, catZl},
		{"paragraph separator", 0x2029, catZp},
		{"open bracket", '[', catPs},
		{"close bracket", ']', catPe},
		{"initial quote", '«', catPi},
		{"final quote", '»', catPf},
		{"double hyphen", '⸗', catPd},
		{"undertie", '‿', catPc},
		{"comma", ',', catPo},
		{"circumflex", '^', catSk},
		{"element of", '∈', catSm},
		{"pound sign", '£', catSc},
		{"tab symbol", '↹', catSo},
		{"soft hyphen", 0x00ad, catCf},
		{"vulgar fraction", '¾', catNo},
		{"arabic digit", '٣', catNd},
		{"roman numeral", 'Ⅷ', catNl},
		{"combining acute", 0x0301, catMn},
		{"enclosing sign", 0x0488, catMe},
		{"balinese vowel sign", 0x1b44, catMc},
		{"noncharacter", 0xffff, catCn},
		{"private use", 0xe000, catCo},
		{"plane 16 private use", 0x100000, catCo},
		{"surrogate", 0xd800, catCs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := category(tt.r); got != tt.expected {
				t.Errorf("category(%#x) = %#02x, want %#02x", tt.r, got, tt.expected)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	if !IsLetter('a') || !IsLetter('子') || !IsLetter('ゞ') {
		t.Error("IsLetter rejected a letter")
	}
	if IsLetter('3') || IsLetter(' ') || IsLetter(0x0301) {
		t.Error("IsLetter accepted a non-letter")
	}

	if !IsCasedLetter('a') || !IsCasedLetter('Ü') || !IsCasedLetter('ᾮ') {
		t.Error("IsCasedLetter rejected a cased letter")
	}
	if IsCasedLetter('子') || IsCasedLetter('ゞ') {
		t.Error("IsCasedLetter accepted an uncased letter")
	}

	if !IsNumber('7') || !IsNumber('¾') || !IsNumber('Ⅷ') {
		t.Error("IsNumber rejected a number")
	}
	if !IsDecimalNumber('٣') || IsDecimalNumber('¾') {
		t.Error("IsDecimalNumber wrong")
	}

	if !IsPunctuation('[') || !IsPunctuation('«') || !IsPunctuation(',') {
		t.Error("IsPunctuation rejected punctuation")
	}
	if !IsOpenPunctuation('[') || IsOpenPunctuation(']') {
		t.Error("IsOpenPunctuation wrong")
	}

	if !IsSymbol('∈') || !IsSymbol('£') || IsSymbol('a') {
		t.Error("IsSymbol wrong")
	}
	if !IsMark(0x0301) || !IsMark(0x0488) || IsMark('a') {
		t.Error("IsMark wrong")
	}
	if !IsSeparator(' ') || !IsSeparator(0x2028) || IsSeparator('\t') {
		t.Error("IsSeparator wrong")
	}
	if !IsOther('\t') || !IsOther(0x00ad) || !IsOther(0xe000) || IsOther(' ') {
		t.Error("IsOther wrong")
	}
	if !IsControl('\t') || IsControl(0x00ad) {
		t.Error("IsControl wrong")
	}
	if !IsFormat(0x00ad) || IsFormat('\t') {
		t.Error("IsFormat wrong")
	}
	if !IsPrivateUse(0xe000) || !IsPrivateUse(0x100000) {
		t.Error("IsPrivateUse wrong")
	}
	if !IsUnassigned(0xffff) || IsUnassigned('a') {
		t.Error("IsUnassigned wrong")
	}
}

func TestPredicatesOutOfRange(t *testing.T) {
	// Values outside the scalar value range classify as unassigned and match
	// no other predicate.
	for _, r := range []rune{-1, 0x110000, 1 << 30} {
		if !IsUnassigned(r) {
			t.Errorf("IsUnassigned(%#x) = false", r)
		}
		if IsLetter(r) || IsNumber(r) || IsSymbol(r) || IsSeparator(r) {
			t.Errorf("%#x matched a positive predicate", r)
		}
	}
}

// TestCategoryPartition checks that the coarse classes partition the code
// space: every scalar value matches exactly one of the seven top-level
// predicates.
func TestCategoryPartition(t *testing.T) {
	for r := rune(0); r <= 0x10ffff; r++ {
		n := 0
		for _, match := range []bool{
			IsLetter(r), IsMark(r), IsNumber(r), IsPunctuation(r),
			IsSymbol(r), IsSeparator(r), IsOther(r),
		} {
			if match {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("%#x matches %d coarse classes", r, n)
		}
	}
}

// TestCategoryLeafConsistency checks that each coarse predicate is the union
// of its leaf predicates.
func TestCategoryLeafConsistency(t *testing.T) {
	for r := rune(0); r <= 0x10ffff; r++ {
		letter := IsUppercaseLetter(r) || IsLowercaseLetter(r) || IsTitlecaseLetter(r) ||
			IsModifierLetter(r) || IsOtherLetter(r)
		if letter != IsLetter(r) {
			t.Fatalf("%#x: letter leaves disagree with IsLetter", r)
		}
		cased := IsUppercaseLetter(r) || IsLowercaseLetter(r) || IsTitlecaseLetter(r)
		if cased != IsCasedLetter(r) {
			t.Fatalf("%#x: cased leaves disagree with IsCasedLetter", r)
		}
		other := IsControl(r) || IsFormat(r) || IsPrivateUse(r) || IsUnassigned(r) ||
			category(r) == catCs
		if other != IsOther(r) {
			t.Fatalf("%#x: class C leaves disagree with IsOther", r)
		}
	}
}
