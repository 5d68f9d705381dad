package runeprop

// General_Category codes as stored in the generated category table, one byte
// per scalar value. The high nibble selects the coarse class; the low nibble
// the subclass. Letters occupy the 0x80..0x9f band so a single bit test
// (code&0x80) answers "is this a letter", and the cased letters (Lu, Ll, Lt)
// share the 0x90 high nibble.
//
// For memory efficiency the table does not distinguish unassigned code points
// that sit inside a page whose assigned code points all share one category:
// those gaps report the dominant category of their page. For example, the
// unassigned code points in the Ethiopic block 0x1300..0x13ff report as Lo
// like their neighbors.
const (
	catLu = 0x90 // Uppercase_Letter
	catLl = 0x91 // Lowercase_Letter
	catLt = 0x92 // Titlecase_Letter
	catLm = 0x83 // Modifier_Letter
	catLo = 0x84 // Other_Letter
	catMn = 0x10 // Nonspacing_Mark
	catMc = 0x11 // Spacing_Mark
	catMe = 0x12 // Enclosing_Mark
	catNd = 0x20 // Decimal_Number
	catNl = 0x21 // Letter_Number
	catNo = 0x22 // Other_Number
	catPc = 0x30 // Connector_Punctuation
	catPd = 0x31 // Dash_Punctuation
	catPs = 0x32 // Open_Punctuation
	catPe = 0x33 // Close_Punctuation
	catPi = 0x34 // Initial_Punctuation
	catPf = 0x35 // Final_Punctuation
	catPo = 0x36 // Other_Punctuation
	catSm = 0x40 // Math_Symbol
	catSc = 0x41 // Currency_Symbol
	catSk = 0x42 // Modifier_Symbol
	catSo = 0x43 // Other_Symbol
	catZs = 0x50 // Space_Separator
	catZl = 0x51 // Line_Separator
	catZp = 0x52 // Paragraph_Separator
	catCc = 0x61 // Control
	catCf = 0x62 // Format
	catCs = 0x63 // Surrogate
	catCo = 0x64 // Private_Use
	catCn = 0x60 // Unassigned (default)
)

// Composite class masks. The coarse class of a code is code&0xf0; letters are
// additionally identified by code&0x80.
const (
	catL      = 0x80 // any letter
	catLC     = 0x90 // cased letter
	catM      = 0x10
	catN      = 0x20
	catP      = 0x30
	catS      = 0x40
	catZ      = 0x50
	catCother = 0x60
)

// IsLetter reports whether the code point is a letter (class L: Lu, Ll, Lt,
// Lm, or Lo).
func IsLetter(r rune) bool {
	return category(r)&catL == catL
}

// IsCasedLetter reports whether the code point is a cased letter (class LC:
// Lu, Ll, or Lt).
func IsCasedLetter(r rune) bool {
	return category(r)&0xf0 == catLC
}

// IsUppercaseLetter reports whether the code point is an uppercase letter (Lu).
func IsUppercaseLetter(r rune) bool {
	return category(r) == catLu
}

// IsLowercaseLetter reports whether the code point is a lowercase letter (Ll).
func IsLowercaseLetter(r rune) bool {
	return category(r) == catLl
}

// IsTitlecaseLetter reports whether the code point is a titlecase letter (Lt).
func IsTitlecaseLetter(r rune) bool {
	return category(r) == catLt
}

// IsModifierLetter reports whether the code point is a modifier letter (Lm).
func IsModifierLetter(r rune) bool {
	return category(r) == catLm
}

// IsOtherLetter reports whether the code point is an other letter (Lo).
func IsOtherLetter(r rune) bool {
	return category(r) == catLo
}

// IsMark reports whether the code point is a mark (class M: Mn, Mc, or Me).
func IsMark(r rune) bool {
	return category(r)&0xf0 == catM
}

// IsNonspacingMark reports whether the code point is a nonspacing mark (Mn).
func IsNonspacingMark(r rune) bool {
	return category(r) == catMn
}

// IsSpacingMark reports whether the code point is a spacing mark (Mc).
func IsSpacingMark(r rune) bool {
	return category(r) == catMc
}

// IsEnclosingMark reports whether the code point is an enclosing mark (Me).
func IsEnclosingMark(r rune) bool {
	return category(r) == catMe
}

// IsNumber reports whether the code point is a number (class N: Nd, Nl, or No).
func IsNumber(r rune) bool {
	return category(r)&0xf0 == catN
}

// IsDecimalNumber reports whether the code point is a decimal digit (Nd).
func IsDecimalNumber(r rune) bool {
	return category(r) == catNd
}

// IsLetterNumber reports whether the code point is a letterlike numeric
// character (Nl), such as a Roman numeral.
func IsLetterNumber(r rune) bool {
	return category(r) == catNl
}

// IsOtherNumber reports whether the code point is an other numeric character
// (No).
func IsOtherNumber(r rune) bool {
	return category(r) == catNo
}

// IsPunctuation reports whether the code point is punctuation (class P).
func IsPunctuation(r rune) bool {
	return category(r)&0xf0 == catP
}

// IsConnectorPunctuation reports whether the code point is connector
// punctuation (Pc), such as the low line.
func IsConnectorPunctuation(r rune) bool {
	return category(r) == catPc
}

// IsDashPunctuation reports whether the code point is dash punctuation (Pd).
func IsDashPunctuation(r rune) bool {
	return category(r) == catPd
}

// IsOpenPunctuation reports whether the code point is opening punctuation
// (Ps).
func IsOpenPunctuation(r rune) bool {
	return category(r) == catPs
}

// IsClosePunctuation reports whether the code point is closing punctuation
// (Pe).
func IsClosePunctuation(r rune) bool {
	return category(r) == catPe
}

// IsInitialPunctuation reports whether the code point is an initial quote
// (Pi), such as «.
func IsInitialPunctuation(r rune) bool {
	return category(r) == catPi
}

// IsFinalPunctuation reports whether the code point is a final quote (Pf),
// such as ».
func IsFinalPunctuation(r rune) bool {
	return category(r) == catPf
}

// IsOtherPunctuation reports whether the code point is other punctuation (Po).
func IsOtherPunctuation(r rune) bool {
	return category(r) == catPo
}

// IsSymbol reports whether the code point is a symbol (class S).
func IsSymbol(r rune) bool {
	return category(r)&0xf0 == catS
}

// IsMathSymbol reports whether the code point is a math symbol (Sm).
func IsMathSymbol(r rune) bool {
	return category(r) == catSm
}

// IsCurrencySymbol reports whether the code point is a currency symbol (Sc).
func IsCurrencySymbol(r rune) bool {
	return category(r) == catSc
}

// IsModifierSymbol reports whether the code point is a modifier symbol (Sk).
func IsModifierSymbol(r rune) bool {
	return category(r) == catSk
}

// IsOtherSymbol reports whether the code point is an other symbol (So).
func IsOtherSymbol(r rune) bool {
	return category(r) == catSo
}

// IsSeparator reports whether the code point is a separator (class Z: Zs, Zl,
// or Zp).
func IsSeparator(r rune) bool {
	return category(r)&0xf0 == catZ
}

// IsSpaceSeparator reports whether the code point is a space separator (Zs).
func IsSpaceSeparator(r rune) bool {
	return category(r) == catZs
}

// IsLineSeparator reports whether the code point is a line separator (Zl).
func IsLineSeparator(r rune) bool {
	return category(r) == catZl
}

// IsParagraphSeparator reports whether the code point is a paragraph
// separator (Zp).
func IsParagraphSeparator(r rune) bool {
	return category(r) == catZp
}

// IsOther reports whether the code point is in class C (Cc, Cf, Cs, Co, or
// Cn).
func IsOther(r rune) bool {
	return category(r)&0xf0 == catCother
}

// IsControl reports whether the code point is a control character (Cc).
func IsControl(r rune) bool {
	return category(r) == catCc
}

// IsFormat reports whether the code point is a format character (Cf), such as
// a soft hyphen.
func IsFormat(r rune) bool {
	return category(r) == catCf
}

// IsPrivateUse reports whether the code point is in a private use area (Co).
func IsPrivateUse(r rune) bool {
	return category(r) == catCo
}

// IsUnassigned reports whether the code point is unassigned (Cn), subject to
// the page-level approximation documented on the category codes above.
func IsUnassigned(r rune) bool {
	return category(r) == catCn
}
