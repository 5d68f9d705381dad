package runeprop

import "unicode/utf8"

// Grapheme_Cluster_Break property codes used by the cluster machine, as laid
// out in the generated grapheme table.
//
// The encoding is chosen so that the boundary rules reduce to integer masks:
// the continuation properties (Extend, SpacingMark, ZWJ) are the nonzero
// values with bits 0x0c clear, and the Hangul properties all have bit 0x08
// set, with 0x04 marking a leading component (L, LV, LVT).
const (
	gpOther              = 0x00
	gpExtend             = 0x01
	gpSpacingMark        = 0x02
	gpZWJ                = 0x03
	gpControl            = 0x04 // includes CR and LF
	gpPrepend            = 0x05
	gpExtendedPictograph = 0x06
	gpRegionalIndicator  = 0x07
	gpV                  = 0x08
	gpT                  = 0x09
	gpL                  = 0x0c
	gpLV                 = 0x0d
	gpLVT                = 0x0e
)

// isContinuation reports whether a property continues any cluster (Extend,
// SpacingMark, or ZWJ).
func isContinuation(property byte) bool {
	return property != 0 && property&0x0c == 0
}

// propertyGraphemes returns the Grapheme_Cluster_Break property of the given
// code point while fast tracking ASCII characters.
func propertyGraphemes(r rune) byte {
	if r >= 0x20 && r <= 0x7e {
		return gpOther
	}
	if r >= 0 && r <= 0x1f || r == 0x7f {
		return gpControl
	}
	if uint32(r) > utf8.MaxRune {
		return gpOther
	}
	return graphemeTable.lookup(r)
}

// category returns the General_Category code (see the cat constants in
// categories.go) of the given code point. Values outside the Unicode code
// space report as unassigned.
func category(r rune) byte {
	if uint32(r) > utf8.MaxRune {
		return catCn
	}
	return categoryTable.lookup(r)
}
