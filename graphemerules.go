package runeprop

// The states of the grapheme cluster machine.
const (
	grStart = iota
	grPrecore
	grCcsBase
	grCrLf
	grHangulSyllableL
	grHangulSyllableV
	grHangulSyllableT
	grCcsExtend
	grFlag
	grEmoji
	grEmojiZWJ
	grOther
)

// A boundary decision for the character most recently fed to the machine.
type boundary int

const (
	// noBoundary: the character belongs to the current cluster; keep feeding.
	noBoundary boundary = iota
	// boundaryBefore: the cluster ends immediately before the character. The
	// character has not been consumed and starts the next cluster.
	boundaryBefore
	// boundaryAfter: the cluster ends immediately after the character, which
	// is consumed as part of it.
	boundaryAfter
)

// A clusterMachine decides extended grapheme cluster boundaries, one code
// point at a time. It implements the UAX #29 rules expressible as a plain
// automaton over the Grapheme_Cluster_Break properties: Hangul syllable
// composition, the CR LF exception, regional indicator pairing, and emoji
// ZWJ sequences. Indic conjuncts (rule GB9c) and tailorings are not handled.
//
// A machine tracks exactly one cluster. Callers create a fresh machine per
// cluster; zero value is ready to use.
//
// A run of three or more regional indicators is grouped as one two-code-point
// flag followed by further independent clusters. This pairs flags from the
// start of each run, which matches the Unicode break test data for rules
// GB12 and GB13.
type clusterMachine struct {
	state int
}

// next feeds the machine the next code point and reports where a boundary
// lies relative to it.
func (m *clusterMachine) next(r rune) boundary {
	if m.state == grStart {
		return m.first(r)
	}
	property := propertyGraphemes(r)

	// Control characters (including CR and LF) terminate any cluster. The
	// single exception is an LF directly following a CR: CRLF is one cluster
	// and is never split.
	if property == gpControl {
		if m.state == grCrLf && r == '\n' {
			m.state = grStart
			return boundaryAfter
		}
		if r == '\r' {
			m.state = grCrLf
		} else {
			m.state = grStart
		}
		return boundaryBefore
	}

	switch m.state {
	case grPrecore:
		// Prepend absorbs the following character as the cluster's base.
		m.first(r)
		return noBoundary

	case grHangulSyllableL:
		switch property {
		case gpL:
			return noBoundary
		case gpV, gpLV:
			m.state = grHangulSyllableV
			return noBoundary
		case gpLVT:
			m.state = grHangulSyllableT
			return noBoundary
		case gpExtend, gpSpacingMark, gpZWJ:
			m.state = grCcsBase
			return noBoundary
		}
		m.first(r)
		return boundaryBefore

	case grHangulSyllableV:
		switch property {
		case gpV:
			return noBoundary
		case gpT:
			m.state = grHangulSyllableT
			return noBoundary
		case gpExtend, gpSpacingMark, gpZWJ:
			m.state = grCcsBase
			return noBoundary
		}
		m.first(r)
		return boundaryBefore

	case grHangulSyllableT:
		switch property {
		case gpT:
			return noBoundary
		case gpExtend, gpSpacingMark, gpZWJ:
			m.state = grCcsBase
			return noBoundary
		}
		m.first(r)
		return boundaryBefore

	case grCcsExtend:
		if isContinuation(property) {
			return noBoundary
		}
		return boundaryBefore

	case grFlag:
		switch property {
		case gpRegionalIndicator:
			// The pair is complete; any further regional indicator starts a
			// new flag.
			m.state = grOther
			return noBoundary
		case gpExtend, gpSpacingMark, gpZWJ:
			m.state = grCcsExtend
			return noBoundary
		}
		m.first(r)
		return boundaryBefore

	case grEmoji:
		switch property {
		case gpZWJ:
			m.state = grEmojiZWJ
			return noBoundary
		case gpExtend, gpSpacingMark:
			return noBoundary
		}
		m.first(r)
		return boundaryBefore

	case grEmojiZWJ:
		if property == gpExtendedPictograph {
			m.state = grEmoji
			return noBoundary
		}
		return boundaryBefore

	case grCrLf:
		// Anything but the LF handled above breaks after a lone CR.
		return boundaryBefore
	}

	// grCcsBase, grOther: a generic cluster continues through Extend,
	// SpacingMark, and ZWJ.
	if isContinuation(property) {
		return noBoundary
	}
	m.first(r)
	return boundaryBefore
}

// first dispatches on the cluster's first code point, selecting the state the
// rest of the cluster is parsed in. It is also called on the character a
// boundaryBefore decision did not consume, so that the machine is already
// positioned for the next cluster.
func (m *clusterMachine) first(r rune) boundary {
	if r == '\r' {
		m.state = grCrLf
		return noBoundary
	}
	property := propertyGraphemes(r)
	if property == gpControl {
		m.state = grStart
		return boundaryAfter
	}
	switch property {
	case gpPrepend:
		m.state = grPrecore
	case gpExtend, gpSpacingMark:
		m.state = grCcsExtend
	case gpL:
		m.state = grHangulSyllableL
	case gpV, gpLV:
		m.state = grHangulSyllableV
	case gpT, gpLVT:
		m.state = grHangulSyllableT
	case gpExtendedPictograph:
		m.state = grEmoji
	case gpRegionalIndicator:
		m.state = grFlag
	default:
		m.state = grOther
	}
	return noBoundary
}
