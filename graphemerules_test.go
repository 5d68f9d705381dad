package runeprop

import "testing"

// feed runs a fresh machine over the runes and records each decision.
func feed(runes []rune) []boundary {
	var m clusterMachine
	decisions := make([]boundary, len(runes))
	for i, r := range runes {
		decisions[i] = m.next(r)
	}
	return decisions
}

func TestClusterMachineDecisions(t *testing.T) {
	tests := []struct {
		name     string
		input    []rune
		expected []boundary
	}{
		{
			// A CR absorbs a following LF; the pair ends the cluster.
			"crlf",
			[]rune{'\r', '\n'},
			[]boundary{noBoundary, boundaryAfter},
		},
		{
			// A lone CR breaks before whatever follows it.
			"cr then letter",
			[]rune{'\r', 'a'},
			[]boundary{noBoundary, boundaryBefore},
		},
		{
			// Control characters end the cluster they start.
			"control first",
			[]rune{'\n'},
			[]boundary{boundaryAfter},
		},
		{
			"letter then cr",
			[]rune{'a', '\r'},
			[]boundary{noBoundary, boundaryBefore},
		},
		{
			"combining mark joins",
			[]rune{'e', 0x0301, 'f'},
			[]boundary{noBoundary, noBoundary, boundaryBefore},
		},
		{
			"zwj joins pictographs",
			[]rune{0x1f469, 0x200d, 0x1f469, '!'},
			[]boundary{noBoundary, noBoundary, noBoundary, boundaryBefore},
		},
		{
			// ZWJ only carries into another pictograph.
			"zwj before letter breaks",
			[]rune{0x1f469, 0x200d, 'x'},
			[]boundary{noBoundary, noBoundary, boundaryBefore},
		},
		{
			"regional indicators pair",
			[]rune{0x1f1e6, 0x1f1e7, 0x1f1e8},
			[]boundary{noBoundary, noBoundary, boundaryBefore},
		},
		{
			"hangul l v t",
			[]rune{0x1100, 0x1161, 0x11a8, 0x1100},
			[]boundary{noBoundary, noBoundary, noBoundary, boundaryBefore},
		},
		{
			"hangul lv then t",
			[]rune{0xac00, 0x11a8, 0xac00},
			[]boundary{noBoundary, noBoundary, boundaryBefore},
		},
		{
			// T cannot restart a syllable within the same cluster chain.
			"t then l breaks",
			[]rune{0x11a8, 0x1100},
			[]boundary{noBoundary, boundaryBefore},
		},
		{
			"prepend binds forward",
			[]rune{0x0600, 0x0661, 'x'},
			[]boundary{noBoundary, noBoundary, boundaryBefore},
		},
		{
			// Prepend does not bind across a control character.
			"prepend before cr",
			[]rune{0x0600, '\r'},
			[]boundary{noBoundary, boundaryBefore},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decisions := feed(tt.input)
			for i, d := range decisions {
				if d != tt.expected[i] {
					t.Errorf("rune %d (%#x): got decision %d, want %d", i, tt.input[i], d, tt.expected[i])
				}
			}
		})
	}
}

// TestClusterMachinePositioned checks that after a boundaryBefore decision the
// machine is already parsing the new cluster, so the caller does not re-feed
// the unconsumed rune.
func TestClusterMachinePositioned(t *testing.T) {
	var m clusterMachine
	if d := m.next('a'); d != noBoundary {
		t.Fatalf("'a': got %d", d)
	}
	if d := m.next(0x1f1e6); d != boundaryBefore {
		t.Fatalf("first regional indicator: got %d", d)
	}
	// The machine must now be mid-flag: the second indicator joins.
	if d := m.next(0x1f1e7); d != noBoundary {
		t.Errorf("second regional indicator: got %d, want noBoundary", d)
	}
}

func TestIsContinuation(t *testing.T) {
	joins := []rune{0x0301, 0x200d, 0x0e33}      // Extend, ZWJ, SpacingMark
	breaks := []rune{'a', '\r', 0x0600, 0x1f1e6} // Other, Control, Prepend, RI
	for _, r := range joins {
		if !isContinuation(propertyGraphemes(r)) {
			t.Errorf("%#x: want continuation", r)
		}
	}
	for _, r := range breaks {
		if isContinuation(propertyGraphemes(r)) {
			t.Errorf("%#x: want no continuation", r)
		}
	}
}
