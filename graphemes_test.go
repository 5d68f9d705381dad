package runeprop

import (
	"strings"
	"testing"
)

// segment collects every cluster a Graphemes iterator produces.
func segment(str string) []string {
	var clusters []string
	g := NewGraphemes(str)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

func TestGraphemesBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"combining mark", "éf", []string{"é", "f"}},
		{"crlf then combined", "\r\néf", []string{"\r\n", "é", "f"}},
		{"lone cr", "a\rb", []string{"a", "\r", "b"}},
		{"lone lf", "a\nb", []string{"a", "\n", "b"}},
		{"control splits marks", "á\x00́b", []string{"á", "\x00", "́", "b"}},
		{"hangul jamo", "각", []string{"각"}},
		{"hangul lv plus t", "각", []string{"각"}},
		{"two syllables", "가가", []string{"가", "가"}},
		{"flag pair", "\U0001f1e9\U0001f1ea\U0001f1eb\U0001f1f7", []string{"\U0001f1e9\U0001f1ea", "\U0001f1eb\U0001f1f7"}},
		{"three regional indicators", "\U0001f1e6\U0001f1e7\U0001f1e8", []string{"\U0001f1e6\U0001f1e7", "\U0001f1e8"}},
		{"zwj sequence", "\U0001f469‍\U0001f469‍\U0001f466", []string{"\U0001f469‍\U0001f469‍\U0001f466"}},
		{"emoji modifier", "\U0001f44b\U0001f3ff", []string{"\U0001f44b\U0001f3ff"}},
		{"prepend", "؀١", []string{"؀١"}},
		{"spacing mark", "กำ", []string{"กำ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clusters := segment(tt.input)
			if len(clusters) != len(tt.expected) {
				t.Fatalf("got %d clusters %q, want %d %q", len(clusters), clusters, len(tt.expected), tt.expected)
			}
			for i, c := range clusters {
				if c != tt.expected[i] {
					t.Errorf("cluster %d: got %q, want %q", i, c, tt.expected[i])
				}
			}
		})
	}
}

func TestGraphemesEmpty(t *testing.T) {
	g := NewGraphemes("")
	if g.Next() {
		t.Errorf("Next on empty string returned true")
	}
	if g.Str() != "" {
		t.Errorf("Str after exhaustion: got %q, want empty", g.Str())
	}
}

func TestGraphemesExhausted(t *testing.T) {
	g := NewGraphemes("a")
	if !g.Next() {
		t.Fatal("Next returned false on nonempty string")
	}
	if g.Next() {
		t.Error("Next returned true after exhaustion")
	}
	if g.Next() {
		t.Error("Next returned true on repeated call after exhaustion")
	}
}

// TestGraphemesUnicodeTestCases runs the iterator against the break test
// fixtures derived from the Unicode test file.
func TestGraphemesUnicodeTestCases(t *testing.T) {
	for i, testCase := range graphemeBreakTestCases {
		clusters := segment(testCase.original)
		if len(clusters) != len(testCase.expected) {
			t.Errorf("case %d %q: got %d clusters %q, want %d %q",
				i, testCase.original, len(clusters), clusters, len(testCase.expected), testCase.expected)
			continue
		}
		for j, c := range clusters {
			if c != testCase.expected[j] {
				t.Errorf("case %d %q: cluster %d: got %q, want %q",
					i, testCase.original, j, c, testCase.expected[j])
			}
		}
	}
}

// TestGraphemesRoundTrip checks that concatenating the clusters reproduces
// the input byte for byte.
func TestGraphemesRoundTrip(t *testing.T) {
	for _, testCase := range graphemeBreakTestCases {
		if got := strings.Join(segment(testCase.original), ""); got != testCase.original {
			t.Errorf("clusters of %q rejoin to %q", testCase.original, got)
		}
	}
}

func TestNextClusterBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"ascii", "ab", []string{"a", "b"}},
		{"crlf", "\r\nx", []string{"\r\n", "x"}},
		{"combining mark", "é", []string{"é"}},
		{"zwj sequence", "\U0001f469‍\U0001f466!", []string{"\U0001f469‍\U0001f466", "!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var clusters []string
			c := NewStringCursor(tt.input)
			for {
				cluster, ok := NextCluster(c)
				if !ok {
					break
				}
				clusters = append(clusters, cluster)
			}
			if len(clusters) != len(tt.expected) {
				t.Fatalf("got %d clusters %q, want %d %q", len(clusters), clusters, len(tt.expected), tt.expected)
			}
			for i, cl := range clusters {
				if cl != tt.expected[i] {
					t.Errorf("cluster %d: got %q, want %q", i, cl, tt.expected[i])
				}
			}
		})
	}
}

// TestNextClusterMatchesGraphemes checks that the cursor driver and the
// string iterator agree on every fixture.
func TestNextClusterMatchesGraphemes(t *testing.T) {
	for i, testCase := range graphemeBreakTestCases {
		want := segment(testCase.original)
		var got []string
		c := NewStringCursor(testCase.original)
		for {
			cluster, ok := NextCluster(c)
			if !ok {
				break
			}
			got = append(got, cluster)
		}
		if len(got) != len(want) {
			t.Errorf("case %d %q: cursor got %d clusters, iterator %d", i, testCase.original, len(got), len(want))
			continue
		}
		for j := range got {
			if got[j] != want[j] {
				t.Errorf("case %d %q: cluster %d: cursor %q, iterator %q", i, testCase.original, j, got[j], want[j])
			}
		}
	}
}

// TestNextClusterLeavesCursor checks that NextCluster consumes exactly the
// cluster, leaving the following code point for the caller.
func TestNextClusterLeavesCursor(t *testing.T) {
	c := NewStringCursor("éxy")
	cluster, ok := NextCluster(c)
	if !ok || cluster != "é" {
		t.Fatalf("first cluster: got %q, %v", cluster, ok)
	}
	r, ok := c.Peek()
	if !ok || r != 'x' {
		t.Fatalf("after first cluster: peeked %q, %v, want 'x'", r, ok)
	}
	// The caller consumes a code point itself before the next call.
	c.Advance()
	cluster, ok = NextCluster(c)
	if !ok || cluster != "y" {
		t.Errorf("after manual advance: got %q, %v, want \"y\"", cluster, ok)
	}
	if _, ok := NextCluster(c); ok {
		t.Error("NextCluster on exhausted cursor returned ok")
	}
}

func TestStringCursor(t *testing.T) {
	c := NewStringCursor("a界")
	r, ok := c.Peek()
	if !ok || r != 'a' {
		t.Fatalf("Peek: got %q, %v", r, ok)
	}
	// Peek does not consume.
	if r, _ := c.Peek(); r != 'a' {
		t.Fatalf("second Peek: got %q", r)
	}
	c.Advance()
	r, ok = c.Peek()
	if !ok || r != '界' {
		t.Fatalf("Peek after Advance: got %q, %v", r, ok)
	}
	c.Advance()
	if _, ok := c.Peek(); ok {
		t.Error("Peek at end returned ok")
	}
	c.Advance() // no-op at end
	if _, ok := c.Peek(); ok {
		t.Error("Peek after Advance at end returned ok")
	}
}
