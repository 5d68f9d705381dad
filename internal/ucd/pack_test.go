package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPackRoundTrip checks that packing loses nothing: every code point reads
// back its raw value.
func TestPackRoundTrip(t *testing.T) {
	raw := NewRaw(0x60)
	// A mix of single values, runs, and page-crossing ranges.
	Fill(raw, 0x41, 0x5a, 0x90)
	Fill(raw, 0x61, 0x7a, 0x91)
	Fill(raw, 0x3400, 0x4dbf, 0x84)
	Fill(raw, 0xfffe, 0x10001, 0x22)
	raw[0x10ffff] = 0x64

	table := Pack(raw, 0x60, false)
	for r := rune(0); r < CodeSpace; r++ {
		if table.Lookup(r) != raw[r] {
			t.Fatalf("Lookup(%#x) = %#02x, raw is %#02x", r, table.Lookup(r), raw[r])
		}
	}
}

func TestPackDeduplicatesPages(t *testing.T) {
	raw := NewRaw(0)
	// Two identical nontrivial pages must share storage.
	raw[0x0010] = 1
	raw[0x0020] = 2
	raw[0x0110] = 1
	raw[0x0120] = 2

	table := Pack(raw, 0, false)
	require.Len(t, table.Pages, 1)
	assert.Equal(t, table.Index[0], table.Index[1])
	assert.GreaterOrEqual(t, table.Index[0], uint16(PageFlag))
}

func TestPackUniformPages(t *testing.T) {
	raw := NewRaw(0x60)
	Fill(raw, 0x200, 0x2ff, 0x84) // an entire page of one code

	table := Pack(raw, 0x60, false)
	// Uniform pages collapse to a literal entry, both the filled page and the
	// all-default ones.
	assert.Equal(t, uint16(0x84), table.Index[2])
	assert.Equal(t, uint16(0x60), table.Index[3])
	assert.Empty(t, table.Pages)
}

func TestPackCollapseDefault(t *testing.T) {
	raw := NewRaw(0x60)
	// A page holding the default plus exactly one other code.
	Fill(raw, 0x300, 0x30f, 0x84)

	strict := Pack(raw, 0x60, false)
	require.Len(t, strict.Pages, 1)
	assert.Equal(t, byte(0x60), strict.Lookup(0x310))

	collapsed := Pack(raw, 0x60, true)
	assert.Empty(t, collapsed.Pages)
	assert.Equal(t, uint16(0x84), collapsed.Index[3])
	// The approximation: the default code points in the page now report the
	// dominant code.
	assert.Equal(t, byte(0x84), collapsed.Lookup(0x310))

	// Three distinct codes never collapse.
	raw[0x310] = 0x91
	three := Pack(raw, 0x60, true)
	require.Len(t, three.Pages, 1)
	assert.Equal(t, byte(0x84), three.Lookup(0x300))
	assert.Equal(t, byte(0x91), three.Lookup(0x310))
	assert.Equal(t, byte(0x60), three.Lookup(0x311))
}
