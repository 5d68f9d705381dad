package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCode(t *testing.T) {
	assert.Equal(t, byte(0x91), CategoryCode("Ll"))
	assert.Equal(t, byte(0x90), CategoryCode("Lu"))
	assert.Equal(t, byte(0x20), CategoryCode("Nd"))
	assert.Equal(t, byte(0x63), CategoryCode("Cs"))
	// Unknown labels fall back to unassigned.
	assert.Equal(t, byte(0x60), CategoryCode("Xx"))
	assert.Equal(t, byte(0x60), CategoryCode(""))
}

func TestGraphemeCode(t *testing.T) {
	assert.Equal(t, byte(0x01), GraphemeCode("Extend"))
	assert.Equal(t, byte(0x04), GraphemeCode("CR"))
	assert.Equal(t, byte(0x04), GraphemeCode("LF"))
	assert.Equal(t, byte(0x04), GraphemeCode("Control"))
	assert.Equal(t, byte(0x0e), GraphemeCode("LVT"))
	assert.Equal(t, byte(0x00), GraphemeCode("Other"))
	assert.Equal(t, byte(0x00), GraphemeCode("NoSuchProperty"))
}

func TestParseUnicodeData(t *testing.T) {
	input := strings.Join([]string{
		"0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;",
		"0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041",
		"3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;",
		"4DBF;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;",
	}, "\n")

	raw := NewRaw(0x60)
	require.NoError(t, ParseUnicodeData(strings.NewReader(input), raw))

	assert.Equal(t, byte(0x90), raw[0x41])
	assert.Equal(t, byte(0x91), raw[0x61])
	assert.Equal(t, byte(0x84), raw[0x3400])
	assert.Equal(t, byte(0x84), raw[0x4000])
	assert.Equal(t, byte(0x84), raw[0x4dbf])
	// Outside the range the default survives.
	assert.Equal(t, byte(0x60), raw[0x4dc0])
	assert.Equal(t, byte(0x60), raw[0x42])
}

func TestParseUnicodeDataErrors(t *testing.T) {
	raw := NewRaw(0x60)
	assert.Error(t, ParseUnicodeData(strings.NewReader("GGGG;BAD;Lu;"), raw))
	assert.Error(t, ParseUnicodeData(strings.NewReader("110000;OUT OF RANGE;Lu;"), raw))
	assert.Error(t, ParseUnicodeData(strings.NewReader("0041;ONLY TWO FIELDS"), raw))
	// A Last record without a First record.
	assert.Error(t, ParseUnicodeData(strings.NewReader("4DBF;<X, Last>;Lo;"), raw))
}

func TestParseRanges(t *testing.T) {
	input := `
# A comment line.
0600..0605    ; Prepend # Cf   [6] ARABIC NUMBER SIGN..ARABIC NUMBER MARK ABOVE
200D          ; ZWJ # Cf       ZERO WIDTH JOINER

094D          ; InCB; Linker # Mn       DEVANAGARI SIGN VIRAMA
`
	type record struct {
		lo, hi rune
		value  string
	}
	var records []record
	require.NoError(t, ParseRanges(strings.NewReader(input), func(lo, hi rune, value string) error {
		records = append(records, record{lo, hi, value})
		return nil
	}))

	require.Len(t, records, 3)
	assert.Equal(t, record{0x600, 0x605, "Prepend"}, records[0])
	assert.Equal(t, record{0x200d, 0x200d, "ZWJ"}, records[1])
	// The second field is rejoined so multi-field properties stay matchable.
	assert.Equal(t, record{0x94d, 0x94d, "InCB; Linker"}, records[2])
}

func TestParseRangesErrors(t *testing.T) {
	apply := func(lo, hi rune, value string) error { return nil }
	assert.Error(t, ParseRanges(strings.NewReader("0041 Lu"), apply))
	assert.Error(t, ParseRanges(strings.NewReader("XXXX ; Lu"), apply))
	assert.Error(t, ParseRanges(strings.NewReader("0043..0041 ; Lu"), apply))
	assert.Error(t, ParseRanges(strings.NewReader("0041..110000 ; Lu"), apply))
}

func TestFill(t *testing.T) {
	raw := NewRaw(0)
	Fill(raw, 0x10, 0x12, 7)
	assert.Equal(t, byte(0), raw[0x0f])
	assert.Equal(t, byte(7), raw[0x10])
	assert.Equal(t, byte(7), raw[0x11])
	assert.Equal(t, byte(7), raw[0x12])
	assert.Equal(t, byte(0), raw[0x13])
}
