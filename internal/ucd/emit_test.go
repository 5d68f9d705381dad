package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBreakTest(t *testing.T) {
	input := `
# GraphemeBreakTest
÷ 0020 × 0308 ÷ # ÷ [0.2] SPACE (Other) × [9.0] COMBINING DIAERESIS (Extend) ÷ [0.3]
÷ 0061 ÷ 0062 ÷
÷ 0061 × 094D ÷ 0062 ÷
`
	cases, skipped, err := ParseBreakTest(strings.NewReader(input), func(r rune) bool {
		return r == 0x094d
	})
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, cases, 2)

	assert.Equal(t, " ̈", cases[0].Input)
	assert.Equal(t, []string{" ̈"}, cases[0].Clusters)
	assert.Equal(t, "ab", cases[1].Input)
	assert.Equal(t, []string{"a", "b"}, cases[1].Clusters)
}

func TestParseBreakTestErrors(t *testing.T) {
	_, _, err := ParseBreakTest(strings.NewReader("÷ GGGG ÷"), nil)
	assert.Error(t, err)
	_, _, err = ParseBreakTest(strings.NewReader("÷ 110000 ÷"), nil)
	assert.Error(t, err)
}

func TestTableSource(t *testing.T) {
	var table Table
	table.Index[0] = 0x60
	table.Index[1] = PageFlag
	table.Pages = append(table.Pages, [PageSize]byte{0: 0x90, 255: 0x91})

	src, err := TableSource("testTable", "// testTable is a fixture.\n", table)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "Code generated")
	assert.Contains(t, out, "package runeprop")
	assert.Contains(t, out, "// testTable is a fixture.")
	assert.Contains(t, out, "var testTable = propertyTable{")
	assert.Contains(t, out, "pageFlag + 0")
	assert.Contains(t, out, "{ // page 0")
}

func TestFixtureSource(t *testing.T) {
	cases := []BreakCase{
		{Input: "a\U0001f1e6", Clusters: []string{"a", "\U0001f1e6"}},
	}
	src, err := FixtureSource(cases, 3, "https://example.com/GraphemeBreakTest.txt")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "var graphemeBreakTestCases")
	assert.Contains(t, out, `"\u0061\U0001F1E6"`)
	assert.Contains(t, out, "3 such cases are skipped")
}

func TestGoString(t *testing.T) {
	assert.Equal(t, `"\u0061"`, goString("a"))
	assert.Equal(t, `"\u0301\U0001F1E6"`, goString("\u0301\U0001f1e6"))
	assert.Equal(t, `""`, goString(""))
}
