package ucd

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const header = `// Code generated by running "go generate" in github.com/scalecode-solutions/runeprop. DO NOT EDIT.

package runeprop

`

// TableSource renders a packed table as the Go source of a generated
// runeprop file. comment is placed, as-is, above the variable.
func TableSource(varName, comment string, t Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString(comment)
	fmt.Fprintf(&buf, "var %s = propertyTable{\n", varName)
	buf.WriteString("\tindex: [numPages]uint16{\n")
	for i := 0; i < NumPages; i += 8 {
		buf.WriteString("\t\t")
		for j, entry := range t.Index[i : i+8] {
			if j > 0 {
				buf.WriteString(", ")
			}
			if entry < PageFlag {
				fmt.Fprintf(&buf, "0x%02x", entry)
			} else {
				fmt.Fprintf(&buf, "pageFlag + %d", entry-PageFlag)
			}
		}
		buf.WriteString(",\n")
	}
	buf.WriteString("\t},\n")
	buf.WriteString("\tpages: [][pageSize]byte{\n")
	for pi, page := range t.Pages {
		fmt.Fprintf(&buf, "\t\t{ // page %d\n", pi)
		for i := 0; i < PageSize; i += 16 {
			buf.WriteString("\t\t\t")
			for j, b := range page[i : i+16] {
				if j > 0 {
					buf.WriteString(", ")
				}
				fmt.Fprintf(&buf, "0x%02x", b)
			}
			buf.WriteString(",\n")
		}
		buf.WriteString("\t\t},\n")
	}
	buf.WriteString("\t},\n}\n")

	src, err := format.Source(buf.Bytes())
	return src, errors.Wrapf(err, "gofmt %s", varName)
}

// A BreakCase is one conformance case from GraphemeBreakTest.txt: an input
// string and the clusters it must segment into.
type BreakCase struct {
	Input    string
	Clusters []string
}

// ParseBreakTest decodes a GraphemeBreakTest.txt stream. Each test line
// alternates break marks and code points ("÷ 0020 × 0308 ÷"); "÷" marks a
// boundary, "×" joins. Cases containing a code point for which skip returns
// true are dropped and counted instead, so callers can exclude rules the
// cluster machine does not implement.
func ParseBreakTest(r io.Reader, skip func(rune) bool) (cases []BreakCase, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, omit, err := parseBreakLine(line, skip)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "line %d", num)
		}
		if omit {
			skipped++
			continue
		}
		cases = append(cases, c)
	}
	return cases, skipped, errors.Wrap(scanner.Err(), "reading GraphemeBreakTest.txt")
}

func parseBreakLine(line string, skip func(rune) bool) (c BreakCase, omit bool, err error) {
	var input, cluster strings.Builder
	for _, token := range strings.Fields(line) {
		switch token {
		case "÷":
			if cluster.Len() > 0 {
				c.Clusters = append(c.Clusters, cluster.String())
				cluster.Reset()
			}
		case "×":
			// joined; nothing to flush
		default:
			code, err := strconv.ParseUint(token, 16, 32)
			if err != nil || code >= CodeSpace {
				return c, false, errors.Errorf("bad code point %q", token)
			}
			r := rune(code)
			if skip != nil && skip(r) {
				omit = true
			}
			input.WriteRune(r)
			cluster.WriteRune(r)
		}
	}
	if cluster.Len() > 0 {
		c.Clusters = append(c.Clusters, cluster.String())
	}
	c.Input = input.String()
	return c, omit, nil
}

// FixtureSource renders the conformance cases as the generated
// breakcases_test.go file.
func FixtureSource(cases []BreakCase, skipped int, testURL string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, `// graphemeBreakTestCases holds the conformance cases derived from
// %s.
// See https://www.unicode.org/license.html for the Unicode license agreement.
//
// Cases exercising rule GB9c (Indic conjunct breaks, marked by an InCB=Linker
// virama) are omitted: the cluster machine implements the rule subset that
// predates GB9c. %d such cases are skipped by the generator.
var graphemeBreakTestCases = []struct {
	original string
	expected []string
}{
`, testURL, skipped)
	for _, c := range cases {
		fmt.Fprintf(&buf, "\t{%s, []string{", goString(c.Input))
		for i, cl := range c.Clusters {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(goString(cl))
		}
		buf.WriteString("}},\n")
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	return src, errors.Wrap(err, "gofmt fixtures")
}

// goString renders s as a Go string literal of explicit code point escapes,
// so the generated fixtures stay readable in a diff regardless of terminal
// rendering.
func goString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r > 0xffff {
			fmt.Fprintf(&b, "\\U%08X", r)
		} else {
			fmt.Fprintf(&b, "\\u%04X", r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
