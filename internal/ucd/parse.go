// Package ucd parses Unicode Character Database text files and packs them
// into the multistage property tables compiled into runeprop. It is only
// used by the ucdgen command, never at runtime.
package ucd

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CodeSpace is the number of code points a raw property array covers.
const CodeSpace = 0x110000

// NewRaw returns a flat per-code-point property array filled with the given
// default code.
func NewRaw(def byte) []byte {
	raw := make([]byte, CodeSpace)
	if def != 0 {
		for i := range raw {
			raw[i] = def
		}
	}
	return raw
}

// CategoryCode translates a General_Category label from UnicodeData.txt into
// its table byte. Unrecognized labels map to Cn (unassigned); this is a
// build-time policy, not an error.
func CategoryCode(cat string) byte {
	switch cat {
	case "Lu":
		return 0x90
	case "Ll":
		return 0x91
	case "Lt":
		return 0x92
	case "Lm":
		return 0x83
	case "Lo":
		return 0x84
	case "Mn":
		return 0x10
	case "Mc":
		return 0x11
	case "Me":
		return 0x12
	case "Nd":
		return 0x20
	case "Nl":
		return 0x21
	case "No":
		return 0x22
	case "Pc":
		return 0x30
	case "Pd":
		return 0x31
	case "Ps":
		return 0x32
	case "Pe":
		return 0x33
	case "Pi":
		return 0x34
	case "Pf":
		return 0x35
	case "Po":
		return 0x36
	case "Sm":
		return 0x40
	case "Sc":
		return 0x41
	case "Sk":
		return 0x42
	case "So":
		return 0x43
	case "Zs":
		return 0x50
	case "Zl":
		return 0x51
	case "Zp":
		return 0x52
	case "Cc":
		return 0x61
	case "Cf":
		return 0x62
	case "Cs":
		return 0x63
	case "Co":
		return 0x64
	default:
		return 0x60
	}
}

// GraphemeCode translates a Grapheme_Cluster_Break label into its table
// nibble. CR and LF share the Control code; the machine tells them apart by
// the code point itself. Unrecognized labels map to Other.
func GraphemeCode(prop string) byte {
	switch prop {
	case "Extend":
		return 0x01
	case "SpacingMark":
		return 0x02
	case "ZWJ":
		return 0x03
	case "CR", "LF", "Control":
		return 0x04
	case "Prepend":
		return 0x05
	case "Extended_Pictographic":
		return 0x06
	case "Regional_Indicator":
		return 0x07
	case "V":
		return 0x08
	case "T":
		return 0x09
	case "L":
		return 0x0c
	case "LV":
		return 0x0d
	case "LVT":
		return 0x0e
	default:
		return 0x00
	}
}

// ParseUnicodeData fills raw with category codes from a UnicodeData.txt
// stream. Records named "<..., First>" and "<..., Last>" delimit a range
// sharing one category and are expanded.
func ParseUnicodeData(r io.Reader, raw []byte) error {
	scanner := bufio.NewScanner(r)
	rangeStart := -1
	num := 0
	for scanner.Scan() {
		num++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, ";", 4)
		if len(fields) < 3 {
			return errors.Errorf("line %d: expected at least 3 fields, got %d", num, len(fields))
		}
		code, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil {
			return errors.Wrapf(err, "line %d: code point", num)
		}
		if code >= CodeSpace {
			return errors.Errorf("line %d: code point %X out of range", num, code)
		}
		name, cat := fields[1], CategoryCode(fields[2])
		switch {
		case strings.HasSuffix(name, ", First>"):
			rangeStart = int(code)
		case strings.HasSuffix(name, ", Last>"):
			if rangeStart < 0 {
				return errors.Errorf("line %d: range end without start", num)
			}
			for i := rangeStart; i <= int(code); i++ {
				raw[i] = cat
			}
			rangeStart = -1
		default:
			raw[code] = cat
		}
	}
	return errors.Wrap(scanner.Err(), "reading UnicodeData.txt")
}

// ParseRanges reads a UCD property file of the common "range ; value #
// comment" shape and calls apply for each record. Ranges are single code
// points or XXXX..YYYY spans; comments and blank lines are skipped. Files
// with a second value field (such as DerivedCoreProperties.txt InCB lines)
// yield the fields rejoined with "; ".
func ParseRanges(r io.Reader, apply func(lo, hi rune, value string) error) error {
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
		rng, value, found := strings.Cut(line, ";")
		if !found {
			return errors.Errorf("line %d: no field separator", num)
		}
		lo, hi, err := parseRange(strings.TrimSpace(rng))
		if err != nil {
			return errors.Wrapf(err, "line %d", num)
		}
		value = strings.TrimSpace(value)
		if before, after, found := strings.Cut(value, ";"); found {
			value = strings.TrimSpace(before) + "; " + strings.TrimSpace(after)
		}
		if err := apply(lo, hi, value); err != nil {
			return errors.Wrapf(err, "line %d", num)
		}
	}
	return errors.Wrap(scanner.Err(), "reading property file")
}

// Fill sets raw[lo..hi] to code.
func Fill(raw []byte, lo, hi rune, code byte) {
	for i := lo; i <= hi; i++ {
		raw[i] = code
	}
}

func parseRange(s string) (lo, hi rune, err error) {
	first, last, found := strings.Cut(s, "..")
	l, err := strconv.ParseUint(first, 16, 32)
	if err != nil {
		return 0, 0, errors.Wrap(err, "range start")
	}
	h := l
	if found {
		if h, err = strconv.ParseUint(last, 16, 32); err != nil {
			return 0, 0, errors.Wrap(err, "range end")
		}
	}
	if h < l || h >= CodeSpace {
		return 0, 0, errors.Errorf("bad range %s", s)
	}
	return rune(l), rune(h), nil
}
