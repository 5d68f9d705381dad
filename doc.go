/*
Package runeprop implements Unicode character classification and extended
grapheme cluster segmentation.

This package conforms to:
  - The Unicode General_Category property for classification
  - Unicode Standard Annex #29 (https://unicode.org/reports/tr29/) for
    grapheme cluster boundaries

# Overview

Using this package, you can:
  - Test any code point against every General_Category value and composite
    class in constant time
  - Split strings into grapheme clusters (user-perceived "characters")

Both facilities read compact multistage lookup tables generated from the
Unicode Character Database: a top-level index of 256-code-point pages, with
identical pages stored once, gives one-byte property access with two array
reads at most.

# Classification

One boolean predicate exists per category, named after the Unicode long
category names:

	runeprop.IsLetter('a')             // true
	runeprop.IsUppercaseLetter('Ü')    // true
	runeprop.IsOpenPunctuation('[')    // true
	runeprop.IsFormat('\u00AD')   // soft hyphen: true

Composite classes (Letter, Mark, Number, Punctuation, Symbol, Separator,
Other) are single mask tests, not chains of subcategory checks. There is no
surrogate predicate: surrogate code points cannot occur in UTF-8 text.

# Grapheme clusters

A grapheme cluster is what users perceive as a single character. The family
emoji 👨‍👩‍👧‍👦 appears as one character but contains 7 code points (25 bytes in
UTF-8); a flag such as 🇩🇪 is two. [Graphemes] iterates over a string's
clusters:

	g := runeprop.NewGraphemes("🇩🇪éf")
	for g.Next() {
		fmt.Println(g.Str())
	}

For externally fed text, [NextCluster] reads one cluster at a time from any
[RuneCursor], a minimal peek/advance stream.

The segmentation automaton covers the base letter/mark rules, Hangul
syllables, the CRLF exception, regional indicator flag pairs, and emoji ZWJ
sequences. Indic conjunct clusters (UAX #29 rule GB9c) and locale tailoring
are out of scope.

# Tables

The generated tables and conformance fixtures are rebuilt from unicode.org
with the ucdgen command:

	go run ./cmd/ucdgen all
*/
package runeprop

//go:generate go run ./cmd/ucdgen all
