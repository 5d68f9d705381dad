// Command ucdgen rebuilds the generated property tables and conformance
// fixtures of the runeprop package from the Unicode Character Database.
//
// It downloads the pinned UCD files into a cache directory, packs them into
// the two-level page tables, and rewrites categorytables.go,
// graphemetables.go, and breakcases_test.go in the output directory.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scalecode-solutions/runeprop/internal/ucd"
)

var (
	cacheDir    string
	outDir      string
	dataVersion string // UnicodeData.txt pin
	segVersion  string // grapheme break data pin
)

var fs = afero.NewOsFs()
var log *zap.SugaredLogger

func init() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log = logger.Sugar()

	for _, c := range []*cobra.Command{&categories, &graphemes, &breaktest, &all} {
		c.Flags().StringVar(&cacheDir, "cache", ".ucd-cache", "directory for downloaded UCD files")
		c.Flags().StringVar(&outDir, "out", ".", "directory the generated files are written to")
		c.Flags().StringVar(&dataVersion, "unicode-data-version", "14.0.0", "UCD version for UnicodeData.txt")
		c.Flags().StringVar(&segVersion, "segmentation-version", "16.0.0", "UCD version for the grapheme break files")
	}
}

func checkError(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func ucdURL(version, file string) string {
	return "https://www.unicode.org/Public/" + version + "/" + file
}

func buildCategories() {
	url := ucdURL(dataVersion, "ucd/UnicodeData.txt")
	log.Infof("building category table from %s", url)
	data, err := ucd.Fetch(fs, cacheDir, url)
	checkError(err)

	raw := ucd.NewRaw(0x60) // default Cn
	checkError(ucd.ParseUnicodeData(bytes.NewReader(data), raw))
	table := ucd.Pack(raw, 0x60, true)
	log.Infof("category table: %d distinct pages", len(table.Pages))

	comment := fmt.Sprintf(`// categoryTable maps each Unicode scalar value to its General_Category code.
// Taken from %s
// ("<..., First>"/"<..., Last>" range records expanded). See
// https://www.unicode.org/license.html for the Unicode license agreement.
`, url)
	src, err := ucd.TableSource("categoryTable", comment, table)
	checkError(err)
	checkError(ucd.WriteSource(fs, filepath.Join(outDir, "categorytables.go"), src))
}

func buildGraphemes() {
	propURL := ucdURL(segVersion, "ucd/auxiliary/GraphemeBreakProperty.txt")
	emojiURL := ucdURL(segVersion, "ucd/emoji/emoji-data.txt")
	log.Infof("building grapheme table from %s", propURL)

	raw := ucd.NewRaw(0) // default Other
	props, err := ucd.Fetch(fs, cacheDir, propURL)
	checkError(err)
	checkError(ucd.ParseRanges(bytes.NewReader(props), func(lo, hi rune, value string) error {
		ucd.Fill(raw, lo, hi, ucd.GraphemeCode(value))
		return nil
	}))

	// Extended_Pictographic is overlaid last and takes precedence.
	emoji, err := ucd.Fetch(fs, cacheDir, emojiURL)
	checkError(err)
	checkError(ucd.ParseRanges(bytes.NewReader(emoji), func(lo, hi rune, value string) error {
		if value == "Extended_Pictographic" {
			ucd.Fill(raw, lo, hi, 0x06)
		}
		return nil
	}))

	table := ucd.Pack(raw, 0, false)
	log.Infof("grapheme table: %d distinct pages", len(table.Pages))

	comment := fmt.Sprintf(`// graphemeTable maps each Unicode scalar value to its Grapheme_Cluster_Break
// code. Taken from
// %s
// overlaid with the Extended_Pictographic ranges from
// %s. See
// https://www.unicode.org/license.html for the Unicode license agreement.
`, propURL, emojiURL)
	src, err := ucd.TableSource("graphemeTable", comment, table)
	checkError(err)
	checkError(ucd.WriteSource(fs, filepath.Join(outDir, "graphemetables.go"), src))
}

func buildBreakTest() {
	testURL := ucdURL(segVersion, "ucd/auxiliary/GraphemeBreakTest.txt")
	derivedURL := ucdURL(segVersion, "ucd/DerivedCoreProperties.txt")
	log.Infof("building conformance fixtures from %s", testURL)

	// The linker set decides which cases exercise GB9c and must be skipped.
	derived, err := ucd.Fetch(fs, cacheDir, derivedURL)
	checkError(err)
	linkers := map[rune]bool{}
	checkError(ucd.ParseRanges(bytes.NewReader(derived), func(lo, hi rune, value string) error {
		if value == "InCB; Linker" {
			for r := lo; r <= hi; r++ {
				linkers[r] = true
			}
		}
		return nil
	}))
	log.Infof("%d InCB linker code points", len(linkers))

	data, err := ucd.Fetch(fs, cacheDir, testURL)
	checkError(err)
	cases, skipped, err := ucd.ParseBreakTest(bytes.NewReader(data), func(r rune) bool {
		return linkers[r]
	})
	checkError(err)
	log.Infof("%d conformance cases, %d skipped", len(cases), skipped)

	src, err := ucd.FixtureSource(cases, skipped, testURL)
	checkError(err)
	checkError(ucd.WriteSource(fs, filepath.Join(outDir, "breakcases_test.go"), src))
}

var categories = cobra.Command{
	Use:   "categories",
	Short: "regenerate the General_Category table (categorytables.go)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		buildCategories()
	},
}

var graphemes = cobra.Command{
	Use:   "graphemes",
	Short: "regenerate the Grapheme_Cluster_Break table (graphemetables.go)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		buildGraphemes()
	},
}

var breaktest = cobra.Command{
	Use:   "breaktest",
	Short: "regenerate the conformance fixtures (breakcases_test.go)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		buildBreakTest()
	},
}

var all = cobra.Command{
	Use:   "all",
	Short: "regenerate every table and fixture file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		buildCategories()
		buildGraphemes()
		buildBreakTest()
	},
}

func main() {
	defer log.Sync()

	rootCmd := &cobra.Command{Use: "ucdgen"}
	rootCmd.AddCommand(&categories)
	rootCmd.AddCommand(&graphemes)
	rootCmd.AddCommand(&breaktest)
	rootCmd.AddCommand(&all)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
