package runeprop

// Dimensions of the multistage lookup tables. Every table partitions the
// 0x110000 scalar values into 256-value pages addressed by the upper bits of
// the code point.
const (
	pageSize = 0x100
	numPages = 0x1100
)

// pageFlag tags index entries that refer to a page rather than holding a
// literal property code. Codes fit in a byte, so any entry >= pageFlag is a
// page reference and entry-pageFlag is the page number.
const pageFlag = 0x100

// A propertyTable maps Unicode scalar values to one-byte property codes in
// constant time. The top-level index holds one entry per 256-value page:
// either a literal code shared by the whole page, or a reference into pages.
// Identical pages are stored only once.
//
// Tables are generated offline from the Unicode Character Database and never
// mutated, so they are safe for unsynchronized concurrent lookups.
type propertyTable struct {
	index [numPages]uint16
	pages [][pageSize]byte
}

// lookup returns the property code for the given scalar value. It is total
// over the Unicode code space: every value up to 0x10FFFF maps to some code,
// with unlisted code points yielding the table's default. Callers guard
// against values outside that range.
func (t *propertyTable) lookup(r rune) byte {
	entry := t.index[uint32(r)>>8]
	if entry < pageFlag {
		return byte(entry)
	}
	return t.pages[entry-pageFlag][r&0xff]
}
