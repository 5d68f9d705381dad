package ucd

// Table layout constants, mirrored by the runeprop package.
const (
	PageSize = 0x100
	NumPages = 0x1100
	PageFlag = 0x100
)

// A Table is a packed two-level property table ready for emission. Index
// entries below PageFlag are literal codes covering the whole page; entries
// at or above it refer to Pages[entry-PageFlag].
type Table struct {
	Index [NumPages]uint16
	Pages [][PageSize]byte
}

// Pack folds a flat property array into pages, storing each distinct page
// once. Pages holding a single code collapse to a literal index entry.
//
// With collapseDefault set, a page whose content is the default code plus
// exactly one other also collapses to the other code. This trades accuracy
// for space: interior unassigned gaps report their page's dominant category.
// It is used for the category table only; for break properties a wrong code
// would move cluster boundaries.
func Pack(raw []byte, def byte, collapseDefault bool) Table {
	var t Table
	seen := make(map[[PageSize]byte]uint16)
	for p := 0; p < NumPages; p++ {
		var page [PageSize]byte
		copy(page[:], raw[p*PageSize:])

		if code, ok := uniform(page, def, collapseDefault); ok {
			t.Index[p] = uint16(code)
			continue
		}
		ref, ok := seen[page]
		if !ok {
			ref = PageFlag + uint16(len(t.Pages))
			seen[page] = ref
			t.Pages = append(t.Pages, page)
		}
		t.Index[p] = ref
	}
	return t
}

// uniform reports the single code a page can collapse to, if any.
func uniform(page [PageSize]byte, def byte, collapseDefault bool) (byte, bool) {
	var distinct [2]byte
	n := 0
outer:
	for _, c := range page[:] {
		for _, d := range distinct[:n] {
			if c == d {
				continue outer
			}
		}
		if n == 2 {
			return 0, false
		}
		distinct[n] = c
		n++
	}
	if n == 1 {
		return distinct[0], true
	}
	if collapseDefault {
		if distinct[0] == def {
			return distinct[1], true
		}
		if distinct[1] == def {
			return distinct[0], true
		}
	}
	return 0, false
}

// Lookup reads the packed table the same way the runtime does. Used by tests
// to confirm packing loses nothing it should not.
func (t *Table) Lookup(r rune) byte {
	entry := t.Index[r>>8]
	if entry < PageFlag {
		return byte(entry)
	}
	return t.Pages[entry-PageFlag][r&0xff]
}
