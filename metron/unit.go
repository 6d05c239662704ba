package metron

import "fmt"

// Unit identifies what kind of measurement an amount represents.
// The set is closed and every member fits in the 5 unit bits of a
// binary tag byte.
type Unit uint8

const (
	// UnitPixel is the default unit: device-independent pixels.
	UnitPixel Unit = 0
	// UnitAuto is the layout keyword "auto". The amount carries no
	// meaning and is conventionally 1.
	UnitAuto Unit = 1
	// UnitColumn sizes relative to a column width.
	UnitColumn Unit = 2
	// UnitContent sizes to the content's natural extent.
	UnitContent Unit = 3
	// UnitPage sizes relative to the page extent.
	UnitPage Unit = 4
)

// DefaultUnit is the unit implied by a bare number in text form and by
// the single-byte inline binary form.
const DefaultUnit = UnitPixel

// unitMask covers the 5 unit bits of a tag byte.
const unitMask = 0x1F

// Valid reports whether u is a recognized unit.
func (u Unit) Valid() bool {
	return u <= UnitPage
}

// String returns the unit name for diagnostics.
func (u Unit) String() string {
	switch u {
	case UnitPixel:
		return "px"
	case UnitAuto:
		return "auto"
	case UnitColumn:
		return "column"
	case UnitContent:
		return "content"
	case UnitPage:
		return "page"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(u))
	}
}

// suffix returns the canonical text suffix written by FormatValue.
// The default pixel unit has no suffix.
func (u Unit) suffix() string {
	if u == UnitPixel {
		return ""
	}
	return u.String()
}

// autoKeyword matches the whole input, case-insensitively, before the
// suffix tables are consulted.
const autoKeyword = "auto"

// suffixTable is scanned in order during parsing and the first entry
// whose suffix matches the tail of the input wins. Scan order is part
// of the format contract: more specific spellings precede shorter ones.
var suffixTable = []struct {
	suffix string
	unit   Unit
}{
	{"px", UnitPixel},
	{"columns", UnitColumn},
	{"column", UnitColumn},
	{"content", UnitContent},
	{"page", UnitPage},
}

// pixelsPerInch is the device-independent pixel density.
const pixelsPerInch = 96.0

// densityTable maps convenience suffixes to a pixel scale factor. A
// density suffix rescales the numeric portion; it never changes the
// stored unit tag, and it is only consulted when no suffixTable entry
// matched.
var densityTable = []struct {
	suffix string
	factor float64
}{
	{"in", pixelsPerInch},
	{"cm", pixelsPerInch / 2.54},
	{"pt", pixelsPerInch / 72.0},
}
