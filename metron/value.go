package metron

// Value is an immutable (amount, unit) measurement pair.
//
// When Unit is a keyword-only unit such as UnitAuto the amount is
// semantically meaningless and conventionally 1.
type Value struct {
	Amount float64
	Unit   Unit
}

// Px returns an absolute pixel value.
func Px(amount float64) Value {
	return Value{Amount: amount, Unit: UnitPixel}
}

// Auto returns the auto layout keyword.
func Auto() Value {
	return Value{Amount: 1, Unit: UnitAuto}
}

// Columns returns a value measured in column widths.
func Columns(amount float64) Value {
	return Value{Amount: amount, Unit: UnitColumn}
}

// Content returns the content-sized keyword.
func Content() Value {
	return Value{Amount: 1, Unit: UnitContent}
}

// Pages returns a value measured in page extents.
func Pages(amount float64) Value {
	return Value{Amount: amount, Unit: UnitPage}
}

// IsAbsolute reports whether the value is a concrete pixel length
// rather than a keyword or a proportional size.
func (v Value) IsAbsolute() bool {
	return v.Unit == UnitPixel
}

// String returns the canonical invariant-culture text form.
func (v Value) String() string {
	return FormatValue(v, Invariant)
}
