// Package metron implements a compact codec for unit-tagged length values.
//
// A measurement is an immutable (amount, unit) pair such as "120 pixels"
// or "2.5 column widths". The codec converts between three forms:
//   - in-memory: Value{Amount, Unit}
//   - text: what markup authors write ("120", "2.5column", "auto")
//   - binary: tagged variable-width bytes for compiled resources
//
// # Binary Encoding
//
// Each value encodes to 1-9 bytes. The first byte is the tag: its high
// bits select the payload width and its low 5 bits carry the unit.
//
//	0AAAAAAA            inline amount 0-127, default (pixel) unit
//	100UUUUU + 1 byte   unsigned byte amount
//	110UUUUU + 2 bytes  little-endian signed int16 amount
//	101UUUUU + 4 bytes  little-endian signed int32 amount
//	111UUUUU + 8 bytes  little-endian IEEE-754 double amount
//
// The encoder always picks the narrowest form that represents the
// amount exactly, so small pixel lengths cost a single byte.
//
// # Text Grammar
//
//	[<number>]<unit-suffix>
//
// The suffix vocabulary ("auto", "px", "column", "columns", "content",
// "page") is fixed and matched case-insensitively in every culture. A
// bare non-default suffix implies an amount of 1, so "column" means one
// column width. The density suffixes "in", "cm" and "pt" scale the
// number into pixels (96 per inch) without changing the stored unit.
//
// # Cultures
//
// Only numeric text is culture-sensitive: the decimal point and, for
// multi-edge values, the list separator. Culture lookup by BCP-47 tag
// is best-fit, so "de-AT" resolves to the German conventions.
//
// # Errors
//
// Text that does not match the grammar fails with *SyntaxError; binary
// input that is truncated or structurally invalid fails with an error
// wrapping ErrMalformedEncoding. The codec never substitutes defaults
// or recovers partially; callers decide what a failure means.
//
// All functions are pure and safe for concurrent use.
package metron
