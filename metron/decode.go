package metron

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrMalformedEncoding is returned when binary input is truncated or
// structurally invalid. Decode errors wrap it, so errors.Is applies.
var ErrMalformedEncoding = errors.New("metron: malformed binary encoding")

// DecodeBinary decodes one value from the front of data and returns it
// together with the number of bytes consumed.
//
// A tag byte whose unit bits fall outside the closed enumeration is
// rejected: the encoder never writes one, so it marks corrupt input.
func DecodeBinary(data []byte) (Value, int, error) {
	if len(data) == 0 {
		return Value{}, 0, fmt.Errorf("%w: empty input", ErrMalformedEncoding)
	}
	tag := data[0]
	if tag&0x80 == 0 {
		return Value{Amount: float64(tag), Unit: DefaultUnit}, 1, nil
	}

	unit := Unit(tag & unitMask)
	if !unit.Valid() {
		return Value{}, 0, fmt.Errorf("%w: unrecognized unit tag %d", ErrMalformedEncoding, uint8(unit))
	}

	var need int
	switch tag & widthMask {
	case tagByte:
		need = 1
	case tagInt16:
		need = 2
	case tagInt32:
		need = 4
	case tagDouble:
		need = 8
	}
	if len(data) < 1+need {
		return Value{}, 0, fmt.Errorf("%w: need %d payload bytes, have %d",
			ErrMalformedEncoding, need, len(data)-1)
	}
	payload := data[1 : 1+need]

	var amount float64
	switch tag & widthMask {
	case tagByte:
		amount = float64(payload[0])
	case tagInt16:
		amount = float64(int16(binary.LittleEndian.Uint16(payload)))
	case tagInt32:
		amount = float64(int32(binary.LittleEndian.Uint32(payload)))
	case tagDouble:
		amount = math.Float64frombits(binary.LittleEndian.Uint64(payload))
	}
	return Value{Amount: amount, Unit: unit}, 1 + need, nil
}

// Decoder iterates over a buffer holding consecutive encoded values.
type Decoder struct {
	buf []byte
	off int
}

// NewDecoder creates a Decoder over buf. The buffer is not copied.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Next decodes and returns the next value. It returns io.EOF once the
// buffer is exhausted; malformed bytes fail with the offset included.
func (d *Decoder) Next() (Value, error) {
	if d.off >= len(d.buf) {
		return Value{}, io.EOF
	}
	v, n, err := DecodeBinary(d.buf[d.off:])
	if err != nil {
		return Value{}, fmt.Errorf("at offset %d: %w", d.off, err)
	}
	d.off += n
	return v, nil
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.off
}
