package metron

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Tag byte layout. The high bits select the payload width, the low 5
// bits carry the unit. A clear top bit is the inline form: the whole
// byte is a default-unit amount 0-127.
const (
	tagByte   = 0x80 // 100UUUUU + unsigned byte
	tagInt32  = 0xA0 // 101UUUUU + LE signed int32
	tagInt16  = 0xC0 // 110UUUUU + LE signed int16
	tagDouble = 0xE0 // 111UUUUU + LE IEEE-754 double
	widthMask = 0xE0
)

// ErrUnknownUnit is returned when a value carries a unit outside the
// closed enumeration. Nothing is written in that case.
var ErrUnknownUnit = errors.New("metron: unknown unit")

// AppendBinary appends the compact binary form of v to dst and returns
// the extended slice.
//
// Width selection runs in order and stops at the first branch that
// represents the amount exactly:
//  1. integral 0..127 with the default unit: single inline byte
//  2. integral 0..255: byte form
//  3. integral int16 range: int16 form
//  4. integral int32 range: int32 form
//  5. otherwise: double form
func AppendBinary(dst []byte, v Value) ([]byte, error) {
	if !v.Unit.Valid() {
		return dst, fmt.Errorf("%w: %d", ErrUnknownUnit, uint8(v.Unit))
	}
	u := byte(v.Unit) & unitMask

	if i, ok := integralAmount(v.Amount); ok {
		switch {
		case i >= 0 && i <= 127 && v.Unit == DefaultUnit:
			return append(dst, byte(i)), nil
		case i >= 0 && i <= 255:
			return append(dst, tagByte|u, byte(i)), nil
		case i >= math.MinInt16 && i <= math.MaxInt16:
			dst = append(dst, tagInt16|u)
			return binary.LittleEndian.AppendUint16(dst, uint16(i)), nil
		default:
			dst = append(dst, tagInt32|u)
			return binary.LittleEndian.AppendUint32(dst, uint32(i)), nil
		}
	}

	dst = append(dst, tagDouble|u)
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(v.Amount)), nil
}

// EncodeBinary returns the compact binary form of v (1 to 9 bytes).
func EncodeBinary(v Value) ([]byte, error) {
	return AppendBinary(make([]byte, 0, 9), v)
}

// integralAmount reports whether f is exactly representable as a
// 32-bit integer. NaN, infinities, fractional amounts and out-of-range
// values all take the double path.
func integralAmount(f float64) (int32, bool) {
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int32(f), true
}
