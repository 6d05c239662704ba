// Package stream implements MLS1, a container format for batches of
// encoded length values.
//
// An MLS1 container holds any number of binary-encoded values behind a
// small header, with integrity and optional compression:
//
//	magic   4 bytes  "MLS1"
//	flags   1 byte   bit 0: body is zstd-compressed
//	body    uvarint value count, then the concatenated encoded values
//	crc     4 bytes LE, CRC-32 (IEEE) of the uncompressed body
//
// The header and trailer are not part of the value encoding; the body
// bytes between them are exactly what metron.AppendBinary produced.
package stream

import (
	"errors"
	"fmt"
	"hash/crc32"
)

// Magic identifies an MLS1 container.
const Magic = "MLS1"

// flagZstd marks a zstd-compressed body. Remaining flag bits are
// reserved and must be zero.
const flagZstd byte = 1 << 0

const (
	headerSize  = 5
	trailerSize = 4
)

// ErrBadContainer is returned when container input is truncated or
// structurally invalid. Reader errors wrap it, so errors.Is applies.
var ErrBadContainer = errors.New("stream: malformed container")

// CRCMismatchError is returned when the body checksum does not match
// the trailer.
type CRCMismatchError struct {
	Expected uint32
	Got      uint32
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("stream: crc mismatch: expected %08x, got %08x", e.Expected, e.Got)
}

var crcTable = crc32.MakeTable(crc32.IEEE)

// checksum computes CRC-32 (IEEE) of the uncompressed body.
func checksum(body []byte) uint32 {
	return crc32.Checksum(body, crcTable)
}
