package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/Neumenon/metron/metron"
)

// Reader decodes the values of one MLS1 container.
type Reader struct {
	dec       *metron.Decoder
	remaining uint64
}

// NewReader consumes r, validates the container structure and
// checksum, and returns a Reader positioned at the first value.
func NewReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("stream: read container: %w", err)
	}
	if len(data) < headerSize+trailerSize {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrBadContainer, len(data))
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, fmt.Errorf("%w: bad magic", ErrBadContainer)
	}
	flags := data[len(Magic)]
	if flags&^flagZstd != 0 {
		return nil, fmt.Errorf("%w: unknown flags %02x", ErrBadContainer, flags)
	}

	body := data[headerSize : len(data)-trailerSize]
	wantCRC := binary.LittleEndian.Uint32(data[len(data)-trailerSize:])

	if flags&flagZstd != 0 {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		body, err = dec.DecodeAll(body, nil)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrBadContainer, err)
		}
	}

	if got := checksum(body); got != wantCRC {
		return nil, &CRCMismatchError{Expected: wantCRC, Got: got}
	}

	count, n := binary.Uvarint(body)
	if n <= 0 {
		return nil, fmt.Errorf("%w: unreadable value count", ErrBadContainer)
	}
	// Every encoded value takes at least one byte, so a count larger
	// than the remaining body is structurally invalid. The count is
	// untrusted input; checking here also bounds the ReadAll
	// preallocation.
	if count > uint64(len(body)-n) {
		return nil, fmt.Errorf("%w: count %d exceeds body size %d", ErrBadContainer, count, len(body)-n)
	}
	return &Reader{dec: metron.NewDecoder(body[n:]), remaining: count}, nil
}

// Len returns the number of values left to read.
func (r *Reader) Len() int {
	return int(r.remaining)
}

// Next returns the next value. It returns io.EOF once every value has
// been read.
func (r *Reader) Next() (metron.Value, error) {
	if r.remaining == 0 {
		return metron.Value{}, io.EOF
	}
	v, err := r.dec.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return metron.Value{}, fmt.Errorf("%w: count exceeds body", ErrBadContainer)
		}
		return metron.Value{}, err
	}
	r.remaining--
	return v, nil
}

// ReadAll returns all remaining values.
func (r *Reader) ReadAll() ([]metron.Value, error) {
	vals := make([]metron.Value, 0, r.remaining)
	for {
		v, err := r.Next()
		if err == io.EOF {
			return vals, nil
		}
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
}
