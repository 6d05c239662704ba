package stream

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/Neumenon/metron/metron"
)

// Options configures a Writer.
type Options struct {
	// Compress enables zstd compression of the container body.
	Compress bool
}

// Writer accumulates values and emits one MLS1 container on Close.
type Writer struct {
	w      io.Writer
	opts   Options
	body   []byte
	count  uint64
	closed bool
}

// NewWriter creates a container writer targeting w. Nothing is written
// until Close.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, opts: opts}
}

// Write appends one value to the container.
func (w *Writer) Write(v metron.Value) error {
	if w.closed {
		return errors.New("stream: write after close")
	}
	body, err := metron.AppendBinary(w.body, v)
	if err != nil {
		return err
	}
	w.body = body
	w.count++
	return nil
}

// WriteAll appends values in order.
func (w *Writer) WriteAll(vals []metron.Value) error {
	for _, v := range vals {
		if err := w.Write(v); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of values written so far.
func (w *Writer) Len() int {
	return int(w.count)
}

// Close assembles and writes the container. The underlying writer is
// left open. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	body := binary.AppendUvarint(make([]byte, 0, len(w.body)+binary.MaxVarintLen64), w.count)
	body = append(body, w.body...)
	crc := checksum(body)

	var flags byte
	out := body
	if w.opts.Compress {
		flags |= flagZstd
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return err
		}
		out = enc.EncodeAll(body, make([]byte, 0, len(body)))
		enc.Close()
	}

	header := make([]byte, 0, headerSize)
	header = append(header, Magic...)
	header = append(header, flags)
	if _, err := w.w.Write(header); err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	var trailer [trailerSize]byte
	binary.LittleEndian.PutUint32(trailer[:], crc)
	_, err := w.w.Write(trailer[:])
	return err
}
