package stream

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/metron/metron"
)

func testValues() []metron.Value {
	return []metron.Value{
		metron.Px(0),
		metron.Px(127),
		metron.Px(128),
		metron.Px(300),
		metron.Px(70000),
		metron.Auto(),
		metron.Columns(2.5),
		metron.Content(),
		metron.Pages(0.5),
		metron.Px(math.Pi),
	}
}

func TestContainer_RoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		name := "plain"
		if compress {
			name = "zstd"
		}
		t.Run(name, func(t *testing.T) {
			vals := testValues()

			var buf bytes.Buffer
			w := NewWriter(&buf, Options{Compress: compress})
			require.NoError(t, w.WriteAll(vals))
			assert.Equal(t, len(vals), w.Len())
			require.NoError(t, w.Close())

			r, err := NewReader(&buf)
			require.NoError(t, err)
			assert.Equal(t, len(vals), r.Len())

			got, err := r.ReadAll()
			require.NoError(t, err)
			assert.Equal(t, vals, got)

			_, err = r.Next()
			assert.Equal(t, io.EOF, err)
		})
	}
}

func TestContainer_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestWriter_AfterClose(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	require.NoError(t, w.Close())
	require.NoError(t, w.Close()) // idempotent

	assert.Error(t, w.Write(metron.Px(1)))
}

func TestWriter_RejectsUnknownUnit(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	err := w.Write(metron.Value{Amount: 1, Unit: metron.Unit(30)})
	assert.ErrorIs(t, err, metron.ErrUnknownUnit)
}

func packed(t *testing.T, compress bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{Compress: compress})
	require.NoError(t, w.WriteAll(testValues()))
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestReader_Malformed(t *testing.T) {
	good := packed(t, false)

	t.Run("too short", func(t *testing.T) {
		_, err := NewReader(bytes.NewReader(good[:6]))
		assert.ErrorIs(t, err, ErrBadContainer)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := bytes.Clone(good)
		bad[0] = 'X'
		_, err := NewReader(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrBadContainer)
	})

	t.Run("unknown flags", func(t *testing.T) {
		bad := bytes.Clone(good)
		bad[4] |= 0x80
		_, err := NewReader(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrBadContainer)
	})

	t.Run("corrupt body", func(t *testing.T) {
		bad := bytes.Clone(good)
		bad[7] ^= 0xFF
		_, err := NewReader(bytes.NewReader(bad))
		var crcErr *CRCMismatchError
		assert.ErrorAs(t, err, &crcErr)
	})

	t.Run("corrupt trailer", func(t *testing.T) {
		bad := bytes.Clone(good)
		bad[len(bad)-1] ^= 0xFF
		_, err := NewReader(bytes.NewReader(bad))
		var crcErr *CRCMismatchError
		assert.ErrorAs(t, err, &crcErr)
	})

	t.Run("corrupt zstd body", func(t *testing.T) {
		bad := bytes.Clone(packed(t, true))
		bad[len(bad)-6] ^= 0xFF
		_, err := NewReader(bytes.NewReader(bad))
		assert.Error(t, err)
	})
}

// container assembles a raw MLS1 container around an uncompressed body.
func container(body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.WriteByte(0)
	buf.Write(body)
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], checksum(body))
	buf.Write(trailer[:])
	return buf.Bytes()
}

// A container whose declared count exceeds the encoded values must not
// silently yield fewer values.
func TestReader_CountExceedsBody(t *testing.T) {
	body := binary.AppendUvarint(nil, 2)
	body = append(body, 0x80, 0x05) // one byte-form value, count says two

	r, err := NewReader(bytes.NewReader(container(body)))
	require.NoError(t, err)

	v, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, metron.Px(5), v)

	_, err = r.Next()
	assert.ErrorIs(t, err, ErrBadContainer)
}

// The declared count is untrusted input: a CRC-valid container whose
// count cannot fit in the body must be rejected up front rather than
// sized into an allocation.
func TestReader_ExcessiveCount(t *testing.T) {
	counts := []uint64{1 << 60, math.MaxUint64, 2}
	for _, count := range counts {
		body := binary.AppendUvarint(nil, count)
		body = append(body, 0x05) // a single inline value

		_, err := NewReader(bytes.NewReader(container(body)))
		assert.ErrorIs(t, err, ErrBadContainer, "count %d", count)
	}
}

func TestCompression_Shrinks(t *testing.T) {
	vals := make([]metron.Value, 0, 4096)
	for i := 0; i < 4096; i++ {
		vals = append(vals, metron.Px(float64(i%3)))
	}

	var plain, compressed bytes.Buffer
	w := NewWriter(&plain, Options{})
	require.NoError(t, w.WriteAll(vals))
	require.NoError(t, w.Close())

	w = NewWriter(&compressed, Options{Compress: true})
	require.NoError(t, w.WriteAll(vals))
	require.NoError(t, w.Close())

	assert.Less(t, compressed.Len(), plain.Len())

	r, err := NewReader(&compressed)
	require.NoError(t, err)
	got, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, vals, got)
}
