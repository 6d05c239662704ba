package metron

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGoldenWireFormat pins the binary encoding and the canonical text
// form against fixtures. The hex column is the external wire contract:
// a mismatch here means previously written resources no longer decode.
func TestGoldenWireFormat(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "golden.txt"))
	require.NoError(t, err)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		require.Len(t, parts, 3, "fixture line %q", line)
		text := strings.TrimSpace(parts[0])
		wantHex := strings.TrimSpace(parts[1])
		canonical := strings.TrimSpace(parts[2])

		t.Run(text, func(t *testing.T) {
			v, err := ParseValue(text, Invariant)
			require.NoError(t, err)

			enc, err := EncodeBinary(v)
			require.NoError(t, err)
			assert.Equal(t, wantHex, hex.EncodeToString(enc), "encoding of %q", text)

			raw, err := hex.DecodeString(wantHex)
			require.NoError(t, err)
			dec, n, err := DecodeBinary(raw)
			require.NoError(t, err)
			assert.Equal(t, len(raw), n)
			assert.Equal(t, canonical, FormatValue(dec, Invariant))

			// The canonical form must re-encode to the same bytes.
			again, err := ParseValue(canonical, Invariant)
			require.NoError(t, err)
			reEnc, err := EncodeBinary(again)
			require.NoError(t, err)
			assert.Equal(t, wantHex, hex.EncodeToString(reEnc), "re-encoding of %q", canonical)
		})
	}
}
