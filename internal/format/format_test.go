package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/embedfs/internal/embedtype"
)

func TestPad4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{0, 0}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 8}, {23, 24}, {24, 24},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pad4(tt.in), "Pad4(%d)", tt.in)
	}
}

func TestPad4Properties(t *testing.T) {
	t.Parallel()

	for n := 0; n < 4096; n++ {
		p := Pad4(n)
		require.Zero(t, p%4, "Pad4(%d) = %d not aligned", n, p)
		require.GreaterOrEqual(t, p, n)
		require.Less(t, p-n, 4)
		require.Equal(t, p, Pad4(p), "Pad4 not idempotent at %d", n)
	}
}

func TestPreamble(t *testing.T) {
	t.Parallel()

	buf := AppendPreamble(nil)
	assert.Equal(t, []byte{0x21, 0x43, 0x65, 0x87, 0x01, 0x00, 0x00, 0x00}, buf)
	require.NoError(t, CheckPreamble(buf))
}

func TestCheckPreambleErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		buf    []byte
		want   error
		field  string
		offset int
	}{
		{"short", []byte{0x21, 0x43, 0x65}, embedtype.ErrTruncated, "preamble", 0},
		{"zip magic", []byte{'P', 'K', 3, 4, 1, 0, 0, 0}, embedtype.ErrBadMagic, "magic", 0},
		{"big endian", []byte{0x78, 0x56, 0x34, 0x12, 1, 0, 0, 0}, embedtype.ErrBadMagic, "magic", 0},
		{"version 2", []byte{0x21, 0x43, 0x65, 0x87, 2, 0, 0, 0}, embedtype.ErrBadVersion, "version", 4},
		{"version 0", []byte{0x21, 0x43, 0x65, 0x87, 0, 0, 0, 0}, embedtype.ErrBadVersion, "version", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPreamble(tt.buf)
			require.ErrorIs(t, err, tt.want)

			var fe *embedtype.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.offset, fe.Offset)
		})
	}
}

func TestCheckPreambleReportsValues(t *testing.T) {
	t.Parallel()

	err := CheckPreamble([]byte{0x78, 0x56, 0x34, 0x12, 1, 0, 0, 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 0x87654321")
	assert.Contains(t, err.Error(), "got 0x12345678")
	assert.Contains(t, err.Error(), "big-endian")
}

func TestIsSentinel(t *testing.T) {
	t.Parallel()

	zeros := make([]byte, 12)
	nonzero := make([]byte, 12)
	nonzero[11] = 1

	tests := []struct {
		name string
		buf  []byte
		off  int
		want bool
	}{
		{"twelve zeros", zeros, 0, true},
		{"fewer than twelve bytes", make([]byte, 11), 0, true},
		{"empty", nil, 0, true},
		{"cursor at end", zeros, 12, true},
		{"short tail", zeros, 4, true},
		{"last byte set", nonzero, 0, false},
		{"first byte set", append([]byte{1}, make([]byte, 15)...), 0, false},
		{"zeros after header", append(make([]byte, 4), zeros...), 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSentinel(tt.buf, tt.off))
		})
	}
}

func TestLooksLikeDirectory(t *testing.T) {
	t.Parallel()

	dir, _ := AppendDirHeader(nil, "/")
	file, _, err := AppendFileEntry(nil, "a.txt", []byte("hi\n"))
	require.NoError(t, err)

	assert.True(t, LooksLikeDirectory(dir, 0))
	assert.False(t, LooksLikeDirectory(file, 0))
	assert.False(t, LooksLikeDirectory([]byte{1, 2, 3}, 0))
}
