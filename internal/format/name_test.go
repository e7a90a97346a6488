package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/embedfs/internal/embedtype"
)

func TestEncodeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"root", "/", []byte{'\\', 0, 0, 0}},
		{"three chars", "abc", []byte{'a', 'b', 'c', 0}},
		{"four chars", "abcd", []byte{'a', 'b', 'c', 'd', 0, 0, 0, 0}},
		{"nested dir", "/www/img", []byte{'\\', 'w', 'w', 'w', '\\', 'i', 'm', 'g', 0, 0, 0, 0}},
		{"empty", "", []byte{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, PaddedNameLen(tt.in))
		})
	}
}

func TestDecodeName(t *testing.T) {
	t.Parallel()

	buf := append([]byte{0xff, 0xff}, EncodeName("/www/img")...)
	got, err := DecodeName(buf, 2)
	require.NoError(t, err)
	assert.Equal(t, "/www/img", got)
}

func TestDecodeNameUnterminated(t *testing.T) {
	t.Parallel()

	_, err := DecodeName([]byte("abc"), 0)
	require.ErrorIs(t, err, embedtype.ErrUnterminatedName)

	var fe *embedtype.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "name", fe.Field)
}

func TestDecodeNamePastEnd(t *testing.T) {
	t.Parallel()

	_, err := DecodeName([]byte{0}, 2)
	require.ErrorIs(t, err, embedtype.ErrTruncated)
}

func TestAppendName(t *testing.T) {
	t.Parallel()

	buf := AppendName([]byte{1}, "/B")
	assert.Equal(t, []byte{1, '\\', 'B', 0, 0}, buf)
}
