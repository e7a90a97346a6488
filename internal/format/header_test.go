package format

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/embedfs/internal/embedtype"
)

func TestAppendDirHeader(t *testing.T) {
	t.Parallel()

	buf, headerLen := AppendDirHeader(nil, "/")
	assert.Equal(t, uint32(16), headerLen)
	assert.Equal(t, []byte{
		0x10, 0, 0, 0, // headerLen
		0, 0, 0, 0, // reserved
		0x10, 0, 0, 0, // totalLen (placeholder)
		'\\', 0, 0, 0,
	}, buf)

	SetDirTotalLen(buf, 0, 40)
	assert.Equal(t, uint32(40), binary.LittleEndian.Uint32(buf[8:]))
}

func TestAppendFileEntry(t *testing.T) {
	t.Parallel()

	buf, totalLen, err := AppendFileEntry(nil, "a.txt", []byte("hi\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(24), totalLen)
	assert.Equal(t, []byte{
		0x18, 0, 0, 0, // totalLen
		0x14, 0, 0, 0, // headerLen
		0x03, 0, 0, 0, // fileLen
		'a', '.', 't', 'x', 't', 0, 0, 0,
		'h', 'i', '\n', 0,
	}, buf)
}

func TestAppendFileEntryAlignedPayload(t *testing.T) {
	t.Parallel()

	buf, totalLen, err := AppendFileEntry(nil, "abc", []byte("1234"))
	require.NoError(t, err)
	assert.Equal(t, uint32(20), totalLen)
	assert.Len(t, buf, 20)
}

func TestHeaderLenMatchesName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "a", "ab", "abc", "abcd", "index.html", "/www/img/icons"} {
		want := uint32(HeaderSize + Pad4(len(name)+1)) //nolint:gosec // test names are short

		dir, _ := AppendDirHeader(nil, name)
		dh, err := ParseDirHeader(dir, 0)
		require.NoError(t, err)
		assert.Equal(t, want, dh.HeaderLen, "dir %q", name)

		file, _, err := AppendFileEntry(nil, name, []byte("x"))
		require.NoError(t, err)
		fh, err := ParseFileHeader(file, 0)
		require.NoError(t, err)
		assert.Equal(t, want, fh.HeaderLen, "file %q", name)
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	buf := AppendPreamble(nil)
	dirOff := len(buf)
	buf, headerLen := AppendDirHeader(buf, "/www/img")
	fileOff := len(buf)
	buf, fileTotal, err := AppendFileEntry(buf, "logo.png", []byte{0x89, 'P', 'N', 'G', 0})
	require.NoError(t, err)
	SetDirTotalLen(buf, dirOff, headerLen+fileTotal)
	buf = AppendSentinel(buf)

	dh, err := ParseDirHeader(buf, dirOff)
	require.NoError(t, err)
	assert.Equal(t, DirHeader{HeaderLen: 24, Reserved: 0, TotalLen: 24 + 32, Name: "/www/img"}, dh)

	fh, err := ParseFileHeader(buf, fileOff)
	require.NoError(t, err)
	assert.Equal(t, FileHeader{TotalLen: 32, HeaderLen: 24, FileLen: 5, Name: "logo.png"}, fh)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', 0}, fh.Payload(buf, fileOff))

	assert.True(t, IsSentinel(buf, dirOff+int(dh.TotalLen)))
}

func TestPayloadIsCapped(t *testing.T) {
	t.Parallel()

	buf, _, err := AppendFileEntry(nil, "a", []byte("xy"))
	require.NoError(t, err)
	buf = append(buf, 0xAA, 0xBB)

	fh, err := ParseFileHeader(buf, 0)
	require.NoError(t, err)
	p := fh.Payload(buf, 0)
	assert.Equal(t, len(p), cap(p))
}

func words(ws ...uint32) []byte {
	var buf []byte
	for _, w := range ws {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return buf
}

func TestParseDirHeaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		buf   []byte
		want  error
		field string
	}{
		{"short header", words(16, 0), embedtype.ErrTruncated, "dirHeader"},
		{"headerLen below fixed size", words(8, 0, 16, 0), embedtype.ErrBadHeader, "headerLen"},
		{"headerLen past end", words(64, 0, 64, 0), embedtype.ErrTruncated, "headerLen"},
		{"totalLen below headerLen", words(16, 0, 12, 0x5c), embedtype.ErrBadHeader, "totalLen"},
		{"totalLen past end", words(16, 0, 40, 0x5c), embedtype.ErrTruncated, "totalLen"},
		{"unterminated name", words(16, 0, 16, 0x41414141), embedtype.ErrUnterminatedName, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirHeader(tt.buf, 0)
			require.ErrorIs(t, err, tt.want)

			var fe *embedtype.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestParseFileHeaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		buf   []byte
		want  error
		field string
	}{
		{"short header", words(20), embedtype.ErrTruncated, "fileHeader"},
		{"headerLen below fixed size", words(20, 4, 0, 0x61), embedtype.ErrBadHeader, "headerLen"},
		{"headerLen past end", words(100, 100, 0, 0x61), embedtype.ErrTruncated, "headerLen"},
		{"payload exceeds totalLen", words(16, 16, 8, 0x61), embedtype.ErrBadHeader, "totalLen"},
		{"totalLen past end", words(24, 16, 8, 0x61), embedtype.ErrTruncated, "totalLen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFileHeader(tt.buf, 0)
			require.ErrorIs(t, err, tt.want)

			var fe *embedtype.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}
