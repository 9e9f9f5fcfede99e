package packets

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The boundary values of the variable length quantity, each with the
// minimum number of bytes its encoding may occupy.
var lengthTable = []struct {
	have int
	want int
}{
	{0, 1},
	{127, 1},
	{128, 2},
	{16383, 2},
	{16384, 3},
	{2097151, 3},
	{2097152, 4},
	{268435455, 4},
}

func TestLengthSize(t *testing.T) {
	for i, wanted := range lengthTable {
		n, err := lengthSize(wanted.have)
		require.NoError(t, err, "Error sizing length [i:%d] %d", i, wanted.have)
		require.Equal(t, wanted.want, n, "Mismatched length size [i:%d] %d", i, wanted.have)
	}

	_, err := lengthSize(268435456)
	require.ErrorIs(t, err, ErrOversizedLengthIndicator)
	require.ErrorIs(t, err, ErrProtocolViolation)

	_, err = lengthSize(-1)
	require.ErrorIs(t, err, ErrOversizedLengthIndicator)
}

func TestEncodeLengthRoundTrip(t *testing.T) {
	for i, wanted := range lengthTable {
		buf := make([]byte, 4)
		n := encodeLength(buf, wanted.have)
		require.Equal(t, wanted.want, n, "Encoding should use the minimum number of bytes [i:%d] %d", i, wanted.have)

		value, bu, err := DecodeLength(bytes.NewReader(buf[:n]))
		require.NoError(t, err, "Error decoding length [i:%d] %d", i, wanted.have)
		require.Equal(t, wanted.have, value, "Mismatched round-tripped value [i:%d] %d", i, wanted.have)
		require.Equal(t, n, bu, "Mismatched bytes used [i:%d] %d", i, wanted.have)
	}
}

func TestDecodeLengthOversized(t *testing.T) {
	_, _, err := DecodeLength(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x7F}))
	require.ErrorIs(t, err, ErrOversizedLengthIndicator)
}

func TestDecodeLengthTruncated(t *testing.T) {
	_, _, err := DecodeLength(bytes.NewReader([]byte{0x80}))
	require.Error(t, err)
}

func TestStringSize(t *testing.T) {
	n, err := stringSize("abc")
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = stringSize(strings.Repeat("x", 65535))
	require.NoError(t, err)
	require.Equal(t, 65537, n)

	_, err = stringSize(strings.Repeat("x", 65536))
	require.ErrorIs(t, err, ErrStringTooLong)
}

func TestBytesSize(t *testing.T) {
	n, err := bytesSize([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = bytesSize(make([]byte, 65536))
	require.ErrorIs(t, err, ErrStringTooLong)
}

func TestWriterFields(t *testing.T) {
	buf := make([]byte, 16)
	w := writer{buf: buf}
	w.writeByte(0x10)
	w.writeUint16(0x0203)
	w.writeString("ab")
	w.writeBytes([]byte{9})
	w.write([]byte{7, 7})

	require.Equal(t, 12, w.n)
	require.Equal(t, []byte{0x10, 2, 3, 0, 2, 'a', 'b', 0, 1, 9, 7, 7}, buf[:w.n])
}

func BenchmarkEncodeLength(b *testing.B) {
	buf := make([]byte, 4)
	for n := 0; n < b.N; n++ {
		encodeLength(buf, 2097152)
	}
}
