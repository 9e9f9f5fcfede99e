package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPingreqEncode(t *testing.T) {
	require.Contains(t, expectedPackets, Pingreq)
	for i, wanted := range expectedPackets[Pingreq] {
		pk := new(PingreqPacket)

		buf := make([]byte, len(wanted.rawBytes))
		n, err := pk.Encode(buf)
		require.NoError(t, err, "Error encoding packet [i:%d] %s", i, wanted.desc)
		require.Equal(t, 2, n, "PINGREQ is always 2 bytes [i:%d] %s", i, wanted.desc)
		require.EqualValues(t, wanted.rawBytes, buf, "Mismatched byte values [i:%d] %s", i, wanted.desc)
	}
}

func BenchmarkPingreqEncode(b *testing.B) {
	pk := new(PingreqPacket)

	buf := make([]byte, 2)
	for n := 0; n < b.N; n++ {
		pk.Encode(buf)
	}
}
