package packets

// DisconnectPacket contains the values of an MQTT DISCONNECT packet.
type DisconnectPacket struct {
	FixedHeader
}

// Encode writes the two byte DISCONNECT packet into buf.
func (pk *DisconnectPacket) Encode(buf []byte) (int, error) {
	pk.FixedHeader = NewFixedHeader(Disconnect)
	if len(buf) < 2 {
		return 0, ErrInsufficientBuffer
	}

	return pk.FixedHeader.Encode(buf)
}
