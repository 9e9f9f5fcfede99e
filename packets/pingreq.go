package packets

// PingreqPacket contains the values of an MQTT PINGREQ packet.
type PingreqPacket struct {
	FixedHeader
}

// Encode writes the two byte PINGREQ packet into buf.
func (pk *PingreqPacket) Encode(buf []byte) (int, error) {
	pk.FixedHeader = NewFixedHeader(Pingreq)
	if len(buf) < 2 {
		return 0, ErrInsufficientBuffer
	}

	return pk.FixedHeader.Encode(buf)
}
