package packets

// AckPacket contains the values of the PUBACK, PUBREC, PUBREL and PUBCOMP
// acknowledgement packets, selected by the fixed header type. All four
// share the same shape on the wire: a fixed header followed by a two byte
// packet identifier.
type AckPacket struct {
	FixedHeader

	PacketID uint16
}

// Encode validates the packet and writes it into buf. The fixed header
// type must be one of Puback, Pubrec, Pubrel or Pubcomp, otherwise
// ErrInvalidControlType is returned.
func (pk *AckPacket) Encode(buf []byte) (int, error) {
	if pk.Type < Puback || pk.Type > Pubcomp {
		return 0, ErrInvalidControlType
	}

	// [MQTT-3.6.1-1] PUBREL carries the reserved flags nibble 0b0010;
	// the other three carry 0.
	fh := NewFixedHeader(pk.Type)
	fh.Remaining = 2
	pk.FixedHeader = fh

	if len(buf) < 4 {
		return 0, ErrInsufficientBuffer
	}

	n, err := pk.FixedHeader.Encode(buf)
	if err != nil {
		return 0, err
	}

	w := writer{buf: buf, n: n}
	w.writeUint16(pk.PacketID)

	return w.n, nil
}
