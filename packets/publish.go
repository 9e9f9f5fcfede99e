package packets

// PublishPacket contains the values of an MQTT PUBLISH packet. Dup, Qos
// and Retain are carried on the embedded FixedHeader and form the flags
// nibble of the first packet byte.
type PublishPacket struct {
	FixedHeader

	TopicName string
	PacketID  uint16
	Payload   []byte
}

// Encode validates the packet and writes it into buf.
func (pk *PublishPacket) Encode(buf []byte) (int, error) {
	if pk.Qos > 2 {
		return 0, ErrInvalidQoS
	}

	remaining, err := stringSize(pk.TopicName)
	if err != nil {
		return 0, err
	}

	// [MQTT-2.3.1-5] A PUBLISH packet MUST NOT contain a packet
	// identifier if its QoS value is set to 0.
	if pk.Qos > 0 {
		remaining += 2
	}

	// The payload is appended raw; its length is implicit in the
	// remaining length rather than self-describing.
	remaining += len(pk.Payload)

	pk.FixedHeader.Type = Publish
	pk.FixedHeader.Remaining = remaining

	need, err := pk.FixedHeader.size()
	if err != nil {
		return 0, err
	}
	if len(buf) < need+remaining {
		return 0, ErrInsufficientBuffer
	}

	w := writer{buf: buf}
	w.n, err = pk.FixedHeader.Encode(buf)
	if err != nil {
		return 0, err
	}

	w.writeString(pk.TopicName)
	if pk.Qos > 0 {
		w.writeUint16(pk.PacketID)
	}
	w.write(pk.Payload)

	return w.n, nil
}
