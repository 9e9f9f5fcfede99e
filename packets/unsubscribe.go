package packets

// UnsubscribePacket contains the values of an MQTT UNSUBSCRIBE packet.
type UnsubscribePacket struct {
	FixedHeader

	PacketID uint16
	Topics   []string
}

// Encode validates the packet and writes it into buf. At least one and at
// most MaxSubscribeTopics topic filters must be provided.
func (pk *UnsubscribePacket) Encode(buf []byte) (int, error) {
	if len(pk.Topics) == 0 {
		return 0, ErrEmptyTopicList
	}
	if len(pk.Topics) > MaxSubscribeTopics {
		return 0, ErrTooManyTopics
	}

	remaining := 2 // packet id
	for _, topic := range pk.Topics {
		n, err := stringSize(topic)
		if err != nil {
			return 0, err
		}
		remaining += n
	}

	fh := NewFixedHeader(Unsubscribe)
	fh.Remaining = remaining
	pk.FixedHeader = fh

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

	w.writeUint16(pk.PacketID)
	for _, topic := range pk.Topics {
		w.writeString(topic)
	}

	return w.n, nil
}
