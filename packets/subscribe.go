package packets

// Subscription pairs a topic filter with the maximum QoS at which the
// server may send messages matching it.
type Subscription struct {
	Topic string
	Qos   byte
}

// SubscribePacket contains the values of an MQTT SUBSCRIBE packet.
type SubscribePacket struct {
	FixedHeader

	PacketID uint16
	Topics   []Subscription
}

// Encode validates the packet and writes it into buf. At least one and at
// most MaxSubscribeTopics subscriptions must be provided.
func (pk *SubscribePacket) Encode(buf []byte) (int, error) {
	if len(pk.Topics) == 0 {
		return 0, ErrEmptyTopicList
	}
	if len(pk.Topics) > MaxSubscribeTopics {
		return 0, ErrTooManyTopics
	}

	remaining := 2 // packet id
	for _, sub := range pk.Topics {
		if sub.Qos > 2 {
			return 0, ErrInvalidQoS
		}
		n, err := stringSize(sub.Topic)
		if err != nil {
			return 0, err
		}
		remaining += n + 1 // topic filter plus requested qos byte
	}

	fh := NewFixedHeader(Subscribe)
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
	for _, sub := range pk.Topics {
		w.writeString(sub.Topic)
		w.writeByte(sub.Qos) // the top six bits are reserved and zero
	}

	return w.n, nil
}
