package packets

// Protocol name and level bytes sent in every CONNECT variable header.
const (
	protocolName  = "MQTT"
	protocolLevel = 4
)

// ConnectPacket contains the values of an MQTT CONNECT packet. The
// connect flags byte is derived from the fields below; a will is present
// when both WillTopic and WillMessage are set, a username when Username
// is non-empty, and a password when Password is non-nil.
type ConnectPacket struct {
	FixedHeader

	ClientIdentifier string
	CleanSession     bool
	Keepalive        uint16
	WillTopic        string
	WillMessage      []byte // WillMessage is a payload, so store as byte array.
	WillQos          byte
	WillRetain       bool
	Username         string
	Password         []byte
}

// Encode validates the packet and writes it into buf.
func (pk *ConnectPacket) Encode(buf []byte) (int, error) {
	will := pk.WillTopic != "" || pk.WillMessage != nil
	if will && (pk.WillTopic == "" || pk.WillMessage == nil) {
		return 0, ErrInconsistentWill
	}
	if will && pk.WillQos > 2 {
		return 0, ErrInvalidQoS
	}
	if pk.Password != nil && pk.Username == "" {
		return 0, ErrInconsistentCredentials
	}

	// [MQTT-3.1.3-7] A zero-length client id is only allowed together
	// with a clean session.
	if pk.ClientIdentifier == "" && !pk.CleanSession {
		return 0, ErrMissingClientID
	}

	// Variable header: protocol name field, level byte, flags byte and
	// keepalive, always 10 bytes for v3.1.1.
	remaining := 10

	n, err := stringSize(pk.ClientIdentifier)
	if err != nil {
		return 0, err
	}
	remaining += n

	if will {
		if n, err = stringSize(pk.WillTopic); err != nil {
			return 0, err
		}
		remaining += n
		if n, err = bytesSize(pk.WillMessage); err != nil {
			return 0, err
		}
		remaining += n
	}

	if pk.Username != "" {
		if n, err = stringSize(pk.Username); err != nil {
			return 0, err
		}
		remaining += n
	}

	if pk.Password != nil {
		if n, err = bytesSize(pk.Password); err != nil {
			return 0, err
		}
		remaining += n
	}

	fh := NewFixedHeader(Connect)
	fh.Remaining = remaining
	pk.FixedHeader = fh

	need, err := pk.FixedHeader.size()
	if err != nil {
		return 0, err
	}
	if len(buf) < need+remaining {
		return 0, ErrInsufficientBuffer
	}

	flag := encodeBool(pk.CleanSession) << 1
	if will {
		flag |= 1<<2 | pk.WillQos<<3 | encodeBool(pk.WillRetain)<<5
	}
	if pk.Password != nil {
		flag |= 1 << 6
	}
	if pk.Username != "" {
		flag |= 1 << 7
	}

	w := writer{buf: buf}
	w.n, err = pk.FixedHeader.Encode(buf)
	if err != nil {
		return 0, err
	}

	w.writeString(protocolName)
	w.writeByte(protocolLevel)
	w.writeByte(flag)
	w.writeUint16(pk.Keepalive)
	w.writeString(pk.ClientIdentifier)

	// Absent optional fields contribute no bytes at all.
	if will {
		w.writeString(pk.WillTopic)
		w.writeBytes(pk.WillMessage)
	}
	if pk.Username != "" {
		w.writeString(pk.Username)
	}
	if pk.Password != nil {
		w.writeBytes(pk.Password)
	}

	return w.n, nil
}
