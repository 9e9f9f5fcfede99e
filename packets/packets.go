// Package packets serializes outgoing MQTT v3.1.1 control packets into
// caller-supplied buffers. Every encoder validates its inputs and computes
// the exact packet size before a single byte is committed, so a failed
// call never leaves a partial packet behind.
package packets

// All of the valid packet types and their packet identifier.
const (
	Reserved    byte = iota
	Connect          // 1
	Connack          // 2
	Publish          // 3
	Puback           // 4
	Pubrec           // 5
	Pubrel           // 6
	Pubcomp          // 7
	Subscribe        // 8
	Suback           // 9
	Unsubscribe      // 10
	Unsuback         // 11
	Pingreq          // 12
	Pingresp         // 13
	Disconnect       // 14
)

// Names is a map that provides human-readable names for the different
// MQTT packet types based on their ids.
var Names = map[byte]string{
	0:  "RESERVED",
	1:  "CONNECT",
	2:  "CONNACK",
	3:  "PUBLISH",
	4:  "PUBACK",
	5:  "PUBREC",
	6:  "PUBREL",
	7:  "PUBCOMP",
	8:  "SUBSCRIBE",
	9:  "SUBACK",
	10: "UNSUBSCRIBE",
	11: "UNSUBACK",
	12: "PINGREQ",
	13: "PINGRESP",
	14: "DISCONNECT",
}

// MaxSubscribeTopics is the maximum number of topic filters that can be
// carried by a single SUBSCRIBE or UNSUBSCRIBE packet.
const MaxSubscribeTopics = 8

// Packet is the base interface implemented by all outgoing MQTT packets.
type Packet interface {

	// Encode validates the packet and writes it into buf, returning the
	// number of bytes written. If buf is too small to hold the complete
	// packet it returns ErrInsufficientBuffer, and if the packet values
	// cannot be expressed on the wire it returns an error matching
	// ErrProtocolViolation. In both cases buf is left untouched and
	// nothing from it may be transmitted.
	Encode(buf []byte) (int, error)
}

// The client-originated packet set.
var (
	_ Packet = (*ConnectPacket)(nil)
	_ Packet = (*PublishPacket)(nil)
	_ Packet = (*AckPacket)(nil)
	_ Packet = (*SubscribePacket)(nil)
	_ Packet = (*UnsubscribePacket)(nil)
	_ Packet = (*PingreqPacket)(nil)
	_ Packet = (*DisconnectPacket)(nil)
)

// NewFixedHeader returns a fresh fixedheader for a given packet type.
func NewFixedHeader(packetType byte) FixedHeader {
	fh := FixedHeader{
		Type: packetType,
	}

	// [MQTT-2.2.2-1] PUBREL, SUBSCRIBE and UNSUBSCRIBE carry the reserved
	// flags nibble 0b0010, which maps onto the Qos bit of the header.
	if packetType == Pubrel || packetType == Subscribe || packetType == Unsubscribe {
		fh.Qos = 1
	}

	return fh
}
