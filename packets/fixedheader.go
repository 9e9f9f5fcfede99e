package packets

// FixedHeader contains the values of the fixed header portion of the MQTT packet.
type FixedHeader struct {

	// Type is the type of the packet (PUBLISH, SUBSCRIBE, etc) from bits 7 - 4 (byte 1).
	Type byte

	// Dup indicates if the packet is a duplicate.
	Dup bool

	// Qos byte indicates the quality of service expected.
	Qos byte

	// Retain indicates whether the message should be retained.
	Retain bool

	// Remaining is the number of remaining bytes in the payload.
	Remaining int
}

// size returns the encoded size of the fixed header, 2 to 5 bytes.
func (fh *FixedHeader) size() (int, error) {
	n, err := lengthSize(fh.Remaining)
	if err != nil {
		return 0, err
	}
	return 1 + n, nil
}

// Encode writes the fixed header into buf and returns the number of bytes
// written. It returns ErrOversizedLengthIndicator if Remaining cannot be
// encoded in four bytes, and ErrInsufficientBuffer if buf cannot hold the
// type byte plus the remaining length quantity; in both cases buf is left
// untouched. Packet encoders call this only after checking buf against
// the complete packet size, at which point it cannot fail.
func (fh *FixedHeader) Encode(buf []byte) (int, error) {
	need, err := fh.size()
	if err != nil {
		return 0, err
	}
	if len(buf) < need {
		return 0, ErrInsufficientBuffer
	}

	buf[0] = fh.Type<<4 | encodeBool(fh.Dup)<<3 | fh.Qos<<1 | encodeBool(fh.Retain)
	encodeLength(buf[1:], fh.Remaining)

	return need, nil
}
