package packets

import (
	"encoding/binary"
	"io"
)

const (
	// maxRemainingLength is the largest value encodable as a four byte
	// variable length quantity [MQTT-2.2.3].
	maxRemainingLength = 268435455

	// maxFieldLength is the largest string or binary field expressible
	// with a two byte length prefix.
	maxFieldLength = 65535
)

// encodeBool returns a byte instead of a bool.
func encodeBool(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// lengthSize returns the number of bytes the variable length quantity for
// remaining will occupy, 1 to 4.
func lengthSize(remaining int) (int, error) {
	switch {
	case remaining < 0 || remaining > maxRemainingLength:
		return 0, ErrOversizedLengthIndicator
	case remaining < 128:
		return 1, nil
	case remaining < 16384:
		return 2, nil
	case remaining < 2097152:
		return 3, nil
	default:
		return 4, nil
	}
}

// stringSize returns the encoded size of a length-prefixed string field.
func stringSize(s string) (int, error) {
	if len(s) > maxFieldLength {
		return 0, ErrStringTooLong
	}
	return 2 + len(s), nil
}

// bytesSize returns the encoded size of a length-prefixed binary field.
func bytesSize(b []byte) (int, error) {
	if len(b) > maxFieldLength {
		return 0, ErrStringTooLong
	}
	return 2 + len(b), nil
}

// encodeLength writes length as a variable length quantity and returns
// the number of bytes used.
func encodeLength(buf []byte, length int) int {
	var n int
	for {
		digit := byte(length % 128)
		length /= 128
		if length > 0 {
			digit |= 0x80
		}
		buf[n] = digit
		n++
		if length == 0 {
			return n
		}
	}
}

// DecodeLength reads a variable length quantity from b, returning the
// value and the number of bytes consumed.
func DecodeLength(b io.ByteReader) (n, bu int, err error) {
	var multiplier uint32
	var value uint32
	bu = 1
	for {
		eb, err := b.ReadByte()
		if err != nil {
			return 0, bu, err
		}

		value |= uint32(eb&127) << multiplier
		if value > maxRemainingLength {
			return 0, bu, ErrOversizedLengthIndicator
		}

		if (eb & 128) == 0 {
			break
		}

		multiplier += 7
		bu++
	}

	return int(value), bu, nil
}

// writer appends packet fields to a caller-owned buffer. The encoders
// check capacity once, against the exact packet size, before the first
// write, so the write methods never fail and never reallocate.
type writer struct {
	buf []byte
	n   int
}

// writeByte appends a single byte.
func (w *writer) writeByte(b byte) {
	w.buf[w.n] = b
	w.n++
}

// writeUint16 appends a big-endian two byte value.
func (w *writer) writeUint16(val uint16) {
	binary.BigEndian.PutUint16(w.buf[w.n:], val)
	w.n += 2
}

// writeString appends a two byte big-endian length followed by the raw
// bytes of s.
func (w *writer) writeString(s string) {
	w.writeUint16(uint16(len(s)))
	w.n += copy(w.buf[w.n:], s)
}

// writeBytes appends a two byte big-endian length followed by val. Used
// primarily for binary payload fields such as the will message.
func (w *writer) writeBytes(val []byte) {
	w.writeUint16(uint16(len(val)))
	w.n += copy(w.buf[w.n:], val)
}

// write appends raw bytes with no length prefix.
func (w *writer) write(val []byte) {
	w.n += copy(w.buf[w.n:], val)
}
