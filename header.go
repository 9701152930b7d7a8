package rangecoder

// Header is the two-byte frame that prefixes every value Encode produces:
// the original payload size, and either the compressed payload size or the
// sentinel EscapeSentinel marking a verbatim copy.
type Header struct {
	OriginalSize   uint8
	CompressedSize uint8
}

// ParseHeader reads the frame header from the front of buf.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrCorruptFrame
	}
	return Header{OriginalSize: buf[0], CompressedSize: buf[1]}, nil
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	return []byte{h.OriginalSize, h.CompressedSize}
}

// Escaped reports whether this header marks a verbatim, uncompressed
// payload rather than arithmetic-coded data.
func (h Header) Escaped() bool {
	return h.CompressedSize == EscapeSentinel
}

// PayloadLen returns the number of payload bytes following the header.
func (h Header) PayloadLen() int {
	if h.Escaped() {
		return int(h.OriginalSize)
	}
	return int(h.CompressedSize)
}

// GetOriginalSize reads the declared original payload size from a buffer
// produced by Encode, without decoding it.
func GetOriginalSize(compressed []byte) (uint8, error) {
	h, err := ParseHeader(compressed)
	if err != nil {
		return 0, err
	}
	return h.OriginalSize, nil
}

// GetDataSize reads the total framed length (header plus payload) of a
// buffer produced by Encode, without decoding it.
func GetDataSize(compressed []byte) (uint16, error) {
	h, err := ParseHeader(compressed)
	if err != nil {
		return 0, err
	}
	return uint16(HeaderSize + h.PayloadLen()), nil
}
