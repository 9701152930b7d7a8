package rangecoder

// Encode range-codes src under table and writes a framed result to dst.
//
// src must be at most MaxPayloadSize (255) bytes; dst must have capacity
// for at least len(src)+HeaderSize bytes. Encode never writes past the
// number of bytes it returns.
//
// If table cannot represent every byte in src, or the compressed form
// would not come out shorter than src, Encode instead stores src verbatim
// and marks the
// header with EscapeSentinel. A source of zero or one byte is always
// stored this way, since arithmetic coding has no opportunity to pay for
// its own header on inputs that short.
func Encode(src []byte, dst []byte, table *Model) (uint16, error) {
	if len(src) > MaxPayloadSize {
		return 0, ErrInputTooLarge
	}
	if len(dst) < len(src)+HeaderSize {
		return 0, ErrBufferTooSmall
	}

	if len(src) <= 1 {
		return escapeFramed(src, dst), nil
	}

	n, ok := encodeCore(src, dst[HeaderSize:HeaderSize+len(src)], table)
	if !ok {
		return escapeFramed(src, dst), nil
	}

	dst[0] = uint8(len(src))
	dst[1] = uint8(n)
	return uint16(HeaderSize + n), nil
}

func escapeFramed(src []byte, dst []byte) uint16 {
	dst[0] = uint8(len(src))
	dst[1] = EscapeSentinel
	copy(dst[HeaderSize:], src)
	return uint16(HeaderSize + len(src))
}

// EncodeHeaderless range-codes src under table with no framing; the caller
// must track the returned compressed size and the original length
// out-of-band in order to decode later with DecodeHeaderless.
//
// dst must have capacity for at least len(src) bytes. EncodeHeaderless
// never writes more than len(src) bytes: if arithmetic coding cannot beat
// that bound, or the model cannot represent a byte in src, the payload is
// stored verbatim and the full length is returned.
func EncodeHeaderless(src []byte, dst []byte, table *Model) (uint32, error) {
	if len(dst) < len(src) {
		return 0, ErrBufferTooSmall
	}
	if len(src) == 0 {
		return 0, nil
	}

	n, ok := encodeCore(src, dst[:len(src)], table)
	if !ok {
		copy(dst[:len(src)], src)
		return uint32(len(src)), nil
	}
	return uint32(n), nil
}
