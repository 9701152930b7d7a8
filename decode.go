package rangecoder

// Decode reverses Encode: it reads a framed buffer produced by Encode,
// writes the recovered payload to out, and returns its length.
//
// out must have capacity for at least the declared original size. Decode
// returns ErrCorruptFrame if the header's size fields are inconsistent or
// the arithmetic decoder's internal invariant breaks; it is not guaranteed
// to detect every possible corruption, only a sufficient subset to catch
// internal inconsistency.
func Decode(in []byte, out []byte, table *Model) (uint8, error) {
	h, err := ParseHeader(in)
	if err != nil {
		return 0, err
	}

	if !h.Escaped() && h.CompressedSize >= h.OriginalSize {
		return 0, ErrCorruptFrame
	}
	if len(out) < int(h.OriginalSize) {
		return 0, ErrBufferTooSmall
	}

	payload := in[HeaderSize:]

	if h.Escaped() {
		if len(payload) < int(h.OriginalSize) {
			return 0, ErrCorruptFrame
		}
		copy(out[:h.OriginalSize], payload[:h.OriginalSize])
		return h.OriginalSize, nil
	}

	if len(payload) > int(h.CompressedSize) {
		payload = payload[:h.CompressedSize]
	}

	if !decodeCore(payload, out[:h.OriginalSize], table) {
		return 0, ErrCorruptFrame
	}
	return h.OriginalSize, nil
}

// DecodeHeaderless reverses EncodeHeaderless. The caller must supply the
// exact compressedSize and originalSize EncodeHeaderless reported/used.
//
// If compressedSize equals originalSize the payload is treated as a
// verbatim copy, matching EncodeHeaderless's escape convention.
// compressedSize greater than originalSize is always invalid.
func DecodeHeaderless(in []byte, compressedSize uint32, out []byte, originalSize uint32, table *Model) error {
	if compressedSize > originalSize {
		return ErrCorruptFrame
	}
	if uint32(len(out)) < originalSize {
		return ErrBufferTooSmall
	}
	if uint32(len(in)) < compressedSize {
		return ErrCorruptFrame
	}

	if compressedSize == originalSize {
		copy(out[:originalSize], in[:compressedSize])
		return nil
	}

	if !decodeCore(in[:compressedSize], out[:originalSize], table) {
		return ErrCorruptFrame
	}
	return nil
}
