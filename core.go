package rangecoder

// encodeCore runs the carry-propagating range-coder arithmetic over src,
// writing into out (out must be exactly as long as the caller is willing
// to let the compressed form grow to). It returns the number of bytes
// written and true on success, or false if the model cannot represent a
// byte in src, or the output would overflow out.
//
// A successful return always has n < len(out): filling out exactly is
// treated the same as overflowing it, never as a successful encode. Both
// Encode and EncodeHeaderless size out to len(src), and neither can carry
// a coder result of exactly len(src) bytes: DecodeHeaderless reads
// compressedSize == originalSize as a verbatim copy, and Decode rejects a
// framed compressedSize >= originalSize as corrupt. The reference
// implementation enforces the same never-fill-the-limit rule in its own
// emit loop.
//
// Both Encode and EncodeHeaderless call this and fall back to a verbatim
// copy when it returns false; the two variants differ only in the framing
// they wrap around the result.
func encodeCore(src []byte, out []byte, table *Model) (int, bool) {
	low := uint32(0)
	rng := uint32(firstRange)
	cursor := 0

	emit := func(b byte) bool {
		if cursor == len(out) {
			return false
		}
		out[cursor] = b
		cursor++
		// Reaching the limit, not just exceeding it, forfeits the encode:
		// out is sized to len(src), and a full-length result would alias
		// the literal/escape sentinel at the framing layer above.
		if cursor == len(out) {
			return false
		}
		return true
	}

	// propagateCarry bumps the most recently emitted bytes on overflow of
	// low. It walks backwards from the last emitted byte, incrementing
	// and continuing past any byte that wraps from 0xFF to 0x00. If the
	// walk would need to reach before the first byte this call has
	// emitted, there is nowhere left to absorb the carry safely (the
	// framed header's still-unwritten compressed-size byte sits there
	// instead), so the caller escapes to literal storage rather than
	// write into that memory.
	propagateCarry := func() bool {
		i := cursor - 1
		for i >= 0 {
			out[i]++
			if out[i] != 0 {
				return true
			}
			i--
		}
		return false
	}

	for _, sym := range src {
		f := table.Freq(sym)
		if f == 0 {
			return 0, false
		}

		for rng < renormThreshold {
			if !emit(byte(low >> 24)) {
				return 0, false
			}
			low <<= 8
			rng <<= 8
		}

		r := rng >> RangeShift
		l := r * uint32(table.Lower(sym))
		rng = r * uint32(f)

		newLow := low + l
		if newLow < low {
			if !propagateCarry() {
				return 0, false
			}
		}
		low = newLow
	}

	for i := 0; i < 4 && low != 0; i++ {
		if !emit(byte(low >> 24)) {
			return 0, false
		}
		low <<= 8
	}

	return cursor, true
}

// decodeCore reverses encodeCore: it reads compressed bytes from in,
// writing exactly len(out) decoded bytes. It returns false if the internal
// range/low invariant is violated, which is the best-effort corruption
// signal this codec offers.
func decodeCore(in []byte, out []byte, table *Model) bool {
	pos := 0
	readByte := func() byte {
		if pos < len(in) {
			b := in[pos]
			pos++
			return b
		}
		return 0
	}

	var low uint32
	for i := 0; i < 4; i++ {
		low = (low << 8) | uint32(readByte())
	}
	rng := uint32(firstRange)

	for i := range out {
		rng >>= RangeShift

		var b uint32
		for _, step := range descentSteps {
			if uint32(table.Lower(byte(b+step)))*rng <= low {
				b += step
			}
		}

		out[i] = byte(b)

		low -= rng * uint32(table.Lower(byte(b)))
		rng *= uint32(table.Freq(byte(b)))

		if rng < low {
			return false
		}

		for rng < renormThreshold {
			rng <<= 8
			low = (low << 8) | uint32(readByte())
		}
	}

	return true
}

// descentSteps is the fixed 8-step binary descent used to locate a symbol
// from its cumulative frequency: it visits the same eight bit positions on
// every call regardless of the data, which is what makes the decoder's
// per-symbol cost constant.
var descentSteps = [8]uint32{128, 64, 32, 16, 8, 4, 2, 1}
