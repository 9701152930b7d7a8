// Package rangecoder implements a carry-propagating range coder tuned for
// very small payloads (at most 255 bytes) on low-clock embedded processors.
//
// The coder narrows a 32-bit interval per input byte according to a
// caller-supplied, per-byte probability model and never performs a true
// division: the fixed denominator MaxTotalFreq is a power of two, so every
// division the algorithm needs degrades to a right shift. Callers bake a
// frequency table into firmware (or derive one offline with BuildModel) and
// invoke Encode/Decode per packet.
//
// # Basic usage
//
//	compressed := make([]byte, len(payload)+2)
//	n, err := rangecoder.Encode(payload, compressed, model)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	original := make([]byte, 255)
//	size, err := rangecoder.Decode(compressed[:n], original, model)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Escape fallback
//
// If the model cannot represent a byte in the input, or the compressed
// output would not come out shorter than the input, Encode falls back to
// storing the payload verbatim. The framed variant signals this
// with the sentinel value EscapeSentinel in the header's compressed-size
// field; the headerless variant signals it by returning a size equal to the
// original size.
//
// # Thread safety
//
// Encode, Decode, and their headerless counterparts are pure functions of
// their arguments and a read-only Model. Multiple calls may run
// concurrently against the same Model as long as each call owns disjoint
// source and destination buffers.
package rangecoder

import "errors"

// Version identifies the wire format this package reads and writes.
const (
	Version = "1.0.0"

	// MaxTotalFreq is the fixed denominator of every symbol probability.
	// It is a power of two so that the per-symbol range division degrades
	// to a shift by RangeShift bits.
	MaxTotalFreq = 1 << RangeShift

	// RangeShift is the number of bits the working range is divided down
	// by before being scaled by a symbol's frequency.
	RangeShift = 11

	// EscapeSentinel is the value stored in the framed header's
	// compressed-size field when the encoder gave up on arithmetic coding
	// and stored the payload verbatim instead.
	EscapeSentinel = 0xFF

	// HeaderSize is the size in bytes of the framed header.
	HeaderSize = 2

	// MaxPayloadSize is the largest input the framed variant accepts.
	MaxPayloadSize = 255

	firstRange      = 0xFFFFFFFF
	renormThreshold = 1 << 24
)

// Predefined errors for common failure conditions. These can be checked
// with errors.Is for programmatic handling.
var (
	// ErrInputTooLarge indicates the payload exceeds MaxPayloadSize bytes,
	// which only the framed variant enforces.
	ErrInputTooLarge = errors.New("rangecoder: input exceeds 255 bytes")

	// ErrBufferTooSmall indicates the caller's destination buffer is
	// smaller than the documented minimum capacity.
	ErrBufferTooSmall = errors.New("rangecoder: destination buffer too small")

	// ErrCorruptFrame indicates the compressed input is internally
	// inconsistent: a declared size relationship is violated, or the
	// decoder's range/low invariant broke mid-decode.
	ErrCorruptFrame = errors.New("rangecoder: corrupt or inconsistent frame")

	// ErrInvalidModel indicates NewModel or BuildModel was given
	// frequencies that cannot satisfy the model's invariants.
	ErrInvalidModel = errors.New("rangecoder: invalid frequency model")
)
