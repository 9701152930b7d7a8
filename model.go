package rangecoder

import "fmt"

// Model is an immutable, per-byte frequency table: for every possible byte
// value it holds the probability of that byte occurring (Freq, out of
// MaxTotalFreq) and the cumulative probability of all strictly smaller byte
// values (Lower). It is built once, offline or at firmware-build time, and
// shared read-only by every Encode/Decode call that uses it.
//
// The table is stored with one extra row past index 255: the sentinel
// row's Lower equals the table's total frequency mass (returned by Total)
// and its Freq is always zero. The decoder's fixed 8-step descent (see
// decodeCore) never reads it, since its steps sum to 255.
type Model struct {
	freq  [257]uint16
	lower [257]uint16
}

// Freq returns the frequency assigned to byte b.
func (m *Model) Freq(b byte) uint16 {
	return m.freq[b]
}

// Lower returns the cumulative frequency of all bytes strictly smaller than b.
func (m *Model) Lower(b byte) uint16 {
	return m.lower[b]
}

// Total returns the sum of all 256 frequencies, at most MaxTotalFreq.
func (m *Model) Total() uint16 {
	return m.lower[256]
}

// NewModel builds a Model from caller-supplied per-byte frequencies. It
// derives the cumulative Lower table and the sentinel row, and validates
// the invariants Encode/Decode rely on:
//
//   - every freq[i] is in [0, MaxTotalFreq]
//   - the sum of all frequencies does not exceed MaxTotalFreq
//
// A byte with freq == 0 is simply unrepresentable; inputs containing it
// trigger the escape-to-literal fallback rather than an error here.
func NewModel(freq [256]uint16) (*Model, error) {
	m := &Model{}

	var total uint32
	for i, f := range freq {
		if f > MaxTotalFreq {
			return nil, fmt.Errorf("%w: freq[%d]=%d exceeds MaxTotalFreq", ErrInvalidModel, i, f)
		}
		m.freq[i] = f
		m.lower[i] = uint16(total)
		total += uint32(f)
	}
	if total > MaxTotalFreq {
		return nil, fmt.Errorf("%w: total frequency %d exceeds MaxTotalFreq", ErrInvalidModel, total)
	}

	m.lower[256] = uint16(total)
	return m, nil
}

// BuildModel derives a valid Model from a raw histogram of observed byte
// counts, as produced by sampling real traffic offline (never on the
// embedded encode/decode path). Counts are scaled proportionally into the
// MaxTotalFreq budget; any byte with a nonzero count is guaranteed at least
// freq == 1 so it remains representable. The scaling is never exact for an
// arbitrary histogram, so the remaining rounding error is walked off one
// unit at a time against whichever byte currently holds the largest
// frequency, which always has enough headroom: at most 256 distinct bytes
// can ever need a slot, far fewer than the MaxTotalFreq budget, so the
// largest frequency is always comfortably above the rounding error.
func BuildModel(counts [256]uint64) (*Model, error) {
	var totalCount uint64
	for _, c := range counts {
		totalCount += c
	}
	if totalCount == 0 {
		return nil, fmt.Errorf("%w: histogram is all zero", ErrInvalidModel)
	}

	var freq [256]uint16
	var scaledTotal int64

	for i, c := range counts {
		if c == 0 {
			continue
		}
		// Scale proportionally, rounding down, but never to zero: a byte
		// that was observed at least once must stay representable.
		f := c * MaxTotalFreq / totalCount
		if f == 0 {
			f = 1
		}
		if f > MaxTotalFreq {
			f = MaxTotalFreq
		}
		freq[i] = uint16(f)
		scaledTotal += int64(f)
	}

	for scaledTotal != MaxTotalFreq {
		largest := 0
		for i := 1; i < 256; i++ {
			if freq[i] > freq[largest] {
				largest = i
			}
		}
		if scaledTotal < MaxTotalFreq {
			freq[largest]++
			scaledTotal++
		} else {
			freq[largest]--
			scaledTotal--
		}
	}

	return NewModel(freq)
}
