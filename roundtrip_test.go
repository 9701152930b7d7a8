package rangecoder

import (
	"bytes"
	"math/rand"
	"testing"
)

// randomModel builds a model from a random histogram so round-trip tests
// exercise a variety of probability shapes, not just the hand-picked ones
// in encode_test.go.
func randomModel(r *rand.Rand) *Model {
	var counts [256]uint64
	for i := range counts {
		// Skew the distribution: most bytes get a small count, a few get
		// a large one, mirroring real traffic.
		if r.Intn(4) == 0 {
			counts[i] = uint64(r.Intn(500) + 1)
		} else {
			counts[i] = uint64(r.Intn(5))
		}
	}
	m, err := BuildModel(counts)
	if err != nil {
		// All-zero histograms are vanishingly unlikely with the above
		// shape, but stay correct if it happens.
		counts[0] = 1
		m, err = BuildModel(counts)
		if err != nil {
			panic(err)
		}
	}
	return m
}

func representable(m *Model, src []byte) bool {
	for _, b := range src {
		if m.Freq(b) == 0 {
			return false
		}
	}
	return true
}

func TestRoundTripRandomModelsAndPayloads(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		model := randomModel(r)

		n := r.Intn(256)
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(r.Intn(256))
		}

		dst := make([]byte, n+HeaderSize)
		written, err := Encode(src, dst, model)
		if err != nil {
			t.Fatalf("trial %d: Encode failed: %v", trial, err)
		}
		if int(written) > n+HeaderSize {
			t.Fatalf("trial %d: encoded length %d exceeds bound %d", trial, written, n+HeaderSize)
		}

		out := make([]byte, n)
		size, err := Decode(dst[:written], out, model)
		if err != nil {
			t.Fatalf("trial %d: Decode failed: %v", trial, err)
		}
		if int(size) != n || !bytes.Equal(out, src) {
			t.Fatalf("trial %d: round-trip mismatch (representable=%v)", trial, representable(model, src))
		}
	}
}

func TestRoundTripHeaderlessRandomModelsAndPayloads(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for trial := 0; trial < 200; trial++ {
		model := randomModel(r)

		n := r.Intn(512)
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(r.Intn(256))
		}

		dst := make([]byte, n)
		written, err := EncodeHeaderless(src, dst, model)
		if err != nil {
			t.Fatalf("trial %d: EncodeHeaderless failed: %v", trial, err)
		}
		if written > uint32(n) {
			t.Fatalf("trial %d: encoded length %d exceeds input size %d", trial, written, n)
		}

		out := make([]byte, n)
		if err := DecodeHeaderless(dst[:written], written, out, uint32(n), model); err != nil {
			t.Fatalf("trial %d: DecodeHeaderless failed: %v", trial, err)
		}
		if !bytes.Equal(out, src) {
			t.Fatalf("trial %d: headerless round-trip mismatch", trial)
		}
	}
}

func TestBoundedExpansionFramed(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	model := uniformModel()

	for trial := 0; trial < 50; trial++ {
		n := r.Intn(256)
		src := make([]byte, n)
		r.Read(src)

		dst := make([]byte, n+HeaderSize)
		written, err := Encode(src, dst, model)
		if err != nil {
			t.Fatalf("trial %d: Encode failed: %v", trial, err)
		}
		if int(written) > n+HeaderSize {
			t.Fatalf("trial %d: |encode(s)| = %d > |s|+2 = %d", trial, written, n+HeaderSize)
		}
	}
}
