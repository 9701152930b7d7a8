// Package baseline runs small payloads through general-purpose
// byte-stream compressors so the rcbench tool can show, side by side, how
// little a generic codec buys on packets in the size range this module
// targets. None of these codecs are part of the embedded encode/decode
// path; this package exists purely to support that comparison.
package baseline

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/snappy"
	kzlib "github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Result holds one codec's outcome for a single payload.
type Result struct {
	Name       string
	InputSize  int
	OutputSize int
}

// Ratio returns OutputSize/InputSize, or 0 if the input was empty.
func (r Result) Ratio() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.OutputSize) / float64(r.InputSize)
}

// Codecs is the set of general-purpose compressors rcbench compares the
// range coder against, in the order they should be reported.
var Codecs = []string{"lz4", "zlib", "zstd", "snappy"}

// Compress runs data through the named codec and returns its compressed
// size. An unknown name returns an error rather than panicking.
func Compress(name string, data []byte) (Result, error) {
	var out []byte
	var err error

	switch name {
	case "lz4":
		out, err = compressLZ4(data)
	case "zlib":
		out, err = compressZlib(data)
	case "zstd":
		out, err = compressZstd(data)
	case "snappy":
		out = snappy.Encode(nil, data)
	default:
		return Result{}, fmt.Errorf("baseline: unknown codec %q", name)
	}
	if err != nil {
		return Result{}, fmt.Errorf("baseline: %s: %w", name, err)
	}

	return Result{Name: name, InputSize: len(data), OutputSize: len(out)}, nil
}

// CompressAll runs data through every codec in Codecs.
func CompressAll(data []byte) ([]Result, error) {
	results := make([]Result, 0, len(Codecs))
	for _, name := range Codecs {
		r, err := Compress(name, data)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, buf, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// lz4 reports 0 when the block is incompressible.
		return data, nil
	}
	return buf[:n], nil
}

func compressZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := kzlib.NewWriterLevel(&buf, kzlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compressZstd(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}
