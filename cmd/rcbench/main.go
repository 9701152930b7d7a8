// Command rcbench is a development tool, not part of the embedded codec:
// it encodes a small payload with the range coder and, for comparison,
// with a handful of general-purpose compressors, then prints their sizes
// side by side. Use it during bring-up to check that a hand-tuned per-byte
// model actually beats generic compression at the packet sizes this module
// targets (below a few hundred bytes, it usually does, since generic
// codecs pay their own header/dictionary overhead).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/takahiro0327/minirangecoder"
	"github.com/takahiro0327/minirangecoder/internal/baseline"
)

func main() {
	var (
		inputPath = flag.String("in", "", "path to the payload to encode (default: stdin, max 255 bytes)")
		uniform   = flag.Bool("uniform-model", false, "use a uniform byte-frequency model instead of building one from the payload")
	)
	flag.Parse()

	if err := run(*inputPath, *uniform, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "rcbench:", err)
		os.Exit(1)
	}
}

func run(inputPath string, uniform bool, out io.Writer) error {
	payload, err := readPayload(inputPath)
	if err != nil {
		return err
	}
	if len(payload) > rangecoder.MaxPayloadSize {
		return fmt.Errorf("payload is %d bytes, rcbench only handles up to %d", len(payload), rangecoder.MaxPayloadSize)
	}

	model, err := buildModel(payload, uniform)
	if err != nil {
		return err
	}

	compressed := make([]byte, len(payload)+rangecoder.HeaderSize)
	n, err := rangecoder.Encode(payload, compressed, model)
	if err != nil {
		return fmt.Errorf("range coder encode: %w", err)
	}

	fmt.Fprintf(out, "input:       %d bytes\n", len(payload))
	fmt.Fprintf(out, "rangecoder:  %d bytes (ratio %.3f)\n", n, ratio(int(n), len(payload)))

	results, err := baseline.CompressAll(payload)
	if err != nil {
		return fmt.Errorf("baseline codecs: %w", err)
	}
	for _, r := range results {
		fmt.Fprintf(out, "%-12s %d bytes (ratio %.3f)\n", r.Name+":", r.OutputSize, r.Ratio())
	}

	return nil
}

func readPayload(path string) ([]byte, error) {
	if path == "" {
		return readAllStdin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func readAllStdin() ([]byte, error) {
	buf := make([]byte, 0, rangecoder.MaxPayloadSize)
	chunk := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			break
		}
	}
	return buf, nil
}

func buildModel(payload []byte, uniform bool) (*rangecoder.Model, error) {
	if uniform {
		var freq [256]uint16
		for i := range freq {
			freq[i] = rangecoder.MaxTotalFreq / 256
		}
		return rangecoder.NewModel(freq)
	}

	var counts [256]uint64
	for _, b := range payload {
		counts[b]++
	}
	return rangecoder.BuildModel(counts)
}

func ratio(compressed, original int) float64 {
	if original == 0 {
		return 0
	}
	return float64(compressed) / float64(original)
}
