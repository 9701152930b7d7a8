package rangecoder

// twoSymbolModel returns a model where a and b get frequencies freqA and
// freqB and every other byte is unrepresentable.
func twoSymbolModel(a, b byte, freqA, freqB uint16) *Model {
	var freq [256]uint16
	freq[a] = freqA
	freq[b] = freqB
	m, err := NewModel(freq)
	if err != nil {
		panic(err)
	}
	return m
}

// uniformModel returns a model where every byte value gets an equal share
// of the probability mass (8 each, so it sums to exactly 2048).
func uniformModel() *Model {
	var freq [256]uint16
	for i := range freq {
		freq[i] = MaxTotalFreq / 256
	}
	m, err := NewModel(freq)
	if err != nil {
		panic(err)
	}
	return m
}
