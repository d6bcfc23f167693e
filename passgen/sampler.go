package passgen

// sampler converts masked random words into unbiased indexes in
// [0, rangeSize). Every call owns its own sampler; nothing is shared
// between concurrent generations.
type sampler struct {
	mask      uint64
	rangeSize uint64

	// source supplies batches of random words. Defaults to RandomWords;
	// tests substitute scripted streams.
	source func(n int) ([]uint64, error)
	words  []uint64

	// budget is the number of sampling attempts left. It is decremented on
	// every candidate, accepted or not, and reaching zero is a hard
	// failure. This is the sole defense against a broken or adversarial
	// entropy source looping the rejection step forever.
	budget int
}

func newSampler(rangeSize uint64, budget int) (*sampler, error) {
	maxValue := rangeSize - 1
	if maxValue < 1 {
		// A single-value range still needs a non-zero mask; the extra
		// candidate it admits is rejected like any other.
		maxValue = 1
	}
	mask, err := minimalBitMask(maxValue)
	if err != nil {
		return nil, err
	}
	return &sampler{
		mask:      mask,
		rangeSize: rangeSize,
		source:    RandomWords,
		budget:    budget,
	}, nil
}

// next returns the next accepted index. remaining hints how many more
// samples the caller still wants and sizes the batch refill at 2x that:
// the minimal mask admits at most one rejection per acceptance on average,
// so doubling amortizes the refills without over-reading the source.
func (s *sampler) next(remaining int) (uint64, error) {
	for {
		if s.budget <= 0 {
			return 0, &Error{Code: ErrRandomnessExhausted, Message: "sampling attempt budget exhausted"}
		}
		if len(s.words) == 0 {
			n := 2 * remaining
			if n < 1 {
				n = 1
			}
			words, err := s.source(n)
			if err != nil {
				return 0, err
			}
			s.words = words
		}

		c := s.words[0] & s.mask
		s.words = s.words[1:]
		s.budget--

		if c < s.rangeSize {
			return c, nil
		}
	}
}
