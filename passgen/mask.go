package passgen

// minimalBitMask returns the smallest mask of the form 2^k - 1 that is
// >= maxValue. ANDing a random word with it produces a candidate in
// [0, mask]; candidates above the target range are rejected rather than
// reduced, which is what keeps the distribution uniform.
func minimalBitMask(maxValue uint64) (uint64, error) {
	if maxValue < 1 {
		return 0, &Error{Code: ErrInvalidArgument, Message: "bitmask bound must be positive"}
	}

	mask := uint64(1)
	for mask < maxValue {
		mask = mask<<1 | 1
	}
	return mask, nil
}
