package passgen

import "crypto/subtle"

// MaxAlphabetSize caps the constant-time selection scan. The comparison
// operates on 16-bit position values, so larger alphabets are rejected
// instead of silently truncated.
const MaxAlphabetSize = 1<<16 - 1

// selectAt returns alphabet[idx] without branching on idx. Every position
// is visited on every call and exactly one contributes bits to the result,
// so observable timing does not correlate with which index was chosen. The
// per-position masks come from crypto/subtle, whose operations are
// guaranteed to run in constant time and not be rewritten into
// data-dependent branches.
func selectAt(alphabet string, idx int) (byte, error) {
	if len(alphabet) > MaxAlphabetSize {
		return 0, &Error{Code: ErrSelectionOutOfRange, Message: "alphabet exceeds constant-time selection cap"}
	}
	if idx < 0 || idx >= len(alphabet) {
		return 0, &Error{Code: ErrSelectionOutOfRange, Message: "selection index out of range"}
	}

	var out int
	for k := 0; k < len(alphabet); k++ {
		eq := subtle.ConstantTimeEq(int32(k), int32(idx))
		out |= subtle.ConstantTimeSelect(eq, int(alphabet[k]), 0)
	}
	return byte(out), nil
}
