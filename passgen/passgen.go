package passgen

// Convenience alphabets. Each is a plain constant handed to Generate;
// there are no special code paths behind them.
const (
	// ASCII is every printable ASCII character except space.
	ASCII = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
	// Alphanumeric is upper- and lowercase letters plus digits.
	Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// HexUpper is the uppercase hexadecimal digits.
	HexUpper = "0123456789ABCDEF"
)

const (
	// attemptsPerSymbol bounds the total sampling attempts for a password
	// at length * attemptsPerSymbol. The minimal bitmask keeps the
	// per-attempt acceptance probability at 1/2 or better for every
	// alphabet size, so exhausting this budget has probability below
	// 2^-64 per symbol and means the entropy source is broken or hostile.
	attemptsPerSymbol = 64

	// intAttempts bounds a single bounded-integer draw.
	intAttempts = 100
)

// Generate returns a password of exactly length symbols, each chosen
// uniformly at random from alphabet. The alphabet is treated as an ordered
// sequence of bytes and is not deduplicated: repeated symbols are
// proportionally more likely, which is the caller's choice to make.
//
// Fails with ErrInvalidArgument for length < 1 or an empty alphabet
// (before any randomness is consumed), ErrSelectionOutOfRange for
// alphabets beyond MaxAlphabetSize, and ErrRandomnessExhausted if the
// attempt budget runs out. On any failure no partial password is returned.
func Generate(alphabet string, length int) (string, error) {
	if length < 1 {
		return "", &Error{Code: ErrInvalidArgument, Message: "password length must be at least 1"}
	}
	if len(alphabet) == 0 {
		return "", &Error{Code: ErrInvalidArgument, Message: "alphabet must not be empty"}
	}
	if len(alphabet) > MaxAlphabetSize {
		return "", &Error{Code: ErrSelectionOutOfRange, Message: "alphabet exceeds constant-time selection cap"}
	}

	s, err := newSampler(uint64(len(alphabet)), length*attemptsPerSymbol)
	if err != nil {
		return "", err
	}

	password := make([]byte, 0, length)
	for len(password) < length {
		idx, err := s.next(length - len(password))
		if err != nil {
			return "", err
		}
		ch, err := selectAt(alphabet, int(idx))
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}
	return string(password), nil
}

// GenerateASCII returns a password of the given length drawn from the full
// printable ASCII alphabet.
func GenerateASCII(length int) (string, error) {
	return Generate(ASCII, length)
}

// GenerateAlphanumeric returns a password of the given length drawn from
// letters and digits.
func GenerateAlphanumeric(length int) (string, error) {
	return Generate(Alphanumeric, length)
}

// GenerateHex returns a password of the given length drawn from the
// uppercase hexadecimal digits.
func GenerateHex(length int) (string, error) {
	return Generate(HexUpper, length)
}

// Int returns an integer chosen uniformly at random from [min, max],
// inclusive on both ends. min == max returns min without consuming any
// entropy. min > max fails with ErrInvalidArgument. Spans of 2^63 or more
// exceed the word width and are rejected.
func Int(min, max int64) (int64, error) {
	if min > max {
		return 0, &Error{Code: ErrInvalidArgument, Message: "min must not exceed max"}
	}
	if min == max {
		return min, nil
	}

	// Computed in uint64 so the span is exact even when min and max
	// straddle zero.
	span := uint64(max) - uint64(min)
	if span > wordMask {
		return 0, &Error{Code: ErrInvalidArgument, Message: "range exceeds the 63-bit word width"}
	}

	s, err := newSampler(span+1, intAttempts)
	if err != nil {
		return 0, err
	}
	offset, err := s.next(1)
	if err != nil {
		return 0, err
	}
	return min + int64(offset), nil
}
