package passgen

import (
	"crypto/rand"
	"encoding/binary"
)

const (
	// wordBytes is the number of secure random bytes consumed per word.
	wordBytes = 8

	// wordMask clears the top bit of a packed word so every value fits a
	// non-negative int64.
	wordMask = 1<<63 - 1
)

// RandomWords returns n independent words drawn from crypto/rand. Each word
// is built from 8 random bytes packed big-endian with the top bit cleared,
// so values are uniform over [0, 2^63). n = 0 returns an empty slice.
//
// An entropy source failure is wrapped as ErrEntropySource and never
// substituted with a weaker source.
func RandomWords(n int) ([]uint64, error) {
	if n < 0 {
		return nil, &Error{Code: ErrInvalidArgument, Message: "word count must be non-negative"}
	}
	words := make([]uint64, n)
	if n == 0 {
		return words, nil
	}

	buf := make([]byte, n*wordBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, &Error{Code: ErrEntropySource, Message: "entropy source failed: " + err.Error(), cause: err}
	}

	for i := range words {
		words[i] = binary.BigEndian.Uint64(buf[i*wordBytes:]) & wordMask
	}
	return words, nil
}
