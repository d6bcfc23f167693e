// Package passgen generates passwords from arbitrary character sets using
// crypto/rand, without modulo bias and without index-dependent timing.
//
// # Why not just rand.Int?
//
// Reducing a random integer modulo the alphabet size skews the result
// toward low indexes whenever the size is not a power of two. passgen
// instead masks each random word down to the smallest power-of-two range
// covering the alphabet and rejects the values that still land outside it,
// which is exactly uniform. Picking the chosen symbol out of the alphabet
// is done with a branchless full scan (crypto/subtle), so the time taken
// does not depend on which index was drawn. That matters when the alphabet
// itself is secret, e.g. a private diceware wordlist.
//
// # Quick Start
//
//	pw, err := passgen.Generate(passgen.Alphanumeric, 32)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(pw)
//
// Any alphabet works, including ones with duplicate symbols (duplicates
// are proportionally more likely, by design of the caller's alphabet):
//
//	pin, err := passgen.Generate("0123456789", 6)
//
// Bounded integers:
//
//	n, err := passgen.Int(1, 6) // fair die roll
//
// # Error Handling
//
//	pw, err := passgen.Generate(alphabet, n)
//	if passgen.IsInvalidArgument(err) {
//		// bad length or alphabet, nothing was drawn
//	}
//	if passgen.IsRandomnessExhausted(err) {
//		// the entropy source is broken or hostile; do not retry blindly
//	}
//
// Every sampling loop carries a finite attempt budget, so a malfunctioning
// entropy source surfaces as ErrRandomnessExhausted instead of a hang.
package passgen
