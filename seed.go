package hashwires

import "crypto/rand"

// RandomSeed returns a fresh 32-byte master seed read from the host's
// secure random source. Callers of Gen own the result; this package
// keeps no copy and maintains no process-wide RNG state beyond what
// crypto/rand itself does.
func RandomSeed() ([]byte, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// BigNumFromUint64 exposes bigNumFromUint64 for callers outside the
// package, e.g. command-line tooling building a value/threshold from
// a flag.
func BigNumFromUint64(x uint64) *bigNum {
	return bigNumFromUint64(x)
}
