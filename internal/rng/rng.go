package rng

import "fmt"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// source names accepted by New
const (
	SourceCrypto = "crypto"
	SourceSeeded = "seeded"
)

// New returns the generator named by source
// An empty source is treated as crypto. The seed is only used by the seeded source.
func New(source string, seed int64) (Generator, error) {
	switch source {
	case "", SourceCrypto:
		return Crypto{}, nil
	case SourceSeeded:
		return NewSeeded(seed), nil
	}

	return nil, fmt.Errorf("unknown random source: %s", source)
}
