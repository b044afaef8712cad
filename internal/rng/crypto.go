package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand and is the default shuffle source
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// It panics if the system random source fails.
func (c Crypto) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(v.Int64())
}
