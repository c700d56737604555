package genetic

import (
	"crypto/rand"
	"math"
	"math/big"
	mrand "math/rand"
)

// NewRandom returns a sequential random source seeded once. Two sources with
// the same seed produce the same run.
func NewRandom(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// GenerateSeed samples a positive seed from the operating system's entropy
func GenerateSeed() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return 0, err
	}

	return n.Int64() + 1, nil
}
