package random

import (
	"crypto/rand"
	mrand "math/rand/v2"
)

// Random is the source of randomness for the random strategy and session IDs
type Random interface {
	// Intn returns a value in [0, n), or 0 when n <= 0
	Intn(n int) int

	// String returns length bytes drawn uniformly from alphabet
	String(length int, alphabet string) string
}

// SystemRandom picks guess letters from the runtime's ChaCha8 generator and
// draws session IDs from crypto/rand, since IDs are handed to clients.
type SystemRandom struct{}

func New() *SystemRandom {
	return &SystemRandom{}
}

func (SystemRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return mrand.IntN(n)
}

func (SystemRandom) String(length int, alphabet string) string {
	if length <= 0 || alphabet == "" || len(alphabet) > 256 {
		return ""
	}
	// Bytes at or above limit are rejected so every symbol is equally likely.
	limit := 256 - 256%len(alphabet)
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return ""
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out)
}
