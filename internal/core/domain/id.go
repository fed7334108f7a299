package domain

import (
	"crypto/rand"
	"math/big"
	"time"
)

const (
	idAlphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixLength  = 7
	idAlphabetRunes = int64(len(idAlphabet))
)

// NewID returns an identifier of the form "<prefix>_<suffix>", where the
// suffix is 7 base36 characters drawn from crypto/rand. Uniqueness is
// probabilistic; collisions are accepted as negligible at the data volumes
// this store targets.
func NewID(prefix string) string {
	buf := make([]byte, idSuffixLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(idAlphabetRunes))
		if err != nil {
			// fallback: derive the remaining characters from the clock
			return prefix + "_" + timeSuffix()
		}
		buf[i] = idAlphabet[n.Int64()]
	}
	return prefix + "_" + string(buf)
}

func timeSuffix() string {
	v := time.Now().UnixNano()
	buf := make([]byte, idSuffixLength)
	for i := idSuffixLength - 1; i >= 0; i-- {
		buf[i] = idAlphabet[v%idAlphabetRunes]
		v /= idAlphabetRunes
	}
	return string(buf)
}
