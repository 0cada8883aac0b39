package common

import (
	"crypto/rand"
	"math/big"
)

// WipeByteArray zeroes b in place. Safe on nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandBase36 returns n random characters from [0-9a-z].
func RandBase36(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(base36)))
	for i := range out {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = base36[v.Int64()]
	}
	return string(out), nil
}
