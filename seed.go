package omnim

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/minio/highwayhash"
)

// RandomSeed returns a nonzero seed read from the operating system.
func RandomSeed() (uint64, error) {
	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, Error.Wrap(err)
		}
		if seed := binary.BigEndian.Uint64(buf[:]); seed != 0 {
			return seed, nil
		}
	}
}

// SeedString returns a seed derived from the phrase. Equal phrases always
// produce equal seeds.
func SeedString(phrase string) uint64 {
	return xxhash.Sum64String(phrase)
}

// DeriveSeed returns a seed for the label keyed by the 32 byte key. It is
// used to split one key into many independent streams.
func DeriveSeed(key []byte, label string) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, Error.Wrap(err)
	}
	_, _ = h.Write([]byte(label))
	return h.Sum64(), nil
}
