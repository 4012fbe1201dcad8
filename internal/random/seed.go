package random

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/louisbranch/adpulse/internal/platform/errors"
)

// NewSeed returns a cryptographically sourced seed for math/rand generators.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, errors.Wrap(errors.CodeSeedFailed, "read random seed", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
