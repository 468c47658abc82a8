package mapgen

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed uint64, salt string) *rand.Rand {
	// Deterministic placement needs a reproducible stream, not a secure one.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, salt+":a"), seedWord(seed, salt+":b")))
}

func seedWord(seed uint64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
