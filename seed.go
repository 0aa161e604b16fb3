package montyhall

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a high-entropy seed from crypto/rand, for callers that
// want an unpredictable run but still a recordable seed to replay it.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

/*
shardSeed derives the seed for one shard's private generator. The mix
is a splitmix64 step: the shard index times the golden-gamma constant
is folded into the run seed and the result is avalanched, so adjacent
shards land on unrelated streams while staying a pure function of
(seed, shard).
*/
func shardSeed(seed int64, shard int) int64 {
	z := uint64(seed) + uint64(shard+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	return int64(z & (1<<63 - 1))
}
