package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests. hash.Hash instances are pooled
// per Hasher, so one Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash returns the HMAC-SHA256 digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Verify reports whether hexDigest is the hex-encoded digest of data.
func (h *Hasher) Verify(data []byte, hexDigest string) bool {
	got, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false
	}

	return hmac.Equal(h.Hash(data), got)
}

// HashString returns the hex-encoded HMAC-SHA256 of data under hashKey.
// It does not use a pool; the client signs one body per run.
func HashString(data []byte, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}
