package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Signer computes and verifies keyed HMAC-SHA256 signatures. It is used to
// protect cookie payloads that are not JWTs, e.g. flash notices.
//
// Hashers are pooled per signer so that each key keeps its own instances.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer keyed with signKey.
func NewSigner(signKey string) *Signer {
	key := []byte(signKey)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sign returns the hex-encoded HMAC-SHA256 of data.
func (s *Signer) Sign(data []byte) string {
	return hex.EncodeToString(s.sum(data))
}

// Verify reports whether signature is a valid hex HMAC of data.
func (s *Signer) Verify(data []byte, signature string) bool {
	decoded, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(s.sum(data), decoded)
}

func (s *Signer) sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}
