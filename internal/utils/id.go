package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// localIDLength is the byte length of a locally generated area identifier.
// 12 random bytes encode to 24 hex characters, enough to make collisions with
// other offline clients negligible until the server assigns a real identity.
const localIDLength = 12

// NewLocalID returns a collision-resistant 24-character lowercase hex
// identifier for records created while the server is unreachable.
func NewLocalID() string {
	buf := make([]byte, localIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure is effectively fatal elsewhere; fall back to a
		// UUID-derived value rather than returning an empty identifier.
		id := uuid.New()
		copy(buf, id[:localIDLength])
	}
	return hex.EncodeToString(buf)
}

// UUIDGenerator produces server-side identifiers. Time-ordered v7 UUIDs keep
// listing indexes roughly append-only.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
