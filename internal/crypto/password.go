// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"

	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// bcryptPrefixes are the version markers of modular-crypt bcrypt digests.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// cost is the bcrypt work factor of new digests.
	cost int
	// legacyKey is the HMAC-SHA256 key of legacy digests. Legacy digests
	// never verify when it is empty.
	legacyKey string
}

// NewPasswordHasher constructs a [PasswordHasher] using bcrypt's default cost.
func NewPasswordHasher(legacyKey string) PasswordHasher {
	return NewPasswordHasherWithCost(bcrypt.DefaultCost, legacyKey)
}

// NewPasswordHasherWithCost constructs a [PasswordHasher] with an explicit
// bcrypt cost, clamped to bcrypt's accepted range.
func NewPasswordHasherWithCost(cost int, legacyKey string) PasswordHasher {
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)

	return &passwordHasher{
		cost:      cost,
		legacyKey: legacyKey,
	}
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher].
func (h *passwordHasher) Verify(password, digest string) bool {
	switch {
	case isBcrypt(digest):
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	case h.legacyKey != "" && utils.IsHexSHA256(digest):
		return utils.EqualHex(utils.HashString(password, h.legacyKey), strings.ToLower(digest))
	default:
		return false
	}
}

// NeedsRehash implements [PasswordHasher].
func (h *passwordHasher) NeedsRehash(digest string) bool {
	if !isBcrypt(digest) {
		return true
	}

	cost, err := bcrypt.Cost([]byte(digest))
	return err != nil || cost < h.cost
}

func isBcrypt(digest string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(digest, p) {
			return true
		}
	}
	return false
}
