// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// Argon2id parameters recommended by OWASP.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MiB
	argon2Threads = 4
	argon2SaltLen = 16
	argon2KeyLen  = 32

	argon2Prefix = "$argon2id$"

	// Upper bounds accepted from a stored digest.
	argon2MaxMemory = 1024 * 1024 // 1 GiB
	argon2MaxTime   = 10
)

// passwordHasher produces digests with either bcrypt or argon2id and
// verifies digests of both kinds.
type passwordHasher struct {
	algorithm  string
	bcryptCost int
}

// NewPasswordHasher constructs a [PasswordHasher] for the given algorithm.
// bcryptCost is only used by the bcrypt algorithm; values outside
// [bcrypt.MinCost, bcrypt.MaxCost] fall back to bcrypt.DefaultCost.
func NewPasswordHasher(algorithm string, bcryptCost int) (PasswordHasher, error) {
	switch algorithm {
	case AlgorithmBcrypt:
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			bcryptCost = bcrypt.DefaultCost
		}
	case AlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	return &passwordHasher{algorithm: algorithm, bcryptCost: bcryptCost}, nil
}

func (h *passwordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	if h.algorithm == AlgorithmArgon2id {
		return hashArgon2id(password)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(digest), nil
}

func (h *passwordHasher) Verify(password, digest string) bool {
	if password == "" || digest == "" {
		return false
	}

	if strings.HasPrefix(digest, argon2Prefix) {
		ok, err := verifyArgon2id(password, digest)
		return err == nil && ok
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// hashArgon2id encodes the digest as a PHC string:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func hashArgon2id(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func verifyArgon2id(password, digest string) (bool, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != AlgorithmArgon2id {
		return false, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedDigest
	}

	var memory, iterations, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, ErrMalformedDigest
	}
	if threads == 0 || threads > 255 ||
		iterations == 0 || iterations > argon2MaxTime ||
		memory == 0 || memory > argon2MaxMemory {
		return false, ErrMalformedDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedDigest
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 || len(expected) > 1<<10 {
		return false, ErrMalformedDigest
	}

	computed := argon2.IDKey([]byte(password), salt, iterations, memory, uint8(threads), uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}
