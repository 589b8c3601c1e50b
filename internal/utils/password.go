// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Names of the supported password digests.
const (
	HashAlgorithmSHA256   = "sha256"
	HashAlgorithmArgon2ID = "argon2id"
)

// ErrUnknownHashAlgorithm is returned for a digest name no hasher handles.
var ErrUnknownHashAlgorithm = errors.New("unknown password hash algorithm")

// PasswordHasher derives the stored digest of a password and its salt.
type PasswordHasher interface {
	// Name is stored next to the digest so the matching hasher is used on
	// login.
	Name() string
	Hash(password, salt string) string
}

// NewPasswordHasher returns the hasher registered under name. An empty name
// selects sha256, which is what records without an algorithm were written
// with.
func NewPasswordHasher(name string) (PasswordHasher, error) {
	switch name {
	case "", HashAlgorithmSHA256:
		return sha256Hasher{}, nil
	case HashAlgorithmArgon2ID:
		return argon2IDHasher{time: 1, memory: 64 * 1024, threads: 4, keyLen: 32}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, name)
	}
}

// ComparePassword reports whether password and salt produce digest under
// hasher. The comparison runs in constant time.
func ComparePassword(hasher PasswordHasher, password, salt, digest string) bool {
	computed := hasher.Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// sha256Hasher is base64(SHA-256(password + salt)).
type sha256Hasher struct{}

func (sha256Hasher) Name() string { return HashAlgorithmSHA256 }

func (sha256Hasher) Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}

type argon2IDHasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

func (argon2IDHasher) Name() string { return HashAlgorithmArgon2ID }

func (h argon2IDHasher) Hash(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), h.time, h.memory, h.threads, h.keyLen)
	return base64.StdEncoding.EncodeToString(key)
}
