/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Passwords are hashed with scrypt rather than bcrypt so long
// machine-generated credentials are not silently truncated.
const (
	scryptN = 32768
	scryptR = 8
	scryptP = 1
	saltLen = 16
	hashLen = 32
)

// deriveKey runs scrypt with the fixed parameter set
func deriveKey(password string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, hashLen)
}

// GenerateHash hashes a password with a fresh random salt. The stored form
// is base64(salt)$base64(hash).
func GenerateHash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash, err := deriveKey(password, salt)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash: %w", err)
	}

	return base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyHash re-derives the key from the candidate password and compares it
// to the stored hash in constant time
func VerifyHash(password, encodedHash string) (bool, error) {
	saltPart, hashPart, found := strings.Cut(encodedHash, "$")
	if !found {
		return false, fmt.Errorf("invalid hash format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltPart)
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}

	stored, err := base64.RawStdEncoding.DecodeString(hashPart)
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	computed, err := deriveKey(password, salt)
	if err != nil {
		return false, fmt.Errorf("failed to generate comparison hash: %w", err)
	}

	return subtle.ConstantTimeCompare(stored, computed) == 1, nil
}
