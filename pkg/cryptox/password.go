// Package cryptox provides the password and client-secret hashing used by the
// resource owner directory and the client registry.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Fixed at hash time; verification reads them back from
// the encoded string so they can change without invalidating old hashes.
const (
	iterations  = 3
	memory      = 64 * 1024
	parallelism = 2
	saltLength  = 16
	keyLength   = 32
)

// ErrMismatch reports a password that does not match the stored hash.
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a PHC-format Argon2id hash including salt and
// parameters. Used for both account-holder passwords and client secrets.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword compares a plaintext password against a PHC-style Argon2id
// hash. The final comparison is constant time; the key derivation itself runs
// regardless of where a mismatch occurs.
func VerifyPassword(password, encodedHash string) error {
	// PHC layout: $argon2id$v=19$m=X,t=Y,p=Z$salt$hash
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("cryptox: invalid hash format")
	}
	if parts[1] != "argon2id" || parts[2] != "v=19" {
		return errors.New("cryptox: unsupported hash format")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("cryptox: invalid hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("cryptox: invalid salt encoding: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("cryptox: invalid hash encoding: %w", err)
	}

	computed := argon2.IDKey([]byte(password), salt, iters, mem, par, uint32(len(expected)))

	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return ErrMismatch
	}
	return nil
}

// DummyVerify burns the same key-derivation cost as a real verification.
// Authentication paths call it when a username or client id is unknown so a
// lookup miss takes no measurably different time than a wrong password.
func DummyVerify(password string) {
	salt := make([]byte, saltLength)
	argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)
}
