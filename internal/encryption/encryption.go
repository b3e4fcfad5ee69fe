// Package encryption seals the investment document at rest with AES-256-GCM.
//
// The configured secret is never used directly. A 32-byte key is derived
// from it with HKDF-SHA256, and every Seal draws a fresh 12-byte nonce. The
// sealed form is "<hex(nonce)>:<hex(ciphertext)>", stored as a JSON string.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const keyInfo = "finalloc/investments-store/v1"

var (
	// ErrMalformed is returned when sealed text is not "<nonce>:<ciphertext>" hex.
	ErrMalformed = errors.New("encryption: malformed envelope")
	// ErrDecrypt is returned when authentication fails (wrong key or tampering).
	ErrDecrypt = errors.New("encryption: decryption failed")
)

// Cipher seals and opens documents with a key derived from a secret.
type Cipher struct {
	aead cipher.AEAD
}

// New derives the document key from secret.
func New(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, fmt.Errorf("encryption: empty secret")
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("encryption: derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encryption: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encryption: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Seal encrypts plaintext and returns the envelope text.
func (c *Cipher) Seal(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encryption: nonce: %w", err)
	}
	ct := c.aead.Seal(nil, nonce, plaintext, nil)
	return hex.EncodeToString(nonce) + ":" + hex.EncodeToString(ct), nil
}

// Open decrypts an envelope produced by Seal.
func (c *Cipher) Open(envelope string) ([]byte, error) {
	nonceHex, ctHex, ok := strings.Cut(envelope, ":")
	if !ok {
		return nil, ErrMalformed
	}
	nonce, err := hex.DecodeString(nonceHex)
	if err != nil || len(nonce) != c.aead.NonceSize() {
		return nil, ErrMalformed
	}
	ct, err := hex.DecodeString(ctHex)
	if err != nil || len(ct) < c.aead.Overhead() {
		return nil, ErrMalformed
	}

	plaintext, err := c.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}

// LooksSealed reports whether text has the envelope shape. It does not
// authenticate anything.
func LooksSealed(text string) bool {
	nonceHex, ctHex, ok := strings.Cut(text, ":")
	if !ok || nonceHex == "" || ctHex == "" {
		return false
	}
	_, err1 := hex.DecodeString(nonceHex)
	_, err2 := hex.DecodeString(ctHex)
	return err1 == nil && err2 == nil
}

// GenerateSecret returns a random 32-byte secret as hex, suitable for ENCRYPTION_KEY.
func GenerateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
