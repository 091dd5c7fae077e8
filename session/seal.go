package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

const (
	sealKeyLength  = 32
	sealSeedLength = 32
)

// deriveSealKey expands the per-install seed into the AES key protecting the
// credentials file at rest.
func deriveSealKey(seed []byte) ([]byte, error) {
	h := hkdf.New(sha256.New, seed, nil, []byte("session-seal"))
	key := make([]byte, sealKeyLength)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, errors.Wrap(err, "[deriveSealKey] hkdf read")
	}
	return key, nil
}

// newSealSeed generates a fresh random seed for a new install.
func newSealSeed() ([]byte, error) {
	seed := make([]byte, sealSeedLength)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, errors.Wrap(err, "[newSealSeed] rand read")
	}
	return seed, nil
}

// seal encrypts plaintext with AES-GCM, prefixing the nonce to the ciphertext.
func seal(key, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Wrap(err, "[seal] nonce")
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// open decrypts a blob produced by seal.
func open(key, sealed []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	if len(sealed) < aead.NonceSize() {
		return nil, SealCorruptErr
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, SealCorruptErr
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != sealKeyLength {
		return nil, errors.New("seal key must be 32 bytes")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "aes.NewCipher")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "cipher.NewGCM")
	}
	return aead, nil
}
