package internal

import (
	"crypto/aes"
	"crypto/cipher"
)

// AESEncryptor applies single AES block operations (all rounds) under a
// fixed key.
type AESEncryptor struct {
	block cipher.Block
}

// NewAESEncryptor creates a new AES encryptor with the given key.
// Key must be 16, 24, or 32 bytes (AES-128, AES-192, or AES-256).
func NewAESEncryptor(key []byte) (*AESEncryptor, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &AESEncryptor{block: block}, nil
}

// Encrypt encrypts a single 16-byte block.
// dst and src must be exactly 16 bytes.
func (a *AESEncryptor) Encrypt(dst, src []byte) {
	a.block.Encrypt(dst, src)
}

// Decrypt decrypts a single 16-byte block.
// dst and src must be exactly 16 bytes.
func (a *AESEncryptor) Decrypt(dst, src []byte) {
	a.block.Decrypt(dst, src)
}

// MustAESEncryptors builds one encryptor per key. The keys are package
// constants, so a failure is a programming error and panics.
func MustAESEncryptors(keys ...[16]byte) []*AESEncryptor {
	encs := make([]*AESEncryptor, len(keys))
	for i := range keys {
		enc, err := NewAESEncryptor(keys[i][:])
		if err != nil {
			panic("internal: invalid AES key: " + err.Error())
		}
		encs[i] = enc
	}
	return encs
}
