package seismiccrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismicerr"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// Encrypt AES-256-GCM-encrypts plaintext under key and nonce, binding aad
// (which may be nil) as additional authenticated data. The 16-byte GCM tag
// is appended to the returned ciphertext. An empty plaintext short-circuits
// to an empty ciphertext — the primitive is never invoked.
func Encrypt(key seismictypes.Bytes32, nonce seismictypes.EncryptionNonce, plaintext, aad []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return []byte{}, nil
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce.Bytes(), plaintext, aad), nil
}

// Decrypt is the inverse of Encrypt. An empty ciphertext decrypts to an
// empty plaintext without invoking the primitive. A non-empty ciphertext
// that fails tag verification returns seismicerr.ErrAuthenticationFailed;
// callers must treat this as fatal for the given ciphertext, never retry.
func Decrypt(key seismictypes.Bytes32, nonce seismictypes.EncryptionNonce, ciphertext, aad []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return []byte{}, nil
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce.Bytes(), ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("aes-gcm open: %w: %w", err, seismicerr.ErrAuthenticationFailed)
	}
	return plaintext, nil
}

func newGCM(key seismictypes.Bytes32) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("new aes cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return gcm, nil
}
