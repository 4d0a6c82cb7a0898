// Package seismictypes implements the SDK's fixed-size byte value types.
//
// Each type wraps a fixed-size array rather than a slice so a zero value is
// always the correctly-sized all-zero value, never nil. Construction from
// variable-length input (hex strings, raw byte slices) is the only place
// length and format are validated, and it returns an error instead of
// panicking.
package seismictypes

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismicerr"
)

// Bytes32 is a generic 32-byte value: a hash, a symmetric key, a scalar.
type Bytes32 [32]byte

// NewBytes32 validates b is exactly 32 bytes and copies it into a Bytes32.
func NewBytes32(b []byte) (Bytes32, error) {
	var out Bytes32
	if len(b) != 32 {
		return out, fmt.Errorf("bytes32 wants 32 bytes, got %d: %w", len(b), seismicerr.ErrInvalidLength)
	}
	copy(out[:], b)
	return out, nil
}

// Bytes32FromHex decodes a "0x"-optional hex string into a Bytes32.
func Bytes32FromHex(s string) (Bytes32, error) {
	b, err := hexToBytes(s)
	if err != nil {
		return Bytes32{}, err
	}
	return NewBytes32(b)
}

// Bytes returns a copy of the underlying 32 bytes.
func (b Bytes32) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, b[:])
	return out
}

func (b Bytes32) String() string {
	return "0x" + hex.EncodeToString(b[:])
}

// PrivateKey is a secp256k1 scalar. It shares Bytes32's representation; the
// distinct name keeps signing-key values from being mixed up with generic
// hash/key Bytes32 values at call sites.
type PrivateKey = Bytes32

// PrivateKeyFromHex decodes a "0x"-optional hex string into a PrivateKey.
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	return Bytes32FromHex(s)
}

// CompressedPublicKey is a 33-byte SEC1-compressed secp256k1 public key: a
// 0x02/0x03 prefix byte followed by the 32-byte x-coordinate.
type CompressedPublicKey [33]byte

// NewCompressedPublicKey validates b is 33 bytes with a valid prefix byte.
func NewCompressedPublicKey(b []byte) (CompressedPublicKey, error) {
	var out CompressedPublicKey
	if len(b) != 33 {
		return out, fmt.Errorf("compressed public key wants 33 bytes, got %d: %w", len(b), seismicerr.ErrInvalidLength)
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		return out, fmt.Errorf("compressed public key prefix must be 0x02 or 0x03, got 0x%02x: %w", b[0], seismicerr.ErrInvalidLength)
	}
	copy(out[:], b)
	return out, nil
}

// CompressedPublicKeyFromHex decodes a "0x"-optional hex string.
func CompressedPublicKeyFromHex(s string) (CompressedPublicKey, error) {
	b, err := hexToBytes(s)
	if err != nil {
		return CompressedPublicKey{}, err
	}
	return NewCompressedPublicKey(b)
}

// Bytes returns a copy of the underlying 33 bytes.
func (k CompressedPublicKey) Bytes() []byte {
	out := make([]byte, 33)
	copy(out, k[:])
	return out
}

func (k CompressedPublicKey) String() string {
	return "0x" + hex.EncodeToString(k[:])
}

// EncryptionNonce is the 12-byte AES-GCM nonce carried in a shielded
// transaction's metadata.
type EncryptionNonce [12]byte

// NewEncryptionNonce validates b is exactly 12 bytes.
func NewEncryptionNonce(b []byte) (EncryptionNonce, error) {
	var out EncryptionNonce
	if len(b) != 12 {
		return out, fmt.Errorf("encryption nonce wants 12 bytes, got %d: %w", len(b), seismicerr.ErrInvalidLength)
	}
	copy(out[:], b)
	return out, nil
}

// EncryptionNonceFromHex decodes a "0x"-optional hex string.
func EncryptionNonceFromHex(s string) (EncryptionNonce, error) {
	b, err := hexToBytes(s)
	if err != nil {
		return EncryptionNonce{}, err
	}
	return NewEncryptionNonce(b)
}

// Bytes returns a copy of the underlying 12 bytes.
func (n EncryptionNonce) Bytes() []byte {
	out := make([]byte, 12)
	copy(out, n[:])
	return out
}

func (n EncryptionNonce) String() string {
	return "0x" + hex.EncodeToString(n[:])
}

func hexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return b, nil
}
