// Package seismiccrypto implements the session key agreement (ECDH+HKDF)
// and the AEAD primitive (AES-256-GCM plus nonce generation) the rest of the
// SDK builds on.
package seismiccrypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/hkdf"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismicerr"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// hkdfInfo is the ASCII info string mixed into every HKDF expansion. It must
// match the node and the other reference SDKs byte-for-byte.
const hkdfInfo = "aes-gcm key"

// GenerateClientKey returns a fresh secp256k1 keypair for use as the
// client-side ECDH secret, matching generate_aes_key's "generate one
// uniformly at random" fallback.
func GenerateClientKey() (*ecdsa.PrivateKey, error) {
	sk, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate client ecdh key: %w", err)
	}
	return sk, nil
}

// GenerateAESKey derives the session's 32-byte AES-256-GCM key from the
// client's secp256k1 private key and the network's (TEE's) compressed
// public key.
//
// The extraction step SHA-256-hashes a version byte built from the shared
// point's y-parity ((y[31] & 1) | 2) followed by the shared point's 32-byte
// x coordinate; that 32-byte digest is then expanded with HKDF-SHA256 (no
// salt, info "aes-gcm key").
func GenerateAESKey(clientSK *ecdsa.PrivateKey, networkPK seismictypes.CompressedPublicKey) (seismictypes.Bytes32, error) {
	var out seismictypes.Bytes32

	pub, err := crypto.DecompressPubkey(networkPK.Bytes())
	if err != nil {
		return out, fmt.Errorf("decompress network pubkey: %w: %w", err, seismicerr.ErrCurve)
	}

	curve := crypto.S256()
	if !curve.IsOnCurve(pub.X, pub.Y) {
		return out, fmt.Errorf("network pubkey not on curve: %w", seismicerr.ErrCurve)
	}

	sharedX, sharedY := curve.ScalarMult(pub.X, pub.Y, clientSK.D.Bytes())

	x := make([]byte, 32)
	sharedX.FillBytes(x)
	y := make([]byte, 32)
	sharedY.FillBytes(y)

	versionByte := (y[31] & 0x01) | 0x02

	h := sha256.New()
	h.Write([]byte{versionByte})
	h.Write(x)
	sharedKey := h.Sum(nil)

	reader := hkdf.New(sha256.New, sharedKey, nil, []byte(hkdfInfo))
	aesKey := make([]byte, 32)
	if _, err := io.ReadFull(reader, aesKey); err != nil {
		return out, fmt.Errorf("hkdf expand: %w", err)
	}

	return seismictypes.NewBytes32(aesKey)
}

// RandomBytes draws n cryptographically random bytes. It is exported for
// callers; GenerateClientKey draws its key through crypto.GenerateKey instead.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}
