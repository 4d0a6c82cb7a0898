package seismicclient

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismiccrypto"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

// newSessionEncryption fetches the enclave's public key over t and derives
// the session's EncryptionState (C2). clientSK, if nil, is generated at
// random.
func newSessionEncryption(ctx context.Context, t Transport, clientSK *ecdsa.PrivateKey) (*txtypes.EncryptionState, error) {
	var err error
	if clientSK == nil {
		clientSK, err = seismiccrypto.GenerateClientKey()
		if err != nil {
			return nil, fmt.Errorf("[seismicclient] generate client key: %w", err)
		}
	}

	enclavePK, err := FetchEnclavePublicKey(ctx, t)
	if err != nil {
		return nil, err
	}

	aesKey, err := seismiccrypto.GenerateAESKey(clientSK, enclavePK)
	if err != nil {
		return nil, fmt.Errorf("[seismicclient] derive session key: %w", err)
	}

	pubkey, err := seismictypes.NewCompressedPublicKey(crypto.CompressPubkey(&clientSK.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("[seismicclient] compress client pubkey: %w", err)
	}

	return &txtypes.EncryptionState{
		AESKey:               aesKey,
		EncryptionPubkey:     pubkey,
		EncryptionPrivateKey: clientSK,
	}, nil
}
