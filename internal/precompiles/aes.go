package precompiles

import (
	"context"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

const (
	aesGCMBaseGas  = 1000
	aesGCMPerBlock = 30
	aesGCMBlockBus = 16
)

// AESGasCost returns the gas cost of an AES-GCM encrypt or decrypt
// precompile call over a payload of payloadLen bytes: a flat base plus a
// per-16-byte-block cost.
func AESGasCost(payloadLen int) int {
	return linearGasCost(aesGCMBlockBus, payloadLen, aesGCMBaseGas, aesGCMPerBlock)
}

func aesCallData(key seismictypes.Bytes32, nonce seismictypes.EncryptionNonce, payload []byte) []byte {
	data := make([]byte, 0, 32+12+len(payload))
	data = append(data, key.Bytes()...)
	data = append(data, nonce.Bytes()...)
	data = append(data, payload...)
	return data
}

// AESEncrypt calls the on-chain AES-GCM encrypt precompile.
func AESEncrypt(ctx context.Context, caller Caller, key seismictypes.Bytes32, nonce seismictypes.EncryptionNonce, plaintext []byte) ([]byte, error) {
	return callPrecompile(ctx, caller, AESEncryptAddress, aesCallData(key, nonce, plaintext))
}

// AESDecrypt calls the on-chain AES-GCM decrypt precompile.
func AESDecrypt(ctx context.Context, caller Caller, key seismictypes.Bytes32, nonce seismictypes.EncryptionNonce, ciphertext []byte) ([]byte, error) {
	return callPrecompile(ctx, caller, AESDecryptAddress, aesCallData(key, nonce, ciphertext))
}
