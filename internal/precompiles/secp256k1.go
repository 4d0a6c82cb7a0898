package precompiles

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// Secp256k1SignGasCost is the flat gas cost of the on-chain secp256k1-sign
// precompile.
const Secp256k1SignGasCost = 3000

// Secp256k1Sign requests the on-chain secp256k1 precompile to sign msgHash
// with the given secret key, ABI-encoded as (bytes32 sk, bytes32 msghash) —
// which for two static bytes32 arguments is simply their concatenation.
func Secp256k1Sign(ctx context.Context, caller Caller, sk, msgHash seismictypes.Bytes32) ([]byte, error) {
	data := make([]byte, 0, 64)
	data = append(data, sk.Bytes()...)
	data = append(data, msgHash.Bytes()...)
	return callPrecompile(ctx, caller, Secp256k1SigAddress, data)
}

// HashPersonalMessage applies the EIP-191 personal-sign prefix
// ("\x19Ethereum Signed Message:\n<len>" || msg) before hashing, for
// plain-message signing requests against the secp256k1 precompile.
func HashPersonalMessage(msg []byte) common.Hash {
	return accounts.TextHash(msg)
}
