package precompiles

import (
	"context"
	"fmt"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// SharedSecretGas and HKDFExpandGas are the two flat gas components the
// on-chain ECDH precompile's cost is composed of.
const (
	SharedSecretGas = 3000
	HKDFExpandGas   = 120
)

// ECDHGasCost is the flat gas cost of the on-chain ECDH precompile.
const ECDHGasCost = SharedSecretGas + HKDFExpandGas

// ECDH requests the on-chain ECDH precompile to derive a shared secret from
// a 32-byte secret scalar and a 33-byte compressed public key, returning
// the first 32 bytes of the result.
func ECDH(ctx context.Context, caller Caller, secret seismictypes.Bytes32, pubkey seismictypes.CompressedPublicKey) (seismictypes.Bytes32, error) {
	data := make([]byte, 0, 32+33)
	data = append(data, secret.Bytes()...)
	data = append(data, pubkey.Bytes()...)

	out, err := callPrecompile(ctx, caller, ECDHAddress, data)
	if err != nil {
		return seismictypes.Bytes32{}, err
	}
	if len(out) < 32 {
		return seismictypes.Bytes32{}, fmt.Errorf("ecdh precompile result too short (%d bytes)", len(out))
	}
	return seismictypes.NewBytes32(out[:32])
}
