package precompiles

import (
	"context"
	"fmt"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

const (
	sha256BaseGas    = 60
	sha256WordGas    = 12
	hkdfExpandGas    = 2 * sha256BaseGas // 120
	hkdfSharedSecretGas = 3000
	hkdfBus          = 32
)

// HKDFGasCost returns the gas cost of expanding ikmLen bytes of input key
// material: two linear SHA-256 passes (each costed against the SHA-256
// base, matching the on-chain precompile's internal double hash) plus the
// flat expand cost.
func HKDFGasCost(ikmLen int) int {
	pass := linearGasCost(hkdfBus, ikmLen, sha256BaseGas, sha256WordGas)
	return 2*pass + hkdfExpandGas
}

// HKDF requests the on-chain HKDF precompile to expand raw ikm bytes,
// returning the first 32 bytes of the result.
func HKDF(ctx context.Context, caller Caller, ikm []byte) (seismictypes.Bytes32, error) {
	out, err := callPrecompile(ctx, caller, HKDFAddress, ikm)
	if err != nil {
		return seismictypes.Bytes32{}, err
	}
	if len(out) < 32 {
		return seismictypes.Bytes32{}, fmt.Errorf("hkdf precompile result too short (%d bytes)", len(out))
	}
	return seismictypes.NewBytes32(out[:32])
}
