package precompiles

import (
	"context"
	"encoding/binary"
	"fmt"
)

const (
	rngInitBaseGas  = 3500
	rngWordGas      = 5
	rngBus          = 16
)

// RNGGasCost returns the published gas cost for requesting numBytes random
// bytes with an optional personalization string: an initialization cost
// linear in len(pers) plus a fill cost linear in numBytes.
func RNGGasCost(numBytes int, pers []byte) int {
	initCost := linearGasCost(rngBus, len(pers), rngInitBaseGas, rngWordGas)
	fillCost := linearGasCost(rngBus, numBytes, 0, rngWordGas)
	return initCost + fillCost
}

// RNG requests numBytes (1..32) random bytes from the on-chain RNG
// precompile, optionally salted with personalization bytes. The result is
// interpreted as a big-endian integer and returned zero-padded to 32 bytes.
func RNG(ctx context.Context, caller Caller, numBytes int, pers []byte) ([]byte, error) {
	if numBytes < 1 || numBytes > 32 {
		return nil, fmt.Errorf("rng: num_bytes must be in [1,32], got %d", numBytes)
	}

	lenPrefix := make([]byte, 4)
	binary.BigEndian.PutUint32(lenPrefix, uint32(numBytes))
	data := append(lenPrefix, pers...)

	out, err := callPrecompile(ctx, caller, RNGAddress, data)
	if err != nil {
		return nil, err
	}
	return rightDecodeBigEndianPadded32(out), nil
}
