// Package precompiles wraps the six fixed-address on-chain precompiles
// (RNG, ECDH, AES-GCM encrypt/decrypt, HKDF, secp256k1 sign) with bit-exact
// input packing and their published gas formulas. Every call goes out as an
// unsigned eth_call — the zero-value ethereum.CallMsg.From the node expects,
// since it rejects unsigned calls carrying a non-zero sender.
package precompiles

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismicerr"
)

// Addresses of the six precompiles, fixed by the chain.
var (
	RNGAddress          = common.HexToAddress("0x0000000000000000000000000000000000000064")
	ECDHAddress         = common.HexToAddress("0x0000000000000000000000000000000000000065")
	AESEncryptAddress   = common.HexToAddress("0x0000000000000000000000000000000000000066")
	AESDecryptAddress   = common.HexToAddress("0x0000000000000000000000000000000000000067")
	HKDFAddress         = common.HexToAddress("0x0000000000000000000000000000000000000068")
	Secp256k1SigAddress = common.HexToAddress("0x0000000000000000000000000000000000000069")
)

// Caller is the minimal surface a precompile dispatch needs — satisfied
// directly by *ethclient.Client and by bind.ContractCaller.
type Caller = bind.ContractCaller

// callPrecompile issues an unsigned eth_call against address with data as
// calldata; gas is informational only (the node computes its own cost) and
// is not sent on the call message, mirroring the reference client's
// "no gas field, so the node uses its default" behavior.
func callPrecompile(ctx context.Context, caller Caller, address common.Address, data []byte) ([]byte, error) {
	msg := ethereum.CallMsg{
		To:   &address,
		Data: data,
	}
	out, err := caller.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("call precompile %s: %w: %w", address.Hex(), err, seismicerr.ErrRPC)
	}
	return out, nil
}

// ceilDiv computes ceil(a/b) for non-negative b > 0.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// linearGasCost implements the shared "base + word*ceil(length/bus)" gas
// model used by several precompiles.
func linearGasCost(bus, length, base, word int) int {
	return base + word*ceilDiv(length, bus)
}

// rightDecodeBigEndianPadded32 interprets b as a big-endian unsigned
// integer and returns it zero-padded to 32 bytes, the packing the RNG
// precompile result uses.
func rightDecodeBigEndianPadded32(b []byte) []byte {
	n := new(big.Int).SetBytes(b)
	out := make([]byte, 32)
	n.FillBytes(out)
	return out
}
