package directory

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/seismicsystems/seismic-go-sdk/internal/abicodec"
	"github.com/seismicsystems/seismic-go-sdk/internal/precompiles"
)

// DepositContractAddress is the canonical Ethereum deposit contract's
// genesis address. This SDK provides the client-side deposit-data root hash
// helper and a deposit-count read; the on-chain contract itself is not part
// of it.
var DepositContractAddress = common.HexToAddress("0x00000000219ab540356cBB839Cbe05303d7705Fa")

// MakeWithdrawalCredentials builds the 32-byte withdrawal credentials for
// an execution-layer withdrawal address: 0x01 prefix, 11 zero bytes, then
// the 20-byte address.
func MakeWithdrawalCredentials(withdrawalAddress common.Address) [32]byte {
	var out [32]byte
	out[0] = 0x01
	copy(out[12:], withdrawalAddress[:])
	return out
}

// GetDepositCount reads the deposit contract's current deposit count. The
// call returns a standard ABI dynamic-bytes value (32-byte offset, 32-byte
// length, then data); the count itself is the 8-byte little-endian integer
// at data[0:8], i.e. bytes [64:72] of the raw response — transcribed bit-exact
// from the reference implementation's `raw[64:72]` slice rather than decoded
// through the dynamic-bytes wrapper, since the wrapper's own length prefix is
// not itself validated against the slice.
func GetDepositCount(ctx context.Context, caller precompiles.Caller) (uint64, error) {
	method := abicodec.DepositContractMethods["get_deposit_count"]
	data, err := abicodec.EncodeCalldata(method)
	if err != nil {
		return 0, fmt.Errorf("encode get_deposit_count calldata: %w", err)
	}

	address := DepositContractAddress
	msg := ethereum.CallMsg{To: &address, Data: data}
	out, err := caller.CallContract(ctx, msg, nil)
	if err != nil {
		return 0, fmt.Errorf("call get_deposit_count: %w", err)
	}
	if len(out) < 72 {
		return 0, fmt.Errorf("get_deposit_count: response too short (%d bytes)", len(out))
	}
	return binary.LittleEndian.Uint64(out[64:72]), nil
}

// DepositDataParams bundles the validator deposit's many similarly-shaped
// byte strings into one keyword-style struct, so callers can't transpose
// two same-length arguments by position.
type DepositDataParams struct {
	NodePubkey            [32]byte
	ConsensusPubkey       [48]byte
	WithdrawalCredentials [32]byte
	NodeSignature         [64]byte
	ConsensusSignature    [96]byte
	AmountGwei            uint64
}

// ComputeDepositDataRoot computes the bespoke SHA-256 SSZ-style Merkle hash
// the deposit contract expects as deposit_data_root, transcribed bit-exact
// from the reference implementation.
func ComputeDepositDataRoot(p DepositDataParams) [32]byte {
	consensusPubkeyHash := sha256Concat(p.ConsensusPubkey[:], make([]byte, 16))
	pubkeyRoot := sha256Concat(p.NodePubkey[:], consensusPubkeyHash[:])

	nodeSignatureHash := sha256.Sum256(p.NodeSignature[:])
	consensusSignatureHash := sha256Concat(
		sha256Sum(p.ConsensusSignature[:64])[:],
		sha256Concat(p.ConsensusSignature[64:], make([]byte, 32))[:],
	)
	signatureRoot := sha256Concat(nodeSignatureHash[:], consensusSignatureHash[:])

	amountLE := make([]byte, 8)
	binary.LittleEndian.PutUint64(amountLE, p.AmountGwei)

	left := sha256Concat(pubkeyRoot[:], p.WithdrawalCredentials[:])
	right := sha256Concat(append(amountLE, make([]byte, 24)...), signatureRoot[:])

	return sha256Concat(left[:], right[:])
}

func sha256Sum(b []byte) [32]byte {
	return sha256.Sum256(b)
}

func sha256Concat(a, b []byte) [32]byte {
	buf := make([]byte, 0, len(a)+len(b))
	buf = append(buf, a...)
	buf = append(buf, b...)
	return sha256.Sum256(buf)
}
