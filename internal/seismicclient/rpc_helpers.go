package seismicclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismicerr"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

const teePublicKeyMethod = "seismic_getTeePublicKey"

// FetchEnclavePublicKey calls the node's custom RPC method that returns the
// TEE's compressed secp256k1 public key, used to seed C2 at session start.
func FetchEnclavePublicKey(ctx context.Context, t Transport) (seismictypes.CompressedPublicKey, error) {
	var raw string
	if err := t.Call(ctx, &raw, teePublicKeyMethod); err != nil {
		return seismictypes.CompressedPublicKey{}, fmt.Errorf("[seismicclient] fetch enclave pubkey: %w", err)
	}
	return seismictypes.CompressedPublicKeyFromHex(raw)
}

func chainID(ctx context.Context, t Transport) (uint64, error) {
	var raw hexutil.Uint64
	if err := t.Call(ctx, &raw, "eth_chainId"); err != nil {
		return 0, err
	}
	return uint64(raw), nil
}

func transactionCount(ctx context.Context, t Transport, addr common.Address) (uint64, error) {
	var raw hexutil.Uint64
	if err := t.Call(ctx, &raw, "eth_getTransactionCount", addr.Hex(), "latest"); err != nil {
		return 0, err
	}
	return uint64(raw), nil
}

func gasPrice(ctx context.Context, t Transport) (*big.Int, error) {
	var raw hexutil.Big
	if err := t.Call(ctx, &raw, "eth_gasPrice"); err != nil {
		return nil, err
	}
	return (*big.Int)(&raw), nil
}

type rpcBlock struct {
	Number hexutil.Uint64 `json:"number"`
	Hash   common.Hash    `json:"hash"`
}

func latestBlock(ctx context.Context, t Transport) (rpcBlock, error) {
	var block rpcBlock
	if err := t.Call(ctx, &block, "eth_getBlockByNumber", "latest", false); err != nil {
		return rpcBlock{}, err
	}
	return block, nil
}

func sendRawTransaction(ctx context.Context, t Transport, signed []byte) (common.Hash, error) {
	var raw string
	if err := t.Call(ctx, &raw, "eth_sendRawTransaction", hexutil.Encode(signed)); err != nil {
		return common.Hash{}, err
	}
	return common.HexToHash(raw), nil
}

func ethCall(ctx context.Context, t Transport, signed []byte) ([]byte, error) {
	var raw string
	if err := t.Call(ctx, &raw, "eth_call", hexutil.Encode(signed), "latest"); err != nil {
		return nil, err
	}
	if raw == "" || raw == "0x" {
		return nil, nil
	}
	data, err := hexutil.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", seismicerr.ErrResponseDecode, err)
	}
	return data, nil
}

// BlockNumber returns the node's current head block number. Exported for
// internal/events, which polls it directly against this package's Transport.
func BlockNumber(ctx context.Context, t Transport) (uint64, error) {
	var raw hexutil.Uint64
	if err := t.Call(ctx, &raw, "eth_blockNumber"); err != nil {
		return 0, err
	}
	return uint64(raw), nil
}

// GetLogs calls eth_getLogs with a raw filter object and decodes into dst.
// Exported for internal/events.
func GetLogs(ctx context.Context, t Transport, filter map[string]interface{}, dst interface{}) error {
	return t.Call(ctx, dst, "eth_getLogs", filter)
}
