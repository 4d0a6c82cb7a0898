package seismicclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismicerr"
)

// PublicClient performs every read that doesn't require a signer: plain
// eth_call, precompile dispatch, directory reads that don't need the
// signed-read path, and log queries. It holds no private key.
type PublicClient struct {
	Transport Transport
	ChainID   uint64
}

// NewPublicClient builds a PublicClient over an HTTP transport to rpcURL.
func NewPublicClient(rpcURL string, chainID uint64) *PublicClient {
	return &PublicClient{Transport: NewHTTPTransport(rpcURL), ChainID: chainID}
}

// CallContract implements bind.ContractCaller (and precompiles.Caller) over
// this client's Transport, so PublicClient can be handed directly to the
// precompiles and directory packages.
func (c *PublicClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	block := "latest"
	if blockNumber != nil {
		block = fmt.Sprintf("0x%x", blockNumber)
	}
	callArgs := map[string]interface{}{}
	if msg.To != nil {
		callArgs["to"] = msg.To.Hex()
	}
	if len(msg.Data) > 0 {
		callArgs["data"] = "0x" + common.Bytes2Hex(msg.Data)
	}
	var raw string
	if err := c.Transport.Call(ctx, &raw, "eth_call", callArgs, block); err != nil {
		return nil, fmt.Errorf("%w: %v", seismicerr.ErrRPC, err)
	}
	if raw == "" || raw == "0x" {
		return nil, nil
	}
	return common.FromHex(raw), nil
}

// GetLogs fetches logs matching filter (used by internal/events).
func (c *PublicClient) GetLogs(ctx context.Context, filter map[string]interface{}, dst interface{}) error {
	return GetLogs(ctx, c.Transport, filter, dst)
}

// BlockNumber returns the node's current head block number.
func (c *PublicClient) BlockNumber(ctx context.Context) (uint64, error) {
	return BlockNumber(ctx, c.Transport)
}
