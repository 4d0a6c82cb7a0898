package config

import (
	"context"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismicclient"
)

// ChainConfig names a node's RPC/websocket endpoints and chain ID, letting
// callers build clients from a preset instead of wiring URLs by hand.
type ChainConfig struct {
	Name    string
	RPCURL  string
	WSURL   string
	ChainID uint64
}

// SeismicTestnet targets the public Seismic devnet.
var SeismicTestnet = ChainConfig{
	Name:    "seismic-testnet",
	RPCURL:  "https://node-1.seismicdev.net/rpc",
	WSURL:   "wss://node-1.seismicdev.net/ws",
	ChainID: SeismicTestnetChainID,
}

// Sanvil targets a local anvil-based Seismic devnode.
var Sanvil = ChainConfig{
	Name:    "sanvil",
	RPCURL:  "http://127.0.0.1:8545",
	WSURL:   "ws://127.0.0.1:8545",
	ChainID: SanvilChainID,
}

// NewPublicClient builds a read-only client against this chain's RPC URL.
func (c ChainConfig) NewPublicClient() *seismicclient.PublicClient {
	return seismicclient.NewPublicClient(c.RPCURL, c.ChainID)
}

// NewWalletClient builds a signing client against this chain's RPC URL,
// deriving the session's ECDH+HKDF key against the node's TEE public key.
func (c ChainConfig) NewWalletClient(ctx context.Context, privateKeyHex string) (*seismicclient.WalletClient, error) {
	return seismicclient.NewWalletClient(ctx, c.RPCURL, c.ChainID, privateKeyHex)
}
