package seismicclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismiccrypto"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

// DefaultBlocksWindow is the default number of blocks before a transaction
// or signed read's freshness proof expires.
const DefaultBlocksWindow = 100

// MetadataParams carries the user-facing arguments to BuildMetadata.
// Zero-value optional fields (nil pointers) are resolved from the chain or
// generated.
type MetadataParams struct {
	Sender           common.Address
	To               *common.Address
	EncryptionPubkey seismictypes.CompressedPublicKey
	Value            *big.Int
	Nonce            *uint64
	BlocksWindow     uint64
	EncryptionNonce  *seismictypes.EncryptionNonce
	RecentBlockHash  *seismictypes.Bytes32
	ExpiresAtBlock   *uint64
	MessageVersion   uint8
	SignedRead       bool
}

func (p MetadataParams) valueOrZero() *big.Int {
	if p.Value == nil {
		return new(big.Int)
	}
	return p.Value
}

// BuildMetadata resolves chain_id, nonce, recent_block_hash, expires_at_block,
// and encryption_nonce as needed and assembles TxSeismicMetadata (C9).
func BuildMetadata(ctx context.Context, t Transport, p MetadataParams) (txtypes.TxSeismicMetadata, error) {
	cid, err := chainID(ctx, t)
	if err != nil {
		return txtypes.TxSeismicMetadata{}, fmt.Errorf("[seismicclient] chain id: %w", err)
	}

	var nonce uint64
	if p.Nonce != nil {
		nonce = *p.Nonce
	} else {
		nonce, err = transactionCount(ctx, t, p.Sender)
		if err != nil {
			return txtypes.TxSeismicMetadata{}, fmt.Errorf("[seismicclient] transaction count: %w", err)
		}
	}

	var encNonce seismictypes.EncryptionNonce
	if p.EncryptionNonce != nil {
		encNonce = *p.EncryptionNonce
	} else {
		encNonce, err = seismiccrypto.NewEncryptionNonce()
		if err != nil {
			return txtypes.TxSeismicMetadata{}, fmt.Errorf("[seismicclient] generate encryption nonce: %w", err)
		}
	}

	var blockHash seismictypes.Bytes32
	var expiresAt uint64
	if p.RecentBlockHash != nil && p.ExpiresAtBlock != nil {
		blockHash = *p.RecentBlockHash
		expiresAt = *p.ExpiresAtBlock
	} else {
		block, err := latestBlock(ctx, t)
		if err != nil {
			return txtypes.TxSeismicMetadata{}, fmt.Errorf("[seismicclient] latest block: %w", err)
		}
		if p.RecentBlockHash != nil {
			blockHash = *p.RecentBlockHash
		} else {
			blockHash, err = seismictypes.NewBytes32(block.Hash.Bytes())
			if err != nil {
				return txtypes.TxSeismicMetadata{}, fmt.Errorf("[seismicclient] block hash: %w", err)
			}
		}
		if p.ExpiresAtBlock != nil {
			expiresAt = *p.ExpiresAtBlock
		} else {
			window := p.BlocksWindow
			if window == 0 {
				window = DefaultBlocksWindow
			}
			expiresAt = uint64(block.Number) + window
		}
	}

	return txtypes.TxSeismicMetadata{
		Sender: p.Sender,
		Legacy: txtypes.LegacyFields{
			ChainID: new(big.Int).SetUint64(cid),
			Nonce:   nonce,
			To:      p.To,
			Value:   p.valueOrZero(),
		},
		Seismic: txtypes.SeismicElements{
			EncryptionPubkey: p.EncryptionPubkey,
			EncryptionNonce:  encNonce,
			MessageVersion:   p.MessageVersion,
			RecentBlockHash:  common.Hash(blockHash),
			ExpiresAtBlock:   expiresAt,
			SignedRead:       p.SignedRead,
		},
	}, nil
}
