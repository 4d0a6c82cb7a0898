package txencode

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

// BuildAAD RLP-encodes the 11 metadata fields bound into AES-GCM as
// additional authenticated data, in the fixed order: sender, chain_id,
// nonce, to, value, encryption_pubkey, encryption_nonce, message_version,
// recent_block_hash, expires_at_block, signed_read.
func BuildAAD(meta txtypes.TxSeismicMetadata) ([]byte, error) {
	sender := meta.Sender
	fields := [][]byte{
		encodeAddress(&sender),
		encodeBigInt(meta.Legacy.ChainID),
		encodeUint64(meta.Legacy.Nonce),
		encodeAddress(meta.Legacy.To),
		encodeBigInt(meta.Legacy.Value),
		meta.Seismic.EncryptionPubkey.Bytes(),
		meta.Seismic.EncryptionNonce.Bytes(),
		encodeUint64(uint64(meta.Seismic.MessageVersion)),
		encodeBytes32(meta.Seismic.RecentBlockHash),
		encodeUint64(meta.Seismic.ExpiresAtBlock),
		encodeBool(meta.Seismic.SignedRead),
	}

	out, err := rlp.EncodeToBytes(fields)
	if err != nil {
		return nil, fmt.Errorf("rlp-encode aad fields: %w", err)
	}
	return out, nil
}
