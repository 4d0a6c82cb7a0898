package txencode

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

// SeismicTxType is re-exported here so callers that only import txencode
// don't need to reach into txtypes for the envelope's type byte.
const SeismicTxType = txtypes.SeismicTxType

// unsignedFields returns the 13-field envelope body in wire order:
// chain_id, nonce, gas_price, gas, to, value, encryption_pubkey,
// encryption_nonce, message_version, recent_block_hash, expires_at_block,
// signed_read, data. data is last, and it must already be ciphertext.
func unsignedFields(tx txtypes.UnsignedShieldedTx) [][]byte {
	return [][]byte{
		encodeBigInt(tx.ChainID),
		encodeUint64(tx.Nonce),
		encodeBigInt(tx.GasPrice),
		encodeUint64(tx.Gas),
		encodeAddress(tx.To),
		encodeBigInt(tx.Value),
		tx.EncryptionPubkey.Bytes(),
		tx.EncryptionNonce.Bytes(),
		encodeUint64(uint64(tx.MessageVersion)),
		encodeBytes32(tx.RecentBlockHash),
		encodeUint64(tx.ExpiresAtBlock),
		encodeBool(tx.SignedRead),
		tx.Data,
	}
}

// SerializeUnsigned RLP-encodes the 13-field envelope body with no type
// prefix and no signature. This is the payload hashed by the raw signing
// scheme, after prefixing with SeismicTxType (see internal/signing).
func SerializeUnsigned(tx txtypes.UnsignedShieldedTx) ([]byte, error) {
	out, err := rlp.EncodeToBytes(unsignedFields(tx))
	if err != nil {
		return nil, fmt.Errorf("rlp-encode unsigned envelope: %w", err)
	}
	return out, nil
}

// SerializeSigned RLP-encodes the 16-item list (the 13 envelope fields plus
// y_parity, r, s) and prepends the single SeismicTxType byte. No additional
// length prefix is added.
func SerializeSigned(tx txtypes.UnsignedShieldedTx, sig txtypes.Signature) ([]byte, error) {
	fields := unsignedFields(tx)
	fields = append(fields,
		encodeUint64(uint64(sig.YParity)),
		encodeBigInt(sig.R),
		encodeBigInt(sig.S),
	)

	body, err := rlp.EncodeToBytes(fields)
	if err != nil {
		return nil, fmt.Errorf("rlp-encode signed envelope: %w", err)
	}

	out := make([]byte, 0, len(body)+1)
	out = append(out, SeismicTxType)
	out = append(out, body...)
	return out, nil
}
