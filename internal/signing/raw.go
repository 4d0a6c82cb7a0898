// Package signing computes the two interchangeable signing-hash schemes a
// ShieldedTx can be signed under: the raw type-prefixed keccak digest
// (message_version 0) and the EIP-712 typed-data digest (message_version 2).
// Both schemes sign the same assembled envelope; only the digest differs.
package signing

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/seismicsystems/seismic-go-sdk/internal/txencode"
	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

// RawHash computes keccak256(0x4A || RLP(unsigned 13-field envelope)).
func RawHash(tx txtypes.UnsignedShieldedTx) (common.Hash, error) {
	body, err := txencode.SerializeUnsigned(tx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("serialize unsigned envelope: %w", err)
	}
	preimage := make([]byte, 0, len(body)+1)
	preimage = append(preimage, txtypes.SeismicTxType)
	preimage = append(preimage, body...)
	return crypto.Keccak256Hash(preimage), nil
}

// HashForMessageVersion dispatches to RawHash or EIP712Hash based on
// tx.MessageVersion (0 or txtypes.TypedDataMessageVersion).
func HashForMessageVersion(tx txtypes.UnsignedShieldedTx, chainID uint64) (common.Hash, error) {
	switch tx.MessageVersion {
	case 0:
		return RawHash(tx)
	case txtypes.TypedDataMessageVersion:
		return EIP712Hash(tx, chainID)
	default:
		return common.Hash{}, fmt.Errorf("unsupported message_version %d", tx.MessageVersion)
	}
}
