// Package txtypes models the Seismic shielded transaction envelope: the
// legacy Ethereum fields every transaction carries, the Seismic-specific
// encryption metadata, and the assembled unsigned/signed forms that
// internal/txencode and internal/signing operate on.
package txtypes

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// SeismicTxType is the transaction envelope's type byte, 0x4A ("J" — the
// "ShieldedTx" marker), written as the first byte of both the raw-hash
// preimage and the final signed wire envelope.
const SeismicTxType = 0x4A

// TypedDataMessageVersion is the message_version value a client sets when it
// wants the node to verify the envelope against its EIP-712 digest instead of
// the raw keccak digest.
const TypedDataMessageVersion = 2

// LegacyFields are the Ethereum-legacy fields every Seismic transaction
// still carries.
type LegacyFields struct {
	ChainID  *big.Int
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	To       *common.Address // nil for contract creation
	Value    *big.Int
	Data     []byte // plaintext calldata before encryption
}

// SeismicElements are the fields unique to the shielded envelope.
type SeismicElements struct {
	EncryptionPubkey seismictypes.CompressedPublicKey
	EncryptionNonce  seismictypes.EncryptionNonce
	MessageVersion   uint8
	RecentBlockHash  common.Hash
	ExpiresAtBlock   uint64
	SignedRead       bool
}

// TxSeismicMetadata bundles everything needed to build an envelope besides
// the plaintext calldata: the legacy fields and the Seismic elements.
type TxSeismicMetadata struct {
	Legacy   LegacyFields
	Seismic  SeismicElements
	Sender   common.Address
}

// UnsignedShieldedTx is the 13-field envelope body before signing. Data is
// the already-AES-GCM-encrypted calldata (ciphertext || tag).
type UnsignedShieldedTx struct {
	ChainID          *big.Int
	Nonce            uint64
	GasPrice         *big.Int
	Gas              uint64
	To               *common.Address
	Value            *big.Int
	EncryptionPubkey seismictypes.CompressedPublicKey
	EncryptionNonce  seismictypes.EncryptionNonce
	MessageVersion   uint8
	RecentBlockHash  common.Hash
	ExpiresAtBlock   uint64
	SignedRead       bool
	Data             []byte // encrypted
}

// Signature is a secp256k1 signature over a Seismic signing hash. YParity is
// the raw recovery bit (0 or 1) — Seismic never applies the +27/EIP-155
// adjustments Ethereum legacy signatures use.
type Signature struct {
	YParity uint8
	R       *big.Int
	S       *big.Int
}

// SignedShieldedTx is an UnsignedShieldedTx plus its signature: the 16-item
// list RLP-encoded and prefixed with SeismicTxType for wire transmission.
type SignedShieldedTx struct {
	UnsignedShieldedTx
	Signature
}

// EncryptionState is the session entity C2 produces: the client's own
// ephemeral keypair (bound into every envelope as encryption_pubkey) and the
// AES-256 key it shares with the TEE. Created once per session, immutable
// thereafter, and reused by C3 for every AAD-bound AES-GCM encrypt/decrypt
// for the life of the session.
type EncryptionState struct {
	AESKey               seismictypes.Bytes32
	EncryptionPubkey     seismictypes.CompressedPublicKey
	EncryptionPrivateKey *ecdsa.PrivateKey
}

// PlaintextTx is the pre-encryption view of a transaction, returned by the
// debug send path alongside the encrypted SignedShieldedTx so a caller can
// inspect exactly what was sent without re-deriving the encryption key.
type PlaintextTx struct {
	Metadata TxSeismicMetadata
	Data     []byte // plaintext calldata
}

// DebugWriteResult is the return value of the debug send pipeline: the
// plaintext call, the signed (encrypted) envelope actually transmitted, and
// the resulting transaction hash.
type DebugWriteResult struct {
	Plaintext  PlaintextTx
	ShieldedTx SignedShieldedTx
	TxHash     common.Hash
}
