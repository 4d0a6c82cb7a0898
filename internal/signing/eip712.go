package signing

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

// domainName, domainVersion and verifyingContract are fixed per the wire
// contract; only chainId varies per call.
const (
	domainName    = "Seismic Transaction"
	domainVersion = "2"
)

// verifyingContract is the zero address, per spec.
var verifyingContract = common.Address{}

var (
	domainTypeHash = crypto.Keccak256(
		[]byte("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"),
	)
	txStructTypeHash = crypto.Keccak256(
		[]byte("TxSeismic(uint64 chainId,uint64 nonce,uint128 gasPrice,uint64 gasLimit,address to,uint256 value,bytes input,bytes encryptionPubkey,uint96 encryptionNonce,uint8 messageVersion,bytes32 recentBlockHash,uint64 expiresAtBlock,bool signedRead)"),
	)
)

// DomainSeparator builds the EIP-712 domain separator for chainID, following
// the canonical EIP712Domain type and the fixed name/version/verifyingContract
// triple this chain uses for every transaction.
func DomainSeparator(chainID uint64) common.Hash {
	nameHash := crypto.Keccak256(([]byte)(domainName))
	versionHash := crypto.Keccak256([]byte(domainVersion))

	buf := make([]byte, 0, 32*5)
	buf = append(buf, domainTypeHash...)
	buf = append(buf, nameHash...)
	buf = append(buf, versionHash...)
	buf = append(buf, padUint256(new(big.Int).SetUint64(chainID))...)
	buf = append(buf, padAddress(verifyingContract)...)

	return crypto.Keccak256Hash(buf)
}

// StructHash builds the TxSeismic struct hash: static fields left-padded to
// 32 bytes, dynamic bytes fields (input, encryptionPubkey) replaced by their
// keccak digest, and encryptionNonce interpreted as a big-endian integer.
func StructHash(tx txtypes.UnsignedShieldedTx) common.Hash {
	to := common.Address{}
	if tx.To != nil {
		to = *tx.To
	}

	buf := make([]byte, 0, 32*14)
	buf = append(buf, txStructTypeHash...)
	buf = append(buf, padUint256(bigIntOrZero(tx.ChainID))...)
	buf = append(buf, padUint256(new(big.Int).SetUint64(tx.Nonce))...)
	buf = append(buf, padUint256(bigIntOrZero(tx.GasPrice))...)
	buf = append(buf, padUint256(new(big.Int).SetUint64(tx.Gas))...)
	buf = append(buf, padAddress(to)...)
	buf = append(buf, padUint256(bigIntOrZero(tx.Value))...)
	buf = append(buf, keccakDynamicBytes(tx.Data)...)
	buf = append(buf, keccakDynamicBytes(tx.EncryptionPubkey.Bytes())...)
	buf = append(buf, padBytesAsUint(tx.EncryptionNonce.Bytes())...)
	buf = append(buf, padUint256(new(big.Int).SetUint64(uint64(tx.MessageVersion)))...)
	buf = append(buf, padBytes32(tx.RecentBlockHash)...)
	buf = append(buf, padUint256(new(big.Int).SetUint64(tx.ExpiresAtBlock))...)
	buf = append(buf, padBool(tx.SignedRead)...)

	return crypto.Keccak256Hash(buf)
}

// EIP712Hash computes keccak(0x19 0x01 || domainSeparator || structHash).
func EIP712Hash(tx txtypes.UnsignedShieldedTx, chainID uint64) (common.Hash, error) {
	domainSep := DomainSeparator(chainID)
	structHash := StructHash(tx)

	buf := make([]byte, 0, 2+32+32)
	buf = append(buf, 0x19, 0x01)
	buf = append(buf, domainSep.Bytes()...)
	buf = append(buf, structHash.Bytes()...)

	return crypto.Keccak256Hash(buf), nil
}

func bigIntOrZero(n *big.Int) *big.Int {
	if n == nil {
		return new(big.Int)
	}
	return n
}

func padUint256(n *big.Int) []byte {
	return common.LeftPadBytes(n.Bytes(), 32)
}

func padAddress(addr common.Address) []byte {
	return common.LeftPadBytes(addr.Bytes(), 32)
}

func padBool(b bool) []byte {
	if b {
		return padUint256(big.NewInt(1))
	}
	return padUint256(big.NewInt(0))
}

func padBytes32(h common.Hash) []byte {
	return h.Bytes()
}

// padBytesAsUint treats raw (big-endian) bytes as an unsigned integer and
// left-pads to 32 bytes, used for encryptionNonce per the struct-hash rule.
func padBytesAsUint(b []byte) []byte {
	return common.LeftPadBytes(new(big.Int).SetBytes(b).Bytes(), 32)
}

func keccakDynamicBytes(b []byte) []byte {
	return crypto.Keccak256(b)
}
