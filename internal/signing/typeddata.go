package signing

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

// domainTypes and txSeismicTypes mirror the EIP712Domain/TxSeismic type
// arrays DomainSeparator/StructHash hash over, exposed here as the
// eth_signTypedData_v4-compatible JSON shape an external wallet expects.
var (
	domainTypes = []apitypes.Type{
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	}
	txSeismicTypes = []apitypes.Type{
		{Name: "chainId", Type: "uint64"},
		{Name: "nonce", Type: "uint64"},
		{Name: "gasPrice", Type: "uint128"},
		{Name: "gasLimit", Type: "uint64"},
		{Name: "to", Type: "address"},
		{Name: "value", Type: "uint256"},
		{Name: "input", Type: "bytes"},
		{Name: "encryptionPubkey", Type: "bytes"},
		{Name: "encryptionNonce", Type: "uint96"},
		{Name: "messageVersion", Type: "uint8"},
		{Name: "recentBlockHash", Type: "bytes32"},
		{Name: "expiresAtBlock", Type: "uint64"},
		{Name: "signedRead", Type: "bool"},
	}
)

// BuildTypedData renders tx as an apitypes.TypedData value — the
// JSON-serializable document eth_signTypedData_v4 (MetaMask / WalletConnect)
// expects — for display or handoff to an external signer. It carries the
// same domain/struct field values DomainSeparator/StructHash hash; it does
// not itself produce the signing digest.
func BuildTypedData(tx txtypes.UnsignedShieldedTx, chainID uint64) apitypes.TypedData {
	to := verifyingContract
	if tx.To != nil {
		to = *tx.To
	}

	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": domainTypes,
			"TxSeismic":    txSeismicTypes,
		},
		PrimaryType: "TxSeismic",
		Domain: apitypes.TypedDataDomain{
			Name:              domainName,
			Version:           domainVersion,
			ChainId:           math.NewHexOrDecimal256(int64(chainID)),
			VerifyingContract: verifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"chainId":          bigIntOrZero(tx.ChainID).String(),
			"nonce":            tx.Nonce,
			"gasPrice":         bigIntOrZero(tx.GasPrice).String(),
			"gasLimit":         tx.Gas,
			"to":               to.Hex(),
			"value":            bigIntOrZero(tx.Value).String(),
			"input":            hexutil.Encode(tx.Data),
			"encryptionPubkey": hexutil.Encode(tx.EncryptionPubkey.Bytes()),
			"encryptionNonce":  new(big.Int).SetBytes(tx.EncryptionNonce.Bytes()).String(),
			"messageVersion":   tx.MessageVersion,
			"recentBlockHash":  hexutil.Encode(tx.RecentBlockHash.Bytes()),
			"expiresAtBlock":   tx.ExpiresAtBlock,
			"signedRead":       tx.SignedRead,
		},
	}
}
