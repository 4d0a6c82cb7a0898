package seismicclient

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismiccrypto"
	"github.com/seismicsystems/seismic-go-sdk/internal/signing"
	"github.com/seismicsystems/seismic-go-sdk/internal/txencode"
	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

// DefaultGas is the gas limit used when a caller doesn't supply one, both
// for sends and for signed reads.
const DefaultGas = 30_000_000

// WalletClient adds signing and the full send/signed-read pipelines (C9–C11)
// on top of PublicClient. It owns one EncryptionState (C2) for its whole
// session, derived once against the node's TEE public key.
type WalletClient struct {
	*PublicClient

	signingKey *ecdsa.PrivateKey
	sender     common.Address
	encryption *txtypes.EncryptionState
}

// NewWalletClient builds a WalletClient, deriving the session's AES key
// immediately against the node's advertised TEE public key.
func NewWalletClient(ctx context.Context, rpcURL string, chainID uint64, privateKeyHex string) (*WalletClient, error) {
	sk, err := crypto.HexToECDSA(trimHexPrefix(privateKeyHex))
	if err != nil {
		return nil, fmt.Errorf("[seismicclient] parse private key: %w", err)
	}

	pub := NewPublicClient(rpcURL, chainID)
	enc, err := newSessionEncryption(ctx, pub.Transport, sk)
	if err != nil {
		return nil, err
	}

	return &WalletClient{
		PublicClient: pub,
		signingKey:   sk,
		sender:       crypto.PubkeyToAddress(sk.PublicKey),
		encryption:   enc,
	}, nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// Sender is this wallet's signing address.
func (w *WalletClient) Sender() common.Address {
	return w.sender
}

// sendParams bundles the optional overrides shared by send/debug-send/read.
type sendParams struct {
	value    *big.Int
	gas      *uint64
	gasPrice *big.Int
}

func (w *WalletClient) prepare(ctx context.Context, to common.Address, data []byte, messageVersion uint8, signedRead bool, p sendParams) (txtypes.SignedShieldedTx, txtypes.TxSeismicMetadata, []byte, error) {
	metadata, err := BuildMetadata(ctx, w.Transport, MetadataParams{
		Sender:           w.sender,
		To:               &to,
		EncryptionPubkey: w.encryption.EncryptionPubkey,
		Value:            p.value,
		MessageVersion:   messageVersion,
		SignedRead:       signedRead,
	})
	if err != nil {
		return txtypes.SignedShieldedTx{}, txtypes.TxSeismicMetadata{}, nil, err
	}

	aad, err := txencode.BuildAAD(metadata)
	if err != nil {
		return txtypes.SignedShieldedTx{}, txtypes.TxSeismicMetadata{}, nil, fmt.Errorf("[seismicclient] build aad: %w", err)
	}

	ciphertext, err := seismiccrypto.Encrypt(w.encryption.AESKey, metadata.Seismic.EncryptionNonce, data, aad)
	if err != nil {
		return txtypes.SignedShieldedTx{}, txtypes.TxSeismicMetadata{}, nil, fmt.Errorf("[seismicclient] encrypt calldata: %w", err)
	}

	resolvedGasPrice := p.gasPrice
	if resolvedGasPrice == nil {
		resolvedGasPrice, err = gasPrice(ctx, w.Transport)
		if err != nil {
			return txtypes.SignedShieldedTx{}, txtypes.TxSeismicMetadata{}, nil, fmt.Errorf("[seismicclient] gas price: %w", err)
		}
	}
	resolvedGas := uint64(DefaultGas)
	if p.gas != nil {
		resolvedGas = *p.gas
	}

	unsigned := txtypes.UnsignedShieldedTx{
		ChainID:          metadata.Legacy.ChainID,
		Nonce:            metadata.Legacy.Nonce,
		GasPrice:         resolvedGasPrice,
		Gas:              resolvedGas,
		To:               &to,
		Value:            metadata.Legacy.Value,
		EncryptionPubkey: metadata.Seismic.EncryptionPubkey,
		EncryptionNonce:  metadata.Seismic.EncryptionNonce,
		MessageVersion:   metadata.Seismic.MessageVersion,
		RecentBlockHash:  metadata.Seismic.RecentBlockHash,
		ExpiresAtBlock:   metadata.Seismic.ExpiresAtBlock,
		SignedRead:       signedRead,
		Data:             ciphertext,
	}

	digest, err := signing.HashForMessageVersion(unsigned, metadata.Legacy.ChainID.Uint64())
	if err != nil {
		return txtypes.SignedShieldedTx{}, txtypes.TxSeismicMetadata{}, nil, fmt.Errorf("[seismicclient] signing hash: %w", err)
	}

	sig, err := crypto.Sign(digest.Bytes(), w.signingKey)
	if err != nil {
		return txtypes.SignedShieldedTx{}, txtypes.TxSeismicMetadata{}, nil, fmt.Errorf("[seismicclient] sign digest: %w", err)
	}

	signature := txtypes.Signature{
		YParity: sig[64],
		R:       new(big.Int).SetBytes(sig[0:32]),
		S:       new(big.Int).SetBytes(sig[32:64]),
	}

	signedBytes, err := txencode.SerializeSigned(unsigned, signature)
	if err != nil {
		return txtypes.SignedShieldedTx{}, txtypes.TxSeismicMetadata{}, nil, fmt.Errorf("[seismicclient] serialize signed envelope: %w", err)
	}

	return txtypes.SignedShieldedTx{UnsignedShieldedTx: unsigned, Signature: signature}, metadata, signedBytes, nil
}

// SendShielded builds, encrypts, signs, and submits a shielded write
// transaction, returning its hash (C10).
func (w *WalletClient) SendShielded(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	_, _, signedBytes, err := w.prepare(ctx, to, data, 0, false, sendParams{})
	if err != nil {
		return common.Hash{}, err
	}
	return sendRawTransaction(ctx, w.Transport, signedBytes)
}

// SendShieldedWithOptions is SendShielded with explicit value/gas/gas-price
// overrides and a choice of signing scheme (message_version 0 or 2).
func (w *WalletClient) SendShieldedWithOptions(ctx context.Context, to common.Address, data []byte, value *big.Int, gas *uint64, gasPrice *big.Int, messageVersion uint8) (common.Hash, error) {
	_, _, signedBytes, err := w.prepare(ctx, to, data, messageVersion, false, sendParams{value: value, gas: gas, gasPrice: gasPrice})
	if err != nil {
		return common.Hash{}, err
	}
	return sendRawTransaction(ctx, w.Transport, signedBytes)
}

// SendDebug is the debug send variant: it submits exactly as SendShielded
// does but also returns the plaintext call and the fully built
// SignedShieldedTx for observability.
func (w *WalletClient) SendDebug(ctx context.Context, to common.Address, data []byte) (txtypes.DebugWriteResult, error) {
	signedTx, metadata, signedBytes, err := w.prepare(ctx, to, data, 0, false, sendParams{})
	if err != nil {
		return txtypes.DebugWriteResult{}, err
	}

	txHash, err := sendRawTransaction(ctx, w.Transport, signedBytes)
	if err != nil {
		return txtypes.DebugWriteResult{}, err
	}

	return txtypes.DebugWriteResult{
		Plaintext:  txtypes.PlaintextTx{Metadata: metadata, Data: data},
		ShieldedTx: signedTx,
		TxHash:     txHash,
	}, nil
}

// SignedCall performs the signed-read pipeline (C11): builds and signs an
// envelope with signed_read=true, submits it as the first eth_call
// parameter, and AES-GCM-decrypts a non-empty response with the same AAD.
func (w *WalletClient) SignedCall(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	_, metadata, signedBytes, err := w.prepare(ctx, to, data, 0, true, sendParams{})
	if err != nil {
		return nil, err
	}

	response, err := ethCall(ctx, w.Transport, signedBytes)
	if err != nil {
		return nil, err
	}
	if len(response) == 0 {
		return nil, nil
	}

	aad, err := txencode.BuildAAD(metadata)
	if err != nil {
		return nil, fmt.Errorf("[seismicclient] build aad: %w", err)
	}

	plaintext, err := seismiccrypto.Decrypt(w.encryption.AESKey, metadata.Seismic.EncryptionNonce, response, aad)
	if err != nil {
		return nil, fmt.Errorf("[seismicclient] decrypt signed-read response: %w", err)
	}
	return plaintext, nil
}
