// Package directory wraps the viewing-key Directory genesis contract and
// the validator deposit contract's client-side hash helper.
package directory

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/seismicsystems/seismic-go-sdk/internal/abicodec"
	"github.com/seismicsystems/seismic-go-sdk/internal/precompiles"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// Address is the Directory genesis contract's fixed address.
var Address = common.HexToAddress("0x1000000000000000000000000000000000000004")

// ComputeKeyHash returns keccak256(aesKey), the value the Directory stores
// under keyHash(address) for a registered viewing key.
func ComputeKeyHash(aesKey seismictypes.Bytes32) common.Hash {
	return crypto.Keccak256Hash(aesKey.Bytes())
}

// SignedCaller performs the signed-read pipeline (a signed eth_call whose
// calldata and response are both implicitly handled by the caller's
// encryption state) — satisfied by seismicclient.WalletClient.
type SignedCaller interface {
	SignedCall(ctx context.Context, to common.Address, data []byte) ([]byte, error)
}

// ShieldedSender submits a shielded write transaction and returns its hash
// — satisfied by seismicclient.WalletClient.
type ShieldedSender interface {
	SendShielded(ctx context.Context, to common.Address, data []byte) (common.Hash, error)
}

// Directory is a read/write client for the viewing-key Directory contract.
// Plain reads (checkHasKey, keyHash) need no signer; getKey and setKey
// require the signed-read and shielded-write pipelines respectively.
type Directory struct {
	caller  precompiles.Caller
	signed  SignedCaller
	shielded ShieldedSender
}

// New builds a Directory client. signed and shielded may be nil if the
// caller only needs the plain read methods.
func New(caller precompiles.Caller, signed SignedCaller, shielded ShieldedSender) *Directory {
	return &Directory{caller: caller, signed: signed, shielded: shielded}
}

// CheckHasKey reports whether account has registered a viewing key.
func (d *Directory) CheckHasKey(ctx context.Context, account common.Address) (bool, error) {
	method := abicodec.DirectoryMethods["checkHasKey"]
	data, err := abicodec.EncodeCalldata(method, account)
	if err != nil {
		return false, fmt.Errorf("encode checkHasKey calldata: %w", err)
	}
	out, err := d.plainCall(ctx, data)
	if err != nil {
		return false, err
	}
	values, err := abicodec.DecodeOutput(method, out)
	if err != nil {
		return false, fmt.Errorf("decode checkHasKey result: %w", err)
	}
	return values[0].(bool), nil
}

// GetKeyHash returns the keccak256 hash of account's registered viewing
// key (zero if none is registered).
func (d *Directory) GetKeyHash(ctx context.Context, account common.Address) (common.Hash, error) {
	method := abicodec.DirectoryMethods["keyHash"]
	data, err := abicodec.EncodeCalldata(method, account)
	if err != nil {
		return common.Hash{}, fmt.Errorf("encode keyHash calldata: %w", err)
	}
	out, err := d.plainCall(ctx, data)
	if err != nil {
		return common.Hash{}, err
	}
	values, err := abicodec.DecodeOutput(method, out)
	if err != nil {
		return common.Hash{}, fmt.Errorf("decode keyHash result: %w", err)
	}
	hash, ok := values[0].([32]byte)
	if !ok {
		return common.Hash{}, fmt.Errorf("unexpected keyHash result shape")
	}
	return common.Hash(hash), nil
}

// GetViewingKey fetches the caller's own viewing key via the signed-read
// pipeline. It errors if no key is registered (the contract returns zero).
func (d *Directory) GetViewingKey(ctx context.Context) (seismictypes.Bytes32, error) {
	if d.signed == nil {
		return seismictypes.Bytes32{}, fmt.Errorf("directory: no signed caller configured")
	}
	method := abicodec.DirectoryMethods["getKey"]
	data, err := abicodec.EncodeCalldata(method)
	if err != nil {
		return seismictypes.Bytes32{}, fmt.Errorf("encode getKey calldata: %w", err)
	}
	out, err := d.signed.SignedCall(ctx, Address, data)
	if err != nil {
		return seismictypes.Bytes32{}, fmt.Errorf("signed call getKey: %w", err)
	}
	values, err := abicodec.DecodeOutput(method, out)
	if err != nil {
		return seismictypes.Bytes32{}, fmt.Errorf("decode getKey result: %w", err)
	}
	n, ok := values[0].(*big.Int)
	if !ok || n.Sign() == 0 {
		return seismictypes.Bytes32{}, fmt.Errorf("directory: no viewing key registered")
	}
	keyBytes := make([]byte, 32)
	n.FillBytes(keyBytes)
	return seismictypes.NewBytes32(keyBytes)
}

// RegisterViewingKey registers aesKey as the caller's viewing key via the
// shielded write path and returns the resulting transaction hash.
func (d *Directory) RegisterViewingKey(ctx context.Context, aesKey seismictypes.Bytes32) (common.Hash, error) {
	if d.shielded == nil {
		return common.Hash{}, fmt.Errorf("directory: no shielded sender configured")
	}
	method := abicodec.DirectoryMethods["setKey"]
	data, err := abicodec.EncodeCalldata(method, new(big.Int).SetBytes(aesKey.Bytes()))
	if err != nil {
		return common.Hash{}, fmt.Errorf("encode setKey calldata: %w", err)
	}
	return d.shielded.SendShielded(ctx, Address, data)
}

func (d *Directory) plainCall(ctx context.Context, data []byte) ([]byte, error) {
	address := Address
	msg := ethereum.CallMsg{To: &address, Data: data}
	return d.caller.CallContract(ctx, msg, nil)
}
