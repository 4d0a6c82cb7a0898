package directory

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type fakeCaller struct {
	response []byte
}

func (f *fakeCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return f.response, nil
}

func TestCheckHasKeyDecodesBool(t *testing.T) {
	boolType, _ := abi.NewType("bool", "", nil)
	args := abi.Arguments{{Type: boolType}}
	packed, err := args.Pack(true)
	if err != nil {
		t.Fatalf("pack bool: %v", err)
	}

	d := New(&fakeCaller{response: packed}, nil, nil)
	got, err := d.CheckHasKey(context.Background(), common.HexToAddress("0xd3e87636b571997a6a268d5dd89572f35b79cc0"))
	if err != nil {
		t.Fatalf("check has key: %v", err)
	}
	if !got {
		t.Fatal("expected true")
	}
}

func TestComputeKeyHashMatchesKeccak(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	hash := ComputeKeyHash(key)
	if hash == (common.Hash{}) {
		t.Fatal("expected non-zero hash")
	}
	if want := crypto.Keccak256Hash(key[:]); hash != want {
		t.Fatalf("expected keccak256(key) %s, got %s", want.Hex(), hash.Hex())
	}
}
