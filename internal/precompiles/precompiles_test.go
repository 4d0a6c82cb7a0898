package precompiles

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// fakeCaller records the last call message and returns a fixed response.
type fakeCaller struct {
	lastMsg  ethereum.CallMsg
	response []byte
	err      error
}

func (f *fakeCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.lastMsg = msg
	return f.response, f.err
}

func TestRNGEncodesLengthAndPersonalization(t *testing.T) {
	caller := &fakeCaller{response: []byte{0x2a}}
	out, err := RNG(context.Background(), caller, 4, []byte("salt"))
	if err != nil {
		t.Fatalf("rng: %v", err)
	}
	wantData := append([]byte{0x00, 0x00, 0x00, 0x04}, []byte("salt")...)
	if !bytes.Equal(caller.lastMsg.Data, wantData) {
		t.Fatalf("calldata mismatch: got %x want %x", caller.lastMsg.Data, wantData)
	}
	if caller.lastMsg.From != (ethereum.CallMsg{}).From {
		t.Fatal("expected unsigned call with zero-value From")
	}
	if len(out) != 32 || out[31] != 0x2a {
		t.Fatalf("expected right-decoded 32-byte result, got %x", out)
	}
}

func TestRNGRejectsOutOfRangeLength(t *testing.T) {
	caller := &fakeCaller{}
	if _, err := RNG(context.Background(), caller, 0, nil); err == nil {
		t.Fatal("expected error for num_bytes=0")
	}
	if _, err := RNG(context.Background(), caller, 33, nil); err == nil {
		t.Fatal("expected error for num_bytes=33")
	}
}

func TestECDHEncodesSecretThenPubkey(t *testing.T) {
	secret, _ := seismictypes.NewBytes32(bytes.Repeat([]byte{0x11}, 32))
	pubkey, _ := seismictypes.NewCompressedPublicKey(append([]byte{0x02}, bytes.Repeat([]byte{0x22}, 32)...))
	want := make([]byte, 32)
	caller := &fakeCaller{response: want}

	_, err := ECDH(context.Background(), caller, secret, pubkey)
	if err != nil {
		t.Fatalf("ecdh: %v", err)
	}
	if len(caller.lastMsg.Data) != 65 {
		t.Fatalf("expected 65-byte calldata, got %d", len(caller.lastMsg.Data))
	}
	if !bytes.Equal(caller.lastMsg.Data[:32], secret.Bytes()) {
		t.Fatal("expected secret to be encoded first")
	}
	if !bytes.Equal(caller.lastMsg.Data[32:], pubkey.Bytes()) {
		t.Fatal("expected pubkey to follow secret")
	}
}

func TestAESGasCostLinearInPayload(t *testing.T) {
	base := AESGasCost(0)
	if base != aesGCMBaseGas {
		t.Fatalf("expected base-only cost for empty payload, got %d", base)
	}
	oneBlock := AESGasCost(16)
	if oneBlock != aesGCMBaseGas+aesGCMPerBlock {
		t.Fatalf("expected one block of cost, got %d", oneBlock)
	}
	partialBlock := AESGasCost(17)
	if partialBlock != aesGCMBaseGas+2*aesGCMPerBlock {
		t.Fatalf("expected ceil-division to round up to two blocks, got %d", partialBlock)
	}
}

func TestECDHGasCostIsFlat(t *testing.T) {
	if ECDHGasCost != 3120 {
		t.Fatalf("expected flat 3120 gas, got %d", ECDHGasCost)
	}
}

func TestSecp256k1SignEncodesSkThenHash(t *testing.T) {
	sk, _ := seismictypes.NewBytes32(bytes.Repeat([]byte{0x33}, 32))
	hash, _ := seismictypes.NewBytes32(bytes.Repeat([]byte{0x44}, 32))
	caller := &fakeCaller{response: make([]byte, 65)}

	_, err := Secp256k1Sign(context.Background(), caller, sk, hash)
	if err != nil {
		t.Fatalf("secp256k1 sign: %v", err)
	}
	if !bytes.Equal(caller.lastMsg.Data[:32], sk.Bytes()) || !bytes.Equal(caller.lastMsg.Data[32:], hash.Bytes()) {
		t.Fatal("expected (sk, msghash) encoding order")
	}
}
