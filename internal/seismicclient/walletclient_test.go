package seismicclient

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const anvilKey0Hex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func newFakeWalletTransport() *fakeTransport {
	ft := newFakeTransport()
	ft.responses["seismic_getTeePublicKey"] = `"0x028e76821eb4d77fd30223ca971c49738eb5b5b71eabe93f96b348fdce788ae5a0"`
	return ft
}

func newTestWalletClient(t *testing.T, ft Transport) *WalletClient {
	t.Helper()
	sk, err := crypto.HexToECDSA(anvilKey0Hex)
	if err != nil {
		t.Fatalf("parse anvil key: %v", err)
	}
	pub := &PublicClient{Transport: ft, ChainID: 5124}
	enc, err := newSessionEncryption(context.Background(), ft, sk)
	if err != nil {
		t.Fatalf("session encryption: %v", err)
	}
	return &WalletClient{
		PublicClient: pub,
		signingKey:   sk,
		sender:       crypto.PubkeyToAddress(sk.PublicKey),
		encryption:   enc,
	}
}

func TestSendShieldedSubmitsSignedEnvelope(t *testing.T) {
	ft := newFakeWalletTransport()
	ft.responses["eth_sendRawTransaction"] = `"0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"`

	wc := newTestWalletClient(t, ft)
	to := common.HexToAddress("0xd3e87636b571997a6a268d5dd89572f35b79cc0")

	hash, err := wc.SendShielded(context.Background(), to, []byte("hello"))
	if err != nil {
		t.Fatalf("send shielded: %v", err)
	}
	if hash == (common.Hash{}) {
		t.Fatal("expected non-zero tx hash")
	}

	found := false
	for _, m := range ft.calls {
		if m == "eth_sendRawTransaction" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected eth_sendRawTransaction to be called")
	}
}

func TestSignedCallReturnsNilOnEmptyResponse(t *testing.T) {
	ft := newFakeWalletTransport()
	ft.responses["eth_call"] = `"0x"`

	wc := newTestWalletClient(t, ft)
	to := common.HexToAddress("0xd3e87636b571997a6a268d5dd89572f35b79cc0")

	result, err := wc.SignedCall(context.Background(), to, []byte("ping"))
	if err != nil {
		t.Fatalf("signed call: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result for empty response, got %v", result)
	}
}

func TestSendShieldedDerivesSenderFromKey(t *testing.T) {
	ft := newFakeWalletTransport()
	wc := newTestWalletClient(t, ft)
	sk, err := crypto.HexToECDSA(anvilKey0Hex)
	if err != nil {
		t.Fatalf("parse key: %v", err)
	}
	expected := crypto.PubkeyToAddress(sk.PublicKey)
	if wc.Sender() != expected {
		t.Fatalf("expected sender %s, got %s", expected.Hex(), wc.Sender().Hex())
	}
}
