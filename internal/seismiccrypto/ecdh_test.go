package seismiccrypto

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// Scenario A (ECDH+HKDF known answer).
func TestGenerateAESKeyKnownAnswer(t *testing.T) {
	networkPK, err := seismictypes.CompressedPublicKeyFromHex(
		"0x028e76821eb4d77fd30223ca971c49738eb5b5b71eabe93f96b348fdce788ae5a0")
	if err != nil {
		t.Fatalf("parse network pk: %v", err)
	}

	skBytes, err := hex.DecodeString("a30363336e1bb949185292a2a302de86e447d98f3a43d823c8c234d9e3e5ad77")
	if err != nil {
		t.Fatalf("decode client sk: %v", err)
	}
	clientSK, err := crypto.ToECDSA(skBytes)
	if err != nil {
		t.Fatalf("to ecdsa: %v", err)
	}

	want, err := hex.DecodeString("bf0dd6556618d1bf8d1602bf80be3a0f7cc729973829bb9acb75bd77770d5b90")
	if err != nil {
		t.Fatalf("decode expected key: %v", err)
	}

	got, err := GenerateAESKey(clientSK, networkPK)
	if err != nil {
		t.Fatalf("generate aes key: %v", err)
	}
	if hex.EncodeToString(got.Bytes()) != hex.EncodeToString(want) {
		t.Fatalf("aes key mismatch: got %x want %x", got.Bytes(), want)
	}
}

func TestGenerateAESKeyIsDeterministic(t *testing.T) {
	networkPK, _ := seismictypes.CompressedPublicKeyFromHex(
		"0x028e76821eb4d77fd30223ca971c49738eb5b5b71eabe93f96b348fdce788ae5a0")
	skBytes, _ := hex.DecodeString("a30363336e1bb949185292a2a302de86e447d98f3a43d823c8c234d9e3e5ad77")
	clientSK, _ := crypto.ToECDSA(skBytes)

	a, err := GenerateAESKey(clientSK, networkPK)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	b, err := GenerateAESKey(clientSK, networkPK)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if a != b {
		t.Fatalf("expected repeated calls to be byte-identical: %x vs %x", a.Bytes(), b.Bytes())
	}
}
