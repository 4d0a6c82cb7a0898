package txencode

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

func sampleMetadata() txtypes.TxSeismicMetadata {
	to := common.HexToAddress("0xd3e87636b571997a6a268d5dd89572f35b79cc0")
	pk, _ := seismictypes.CompressedPublicKeyFromHex(
		"0x028e76821eb4d77fd30223ca971c49738eb5b5b71eabe93f96b348fdce788ae5a0")
	nonce, _ := seismictypes.EncryptionNonceFromHex("0x46a2b60aaaaaaaaa000076a6")
	return txtypes.TxSeismicMetadata{
		Sender: common.HexToAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"),
		Legacy: txtypes.LegacyFields{
			ChainID: big.NewInt(31337),
			Nonce:   2,
			To:      &to,
			Value:   big.NewInt(1_000_000_000_000_000),
		},
		Seismic: txtypes.SeismicElements{
			EncryptionPubkey: pk,
			EncryptionNonce:  nonce,
			MessageVersion:   0,
			RecentBlockHash:  common.HexToHash("0x934207180000000000000000000000000000000000000000000000000000009f90"),
			ExpiresAtBlock:   100,
			SignedRead:       false,
		},
	}
}

func TestBuildAADChangesWithAnyField(t *testing.T) {
	base := sampleMetadata()
	baseAAD, err := BuildAAD(base)
	if err != nil {
		t.Fatalf("build aad: %v", err)
	}

	changed := sampleMetadata()
	changed.Legacy.Nonce++
	changedAAD, err := BuildAAD(changed)
	if err != nil {
		t.Fatalf("build aad (changed): %v", err)
	}

	if string(baseAAD) == string(changedAAD) {
		t.Fatal("expected aad to change when nonce changes")
	}

	mutations := map[string]func(m *txtypes.TxSeismicMetadata){
		"sender":            func(m *txtypes.TxSeismicMetadata) { m.Sender[19] ^= 0x01 },
		"chain_id":          func(m *txtypes.TxSeismicMetadata) { m.Legacy.ChainID = big.NewInt(31338) },
		"to":                func(m *txtypes.TxSeismicMetadata) { m.Legacy.To = nil },
		"value":             func(m *txtypes.TxSeismicMetadata) { m.Legacy.Value = big.NewInt(1) },
		"encryption_pubkey": func(m *txtypes.TxSeismicMetadata) { m.Seismic.EncryptionPubkey[32] ^= 0x01 },
		"encryption_nonce":  func(m *txtypes.TxSeismicMetadata) { m.Seismic.EncryptionNonce[11] ^= 0x01 },
		"message_version":   func(m *txtypes.TxSeismicMetadata) { m.Seismic.MessageVersion = 2 },
		"recent_block_hash": func(m *txtypes.TxSeismicMetadata) { m.Seismic.RecentBlockHash[0] ^= 0x01 },
		"expires_at_block":  func(m *txtypes.TxSeismicMetadata) { m.Seismic.ExpiresAtBlock++ },
		"signed_read":       func(m *txtypes.TxSeismicMetadata) { m.Seismic.SignedRead = true },
	}
	for field, mutate := range mutations {
		meta := sampleMetadata()
		mutate(&meta)
		aad, err := BuildAAD(meta)
		if err != nil {
			t.Fatalf("build aad (%s changed): %v", field, err)
		}
		if string(aad) == string(baseAAD) {
			t.Fatalf("expected aad to change when %s changes", field)
		}
	}
}

func TestBuildAADIsDeterministic(t *testing.T) {
	meta := sampleMetadata()
	a, err := BuildAAD(meta)
	if err != nil {
		t.Fatalf("build aad (1): %v", err)
	}
	b, err := BuildAAD(meta)
	if err != nil {
		t.Fatalf("build aad (2): %v", err)
	}
	if string(a) != string(b) {
		t.Fatal("expected repeated aad builds to be identical")
	}
}
