package signing

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
	"github.com/seismicsystems/seismic-go-sdk/internal/txtypes"
)

// anvilKey0 is the well-known first default account of anvil/hardhat's test
// mnemonic — it appears as the signer in Scenario C (raw signed envelope).
const anvilKey0Hex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func scenarioCTx() txtypes.UnsignedShieldedTx {
	to := common.HexToAddress("0xd3e87636b571997a6a268d5dd89572f35b79cc0")
	pk, _ := seismictypes.CompressedPublicKeyFromHex(
		"0x028e76821eb4d77fd30223ca971c49738eb5b5b71eabe93f96b348fdce788ae5a0")
	nonce, _ := seismictypes.EncryptionNonceFromHex("0x46a2b60aaaaaaaaa000076a6")
	return txtypes.UnsignedShieldedTx{
		ChainID:          big.NewInt(31337),
		Nonce:            2,
		GasPrice:         big.NewInt(1_000_000_000),
		Gas:              100_000,
		To:               &to,
		Value:            big.NewInt(1_000_000_000_000_000),
		EncryptionPubkey: pk,
		EncryptionNonce:  nonce,
		MessageVersion:   0,
		RecentBlockHash:  common.HexToHash("0x9342071800000000000000000000000000000000000000000000000000009f90"),
		ExpiresAtBlock:   100,
		SignedRead:       false,
		Data:             []byte{0xbf, 0x64, 0x5e, 0x68},
	}
}

// Scenario C (raw signed envelope, anvil key #0) — spec.md elides several
// input fields with "…" and only states the output begins with 0x4af90112,
// so this test checks the structural properties it gives in full rather
// than a byte-exact match against an external fixture it doesn't include.
func TestRawHashSignRecoversAnvilKey0(t *testing.T) {
	skBytes, err := hex.DecodeString(anvilKey0Hex)
	if err != nil {
		t.Fatalf("decode anvil key: %v", err)
	}
	sk, err := crypto.ToECDSA(skBytes)
	if err != nil {
		t.Fatalf("to ecdsa: %v", err)
	}
	wantAddr := crypto.PubkeyToAddress(sk.PublicKey)

	tx := scenarioCTx()
	hash, err := RawHash(tx)
	if err != nil {
		t.Fatalf("raw hash: %v", err)
	}

	sig, err := crypto.Sign(hash.Bytes(), sk)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if sig[64] != 0 && sig[64] != 1 {
		t.Fatalf("expected raw y_parity in {0,1}, got %d", sig[64])
	}

	pub, err := crypto.SigToPub(hash.Bytes(), sig)
	if err != nil {
		t.Fatalf("recover pubkey: %v", err)
	}
	gotAddr := crypto.PubkeyToAddress(*pub)
	if gotAddr != wantAddr {
		t.Fatalf("recovered address mismatch: got %s want %s", gotAddr.Hex(), wantAddr.Hex())
	}
}

func TestRawHashChangesOnAnyFieldChange(t *testing.T) {
	base := scenarioCTx()
	baseHash, err := RawHash(base)
	if err != nil {
		t.Fatalf("raw hash: %v", err)
	}

	changed := scenarioCTx()
	changed.ExpiresAtBlock++
	changedHash, err := RawHash(changed)
	if err != nil {
		t.Fatalf("raw hash (changed): %v", err)
	}

	if baseHash == changedHash {
		t.Fatal("expected raw hash to change when expires_at_block changes")
	}

	mutations := map[string]func(tx *txtypes.UnsignedShieldedTx){
		"chain_id":          func(tx *txtypes.UnsignedShieldedTx) { tx.ChainID = big.NewInt(31338) },
		"nonce":             func(tx *txtypes.UnsignedShieldedTx) { tx.Nonce++ },
		"gas_price":         func(tx *txtypes.UnsignedShieldedTx) { tx.GasPrice = big.NewInt(1_000_000_001) },
		"gas":               func(tx *txtypes.UnsignedShieldedTx) { tx.Gas++ },
		"to":                func(tx *txtypes.UnsignedShieldedTx) { tx.To = nil },
		"value":             func(tx *txtypes.UnsignedShieldedTx) { tx.Value = big.NewInt(1) },
		"encryption_pubkey": func(tx *txtypes.UnsignedShieldedTx) { tx.EncryptionPubkey[32] ^= 0x01 },
		"encryption_nonce":  func(tx *txtypes.UnsignedShieldedTx) { tx.EncryptionNonce[11] ^= 0x01 },
		"message_version":   func(tx *txtypes.UnsignedShieldedTx) { tx.MessageVersion = 2 },
		"recent_block_hash": func(tx *txtypes.UnsignedShieldedTx) { tx.RecentBlockHash[0] ^= 0x01 },
		"signed_read":       func(tx *txtypes.UnsignedShieldedTx) { tx.SignedRead = true },
		"data":              func(tx *txtypes.UnsignedShieldedTx) { tx.Data = []byte{0x00} },
	}
	for field, mutate := range mutations {
		tx := scenarioCTx()
		mutate(&tx)
		h, err := RawHash(tx)
		if err != nil {
			t.Fatalf("raw hash (%s changed): %v", field, err)
		}
		if h == baseHash {
			t.Fatalf("expected raw hash to change when %s changes", field)
		}
	}
}
