package signing

import (
	"encoding/hex"
	"testing"
)

// Scenario D (EIP-712 known answer, chainId 5124) — the domain separator
// depends only on chainId among this scenario's given inputs, so it is the
// one sub-value checked bit-exact here; struct_hash/signing_hash depend on
// several elided reference fields (to, input, enc_pk, recent_block_hash)
// that spec.md does not spell out in full, so they aren't independently
// reproducible from this file alone.
func TestDomainSeparatorKnownAnswer(t *testing.T) {
	want, err := hex.DecodeString("8c18a115e1d4ee84a16bce167a1f8213215705f0a5fd00475741e2cd7a53fed6")
	if err != nil {
		t.Fatalf("decode expected domain separator: %v", err)
	}

	got := DomainSeparator(5124)
	if hex.EncodeToString(got.Bytes()) != hex.EncodeToString(want) {
		t.Fatalf("domain separator mismatch: got %x want %x", got.Bytes(), want)
	}
}

func TestDomainSeparatorVariesByChainID(t *testing.T) {
	a := DomainSeparator(5124)
	b := DomainSeparator(31337)
	if a == b {
		t.Fatal("expected domain separator to vary with chainId")
	}
}
