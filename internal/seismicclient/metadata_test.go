package seismicclient

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// fakeTransport returns canned JSON responses keyed by RPC method name.
type fakeTransport struct {
	responses map[string]string
	calls     []string
}

func (f *fakeTransport) Call(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	f.calls = append(f.calls, method)
	raw, ok := f.responses[method]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), result)
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{responses: map[string]string{
		"eth_chainId":            `"0x1404"`,
		"eth_getTransactionCount": `"0x7"`,
		"eth_gasPrice":            `"0x3b9aca00"`,
		"eth_getBlockByNumber":    `{"number":"0x64","hash":"0x` + sampleHash + `"}`,
	}}
}

const sampleHash = "93420718abcdef1234567890abcdef1234567890abcdef1234567890abcd9f90"

func TestBuildMetadataResolvesFromChain(t *testing.T) {
	ft := newFakeTransport()
	pk, err := seismictypes.CompressedPublicKeyFromHex("0x028e76821eb4d77fd30223ca971c49738eb5b5b71eabe93f96b348fdce788ae5a0")
	if err != nil {
		t.Fatalf("pubkey: %v", err)
	}
	to := common.HexToAddress("0xd3e87636b571997a6a268d5dd89572f35b79cc0")

	meta, err := BuildMetadata(context.Background(), ft, MetadataParams{
		Sender:           common.HexToAddress("0x1111111111111111111111111111111111111111"),
		To:               &to,
		EncryptionPubkey: pk,
	})
	if err != nil {
		t.Fatalf("build metadata: %v", err)
	}

	if meta.Legacy.ChainID.Uint64() != 0x1404 {
		t.Fatalf("expected chain id 0x1404, got %v", meta.Legacy.ChainID)
	}
	if meta.Legacy.Nonce != 7 {
		t.Fatalf("expected nonce 7, got %d", meta.Legacy.Nonce)
	}
	if meta.Seismic.ExpiresAtBlock != 0x64+DefaultBlocksWindow {
		t.Fatalf("expected expires_at_block %d, got %d", 0x64+DefaultBlocksWindow, meta.Seismic.ExpiresAtBlock)
	}
	if meta.Seismic.EncryptionNonce == ([12]byte{}) {
		t.Fatal("expected a generated, non-zero encryption nonce")
	}
}

func TestBuildMetadataHonorsExplicitOverrides(t *testing.T) {
	ft := newFakeTransport()
	pk, _ := seismictypes.CompressedPublicKeyFromHex("0x028e76821eb4d77fd30223ca971c49738eb5b5b71eabe93f96b348fdce788ae5a0")
	nonce := uint64(99)
	expires := uint64(12345)
	blockHash, _ := seismictypes.Bytes32FromHex("0x" + sampleHash)

	meta, err := BuildMetadata(context.Background(), ft, MetadataParams{
		Sender:           common.HexToAddress("0x1111111111111111111111111111111111111111"),
		EncryptionPubkey: pk,
		Nonce:            &nonce,
		RecentBlockHash:  &blockHash,
		ExpiresAtBlock:   &expires,
	})
	if err != nil {
		t.Fatalf("build metadata: %v", err)
	}
	if meta.Legacy.Nonce != 99 {
		t.Fatalf("expected explicit nonce to win, got %d", meta.Legacy.Nonce)
	}
	if meta.Seismic.ExpiresAtBlock != 12345 {
		t.Fatalf("expected explicit expires_at_block to win, got %d", meta.Seismic.ExpiresAtBlock)
	}
	for _, m := range ft.calls {
		if m == "eth_getBlockByNumber" {
			t.Fatal("expected no block fetch when both recent_block_hash and expires_at_block are explicit")
		}
	}
}
