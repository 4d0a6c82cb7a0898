package seismiccrypto

import "testing"

func TestNewEncryptionNonceNeverLeadsWithZero(t *testing.T) {
	for i := 0; i < 256; i++ {
		n, err := NewEncryptionNonce()
		if err != nil {
			t.Fatalf("new nonce: %v", err)
		}
		if n[0] == 0 {
			t.Fatalf("nonce must not start with a zero byte: %x", n.Bytes())
		}
	}
}
