package seismiccrypto

import (
	"crypto/rand"
	"fmt"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// NewEncryptionNonce draws a random 12-byte encryption nonce, rejecting and
// re-drawing whenever the first byte is zero. The RLP serializer treats
// leading zero bytes as length-reducing, so a nonce starting with 0x00
// would silently shrink in the wire encoding; expected retry rate is ~1/256.
func NewEncryptionNonce() (seismictypes.EncryptionNonce, error) {
	var buf [12]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return seismictypes.EncryptionNonce{}, fmt.Errorf("read random nonce: %w", err)
		}
		if buf[0] != 0 {
			return seismictypes.NewEncryptionNonce(buf[:])
		}
	}
}
