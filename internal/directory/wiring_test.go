package directory_test

import (
	"testing"

	"github.com/seismicsystems/seismic-go-sdk/internal/directory"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismicclient"
)

// TestWalletClientSatisfiesDirectoryInterfaces confirms *seismicclient.WalletClient
// plugs directly into directory.New without an adapter.
func TestWalletClientSatisfiesDirectoryInterfaces(t *testing.T) {
	var _ directory.SignedCaller = (*seismicclient.WalletClient)(nil)
	var _ directory.ShieldedSender = (*seismicclient.WalletClient)(nil)
}

func TestDirectoryAcceptsWalletClient(t *testing.T) {
	var wc *seismicclient.WalletClient
	_ = directory.New(wc, wc, wc)
}
