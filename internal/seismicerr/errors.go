// Package seismicerr defines the sentinel error kinds shared across the SDK.
package seismicerr

import "errors"

// Sentinel errors wrapped with context via fmt.Errorf("...: %w", err) at call sites.
var (
	// ErrInvalidLength is returned when a fixed-size byte value is constructed
	// from input of the wrong length.
	ErrInvalidLength = errors.New("seismic: invalid length")

	// ErrFunctionNotFound is returned when an ABI lookup by name fails.
	ErrFunctionNotFound = errors.New("seismic: function not found in abi")

	// ErrCurve is returned when a secp256k1 point operation fails (point not
	// on curve, invalid scalar, etc).
	ErrCurve = errors.New("seismic: curve operation failed")

	// ErrAuthenticationFailed is returned when AES-GCM decryption fails tag
	// verification. It is fatal and must never be retried.
	ErrAuthenticationFailed = errors.New("seismic: authentication failed")

	// ErrRPC is returned when a JSON-RPC transport round trip fails.
	ErrRPC = errors.New("seismic: rpc call failed")

	// ErrResponseDecode is returned when an RPC or ABI response cannot be
	// decoded into the expected shape.
	ErrResponseDecode = errors.New("seismic: response decode failed")

	// ErrInsufficientData is returned when a byte slice is shorter than a
	// decoder requires (e.g. an encrypted log value missing its nonce suffix).
	ErrInsufficientData = errors.New("seismic: insufficient data")
)
