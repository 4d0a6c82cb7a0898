// Package txencode implements the shared RLP field-encoding rules used by
// both the AAD encoder (C4) and the envelope serializer (C6): minimal
// big-endian integers, 0x01/empty booleans, and 20-byte-or-empty optional
// addresses. The original SDK duplicates these rules between its AAD and
// envelope-serialization modules; this package keeps a single copy and both
// encoders call into it.
package txencode

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// encodeUint64 returns n's minimal big-endian representation; zero encodes
// as an empty byte slice.
func encodeUint64(n uint64) []byte {
	if n == 0 {
		return []byte{}
	}
	return big.NewInt(0).SetUint64(n).Bytes()
}

// encodeBigInt returns n's minimal big-endian representation; nil or zero
// encodes as an empty byte slice.
func encodeBigInt(n *big.Int) []byte {
	if n == nil || n.Sign() == 0 {
		return []byte{}
	}
	return n.Bytes()
}

// encodeBool encodes true as a single 0x01 byte and false as empty.
func encodeBool(b bool) []byte {
	if b {
		return []byte{0x01}
	}
	return []byte{}
}

// encodeAddress encodes a present address as its 20 raw bytes and an absent
// one (contract creation) as empty.
func encodeAddress(addr *common.Address) []byte {
	if addr == nil {
		return []byte{}
	}
	b := make([]byte, common.AddressLength)
	copy(b, addr[:])
	return b
}

// encodeBytes32 encodes a 32-byte hash as its raw bytes, no RLP-minimal
// trimming — recent_block_hash is a fixed-size byte value, not an integer.
func encodeBytes32(h common.Hash) []byte {
	b := make([]byte, len(h))
	copy(b, h[:])
	return b
}
