// Package abicodec implements the shielded Solidity ABI codec: remapping
// shielded type names (suintN, sintN, sbool, saddress) to their standard
// counterparts for argument encoding while computing the on-chain function
// selector from the original shielded signature.
package abicodec

import "regexp"

var (
	sUintRe   = regexp.MustCompile(`^suint(\d+)$`)
	sIntRe    = regexp.MustCompile(`^sint(\d+)$`)
	arraySufx = regexp.MustCompile(`(\[\d*\])+$`)
)

// RemapType maps a single shielded type name to its standard-Solidity
// counterpart, preserving any array suffix ([] or [k], possibly repeated
// for multi-dimensional arrays). Types it doesn't recognize as shielded
// (including "tuple" — tuples are remapped recursively via their
// Components, not via their own type string) pass through unchanged, which
// makes remapping an already-unshielded type a no-op.
func RemapType(t string) string {
	suffix := arraySufx.FindString(t)
	base := t[:len(t)-len(suffix)]

	switch {
	case sUintRe.MatchString(base):
		return "uint" + sUintRe.FindStringSubmatch(base)[1] + suffix
	case sIntRe.MatchString(base):
		return "int" + sIntRe.FindStringSubmatch(base)[1] + suffix
	case base == "sbool":
		return "bool" + suffix
	case base == "saddress":
		return "address" + suffix
	default:
		return t
	}
}
