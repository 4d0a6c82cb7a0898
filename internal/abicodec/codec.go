package abicodec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismicerr"
)

// Param is one ABI input/output parameter, using shielded or standard
// Solidity type names interchangeably (shielded ones are remapped on
// demand; standard ones pass through unchanged).
type Param struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Components []Param `json:"components,omitempty"`
}

// Method describes one contract function's shielded ABI entry: the
// function selector is always derived from Inputs as given (the shielded
// signature); Outputs are never remapped.
type Method struct {
	Name    string
	Inputs  []Param
	Outputs []Param
}

// Selector returns keccak256(signature)[:4] computed from the method's
// as-given (shielded) input types — this is the selector the chain
// actually dispatches on.
func (m Method) Selector() [4]byte {
	sig := functionSignature(m.Name, m.Inputs)
	digest := crypto.Keccak256([]byte(sig))
	var out [4]byte
	copy(out[:], digest[:4])
	return out
}

// EncodeCalldata builds calldata as selector(shielded) || args encoded with
// standard (remapped) types — shielded values share the standard type's
// wire layout exactly.
func EncodeCalldata(m Method, args ...interface{}) ([]byte, error) {
	remapped := remapParams(m.Inputs)
	arguments, err := toArguments(remapped)
	if err != nil {
		return nil, fmt.Errorf("build argument types: %w", err)
	}

	packed, err := arguments.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("pack arguments: %w", err)
	}

	selector := m.Selector()
	out := make([]byte, 0, 4+len(packed))
	out = append(out, selector[:]...)
	out = append(out, packed...)
	return out, nil
}

// DecodeOutput ABI-decodes raw output bytes against m.Outputs (never
// remapped). Empty data against a non-empty output list is treated as the
// zero value for every output type: it is zero-padded to 32 bytes per
// output before decoding. That gives the zero value for each output that
// fits one ABI word, and a string or bytes output reads the zero word as
// offset 0 with length 0, so it decodes as empty. Fixed-size arrays and
// tuples wider than one word are not padded far enough and return an error.
func DecodeOutput(m Method, data []byte) ([]interface{}, error) {
	arguments, err := toArguments(m.Outputs)
	if err != nil {
		return nil, fmt.Errorf("build output types: %w", err)
	}

	if len(data) == 0 && len(m.Outputs) > 0 {
		data = make([]byte, 32*len(m.Outputs))
	}

	values, err := arguments.UnpackValues(data)
	if err != nil {
		return nil, fmt.Errorf("unpack outputs: %w: %w", err, seismicerr.ErrResponseDecode)
	}
	return values, nil
}

func remapParams(params []Param) []Param {
	out := make([]Param, len(params))
	for i, p := range params {
		np := Param{Name: p.Name, Type: RemapType(p.Type)}
		if len(p.Components) > 0 {
			np.Components = remapParams(p.Components)
		}
		out[i] = np
	}
	return out
}

// functionSignature builds "name(type1,type2,...)" with no spaces, tuples
// rendered as "(t1,t2,...)", recursively — the canonical Solidity function
// signature string used to compute a selector.
func functionSignature(name string, params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = typeString(p)
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

func typeString(p Param) string {
	base := p.Type
	suffix := arraySufx.FindString(base)
	base = base[:len(base)-len(suffix)]

	if base != "tuple" {
		return p.Type
	}

	parts := make([]string, len(p.Components))
	for i, c := range p.Components {
		parts[i] = typeString(c)
	}
	return "(" + strings.Join(parts, ",") + ")" + suffix
}

// toArguments converts Params (standard types only — callers remap first
// where shielded types might appear) into abi.Arguments by building the
// JSON shape the go-ethereum abi decoder already knows how to parse, rather
// than hand-rolling abi.Type construction for arbitrarily nested tuples.
func toArguments(params []Param) (abi.Arguments, error) {
	type entry struct {
		Type            string  `json:"type"`
		Name            string  `json:"name"`
		Inputs          []Param `json:"inputs"`
		StateMutability string  `json:"stateMutability"`
	}
	doc := []entry{{
		Type:            "function",
		Name:            "f",
		Inputs:          params,
		StateMutability: "nonpayable",
	}}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal synthetic abi: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("parse synthetic abi: %w", err)
	}

	method, ok := parsed.Methods["f"]
	if !ok {
		return nil, fmt.Errorf("synthetic method missing: %w", seismicerr.ErrFunctionNotFound)
	}
	return method.Inputs, nil
}
