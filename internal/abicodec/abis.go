package abicodec

// DirectoryMethods is the viewing-key Directory genesis contract's ABI
// surface (internal/directory wraps these).
var DirectoryMethods = map[string]Method{
	"checkHasKey": {
		Name:    "checkHasKey",
		Inputs:  []Param{{Name: "account", Type: "address"}},
		Outputs: []Param{{Name: "", Type: "bool"}},
	},
	"keyHash": {
		Name:    "keyHash",
		Inputs:  []Param{{Name: "account", Type: "address"}},
		Outputs: []Param{{Name: "", Type: "bytes32"}},
	},
	"getKey": {
		Name:    "getKey",
		Inputs:  nil,
		Outputs: []Param{{Name: "", Type: "uint256"}},
	},
	"setKey": {
		Name:    "setKey",
		Inputs:  []Param{{Name: "key", Type: "suint256"}},
		Outputs: nil,
	},
}

// DepositContractMethods is the validator deposit contract's client-facing
// ABI surface (internal/directory wraps these).
var DepositContractMethods = map[string]Method{
	"get_deposit_count": {
		Name:    "get_deposit_count",
		Inputs:  nil,
		Outputs: []Param{{Name: "", Type: "bytes"}},
	},
}

// SRC20Methods is the shielded SRC20 token ABI surface — a convenience for
// callers building calldata against SRC20-like tokens, ported from the
// original SDK's src20 ABI constant.
var SRC20Methods = map[string]Method{
	"name": {
		Name:    "name",
		Outputs: []Param{{Name: "", Type: "string"}},
	},
	"symbol": {
		Name:    "symbol",
		Outputs: []Param{{Name: "", Type: "string"}},
	},
	"decimals": {
		Name:    "decimals",
		Outputs: []Param{{Name: "", Type: "uint8"}},
	},
	"balanceOf": {
		Name:    "balanceOf",
		Outputs: []Param{{Name: "", Type: "uint256"}},
	},
	"approve": {
		Name:    "approve",
		Inputs:  []Param{{Name: "spender", Type: "address"}, {Name: "amount", Type: "suint256"}},
		Outputs: []Param{{Name: "", Type: "bool"}},
	},
	"transfer": {
		Name:    "transfer",
		Inputs:  []Param{{Name: "to", Type: "address"}, {Name: "amount", Type: "suint256"}},
		Outputs: []Param{{Name: "", Type: "bool"}},
	},
	"transferFrom": {
		Name: "transferFrom",
		Inputs: []Param{
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "amount", Type: "suint256"},
		},
		Outputs: []Param{{Name: "", Type: "bool"}},
	},
}
