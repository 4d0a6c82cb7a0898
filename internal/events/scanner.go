// Package events implements the SRC20-style event scanner (C13): a
// polling log fetcher that decrypts each transfer/approval's embedded
// ciphertext‖nonce field with a viewing key.
package events

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/seismicsystems/seismic-go-sdk/internal/seismicclient"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismiccrypto"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismicerr"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

// TransferTopic is keccak256("Transfer(address,address,bytes32,bytes)").
var TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,bytes32,bytes)"))

// ApprovalTopic is keccak256("Approval(address,address,bytes32,bytes)").
var ApprovalTopic = crypto.Keccak256Hash([]byte("Approval(address,address,bytes32,bytes)"))

const nonceBytes = 12

// DefaultPollInterval is how often the scanner re-checks the chain head when
// no caller-specified interval is given.
const DefaultPollInterval = 2 * time.Second

// TransferLog is a decoded, decrypted SRC20 Transfer event.
type TransferLog struct {
	From             common.Address
	To               common.Address
	EncryptKeyHash   common.Hash
	EncryptedAmount  []byte
	DecryptedAmount  *big.Int
	TransactionHash  common.Hash
	BlockNumber      uint64
}

// ApprovalLog is a decoded, decrypted SRC20 Approval event.
type ApprovalLog struct {
	Owner            common.Address
	Spender          common.Address
	EncryptKeyHash   common.Hash
	EncryptedAmount  []byte
	DecryptedAmount  *big.Int
	TransactionHash  common.Hash
	BlockNumber      uint64
}

// LogSource is the minimal chain surface the scanner needs — satisfied by
// *seismicclient.PublicClient.
type LogSource interface {
	GetLogs(ctx context.Context, filter map[string]interface{}, dst interface{}) error
	BlockNumber(ctx context.Context) (uint64, error)
}

var _ LogSource = (*seismicclient.PublicClient)(nil)

// Scanner polls for SRC20 Transfer/Approval logs matching a viewing key and
// dispatches decrypted events to callbacks. It owns its cursor exclusively;
// cancellation via the supplied context stops it cleanly at the next sleep
// boundary.
type Scanner struct {
	source       LogSource
	viewingKey   seismictypes.Bytes32
	keyHash      common.Hash
	tokenAddress *common.Address
	pollInterval time.Duration

	OnTransfer func(TransferLog)
	OnApproval func(ApprovalLog)
	OnError    func(error)
}

// New builds a Scanner watching for events addressed to keyHash(viewingKey).
// tokenAddress, if non-nil, restricts the filter to one SRC20 contract.
func New(source LogSource, viewingKey seismictypes.Bytes32, tokenAddress *common.Address, pollInterval time.Duration) *Scanner {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Scanner{
		source:       source,
		viewingKey:   viewingKey,
		keyHash:      crypto.Keccak256Hash(viewingKey.Bytes()),
		tokenAddress: tokenAddress,
		pollInterval: pollInterval,
	}
}

// Run polls until ctx is cancelled. fromBlock selects the first block to
// scan; pass 0 to start from the chain's current head.
func (s *Scanner) Run(ctx context.Context, fromBlock uint64) error {
	current := fromBlock
	if current == 0 {
		head, err := s.source.BlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("[events] resolve start block: %w", err)
		}
		current = head
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		latest, err := s.source.BlockNumber(ctx)
		if err != nil {
			s.notifyError(err)
		} else if current <= latest {
			if err := s.scanRange(ctx, current, latest); err != nil {
				s.notifyError(err)
			}
			current = latest + 1
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.pollInterval):
		}
	}
}

func (s *Scanner) scanRange(ctx context.Context, from, to uint64) error {
	filter := map[string]interface{}{
		"fromBlock": hexutil.EncodeUint64(from),
		"toBlock":   hexutil.EncodeUint64(to),
		"topics": []interface{}{
			[]common.Hash{TransferTopic, ApprovalTopic},
			nil,
			nil,
			s.keyHash,
		},
	}
	if s.tokenAddress != nil {
		filter["address"] = s.tokenAddress.Hex()
	}

	var logs []rpcLog
	if err := s.source.GetLogs(ctx, filter, &logs); err != nil {
		return fmt.Errorf("[events] get logs: %w", err)
	}

	for _, l := range logs {
		s.processLog(l)
	}
	return nil
}

func (s *Scanner) processLog(l rpcLog) {
	decoded, err := s.decodeLog(l)
	if err != nil {
		s.notifyError(err)
		return
	}
	switch v := decoded.(type) {
	case TransferLog:
		if s.OnTransfer != nil {
			s.OnTransfer(v)
		}
	case ApprovalLog:
		if s.OnApproval != nil {
			s.OnApproval(v)
		}
	}
}

func (s *Scanner) decodeLog(l rpcLog) (interface{}, error) {
	if len(l.Topics) < 4 {
		return nil, nil
	}

	encryptedAmount, err := decodeDynamicBytes(l.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode encryptedAmount: %v", seismicerr.ErrResponseDecode, err)
	}

	amount, err := s.decryptAmount(encryptedAmount)
	if err != nil {
		return nil, err
	}

	switch l.Topics[0] {
	case TransferTopic:
		return TransferLog{
			From:            common.BytesToAddress(l.Topics[1].Bytes()),
			To:              common.BytesToAddress(l.Topics[2].Bytes()),
			EncryptKeyHash:  l.Topics[3],
			EncryptedAmount: encryptedAmount,
			DecryptedAmount: amount,
			TransactionHash: l.TransactionHash,
			BlockNumber:     uint64(l.BlockNumber),
		}, nil
	case ApprovalTopic:
		return ApprovalLog{
			Owner:           common.BytesToAddress(l.Topics[1].Bytes()),
			Spender:         common.BytesToAddress(l.Topics[2].Bytes()),
			EncryptKeyHash:  l.Topics[3],
			EncryptedAmount: encryptedAmount,
			DecryptedAmount: amount,
			TransactionHash: l.TransactionHash,
			BlockNumber:     uint64(l.BlockNumber),
		}, nil
	default:
		return nil, nil
	}
}

// decryptAmount splits packed into ciphertext‖nonce(12), AES-GCM-decrypts
// with no AAD (unlike transaction encryption), and interprets the plaintext
// as a big-endian uint256.
func (s *Scanner) decryptAmount(packed []byte) (*big.Int, error) {
	if len(packed) <= nonceBytes {
		return nil, fmt.Errorf("%w: encrypted amount shorter than nonce", seismicerr.ErrInsufficientData)
	}
	ciphertext := packed[:len(packed)-nonceBytes]
	nonce, err := seismictypes.NewEncryptionNonce(packed[len(packed)-nonceBytes:])
	if err != nil {
		return nil, err
	}
	plaintext, err := seismiccrypto.Decrypt(s.viewingKey, nonce, ciphertext, nil)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(plaintext), nil
}

func (s *Scanner) notifyError(err error) {
	if s.OnError != nil {
		s.OnError(err)
		return
	}
	log.Printf("[events] poll error: %v", err)
}

// rpcLog mirrors the subset of an eth_getLogs result entry the scanner
// needs.
type rpcLog struct {
	Address         common.Address `json:"address"`
	Topics          []common.Hash  `json:"topics"`
	Data            hexutil.Bytes  `json:"data"`
	BlockNumber     hexutil.Uint64 `json:"blockNumber"`
	TransactionHash common.Hash    `json:"transactionHash"`
}

// decodeDynamicBytes ABI-decodes a single non-indexed `bytes` return value,
// the wire shape of a SRC20 event's encryptedAmount field.
func decodeDynamicBytes(data []byte) ([]byte, error) {
	bytesType, err := abi.NewType("bytes", "", nil)
	if err != nil {
		return nil, err
	}
	args := abi.Arguments{{Type: bytesType}}
	values, err := args.UnpackValues(data)
	if err != nil {
		return nil, err
	}
	out, ok := values[0].([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected decoded type %T", values[0])
	}
	return out, nil
}
