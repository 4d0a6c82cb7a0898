// seismicctl is a demo CLI driving the shielded-transaction SDK: it can
// send an encrypted write, perform a signed read, or watch SRC20 transfer
// logs for a viewing key.
//
// Usage:
//
//	seismicctl send   -to 0x... -data 0x...
//	seismicctl call    -to 0x... -data 0x...
//	seismicctl watch  -token 0x... [-from-block N]
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"

	"github.com/seismicsystems/seismic-go-sdk/internal/config"
	"github.com/seismicsystems/seismic-go-sdk/internal/events"
	"github.com/seismicsystems/seismic-go-sdk/internal/seismictypes"
)

func main() {
	config.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "send":
		err = runSend(ctx, os.Args[2:])
	case "call":
		err = runCall(ctx, os.Args[2:])
	case "watch":
		err = runWatch(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("[seismicctl] %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: seismicctl <send|call|watch> [flags]")
}

func chainConfig() config.ChainConfig {
	if config.ChainID == config.SanvilChainID {
		return config.Sanvil
	}
	return config.SeismicTestnet
}

func parseHexData(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func runSend(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	to := fs.String("to", "", "recipient address")
	data := fs.String("data", "", "hex-encoded calldata")
	debug := fs.Bool("debug", false, "return the plaintext/signed envelope instead of just submitting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *to == "" {
		return fmt.Errorf("send: -to is required")
	}

	wc, err := chainConfig().NewWalletClient(ctx, config.PrivateKey)
	if err != nil {
		return fmt.Errorf("build wallet client: %w", err)
	}

	calldata, err := parseHexData(*data)
	if err != nil {
		return fmt.Errorf("decode -data: %w", err)
	}
	toAddr := common.HexToAddress(*to)

	if *debug {
		result, err := wc.SendDebug(ctx, toAddr, calldata)
		if err != nil {
			return fmt.Errorf("send debug: %w", err)
		}
		log.Printf("plaintext calldata: 0x%x", result.Plaintext.Data)
		log.Printf("shielded tx: %+v", result.ShieldedTx)
		log.Printf("tx hash: %s", result.TxHash.Hex())
		return nil
	}

	hash, err := wc.SendShielded(ctx, toAddr, calldata)
	if err != nil {
		return fmt.Errorf("send shielded: %w", err)
	}
	log.Printf("tx hash: %s", hash.Hex())
	return nil
}

func runCall(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("call", flag.ExitOnError)
	to := fs.String("to", "", "contract address")
	data := fs.String("data", "", "hex-encoded calldata")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *to == "" {
		return fmt.Errorf("call: -to is required")
	}

	wc, err := chainConfig().NewWalletClient(ctx, config.PrivateKey)
	if err != nil {
		return fmt.Errorf("build wallet client: %w", err)
	}

	calldata, err := parseHexData(*data)
	if err != nil {
		return fmt.Errorf("decode -data: %w", err)
	}

	result, err := wc.SignedCall(ctx, common.HexToAddress(*to), calldata)
	if err != nil {
		return fmt.Errorf("signed call: %w", err)
	}
	log.Printf("result: 0x%x", result)
	return nil
}

func runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	token := fs.String("token", "", "SRC20 contract address (optional, all tokens if empty)")
	fromBlock := fs.Uint64("from-block", 0, "first block to scan (0 = chain head)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if config.EncryptionPrivateKey == "" {
		return fmt.Errorf("watch: ENCRYPTION_PRIVATE_KEY is required to decrypt amounts")
	}

	viewingKey, err := seismictypes.Bytes32FromHex(config.EncryptionPrivateKey)
	if err != nil {
		return fmt.Errorf("parse viewing key: %w", err)
	}

	pc := chainConfig().NewPublicClient()

	var tokenAddr *common.Address
	if *token != "" {
		addr := common.HexToAddress(*token)
		tokenAddr = &addr
	}

	scanner := events.New(pc, viewingKey, tokenAddr, 0)
	scanner.OnTransfer = func(l events.TransferLog) {
		log.Printf("transfer %s -> %s amount=%s (block %d)", l.From.Hex(), l.To.Hex(), l.DecryptedAmount, l.BlockNumber)
	}
	scanner.OnApproval = func(l events.ApprovalLog) {
		log.Printf("approval %s -> %s amount=%s (block %d)", l.Owner.Hex(), l.Spender.Hex(), l.DecryptedAmount, l.BlockNumber)
	}
	scanner.OnError = func(err error) {
		log.Printf("[watch] %v", err)
	}

	log.Printf("watching SRC20 events from block %d", *fromBlock)
	return scanner.Run(ctx, *fromBlock)
}
