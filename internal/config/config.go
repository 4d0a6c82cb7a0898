// Package config loads SDK client configuration from environment / .env file.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ── Well-known chain IDs ─────────────────────────────────────────────────
const (
	SeismicTestnetChainID = 5124
	SanvilChainID         = 31337
)

// ── Config fields (populated by Load) ───────────────────────────────────
var (
	// Transport
	RPCURL string
	WSURL  string

	// Chain
	ChainID uint64

	// Signing
	PrivateKey          string
	EncryptionPrivateKey string // hex viewing key used by seismicctl watch; NewWalletClient does not read it and derives its session key from the signing key

	// Event scanner
	PollIntervalSec float64

	// Send / signed-read defaults
	DefaultBlocksWindow uint64
	DefaultGas          uint64
	DefaultGasPrice     string // decimal string; "" means "ask the node"

	LogLevel string
)

// Load reads .env (if present) then overrides from OS env vars, mirroring
// the package-var + fallback-to-OS-env pattern used throughout this SDK's
// reference tooling.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, using OS environment")
	}

	RPCURL = getEnv("SEISMIC_RPC_URL", "https://node-1.seismicdev.net/rpc")
	WSURL = getEnv("SEISMIC_WS_URL", "")

	ChainID = uint64(getEnvInt("SEISMIC_CHAIN_ID", SeismicTestnetChainID))

	PrivateKey = getEnv("PRIVATE_KEY", "")
	EncryptionPrivateKey = getEnv("ENCRYPTION_PRIVATE_KEY", "")

	PollIntervalSec = getEnvFloat("POLL_INTERVAL", 2.0)

	DefaultBlocksWindow = uint64(getEnvInt("DEFAULT_BLOCKS_WINDOW", 100))
	DefaultGas = uint64(getEnvInt("DEFAULT_GAS", 30_000_000))
	DefaultGasPrice = getEnv("DEFAULT_GAS_PRICE", "")

	LogLevel = getEnv("LOG_LEVEL", "INFO")
}

// ── Helpers ──────────────────────────────────────────────────────────────

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
