// Package config loads the streampay settings from STREAMPAY_* environment
// variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/streampay/internal/pkg/validator"
	"github.com/gabapcia/streampay/internal/streampay"

	"github.com/kelseyhightower/envconfig"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
)

// Prefix is prepended to every variable name, e.g. STREAMPAY_RPC_URL.
const Prefix = "STREAMPAY"

// passphrases maps the well-known network names to their passphrases.
var passphrases = map[string]string{
	"testnet":   network.TestNetworkPassphrase,
	"futurenet": network.FutureNetworkPassphrase,
	"mainnet":   network.PublicNetworkPassphrase,
	"public":    network.PublicNetworkPassphrase,
}

// Config is the process configuration.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// Network selects a well-known passphrase. NetworkPassphrase overrides it.
	Network           string `envconfig:"NETWORK" default:"testnet"`
	NetworkPassphrase string `envconfig:"NETWORK_PASSPHRASE"`

	RPCURL       string        `envconfig:"RPC_URL" default:"https://soroban-testnet.stellar.org"`
	HorizonURL   string        `envconfig:"HORIZON_URL" default:"https://horizon-testnet.stellar.org"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	HTTPRetryMax int           `envconfig:"HTTP_RETRY_MAX" default:"2"` // transport retries of 429, 5xx and connection errors

	StreamContractID      string `envconfig:"STREAM_CONTRACT_ID"`
	DistributorContractID string `envconfig:"DISTRIBUTOR_CONTRACT_ID"`

	// SourceAccount is the simulation source of read-only calls. It defaults
	// to the account of SecretKey.
	SourceAccount string `envconfig:"SOURCE_ACCOUNT"`
	SecretKey     string `envconfig:"SECRET_KEY"`

	DefaultTimeoutSeconds int           `envconfig:"DEFAULT_TIMEOUT_SECONDS" default:"30"`
	MaxRetries            uint          `envconfig:"MAX_RETRIES" default:"3"`
	BaseFee               int64         `envconfig:"BASE_FEE" default:"100"`
	PollInterval          time.Duration `envconfig:"POLL_INTERVAL" default:"1s"`
	RetryBaseDelay        time.Duration `envconfig:"RETRY_BASE_DELAY" default:"1s"`
	RetryMaxJitter        time.Duration `envconfig:"RETRY_MAX_JITTER" default:"250ms"`
	EventsLookback        uint32        `envconfig:"EVENTS_LOOKBACK" default:"17280"`
	StreamCountMethod     string        `envconfig:"STREAM_COUNT_METHOD" default:"stream_count"`
	ScanConcurrency       int           `envconfig:"SCAN_CONCURRENCY" default:"1"`
}

// Load reads the environment. Values are checked by Service, once the
// network passphrase and source account have been resolved.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load configuration: %w", err)
	}

	return cfg, nil
}

// Passphrase returns the network passphrase in effect.
func (c Config) Passphrase() (string, error) {
	if c.NetworkPassphrase != "" {
		return c.NetworkPassphrase, nil
	}

	passphrase, ok := passphrases[strings.ToLower(c.Network)]
	if !ok {
		return "", fmt.Errorf("unknown network %q, set %s_NETWORK_PASSPHRASE", c.Network, Prefix)
	}

	return passphrase, nil
}

// Service builds and validates the streampay configuration.
func (c Config) Service() (streampay.Config, error) {
	passphrase, err := c.Passphrase()
	if err != nil {
		return streampay.Config{}, err
	}

	source := c.SourceAccount
	if source == "" && c.SecretKey != "" {
		kp, err := keypair.ParseFull(c.SecretKey)
		if err != nil {
			return streampay.Config{}, fmt.Errorf("derive source account: %w", err)
		}
		source = kp.Address()
	}

	cfg := streampay.Config{
		NetworkPassphrase:     passphrase,
		RPCURL:                c.RPCURL,
		HorizonURL:            c.HorizonURL,
		StreamContractID:      c.StreamContractID,
		DistributorContractID: c.DistributorContractID,
		SourceAccount:         source,
		DefaultTimeout:        time.Duration(c.DefaultTimeoutSeconds) * time.Second,
		MaxRetries:            c.MaxRetries,
		BaseFee:               c.BaseFee,
		PollInterval:          c.PollInterval,
		RetryBaseDelay:        c.RetryBaseDelay,
		RetryMaxJitter:        c.RetryMaxJitter,
		EventsLookback:        c.EventsLookback,
		StreamCountMethod:     c.StreamCountMethod,
		ScanConcurrency:       c.ScanConcurrency,
	}

	if err := validator.Validate(cfg); err != nil {
		return streampay.Config{}, err
	}

	return cfg, nil
}
