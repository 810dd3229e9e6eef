// Package signer provides txpipeline.Signer implementations.
package signer

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/streampay/internal/pkg/logger"
	"github.com/gabapcia/streampay/internal/txpipeline"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/txnbuild"
)

var (
	// ErrInvalidSecret is returned when a secret seed cannot be parsed.
	ErrInvalidSecret = errors.New("invalid secret seed")

	// ErrUnsupportedEnvelope is returned for envelopes other than plain transactions.
	ErrUnsupportedEnvelope = errors.New("unsupported transaction envelope")
)

// keypairSigner signs with an in-process secret key.
type keypairSigner struct {
	kp *keypair.Full
}

// Compile-time assertion that keypairSigner implements the txpipeline.Signer interface.
var _ txpipeline.Signer = (*keypairSigner)(nil)

// NewKeypair returns a signer for the account controlled by the S... secret seed.
func NewKeypair(secret string) (*keypairSigner, error) {
	kp, err := keypair.ParseFull(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}

	return &keypairSigner{kp: kp}, nil
}

// Address implements the txpipeline.Signer interface.
func (s *keypairSigner) Address() string {
	return s.kp.Address()
}

// Sign implements the txpipeline.Signer interface.
func (s *keypairSigner) Sign(ctx context.Context, envelopeXDR, networkPassphrase string) (string, error) {
	generic, err := txnbuild.TransactionFromXDR(envelopeXDR)
	if err != nil {
		return "", fmt.Errorf("decode envelope: %w", err)
	}

	tx, ok := generic.Transaction()
	if !ok {
		return "", ErrUnsupportedEnvelope
	}

	signed, err := tx.Sign(networkPassphrase, s.kp)
	if err != nil {
		return "", fmt.Errorf("sign envelope: %w", err)
	}

	logger.Debug(ctx, "envelope signed", "signer", s.kp.Address(), "signatures", len(signed.Signatures()))
	return signed.Base64()
}
