package stream

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidBalance is returned for balances whose asset fields are inconsistent.
var ErrInvalidBalance = errors.New("invalid balance")

// AssetType is the ledger's classification of a balance's asset.
type AssetType string

const (
	AssetTypeNative           AssetType = "native"
	AssetTypeCreditAlphanum4  AssetType = "credit_alphanum4"
	AssetTypeCreditAlphanum12 AssetType = "credit_alphanum12"
)

// AccountInfo is a ledger account. Sequence stays a string because sequence
// numbers may exceed the range callers can represent natively.
type AccountInfo struct {
	AccountID string           `json:"accountId"`
	Sequence  string           `json:"sequence"`
	Balances  []AccountBalance `json:"balances"`
}

// AccountBalance is one asset balance of an account. Balance keeps the exact
// decimal text returned by the ledger. AssetCode and AssetIssuer are both
// empty for the native asset and both set otherwise.
type AccountBalance struct {
	Balance     string    `json:"balance"`
	AssetType   AssetType `json:"assetType"`
	AssetCode   string    `json:"assetCode,omitempty"`
	AssetIssuer string    `json:"assetIssuer,omitempty"`
}

// IsNative reports whether the balance is in the network's native asset.
func (b AccountBalance) IsNative() bool {
	return b.AssetType == AssetTypeNative
}

// Validate checks the asset fields against the asset type.
func (b AccountBalance) Validate() error {
	hasCode, hasIssuer := b.AssetCode != "", b.AssetIssuer != ""
	if hasCode != hasIssuer {
		return fmt.Errorf("%w: asset code and issuer must be set together", ErrInvalidBalance)
	}

	switch b.AssetType {
	case AssetTypeNative:
		if hasCode {
			return fmt.Errorf("%w: native balance with asset %s", ErrInvalidBalance, b.AssetCode)
		}
	case AssetTypeCreditAlphanum4, AssetTypeCreditAlphanum12:
		if !hasCode {
			return fmt.Errorf("%w: %s balance without asset", ErrInvalidBalance, b.AssetType)
		}
	default:
		return fmt.Errorf("%w: unknown asset type %q", ErrInvalidBalance, b.AssetType)
	}

	return nil
}

// Decimal parses Balance without going through a binary float.
func (b AccountBalance) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(b.Balance)
}
