package horizon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gabapcia/streampay/internal/chainerr"
	transporthttp "github.com/gabapcia/streampay/internal/pkg/transport/http"
	"github.com/gabapcia/streampay/internal/stream"
)

// assetTypeLiquidityPoolShares marks pool share balances, which carry no asset code.
const assetTypeLiquidityPoolShares = "liquidity_pool_shares"

type (
	// BalanceResponse is one entry of an account's balances array.
	BalanceResponse struct {
		Balance         string `json:"balance"`
		AssetType       string `json:"asset_type"`
		AssetCode       string `json:"asset_code"`
		AssetIssuer     string `json:"asset_issuer"`
		LiquidityPoolID string `json:"liquidity_pool_id"`
	}

	// AccountResponse is the subset of GET /accounts/{id} used by the client.
	AccountResponse struct {
		ID        string            `json:"id"`
		AccountID string            `json:"account_id"`
		Sequence  string            `json:"sequence"`
		Balances  []BalanceResponse `json:"balances"`
	}
)

// toAccountBalance converts a BalanceResponse to a stream.AccountBalance.
func (b BalanceResponse) toAccountBalance() stream.AccountBalance {
	return stream.AccountBalance{
		Balance:     b.Balance,
		AssetType:   stream.AssetType(b.AssetType),
		AssetCode:   b.AssetCode,
		AssetIssuer: b.AssetIssuer,
	}
}

// toAccountInfo converts an AccountResponse to a stream.AccountInfo, keeping
// the ledger's balance order. Liquidity pool shares are skipped.
func (a AccountResponse) toAccountInfo() (stream.AccountInfo, error) {
	balances := make([]stream.AccountBalance, 0, len(a.Balances))
	for _, b := range a.Balances {
		if b.AssetType == assetTypeLiquidityPoolShares {
			continue
		}

		balance := b.toAccountBalance()
		if err := balance.Validate(); err != nil {
			return stream.AccountInfo{}, err
		}

		balances = append(balances, balance)
	}

	accountID := a.AccountID
	if accountID == "" {
		accountID = a.ID
	}

	return stream.AccountInfo{
		AccountID: accountID,
		Sequence:  a.Sequence,
		Balances:  balances,
	}, nil
}

// getAccount fetches the raw account document. A 404 becomes an
// AccountNotFoundError.
func (c *client) getAccount(ctx context.Context, accountID string) (AccountResponse, error) {
	var res AccountResponse
	err := transporthttp.GetJSON(ctx, c.httpClient, c.baseURL+"/accounts/"+url.PathEscape(accountID), &res)

	var statusErr *transporthttp.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return AccountResponse{}, &chainerr.AccountNotFoundError{AccountID: accountID}
	}

	return res, err
}

// GetAccount implements the streampay.Ledger interface.
func (c *client) GetAccount(ctx context.Context, accountID string) (stream.AccountInfo, error) {
	res, err := c.getAccount(ctx, accountID)
	if err != nil {
		return stream.AccountInfo{}, err
	}

	return res.toAccountInfo()
}

// AccountSequence implements the txpipeline.AccountSource interface.
func (c *client) AccountSequence(ctx context.Context, accountID string) (int64, error) {
	res, err := c.getAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}

	seq, err := strconv.ParseInt(res.Sequence, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse sequence of %s: %w", accountID, err)
	}

	return seq, nil
}
