// Package horizon reads accounts from a Stellar Horizon server. It
// implements the account lookups needed by txpipeline and streampay.
package horizon

import (
	"strings"

	transporthttp "github.com/gabapcia/streampay/internal/pkg/transport/http"
	"github.com/gabapcia/streampay/internal/streampay"
	"github.com/gabapcia/streampay/internal/txpipeline"

	"github.com/hashicorp/go-retryablehttp"
)

// client talks to the Horizon REST API.
type client struct {
	baseURL    string                // Horizon root URL without a trailing slash
	httpClient *retryablehttp.Client // HTTP client used for every request
}

var (
	_ txpipeline.AccountSource = (*client)(nil)
	_ streampay.Ledger         = (*client)(nil)
)

// NewClient creates a Horizon client for baseURL. HTTP behavior is tuned with
// the transport/http options.
func NewClient(baseURL string, opts ...transporthttp.Option) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: transporthttp.NewClient(opts...),
	}
}
