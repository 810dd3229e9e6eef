// Package jsonrpc provides a generic JSON-RPC 2.0 client implementation over HTTP.
// It supports automatic retries and configurable timeouts through the shared
// HTTP transport, and is suitable for any JSON-RPC-compatible service such as
// blockchain RPC nodes.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	transporthttp "github.com/gabapcia/streampay/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// ProviderError is the error object of a JSON-RPC 2.0 response.
type ProviderError struct {
	Code    int             `json:"code"`    // error code defined by the JSON-RPC spec or the server
	Message string          `json:"message"` // human-readable error message
	Data    json.RawMessage `json:"data"`    // optional structured payload
}

func (e *ProviderError) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
	}

	return fmt.Sprintf("%s: [%d] - %s: %s", ErrProviderReturnedError, e.Code, e.Message, e.Data)
}

// Is makes every ProviderError match ErrProviderReturnedError.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *ProviderError  `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the response's error object, or nil when the call succeeded.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client defines the interface for a generic JSON-RPC client.
type Client interface {
	// Call sends a JSON-RPC request with the given method name. params is
	// marshaled as-is, so it can be a struct or map for by-name parameters,
	// a slice for positional parameters, or nil when the method takes none.
	// It returns the raw JSON result or an error if the request or response fails.
	Call(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	providerEndpoint string                // The URL of the remote JSON-RPC server
	httpClient       *retryablehttp.Client // The HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Call implements the Client interface. The request id is a random UUID.
func (c *client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	payload := map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
	}
	if params != nil {
		payload["params"] = params
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := transporthttp.Do(c.httpClient, req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// NewClient constructs a Client that sends JSON-RPC requests to
// providerEndpoint. HTTP behavior (timeout, transport retries) is tuned with
// the options of the transport/http package.
func NewClient(providerEndpoint string, opts ...transporthttp.Option) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       transporthttp.NewClient(opts...),
	}
}
