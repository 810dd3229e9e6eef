// Package sorobanrpc implements txpipeline.RPC and streampay.Events on top of
// a Stellar RPC (Soroban) JSON-RPC endpoint.
package sorobanrpc

import (
	"github.com/gabapcia/streampay/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/streampay/internal/streampay"
	"github.com/gabapcia/streampay/internal/txpipeline"
)

// client communicates with a Stellar RPC server through a JSON-RPC client.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the RPC server
}

var (
	_ txpipeline.RPC   = (*client)(nil)
	_ streampay.Events = (*client)(nil)
)

// NewClient creates a Stellar RPC client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
