package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-bot-launcher/internal/utils"
)

const jsonRPCVersion = "2.0"

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCClient is a JSON-RPC client for the cluster endpoint configured in
// RPC_URL.
type RPCClient struct {
	client *utils.HTTPClient
	nextID atomic.Uint64
}

// NewRPCClient validates endpoint and returns a client bound to it.
func NewRPCClient(endpoint string) (*RPCClient, error) {
	baseURL, err := normalizeEndpoint(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	return &RPCClient{client: utils.NewRPCClient(baseURL)}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetHealth calls getHealth. A node that answers with an error object is
// reported as ErrUnhealthy.
func (c *RPCClient) GetHealth(ctx context.Context) error {
	var status string
	if err := c.call(ctx, "getHealth", &status); err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) {
			return fmt.Errorf("%w: %w", ErrUnhealthy, err)
		}
		return err
	}
	if status != "ok" {
		return fmt.Errorf("%w: status %q", ErrUnhealthy, status)
	}
	return nil
}

// GetSlot calls getSlot and returns the current slot.
func (c *RPCClient) GetSlot(ctx context.Context) (uint64, error) {
	var slot uint64
	if err := c.call(ctx, "getSlot", &slot); err != nil {
		return 0, err
	}
	return slot, nil
}

func (c *RPCClient) call(ctx context.Context, method string, result any, params ...any) error {
	var out rpcResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(rpcRequest{
			JSONRPC: jsonRPCVersion,
			ID:      c.nextID.Add(1),
			Method:  method,
			Params:  params,
		}).
		SetResult(&out).
		SetError(&out).
		Post("")
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}

	if out.Error != nil {
		return out.Error
	}
	if resp.IsError() {
		return fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode())
	}
	if err = json.Unmarshal(out.Result, result); err != nil {
		return fmt.Errorf("%s: error decoding result: %w", method, err)
	}
	return nil
}
