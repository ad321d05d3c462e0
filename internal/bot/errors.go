package bot

import (
	"errors"
	"fmt"
)

var (
	ErrUnhealthy       = errors.New("rpc node is unhealthy")
	ErrInvalidEndpoint = errors.New("invalid rpc endpoint")
	ErrAlreadyRunning  = errors.New("simulation already running")
)

// RPCError is an error object returned in a JSON-RPC response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
