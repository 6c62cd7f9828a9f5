// Package local provides an in-process connection between a host
// engine and a contract compiled into the same binary.
//
// The connection enforces the resource model of the contract boundary:
// state-mutating entry points get exclusive access (one at a time),
// queries run concurrently with each other. Host engines that already
// serialize calls themselves can use the contract directly; the
// connection exists for engines that dispatch from multiple
// goroutines.
package local

import (
	"sync"

	"github.com/blockberries/capi"
	"github.com/blockberries/capi/types"
)

// Compile-time interface check.
var _ capi.Contract[types.Empty, types.Empty] = (*Connection[types.Empty, types.Empty])(nil)

// Connection wraps a contract with write-exclusion. It implements
// capi.Contract itself, so a host engine can treat it as the contract.
type Connection[Q, C any] struct {
	contract capi.Contract[Q, C]
	mu       sync.RWMutex
}

// NewConnection creates an in-process connection wrapping the given
// contract.
func NewConnection[Q, C any](contract capi.Contract[Q, C]) *Connection[Q, C] {
	return &Connection[Q, C]{contract: contract}
}

func (c *Connection[Q, C]) Instantiate(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contract.Instantiate(deps, env, info, msg)
}

func (c *Connection[Q, C]) Execute(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contract.Execute(deps, env, info, msg)
}

// Query runs concurrently with other queries but never with a
// state-mutating call.
func (c *Connection[Q, C]) Query(deps types.Deps[Q], env types.Env, msg []byte) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.contract.Query(deps, env, msg)
}

func (c *Connection[Q, C]) Sudo(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contract.Sudo(deps, env, msg)
}

func (c *Connection[Q, C]) Reply(deps types.DepsMut[Q], env types.Env, reply types.Reply) (types.Response[C], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contract.Reply(deps, env, reply)
}

func (c *Connection[Q, C]) Migrate(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contract.Migrate(deps, env, msg)
}
