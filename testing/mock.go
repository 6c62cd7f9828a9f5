package capitest

import (
	"github.com/blockberries/capi"
	"github.com/blockberries/capi/types"
)

// Compile-time check that MockContract satisfies the interface.
var _ capi.Contract[types.Empty, types.Empty] = (*MockContract[types.Empty, types.Empty])(nil)

// MockContract is a configurable contract for host-engine testing.
// All entry points are configurable via function fields; unconfigured
// ones return empty responses. Calls are counted.
type MockContract[Q, C any] struct {
	InstantiateFn func(types.DepsMut[Q], types.Env, types.MessageInfo, []byte) (types.Response[C], error)
	ExecuteFn     func(types.DepsMut[Q], types.Env, types.MessageInfo, []byte) (types.Response[C], error)
	QueryFn       func(types.Deps[Q], types.Env, []byte) ([]byte, error)
	SudoFn        func(types.DepsMut[Q], types.Env, []byte) (types.Response[C], error)
	ReplyFn       func(types.DepsMut[Q], types.Env, types.Reply) (types.Response[C], error)
	MigrateFn     func(types.DepsMut[Q], types.Env, []byte) (types.Response[C], error)

	// Calls counts invocations per entry-point name.
	Calls map[string]int
}

func (m *MockContract[Q, C]) count(entry string) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[entry]++
}

func (m *MockContract[Q, C]) Instantiate(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error) {
	m.count("instantiate")
	if m.InstantiateFn == nil {
		return types.Response[C]{}, nil
	}
	return m.InstantiateFn(deps, env, info, msg)
}

func (m *MockContract[Q, C]) Execute(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error) {
	m.count("execute")
	if m.ExecuteFn == nil {
		return types.Response[C]{}, nil
	}
	return m.ExecuteFn(deps, env, info, msg)
}

func (m *MockContract[Q, C]) Query(deps types.Deps[Q], env types.Env, msg []byte) ([]byte, error) {
	m.count("query")
	if m.QueryFn == nil {
		return nil, nil
	}
	return m.QueryFn(deps, env, msg)
}

func (m *MockContract[Q, C]) Sudo(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error) {
	m.count("sudo")
	if m.SudoFn == nil {
		return types.Response[C]{}, nil
	}
	return m.SudoFn(deps, env, msg)
}

func (m *MockContract[Q, C]) Reply(deps types.DepsMut[Q], env types.Env, reply types.Reply) (types.Response[C], error) {
	m.count("reply")
	if m.ReplyFn == nil {
		return types.Response[C]{}, nil
	}
	return m.ReplyFn(deps, env, reply)
}

func (m *MockContract[Q, C]) Migrate(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error) {
	m.count("migrate")
	if m.MigrateFn == nil {
		return types.Response[C]{}, nil
	}
	return m.MigrateFn(deps, env, msg)
}
