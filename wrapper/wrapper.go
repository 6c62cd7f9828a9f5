package wrapper

import (
	"github.com/blockberries/capi"
	"github.com/blockberries/capi/types"
)

// Compile-time interface check.
var _ capi.Contract[types.Empty, types.Empty] = (*ContractWrapper[types.Empty, types.Empty])(nil)

// ContractWrapper aggregates one bound handler per entry-point kind
// and implements capi.Contract. It is constructed once at
// contract-registration time and holds no mutable state across calls.
type ContractWrapper[Q, C any] struct {
	instantiate contractBinding[Q, C]
	execute     contractBinding[Q, C]
	query       queryBinding[Q]
	sudo        permissionedBinding[Q, C]
	reply       replyBinding[Q, C]
	migrate     permissionedBinding[Q, C]
}

// NewContract binds the three required handlers into a contract.
// Sudo, Reply, and Migrate get default bindings that fail with a fixed
// "not implemented" diagnostic; attach real ones via [WithSudo],
// [WithReply], and [WithMigrate].
//
// Each handler's declared message type is captured here, once: ExecT,
// InstT, and QueryT need not be related to each other in any way.
func NewContract[ExecT, InstT, QueryT, Q, C any](
	execute ContractFn[ExecT, Q, C],
	instantiate ContractFn[InstT, Q, C],
	query QueryFn[QueryT, Q],
) *ContractWrapper[Q, C] {
	return &ContractWrapper[Q, C]{
		instantiate: bindContractFn(KindInstantiate, instantiate),
		execute:     bindContractFn(KindExecute, execute),
		query:       bindQueryFn(query),
		sudo:        defaultSudo[Q, C],
		reply:       defaultReply[Q, C],
		migrate:     defaultMigrate[Q, C],
	}
}

// WithSudo attaches a sudo handler. A free function rather than a
// method because the handler introduces its own message type.
func WithSudo[T, Q, C any](w *ContractWrapper[Q, C], fn PermissionedFn[T, Q, C]) *ContractWrapper[Q, C] {
	w.sudo = bindPermissionedFn(KindSudo, fn)
	return w
}

// WithReply attaches a reply handler.
func WithReply[Q, C any](w *ContractWrapper[Q, C], fn ReplyFn[Q, C]) *ContractWrapper[Q, C] {
	w.reply = bindReplyFn(fn)
	return w
}

// WithMigrate attaches a migrate handler.
func WithMigrate[T, Q, C any](w *ContractWrapper[Q, C], fn PermissionedFn[T, Q, C]) *ContractWrapper[Q, C] {
	w.migrate = bindPermissionedFn(KindMigrate, fn)
	return w
}

func (w *ContractWrapper[Q, C]) Instantiate(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error) {
	return w.instantiate(deps, env, info, msg)
}

func (w *ContractWrapper[Q, C]) Execute(deps types.DepsMut[Q], env types.Env, info types.MessageInfo, msg []byte) (types.Response[C], error) {
	return w.execute(deps, env, info, msg)
}

func (w *ContractWrapper[Q, C]) Query(deps types.Deps[Q], env types.Env, msg []byte) ([]byte, error) {
	return w.query(deps, env, msg)
}

func (w *ContractWrapper[Q, C]) Sudo(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error) {
	return w.sudo(deps, env, msg)
}

func (w *ContractWrapper[Q, C]) Reply(deps types.DepsMut[Q], env types.Env, reply types.Reply) (types.Response[C], error) {
	return w.reply(deps, env, reply)
}

func (w *ContractWrapper[Q, C]) Migrate(deps types.DepsMut[Q], env types.Env, msg []byte) (types.Response[C], error) {
	return w.migrate(deps, env, msg)
}
