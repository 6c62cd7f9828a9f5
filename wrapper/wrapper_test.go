package wrapper_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blockberries/capi"
	"github.com/blockberries/capi/codec"
	capitest "github.com/blockberries/capi/testing"
	"github.com/blockberries/capi/types"
	"github.com/blockberries/capi/wrapper"
)

// Three unrelated message types, one per required entry point.
type initMsg struct {
	Owner string `cramberry:"1"`
}

type pingMsg struct {
	Nonce uint64 `cramberry:"1"`
}

type echoQuery struct {
	Text string `cramberry:"1"`
}

func baselineDepsMut() types.DepsMut[types.Empty] {
	return types.DepsMut[types.Empty]{
		Storage: capitest.NewMemStorage(),
		API:     capitest.TestAPI{},
		Querier: types.NewQuerierWrapper[types.Empty](capitest.NewStaticQuerier()),
	}
}

func testContract() *wrapper.ContractWrapper[types.Empty, types.Empty] {
	execute := func(_ types.DepsMut[types.Empty], _ types.Env, _ types.MessageInfo, msg pingMsg) (types.Response[types.Empty], error) {
		if msg.Nonce == 0 {
			return types.Response[types.Empty]{}, fmt.Errorf("zero nonce")
		}
		return types.NewResponse[types.Empty]().
			AddAttribute("nonce", fmt.Sprintf("%d", msg.Nonce)), nil
	}
	instantiate := func(deps types.DepsMut[types.Empty], _ types.Env, _ types.MessageInfo, msg initMsg) (types.Response[types.Empty], error) {
		deps.Storage.Set([]byte("owner"), []byte(msg.Owner))
		return types.NewResponse[types.Empty](), nil
	}
	query := func(_ types.Deps[types.Empty], _ types.Env, msg echoQuery) ([]byte, error) {
		return []byte(msg.Text), nil
	}
	return wrapper.NewContract(execute, instantiate, query)
}

func TestContractWrapper_RoutesDecodedMessages(t *testing.T) {
	contract := testContract()
	deps := baselineDepsMut()
	env := capitest.MockEnv()

	if _, err := contract.Instantiate(deps, env, capitest.MockInfo("alice"), codec.MustMarshal(initMsg{Owner: "alice"})); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if got := deps.Storage.Get([]byte("owner")); string(got) != "alice" {
		t.Errorf("owner = %q, want alice", got)
	}

	resp, err := contract.Execute(deps, env, capitest.MockInfo("alice"), codec.MustMarshal(pingMsg{Nonce: 9}))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(resp.Attributes) != 1 || resp.Attributes[0].Value != "9" {
		t.Errorf("attributes = %+v", resp.Attributes)
	}

	data, err := contract.Query(deps.AsReadOnly(), env, codec.MustMarshal(echoQuery{Text: "hello"}))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("query payload = %q", data)
	}
}

func TestContractWrapper_DecodeFailureIsCallError(t *testing.T) {
	contract := testContract()
	deps := baselineDepsMut()
	env := capitest.MockEnv()

	malformed := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	_, err := contract.Execute(deps, env, capitest.MockInfo("alice"), malformed)
	if err == nil {
		t.Fatal("expected a decode error")
	}
	var callErr *capi.CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("got %T, want *capi.CallError", err)
	}
	if callErr.Entry != "execute" {
		t.Errorf("entry = %q, want execute", callErr.Entry)
	}

	// The boundary stays usable after a failed decode.
	if _, err := contract.Execute(deps, env, capitest.MockInfo("alice"), codec.MustMarshal(pingMsg{Nonce: 1})); err != nil {
		t.Errorf("Execute after failed decode: %v", err)
	}
}

func TestContractWrapper_HandlerErrorIsTagged(t *testing.T) {
	contract := testContract()
	_, err := contract.Execute(baselineDepsMut(), capitest.MockEnv(), capitest.MockInfo("alice"), codec.MustMarshal(pingMsg{Nonce: 0}))
	if err == nil {
		t.Fatal("expected a handler error")
	}
	var callErr *capi.CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("got %T, want *capi.CallError", err)
	}
	if err.Error() != "execute: zero nonce" {
		t.Errorf("message %q", err.Error())
	}
}

func TestContractWrapper_DefaultDiagnostics(t *testing.T) {
	contract := testContract()
	deps := baselineDepsMut()
	env := capitest.MockEnv()

	cases := []struct {
		entry string
		call  func() error
	}{
		{"Sudo", func() error { _, err := contract.Sudo(deps, env, []byte("x")); return err }},
		{"Reply", func() error { _, err := contract.Reply(deps, env, types.SuccessReply(1, nil, nil)); return err }},
		{"Migrate", func() error { _, err := contract.Migrate(deps, env, []byte("x")); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.entry, func(t *testing.T) {
			err := tc.call()
			var notImpl *capi.NotImplementedError
			if !errors.As(err, &notImpl) {
				t.Fatalf("got %v, want *capi.NotImplementedError", err)
			}
			want := tc.entry + " not implemented on the contract"
			if notImpl.Error() != want {
				t.Errorf("message %q, want %q", notImpl.Error(), want)
			}
		})
	}
}

func TestContractWrapper_OptionalEntryPoints(t *testing.T) {
	contract := testContract()
	wrapper.WithSudo(contract, func(_ types.DepsMut[types.Empty], _ types.Env, msg pingMsg) (types.Response[types.Empty], error) {
		return types.NewResponse[types.Empty]().AddAttribute("sudo", "ok"), nil
	})
	wrapper.WithReply(contract, func(_ types.DepsMut[types.Empty], _ types.Env, reply types.Reply) (types.Response[types.Empty], error) {
		return types.NewResponse[types.Empty]().AddAttribute("reply_id", fmt.Sprintf("%d", reply.ID)), nil
	})
	wrapper.WithMigrate(contract, func(_ types.DepsMut[types.Empty], _ types.Env, msg initMsg) (types.Response[types.Empty], error) {
		return types.NewResponse[types.Empty]().AddAttribute("migrated_to", msg.Owner), nil
	})

	deps := baselineDepsMut()
	env := capitest.MockEnv()

	resp, err := contract.Sudo(deps, env, codec.MustMarshal(pingMsg{Nonce: 1}))
	if err != nil || len(resp.Attributes) != 1 || resp.Attributes[0].Key != "sudo" {
		t.Errorf("Sudo: %v %+v", err, resp.Attributes)
	}
	resp, err = contract.Reply(deps, env, types.SuccessReply(77, nil, nil))
	if err != nil || len(resp.Attributes) != 1 || resp.Attributes[0].Value != "77" {
		t.Errorf("Reply: %v %+v", err, resp.Attributes)
	}
	resp, err = contract.Migrate(deps, env, codec.MustMarshal(initMsg{Owner: "v2"}))
	if err != nil || len(resp.Attributes) != 1 || resp.Attributes[0].Value != "v2" {
		t.Errorf("Migrate: %v %+v", err, resp.Attributes)
	}
}

func TestKindString(t *testing.T) {
	kinds := map[wrapper.Kind]string{
		wrapper.KindInstantiate: "instantiate",
		wrapper.KindExecute:     "execute",
		wrapper.KindQuery:       "query",
		wrapper.KindSudo:        "sudo",
		wrapper.KindReply:       "reply",
		wrapper.KindMigrate:     "migrate",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(kind), got, want)
		}
	}
}
