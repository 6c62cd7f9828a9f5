package customize_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/blockberries/capi/customize"
	capitest "github.com/blockberries/capi/testing"
	"github.com/blockberries/capi/types"
)

// chainMsg is a concrete extension message type for widening tests.
type chainMsg struct {
	Mint *mintMsg `cramberry:"1"`
}

type mintMsg struct {
	Amount uint64 `cramberry:"1"`
}

// chainQuery is a concrete extension query type for narrowing tests.
type chainQuery struct {
	Price *priceQuery `cramberry:"1"`
}

type priceQuery struct {
	Pair string `cramberry:"1"`
}

func TestNarrowDepsMut_SharesCollaborators(t *testing.T) {
	storage := capitest.NewMemStorage()
	raw := capitest.NewStaticQuerier()
	deps := types.DepsMut[chainQuery]{
		Storage: storage,
		API:     capitest.TestAPI{},
		Querier: types.NewQuerierWrapper[chainQuery](raw),
	}

	narrowed := customize.NarrowDepsMut(deps)

	if narrowed.Storage != types.Storage(storage) {
		t.Error("narrowing must carry the storage handle through")
	}
	if narrowed.Querier.Raw() != types.RawQuerier(raw) {
		t.Error("narrowing must re-wrap the same raw querier")
	}

	// Writes through the narrowed context land in the original storage.
	narrowed.Storage.Set([]byte("k"), []byte("v"))
	if got := storage.Get([]byte("k")); string(got) != "v" {
		t.Errorf("storage write through narrowed context: got %q", got)
	}
}

func TestNarrowDeps_QueriesDelegate(t *testing.T) {
	raw := capitest.QuerierFunc(func(req []byte) ([]byte, error) {
		return []byte{0x01, 0x02}, nil
	})
	deps := types.Deps[chainQuery]{
		Storage: capitest.NewMemStorage(),
		API:     capitest.TestAPI{},
		Querier: types.NewQuerierWrapper[chainQuery](raw),
	}

	narrowed := customize.NarrowDeps(deps)
	resp, err := narrowed.Querier.Raw().RawQuery([]byte("probe"))
	if err != nil {
		t.Fatalf("RawQuery through narrowed context: %v", err)
	}
	if !reflect.DeepEqual(resp, []byte{0x01, 0x02}) {
		t.Errorf("got %x", resp)
	}
}

func TestWidenSubMsg_PreservesEnvelope(t *testing.T) {
	gas := uint64(500_000)
	variants := map[string]types.Msg[types.Empty]{
		"wasm":         {Wasm: &types.WasmMsg{Execute: &types.ExecuteMsg{ContractAddr: "other", Msg: []byte("{}")}}},
		"bank":         {Bank: &types.BankMsg{Send: &types.SendMsg{ToAddress: "bob", Amount: []types.Coin{types.NewCoin(7, "token")}}}},
		"staking":      {Staking: &types.StakingMsg{Delegate: &types.DelegateMsg{Validator: "val1", Amount: types.NewCoin(1, "stake")}}},
		"distribution": {Distribution: &types.DistributionMsg{WithdrawDelegatorReward: &types.WithdrawDelegatorRewardMsg{Validator: "val1"}}},
		"ibc":          {IBC: &types.IBCMsg{CloseChannel: &types.CloseChannelMsg{ChannelID: "channel-3"}}},
		"raw":          {Raw: &types.RawMsg{TypeURL: "/custom.Op", Value: []byte{0xaa}}},
	}

	for name, msg := range variants {
		t.Run(name, func(t *testing.T) {
			in := types.SubMsg[types.Empty]{
				ID:       42,
				Msg:      msg,
				GasLimit: &gas,
				ReplyOn:  types.ReplyAlways,
			}
			out, err := customize.WidenSubMsg[chainMsg](in)
			if err != nil {
				t.Fatalf("WidenSubMsg: %v", err)
			}
			if out.ID != 42 || out.ReplyOn != types.ReplyAlways {
				t.Errorf("envelope fields changed: %+v", out)
			}
			if out.GasLimit != in.GasLimit {
				t.Error("gas ceiling must carry through unchanged")
			}
			// The structural payload is shared, not copied.
			if out.Msg.Wasm != msg.Wasm || out.Msg.Bank != msg.Bank ||
				out.Msg.Staking != msg.Staking || out.Msg.Distribution != msg.Distribution ||
				out.Msg.IBC != msg.IBC || out.Msg.Raw != msg.Raw {
				t.Error("structural variant must be copied through as-is")
			}
			if out.Msg.Custom != nil {
				t.Error("widening must not invent a custom payload")
			}
		})
	}
}

func TestWidenSubMsg_UnknownVariant(t *testing.T) {
	_, err := customize.WidenSubMsg[chainMsg](types.SubMsg[types.Empty]{ID: 1})
	if !errors.Is(err, customize.ErrUnknownMsgVariant) {
		t.Fatalf("got %v, want ErrUnknownMsgVariant", err)
	}
	if err.Error() != "unknown message variant" {
		t.Errorf("message %q", err.Error())
	}
}

func TestWidenSubMsg_CustomVariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a custom variant in a baseline message must panic")
		}
	}()
	customize.WidenSubMsg[chainMsg](types.SubMsg[types.Empty]{
		Msg: types.Msg[types.Empty]{Custom: &types.Empty{}},
	})
}

func TestWidenResponse_SharedFieldsIdentity(t *testing.T) {
	in := types.NewResponse[types.Empty]().
		AddSubMsg(types.ReplyOnSuccess(9, types.NewBankSend[types.Empty]("bob", types.NewCoin(3, "token")))).
		AddMessage(types.Msg[types.Empty]{Raw: &types.RawMsg{TypeURL: "/x", Value: []byte{1}}}).
		AddEvent(types.NewEvent("transfer").AddAttribute("to", "bob")).
		AddAttribute("action", "send").
		AddAttribute("amount", "3").
		SetData([]byte{0xbe, 0xef})

	out, err := customize.WidenResponse[chainMsg](in)
	if err != nil {
		t.Fatalf("WidenResponse: %v", err)
	}

	if !reflect.DeepEqual(out.Events, in.Events) {
		t.Error("events must carry through exactly")
	}
	if !reflect.DeepEqual(out.Attributes, in.Attributes) {
		t.Error("attributes must carry through exactly")
	}
	if !reflect.DeepEqual(out.Data, in.Data) {
		t.Error("opaque payload must carry through exactly")
	}
	if len(out.Messages) != len(in.Messages) {
		t.Fatalf("submessage count: got %d, want %d", len(out.Messages), len(in.Messages))
	}
	for i := range out.Messages {
		if out.Messages[i].ID != in.Messages[i].ID ||
			out.Messages[i].ReplyOn != in.Messages[i].ReplyOn {
			t.Errorf("submessage %d envelope changed", i)
		}
	}
}

func TestWidenResponse_UnknownVariantFails(t *testing.T) {
	in := types.NewResponse[types.Empty]().
		AddSubMsg(types.NewSubMsg(types.Msg[types.Empty]{})). // no variant set
		AddAttribute("action", "broken")

	_, err := customize.WidenResponse[chainMsg](in)
	if !errors.Is(err, customize.ErrUnknownMsgVariant) {
		t.Fatalf("got %v, want ErrUnknownMsgVariant", err)
	}
}
