package capitest

import (
	"testing"

	"github.com/blockberries/capi"
	"github.com/blockberries/capi/types"
)

// ComplianceOptions configures [RunComplianceSuite] for one contract.
type ComplianceOptions struct {
	// Well-formed encoded payloads for the three required entry
	// points.
	ValidInstantiate []byte
	ValidExecute     []byte
	ValidQuery       []byte

	// Which optional entry points the contract supplies. Unsupplied
	// ones are checked for their fixed "not implemented" diagnostic.
	HasSudo    bool
	HasReply   bool
	HasMigrate bool

	// Sender used for instantiate/execute. Defaults to "creator".
	Sender string
}

// RunComplianceSuite runs a standard test suite verifying that a
// contract behaves correctly at the dispatch boundary: well-formed
// payloads succeed, malformed payloads fail recoverably, and missing
// optional entry points report their fixed diagnostics.
//
// The factory should return a fresh contract instance for each test.
func RunComplianceSuite[Q, C any](t *testing.T, factory func() capi.Contract[Q, C], opts ComplianceOptions) {
	t.Helper()

	sender := opts.Sender
	if sender == "" {
		sender = "creator"
	}
	// Payload no tagged struct encodes to.
	malformed := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

	t.Run("instantiate_execute_query", func(t *testing.T) {
		contract := factory()
		h := NewHarness(t, contract)

		if _, err := contract.Instantiate(h.DepsMut(), h.Env(), MockInfo(sender), opts.ValidInstantiate); err != nil {
			t.Fatalf("Instantiate with valid payload failed: %v", err)
		}
		if _, err := contract.Execute(h.DepsMut(), h.Env(), MockInfo(sender), opts.ValidExecute); err != nil {
			t.Fatalf("Execute with valid payload failed: %v", err)
		}
		if _, err := contract.Query(h.Deps(), h.Env(), opts.ValidQuery); err != nil {
			t.Fatalf("Query with valid payload failed: %v", err)
		}
	})

	t.Run("malformed_payload_recoverable", func(t *testing.T) {
		contract := factory()
		h := NewHarness(t, contract)

		if _, err := contract.Instantiate(h.DepsMut(), h.Env(), MockInfo(sender), opts.ValidInstantiate); err != nil {
			t.Fatalf("Instantiate failed: %v", err)
		}

		if _, err := contract.Execute(h.DepsMut(), h.Env(), MockInfo(sender), malformed); err == nil {
			t.Error("Execute with malformed payload should fail")
		}
		if _, err := contract.Query(h.Deps(), h.Env(), malformed); err == nil {
			t.Error("Query with malformed payload should fail")
		}

		// The boundary must remain usable after a decode failure.
		if _, err := contract.Execute(h.DepsMut(), h.Env(), MockInfo(sender), opts.ValidExecute); err != nil {
			t.Errorf("Execute after decode failure failed: %v", err)
		}
	})

	t.Run("missing_entry_point_diagnostics", func(t *testing.T) {
		contract := factory()
		h := NewHarness(t, contract)

		if !opts.HasSudo {
			_, err := contract.Sudo(h.DepsMut(), h.Env(), opts.ValidExecute)
			assertNotImplemented(t, err, "Sudo")
		}
		if !opts.HasReply {
			_, err := contract.Reply(h.DepsMut(), h.Env(), types.FailedReply(1, "probe"))
			assertNotImplemented(t, err, "Reply")
		}
		if !opts.HasMigrate {
			_, err := contract.Migrate(h.DepsMut(), h.Env(), opts.ValidExecute)
			assertNotImplemented(t, err, "Migrate")
		}
	})
}

func assertNotImplemented(t *testing.T, err error, entry string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s should fail on a contract that does not supply it", entry)
		return
	}
	n, ok := capi.AsNotImplemented(err)
	if !ok {
		t.Errorf("%s: got %v, want NotImplementedError", entry, err)
		return
	}
	if n.Entry != entry {
		t.Errorf("diagnostic names %q, want %q", n.Entry, entry)
	}
	want := entry + " not implemented on the contract"
	if n.Error() != want {
		t.Errorf("diagnostic %q, want %q", n.Error(), want)
	}
}
