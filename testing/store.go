// Package capitest provides test utilities for CAPI contract
// development: in-memory stand-ins for the host collaborators, a
// configurable mock contract, a test harness, and a reusable
// compliance suite.
package capitest

import (
	"fmt"
	"strings"

	"github.com/blockberries/capi/types"
)

// Compile-time interface checks.
var (
	_ types.Storage    = (*MemStorage)(nil)
	_ types.HostAPI    = TestAPI{}
	_ types.RawQuerier = (*StaticQuerier)(nil)
	_ types.RawQuerier = (QuerierFunc)(nil)
)

// MemStorage is a map-backed types.Storage for tests.
type MemStorage struct {
	m map[string][]byte
}

// NewMemStorage creates an empty storage.
func NewMemStorage() *MemStorage {
	return &MemStorage{m: make(map[string][]byte)}
}

func (s *MemStorage) Get(key []byte) []byte {
	v, ok := s.m[string(key)]
	if !ok {
		return nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

func (s *MemStorage) Set(key, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	s.m[string(key)] = v
}

func (s *MemStorage) Delete(key []byte) {
	delete(s.m, string(key))
}

// Len returns the number of stored keys.
func (s *MemStorage) Len() int {
	return len(s.m)
}

// TestAPI is a host-capability stand-in. Addresses are "valid" when
// non-empty, lowercase, and space-free; canonical form is the raw
// bytes of the human form.
type TestAPI struct{}

func (TestAPI) ValidateAddress(human string) error {
	if human == "" {
		return fmt.Errorf("empty address")
	}
	if strings.ContainsAny(human, " \t\n") || human != strings.ToLower(human) {
		return fmt.Errorf("invalid address %q", human)
	}
	return nil
}

func (a TestAPI) CanonicalizeAddress(human string) ([]byte, error) {
	if err := a.ValidateAddress(human); err != nil {
		return nil, err
	}
	return []byte(human), nil
}

func (TestAPI) HumanizeAddress(canonical []byte) (string, error) {
	if len(canonical) == 0 {
		return "", fmt.Errorf("empty canonical address")
	}
	return string(canonical), nil
}

// StaticQuerier is a raw querier answering from canned responses keyed
// by the exact encoded request.
type StaticQuerier struct {
	responses map[string][]byte
}

// NewStaticQuerier creates a querier with no responses configured.
func NewStaticQuerier() *StaticQuerier {
	return &StaticQuerier{responses: make(map[string][]byte)}
}

// Respond configures the response for one exact request payload.
func (q *StaticQuerier) Respond(req, resp []byte) {
	q.responses[string(req)] = resp
}

func (q *StaticQuerier) RawQuery(req []byte) ([]byte, error) {
	resp, ok := q.responses[string(req)]
	if !ok {
		return nil, fmt.Errorf("no response configured for query %x", req)
	}
	return resp, nil
}

// QuerierFunc adapts a function to types.RawQuerier.
type QuerierFunc func(req []byte) ([]byte, error)

func (f QuerierFunc) RawQuery(req []byte) ([]byte, error) {
	return f(req)
}
