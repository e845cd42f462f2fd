package client_test

import (
	"time"

	"github.com/umbra-zone/umbra/modules/core/02-client/types"
	"github.com/umbra-zone/umbra/modules/core/exported"
	tendermint "github.com/umbra-zone/umbra/modules/light-clients/07-tendermint"
)

// mockState is an in-memory StateReader for exercising the validators in
// isolation from the keeper and its store encoding.
type mockState struct {
	clients     map[string]types.ClientData
	consensus   map[string]map[string]exported.ConsensusState
	counter     uint64
	blockTime   time.Time
	blockHeight types.Height
}

func newMockState() *mockState {
	return &mockState{
		clients:   make(map[string]types.ClientData),
		consensus: make(map[string]map[string]exported.ConsensusState),
	}
}

func (m *mockState) setClientData(data types.ClientData) {
	m.clients[data.ClientID] = data
}

func (m *mockState) setConsensusState(clientID string, height types.Height, consensusState exported.ConsensusState) {
	if m.consensus[clientID] == nil {
		m.consensus[clientID] = make(map[string]exported.ConsensusState)
	}
	m.consensus[clientID][height.String()] = consensusState
}

func (m *mockState) deleteConsensusState(clientID string, height types.Height) {
	delete(m.consensus[clientID], height.String())
}

func (m *mockState) GetClientData(clientID string) (types.ClientData, bool) {
	data, found := m.clients[clientID]
	return data, found
}

func (m *mockState) GetVerifiedConsensusState(clientID string, height types.Height) (exported.ConsensusState, bool) {
	consensusState, found := m.consensus[clientID][height.String()]
	return consensusState, found
}

func (m *mockState) ClientCounter() uint64 {
	return m.counter
}

func (m *mockState) BlockTimestamp() time.Time {
	return m.blockTime
}

func (m *mockState) BlockHeight() types.Height {
	return m.blockHeight
}

// stubVerifier returns a fixed verdict and records whether it was consulted,
// so tests can pin down which checks run before cryptographic verification.
type stubVerifier struct {
	verdict tendermint.Verdict
	called  bool
}

func (v *stubVerifier) Verify(tendermint.UntrustedBlockState, tendermint.TrustedBlockState, tendermint.Options, time.Time) tendermint.Verdict {
	v.called = true
	return v.verdict
}

// unsupportedClientState stands in for a light-client variant the validators
// do not support.
type unsupportedClientState struct{}

func (unsupportedClientState) ClientType() string               { return "06-solomachine" }
func (unsupportedClientState) GetLatestHeight() exported.Height { return types.ZeroHeight() }
func (unsupportedClientState) IsFrozen() bool                   { return false }
func (unsupportedClientState) Expired(time.Duration) bool       { return false }
func (unsupportedClientState) Validate() error                  { return nil }

// unsupportedClientMessage stands in for a header of an unsupported variant.
type unsupportedClientMessage struct{}

func (unsupportedClientMessage) ClientType() string   { return "06-solomachine" }
func (unsupportedClientMessage) ValidateBasic() error { return nil }
