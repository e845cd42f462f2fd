package client

import (
	"time"

	"github.com/umbra-zone/umbra/modules/core/02-client/types"
	"github.com/umbra-zone/umbra/modules/core/exported"
)

// StateReader is the read view over persisted client records consumed by the
// validators. Implementations must observe the in-progress block's state
// overlay, including the effects of earlier transactions in the same block,
// never a partially applied state.
//
// All validation state flows through this interface; the validators hold no
// ambient store access.
type StateReader interface {
	// GetClientData returns the stored record for the given client, if any.
	GetClientData(clientID string) (types.ClientData, bool)

	// GetVerifiedConsensusState returns the consensus state stored for the
	// client at the given height. Every consensus state it returns was
	// produced by a prior successful update validation.
	GetVerifiedConsensusState(clientID string, height types.Height) (exported.ConsensusState, bool)

	// ClientCounter returns the chain-wide counter from which the next
	// client identifier is derived.
	ClientCounter() uint64

	// BlockTimestamp returns the current block time.
	BlockTimestamp() time.Time

	// BlockHeight returns the current block height.
	BlockHeight() types.Height
}
