package tendermint

import (
	"bytes"
	"time"

	errorsmod "cosmossdk.io/errors"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	cmttypes "github.com/cometbft/cometbft/types"

	clienttypes "github.com/umbra-zone/umbra/modules/core/02-client/types"
	"github.com/umbra-zone/umbra/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ConsensusState is an immutable snapshot of the remote chain at one height.
// It is appended at most once per (client, height) pair by a successful
// update and never mutated after it is written.
type ConsensusState struct {
	// timestamp that corresponds to the block height in which the ConsensusState
	// was stored.
	Timestamp time.Time `json:"timestamp"`
	// commitment root (app hash of the remote block)
	Root cmtbytes.HexBytes `json:"root"`
	// hash of the next validator set, used to chain trust forward to the
	// following update without re-verifying history
	NextValidatorsHash cmtbytes.HexBytes `json:"next_validators_hash"`
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(timestamp time.Time, root, nextValsHash cmtbytes.HexBytes) *ConsensusState {
	return &ConsensusState{
		Timestamp:          timestamp,
		Root:               root,
		NextValidatorsHash: nextValsHash,
	}
}

// ClientType returns Tendermint
func (ConsensusState) ClientType() string {
	return exported.Tendermint
}

// GetTimestamp returns the timestamp of the consensus state.
func (cs ConsensusState) GetTimestamp() time.Time {
	return cs.Timestamp
}

// ValidateBasic defines a basic validation for the tendermint consensus state.
// NOTE: ProcessedTimestamp may be zero if this is an initial consensus state passed in by relayer
// as opposed to a consensus state constructed by the chain.
func (cs ConsensusState) ValidateBasic() error {
	if len(cs.Root) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "root cannot be empty")
	}
	if err := cmttypes.ValidateHash(cs.NextValidatorsHash); err != nil {
		return errorsmod.Wrap(err, "next validators hash is invalid")
	}
	if cs.Timestamp.Unix() <= 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "timestamp must be a positive Unix time")
	}
	return nil
}

// Equal reports exact structural equality of two consensus states. It is the
// comparison used for duplicate-update detection: re-submission of a header
// whose derived consensus state already exists at the same height is rejected
// before any cryptographic work.
func (cs ConsensusState) Equal(other *ConsensusState) bool {
	if other == nil {
		return false
	}
	return cs.Timestamp.Equal(other.Timestamp) &&
		bytes.Equal(cs.Root, other.Root) &&
		bytes.Equal(cs.NextValidatorsHash, other.NextValidatorsHash)
}
