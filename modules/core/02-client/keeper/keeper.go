package keeper

import (
	"encoding/binary"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	cmtjson "github.com/cometbft/cometbft/libs/json"

	"github.com/umbra-zone/umbra/internal/statedelta"
	client "github.com/umbra-zone/umbra/modules/core/02-client"
	"github.com/umbra-zone/umbra/modules/core/02-client/types"
	host "github.com/umbra-zone/umbra/modules/core/24-host"
	"github.com/umbra-zone/umbra/modules/core/exported"
	tendermint "github.com/umbra-zone/umbra/modules/light-clients/07-tendermint"
)

// Context carries the local-chain coordinates of the in-progress block.
// Validation and execution for a message always observe a single consistent
// (time, height) pair.
type Context struct {
	BlockTime   time.Time
	BlockHeight types.Height
}

// Keeper is the execution step surrounding the pure validators: it owns the
// persisted client records and applies the effects of accepted messages.
// Every message drafts its writes in a state delta and commits them only
// after validation succeeds, so a rejection leaves zero trace.
type Keeper struct {
	store    statedelta.KVStore
	verifier tendermint.Verifier
	logger   log.Logger
}

// NewKeeper creates a new Keeper instance.
func NewKeeper(store statedelta.KVStore, verifier tendermint.Verifier, logger log.Logger) *Keeper {
	return &Keeper{
		store:    store,
		verifier: verifier,
		logger:   logger,
	}
}

// Logger returns the keeper's logger.
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

var _ client.StateReader = (*readView)(nil)

// readView adapts a store (or a pending delta over it) plus block context to
// the StateReader contract consumed by the validators.
type readView struct {
	store statedelta.KVStore
	ctx   Context
}

// GetClientData implements client.StateReader.
func (v readView) GetClientData(clientID string) (types.ClientData, bool) {
	var data types.ClientData

	bz := v.store.Get(host.ClientStateKey(clientID))
	if bz == nil {
		return data, false
	}
	if err := cmtjson.Unmarshal(bz, &data); err != nil {
		// the keeper owns every write under this key, so an undecodable
		// record is equivalent to an absent one
		return types.ClientData{}, false
	}
	return data, true
}

// GetVerifiedConsensusState implements client.StateReader.
func (v readView) GetVerifiedConsensusState(clientID string, height types.Height) (exported.ConsensusState, bool) {
	bz := v.store.Get(host.ConsensusStateKey(clientID, height))
	if bz == nil {
		return nil, false
	}

	var consensusState exported.ConsensusState
	if err := cmtjson.Unmarshal(bz, &consensusState); err != nil {
		return nil, false
	}
	return consensusState, true
}

// ClientCounter implements client.StateReader.
func (v readView) ClientCounter() uint64 {
	bz := v.store.Get(host.ClientCounterKey())
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// BlockTimestamp implements client.StateReader.
func (v readView) BlockTimestamp() time.Time {
	return v.ctx.BlockTime
}

// BlockHeight implements client.StateReader.
func (v readView) BlockHeight() types.Height {
	return v.ctx.BlockHeight
}

// StateReader returns the read view over committed state for the given block
// context. It is safe to use speculatively: the view performs no writes.
func (k *Keeper) StateReader(ctx Context) client.StateReader {
	return readView{store: k.store, ctx: ctx}
}

// GetProcessedTime returns the local block time observed when the consensus
// state at the given height was stored.
func (k *Keeper) GetProcessedTime(clientID string, height types.Height) (time.Time, bool) {
	bz := k.store.Get(host.ProcessedTimeKey(clientID, height))
	if len(bz) != 8 {
		return time.Time{}, false
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(bz))), true
}

// GetProcessedHeight returns the local block height at which the consensus
// state at the given height was stored.
func (k *Keeper) GetProcessedHeight(clientID string, height types.Height) (types.Height, bool) {
	bz := k.store.Get(host.ProcessedHeightKey(clientID, height))
	if bz == nil {
		return types.Height{}, false
	}

	processedHeight, err := types.ParseHeight(string(bz))
	if err != nil {
		return types.Height{}, false
	}
	return processedHeight, true
}

func setClientData(store statedelta.KVStore, data types.ClientData) error {
	bz, err := cmtjson.Marshal(data)
	if err != nil {
		return errorsmod.Wrap(err, "failed to marshal client data")
	}
	store.Set(host.ClientStateKey(data.ClientID), bz)
	return nil
}

func setConsensusState(store statedelta.KVStore, clientID string, height types.Height, consensusState exported.ConsensusState) error {
	bz, err := cmtjson.Marshal(&consensusState)
	if err != nil {
		return errorsmod.Wrap(err, "failed to marshal consensus state")
	}
	store.Set(host.ConsensusStateKey(clientID, height), bz)
	return nil
}

// setConsensusMetadata sets the local block time and height at which a
// consensus state was stored. Connection and packet handling layers use this
// record to enforce delay periods.
func setConsensusMetadata(store statedelta.KVStore, ctx Context, clientID string, height types.Height) {
	timeBz := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBz, uint64(ctx.BlockTime.UnixNano()))
	store.Set(host.ProcessedTimeKey(clientID, height), timeBz)
	store.Set(host.ProcessedHeightKey(clientID, height), []byte(ctx.BlockHeight.String()))
}

func setClientCounter(store statedelta.KVStore, counter uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, counter)
	store.Set(host.ClientCounterKey(), bz)
}
