package keeper

import (
	errorsmod "cosmossdk.io/errors"

	metrics "github.com/hashicorp/go-metrics"

	"github.com/umbra-zone/umbra/internal/statedelta"
	client "github.com/umbra-zone/umbra/modules/core/02-client"
	"github.com/umbra-zone/umbra/modules/core/02-client/types"
	"github.com/umbra-zone/umbra/modules/core/exported"
	tendermint "github.com/umbra-zone/umbra/modules/light-clients/07-tendermint"
)

// CreateClient validates a client-creation message, and on success assigns
// the new client identifier, increments the client counter and persists the
// client record together with its initial consensus state. All writes are
// committed atomically; a failed validation writes nothing.
func (k *Keeper) CreateClient(ctx Context, msg *types.MsgCreateClient) (string, error) {
	if err := msg.ValidateBasic(); err != nil {
		return "", err
	}

	delta := statedelta.New(k.store)
	view := readView{store: delta, ctx: ctx}

	if err := client.ValidateCreateClient(view, msg); err != nil {
		return "", err
	}

	counter := view.ClientCounter()
	clientID := types.FormatClientIdentifier(msg.ClientState.ClientType(), counter)

	clientData := types.NewClientData(clientID, msg.ClientState, ctx.BlockTime, ctx.BlockHeight)
	if err := setClientData(delta, clientData); err != nil {
		return "", err
	}

	latestHeight := types.NewHeight(
		msg.ClientState.GetLatestHeight().GetRevisionNumber(),
		msg.ClientState.GetLatestHeight().GetRevisionHeight(),
	)
	if err := setConsensusState(delta, clientID, latestHeight, msg.ConsensusState); err != nil {
		return "", err
	}
	setConsensusMetadata(delta, ctx, clientID, latestHeight)
	setClientCounter(delta, counter+1)

	delta.Commit()

	k.logger.Info("client created at height", "client-id", clientID, "height", latestHeight.String())

	defer metrics.IncrCounterWithLabels(
		[]string{"client", "create"},
		1,
		[]metrics.Label{{Name: "client-type", Value: msg.ClientState.ClientType()}},
	)

	return clientID, nil
}

// UpdateClient validates the submitted header against the stored trust root
// and, only on success, persists the derived consensus state and advances the
// client's latest verified height. A rejection leaves the store untouched.
func (k *Keeper) UpdateClient(ctx Context, msg *types.MsgUpdateClient) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	delta := statedelta.New(k.store)
	view := readView{store: delta, ctx: ctx}

	if err := client.ValidateUpdateClient(view, k.verifier, msg); err != nil {
		return err
	}

	// validation guarantees the message resolves to the tendermint variant
	header := msg.ClientMessage.(*tendermint.Header)
	clientData, _ := view.GetClientData(msg.ClientID)
	clientState := clientData.ClientState.(*tendermint.ClientState)

	height := header.GetHeight()
	if err := setConsensusState(delta, msg.ClientID, height, header.ConsensusState()); err != nil {
		return err
	}
	setConsensusMetadata(delta, ctx, msg.ClientID, height)

	// a verified historical header backfills its consensus state without
	// moving the latest-height pointer backwards
	if height.GT(clientState.LatestHeight) {
		clientState.LatestHeight = height
	}

	clientData = types.NewClientData(msg.ClientID, clientState, ctx.BlockTime, ctx.BlockHeight)
	if err := setClientData(delta, clientData); err != nil {
		return err
	}

	delta.Commit()

	k.logger.Info("client state updated", "client-id", msg.ClientID, "height", height.String())

	defer metrics.IncrCounterWithLabels(
		[]string{"client", "update"},
		1,
		[]metrics.Label{
			{Name: "client-type", Value: header.ClientType()},
			{Name: "client-id", Value: msg.ClientID},
		},
	)

	return nil
}

// FreezeClient marks the client frozen at the given height. The frozen flag
// is terminal: freezing an already frozen client is rejected, and no update
// for a frozen client will ever validate again.
func (k *Keeper) FreezeClient(ctx Context, clientID string, height types.Height) error {
	view := readView{store: k.store, ctx: ctx}

	clientData, found := view.GetClientData(clientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "client identifier %s", clientID)
	}

	clientState, ok := clientData.ClientState.(*tendermint.ClientState)
	if !ok {
		return errorsmod.Wrapf(types.ErrInvalidClientType, "expected %T, got %T", &tendermint.ClientState{}, clientData.ClientState)
	}

	if clientState.IsFrozen() {
		return errorsmod.Wrapf(types.ErrClientAlreadyFrozen, "client identifier %s", clientID)
	}

	delta := statedelta.New(k.store)
	clientData = types.NewClientData(clientID, clientState.Frozen(height), ctx.BlockTime, ctx.BlockHeight)
	if err := setClientData(delta, clientData); err != nil {
		return err
	}
	delta.Commit()

	k.logger.Info("client frozen due to misbehaviour", "client-id", clientID, "height", height.String())

	defer metrics.IncrCounterWithLabels(
		[]string{"client", "freeze"},
		1,
		[]metrics.Label{{Name: "client-id", Value: clientID}},
	)

	return nil
}

// ClientStatus returns the status of the given client. A frozen client
// reports Frozen even when also expired, a client without a consensus state
// at its latest height reports Expired, and a client that cannot be decoded
// reports Unknown.
func (k *Keeper) ClientStatus(ctx Context, clientID string) exported.Status {
	view := readView{store: k.store, ctx: ctx}

	clientData, found := view.GetClientData(clientID)
	if !found {
		return exported.Unknown
	}

	clientState, ok := clientData.ClientState.(*tendermint.ClientState)
	if !ok {
		return exported.Unknown
	}

	if clientState.IsFrozen() {
		return exported.Frozen
	}

	consensusState, found := view.GetVerifiedConsensusState(clientID, clientState.LatestHeight)
	if !found {
		// if the client state does not have an associated consensus state
		// for its latest height then it must be expired
		return exported.Expired
	}

	if clientState.IsExpired(consensusState.GetTimestamp(), ctx.BlockTime) {
		return exported.Expired
	}

	return exported.Active
}
