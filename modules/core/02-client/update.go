package client

import (
	"bytes"
	"math"

	errorsmod "cosmossdk.io/errors"

	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/umbra-zone/umbra/modules/core/02-client/types"
	tendermint "github.com/umbra-zone/umbra/modules/light-clients/07-tendermint"
)

// ValidateUpdateClient decides whether the submitted header is a legitimate
// continuation of the client's trust root. It is an ordered, fail-closed
// pipeline: the first failing check aborts with its specific error and no
// partial effects exist because the function never writes.
//
// The check order matters for cost, not correctness: cheap structural and
// temporal checks run first, the duplicate short-circuit runs before any
// cryptographic work, and the signature-threshold verification runs last.
func ValidateUpdateClient(state StateReader, verifier tendermint.Verifier, msg *types.MsgUpdateClient) error {
	clientData, found := state.GetClientData(msg.ClientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "client identifier %s", msg.ClientID)
	}

	if clientData.ClientState.IsFrozen() {
		return errorsmod.Wrapf(types.ErrClientFrozen, "client identifier %s", msg.ClientID)
	}

	if err := clientIsNotExpired(state, clientData); err != nil {
		return err
	}

	// Both the stored client state and the submitted header must resolve to
	// the same supported light-client variant. Unsupported kinds are mapped
	// to a type mismatch, never coerced.
	trustedClientState, ok := clientData.ClientState.(*tendermint.ClientState)
	if !ok {
		return errorsmod.Wrapf(types.ErrInvalidClientType, "invalid client state: expected %T, got %T", &tendermint.ClientState{}, clientData.ClientState)
	}

	untrustedHeader, ok := msg.ClientMessage.(*tendermint.Header)
	if !ok {
		return errorsmod.Wrapf(types.ErrInvalidClientType, "invalid header: expected %T, got %T", &tendermint.Header{}, msg.ClientMessage)
	}

	// Re-run the stateless header checks so a caller bypassing message
	// validation cannot reach the stateful checks with a malformed header.
	if err := untrustedHeader.ValidateBasic(); err != nil {
		return err
	}

	// Optimization: reject duplicate updates instead of verifying them.
	// Skipping this must never change the outcome, only the cost.
	if updateIsAlreadyCommitted(state, msg.ClientID, untrustedHeader) {
		return errorsmod.Wrapf(types.ErrUpdateAlreadyCommitted, "consensus state already exists for client %s at height %s", msg.ClientID, untrustedHeader.GetHeight())
	}

	if err := headerRevisionMatchesClientState(trustedClientState, untrustedHeader); err != nil {
		return err
	}

	if err := headerHeightIsConsistent(untrustedHeader); err != nil {
		return err
	}

	// The (still untrusted) header uses the TrustedHeight field to specify
	// the trusted anchor data it is extending.
	trustedHeight := untrustedHeader.TrustedHeight

	trustedConsensusState, found := state.GetVerifiedConsensusState(msg.ClientID, trustedHeight)
	if !found {
		return errorsmod.Wrapf(types.ErrConsensusStateNotFound, "trusted consensus state not found for client %s at height %s", msg.ClientID, trustedHeight)
	}

	lastTrustedConsensusState, ok := trustedConsensusState.(*tendermint.ConsensusState)
	if !ok {
		return errorsmod.Wrapf(types.ErrInvalidConsensus, "invalid consensus state: expected %T, got %T", &tendermint.ConsensusState{}, trustedConsensusState)
	}

	// An IBC height has two components but the verifier works with a plain
	// tendermint height, which has only one.
	if trustedHeight.RevisionHeight > math.MaxInt64 {
		return errorsmod.Wrapf(tendermint.ErrInvalidHeaderHeight, "trusted height %s overflows the tendermint block height", trustedHeight)
	}

	trustedValidatorSet, err := headerValidatorSetChainsFromTrusted(untrustedHeader, lastTrustedConsensusState)
	if err != nil {
		return err
	}

	// Now build the trusted and untrusted states to feed to the verifier.
	trustedState := tendermint.TrustedBlockState{
		ChainID:            trustedClientState.ChainID,
		HeaderTime:         lastTrustedConsensusState.Timestamp,
		Height:             trustedHeight.RevisionHeight,
		NextValidators:     trustedValidatorSet,
		NextValidatorsHash: lastTrustedConsensusState.NextValidatorsHash,
	}

	untrustedState := tendermint.UntrustedBlockState{
		SignedHeader: untrustedHeader.SignedHeader,
		Validators:   untrustedHeader.ValidatorSet,
		// the next validator set is not required by verification
	}

	options, err := trustedClientState.LightClientOptions()
	if err != nil {
		return err
	}

	verdict := verifier.Verify(untrustedState, trustedState, options, state.BlockTimestamp())

	switch verdict.Kind {
	case tendermint.VerdictSuccess:
		return nil
	case tendermint.VerdictNotEnoughTrust:
		return errorsmod.Wrapf(types.ErrNotEnoughTrust, "voting power tally: %s", verdict.Tally)
	default:
		return errorsmod.Wrapf(types.ErrFailedHeaderVerification, "could not verify tendermint header: %v", verdict.Detail)
	}
}

// clientIsNotExpired fetches the consensus state at the client's latest
// verified height and rejects the update when its age exceeds the client's
// trusting period.
func clientIsNotExpired(state StateReader, clientData types.ClientData) error {
	latestHeight := types.NewHeight(
		clientData.ClientState.GetLatestHeight().GetRevisionNumber(),
		clientData.ClientState.GetLatestHeight().GetRevisionHeight(),
	)

	latestConsensusState, found := state.GetVerifiedConsensusState(clientData.ClientID, latestHeight)
	if !found {
		return errorsmod.Wrapf(types.ErrConsensusStateNotFound, "consensus state not found for client %s at latest height %s", clientData.ClientID, latestHeight)
	}

	now := state.BlockTimestamp()
	elapsed := now.Sub(latestConsensusState.GetTimestamp())
	if elapsed < 0 {
		elapsed = 0
	}

	if clientData.ClientState.Expired(elapsed) {
		return errorsmod.Wrapf(types.ErrClientExpired, "client identifier %s", clientData.ClientID)
	}
	return nil
}

// updateIsAlreadyCommitted reports whether the consensus state that would
// result from this header already exists, byte for byte, at the header's
// claimed height. A missing consensus state at that height is not an error
// here, it is just not already committed.
func updateIsAlreadyCommitted(state StateReader, clientID string, untrustedHeader *tendermint.Header) bool {
	untrustedConsensusState := untrustedHeader.ConsensusState()

	storedConsensusState, found := state.GetVerifiedConsensusState(clientID, untrustedHeader.GetHeight())
	if !found {
		return false
	}

	storedTmConsensusState, ok := storedConsensusState.(*tendermint.ConsensusState)
	if !ok {
		return false
	}

	return storedTmConsensusState.Equal(untrustedConsensusState)
}

// headerRevisionMatchesClientState requires the revision component of the
// header's height to equal the client's recorded chain revision. Revision
// mismatches are always rejected, never compared numerically.
func headerRevisionMatchesClientState(trustedClientState *tendermint.ClientState, untrustedHeader *tendermint.Header) error {
	if untrustedHeader.GetHeight().RevisionNumber != types.ParseChainID(trustedClientState.ChainID) {
		return errorsmod.Wrapf(
			types.ErrInvalidHeaderRevision,
			"header revision %d does not match client state revision %d",
			untrustedHeader.GetHeight().RevisionNumber, types.ParseChainID(trustedClientState.ChainID),
		)
	}
	return nil
}

// headerHeightIsConsistent requires the header's claimed height to be
// strictly greater than its own declared trusted height.
func headerHeightIsConsistent(untrustedHeader *tendermint.Header) error {
	if untrustedHeader.GetHeight().LTE(untrustedHeader.TrustedHeight) {
		return errorsmod.Wrapf(
			tendermint.ErrInvalidHeaderHeight,
			"header height is not greater than trusted height (%s <= %s)",
			untrustedHeader.GetHeight(), untrustedHeader.TrustedHeight,
		)
	}
	return nil
}

// headerValidatorSetChainsFromTrusted checks that the header's declared
// trusted validator set hashes to exactly the next-validator-set hash
// recorded at the trusted height. This is how trust is chained forward
// without re-verifying the entire history.
func headerValidatorSetChainsFromTrusted(untrustedHeader *tendermint.Header, lastTrustedConsensusState *tendermint.ConsensusState) (*cmttypes.ValidatorSet, error) {
	if untrustedHeader.TrustedValidators == nil {
		return nil, errorsmod.Wrap(tendermint.ErrInvalidValidatorSet, "trusted validator set cannot be empty")
	}

	if !bytes.Equal(untrustedHeader.TrustedValidators.Hash(), lastTrustedConsensusState.NextValidatorsHash) {
		return nil, errorsmod.Wrapf(
			types.ErrInvalidValidatorSetHash,
			"trusted validator set hash %X does not match stored next validator set hash %X",
			untrustedHeader.TrustedValidators.Hash(), lastTrustedConsensusState.NextValidatorsHash,
		)
	}

	return untrustedHeader.TrustedValidators, nil
}
