package types

import (
	errorsmod "cosmossdk.io/errors"
)

// client sentinel errors. Each entry of the update-validation taxonomy has
// exactly one sentinel so callers can distinguish rejection causes with
// errors.Is; structured detail is attached at the failure site via Wrapf.
var (
	ErrClientNotFound = errorsmod.Register(SubModuleName, 2, "light client not found")

	// ErrClientFrozen rejects any update to a client whose frozen flag has
	// been set. The flag is terminal.
	ErrClientFrozen = errorsmod.Register(SubModuleName, 3, "light client is frozen due to misbehaviour")

	// ErrClientExpired rejects updates when the latest trusted consensus
	// state is older than the client's trusting period.
	ErrClientExpired = errorsmod.Register(SubModuleName, 4, "light client is expired")

	ErrInvalidClient         = errorsmod.Register(SubModuleName, 5, "light client is invalid")
	ErrInvalidClientType     = errorsmod.Register(SubModuleName, 6, "invalid client type")
	ErrInvalidConsensus      = errorsmod.Register(SubModuleName, 7, "invalid consensus state")
	ErrInvalidHeader         = errorsmod.Register(SubModuleName, 8, "invalid block header")
	ErrInvalidHeight         = errorsmod.Register(SubModuleName, 9, "invalid height")
	ErrInvalidHeaderRevision = errorsmod.Register(SubModuleName, 10, "header revision does not match client revision")

	// ErrUpdateAlreadyCommitted rejects a duplicate update before any
	// cryptographic work is done. The stored consensus state is unchanged.
	ErrUpdateAlreadyCommitted = errorsmod.Register(SubModuleName, 11, "client update has already been committed to the chain state")

	// ErrConsensusStateNotFound is returned when the trusted anchor a header
	// chains from does not exist for the client.
	ErrConsensusStateNotFound = errorsmod.Register(SubModuleName, 12, "consensus state not found")

	// ErrInvalidValidatorSetHash rejects headers whose declared trusted
	// validator set does not hash to the next-validator-set hash recorded at
	// the trusted height.
	ErrInvalidValidatorSetHash = errorsmod.Register(SubModuleName, 13, "trusted validator set hash does not match stored hash")

	// ErrNotEnoughTrust is returned when the commit signatures carry less
	// than the configured trust threshold of voting power. It is wrapped
	// with the actual voting-power tally.
	ErrNotEnoughTrust = errorsmod.Register(SubModuleName, 14, "not enough trust to verify header")

	ErrFailedHeaderVerification = errorsmod.Register(SubModuleName, 15, "header verification failed")

	ErrClientAlreadyFrozen = errorsmod.Register(SubModuleName, 16, "light client is already frozen")
)
