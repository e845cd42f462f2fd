package tendermint

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName defines the tendermint light client module name, used as the
// codespace for the tendermint client sentinel errors.
const ModuleName = "tendermint-client"

// tendermint client sentinel errors
var (
	ErrInvalidChainID         = errorsmod.Register(ModuleName, 2, "invalid chain-id")
	ErrInvalidTrustingPeriod  = errorsmod.Register(ModuleName, 3, "invalid trusting period")
	ErrInvalidUnbondingPeriod = errorsmod.Register(ModuleName, 4, "invalid unbonding period")
	ErrInvalidHeaderHeight    = errorsmod.Register(ModuleName, 5, "invalid header height")
	ErrInvalidHeader          = errorsmod.Register(ModuleName, 6, "invalid header")
	ErrInvalidMaxClockDrift   = errorsmod.Register(ModuleName, 7, "invalid max clock drift")
	ErrInvalidTrustLevel      = errorsmod.Register(ModuleName, 8, "invalid trust level")
	ErrInvalidValidatorSet    = errorsmod.Register(ModuleName, 9, "invalid validator set")
)
