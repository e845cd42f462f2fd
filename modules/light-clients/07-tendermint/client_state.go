package tendermint

import (
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/cometbft/cometbft/light"
	cmttypes "github.com/cometbft/cometbft/types"

	clienttypes "github.com/umbra-zone/umbra/modules/core/02-client/types"
	"github.com/umbra-zone/umbra/modules/core/exported"
)

var _ exported.ClientState = (*ClientState)(nil)

// ClientState holds the configuration and trust status of one client. The
// latest height advances only through successful update validation; the
// frozen height flips from zero at most once and is terminal.
type ClientState struct {
	ChainID         string             `json:"chain_id"`
	TrustLevel      Fraction           `json:"trust_level"`
	TrustingPeriod  time.Duration      `json:"trusting_period"`
	UnbondingPeriod time.Duration      `json:"unbonding_period"`
	MaxClockDrift   time.Duration      `json:"max_clock_drift"`
	LatestHeight    clienttypes.Height `json:"latest_height"`
	FrozenHeight    clienttypes.Height `json:"frozen_height"`
}

// NewClientState creates a new ClientState instance
func NewClientState(
	chainID string, trustLevel Fraction,
	trustingPeriod, ubdPeriod, maxClockDrift time.Duration,
	latestHeight clienttypes.Height,
) *ClientState {
	return &ClientState{
		ChainID:         chainID,
		TrustLevel:      trustLevel,
		TrustingPeriod:  trustingPeriod,
		UnbondingPeriod: ubdPeriod,
		MaxClockDrift:   maxClockDrift,
		LatestHeight:    latestHeight,
		FrozenHeight:    clienttypes.ZeroHeight(),
	}
}

// ClientType is tendermint.
func (ClientState) ClientType() string {
	return exported.Tendermint
}

// GetLatestHeight returns latest block height.
func (cs ClientState) GetLatestHeight() exported.Height {
	return cs.LatestHeight
}

// IsFrozen returns true if the frozen height has been set.
func (cs ClientState) IsFrozen() bool {
	return !cs.FrozenHeight.IsZero()
}

// IsExpired returns whether or not the client has passed the trusting period since the last
// update (in which case no headers are considered valid).
func (cs ClientState) IsExpired(latestTimestamp, now time.Time) bool {
	expirationTime := latestTimestamp.Add(cs.TrustingPeriod)
	return !expirationTime.After(now)
}

// Expired reports whether a trusted anchor of the given age is stale.
func (cs ClientState) Expired(elapsed time.Duration) bool {
	return elapsed >= cs.TrustingPeriod
}

// Validate performs a basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if strings.TrimSpace(cs.ChainID) == "" {
		return errorsmod.Wrap(ErrInvalidChainID, "chain id cannot be empty string")
	}

	// NOTE: the value of cmttypes.MaxChainIDLen may change in the future.
	// If this occurs, the code here must account for potential difference
	// between the tendermint version being run by the counterparty chain
	// and the tendermint version used by this light client.
	if len(cs.ChainID) > cmttypes.MaxChainIDLen {
		return errorsmod.Wrapf(ErrInvalidChainID, "chainID is too long; got: %d, max: %d", len(cs.ChainID), cmttypes.MaxChainIDLen)
	}

	if err := light.ValidateTrustLevel(cs.TrustLevel.ToTendermint()); err != nil {
		return errorsmod.Wrap(ErrInvalidTrustLevel, err.Error())
	}
	if cs.TrustingPeriod <= 0 {
		return errorsmod.Wrap(ErrInvalidTrustingPeriod, "trusting period must be greater than zero")
	}
	if cs.UnbondingPeriod <= 0 {
		return errorsmod.Wrap(ErrInvalidUnbondingPeriod, "unbonding period must be greater than zero")
	}
	if cs.MaxClockDrift <= 0 {
		return errorsmod.Wrap(ErrInvalidMaxClockDrift, "max clock drift must be greater than zero")
	}

	// the latest height revision number must match the chain id revision number
	if cs.LatestHeight.RevisionNumber != clienttypes.ParseChainID(cs.ChainID) {
		return errorsmod.Wrapf(ErrInvalidHeaderHeight,
			"latest height revision number must match chain id revision number (%d != %d)", cs.LatestHeight.RevisionNumber, clienttypes.ParseChainID(cs.ChainID))
	}
	if cs.LatestHeight.RevisionHeight == 0 {
		return errorsmod.Wrap(ErrInvalidHeaderHeight, "tendermint client's latest height revision height cannot be zero")
	}
	if cs.TrustingPeriod >= cs.UnbondingPeriod {
		return errorsmod.Wrapf(
			ErrInvalidTrustingPeriod,
			"trusting period (%s) should be < unbonding period (%s)", cs.TrustingPeriod, cs.UnbondingPeriod,
		)
	}

	return nil
}

// LightClientOptions derives the verification options fed to the header
// verifier from the client state configuration.
func (cs ClientState) LightClientOptions() (Options, error) {
	if err := light.ValidateTrustLevel(cs.TrustLevel.ToTendermint()); err != nil {
		return Options{}, errorsmod.Wrap(ErrInvalidTrustLevel, err.Error())
	}
	return Options{
		TrustThreshold: cs.TrustLevel.ToTendermint(),
		TrustingPeriod: cs.TrustingPeriod,
		ClockDrift:     cs.MaxClockDrift,
	}, nil
}

// Frozen returns a copy of the client state with the frozen height set to the
// sentinel value. The transition is one-way: a non-zero frozen height is
// never cleared.
func (cs ClientState) Frozen(height clienttypes.Height) *ClientState {
	frozen := cs
	frozen.FrozenHeight = height
	return &frozen
}
