package client

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/umbra-zone/umbra/modules/core/02-client/types"
	host "github.com/umbra-zone/umbra/modules/core/24-host"
	tendermint "github.com/umbra-zone/umbra/modules/light-clients/07-tendermint"
)

// ValidateCreateClient certifies that creating the client described by msg
// would be well-formed: the embedded client state must resolve to a supported
// light-client variant and the identifier derived from the current client
// counter must be constructible. It performs no mutation; assigning the
// identifier, incrementing the counter and storing the client happen in the
// execution step, only after this check passes.
func ValidateCreateClient(state StateReader, msg *types.MsgCreateClient) error {
	if msg.ClientState == nil {
		return errorsmod.Wrap(types.ErrInvalidClient, "client state cannot be nil")
	}

	switch msg.ClientState.(type) {
	case *tendermint.ClientState:
	default:
		return errorsmod.Wrapf(types.ErrInvalidClientType, "cannot create client of type %T", msg.ClientState)
	}

	clientType := msg.ClientState.ClientType()
	if err := types.ValidateClientType(clientType); err != nil {
		return errorsmod.Wrap(err, "client type is invalid for identifier construction")
	}

	clientID := types.FormatClientIdentifier(clientType, state.ClientCounter())
	return host.ClientIdentifierValidator(clientID)
}
