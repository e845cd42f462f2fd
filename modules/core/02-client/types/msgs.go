package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/umbra-zone/umbra/modules/core/exported"
)

// MsgCreateClient defines a message to create a client. The initial
// consensus state is the trust root all future updates must chain from.
type MsgCreateClient struct {
	ClientState    exported.ClientState    `json:"client_state"`
	ConsensusState exported.ConsensusState `json:"consensus_state"`
}

// NewMsgCreateClient creates a new MsgCreateClient instance
func NewMsgCreateClient(clientState exported.ClientState, consensusState exported.ConsensusState) *MsgCreateClient {
	return &MsgCreateClient{
		ClientState:    clientState,
		ConsensusState: consensusState,
	}
}

// ValidateBasic performs stateless validation of the message fields.
func (msg MsgCreateClient) ValidateBasic() error {
	if msg.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidClient, "client state cannot be nil")
	}
	if err := msg.ClientState.Validate(); err != nil {
		return err
	}
	if msg.ConsensusState == nil {
		return errorsmod.Wrap(ErrInvalidConsensus, "consensus state cannot be nil")
	}
	if msg.ClientState.ClientType() != msg.ConsensusState.ClientType() {
		return errorsmod.Wrapf(ErrInvalidClientType, "client type for client state and consensus state do not match (%s != %s)",
			msg.ClientState.ClientType(), msg.ConsensusState.ClientType())
	}
	return msg.ConsensusState.ValidateBasic()
}

// MsgUpdateClient defines a message to update a client with a new untrusted
// header.
type MsgUpdateClient struct {
	ClientID      string                 `json:"client_id"`
	ClientMessage exported.ClientMessage `json:"client_message"`
}

// NewMsgUpdateClient creates a new MsgUpdateClient instance
func NewMsgUpdateClient(clientID string, clientMsg exported.ClientMessage) *MsgUpdateClient {
	return &MsgUpdateClient{
		ClientID:      clientID,
		ClientMessage: clientMsg,
	}
}

// ValidateBasic performs stateless validation of the message fields.
func (msg MsgUpdateClient) ValidateBasic() error {
	if !IsValidClientID(msg.ClientID) {
		return errorsmod.Wrapf(ErrInvalidClient, "invalid client identifier %s", msg.ClientID)
	}
	if msg.ClientMessage == nil {
		return errorsmod.Wrap(ErrInvalidHeader, "client message cannot be nil")
	}
	return msg.ClientMessage.ValidateBasic()
}
