package types

import (
	"math"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"

	host "github.com/umbra-zone/umbra/modules/core/24-host"
	ibcerrors "github.com/umbra-zone/umbra/modules/core/errors"
	"github.com/umbra-zone/umbra/modules/core/exported"
)

// ClientData is the stored record of one client instance: its assigned
// identifier, its configuration and trust status, and the local chain
// coordinates at which it was last written.
type ClientData struct {
	ClientID        string               `json:"client_id"`
	ClientState     exported.ClientState `json:"client_state"`
	ProcessedTime   time.Time            `json:"processed_time"`
	ProcessedHeight Height               `json:"processed_height"`
}

// NewClientData creates a new ClientData instance.
func NewClientData(clientID string, clientState exported.ClientState, processedTime time.Time, processedHeight Height) ClientData {
	return ClientData{
		ClientID:        clientID,
		ClientState:     clientState,
		ProcessedTime:   processedTime,
		ProcessedHeight: processedHeight,
	}
}

// ValidateClientType validates the client type. It cannot be blank or empty.
// It must be a valid client identifier when used with '0' or the maximum uint64
// as the sequence.
func ValidateClientType(clientType string) error {
	if strings.TrimSpace(clientType) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidIdentifier, "client type cannot be blank")
	}

	smallestPossibleClientID := FormatClientIdentifier(clientType, 0)
	largestPossibleClientID := FormatClientIdentifier(clientType, uint64(math.MaxUint64))

	// IsValidClientID will check client type format and if the sequence is a uint64
	if !IsValidClientID(smallestPossibleClientID) {
		return errorsmod.Wrap(ibcerrors.ErrInvalidIdentifier, "client type cannot be used to construct client identifiers")
	}

	if err := host.ClientIdentifierValidator(largestPossibleClientID); err != nil {
		return errorsmod.Wrap(err, "client type results in an invalid client identifier")
	}

	return nil
}
