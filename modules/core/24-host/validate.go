package host

import (
	"regexp"
	"strings"

	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/umbra-zone/umbra/modules/core/errors"
)

// DefaultMaxCharacterLength defines the default maximum character length used
// in validation of identifiers including the client, connection, port and
// channel identifiers.
const DefaultMaxCharacterLength = 64

// IsValidID defines regular expression to check if the string consist of
// characters that are allowed in an identifier.
var IsValidID = regexp.MustCompile(`^[a-zA-Z0-9\.\_\+\-\#\[\]\<\>]+$`).MatchString

func defaultIdentifierValidator(id string, minLength, maxLength int) error {
	if strings.TrimSpace(id) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidIdentifier, "identifier cannot be blank")
	}
	// valid id must fit the length requirements
	if len(id) < minLength || len(id) > maxLength {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidIdentifier, "identifier %s has invalid length: %d, must be between %d-%d characters", id, len(id), minLength, maxLength)
	}
	// valid id must contain only allowed characters
	if !IsValidID(id) {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidIdentifier, "identifier %s must contain only alphanumeric or the following characters: '.', '_', '+', '-', '#', '[', ']', '<', '>'", id)
	}
	return nil
}

// ClientIdentifierValidator is the default validator function for the client
// identifier.
func ClientIdentifierValidator(id string) error {
	return defaultIdentifierValidator(id, 9, DefaultMaxCharacterLength)
}
