package errors

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/umbra-zone/umbra/modules/core/exported"
)

const codespace = exported.ModuleName

var (
	// ErrInvalidHeight defines an error for an invalid height
	ErrInvalidHeight = errorsmod.Register(codespace, 2, "invalid height")

	// ErrInvalidIdentifier defines an error when an identifier does not
	// conform to the required format.
	ErrInvalidIdentifier = errorsmod.Register(codespace, 4, "invalid identifier")
)
