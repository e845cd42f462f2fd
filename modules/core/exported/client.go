package exported

import (
	"time"
)

// ModuleName is the name of the core module, used as the codespace for
// shared sentinel errors.
const ModuleName = "core"

// Tendermint is the client type tag of the BFT-header light client. It is
// the only client variant currently routed by the validators; any other tag
// is rejected with a client-type mismatch.
const Tendermint string = "07-tendermint"

// Status represents the status of a client
type Status string

const (
	// Active is a status type of a client. An active client is allowed to be updated.
	Active Status = "Active"

	// Frozen is a status type of a client. A frozen client is not allowed to be updated.
	Frozen Status = "Frozen"

	// Expired is a status type of a client. An expired client is not allowed to be updated.
	Expired Status = "Expired"

	// Unknown indicates there was an error in determining the status of a client.
	Unknown Status = "Unknown"
)

// String returns the string representation of a client status.
func (s Status) String() string {
	return string(s)
}

// Height is a monotonically increasing data type
// that can be compared against another Height for the purposes of updating and
// freezing clients.
//
// Ordering is lexicographic on (revision number, revision height); heights
// from different revisions are never compared numerically by the validators.
type Height interface {
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	String() string
}

// ClientState defines the required common functions for light clients.
type ClientState interface {
	ClientType() string

	// GetLatestHeight returns the latest height the client state has verified.
	GetLatestHeight() Height

	// IsFrozen reports whether the client has been frozen due to misbehaviour.
	// The flag is terminal: once set it never reverts.
	IsFrozen() bool

	// Expired reports whether a trusted anchor of the given age is stale.
	Expired(elapsed time.Duration) bool

	// Validate performs a basic validation of the client state fields.
	Validate() error
}

// ConsensusState is the state of the remote chain verified at a particular
// height. Consensus states are write-once: they are only ever produced by a
// successful update validation and never mutated afterwards.
type ConsensusState interface {
	ClientType() string

	// GetTimestamp returns the time of the verified remote block.
	GetTimestamp() time.Time

	ValidateBasic() error
}

// ClientMessage is an interface used to update a client.
// The update may be done by a single header or any type which has been
// defined to implement the interface.
type ClientMessage interface {
	ClientType() string
	ValidateBasic() error
}
