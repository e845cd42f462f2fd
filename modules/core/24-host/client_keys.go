package host

import (
	"fmt"

	"github.com/umbra-zone/umbra/modules/core/exported"
)

// KeyClientStorePrefix defines the KVStore key prefix for client records
var KeyClientStorePrefix = []byte("clients")

const (
	KeyClientState          = "clientState"
	KeyConsensusStatePrefix = "consensusStates"
	KeyProcessedTime        = "processedTime"
	KeyProcessedHeight      = "processedHeight"
	KeyClientCounter        = "clientCounter"
)

// FullClientPath returns the full path of a specific client path in the format:
// "clients/{clientID}/{path}" as a string.
func FullClientPath(clientID string, path string) string {
	return fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, path)
}

// FullClientKey returns the full path of specific client path in the format:
// "clients/{clientID}/{path}" as a byte array.
func FullClientKey(clientID string, path []byte) []byte {
	return []byte(FullClientPath(clientID, string(path)))
}

// ClientStateKey returns the store key under which the client state of a
// particular client is stored.
func ClientStateKey(clientID string) []byte {
	return FullClientKey(clientID, []byte(KeyClientState))
}

// ConsensusStatePath returns the suffix store key for the consensus state at a
// particular height stored in a client prefixed store.
func ConsensusStatePath(height exported.Height) string {
	return fmt.Sprintf("%s/%s", KeyConsensusStatePrefix, height)
}

// ConsensusStateKey returns the store key under which the consensus state of a
// particular client at the given height is stored.
func ConsensusStateKey(clientID string, height exported.Height) []byte {
	return FullClientKey(clientID, []byte(ConsensusStatePath(height)))
}

// ProcessedTimeKey returns the store key under which the local block time
// observed when a consensus state was stored is recorded.
func ProcessedTimeKey(clientID string, height exported.Height) []byte {
	return FullClientKey(clientID, []byte(fmt.Sprintf("%s/%s", KeyProcessedTime, height)))
}

// ProcessedHeightKey returns the store key under which the local block height
// observed when a consensus state was stored is recorded.
func ProcessedHeightKey(clientID string, height exported.Height) []byte {
	return FullClientKey(clientID, []byte(fmt.Sprintf("%s/%s", KeyProcessedHeight, height)))
}

// ClientCounterKey returns the store key for the chain-wide client counter.
// The counter is the source of uniqueness for new client identifiers and is
// incremented exactly once per successful client creation.
func ClientCounterKey() []byte {
	return []byte(KeyClientCounter)
}
