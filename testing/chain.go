// Package umbratesting provides helpers for manufacturing signed tendermint
// headers and validator sets in tests, without running a real chain.
package umbratesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cometbft/cometbft/crypto/tmhash"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	cmtprotoversion "github.com/cometbft/cometbft/proto/tendermint/version"
	cmttypes "github.com/cometbft/cometbft/types"
	cmtversion "github.com/cometbft/cometbft/version"

	clienttypes "github.com/umbra-zone/umbra/modules/core/02-client/types"
	tendermint "github.com/umbra-zone/umbra/modules/light-clients/07-tendermint"
)

// GenValSet generates a deterministic-size validator set backed by mock
// private validators, each with the given voting power. The returned signer
// map is keyed by validator address, matching the sorting of the set.
func GenValSet(n int, power int64) (*cmttypes.ValidatorSet, map[string]cmttypes.PrivValidator) {
	validators := make([]*cmttypes.Validator, n)
	signers := make(map[string]cmttypes.PrivValidator, n)

	for i := 0; i < n; i++ {
		privVal := cmttypes.NewMockPV()
		pubKey, err := privVal.GetPubKey()
		if err != nil {
			panic(err)
		}
		validators[i] = cmttypes.NewValidator(pubKey, power)
		signers[validators[i].Address.String()] = privVal
	}

	return cmttypes.NewValidatorSet(validators), signers
}

// MakeBlockID returns a block id usable in manufactured commits.
func MakeBlockID(hash []byte, partSetSize uint32, partSetHash []byte) cmttypes.BlockID {
	return cmttypes.BlockID{
		Hash: hash,
		PartSetHeader: cmttypes.PartSetHeader{
			Total: partSetSize,
			Hash:  partSetHash,
		},
	}
}

// CreateClientHeader creates a signed tendermint header to update a client.
// Args are passed in to allow caller flexibility: the validator set signs the
// header, nextVals is committed to via NextValidatorsHash, and the trusted
// fields point at the anchor the header claims to extend. The signer map must
// contain a private validator for every member of valSet.
func CreateClientHeader(
	tb testing.TB,
	chainID string, blockHeight int64, trustedHeight clienttypes.Height,
	timestamp time.Time,
	valSet, nextVals, trustedVals *cmttypes.ValidatorSet,
	signers map[string]cmttypes.PrivValidator,
) *tendermint.Header {
	tb.Helper()

	require.NotNil(tb, valSet)
	if nextVals == nil {
		nextVals = valSet
	}

	vsetHash := valSet.Hash()
	nextValsHash := nextVals.Hash()

	cmtHeader := cmttypes.Header{
		Version:            cmtprotoversion.Consensus{Block: cmtversion.BlockProtocol, App: 2},
		ChainID:            chainID,
		Height:             blockHeight,
		Time:               timestamp,
		LastBlockID:        MakeBlockID(make([]byte, tmhash.Size), 10_000, make([]byte, tmhash.Size)),
		LastCommitHash:     tmhash.Sum([]byte("last_commit_hash")),
		DataHash:           tmhash.Sum([]byte("data_hash")),
		ValidatorsHash:     vsetHash,
		NextValidatorsHash: nextValsHash,
		ConsensusHash:      tmhash.Sum([]byte("consensus_hash")),
		AppHash:            tmhash.Sum([]byte("app_hash")),
		LastResultsHash:    tmhash.Sum([]byte("last_results_hash")),
		EvidenceHash:       tmhash.Sum([]byte("evidence_hash")),
		ProposerAddress:    valSet.Proposer.Address, //nolint:staticcheck
	}

	hhash := cmtHeader.Hash()
	blockID := MakeBlockID(hhash, 3, tmhash.Sum([]byte("part_set")))
	voteSet := cmttypes.NewExtendedVoteSet(chainID, blockHeight, 1, cmtproto.PrecommitType, valSet)

	// MakeExtCommit expects a signer array in the same order as the
	// validator array, so iterate over the ordered validator set and build
	// the signer array from the map in the same order.
	signerArr := make([]cmttypes.PrivValidator, len(valSet.Validators))
	for i, v := range valSet.Validators {
		signerArr[i] = signers[v.Address.String()]
	}

	// the extended vote set carries signed extensions, so extensions must be
	// enabled here; ToCommit strips them from the final commit
	extCommit, err := cmttypes.MakeExtCommit(blockID, blockHeight, 1, voteSet, signerArr, timestamp, true)
	require.NoError(tb, err)

	return &tendermint.Header{
		SignedHeader: &cmttypes.SignedHeader{
			Header: &cmtHeader,
			Commit: extCommit.ToCommit(),
		},
		ValidatorSet:      valSet,
		TrustedHeight:     trustedHeight,
		TrustedValidators: trustedVals,
	}
}
