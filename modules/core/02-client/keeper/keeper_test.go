package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cosmossdk.io/log"

	"github.com/cometbft/cometbft/crypto/tmhash"
	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/umbra-zone/umbra/internal/statedelta"
	"github.com/umbra-zone/umbra/modules/core/02-client/keeper"
	"github.com/umbra-zone/umbra/modules/core/02-client/types"
	"github.com/umbra-zone/umbra/modules/core/exported"
	tendermint "github.com/umbra-zone/umbra/modules/light-clients/07-tendermint"
	umbratesting "github.com/umbra-zone/umbra/testing"
)

const (
	chainID = "umbra-1"

	trustingPeriod = 14 * 24 * time.Hour
	ubdPeriod      = 21 * 24 * time.Hour
	maxClockDrift  = 10 * time.Second
)

var (
	initialHeight = types.NewHeight(1, 100)
	trustedTime   = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
)

type KeeperTestSuite struct {
	suite.Suite

	store   *statedelta.MemStore
	keeper  *keeper.Keeper
	ctx     keeper.Context
	valSet  *cmttypes.ValidatorSet
	signers map[string]cmttypes.PrivValidator
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.store = statedelta.NewMemStore()
	suite.keeper = keeper.NewKeeper(suite.store, tendermint.NewProdVerifier(), log.NewNopLogger())
	suite.ctx = keeper.Context{
		BlockTime:   trustedTime.Add(time.Hour),
		BlockHeight: types.NewHeight(1, 10),
	}
	suite.valSet, suite.signers = umbratesting.GenValSet(3, 10)
}

// createClient creates a client whose trust root sits at initialHeight and
// returns the assigned identifier.
func (suite *KeeperTestSuite) createClient() string {
	clientState := tendermint.NewClientState(
		chainID, tendermint.DefaultTrustLevel,
		trustingPeriod, ubdPeriod, maxClockDrift,
		initialHeight,
	)
	consensusState := tendermint.NewConsensusState(trustedTime, tmhash.Sum([]byte("app_hash")), suite.valSet.Hash())

	clientID, err := suite.keeper.CreateClient(suite.ctx, types.NewMsgCreateClient(clientState, consensusState))
	suite.Require().NoError(err)
	return clientID
}

// clientHeader manufactures a signed header at the given height extending the
// trust root at initialHeight.
func (suite *KeeperTestSuite) clientHeader(blockHeight int64) *tendermint.Header {
	return umbratesting.CreateClientHeader(
		suite.T(), chainID, blockHeight, initialHeight,
		trustedTime.Add(30*time.Minute),
		suite.valSet, nil, suite.valSet, suite.signers,
	)
}

func (suite *KeeperTestSuite) TestCreateClient() {
	clientID := suite.createClient()
	suite.Require().Equal("07-tendermint-0", clientID)

	reader := suite.keeper.StateReader(suite.ctx)

	clientData, found := reader.GetClientData(clientID)
	suite.Require().True(found)
	suite.Require().Equal(clientID, clientData.ClientID)
	suite.Require().Equal(initialHeight, clientData.ClientState.GetLatestHeight())

	consensusState, found := reader.GetVerifiedConsensusState(clientID, initialHeight)
	suite.Require().True(found)
	suite.Require().True(trustedTime.Equal(consensusState.GetTimestamp()))

	suite.Require().Equal(uint64(1), reader.ClientCounter())
	suite.Require().Equal(exported.Active, suite.keeper.ClientStatus(suite.ctx, clientID))

	// identifiers are assigned sequentially
	suite.Require().Equal("07-tendermint-1", suite.createClient())
	suite.Require().Equal(uint64(2), reader.ClientCounter())
}

func (suite *KeeperTestSuite) TestCreateClientRejectedWritesNothing() {
	msg := types.NewMsgCreateClient(nil, nil)

	_, err := suite.keeper.CreateClient(suite.ctx, msg)
	suite.Require().ErrorIs(err, types.ErrInvalidClient)

	reader := suite.keeper.StateReader(suite.ctx)
	suite.Require().Equal(uint64(0), reader.ClientCounter())

	_, found := reader.GetClientData("07-tendermint-0")
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestCreateClientNilConsensusState() {
	clientState := tendermint.NewClientState(
		chainID, tendermint.DefaultTrustLevel,
		trustingPeriod, ubdPeriod, maxClockDrift,
		initialHeight,
	)

	// a client without a trust root must never be committed
	_, err := suite.keeper.CreateClient(suite.ctx, types.NewMsgCreateClient(clientState, nil))
	suite.Require().ErrorIs(err, types.ErrInvalidConsensus)

	reader := suite.keeper.StateReader(suite.ctx)
	suite.Require().Equal(uint64(0), reader.ClientCounter())

	_, found := reader.GetClientData("07-tendermint-0")
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestConsensusMetadata() {
	clientID := suite.createClient()

	processedTime, found := suite.keeper.GetProcessedTime(clientID, initialHeight)
	suite.Require().True(found)
	suite.Require().True(suite.ctx.BlockTime.Equal(processedTime))

	processedHeight, found := suite.keeper.GetProcessedHeight(clientID, initialHeight)
	suite.Require().True(found)
	suite.Require().Equal(suite.ctx.BlockHeight, processedHeight)

	_, found = suite.keeper.GetProcessedTime(clientID, types.NewHeight(1, 999))
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestUpdateClient() {
	clientID := suite.createClient()
	header := suite.clientHeader(150)

	err := suite.keeper.UpdateClient(suite.ctx, types.NewMsgUpdateClient(clientID, header))
	suite.Require().NoError(err)

	reader := suite.keeper.StateReader(suite.ctx)

	clientData, found := reader.GetClientData(clientID)
	suite.Require().True(found)
	suite.Require().Equal(types.NewHeight(1, 150), clientData.ClientState.GetLatestHeight())

	consensusState, found := reader.GetVerifiedConsensusState(clientID, types.NewHeight(1, 150))
	suite.Require().True(found)

	tmConsensusState, ok := consensusState.(*tendermint.ConsensusState)
	suite.Require().True(ok)
	suite.Require().True(tmConsensusState.Equal(header.ConsensusState()))
}

func (suite *KeeperTestSuite) TestUpdateClientDuplicate() {
	clientID := suite.createClient()
	header := suite.clientHeader(150)
	msg := types.NewMsgUpdateClient(clientID, header)

	suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, msg))

	// resubmitting the identical header is rejected without effect
	err := suite.keeper.UpdateClient(suite.ctx, msg)
	suite.Require().ErrorIs(err, types.ErrUpdateAlreadyCommitted)

	reader := suite.keeper.StateReader(suite.ctx)
	clientData, found := reader.GetClientData(clientID)
	suite.Require().True(found)
	suite.Require().Equal(types.NewHeight(1, 150), clientData.ClientState.GetLatestHeight())
}

func (suite *KeeperTestSuite) TestUpdateClientHistoricalBackfill() {
	clientID := suite.createClient()

	suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, types.NewMsgUpdateClient(clientID, suite.clientHeader(150))))
	suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, types.NewMsgUpdateClient(clientID, suite.clientHeader(120))))

	reader := suite.keeper.StateReader(suite.ctx)

	// the backfilled consensus state is stored without rewinding the
	// latest-height pointer
	_, found := reader.GetVerifiedConsensusState(clientID, types.NewHeight(1, 120))
	suite.Require().True(found)

	clientData, found := reader.GetClientData(clientID)
	suite.Require().True(found)
	suite.Require().Equal(types.NewHeight(1, 150), clientData.ClientState.GetLatestHeight())
}

func (suite *KeeperTestSuite) TestUpdateClientMalformedHeader() {
	clientID := suite.createClient()

	// a header with no signed header must be rejected, not panic
	err := suite.keeper.UpdateClient(suite.ctx, types.NewMsgUpdateClient(clientID, &tendermint.Header{}))
	suite.Require().ErrorIs(err, types.ErrInvalidHeader)

	reader := suite.keeper.StateReader(suite.ctx)
	clientData, found := reader.GetClientData(clientID)
	suite.Require().True(found)
	suite.Require().Equal(initialHeight, clientData.ClientState.GetLatestHeight())
}

func (suite *KeeperTestSuite) TestUpdateClientRejectedWritesNothing() {
	clientID := suite.createClient()

	header := suite.clientHeader(150)
	strangerVals, _ := umbratesting.GenValSet(3, 10)
	header.TrustedValidators = strangerVals

	err := suite.keeper.UpdateClient(suite.ctx, types.NewMsgUpdateClient(clientID, header))
	suite.Require().ErrorIs(err, types.ErrInvalidValidatorSetHash)

	reader := suite.keeper.StateReader(suite.ctx)

	_, found := reader.GetVerifiedConsensusState(clientID, types.NewHeight(1, 150))
	suite.Require().False(found)

	clientData, found := reader.GetClientData(clientID)
	suite.Require().True(found)
	suite.Require().Equal(initialHeight, clientData.ClientState.GetLatestHeight())
}

func (suite *KeeperTestSuite) TestFreezeClient() {
	clientID := suite.createClient()
	frozenHeight := types.NewHeight(1, 105)

	suite.Require().NoError(suite.keeper.FreezeClient(suite.ctx, clientID, frozenHeight))
	suite.Require().Equal(exported.Frozen, suite.keeper.ClientStatus(suite.ctx, clientID))

	// the frozen flag is terminal
	err := suite.keeper.FreezeClient(suite.ctx, clientID, frozenHeight)
	suite.Require().ErrorIs(err, types.ErrClientAlreadyFrozen)

	err = suite.keeper.UpdateClient(suite.ctx, types.NewMsgUpdateClient(clientID, suite.clientHeader(150)))
	suite.Require().ErrorIs(err, types.ErrClientFrozen)
}

func (suite *KeeperTestSuite) TestFreezeClientNotFound() {
	err := suite.keeper.FreezeClient(suite.ctx, "07-tendermint-42", types.NewHeight(1, 1))
	suite.Require().ErrorIs(err, types.ErrClientNotFound)
}

func (suite *KeeperTestSuite) TestClientStatus() {
	suite.Require().Equal(exported.Unknown, suite.keeper.ClientStatus(suite.ctx, "07-tendermint-42"))

	clientID := suite.createClient()
	suite.Require().Equal(exported.Active, suite.keeper.ClientStatus(suite.ctx, clientID))

	expiredCtx := suite.ctx
	expiredCtx.BlockTime = trustedTime.Add(trustingPeriod)
	suite.Require().Equal(exported.Expired, suite.keeper.ClientStatus(expiredCtx, clientID))

	// frozen wins over expired
	suite.Require().NoError(suite.keeper.FreezeClient(suite.ctx, clientID, types.NewHeight(1, 105)))
	suite.Require().Equal(exported.Frozen, suite.keeper.ClientStatus(expiredCtx, clientID))
}
