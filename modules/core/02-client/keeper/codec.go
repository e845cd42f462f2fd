package keeper

import (
	cmtjson "github.com/cometbft/cometbft/libs/json"

	tendermint "github.com/umbra-zone/umbra/modules/light-clients/07-tendermint"
)

// The store serializes interface-typed records, so each supported concrete
// light-client type is registered with a stable name. Adding a client
// variant requires registering its types here.
func init() {
	cmtjson.RegisterType(&tendermint.ClientState{}, "umbra/lightclients/tendermint/ClientState")
	cmtjson.RegisterType(&tendermint.ConsensusState{}, "umbra/lightclients/tendermint/ConsensusState")
	cmtjson.RegisterType(&tendermint.Header{}, "umbra/lightclients/tendermint/Header")
}
