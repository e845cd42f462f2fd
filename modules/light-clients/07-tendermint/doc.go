/*
Package tendermint implements a concrete ClientState, ConsensusState, Header
and verifier adapter for the BFT-header consensus light client. The
cryptographic signature-threshold algorithm itself is supplied by the
cometbft light package and is not reimplemented here.
*/
package tendermint
