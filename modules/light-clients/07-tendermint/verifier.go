package tendermint

import (
	"errors"
	"fmt"
	"time"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	cmtmath "github.com/cometbft/cometbft/libs/math"
	"github.com/cometbft/cometbft/light"
	cmttypes "github.com/cometbft/cometbft/types"
)

// TrustedBlockState is the view of the trusted anchor fed to header
// verification: the consensus-state facts stored at the header's declared
// trusted height.
type TrustedBlockState struct {
	ChainID            string
	HeaderTime         time.Time
	Height             uint64
	NextValidators     *cmttypes.ValidatorSet
	NextValidatorsHash cmtbytes.HexBytes
}

// UntrustedBlockState is the view of the candidate block under verification.
// Every field is attacker-controlled until the verifier accepts it.
type UntrustedBlockState struct {
	SignedHeader *cmttypes.SignedHeader
	Validators   *cmttypes.ValidatorSet
	// NextValidators is not required by verification and may be nil.
	NextValidators *cmttypes.ValidatorSet
}

// Options are the client-configured verification parameters.
type Options struct {
	TrustThreshold cmtmath.Fraction
	TrustingPeriod time.Duration
	ClockDrift     time.Duration
}

// VotingPowerTally reports the voting power backing a header against the
// power the trust threshold requires.
type VotingPowerTally struct {
	Tallied  int64
	Required int64
}

func (t VotingPowerTally) String() string {
	return fmt.Sprintf("%d/%d", t.Tallied, t.Required)
}

// VerdictKind enumerates the three-way outcome of header verification.
type VerdictKind int

const (
	// VerdictSuccess means the header is verified against the trusted state.
	VerdictSuccess VerdictKind = iota
	// VerdictNotEnoughTrust means the commit is structurally valid but its
	// signatures carry less voting power than the trust threshold requires.
	VerdictNotEnoughTrust
	// VerdictInvalid means the header failed verification outright.
	VerdictInvalid
)

// Verdict is the outcome of cryptographic header verification. Tally is
// populated for VerdictNotEnoughTrust, Detail for VerdictInvalid.
type Verdict struct {
	Kind   VerdictKind
	Tally  VotingPowerTally
	Detail error
}

// Success returns an accepting verdict.
func Success() Verdict {
	return Verdict{Kind: VerdictSuccess}
}

// NotEnoughTrust returns an insufficient-trust verdict carrying the actual
// voting-power tally.
func NotEnoughTrust(tally VotingPowerTally) Verdict {
	return Verdict{Kind: VerdictNotEnoughTrust, Tally: tally}
}

// Invalid returns a rejecting verdict with the verification failure detail.
func Invalid(detail error) Verdict {
	return Verdict{Kind: VerdictInvalid, Detail: detail}
}

// Verifier is the stateless cryptographic header verification primitive.
// Implementations decide whether the untrusted block is a legitimate
// continuation of the trusted one, given the verification options and the
// current local block time.
type Verifier interface {
	Verify(untrusted UntrustedBlockState, trusted TrustedBlockState, options Options, now time.Time) Verdict
}

var _ Verifier = (*ProdVerifier)(nil)

// ProdVerifier is the production Verifier backed by the cometbft light
// package. It validates that the submitted commit signatures carry at least
// the configured voting-power threshold, that the header time is
// monotonically increasing and within clock-drift tolerance of now, and that
// the commit is structurally well-formed.
type ProdVerifier struct{}

// NewProdVerifier returns a production header verifier.
func NewProdVerifier() ProdVerifier {
	return ProdVerifier{}
}

// Verify implements the Verifier interface. The trusted state only needs the
// stored consensus-state facts, so a synthetic signed header is constructed
// around them the same way a full node would have produced it.
func (ProdVerifier) Verify(untrusted UntrustedBlockState, trusted TrustedBlockState, options Options, now time.Time) Verdict {
	trustedHeader := cmttypes.Header{
		ChainID:            trusted.ChainID,
		Height:             int64(trusted.Height),
		Time:               trusted.HeaderTime,
		NextValidatorsHash: trusted.NextValidatorsHash,
	}
	trustedSignedHeader := cmttypes.SignedHeader{
		Header: &trustedHeader,
	}

	err := light.Verify(
		&trustedSignedHeader,
		trusted.NextValidators,
		untrusted.SignedHeader,
		untrusted.Validators,
		options.TrustingPeriod,
		now,
		options.ClockDrift,
		options.TrustThreshold,
	)
	if err == nil {
		return Success()
	}

	var cantBeTrusted light.ErrNewValSetCantBeTrusted
	if errors.As(err, &cantBeTrusted) {
		return NotEnoughTrust(VotingPowerTally{
			Tallied:  cantBeTrusted.Reason.Got,
			Required: cantBeTrusted.Reason.Needed,
		})
	}

	var notEnoughPower cmttypes.ErrNotEnoughVotingPowerSigned
	if errors.As(err, &notEnoughPower) {
		return NotEnoughTrust(VotingPowerTally{
			Tallied:  notEnoughPower.Got,
			Required: notEnoughPower.Needed,
		})
	}

	return Invalid(err)
}
