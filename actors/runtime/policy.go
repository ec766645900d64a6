package runtime

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/builtin"
)

// Policy carries the protocol bounds that validating operations check
// against. It is constructed once and threaded through the runtime; actor
// code never reads policy from ambient globals.
type Policy struct {
	// The smallest size of verified allocation a client may create.
	MinimumVerifiedAllocationSize abi.StoragePower
	// The shortest commitment term an allocation may require.
	MinimumVerifiedAllocationTerm abi.ChainEpoch
	// The longest commitment term an allocation or claim may carry.
	MaximumVerifiedAllocationTerm abi.ChainEpoch
	// The maximum distance into the future an allocation may remain
	// claimable before it is sweepable.
	MaximumVerifiedAllocationExpiration abi.ChainEpoch

	// Window PoST proving calendar, which determines expiration quantization.
	WPoStProvingPeriod   abi.ChainEpoch
	WPoStChallengeWindow abi.ChainEpoch
	WPoStPeriodDeadlines uint64

	// Multiplier on (circulating supply × quality-adjusted bytes) yielding a
	// sector's daily fee: 7.4e-15 per 32GiB of quality-adjusted power.
	DailyFeeCirculatingSupplyQAPMultiplierNum   big.Int
	DailyFeeCirculatingSupplyQAPMultiplierDenom big.Int
}

// DefaultPolicy returns the mainnet policy values.
func DefaultPolicy() *Policy {
	return &Policy{
		MinimumVerifiedAllocationSize:       big.NewInt(1 << 20),
		MinimumVerifiedAllocationTerm:       180 * builtin.EpochsInDay,
		MaximumVerifiedAllocationTerm:       5 * builtin.EpochsInYear,
		MaximumVerifiedAllocationExpiration: 60 * builtin.EpochsInDay,

		WPoStProvingPeriod:   abi.ChainEpoch(builtin.EpochsInDay),
		WPoStChallengeWindow: 30 * 60 / builtin.EpochDurationSeconds,
		WPoStPeriodDeadlines: 48,

		DailyFeeCirculatingSupplyQAPMultiplierNum:   big.NewInt(74),
		DailyFeeCirculatingSupplyQAPMultiplierDenom: big.Lsh(big.NewInt(1e16), 35), // 10^16 * 2^35
	}
}
