package miner

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/snissn/builtin-actors/actors/runtime"
)

// Quality multiplier for unsealed capacity with no committed data.
var QualityBaseMultiplier = big.NewInt(10)

// Quality multiplier for unverified committed data.
var DealWeightMultiplier = big.NewInt(10)

// Quality multiplier for verified committed data.
var VerifiedDealWeightMultiplier = big.NewInt(100)

// Precision used for making QA power calculations.
const SectorQualityPrecision = 20

// QualityForWeight computes the sector quality given the proof size and
// weights of committed data. Quality is a fixed point with
// SectorQualityPrecision bits of fraction.
func QualityForWeight(size abi.SectorSize, duration abi.ChainEpoch, dealWeight, verifiedWeight abi.DealWeight) abi.SectorQuality {
	sectorSpaceTime := big.Mul(big.NewIntUnsigned(uint64(size)), big.NewInt(int64(duration)))
	totalDealSpaceTime := big.Add(dealWeight, verifiedWeight)

	weightedBaseSpaceTime := big.Mul(big.Sub(sectorSpaceTime, totalDealSpaceTime), QualityBaseMultiplier)
	weightedDealSpaceTime := big.Mul(dealWeight, DealWeightMultiplier)
	weightedVerifiedSpaceTime := big.Mul(verifiedWeight, VerifiedDealWeightMultiplier)
	weightedSumSpaceTime := big.Sum(weightedBaseSpaceTime, weightedDealSpaceTime, weightedVerifiedSpaceTime)
	scaledUpWeightedSumSpaceTime := big.Lsh(weightedSumSpaceTime, SectorQualityPrecision)

	return big.Div(big.Div(scaledUpWeightedSumSpaceTime, sectorSpaceTime), QualityBaseMultiplier)
}

// QAPowerForWeight computes the quality-adjusted power for a sector with the
// given weights.
func QAPowerForWeight(size abi.SectorSize, duration abi.ChainEpoch, dealWeight, verifiedWeight abi.DealWeight) abi.StoragePower {
	quality := QualityForWeight(size, duration, dealWeight, verifiedWeight)
	return big.Rsh(big.Mul(big.NewIntUnsigned(uint64(size)), quality), SectorQualityPrecision)
}

// DailyProofFee is the fee payable per day per sector, a fraction of the
// circulating supply proportional to the sector's quality-adjusted size.
func DailyProofFee(p *runtime.Policy, circulatingSupply abi.TokenAmount, qaSectorSize big.Int) abi.TokenAmount {
	fee := big.Mul(p.DailyFeeCirculatingSupplyQAPMultiplierNum, circulatingSupply)
	fee = big.Mul(fee, qaSectorSize)
	return big.Div(fee, p.DailyFeeCirculatingSupplyQAPMultiplierDenom)
}

// QuantSpec rounds epochs to a fixed schedule of unit-aligned values
// offset from a base epoch.
type QuantSpec struct {
	unit   abi.ChainEpoch
	offset abi.ChainEpoch
}

func NewQuantSpec(unit, offset abi.ChainEpoch) QuantSpec {
	return QuantSpec{unit: unit, offset: offset}
}

func NoQuantization() QuantSpec {
	return NewQuantSpec(1, 0)
}

// QuantizeUp rounds e to the nearest exact multiple of the quantization unit
// offset by offset % unit, rounding up.
func (q QuantSpec) QuantizeUp(e abi.ChainEpoch) abi.ChainEpoch {
	offset := q.offset % q.unit
	remainder := (e - offset) % q.unit
	quotient := (e - offset) / q.unit
	// Don't round if epoch falls on a quantization epoch,
	// or it's negative and before the offset.
	if remainder == 0 || e-offset < 0 {
		return q.unit*quotient + offset
	}
	return q.unit*(quotient+1) + offset
}
