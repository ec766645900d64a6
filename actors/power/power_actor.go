package power

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/snissn/builtin-actors/actors/builtin"
	"github.com/snissn/builtin-actors/actors/runtime"
)

type Actor struct{}

type UpdateClaimedPowerParams struct {
	RawByteDelta         abi.StoragePower
	QualityAdjustedDelta abi.StoragePower
}

type CurrentTotalPowerReturn struct {
	RawBytePower     abi.StoragePower
	QualityAdjPower  abi.StoragePower
	PledgeCollateral abi.TokenAmount
}

func (a Actor) Constructor(rt runtime.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	st, err := ConstructState(rt.Store())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")
	rt.StateCreate(st)
	return nil
}

// UpdateClaimedPower applies a power delta reported by a miner for sectors it
// has activated or terminated.
func (a Actor) UpdateClaimedPower(rt runtime.Runtime, params *UpdateClaimedPowerParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.StorageMinerActorCodeID)
	miner := rt.Caller()

	var st State
	rt.StateTransaction(&st, func() {
		err := st.AddToClaim(rt.Store(), miner, params.RawByteDelta, params.QualityAdjustedDelta)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update power for %v", miner)
	})
	return nil
}

func (a Actor) UpdatePledgeTotal(rt runtime.Runtime, amount *abi.TokenAmount) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.StorageMinerActorCodeID)

	var st State
	rt.StateTransaction(&st, func() {
		err := st.AddPledgeTotal(*amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update pledge total")
	})
	return nil
}

func (a Actor) CurrentTotalPower(rt runtime.Runtime, _ *abi.EmptyValue) *CurrentTotalPowerReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)
	return &CurrentTotalPowerReturn{
		RawBytePower:     st.TotalRawBytePower,
		QualityAdjPower:  st.TotalQualityAdjPower,
		PledgeCollateral: st.TotalPledgeCollateral,
	}
}
