package power_test

import (
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snissn/builtin-actors/actors/builtin"
	"github.com/snissn/builtin-actors/actors/power"
	"github.com/snissn/builtin-actors/support/mock"
	tutil "github.com/snissn/builtin-actors/support/testing"
)

func setupPower(t *testing.T) (*mock.Runtime, power.Actor) {
	rt := mock.NewBuilder(builtin.StoragePowerActorAddr).Build(t)
	var a power.Actor
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	rt.SetCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
	rt.Call(a.Constructor, abi.Empty)
	rt.Verify()
	return rt, a
}

func TestPowerConstruction(t *testing.T) {
	rt, _ := setupPower(t)

	var st power.State
	rt.GetState(&st)
	assert.True(t, st.TotalRawBytePower.IsZero())
	assert.True(t, st.TotalQualityAdjPower.IsZero())
	assert.Equal(t, int64(0), st.MinerCount)
}

func TestUpdateClaimedPower(t *testing.T) {
	miner := tutil.NewIDAddr(1000)

	t.Run("tracks per-miner claims and network totals", func(t *testing.T) {
		rt, a := setupPower(t)

		rt.SetCaller(miner, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.Call(a.UpdateClaimedPower, &power.UpdateClaimedPowerParams{
			RawByteDelta:         abi.NewStoragePower(1 << 30),
			QualityAdjustedDelta: abi.NewStoragePower(10 << 30),
		})
		rt.Verify()

		var st power.State
		rt.GetState(&st)
		assert.True(t, abi.NewStoragePower(1<<30).Equals(st.TotalRawBytePower))
		assert.True(t, abi.NewStoragePower(10<<30).Equals(st.TotalQualityAdjPower))
		assert.Equal(t, int64(1), st.MinerCount)

		claim, found, err := st.GetClaim(rt.AdtStore(), miner)
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, abi.NewStoragePower(10<<30).Equals(claim.QualityAdjPower))

		// A negative delta reduces the claim.
		rt.SetCaller(miner, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.Call(a.UpdateClaimedPower, &power.UpdateClaimedPowerParams{
			RawByteDelta:         abi.NewStoragePower(0),
			QualityAdjustedDelta: abi.NewStoragePower(-(5 << 30)),
		})
		rt.Verify()
		rt.GetState(&st)
		assert.True(t, abi.NewStoragePower(5<<30).Equals(st.TotalQualityAdjPower))
	})

	t.Run("rejects non-miner callers", func(t *testing.T) {
		rt, a := setupPower(t)
		rt.SetCaller(miner, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(a.UpdateClaimedPower, &power.UpdateClaimedPowerParams{
				RawByteDelta:         abi.NewStoragePower(1),
				QualityAdjustedDelta: abi.NewStoragePower(1),
			})
		})
		rt.Verify()
	})

	t.Run("claim cannot go negative", func(t *testing.T) {
		rt, a := setupPower(t)
		rt.SetCaller(miner, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(a.UpdateClaimedPower, &power.UpdateClaimedPowerParams{
				RawByteDelta:         abi.NewStoragePower(-1),
				QualityAdjustedDelta: abi.NewStoragePower(0),
			})
		})
		rt.Verify()
	})
}

func TestPledgeAndTotals(t *testing.T) {
	rt, a := setupPower(t)
	miner := tutil.NewIDAddr(1000)

	rt.SetCaller(miner, builtin.StorageMinerActorCodeID)
	rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
	amt := abi.NewTokenAmount(5000)
	rt.Call(a.UpdatePledgeTotal, &amt)
	rt.Verify()

	rt.SetCaller(miner, builtin.StorageMinerActorCodeID)
	rt.ExpectValidateCallerAny()
	ret := rt.Call(a.CurrentTotalPower, abi.Empty).(*power.CurrentTotalPowerReturn)
	rt.Verify()
	assert.True(t, big.NewInt(5000).Equals(ret.PledgeCollateral))
}
