package miner_test

import (
	"fmt"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	stbuiltin "github.com/filecoin-project/go-state-types/builtin"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/proof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snissn/builtin-actors/actors/builtin"
	"github.com/snissn/builtin-actors/actors/miner"
	"github.com/snissn/builtin-actors/actors/power"
	"github.com/snissn/builtin-actors/actors/runtime"
	"github.com/snissn/builtin-actors/actors/verifreg"
	"github.com/snissn/builtin-actors/support/mock"
	tutil "github.com/snissn/builtin-actors/support/testing"
)

const sealProof = abi.RegisteredSealProof_StackedDrg32GiBV1_1
const postProof = abi.RegisteredPoStProof_StackedDrgWindow32GiBV1
const updateProof = abi.RegisteredUpdateProof_StackedDrg32GiBV1

const sectorSize = abi.SectorSize(32 << 30)

// 4 GiB keeps the quality-adjusted power arithmetic exact.
const pieceSize = abi.PaddedPieceSize(4 << 30)

var (
	owner     = tutil.NewIDAddr(100)
	worker    = tutil.NewIDAddr(101)
	minerAddr = tutil.NewIDAddr(1000)
	market    = tutil.NewIDAddr(7000)

	client      = abi.ActorID(5000)
	circSupply  = big.Mul(big.NewInt(600_000_000), big.NewInt(1e18))
	testPolicy  = runtime.DefaultPolicy()
	commitEpoch = abi.ChainEpoch(100)
	expiration  = abi.ChainEpoch(180 * stbuiltin.EpochsInDay)
)

func basicSetup(t *testing.T) (*mock.Runtime, *minerHarness) {
	rt := mock.NewBuilder(minerAddr).Build(t)
	rt.SetCirculatingSupply(circSupply)
	h := &minerHarness{t: t}
	h.constructAndVerify(rt)
	return rt, h
}

type minerHarness struct {
	miner.Actor
	t *testing.T
}

func (h *minerHarness) constructAndVerify(rt *mock.Runtime) {
	rt.SetCaller(builtin.InitActorAddr, builtin.SystemActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
	ret := rt.Call(h.Constructor, &miner.ConstructorParams{
		Owner:               owner,
		Worker:              worker,
		WindowPoStProofType: postProof,
	})
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *minerHarness) preCommitSector(rt *mock.Runtime, sno abi.SectorNumber) {
	rt.SetCaller(worker, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAddr(owner, worker)
	rt.Call(h.PreCommitSector, &miner.PreCommitSectorParams{
		SealProof:    sealProof,
		SectorNumber: sno,
		SealedCID:    tutil.MakeSealedCID(fmt.Sprintf("sealed-%d", sno)),
		Expiration:   expiration,
	})
	rt.Verify()
}

// commitSectors runs the full pipeline for a batch of sectors with no data.
func (h *minerHarness) commitSectors(rt *mock.Runtime, snos ...abi.SectorNumber) {
	for _, sno := range snos {
		h.preCommitSector(rt, sno)
	}
	activations := make([]miner.SectorActivationManifest, 0, len(snos))
	proofs := make([][]byte, 0, len(snos))
	for _, sno := range snos {
		activations = append(activations, miner.SectorActivationManifest{SectorNumber: sno})
		proofs = append(proofs, []byte(fmt.Sprintf("proof-%d", sno)))
	}

	rt.SetCaller(worker, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAddr(owner, worker)
	size := big.NewIntUnsigned(uint64(sectorSize))
	count := big.NewInt(int64(len(snos)))
	rt.ExpectSend(builtin.StoragePowerActorAddr, stbuiltin.MethodsPower.UpdateClaimedPower, &power.UpdateClaimedPowerParams{
		RawByteDelta:         big.Mul(size, count),
		QualityAdjustedDelta: big.Mul(size, count),
	}, big.Zero(), nil, exitcode.Ok)

	ret := rt.Call(h.ProveCommitSectors3, &miner.ProveCommitSectors3Params{
		SectorActivations: activations,
		SectorProofs:      proofs,
	}).(*miner.ProveCommitSectors3Return)
	require.True(h.t, ret.ActivationResults.AllOk())
	rt.Verify()
}

func (h *minerHarness) getSector(rt *mock.Runtime, sno abi.SectorNumber) *miner.SectorOnChainInfo {
	var st miner.State
	rt.GetState(&st)
	sector, found, err := st.GetSector(rt.AdtStore(), sno)
	require.NoError(h.t, err)
	require.True(h.t, found)
	return sector
}

func (h *minerHarness) hasSector(rt *mock.Runtime, sno abi.SectorNumber) bool {
	var st miner.State
	rt.GetState(&st)
	_, found, err := st.GetSector(rt.AdtStore(), sno)
	require.NoError(h.t, err)
	return found
}

// checkDeadlineFee asserts the deadline's aggregate daily fee and the fee
// deduction queued at the sectors' shared expiration bucket.
func (h *minerHarness) checkDeadlineFee(rt *mock.Runtime, dlIdx uint64, expected abi.TokenAmount) {
	var st miner.State
	rt.GetState(&st)
	store := rt.AdtStore()
	dl, err := st.GetDeadline(store, dlIdx)
	require.NoError(h.t, err)
	assert.Equal(h.t, expected, dl.DailyFee)

	partition, found, err := dl.GetPartition(store, 0)
	require.NoError(h.t, err)
	require.True(h.t, found)
	quant := st.QuantSpecForDeadline(testPolicy, dlIdx)
	set, found, err := partition.ExpirationSetAt(store, expiration, quant)
	require.NoError(h.t, err)
	require.True(h.t, found)
	assert.Equal(h.t, expected, set.FeeDeduction)
}

func verifiedPiece(sno abi.SectorNumber, allocID verifreg.AllocationId) miner.PieceActivationManifest {
	return miner.PieceActivationManifest{
		CID:  tutil.MakePieceCID(fmt.Sprintf("piece-%d", sno)),
		Size: pieceSize,
		VerifiedAllocationKey: &miner.VerifiedAllocationKey{
			Client: client,
			ID:     allocID,
		},
	}
}

func unverifiedPiece(sno abi.SectorNumber) miner.PieceActivationManifest {
	return miner.PieceActivationManifest{
		CID:  tutil.MakePieceCID(fmt.Sprintf("piece-%d", sno)),
		Size: pieceSize,
	}
}

func claimFor(sno abi.SectorNumber, piece miner.PieceActivationManifest) verifreg.AllocationClaim {
	return verifreg.AllocationClaim{
		Client:       piece.VerifiedAllocationKey.Client,
		AllocationId: piece.VerifiedAllocationKey.ID,
		Data:         piece.CID,
		Size:         piece.Size,
	}
}

// expectedFee is the daily fee for a sector holding the given verified size.
func expectedFee(verifiedSpace big.Int) abi.TokenAmount {
	qaBytes := big.Add(big.NewIntUnsigned(uint64(sectorSize)), big.Mul(big.NewInt(9), verifiedSpace))
	return miner.DailyProofFee(testPolicy, circSupply, qaBytes)
}

func TestConstruction(t *testing.T) {
	rt, _ := basicSetup(t)

	var st miner.State
	rt.GetState(&st)
	info, err := st.GetInfo(rt.AdtStore())
	require.NoError(t, err)
	assert.Equal(t, owner, info.Owner)
	assert.Equal(t, worker, info.Worker)
	assert.Equal(t, sectorSize, info.SectorSize)

	// The proving calendar is fully populated from the start.
	for i := uint64(0); i < testPolicy.WPoStPeriodDeadlines; i++ {
		dl, err := st.GetDeadline(rt.AdtStore(), i)
		require.NoError(t, err)
		assert.Equal(t, big.Zero(), dl.DailyFee)
		assert.Zero(t, dl.LiveSectors)
	}
}

func TestPreCommitSector(t *testing.T) {
	t.Run("rejects duplicate sector number", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(commitEpoch)
		h.preCommitSector(rt, 100)

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.PreCommitSector, &miner.PreCommitSectorParams{
				SealProof:    sealProof,
				SectorNumber: 100,
				SealedCID:    tutil.MakeSealedCID("sealed-again"),
				Expiration:   expiration,
			})
		})
	})

	t.Run("rejects expiration in the past", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(expiration + 1)
		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.PreCommitSector, &miner.PreCommitSectorParams{
				SealProof:    sealProof,
				SectorNumber: 100,
				SealedCID:    tutil.MakeSealedCID("sealed"),
				Expiration:   expiration,
			})
		})
	})

	t.Run("rejects non-worker caller", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetCaller(tutil.NewIDAddr(999), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(h.PreCommitSector, &miner.PreCommitSectorParams{
				SealProof:    sealProof,
				SectorNumber: 100,
				SealedCID:    tutil.MakeSealedCID("sealed"),
				Expiration:   expiration,
			})
		})
	})
}

func TestProveCommitSectors3(t *testing.T) {
	// One sector of each shape: no data, unverified data, verified data,
	// and verified data with a notification.
	snos := []abi.SectorNumber{100, 101, 102, 103}

	setup := func(t *testing.T) (*mock.Runtime, *minerHarness, *miner.ProveCommitSectors3Params) {
		rt, h := basicSetup(t)
		rt.SetEpoch(commitEpoch)
		for _, sno := range snos {
			h.preCommitSector(rt, sno)
		}

		notifyPiece := verifiedPiece(103, 2)
		notifyPiece.Notify = []miner.DataActivationNotification{{Address: market, Payload: []byte("deal-103")}}
		params := &miner.ProveCommitSectors3Params{
			SectorActivations: []miner.SectorActivationManifest{
				{SectorNumber: 100},
				{SectorNumber: 101, Pieces: []miner.PieceActivationManifest{unverifiedPiece(101)}},
				{SectorNumber: 102, Pieces: []miner.PieceActivationManifest{verifiedPiece(102, 1)}},
				{SectorNumber: 103, Pieces: []miner.PieceActivationManifest{notifyPiece}},
			},
			SectorProofs: [][]byte{[]byte("p100"), []byte("p101"), []byte("p102"), []byte("p103")},
		}
		return rt, h, params
	}

	expectClaims := func(rt *mock.Runtime, params *miner.ProveCommitSectors3Params, results builtin.BatchReturn) {
		sectors := make([]verifreg.SectorAllocationClaims, 0, len(params.SectorActivations))
		for _, activation := range params.SectorActivations {
			group := verifreg.SectorAllocationClaims{Sector: activation.SectorNumber, Expiry: expiration}
			for _, piece := range activation.Pieces {
				if piece.VerifiedAllocationKey != nil {
					group.Claims = append(group.Claims, claimFor(activation.SectorNumber, piece))
				}
			}
			sectors = append(sectors, group)
		}
		rt.ExpectSend(builtin.VerifiedRegistryActorAddr, stbuiltin.MethodsVerifiedRegistry.ClaimAllocations,
			&verifreg.ClaimAllocationsParams{Sectors: sectors, AllOrNothing: params.RequireActivationSuccess},
			big.Zero(), &verifreg.ClaimAllocationsReturn{SectorResults: results}, exitcode.Ok)
	}

	t.Run("mixed batch activates data and power", func(t *testing.T) {
		rt, h, params := setup(t)
		duration := expiration - commitEpoch

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		expectClaims(rt, params, builtin.BatchReturnOK(4))

		size := big.NewIntUnsigned(uint64(sectorSize))
		verified := big.NewIntUnsigned(uint64(pieceSize))
		qaPlain := miner.QAPowerForWeight(sectorSize, duration, big.Zero(), big.Zero())
		qaUnverified := miner.QAPowerForWeight(sectorSize, duration, big.Mul(verified, big.NewInt(int64(duration))), big.Zero())
		qaVerified := miner.QAPowerForWeight(sectorSize, duration, big.Zero(), big.Mul(verified, big.NewInt(int64(duration))))
		rt.ExpectSend(builtin.StoragePowerActorAddr, stbuiltin.MethodsPower.UpdateClaimedPower, &power.UpdateClaimedPowerParams{
			RawByteDelta:         big.Mul(size, big.NewInt(4)),
			QualityAdjustedDelta: big.Sum(qaPlain, qaUnverified, qaVerified, qaVerified),
		}, big.Zero(), nil, exitcode.Ok)

		notifyPiece := params.SectorActivations[3].Pieces[0]
		rt.ExpectSend(market, builtin.MethodSectorContentChanged, &miner.SectorContentChangedParams{
			Sectors: []miner.SectorChanges{{
				Sector:                 103,
				MinimumCommitmentEpoch: expiration,
				Added:                  []miner.PieceChange{{Data: notifyPiece.CID, Size: notifyPiece.Size, Payload: []byte("deal-103")}},
			}},
		}, big.Zero(), &miner.SectorContentChangedReturn{
			Sectors: []miner.SectorReturn{{Added: []miner.PieceReturn{{Accepted: true}}}},
		}, exitcode.Ok)

		ret := rt.Call(h.ProveCommitSectors3, params).(*miner.ProveCommitSectors3Return)
		require.True(t, ret.ActivationResults.AllOk())
		assert.Equal(t, 4, ret.ActivationResults.Size())
		rt.Verify()

		// Quality-adjusted power follows committed data; so do the weights.
		plainQA := big.NewIntUnsigned(uint64(sectorSize))
		assert.Equal(t, plainQA, qaPlain)
		assert.Equal(t, plainQA, qaUnverified)
		assert.Equal(t, big.Add(plainQA, big.Mul(big.NewInt(9), verified)), qaVerified)

		sector100 := h.getSector(rt, 100)
		assert.Equal(t, big.Zero(), sector100.DealWeight)
		assert.Equal(t, big.Zero(), sector100.VerifiedDealWeight)
		assert.Equal(t, expectedFee(big.Zero()), sector100.DailyFee)
		assert.Equal(t, commitEpoch, sector100.Activation)
		assert.Equal(t, commitEpoch, sector100.PowerBaseEpoch)

		sector101 := h.getSector(rt, 101)
		assert.Equal(t, big.Mul(verified, big.NewInt(int64(duration))), sector101.DealWeight)
		assert.Equal(t, big.Zero(), sector101.VerifiedDealWeight)
		assert.Equal(t, expectedFee(big.Zero()), sector101.DailyFee)

		sector102 := h.getSector(rt, 102)
		assert.Equal(t, big.Zero(), sector102.DealWeight)
		assert.Equal(t, big.Mul(verified, big.NewInt(int64(duration))), sector102.VerifiedDealWeight)
		assert.Equal(t, expectedFee(verified), sector102.DailyFee)

		// Fees land in each sector's deadline and expiration bucket.
		h.checkDeadlineFee(rt, uint64(100)%testPolicy.WPoStPeriodDeadlines, expectedFee(big.Zero()))
		h.checkDeadlineFee(rt, uint64(102)%testPolicy.WPoStPeriodDeadlines, expectedFee(verified))

		// The precommits are consumed.
		var st miner.State
		rt.GetState(&st)
		_, found, err := st.GetPrecommittedSector(rt.AdtStore(), 100)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("invalid proof and claim drop sectors from batch", func(t *testing.T) {
		rt, h, params := setup(t)
		duration := expiration - commitEpoch

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)

		// Sector 101 fails proof verification; the claim for 102 is refused.
		for _, sno := range snos {
			var verifyErr error
			if sno == 101 {
				verifyErr = fmt.Errorf("bad proof")
			}
			rt.ExpectVerifySeal(proof.SealVerifyInfo{
				SectorID: abi.SectorID{Miner: 1000, Number: sno},
			}, verifyErr)
		}

		sectors := []verifreg.SectorAllocationClaims{
			{Sector: 100, Expiry: expiration},
			{Sector: 102, Expiry: expiration, Claims: []verifreg.AllocationClaim{claimFor(102, params.SectorActivations[2].Pieces[0])}},
			{Sector: 103, Expiry: expiration, Claims: []verifreg.AllocationClaim{claimFor(103, params.SectorActivations[3].Pieces[0])}},
		}
		rt.ExpectSend(builtin.VerifiedRegistryActorAddr, stbuiltin.MethodsVerifiedRegistry.ClaimAllocations,
			&verifreg.ClaimAllocationsParams{Sectors: sectors},
			big.Zero(), &verifreg.ClaimAllocationsReturn{
				SectorResults: builtin.BatchReturnOf(exitcode.Ok, exitcode.ErrForbidden, exitcode.Ok),
			}, exitcode.Ok)

		size := big.NewIntUnsigned(uint64(sectorSize))
		verified := big.NewIntUnsigned(uint64(pieceSize))
		qaVerified := miner.QAPowerForWeight(sectorSize, duration, big.Zero(), big.Mul(verified, big.NewInt(int64(duration))))
		rt.ExpectSend(builtin.StoragePowerActorAddr, stbuiltin.MethodsPower.UpdateClaimedPower, &power.UpdateClaimedPowerParams{
			RawByteDelta:         big.Mul(size, big.NewInt(2)),
			QualityAdjustedDelta: big.Add(size, qaVerified),
		}, big.Zero(), nil, exitcode.Ok)

		notifyPiece := params.SectorActivations[3].Pieces[0]
		rt.ExpectSend(market, builtin.MethodSectorContentChanged, &miner.SectorContentChangedParams{
			Sectors: []miner.SectorChanges{{
				Sector:                 103,
				MinimumCommitmentEpoch: expiration,
				Added:                  []miner.PieceChange{{Data: notifyPiece.CID, Size: notifyPiece.Size, Payload: []byte("deal-103")}},
			}},
		}, big.Zero(), nil, exitcode.Ok)

		ret := rt.Call(h.ProveCommitSectors3, params).(*miner.ProveCommitSectors3Return)
		rt.Verify()

		assert.Equal(t, []exitcode.ExitCode{
			exitcode.Ok, exitcode.ErrIllegalArgument, exitcode.ErrForbidden, exitcode.Ok,
		}, ret.ActivationResults.Codes())

		assert.True(t, h.hasSector(rt, 100))
		assert.False(t, h.hasSector(rt, 101))
		assert.False(t, h.hasSector(rt, 102))
		assert.True(t, h.hasSector(rt, 103))
	})

	t.Run("aborts on invalid proof when success required", func(t *testing.T) {
		rt, h, params := setup(t)
		params.RequireActivationSuccess = true

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectVerifySeal(proof.SealVerifyInfo{
			SectorID: abi.SectorID{Miner: 1000, Number: 100},
		}, fmt.Errorf("bad proof"))
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.ProveCommitSectors3, params)
		})
		assert.False(t, h.hasSector(rt, 100))
	})

	t.Run("aborts on duplicate sector numbers", func(t *testing.T) {
		rt, h, params := setup(t)
		params.SectorActivations[1].SectorNumber = 100

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.ProveCommitSectors3, params)
		})
	})

	t.Run("aborts on mismatched proof count", func(t *testing.T) {
		rt, h, params := setup(t)
		params.SectorProofs = params.SectorProofs[:2]

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.ProveCommitSectors3, params)
		})
	})
}

func TestProveReplicaUpdates3(t *testing.T) {
	snos := []abi.SectorNumber{100, 101, 102, 103}
	updateEpoch := commitEpoch + 50

	setup := func(t *testing.T) (*mock.Runtime, *minerHarness) {
		rt, h := basicSetup(t)
		rt.SetEpoch(commitEpoch)
		h.commitSectors(rt, snos...)
		rt.SetEpoch(updateEpoch)
		return rt, h
	}

	updateFor := func(sno abi.SectorNumber, pieces ...miner.PieceActivationManifest) miner.SectorUpdateManifest {
		return miner.SectorUpdateManifest{
			Sector:       sno,
			Deadline:     uint64(sno) % testPolicy.WPoStPeriodDeadlines,
			Partition:    0,
			NewSealedCID: tutil.MakeSealedCID(fmt.Sprintf("updated-%d", sno)),
			Pieces:       pieces,
		}
	}

	t.Run("mixed batch updates data, fees and power", func(t *testing.T) {
		rt, h := setup(t)
		duration := expiration - updateEpoch

		notifyPiece := verifiedPiece(103, 2)
		notifyPiece.Notify = []miner.DataActivationNotification{{Address: market, Payload: []byte("deal-103")}}
		params := &miner.ProveReplicaUpdates3Params{
			SectorUpdates: []miner.SectorUpdateManifest{
				updateFor(100),
				updateFor(101, unverifiedPiece(101)),
				updateFor(102, verifiedPiece(102, 1)),
				updateFor(103, notifyPiece),
			},
			SectorProofs:     [][]byte{[]byte("u100"), []byte("u101"), []byte("u102"), []byte("u103")},
			UpdateProofsType: updateProof,
		}

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)

		sectors := []verifreg.SectorAllocationClaims{
			{Sector: 100, Expiry: expiration},
			{Sector: 101, Expiry: expiration},
			{Sector: 102, Expiry: expiration, Claims: []verifreg.AllocationClaim{claimFor(102, params.SectorUpdates[2].Pieces[0])}},
			{Sector: 103, Expiry: expiration, Claims: []verifreg.AllocationClaim{claimFor(103, params.SectorUpdates[3].Pieces[0])}},
		}
		rt.ExpectSend(builtin.VerifiedRegistryActorAddr, stbuiltin.MethodsVerifiedRegistry.ClaimAllocations,
			&verifreg.ClaimAllocationsParams{Sectors: sectors},
			big.Zero(), &verifreg.ClaimAllocationsReturn{SectorResults: builtin.BatchReturnOK(4)}, exitcode.Ok)

		// Replacing data in two sectors with verified pieces adds QA power
		// but no raw power.
		size := big.NewIntUnsigned(uint64(sectorSize))
		verified := big.NewIntUnsigned(uint64(pieceSize))
		qaVerified := miner.QAPowerForWeight(sectorSize, duration, big.Zero(), big.Mul(verified, big.NewInt(int64(duration))))
		qaDelta := big.Mul(big.Sub(qaVerified, size), big.NewInt(2))
		rt.ExpectSend(builtin.StoragePowerActorAddr, stbuiltin.MethodsPower.UpdateClaimedPower, &power.UpdateClaimedPowerParams{
			RawByteDelta:         big.Zero(),
			QualityAdjustedDelta: qaDelta,
		}, big.Zero(), nil, exitcode.Ok)

		rt.ExpectSend(market, builtin.MethodSectorContentChanged, &miner.SectorContentChangedParams{
			Sectors: []miner.SectorChanges{{
				Sector:                 103,
				MinimumCommitmentEpoch: expiration,
				Added:                  []miner.PieceChange{{Data: notifyPiece.CID, Size: notifyPiece.Size, Payload: []byte("deal-103")}},
			}},
		}, big.Zero(), &miner.SectorContentChangedReturn{
			Sectors: []miner.SectorReturn{{Added: []miner.PieceReturn{{Accepted: true}}}},
		}, exitcode.Ok)

		ret := rt.Call(h.ProveReplicaUpdates3, params).(*miner.ProveReplicaUpdates3Return)
		require.True(t, ret.ActivationResults.AllOk())
		rt.Verify()

		sector102 := h.getSector(rt, 102)
		assert.Equal(t, tutil.MakeSealedCID("updated-102"), sector102.SealedCID)
		assert.Equal(t, big.Mul(verified, big.NewInt(int64(duration))), sector102.VerifiedDealWeight)
		assert.Equal(t, updateEpoch, sector102.PowerBaseEpoch)
		assert.Equal(t, commitEpoch, sector102.Activation)
		assert.Equal(t, expectedFee(verified), sector102.DailyFee)

		// The fee delta joins the fee recorded at first commitment.
		h.checkDeadlineFee(rt, uint64(102)%testPolicy.WPoStPeriodDeadlines, expectedFee(verified))
		h.checkDeadlineFee(rt, uint64(100)%testPolicy.WPoStPeriodDeadlines, expectedFee(big.Zero()))
	})

	t.Run("rejects update of sector with data, empty update remains updatable", func(t *testing.T) {
		rt, h := setup(t)

		// Fill sector 101 with data.
		fill := &miner.ProveReplicaUpdates3Params{
			SectorUpdates:    []miner.SectorUpdateManifest{updateFor(101, unverifiedPiece(101))},
			SectorProofs:     [][]byte{[]byte("u101")},
			UpdateProofsType: updateProof,
		}
		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.Call(h.ProveReplicaUpdates3, fill)
		rt.Verify()

		// A second update of 101 is refused: its weights are no longer zero.
		// Sector 100 took no data in any update and may still be updated.
		again := &miner.ProveReplicaUpdates3Params{
			SectorUpdates:    []miner.SectorUpdateManifest{updateFor(101, unverifiedPiece(101)), updateFor(100)},
			SectorProofs:     [][]byte{[]byte("u101b"), []byte("u100")},
			UpdateProofsType: updateProof,
		}
		rt.ExpectValidateCallerAddr(owner, worker)
		ret := rt.Call(h.ProveReplicaUpdates3, again).(*miner.ProveReplicaUpdates3Return)
		rt.Verify()
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrIllegalArgument, exitcode.Ok}, ret.ActivationResults.Codes())

		sector100 := h.getSector(rt, 100)
		assert.Equal(t, tutil.MakeSealedCID("updated-100"), sector100.SealedCID)
	})

	t.Run("invalid update proof drops sector", func(t *testing.T) {
		rt, h := setup(t)

		params := &miner.ProveReplicaUpdates3Params{
			SectorUpdates:    []miner.SectorUpdateManifest{updateFor(100), updateFor(101, unverifiedPiece(101))},
			SectorProofs:     [][]byte{[]byte("u100"), []byte("u101")},
			UpdateProofsType: updateProof,
		}

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectReplicaVerify(proof.ReplicaUpdateInfo{
			UpdateProofType:    updateProof,
			NewSealedSectorCID: tutil.MakeSealedCID("updated-100"),
		}, fmt.Errorf("bad update proof"))
		rt.ExpectReplicaVerify(proof.ReplicaUpdateInfo{
			UpdateProofType:    updateProof,
			NewSealedSectorCID: tutil.MakeSealedCID("updated-101"),
		}, nil)

		ret := rt.Call(h.ProveReplicaUpdates3, params).(*miner.ProveReplicaUpdates3Return)
		rt.Verify()
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrIllegalArgument, exitcode.Ok}, ret.ActivationResults.Codes())

		// The dropped sector keeps its original replica.
		sector100 := h.getSector(rt, 100)
		assert.Equal(t, tutil.MakeSealedCID("sealed-100"), sector100.SealedCID)
	})

	t.Run("unknown sector fails with not found", func(t *testing.T) {
		rt, h := setup(t)

		params := &miner.ProveReplicaUpdates3Params{
			SectorUpdates:    []miner.SectorUpdateManifest{updateFor(999)},
			SectorProofs:     [][]byte{[]byte("u999")},
			UpdateProofsType: updateProof,
		}
		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		ret := rt.Call(h.ProveReplicaUpdates3, params).(*miner.ProveReplicaUpdates3Return)
		rt.Verify()
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrNotFound}, ret.ActivationResults.Codes())
	})

	t.Run("aborts when activation success required and claim fails", func(t *testing.T) {
		rt, h := setup(t)

		params := &miner.ProveReplicaUpdates3Params{
			SectorUpdates:            []miner.SectorUpdateManifest{updateFor(102, verifiedPiece(102, 1))},
			SectorProofs:             [][]byte{[]byte("u102")},
			UpdateProofsType:         updateProof,
			RequireActivationSuccess: true,
		}

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		sectors := []verifreg.SectorAllocationClaims{
			{Sector: 102, Expiry: expiration, Claims: []verifreg.AllocationClaim{claimFor(102, params.SectorUpdates[0].Pieces[0])}},
		}
		// All-or-nothing claiming aborts in the registry; the code propagates.
		rt.ExpectSend(builtin.VerifiedRegistryActorAddr, stbuiltin.MethodsVerifiedRegistry.ClaimAllocations,
			&verifreg.ClaimAllocationsParams{Sectors: sectors, AllOrNothing: true},
			big.Zero(), nil, exitcode.ErrIllegalArgument)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.ProveReplicaUpdates3, params)
		})

		sector102 := h.getSector(rt, 102)
		assert.Equal(t, tutil.MakeSealedCID("sealed-102"), sector102.SealedCID)
	})
}

func TestActivationManifestLimits(t *testing.T) {
	// 9 x 4 GiB in a 32 GiB sector.
	oversized := func(sno abi.SectorNumber) []miner.PieceActivationManifest {
		pieces := make([]miner.PieceActivationManifest, 0, 9)
		for i := 0; i < 9; i++ {
			pieces = append(pieces, miner.PieceActivationManifest{
				CID:  tutil.MakePieceCID(fmt.Sprintf("piece-%d-%d", sno, i)),
				Size: pieceSize,
			})
		}
		return pieces
	}

	t.Run("oversized manifest fails the sector", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(commitEpoch)
		h.preCommitSector(rt, 100)

		params := &miner.ProveCommitSectors3Params{
			SectorActivations: []miner.SectorActivationManifest{{SectorNumber: 100, Pieces: oversized(100)}},
			SectorProofs:      [][]byte{[]byte("p100")},
		}
		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		ret := rt.Call(h.ProveCommitSectors3, params).(*miner.ProveCommitSectors3Return)
		rt.Verify()
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrIllegalArgument}, ret.ActivationResults.Codes())
		assert.False(t, h.hasSector(rt, 100))
	})

	t.Run("oversized manifest aborts when success required", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(commitEpoch)
		h.preCommitSector(rt, 100)

		params := &miner.ProveCommitSectors3Params{
			SectorActivations:        []miner.SectorActivationManifest{{SectorNumber: 100, Pieces: oversized(100)}},
			SectorProofs:             [][]byte{[]byte("p100")},
			RequireActivationSuccess: true,
		}
		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.ProveCommitSectors3, params)
		})
	})

	t.Run("proving at expiration fails the sector", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(commitEpoch)
		h.preCommitSector(rt, 100)
		rt.SetEpoch(expiration)

		params := &miner.ProveCommitSectors3Params{
			SectorActivations: []miner.SectorActivationManifest{{SectorNumber: 100}},
			SectorProofs:      [][]byte{[]byte("p100")},
		}
		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		ret := rt.Call(h.ProveCommitSectors3, params).(*miner.ProveCommitSectors3Return)
		rt.Verify()
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrIllegalArgument}, ret.ActivationResults.Codes())
		assert.False(t, h.hasSector(rt, 100))
	})

	t.Run("oversized update manifest fails the sector", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(commitEpoch)
		h.commitSectors(rt, 100)

		params := &miner.ProveReplicaUpdates3Params{
			SectorUpdates: []miner.SectorUpdateManifest{{
				Sector:       100,
				Deadline:     uint64(100) % testPolicy.WPoStPeriodDeadlines,
				Partition:    0,
				NewSealedCID: tutil.MakeSealedCID("updated-100"),
				Pieces:       oversized(100),
			}},
			SectorProofs:     [][]byte{[]byte("u100")},
			UpdateProofsType: updateProof,
		}
		rt.ExpectValidateCallerAddr(owner, worker)
		ret := rt.Call(h.ProveReplicaUpdates3, params).(*miner.ProveReplicaUpdates3Return)
		rt.Verify()
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrIllegalArgument}, ret.ActivationResults.Codes())
		assert.Equal(t, tutil.MakeSealedCID("sealed-100"), h.getSector(rt, 100).SealedCID)
	})

	t.Run("update at expiration fails the sector", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(commitEpoch)
		h.commitSectors(rt, 100)
		rt.SetEpoch(expiration)

		params := &miner.ProveReplicaUpdates3Params{
			SectorUpdates: []miner.SectorUpdateManifest{{
				Sector:       100,
				Deadline:     uint64(100) % testPolicy.WPoStPeriodDeadlines,
				Partition:    0,
				NewSealedCID: tutil.MakeSealedCID("updated-100"),
			}},
			SectorProofs:     [][]byte{[]byte("u100")},
			UpdateProofsType: updateProof,
		}
		rt.ExpectValidateCallerAddr(owner, worker)
		ret := rt.Call(h.ProveReplicaUpdates3, params).(*miner.ProveReplicaUpdates3Return)
		rt.Verify()
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrIllegalArgument}, ret.ActivationResults.Codes())
		assert.Equal(t, tutil.MakeSealedCID("sealed-100"), h.getSector(rt, 100).SealedCID)
	})
}

func TestDataConsumerNotifications(t *testing.T) {
	updateEpoch := commitEpoch + 50

	setup := func(t *testing.T) (*mock.Runtime, *minerHarness, *miner.ProveReplicaUpdates3Params) {
		rt, h := basicSetup(t)
		rt.SetEpoch(commitEpoch)
		h.commitSectors(rt, 100)
		rt.SetEpoch(updateEpoch)

		piece := unverifiedPiece(100)
		piece.Notify = []miner.DataActivationNotification{{Address: market, Payload: []byte("deal-100")}}
		params := &miner.ProveReplicaUpdates3Params{
			SectorUpdates: []miner.SectorUpdateManifest{{
				Sector:       100,
				Deadline:     uint64(100) % testPolicy.WPoStPeriodDeadlines,
				Partition:    0,
				NewSealedCID: tutil.MakeSealedCID("updated-100"),
				Pieces:       []miner.PieceActivationManifest{piece},
			}},
			SectorProofs:     [][]byte{[]byte("u100")},
			UpdateProofsType: updateProof,
		}
		return rt, h, params
	}

	notificationParams := func(params *miner.ProveReplicaUpdates3Params) *miner.SectorContentChangedParams {
		piece := params.SectorUpdates[0].Pieces[0]
		return &miner.SectorContentChangedParams{
			Sectors: []miner.SectorChanges{{
				Sector:                 100,
				MinimumCommitmentEpoch: expiration,
				Added:                  []miner.PieceChange{{Data: piece.CID, Size: piece.Size, Payload: []byte("deal-100")}},
			}},
		}
	}

	t.Run("aborted notification is swallowed", func(t *testing.T) {
		rt, h, params := setup(t)

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectSend(market, builtin.MethodSectorContentChanged, notificationParams(params), big.Zero(), nil, exitcode.ErrIllegalState)

		ret := rt.Call(h.ProveReplicaUpdates3, params).(*miner.ProveReplicaUpdates3Return)
		rt.Verify()
		require.True(t, ret.ActivationResults.AllOk())
		assert.Equal(t, tutil.MakeSealedCID("updated-100"), h.getSector(rt, 100).SealedCID)
	})

	t.Run("rejected piece is swallowed", func(t *testing.T) {
		rt, h, params := setup(t)

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectSend(market, builtin.MethodSectorContentChanged, notificationParams(params), big.Zero(), &miner.SectorContentChangedReturn{
			Sectors: []miner.SectorReturn{{Added: []miner.PieceReturn{{Accepted: false}}}},
		}, exitcode.Ok)

		ret := rt.Call(h.ProveReplicaUpdates3, params).(*miner.ProveReplicaUpdates3Return)
		rt.Verify()
		require.True(t, ret.ActivationResults.AllOk())
	})

	t.Run("aborts when notification success required", func(t *testing.T) {
		rt, h, params := setup(t)
		params.RequireNotificationSuccess = true

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectSend(market, builtin.MethodSectorContentChanged, notificationParams(params), big.Zero(), nil, exitcode.ErrIllegalState)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.ProveReplicaUpdates3, params)
		})
	})

	t.Run("aborts on rejected piece when notification success required", func(t *testing.T) {
		rt, h, params := setup(t)
		params.RequireNotificationSuccess = true

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectSend(market, builtin.MethodSectorContentChanged, notificationParams(params), big.Zero(), &miner.SectorContentChangedReturn{
			Sectors: []miner.SectorReturn{{Added: []miner.PieceReturn{{Accepted: false}}}},
		}, exitcode.Ok)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.ProveReplicaUpdates3, params)
		})
	})
}
