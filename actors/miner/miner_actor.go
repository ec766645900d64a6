package miner

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	stbuiltin "github.com/filecoin-project/go-state-types/builtin"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/proof"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/snissn/builtin-actors/actors/builtin"
	"github.com/snissn/builtin-actors/actors/power"
	"github.com/snissn/builtin-actors/actors/runtime"
	"github.com/snissn/builtin-actors/actors/verifreg"
)

var log = logging.Logger("miner")

type Actor struct{}

func (a Actor) Constructor(rt runtime.Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	owner := resolveControlAddress(rt, params.Owner)
	worker := resolveControlAddress(rt, params.Worker)
	controls := make([]address.Address, 0, len(params.ControlAddresses))
	for _, ctrl := range params.ControlAddresses {
		controls = append(controls, resolveControlAddress(rt, ctrl))
	}

	sectorSize, err := params.WindowPoStProofType.SectorSize()
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "invalid window post proof type %d", params.WindowPoStProofType)

	info := MinerInfo{
		Owner:               owner,
		Worker:              worker,
		ControlAddresses:    controls,
		WindowPoStProofType: params.WindowPoStProofType,
		SectorSize:          sectorSize,
	}
	infoCid, err := rt.Store().Put(rt.Store().Context(), &info)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store miner info")

	st, err := ConstructState(rt.Store(), infoCid, rt.CurrEpoch(), rt.Policy())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")
	rt.StateCreate(st)
	return nil
}

// PreCommitSector registers a sector's sealed commitment ahead of proof.
func (a Actor) PreCommitSector(rt runtime.Runtime, params *PreCommitSectorParams) *abi.EmptyValue {
	if params.Expiration <= rt.CurrEpoch() {
		rt.Abortf(exitcode.ErrIllegalArgument, "sector expiration %v must be after now (%v)", params.Expiration, rt.CurrEpoch())
	}

	var st State
	rt.StateReadonly(&st)
	info, err := st.GetInfo(rt.Store())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load miner info")
	rt.ValidateImmediateCallerIs(controlAddresses(info)...)

	rt.StateTransaction(&st, func() {
		_, found, err := st.GetPrecommittedSector(rt.Store(), params.SectorNumber)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check precommit %v", params.SectorNumber)
		if found {
			rt.Abortf(exitcode.ErrIllegalArgument, "sector %v already precommitted", params.SectorNumber)
		}
		_, found, err = st.GetSector(rt.Store(), params.SectorNumber)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check sector %v", params.SectorNumber)
		if found {
			rt.Abortf(exitcode.ErrIllegalArgument, "sector %v already committed", params.SectorNumber)
		}

		err = st.PutPrecommittedSector(rt.Store(), &SectorPreCommitOnChainInfo{
			Info:           *params,
			PreCommitEpoch: rt.CurrEpoch(),
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store precommit %v", params.SectorNumber)
	})
	return nil
}

// ProveCommitSectors3 proves pre-committed sectors, activating their data:
// claiming verified allocations, notifying data consumers, and adding the
// sectors' power.
func (a Actor) ProveCommitSectors3(rt runtime.Runtime, params *ProveCommitSectors3Params) *ProveCommitSectors3Return {
	if len(params.SectorActivations) == 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "no sector activations")
	}
	if len(params.SectorProofs) != len(params.SectorActivations) {
		rt.Abortf(exitcode.ErrIllegalArgument, "mismatched proofs (%d) and activations (%d)",
			len(params.SectorProofs), len(params.SectorActivations))
	}
	requireDistinctSectorNumbers(rt, func(i int) abi.SectorNumber { return params.SectorActivations[i].SectorNumber }, len(params.SectorActivations))

	var st State
	rt.StateReadonly(&st)
	store := rt.Store()
	info, err := st.GetInfo(store)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load miner info")
	rt.ValidateImmediateCallerIs(controlAddresses(info)...)

	minerID, err := address.IDFromAddress(rt.Receiver())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "receiver must be ID address")

	// Validate pre-commitments and seal proofs. A failure drops the sector
	// from the batch unless activation success is required.
	results := builtin.NewBatchReturnGen(len(params.SectorActivations))
	precommits := make([]*SectorPreCommitOnChainInfo, 0, len(params.SectorActivations))
	valid := make([]int, 0, len(params.SectorActivations))
	for i, activation := range params.SectorActivations {
		precommit, found, err := st.GetPrecommittedSector(store, activation.SectorNumber)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load precommit %v", activation.SectorNumber)
		if !found {
			if params.RequireActivationSuccess {
				rt.Abortf(exitcode.ErrNotFound, "no precommit for sector %v", activation.SectorNumber)
			}
			log.Infow("skipping sector with no precommitment", "sector", activation.SectorNumber)
			results.AddFail(exitcode.ErrNotFound)
			continue
		}

		if err := validateActivatedData(activation.Pieces, info.SectorSize, precommit.Info.Expiration, rt.CurrEpoch()); err != nil {
			if params.RequireActivationSuccess {
				rt.Abortf(exitcode.ErrIllegalArgument, "sector %v: %v", activation.SectorNumber, err)
			}
			log.Infow("skipping sector with invalid activation", "sector", activation.SectorNumber, "err", err)
			results.AddFail(exitcode.ErrIllegalArgument)
			continue
		}

		unsealedCID, err := rt.ComputeUnsealedSectorCID(precommit.Info.SealProof, pieceInfos(activation.Pieces))
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to compute unsealed CID for sector %v", activation.SectorNumber)

		err = rt.VerifySeal(proof.SealVerifyInfo{
			SealProof:   precommit.Info.SealProof,
			SectorID:    abi.SectorID{Miner: abi.ActorID(minerID), Number: activation.SectorNumber},
			SealedCID:   precommit.Info.SealedCID,
			UnsealedCID: unsealedCID,
			Proof:       params.SectorProofs[i],
		})
		if err != nil {
			if params.RequireActivationSuccess {
				rt.Abortf(exitcode.ErrIllegalArgument, "invalid proof for sector %v: %v", activation.SectorNumber, err)
			}
			log.Infow("skipping sector with invalid proof", "sector", activation.SectorNumber, "err", err)
			results.AddFail(exitcode.ErrIllegalArgument)
			continue
		}

		results.AddSuccess()
		precommits = append(precommits, precommit)
		valid = append(valid, i)
	}

	// Claim verified allocations for the surviving sectors.
	specs := make([]sectorDataSpec, 0, len(valid))
	for k, i := range valid {
		specs = append(specs, sectorDataSpec{
			sector: params.SectorActivations[i].SectorNumber,
			expiry: precommits[k].Info.Expiration,
			pieces: params.SectorActivations[i].Pieces,
		})
	}
	claimCodes, activations := activateSectorsData(rt, specs, params.RequireActivationSuccess)

	circSupply := rt.TotalFilCircSupply()
	rawDelta := big.Zero()
	qaDelta := big.Zero()
	var activated []activatedSector

	rt.StateTransaction(&st, func() {
		for k, i := range valid {
			if claimCodes[k] != exitcode.Ok {
				results.UpdateFail(i, claimCodes[k])
				continue
			}
			precommit := precommits[k]
			activation := params.SectorActivations[i]

			duration := precommit.Info.Expiration - rt.CurrEpoch()
			weights := dataWeights(activations[k], duration)
			dailyFee := sectorFee(rt.Policy(), circSupply, info.SectorSize, activations[k].verifiedSpace)

			sector := &SectorOnChainInfo{
				SectorNumber:       activation.SectorNumber,
				SealProof:          precommit.Info.SealProof,
				SealedCID:          precommit.Info.SealedCID,
				Activation:         rt.CurrEpoch(),
				Expiration:         precommit.Info.Expiration,
				DealWeight:         weights.dealWeight,
				VerifiedDealWeight: weights.verifiedDealWeight,
				PowerBaseEpoch:     rt.CurrEpoch(),
				DailyFee:           dailyFee,
			}
			err := st.PutSectors(store, sector)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store sector %v", sector.SectorNumber)
			err = st.DeletePrecommittedSectors(store, sector.SectorNumber)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete precommit %v", sector.SectorNumber)

			a.assignSectorToDeadline(rt, &st, sector)

			rawDelta = big.Add(rawDelta, big.NewIntUnsigned(uint64(info.SectorSize)))
			qaDelta = big.Add(qaDelta, QAPowerForWeight(info.SectorSize, duration, weights.dealWeight, weights.verifiedDealWeight))

			activated = append(activated, activatedSector{
				sector: activation.SectorNumber,
				expiry: precommit.Info.Expiration,
				pieces: activation.Pieces,
			})
		}
	})

	requestUpdatePower(rt, rawDelta, qaDelta)
	notifyDataConsumers(rt, activated, params.RequireNotificationSuccess)

	return &ProveCommitSectors3Return{ActivationResults: results.Gen()}
}

// ProveReplicaUpdates3 commits new data into existing, empty sectors:
// verifying the replica update proofs, claiming verified allocations,
// notifying data consumers, and adjusting the sectors' power and fees.
func (a Actor) ProveReplicaUpdates3(rt runtime.Runtime, params *ProveReplicaUpdates3Params) *ProveReplicaUpdates3Return {
	if len(params.SectorUpdates) == 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "no sector updates")
	}
	if len(params.SectorProofs) != len(params.SectorUpdates) {
		rt.Abortf(exitcode.ErrIllegalArgument, "mismatched proofs (%d) and updates (%d)",
			len(params.SectorProofs), len(params.SectorUpdates))
	}
	requireDistinctSectorNumbers(rt, func(i int) abi.SectorNumber { return params.SectorUpdates[i].Sector }, len(params.SectorUpdates))

	var st State
	rt.StateReadonly(&st)
	store := rt.Store()
	info, err := st.GetInfo(store)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load miner info")
	rt.ValidateImmediateCallerIs(controlAddresses(info)...)

	results := builtin.NewBatchReturnGen(len(params.SectorUpdates))
	sectors := make([]*SectorOnChainInfo, 0, len(params.SectorUpdates))
	valid := make([]int, 0, len(params.SectorUpdates))
	for i, update := range params.SectorUpdates {
		sector, code := a.validateUpdate(rt, &st, &update, params.SectorProofs[i], params.UpdateProofsType, info.SectorSize)
		if code != exitcode.Ok {
			if params.RequireActivationSuccess {
				rt.Abortf(code, "sector %v update failed", update.Sector)
			}
			results.AddFail(code)
			continue
		}
		results.AddSuccess()
		sectors = append(sectors, sector)
		valid = append(valid, i)
	}

	specs := make([]sectorDataSpec, 0, len(valid))
	for k, i := range valid {
		specs = append(specs, sectorDataSpec{
			sector: params.SectorUpdates[i].Sector,
			expiry: sectors[k].Expiration,
			pieces: params.SectorUpdates[i].Pieces,
		})
	}
	claimCodes, activations := activateSectorsData(rt, specs, params.RequireActivationSuccess)

	circSupply := rt.TotalFilCircSupply()
	qaDelta := big.Zero()
	var activated []activatedSector

	rt.StateTransaction(&st, func() {
		for k, i := range valid {
			if claimCodes[k] != exitcode.Ok {
				results.UpdateFail(i, claimCodes[k])
				continue
			}
			update := params.SectorUpdates[i]
			sector := sectors[k]

			duration := sector.Expiration - rt.CurrEpoch()
			weights := dataWeights(activations[k], duration)
			newFee := sectorFee(rt.Policy(), circSupply, info.SectorSize, activations[k].verifiedSpace)
			feeDelta := big.Sub(newFee, sector.DailyFee)

			oldQA := QAPowerForWeight(info.SectorSize, sector.Expiration-sector.PowerBaseEpoch, sector.DealWeight, sector.VerifiedDealWeight)
			newQA := QAPowerForWeight(info.SectorSize, duration, weights.dealWeight, weights.verifiedDealWeight)
			qaDelta = big.Add(qaDelta, big.Sub(newQA, oldQA))

			sector.SealedCID = update.NewSealedCID
			sector.DealWeight = weights.dealWeight
			sector.VerifiedDealWeight = weights.verifiedDealWeight
			sector.PowerBaseEpoch = rt.CurrEpoch()
			sector.DailyFee = newFee
			err := st.PutSectors(store, sector)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store sector %v", sector.SectorNumber)

			if !feeDelta.IsZero() {
				a.recordFeeDelta(rt, &st, update.Deadline, update.Partition, sector, feeDelta)
			}

			activated = append(activated, activatedSector{
				sector: update.Sector,
				expiry: sector.Expiration,
				pieces: update.Pieces,
			})
		}
	})

	// Replacing data leaves raw power unchanged.
	requestUpdatePower(rt, big.Zero(), qaDelta)
	notifyDataConsumers(rt, activated, params.RequireNotificationSuccess)

	return &ProveReplicaUpdates3Return{ActivationResults: results.Gen()}
}

// validateUpdate checks one replica update against state and verifies its
// proof, returning the sector to be updated or a failure code.
func (a Actor) validateUpdate(rt runtime.Runtime, st *State, update *SectorUpdateManifest, proofBytes []byte, proofType abi.RegisteredUpdateProof, sectorSize abi.SectorSize) (*SectorOnChainInfo, exitcode.ExitCode) {
	store := rt.Store()
	dl, err := st.GetDeadline(store, update.Deadline)
	if err != nil {
		log.Infow("skipping update with bad deadline", "sector", update.Sector, "deadline", update.Deadline, "err", err)
		return nil, exitcode.ErrNotFound
	}
	partition, found, err := dl.GetPartition(store, update.Partition)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load partition %d", update.Partition)
	if !found {
		log.Infow("skipping update with missing partition", "sector", update.Sector, "partition", update.Partition)
		return nil, exitcode.ErrNotFound
	}
	inPartition, err := partition.Sectors.IsSet(uint64(update.Sector))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check partition membership")
	if !inPartition {
		log.Infow("skipping update for sector not in partition", "sector", update.Sector)
		return nil, exitcode.ErrNotFound
	}

	sector, found, err := st.GetSector(store, update.Sector)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load sector %v", update.Sector)
	if !found {
		return nil, exitcode.ErrNotFound
	}
	if !sector.DealWeight.IsZero() || !sector.VerifiedDealWeight.IsZero() {
		log.Infow("cannot update sector with non-zero data", "sector", update.Sector)
		return nil, exitcode.ErrIllegalArgument
	}
	if err := validateActivatedData(update.Pieces, sectorSize, sector.Expiration, rt.CurrEpoch()); err != nil {
		log.Infow("skipping update with invalid data", "sector", update.Sector, "err", err)
		return nil, exitcode.ErrIllegalArgument
	}

	unsealedCID, err := rt.ComputeUnsealedSectorCID(sector.SealProof, pieceInfos(update.Pieces))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to compute unsealed CID for sector %v", update.Sector)

	err = rt.VerifyReplicaUpdate(proof.ReplicaUpdateInfo{
		UpdateProofType:      proofType,
		OldSealedSectorCID:   sector.SealedCID,
		NewSealedSectorCID:   update.NewSealedCID,
		NewUnsealedSectorCID: unsealedCID,
		Proof:                proofBytes,
	})
	if err != nil {
		log.Infow("skipping sector with invalid update proof", "sector", update.Sector, "err", err)
		return nil, exitcode.ErrIllegalArgument
	}
	return sector, exitcode.Ok
}

// assignSectorToDeadline places a newly proven sector in the proving
// calendar and records its expiration and fee.
// Assignment is static: deadline by sector number, first partition.
func (a Actor) assignSectorToDeadline(rt runtime.Runtime, st *State, sector *SectorOnChainInfo) {
	store := rt.Store()
	dlIdx := uint64(sector.SectorNumber) % rt.Policy().WPoStPeriodDeadlines
	dl, err := st.GetDeadline(store, dlIdx)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load deadline %d", dlIdx)

	partition, found, err := dl.GetPartition(store, 0)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load partition")
	if !found {
		partition, err = ConstructPartition(store)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct partition")
	}

	quant := st.QuantSpecForDeadline(rt.Policy(), dlIdx)
	err = partition.AddSector(store, sector.SectorNumber, sector.Expiration, sector.DailyFee, quant)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to add sector %v to partition", sector.SectorNumber)

	err = dl.PutPartition(store, 0, partition)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store partition")
	dl.LiveSectors++
	dl.DailyFee = big.Add(dl.DailyFee, sector.DailyFee)
	err = st.PutDeadline(store, dlIdx, dl)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store deadline %d", dlIdx)
}

// recordFeeDelta applies a change in a sector's daily fee to its deadline
// total and its expiration bucket.
func (a Actor) recordFeeDelta(rt runtime.Runtime, st *State, dlIdx, partIdx uint64, sector *SectorOnChainInfo, feeDelta abi.TokenAmount) {
	store := rt.Store()
	dl, err := st.GetDeadline(store, dlIdx)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load deadline %d", dlIdx)
	partition, found, err := dl.GetPartition(store, partIdx)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load partition %d", partIdx)
	builtin.RequireState(rt, found, "no partition %d in deadline %d", partIdx, dlIdx)

	quant := st.QuantSpecForDeadline(rt.Policy(), dlIdx)
	err = partition.RecordFeeUpdate(store, sector.Expiration, feeDelta, quant)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to record fee for sector %v", sector.SectorNumber)

	err = dl.PutPartition(store, partIdx, partition)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store partition")
	dl.DailyFee = big.Add(dl.DailyFee, feeDelta)
	err = st.PutDeadline(store, dlIdx, dl)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store deadline %d", dlIdx)
}

type sectorDataSpec struct {
	sector abi.SectorNumber
	expiry abi.ChainEpoch
	pieces []PieceActivationManifest
}

type dataActivation struct {
	unverifiedSpace big.Int
	verifiedSpace   big.Int
}

type activatedSector struct {
	sector abi.SectorNumber
	expiry abi.ChainEpoch
	pieces []PieceActivationManifest
}

type sectorWeights struct {
	dealWeight         abi.DealWeight
	verifiedDealWeight abi.DealWeight
}

// activateSectorsData claims the verified allocations referenced by each
// sector's pieces, atomically per sector. Returns a code per sector and,
// for successful sectors, the unverified and verified data size.
func activateSectorsData(rt runtime.Runtime, specs []sectorDataSpec, allOrNothing bool) ([]exitcode.ExitCode, []dataActivation) {
	codes := make([]exitcode.ExitCode, len(specs))
	activations := make([]dataActivation, len(specs))

	claimCount := 0
	claimSectors := make([]verifreg.SectorAllocationClaims, 0, len(specs))
	for i, spec := range specs {
		sectorClaims := verifreg.SectorAllocationClaims{Sector: spec.sector, Expiry: spec.expiry}
		verifiedSpace := big.Zero()
		unverifiedSpace := big.Zero()
		for _, piece := range spec.pieces {
			if piece.VerifiedAllocationKey != nil {
				sectorClaims.Claims = append(sectorClaims.Claims, verifreg.AllocationClaim{
					Client:       piece.VerifiedAllocationKey.Client,
					AllocationId: piece.VerifiedAllocationKey.ID,
					Data:         piece.CID,
					Size:         piece.Size,
				})
				verifiedSpace = big.Add(verifiedSpace, big.NewIntUnsigned(uint64(piece.Size)))
			} else {
				unverifiedSpace = big.Add(unverifiedSpace, big.NewIntUnsigned(uint64(piece.Size)))
			}
		}
		claimCount += len(sectorClaims.Claims)
		claimSectors = append(claimSectors, sectorClaims)
		codes[i] = exitcode.Ok
		activations[i] = dataActivation{unverifiedSpace: unverifiedSpace, verifiedSpace: verifiedSpace}
	}
	if claimCount == 0 {
		return codes, activations
	}

	var claimRet verifreg.ClaimAllocationsReturn
	code := rt.Send(
		builtin.VerifiedRegistryActorAddr,
		stbuiltin.MethodsVerifiedRegistry.ClaimAllocations,
		&verifreg.ClaimAllocationsParams{Sectors: claimSectors, AllOrNothing: allOrNothing},
		big.Zero(),
		&claimRet,
	)
	builtin.RequireSuccess(rt, code, "failed to claim allocations")
	builtin.RequireState(rt, claimRet.SectorResults.Size() == len(claimSectors), "claim return of unexpected length")

	for i, groupCode := range claimRet.SectorResults.Codes() {
		if groupCode != exitcode.Ok {
			log.Infow("sector data activation failed", "sector", specs[i].sector, "code", groupCode)
			codes[i] = groupCode
		}
	}
	return codes, activations
}

func dataWeights(activation dataActivation, duration abi.ChainEpoch) sectorWeights {
	return sectorWeights{
		dealWeight:         big.Mul(activation.unverifiedSpace, big.NewInt(int64(duration))),
		verifiedDealWeight: big.Mul(activation.verifiedSpace, big.NewInt(int64(duration))),
	}
}

// sectorFee computes the daily fee for a sector of the given size holding
// verifiedSpace bytes of verified data.
func sectorFee(p *runtime.Policy, circSupply abi.TokenAmount, size abi.SectorSize, verifiedSpace big.Int) abi.TokenAmount {
	qaBytes := big.Add(
		big.NewIntUnsigned(uint64(size)),
		big.Div(big.Mul(big.Sub(VerifiedDealWeightMultiplier, QualityBaseMultiplier), verifiedSpace), QualityBaseMultiplier),
	)
	return DailyProofFee(p, circSupply, qaBytes)
}

// notifyDataConsumers delivers piece-commitment notifications, grouped by
// receiving actor. Failed or rejected notifications are ignored unless
// success is required.
func notifyDataConsumers(rt runtime.Runtime, activated []activatedSector, requireSuccess bool) {
	type targetChanges struct {
		target  address.Address
		sectors []SectorChanges
	}
	var order []address.Address
	byTarget := make(map[address.Address]*targetChanges)

	for _, s := range activated {
		for _, piece := range s.pieces {
			for _, n := range piece.Notify {
				entry, ok := byTarget[n.Address]
				if !ok {
					entry = &targetChanges{target: n.Address}
					byTarget[n.Address] = entry
					order = append(order, n.Address)
				}
				if len(entry.sectors) == 0 || entry.sectors[len(entry.sectors)-1].Sector != s.sector {
					entry.sectors = append(entry.sectors, SectorChanges{
						Sector:                 s.sector,
						MinimumCommitmentEpoch: s.expiry,
					})
				}
				changes := &entry.sectors[len(entry.sectors)-1]
				changes.Added = append(changes.Added, PieceChange{
					Data:    piece.CID,
					Size:    piece.Size,
					Payload: n.Payload,
				})
			}
		}
	}

	for _, target := range order {
		entry := byTarget[target]
		var ret SectorContentChangedReturn
		code := rt.Send(target, builtin.MethodSectorContentChanged, &SectorContentChangedParams{Sectors: entry.sectors}, big.Zero(), &ret)
		if code != exitcode.Ok {
			if requireSuccess {
				rt.Abortf(exitcode.ErrIllegalState, "data consumer %v rejected notification: %v", target, code)
			}
			log.Warnw("data consumer notification failed", "target", target, "code", code)
			continue
		}
		if !requireSuccess {
			continue
		}
		builtin.RequireState(rt, len(ret.Sectors) == len(entry.sectors), "notification return of unexpected length from %v", target)
		for i, sectorRet := range ret.Sectors {
			builtin.RequireState(rt, len(sectorRet.Added) == len(entry.sectors[i].Added), "notification piece return of unexpected length from %v", target)
			for _, pieceRet := range sectorRet.Added {
				if !pieceRet.Accepted {
					rt.Abortf(exitcode.ErrIllegalState, "data consumer %v rejected piece for sector %v", target, entry.sectors[i].Sector)
				}
			}
		}
	}
}

// requestUpdatePower reports a change in this miner's committed power.
func requestUpdatePower(rt runtime.Runtime, rawDelta, qaDelta abi.StoragePower) {
	if rawDelta.IsZero() && qaDelta.IsZero() {
		return
	}
	code := rt.Send(
		builtin.StoragePowerActorAddr,
		stbuiltin.MethodsPower.UpdateClaimedPower,
		&power.UpdateClaimedPowerParams{RawByteDelta: rawDelta, QualityAdjustedDelta: qaDelta},
		big.Zero(),
		&builtin.Discard{},
	)
	builtin.RequireSuccess(rt, code, "failed to update power")
}

func pieceInfos(pieces []PieceActivationManifest) []abi.PieceInfo {
	infos := make([]abi.PieceInfo, 0, len(pieces))
	for _, piece := range pieces {
		infos = append(infos, abi.PieceInfo{Size: piece.Size, PieceCID: piece.CID})
	}
	return infos
}

func controlAddresses(info *MinerInfo) []address.Address {
	addrs := make([]address.Address, 0, len(info.ControlAddresses)+2)
	addrs = append(addrs, info.Owner, info.Worker)
	addrs = append(addrs, info.ControlAddresses...)
	return addrs
}

func resolveControlAddress(rt runtime.Runtime, raw address.Address) address.Address {
	resolved, ok := rt.ResolveAddress(raw)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve address %v", raw)
	}
	return resolved
}

// validateActivatedData checks that a manifest's pieces fit the sector and
// that the sector has commitment term left to carry them.
func validateActivatedData(pieces []PieceActivationManifest, size abi.SectorSize, expiration, curr abi.ChainEpoch) error {
	if expiration <= curr {
		return xerrors.Errorf("sector expiration %v is not after now (%v)", expiration, curr)
	}
	occupied := uint64(0)
	for _, piece := range pieces {
		occupied += uint64(piece.Size)
	}
	if occupied > uint64(size) {
		return xerrors.Errorf("occupied bytes %d exceed sector size %d", occupied, size)
	}
	return nil
}

func requireDistinctSectorNumbers(rt runtime.Runtime, sectorAt func(int) abi.SectorNumber, n int) {
	seen := make(map[abi.SectorNumber]struct{}, n)
	for i := 0; i < n; i++ {
		sno := sectorAt(i)
		if _, dup := seen[sno]; dup {
			rt.Abortf(exitcode.ErrIllegalArgument, "duplicate sector %v", sno)
		}
		seen[sno] = struct{}{}
	}
}
