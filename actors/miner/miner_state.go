package miner

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	stbuiltin "github.com/filecoin-project/go-state-types/builtin"
	"github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/snissn/builtin-actors/actors/runtime"
	"github.com/snissn/builtin-actors/actors/util/adt"
)

// SectorsAmtBitwidth is the branching factor for the sectors AMT.
const SectorsAmtBitwidth = 5

const DeadlinePartitionsAmtBitwidth = 3
const DeadlineExpirationAmtBitwidth = 5

type State struct {
	// Information not related to sectors.
	Info cid.Cid

	// Sectors pre-committed but not yet proven, HAMT[SectorNumber]SectorPreCommitOnChainInfo.
	PreCommittedSectors cid.Cid

	// All sectors ever proven, AMT[SectorNumber]SectorOnChainInfo.
	Sectors cid.Cid

	// The first epoch of this miner's current proving period.
	ProvingPeriodStart abi.ChainEpoch

	// Sectors grouped by the deadline at which they must be proven,
	// AMT[DeadlineIndex]Deadline.
	Deadlines cid.Cid
}

type MinerInfo struct {
	Owner  address.Address
	Worker address.Address

	ControlAddresses []address.Address

	WindowPoStProofType abi.RegisteredPoStProof
	SectorSize          abi.SectorSize
}

type SectorPreCommitInfo struct {
	SealProof    abi.RegisteredSealProof
	SectorNumber abi.SectorNumber
	SealedCID    cid.Cid
	SealRandEpoch abi.ChainEpoch
	Expiration   abi.ChainEpoch
	// Commitment to the unsealed data, if known at pre-commitment.
	UnsealedCid *cid.Cid
}

type SectorPreCommitOnChainInfo struct {
	Info           SectorPreCommitInfo
	PreCommitEpoch abi.ChainEpoch
}

type SectorOnChainInfo struct {
	SectorNumber abi.SectorNumber
	SealProof    abi.RegisteredSealProof
	SealedCID    cid.Cid
	Activation   abi.ChainEpoch
	Expiration   abi.ChainEpoch
	// Integral of active deals (bytes x epochs) over the sector's remaining
	// lifetime at activation or last update.
	DealWeight         abi.DealWeight
	VerifiedDealWeight abi.DealWeight
	// Epoch at which the sector's power was last recalculated.
	PowerBaseEpoch abi.ChainEpoch
	// Fee payable per day for the sector's quality-adjusted size.
	DailyFee abi.TokenAmount
}

// Deadline holds the sectors due at a single index in the proving calendar.
type Deadline struct {
	// Partitions in this deadline, AMT[PartitionNumber]Partition.
	Partitions cid.Cid
	// Number of sectors assigned to this deadline.
	LiveSectors uint64
	// Sum of the daily fees of all sectors in this deadline.
	DailyFee abi.TokenAmount
}

type Partition struct {
	// Sector numbers in this partition.
	Sectors bitfield.BitField
	// Sectors queued by expiration epoch, AMT[ChainEpoch]ExpirationSet.
	// Keys are quantized up to the deadline's last epoch.
	ExpirationsEpochs cid.Cid
}

// ExpirationSet records sectors expiring at one quantized epoch, and the
// daily fee that stops accruing when they do.
type ExpirationSet struct {
	OnTimeSectors bitfield.BitField
	FeeDeduction  abi.TokenAmount
}

func ConstructState(store adt.Store, info cid.Cid, periodStart abi.ChainEpoch, policy *runtime.Policy) (*State, error) {
	emptyPrecommitMapCid, err := adt.StoreEmptyMap(store, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to construct empty precommit map: %w", err)
	}
	emptySectorsArrayCid, err := adt.StoreEmptyArray(store, SectorsAmtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to construct empty sectors array: %w", err)
	}

	deadlines, err := adt.MakeEmptyArray(store, DeadlinePartitionsAmtBitwidth)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < policy.WPoStPeriodDeadlines; i++ {
		dl, err := ConstructDeadline(store)
		if err != nil {
			return nil, xerrors.Errorf("failed to construct deadline %d: %w", i, err)
		}
		if err := deadlines.Set(i, dl); err != nil {
			return nil, err
		}
	}
	deadlinesCid, err := deadlines.Root()
	if err != nil {
		return nil, err
	}

	return &State{
		Info:                info,
		PreCommittedSectors: emptyPrecommitMapCid,
		Sectors:             emptySectorsArrayCid,
		ProvingPeriodStart:  periodStart,
		Deadlines:           deadlinesCid,
	}, nil
}

func ConstructDeadline(store adt.Store) (*Deadline, error) {
	emptyPartitionsCid, err := adt.StoreEmptyArray(store, DeadlinePartitionsAmtBitwidth)
	if err != nil {
		return nil, err
	}
	return &Deadline{
		Partitions:  emptyPartitionsCid,
		LiveSectors: 0,
		DailyFee:    big.Zero(),
	}, nil
}

func ConstructPartition(store adt.Store) (*Partition, error) {
	emptyExpirationsCid, err := adt.StoreEmptyArray(store, DeadlineExpirationAmtBitwidth)
	if err != nil {
		return nil, err
	}
	return &Partition{
		Sectors:           bitfield.New(),
		ExpirationsEpochs: emptyExpirationsCid,
	}, nil
}

func (st *State) GetInfo(store adt.Store) (*MinerInfo, error) {
	var info MinerInfo
	if err := store.Get(store.Context(), st.Info, &info); err != nil {
		return nil, xerrors.Errorf("failed to get miner info: %w", err)
	}
	return &info, nil
}

func (st *State) PutPrecommittedSector(store adt.Store, info *SectorPreCommitOnChainInfo) error {
	precommitted, err := adt.AsMap(store, st.PreCommittedSectors, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return err
	}
	if err := precommitted.Put(abi.UIntKey(uint64(info.Info.SectorNumber)), info); err != nil {
		return xerrors.Errorf("failed to store precommitment for %v: %w", info, err)
	}
	st.PreCommittedSectors, err = precommitted.Root()
	return err
}

func (st *State) GetPrecommittedSector(store adt.Store, sectorNo abi.SectorNumber) (*SectorPreCommitOnChainInfo, bool, error) {
	precommitted, err := adt.AsMap(store, st.PreCommittedSectors, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, err
	}
	var info SectorPreCommitOnChainInfo
	found, err := precommitted.Get(abi.UIntKey(uint64(sectorNo)), &info)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load precommitment for %v: %w", sectorNo, err)
	}
	return &info, found, nil
}

func (st *State) DeletePrecommittedSectors(store adt.Store, sectorNos ...abi.SectorNumber) error {
	precommitted, err := adt.AsMap(store, st.PreCommittedSectors, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return err
	}
	for _, sectorNo := range sectorNos {
		if err := precommitted.Delete(abi.UIntKey(uint64(sectorNo))); err != nil {
			return xerrors.Errorf("failed to delete precommitment for %v: %w", sectorNo, err)
		}
	}
	st.PreCommittedSectors, err = precommitted.Root()
	return err
}

func (st *State) GetSector(store adt.Store, sectorNo abi.SectorNumber) (*SectorOnChainInfo, bool, error) {
	sectors, err := adt.AsArray(store, st.Sectors, SectorsAmtBitwidth)
	if err != nil {
		return nil, false, err
	}
	var info SectorOnChainInfo
	found, err := sectors.Get(uint64(sectorNo), &info)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get sector %v: %w", sectorNo, err)
	}
	return &info, found, nil
}

func (st *State) PutSectors(store adt.Store, newSectors ...*SectorOnChainInfo) error {
	sectors, err := adt.AsArray(store, st.Sectors, SectorsAmtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load sectors: %w", err)
	}
	for _, sector := range newSectors {
		if err := sectors.Set(uint64(sector.SectorNumber), sector); err != nil {
			return xerrors.Errorf("failed to put sector %v: %w", sector, err)
		}
	}
	st.Sectors, err = sectors.Root()
	return err
}

func (st *State) GetDeadline(store adt.Store, dlIdx uint64) (*Deadline, error) {
	deadlines, err := adt.AsArray(store, st.Deadlines, DeadlinePartitionsAmtBitwidth)
	if err != nil {
		return nil, err
	}
	var dl Deadline
	found, err := deadlines.Get(dlIdx, &dl)
	if err != nil {
		return nil, xerrors.Errorf("failed to load deadline %d: %w", dlIdx, err)
	}
	if !found {
		return nil, xerrors.Errorf("no deadline %d", dlIdx)
	}
	return &dl, nil
}

func (st *State) PutDeadline(store adt.Store, dlIdx uint64, dl *Deadline) error {
	deadlines, err := adt.AsArray(store, st.Deadlines, DeadlinePartitionsAmtBitwidth)
	if err != nil {
		return err
	}
	if err := deadlines.Set(dlIdx, dl); err != nil {
		return xerrors.Errorf("failed to put deadline %d: %w", dlIdx, err)
	}
	st.Deadlines, err = deadlines.Root()
	return err
}

// QuantSpecForDeadline returns the quantization spec aligning expiration
// epochs with the last epoch of the deadline's challenge window.
func (st *State) QuantSpecForDeadline(policy *runtime.Policy, dlIdx uint64) QuantSpec {
	return NewQuantSpec(policy.WPoStProvingPeriod, st.ProvingPeriodStart+abi.ChainEpoch(dlIdx+1)*policy.WPoStChallengeWindow-1)
}

func (dl *Deadline) GetPartition(store adt.Store, partIdx uint64) (*Partition, bool, error) {
	partitions, err := adt.AsArray(store, dl.Partitions, DeadlinePartitionsAmtBitwidth)
	if err != nil {
		return nil, false, err
	}
	var partition Partition
	found, err := partitions.Get(partIdx, &partition)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load partition %d: %w", partIdx, err)
	}
	return &partition, found, nil
}

func (dl *Deadline) PutPartition(store adt.Store, partIdx uint64, partition *Partition) error {
	partitions, err := adt.AsArray(store, dl.Partitions, DeadlinePartitionsAmtBitwidth)
	if err != nil {
		return err
	}
	if err := partitions.Set(partIdx, partition); err != nil {
		return xerrors.Errorf("failed to put partition %d: %w", partIdx, err)
	}
	dl.Partitions, err = partitions.Root()
	return err
}

// AddSector appends a sector number to the partition and queues its
// expiration and fee deduction at the quantized expiration epoch.
func (p *Partition) AddSector(store adt.Store, sectorNo abi.SectorNumber, expiration abi.ChainEpoch, dailyFee abi.TokenAmount, quant QuantSpec) error {
	p.Sectors.Set(uint64(sectorNo))
	return p.mutateExpirationSet(store, expiration, quant, func(set *ExpirationSet) {
		set.OnTimeSectors.Set(uint64(sectorNo))
		set.FeeDeduction = big.Add(set.FeeDeduction, dailyFee)
	})
}

// RecordFeeUpdate adjusts the fee deduction queued at a sector's expiration
// bucket by delta.
func (p *Partition) RecordFeeUpdate(store adt.Store, expiration abi.ChainEpoch, feeDelta abi.TokenAmount, quant QuantSpec) error {
	return p.mutateExpirationSet(store, expiration, quant, func(set *ExpirationSet) {
		set.FeeDeduction = big.Add(set.FeeDeduction, feeDelta)
	})
}

func (p *Partition) mutateExpirationSet(store adt.Store, expiration abi.ChainEpoch, quant QuantSpec, f func(*ExpirationSet)) error {
	queue, err := adt.AsArray(store, p.ExpirationsEpochs, DeadlineExpirationAmtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load expiration queue: %w", err)
	}
	epoch := quant.QuantizeUp(expiration)
	var set ExpirationSet
	found, err := queue.Get(uint64(epoch), &set)
	if err != nil {
		return xerrors.Errorf("failed to load expiration set at %d: %w", epoch, err)
	}
	if !found {
		set = ExpirationSet{OnTimeSectors: bitfield.New(), FeeDeduction: big.Zero()}
	}
	f(&set)
	if err := queue.Set(uint64(epoch), &set); err != nil {
		return xerrors.Errorf("failed to store expiration set at %d: %w", epoch, err)
	}
	p.ExpirationsEpochs, err = queue.Root()
	return err
}

// ExpirationSetAt reads the expiration set bucketed at an epoch, if any.
func (p *Partition) ExpirationSetAt(store adt.Store, expiration abi.ChainEpoch, quant QuantSpec) (*ExpirationSet, bool, error) {
	queue, err := adt.AsArray(store, p.ExpirationsEpochs, DeadlineExpirationAmtBitwidth)
	if err != nil {
		return nil, false, err
	}
	var set ExpirationSet
	found, err := queue.Get(uint64(quant.QuantizeUp(expiration)), &set)
	if err != nil {
		return nil, false, err
	}
	return &set, found, nil
}
