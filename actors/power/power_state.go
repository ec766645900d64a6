package power

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	stbuiltin "github.com/filecoin-project/go-state-types/builtin"
	"github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/snissn/builtin-actors/actors/util/adt"
)

type State struct {
	TotalRawBytePower     abi.StoragePower
	TotalQualityAdjPower  abi.StoragePower
	TotalPledgeCollateral abi.TokenAmount
	MinerCount            int64

	// Power committed by each miner.
	Claims cid.Cid // HAMT[address]Claim
}

// Claim is the power a single miner has committed to the network.
type Claim struct {
	RawBytePower    abi.StoragePower
	QualityAdjPower abi.StoragePower
}

func ConstructState(store adt.Store) (*State, error) {
	emptyClaims, err := adt.StoreEmptyMap(store, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}
	return &State{
		TotalRawBytePower:     abi.NewStoragePower(0),
		TotalQualityAdjPower:  abi.NewStoragePower(0),
		TotalPledgeCollateral: abi.NewTokenAmount(0),
		Claims:                emptyClaims,
	}, nil
}

func (st *State) GetClaim(store adt.Store, miner address.Address) (*Claim, bool, error) {
	claims, err := adt.AsMap(store, st.Claims, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load claims: %w", err)
	}
	var claim Claim
	found, err := claims.Get(abi.AddrKey(miner), &claim)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get claim for %v: %w", miner, err)
	}
	if !found {
		return nil, false, nil
	}
	return &claim, true, nil
}

// AddToClaim applies power deltas for a miner and the network totals.
func (st *State) AddToClaim(store adt.Store, miner address.Address, rawDelta, qaDelta abi.StoragePower) error {
	claims, err := adt.AsMap(store, st.Claims, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load claims: %w", err)
	}

	claim := Claim{RawBytePower: big.Zero(), QualityAdjPower: big.Zero()}
	found, err := claims.Get(abi.AddrKey(miner), &claim)
	if err != nil {
		return xerrors.Errorf("failed to get claim for %v: %w", miner, err)
	}
	if !found {
		st.MinerCount++
	}

	claim.RawBytePower = big.Add(claim.RawBytePower, rawDelta)
	claim.QualityAdjPower = big.Add(claim.QualityAdjPower, qaDelta)
	if claim.RawBytePower.LessThan(big.Zero()) {
		return xerrors.Errorf("claim raw power %v would go negative for %v", claim.RawBytePower, miner)
	}
	if claim.QualityAdjPower.LessThan(big.Zero()) {
		return xerrors.Errorf("claim qa power %v would go negative for %v", claim.QualityAdjPower, miner)
	}

	st.TotalRawBytePower = big.Add(st.TotalRawBytePower, rawDelta)
	st.TotalQualityAdjPower = big.Add(st.TotalQualityAdjPower, qaDelta)

	if err := claims.Put(abi.AddrKey(miner), &claim); err != nil {
		return xerrors.Errorf("failed to put claim for %v: %w", miner, err)
	}
	st.Claims, err = claims.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush claims: %w", err)
	}
	return nil
}

func (st *State) AddPledgeTotal(amount abi.TokenAmount) error {
	total := big.Add(st.TotalPledgeCollateral, amount)
	if total.LessThan(big.Zero()) {
		return xerrors.Errorf("pledge total would go negative: %v", total)
	}
	st.TotalPledgeCollateral = total
	return nil
}
