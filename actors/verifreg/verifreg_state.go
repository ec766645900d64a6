package verifreg

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	stbuiltin "github.com/filecoin-project/go-state-types/builtin"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/snissn/builtin-actors/actors/util/adt"
)

type AllocationId uint64

type ClaimId uint64

// NoAllocationID is never a valid allocation identifier; ids are assigned
// starting from 1.
const NoAllocationID = AllocationId(0)

type DataCap = abi.StoragePower

type State struct {
	// Root key holder with authority to add and remove verifiers.
	RootKey address.Address

	// Verifiers authorized to allocate datacap to clients, with the datacap
	// they have remaining to grant.
	Verifiers cid.Cid // HAMT[address]DataCap

	// Allocations of datacap to pieces of data, pending claim by a provider.
	Allocations cid.Cid // HAMT[ActorID]HAMT[AllocationId]Allocation

	// The next allocation identifier to be assigned.
	NextAllocationId AllocationId

	// Claims created when providers commit allocated data into sectors.
	Claims cid.Cid // HAMT[ActorID]HAMT[ClaimId]Claim
}

// An Allocation is a promise of datacap to a piece of data, redeemable by a
// single provider until it expires.
type Allocation struct {
	// The client which allocated the datacap.
	Client abi.ActorID
	// The provider which may claim the allocation.
	Provider abi.ActorID
	// Identifier of the data to be committed.
	Data cid.Cid
	// The (padded) size of the data.
	Size abi.PaddedPieceSize
	// The minimum duration which the provider must commit to storing the data.
	TermMin abi.ChainEpoch
	// The maximum period for which the provider may earn quality-adjusted
	// power for the data.
	TermMax abi.ChainEpoch
	// The latest epoch by which a provider must claim this allocation.
	Expiration abi.ChainEpoch
}

// A Claim is the record of a provider having committed allocated data into a
// sector, earning verified power for its term.
type Claim struct {
	// The provider storing the data.
	Provider abi.ActorID
	// The client which allocated the datacap.
	Client abi.ActorID
	// Identifier of the committed data.
	Data cid.Cid
	// The (padded) size of the data.
	Size abi.PaddedPieceSize
	// The minimum period after term start for which the provider must store
	// the data.
	TermMin abi.ChainEpoch
	// The period after term start after which the claim is no longer valid.
	TermMax abi.ChainEpoch
	// The epoch at which the piece was committed.
	TermStart abi.ChainEpoch
	// The sector in which the data is committed.
	Sector abi.SectorNumber
}

func ConstructState(store adt.Store, rootKeyAddress address.Address) (*State, error) {
	emptyMapCid, err := adt.StoreEmptyMap(store, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}

	return &State{
		RootKey:          rootKeyAddress,
		Verifiers:        emptyMapCid,
		Allocations:      emptyMapCid,
		NextAllocationId: 1,
		Claims:           emptyMapCid,
	}, nil
}

// PutVerifier sets the datacap available to a verifier, adding the verifier
// if not present.
func (st *State) PutVerifier(store adt.Store, verifier address.Address, dcap DataCap) error {
	verifiers, err := adt.AsMap(store, st.Verifiers, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load verifiers: %w", err)
	}
	if err := verifiers.Put(abi.AddrKey(verifier), &dcap); err != nil {
		return xerrors.Errorf("failed to put verifier %v: %w", verifier, err)
	}
	st.Verifiers, err = verifiers.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush verifiers: %w", err)
	}
	return nil
}

func (st *State) GetVerifier(store adt.Store, verifier address.Address) (*DataCap, bool, error) {
	verifiers, err := adt.AsMap(store, st.Verifiers, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load verifiers: %w", err)
	}
	var dcap DataCap
	found, err := verifiers.Get(abi.AddrKey(verifier), &dcap)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get verifier %v: %w", verifier, err)
	}
	if !found {
		return nil, false, nil
	}
	return &dcap, true, nil
}

func (st *State) RemoveVerifier(store adt.Store, verifier address.Address) error {
	verifiers, err := adt.AsMap(store, st.Verifiers, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load verifiers: %w", err)
	}
	if err := verifiers.Delete(abi.AddrKey(verifier)); err != nil {
		return xerrors.Errorf("failed to delete verifier %v: %w", verifier, err)
	}
	st.Verifiers, err = verifiers.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush verifiers: %w", err)
	}
	return nil
}

// InsertAllocations adds new allocations for a client, failing if any id is
// already present.
func (st *State) InsertAllocations(store adt.Store, client abi.ActorID, allocs map[AllocationId]Allocation) error {
	if len(allocs) == 0 {
		return nil
	}
	mm, err := asMapMap(store, st.Allocations)
	if err != nil {
		return xerrors.Errorf("failed to load allocations: %w", err)
	}
	for id, alloc := range allocs {
		alloc := alloc
		if err := mm.PutIfAbsent(uint64(client), uint64(id), &alloc); err != nil {
			return xerrors.Errorf("failed to insert allocation %d: %w", id, err)
		}
	}
	st.Allocations, err = mm.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush allocations: %w", err)
	}
	return nil
}

func (st *State) GetAllocation(store adt.Store, client abi.ActorID, id AllocationId) (*Allocation, bool, error) {
	mm, err := asMapMap(store, st.Allocations)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load allocations: %w", err)
	}
	var alloc Allocation
	found, err := mm.Get(uint64(client), uint64(id), &alloc)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get allocation %d: %w", id, err)
	}
	if !found {
		return nil, false, nil
	}
	return &alloc, true, nil
}

// RemoveAllocation deletes an allocation, returning whether it was present.
func (st *State) RemoveAllocation(store adt.Store, client abi.ActorID, id AllocationId) (bool, error) {
	mm, err := asMapMap(store, st.Allocations)
	if err != nil {
		return false, xerrors.Errorf("failed to load allocations: %w", err)
	}
	removed, err := mm.Remove(uint64(client), uint64(id))
	if err != nil {
		return false, xerrors.Errorf("failed to remove allocation %d: %w", id, err)
	}
	if removed {
		st.Allocations, err = mm.Root()
		if err != nil {
			return false, xerrors.Errorf("failed to flush allocations: %w", err)
		}
	}
	return removed, nil
}

// ListAllocationIds lists the ids of all allocations for a client, in
// unspecified order.
func (st *State) ListAllocationIds(store adt.Store, client abi.ActorID) ([]AllocationId, error) {
	mm, err := asMapMap(store, st.Allocations)
	if err != nil {
		return nil, xerrors.Errorf("failed to load allocations: %w", err)
	}
	raw, err := mm.ListIds(uint64(client))
	if err != nil {
		return nil, xerrors.Errorf("failed to list allocations: %w", err)
	}
	ids := make([]AllocationId, len(raw))
	for i, r := range raw {
		ids[i] = AllocationId(r)
	}
	return ids, nil
}

// PutClaim sets a claim record, overwriting any existing claim with the same
// id.
func (st *State) PutClaim(store adt.Store, provider abi.ActorID, id ClaimId, claim Claim) error {
	mm, err := asMapMap(store, st.Claims)
	if err != nil {
		return xerrors.Errorf("failed to load claims: %w", err)
	}
	if err := mm.Put(uint64(provider), uint64(id), &claim); err != nil {
		return xerrors.Errorf("failed to put claim %d: %w", id, err)
	}
	st.Claims, err = mm.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush claims: %w", err)
	}
	return nil
}

func (st *State) GetClaim(store adt.Store, provider abi.ActorID, id ClaimId) (*Claim, bool, error) {
	mm, err := asMapMap(store, st.Claims)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load claims: %w", err)
	}
	var claim Claim
	found, err := mm.Get(uint64(provider), uint64(id), &claim)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get claim %d: %w", id, err)
	}
	if !found {
		return nil, false, nil
	}
	return &claim, true, nil
}

func (st *State) RemoveClaim(store adt.Store, provider abi.ActorID, id ClaimId) (bool, error) {
	mm, err := asMapMap(store, st.Claims)
	if err != nil {
		return false, xerrors.Errorf("failed to load claims: %w", err)
	}
	removed, err := mm.Remove(uint64(provider), uint64(id))
	if err != nil {
		return false, xerrors.Errorf("failed to remove claim %d: %w", id, err)
	}
	if removed {
		st.Claims, err = mm.Root()
		if err != nil {
			return false, xerrors.Errorf("failed to flush claims: %w", err)
		}
	}
	return removed, nil
}

func (st *State) ListClaimIds(store adt.Store, provider abi.ActorID) ([]ClaimId, error) {
	mm, err := asMapMap(store, st.Claims)
	if err != nil {
		return nil, xerrors.Errorf("failed to load claims: %w", err)
	}
	raw, err := mm.ListIds(uint64(provider))
	if err != nil {
		return nil, xerrors.Errorf("failed to list claims: %w", err)
	}
	ids := make([]ClaimId, len(raw))
	for i, r := range raw {
		ids[i] = ClaimId(r)
	}
	return ids, nil
}

// mapMap is a map of maps, both keyed by uint64, with inner roots stored as
// links in the outer map. Empty inner maps are pruned from the outer map.
type mapMap struct {
	store adt.Store
	outer *adt.Map
}

func asMapMap(store adt.Store, root cid.Cid) (*mapMap, error) {
	outer, err := adt.AsMap(store, root, stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return nil, err
	}
	return &mapMap{store: store, outer: outer}, nil
}

func (m *mapMap) Root() (cid.Cid, error) {
	return m.outer.Root()
}

func (m *mapMap) loadInner(outerKey uint64) (*adt.Map, bool, error) {
	var innerRoot cbg.CborCid
	found, err := m.outer.Get(abi.UIntKey(outerKey), &innerRoot)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get inner map root for %d: %w", outerKey, err)
	}
	if !found {
		return nil, false, nil
	}
	inner, err := adt.AsMap(m.store, cid.Cid(innerRoot), stbuiltin.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load inner map for %d: %w", outerKey, err)
	}
	return inner, true, nil
}

func (m *mapMap) flushInner(outerKey uint64, inner *adt.Map) error {
	innerRoot, err := inner.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush inner map for %d: %w", outerKey, err)
	}
	link := cbg.CborCid(innerRoot)
	if err := m.outer.Put(abi.UIntKey(outerKey), &link); err != nil {
		return xerrors.Errorf("failed to put inner map root for %d: %w", outerKey, err)
	}
	return nil
}

func (m *mapMap) Get(outerKey, innerKey uint64, out cbor.Unmarshaler) (bool, error) {
	inner, found, err := m.loadInner(outerKey)
	if err != nil || !found {
		return false, err
	}
	return inner.Get(abi.UIntKey(innerKey), out)
}

func (m *mapMap) Put(outerKey, innerKey uint64, value cbor.Marshaler) error {
	inner, found, err := m.loadInner(outerKey)
	if err != nil {
		return err
	}
	if !found {
		inner, err = adt.MakeEmptyMap(m.store, stbuiltin.DefaultHamtBitwidth)
		if err != nil {
			return xerrors.Errorf("failed to create inner map: %w", err)
		}
	}
	if err := inner.Put(abi.UIntKey(innerKey), value); err != nil {
		return xerrors.Errorf("failed to put %d in inner map: %w", innerKey, err)
	}
	return m.flushInner(outerKey, inner)
}

func (m *mapMap) PutIfAbsent(outerKey, innerKey uint64, value cbor.Marshaler) error {
	inner, found, err := m.loadInner(outerKey)
	if err != nil {
		return err
	}
	if !found {
		inner, err = adt.MakeEmptyMap(m.store, stbuiltin.DefaultHamtBitwidth)
		if err != nil {
			return xerrors.Errorf("failed to create inner map: %w", err)
		}
	} else {
		has, err := inner.Has(abi.UIntKey(innerKey))
		if err != nil {
			return xerrors.Errorf("failed to check inner map for %d: %w", innerKey, err)
		}
		if has {
			return xerrors.Errorf("key %d already present in map for %d", innerKey, outerKey)
		}
	}
	if err := inner.Put(abi.UIntKey(innerKey), value); err != nil {
		return xerrors.Errorf("failed to put %d in inner map: %w", innerKey, err)
	}
	return m.flushInner(outerKey, inner)
}

func (m *mapMap) Remove(outerKey, innerKey uint64) (bool, error) {
	inner, found, err := m.loadInner(outerKey)
	if err != nil || !found {
		return false, err
	}
	removed, err := inner.TryDelete(abi.UIntKey(innerKey))
	if err != nil {
		return false, xerrors.Errorf("failed to delete %d from inner map: %w", innerKey, err)
	}
	if !removed {
		return false, nil
	}
	keys, err := inner.CollectKeys()
	if err != nil {
		return false, xerrors.Errorf("failed to inspect inner map: %w", err)
	}
	if len(keys) == 0 {
		if err := m.outer.Delete(abi.UIntKey(outerKey)); err != nil {
			return false, xerrors.Errorf("failed to prune empty inner map for %d: %w", outerKey, err)
		}
		return true, nil
	}
	return true, m.flushInner(outerKey, inner)
}

func (m *mapMap) ListIds(outerKey uint64) ([]uint64, error) {
	inner, found, err := m.loadInner(outerKey)
	if err != nil || !found {
		return nil, err
	}
	keys, err := inner.CollectKeys()
	if err != nil {
		return nil, xerrors.Errorf("failed to collect inner keys: %w", err)
	}
	ids := make([]uint64, len(keys))
	for i, k := range keys {
		id, err := abi.ParseUIntKey(k)
		if err != nil {
			return nil, xerrors.Errorf("failed to parse inner key: %w", err)
		}
		ids[i] = id
	}
	return ids, nil
}
