package verifreg_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	stbuiltin "github.com/filecoin-project/go-state-types/builtin"
	datacap "github.com/filecoin-project/go-state-types/builtin/v9/datacap"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snissn/builtin-actors/actors/builtin"
	"github.com/snissn/builtin-actors/actors/runtime"
	"github.com/snissn/builtin-actors/actors/verifreg"
	"github.com/snissn/builtin-actors/support/mock"
	tutil "github.com/snissn/builtin-actors/support/testing"
)

var (
	rootKey   = tutil.NewIDAddr(101)
	provider1 = abi.ActorID(1000)
	provider2 = abi.ActorID(1001)
	client1   = abi.ActorID(3000)
)

func basicSetup(t *testing.T) (*mock.Runtime, *vrHarness) {
	rt := mock.NewBuilder(builtin.VerifiedRegistryActorAddr).Build(t)
	h := &vrHarness{t: t, rootKey: rootKey}
	h.constructAndVerify(rt)
	return rt, h
}

func TestConstruction(t *testing.T) {
	rt := mock.NewBuilder(builtin.VerifiedRegistryActorAddr).Build(t)
	h := &vrHarness{t: t, rootKey: rootKey}
	h.constructAndVerify(rt)

	var st verifreg.State
	rt.GetState(&st)
	assert.Equal(t, rootKey, st.RootKey)
	assert.Equal(t, verifreg.AllocationId(1), st.NextAllocationId)
}

func TestAddRemoveVerifier(t *testing.T) {
	t.Run("add and remove a verifier", func(t *testing.T) {
		rt, h := basicSetup(t)
		verifier := tutil.NewIDAddr(201)
		allowance := verifreg.DataCap(big.NewInt(1 << 32))

		h.addVerifier(rt, verifier, allowance)
		cap, found := h.getVerifierCap(rt, verifier)
		require.True(t, found)
		assert.True(t, allowance.Equals(cap))

		rt.ExpectValidateCallerAddr(rootKey)
		rt.SetCaller(rootKey, builtin.AccountActorCodeID)
		rt.Call(h.RemoveVerifier, &verifreg.RemoveVerifierParams{Verifier: verifier})
		rt.Verify()

		_, found = h.getVerifierCap(rt, verifier)
		assert.False(t, found)
	})

	t.Run("allowance below minimum allocation size is rejected", func(t *testing.T) {
		rt, h := basicSetup(t)
		verifier := tutil.NewIDAddr(201)
		rt.SetCaller(rootKey, builtin.AccountActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.AddVerifier, &verifreg.AddVerifierParams{Address: verifier, Allowance: big.NewInt(1 << 10)})
		})
		rt.Verify()
	})

	t.Run("only root may add a verifier", func(t *testing.T) {
		rt, h := basicSetup(t)
		verifier := tutil.NewIDAddr(201)
		rt.SetCaller(verifier, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(rootKey)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(h.AddVerifier, &verifreg.AddVerifierParams{Address: verifier, Allowance: big.NewInt(1 << 32)})
		})
		rt.Verify()
	})
}

func TestAddVerifiedClient(t *testing.T) {
	t.Run("mints datacap and reduces verifier allowance", func(t *testing.T) {
		rt, h := basicSetup(t)
		verifier := tutil.NewIDAddr(201)
		clientAddr := tutil.NewIDAddr(301)
		h.addVerifier(rt, verifier, big.NewInt(1<<32))

		allowance := big.NewInt(1 << 30)
		rt.SetCaller(verifier, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectSend(builtin.DatacapActorAddr, stbuiltin.MethodsDatacap.MintExported, &datacap.MintParams{
			To:        clientAddr,
			Amount:    verifreg.DataCapToTokens(allowance),
			Operators: []address.Address{builtin.VerifiedRegistryActorAddr},
		}, big.Zero(), nil, exitcode.Ok)
		rt.Call(h.AddVerifiedClient, &verifreg.AddVerifiedClientParams{Address: clientAddr, Allowance: allowance})
		rt.Verify()

		cap, found := h.getVerifierCap(rt, verifier)
		require.True(t, found)
		assert.True(t, big.Sub(big.NewInt(1<<32), allowance).Equals(cap))
	})

	t.Run("non-verifier cannot add client", func(t *testing.T) {
		rt, h := basicSetup(t)
		caller := tutil.NewIDAddr(202)
		rt.SetCaller(caller, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.AddVerifiedClient, &verifreg.AddVerifiedClientParams{Address: tutil.NewIDAddr(301), Allowance: big.NewInt(1 << 30)})
		})
		rt.Verify()
	})

	t.Run("allowance exceeding verifier cap is rejected", func(t *testing.T) {
		rt, h := basicSetup(t)
		verifier := tutil.NewIDAddr(201)
		h.addVerifier(rt, verifier, big.NewInt(1<<21))
		rt.SetCaller(verifier, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.AddVerifiedClient, &verifreg.AddVerifiedClientParams{Address: tutil.NewIDAddr(301), Allowance: big.NewInt(1 << 22)})
		})
		rt.Verify()
	})
}

func TestReceiverHook(t *testing.T) {
	t.Run("creates allocations from a datacap transfer", func(t *testing.T) {
		rt, h := basicSetup(t)
		reqs := verifreg.AllocationRequests{Allocations: []verifreg.AllocationRequest{
			h.allocationRequest(rt, provider1, 1<<20),
			h.allocationRequest(rt, provider2, 2<<20),
		}}
		rt.SetAddressActorType(tutil.NewIDAddr(uint64(provider1)), builtin.StorageMinerActorCodeID)
		rt.SetAddressActorType(tutil.NewIDAddr(uint64(provider2)), builtin.StorageMinerActorCodeID)

		ret := h.receiveTokens(rt, client1, verifreg.DataCapToTokens(big.NewInt(3<<20)), reqs)
		assert.Equal(t, []verifreg.AllocationId{1, 2}, ret.NewAllocations)
		assert.Equal(t, 2, ret.AllocationResults.Size())
		assert.True(t, ret.AllocationResults.AllOk())

		var st verifreg.State
		rt.GetState(&st)
		assert.Equal(t, verifreg.AllocationId(3), st.NextAllocationId)
		alloc, found, err := st.GetAllocation(rt.AdtStore(), client1, 1)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, provider1, alloc.Provider)
		assert.Equal(t, abi.PaddedPieceSize(1<<20), alloc.Size)
	})

	t.Run("rejects wrong token amount", func(t *testing.T) {
		rt, h := basicSetup(t)
		reqs := verifreg.AllocationRequests{Allocations: []verifreg.AllocationRequest{
			h.allocationRequest(rt, provider1, 1<<20),
		}}
		rt.SetAddressActorType(tutil.NewIDAddr(uint64(provider1)), builtin.StorageMinerActorCodeID)
		rt.SetCaller(builtin.DatacapActorAddr, builtin.DataCapActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.DatacapActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.UniversalReceiverHook, h.receiverParams(client1, verifreg.DataCapToTokens(big.NewInt(2<<20)), reqs))
		})
		rt.Verify()
	})

	t.Run("rejects allocation with non-miner provider", func(t *testing.T) {
		rt, h := basicSetup(t)
		reqs := verifreg.AllocationRequests{Allocations: []verifreg.AllocationRequest{
			h.allocationRequest(rt, provider1, 1<<20),
		}}
		rt.SetAddressActorType(tutil.NewIDAddr(uint64(provider1)), builtin.AccountActorCodeID)
		rt.SetCaller(builtin.DatacapActorAddr, builtin.DataCapActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.DatacapActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.UniversalReceiverHook, h.receiverParams(client1, verifreg.DataCapToTokens(big.NewInt(1<<20)), reqs))
		})
		rt.Verify()
	})

	t.Run("only the datacap actor may call the hook", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetCaller(tutil.NewIDAddr(501), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.DatacapActorAddr)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(h.UniversalReceiverHook, h.receiverParams(client1, big.Zero(), verifreg.AllocationRequests{}))
		})
		rt.Verify()
	})

	t.Run("extension request burns datacap", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(100)
		h.putClaim(rt, provider1, 1, h.claim(rt, provider1, client1, 1<<20, 50))

		policyMax := runtime.DefaultPolicy().MaximumVerifiedAllocationTerm
		reqs := verifreg.AllocationRequests{Extensions: []verifreg.ClaimExtensionRequest{
			{Provider: provider1, Claim: 1, TermMax: policyMax + 40},
		}}
		amount := verifreg.DataCapToTokens(big.NewInt(1 << 20))
		rt.SetCaller(builtin.DatacapActorAddr, builtin.DataCapActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.DatacapActorAddr)
		rt.ExpectSend(builtin.DatacapActorAddr, stbuiltin.MethodsDatacap.BurnExported,
			&datacap.BurnParams{Amount: amount}, big.Zero(), nil, exitcode.Ok)
		ret := rt.Call(h.UniversalReceiverHook, h.receiverParams(client1, amount, reqs)).(*verifreg.AllocationsResponse)
		rt.Verify()
		assert.True(t, ret.ExtensionResults.AllOk())

		claim, found := h.getClaim(rt, provider1, 1)
		require.True(t, found)
		assert.Equal(t, policyMax+40, claim.TermMax)
	})
}

func TestClaimAllocations(t *testing.T) {
	t.Run("claims two allocations in one sector", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(100)
		a1 := h.allocation(rt, client1, provider1, 1<<20)
		a2 := h.allocation(rt, client1, provider1, 2<<20)
		h.putAllocation(rt, 1, a1)
		h.putAllocation(rt, 2, a2)

		params := &verifreg.ClaimAllocationsParams{Sectors: []verifreg.SectorAllocationClaims{{
			Sector: 7,
			Expiry: rt.CurrEpoch() + a1.TermMin + 10,
			Claims: []verifreg.AllocationClaim{
				{Client: client1, AllocationId: 1, Data: a1.Data, Size: a1.Size},
				{Client: client1, AllocationId: 2, Data: a2.Data, Size: a2.Size},
			},
		}}}
		ret := h.claimAllocations(rt, provider1, params, big.NewInt(3<<20))
		require.True(t, ret.SectorResults.AllOk())
		require.Len(t, ret.SectorClaims, 1)
		assert.True(t, big.NewInt(3<<20).Equals(ret.SectorClaims[0].ClaimedSpace))

		// Allocations are gone, claims exist with the same ids.
		var st verifreg.State
		rt.GetState(&st)
		_, found, err := st.GetAllocation(rt.AdtStore(), client1, 1)
		require.NoError(t, err)
		assert.False(t, found)
		claim, found := h.getClaim(rt, provider1, 1)
		require.True(t, found)
		assert.Equal(t, abi.SectorNumber(7), claim.Sector)
		assert.Equal(t, rt.CurrEpoch(), claim.TermStart)
	})

	t.Run("failed sector group leaves other groups unharmed", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(100)
		a1 := h.allocation(rt, client1, provider1, 1<<20)
		a2 := h.allocation(rt, client1, provider2, 2<<20) // wrong provider for caller
		h.putAllocation(rt, 1, a1)
		h.putAllocation(rt, 2, a2)

		params := &verifreg.ClaimAllocationsParams{Sectors: []verifreg.SectorAllocationClaims{
			{
				Sector: 7,
				Expiry: rt.CurrEpoch() + a1.TermMin + 10,
				Claims: []verifreg.AllocationClaim{{Client: client1, AllocationId: 1, Data: a1.Data, Size: a1.Size}},
			},
			{
				Sector: 8,
				Expiry: rt.CurrEpoch() + a2.TermMin + 10,
				Claims: []verifreg.AllocationClaim{{Client: client1, AllocationId: 2, Data: a2.Data, Size: a2.Size}},
			},
		}}
		ret := h.claimAllocations(rt, provider1, params, big.NewInt(1<<20))
		assert.Equal(t, []exitcode.ExitCode{exitcode.Ok, exitcode.ErrForbidden}, ret.SectorResults.Codes())
		require.Len(t, ret.SectorClaims, 1)

		// The unclaimed allocation remains.
		var st verifreg.State
		rt.GetState(&st)
		_, found, err := st.GetAllocation(rt.AdtStore(), client1, 2)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("all or nothing aborts on any failure", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(100)
		a1 := h.allocation(rt, client1, provider1, 1<<20)
		h.putAllocation(rt, 1, a1)

		params := &verifreg.ClaimAllocationsParams{
			Sectors: []verifreg.SectorAllocationClaims{
				{
					Sector: 7,
					Expiry: rt.CurrEpoch() + a1.TermMin + 10,
					Claims: []verifreg.AllocationClaim{{Client: client1, AllocationId: 1, Data: a1.Data, Size: a1.Size}},
				},
				{
					Sector: 8,
					Expiry: rt.CurrEpoch() + a1.TermMin + 10,
					Claims: []verifreg.AllocationClaim{{Client: client1, AllocationId: 99, Data: a1.Data, Size: a1.Size}},
				},
			},
			AllOrNothing: true,
		}
		rt.SetCaller(tutil.NewIDAddr(uint64(provider1)), builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.ClaimAllocations, params)
		})
		rt.Verify()

		// Nothing was claimed.
		var st verifreg.State
		rt.GetState(&st)
		_, found, err := st.GetAllocation(rt.AdtStore(), client1, 1)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("duplicate allocation in one sector aborts the call", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(100)
		a1 := h.allocation(rt, client1, provider1, 1<<20)
		h.putAllocation(rt, 1, a1)

		params := &verifreg.ClaimAllocationsParams{Sectors: []verifreg.SectorAllocationClaims{{
			Sector: 7,
			Expiry: rt.CurrEpoch() + a1.TermMin + 10,
			Claims: []verifreg.AllocationClaim{
				{Client: client1, AllocationId: 1, Data: a1.Data, Size: a1.Size},
				{Client: client1, AllocationId: 1, Data: a1.Data, Size: a1.Size},
			},
		}}}
		rt.SetCaller(tutil.NewIDAddr(uint64(provider1)), builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.ClaimAllocations, params)
		})
		rt.Verify()
	})

	t.Run("expired allocation cannot be claimed", func(t *testing.T) {
		rt, h := basicSetup(t)
		a1 := h.allocation(rt, client1, provider1, 1<<20)
		h.putAllocation(rt, 1, a1)
		rt.SetEpoch(a1.Expiration + 1)

		params := &verifreg.ClaimAllocationsParams{Sectors: []verifreg.SectorAllocationClaims{{
			Sector: 7,
			Expiry: rt.CurrEpoch() + a1.TermMin + 10,
			Claims: []verifreg.AllocationClaim{{Client: client1, AllocationId: 1, Data: a1.Data, Size: a1.Size}},
		}}}
		ret := h.claimAllocations(rt, provider1, params, big.Zero())
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrForbidden}, ret.SectorResults.Codes())
	})

	t.Run("sector term outside allocation bounds is rejected", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(100)
		a1 := h.allocation(rt, client1, provider1, 1<<20)
		h.putAllocation(rt, 1, a1)

		params := &verifreg.ClaimAllocationsParams{Sectors: []verifreg.SectorAllocationClaims{{
			Sector: 7,
			Expiry: rt.CurrEpoch() + a1.TermMin - 1,
			Claims: []verifreg.AllocationClaim{{Client: client1, AllocationId: 1, Data: a1.Data, Size: a1.Size}},
		}}}
		ret := h.claimAllocations(rt, provider1, params, big.Zero())
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrForbidden}, ret.SectorResults.Codes())
	})
}

func TestExtendClaimTerms(t *testing.T) {
	policyMax := runtime.DefaultPolicy().MaximumVerifiedAllocationTerm

	t.Run("client extends a claim", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(100)
		h.putClaim(rt, provider1, 1, h.claim(rt, provider1, client1, 1<<20, 50))

		ret := h.extendClaimTerms(rt, client1, &verifreg.ExtendClaimTermsParams{Terms: []verifreg.ClaimTerm{
			{Provider: provider1, ClaimId: 1, TermMax: policyMax + 10},
		}})
		assert.True(t, ret.AllOk())

		claim, found := h.getClaim(rt, provider1, 1)
		require.True(t, found)
		assert.Equal(t, policyMax+10, claim.TermMax)
	})

	t.Run("only the client may extend", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(100)
		h.putClaim(rt, provider1, 1, h.claim(rt, provider1, client1, 1<<20, 50))

		ret := h.extendClaimTerms(rt, abi.ActorID(3333), &verifreg.ExtendClaimTermsParams{Terms: []verifreg.ClaimTerm{
			{Provider: provider1, ClaimId: 1, TermMax: policyMax + 10},
		}})
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrForbidden}, ret.Codes())
	})

	t.Run("shrinking or oversized terms are rejected per item", func(t *testing.T) {
		rt, h := basicSetup(t)
		rt.SetEpoch(100)
		c := h.claim(rt, provider1, client1, 1<<20, 50)
		h.putClaim(rt, provider1, 1, c)
		h.putClaim(rt, provider1, 2, c)

		ret := h.extendClaimTerms(rt, client1, &verifreg.ExtendClaimTermsParams{Terms: []verifreg.ClaimTerm{
			{Provider: provider1, ClaimId: 1, TermMax: c.TermMax - 1},
			{Provider: provider1, ClaimId: 2, TermMax: policyMax + (rt.CurrEpoch() - c.TermStart) + 1},
			{Provider: provider1, ClaimId: 3, TermMax: policyMax},
		}})
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrIllegalArgument, exitcode.ErrIllegalArgument, exitcode.ErrNotFound}, ret.Codes())
	})

	t.Run("an expired claim can still be extended", func(t *testing.T) {
		rt, h := basicSetup(t)
		c := h.claim(rt, provider1, client1, 1<<20, 50)
		h.putClaim(rt, provider1, 1, c)
		rt.SetEpoch(c.TermStart + c.TermMax + 100)

		ret := h.extendClaimTerms(rt, client1, &verifreg.ExtendClaimTermsParams{Terms: []verifreg.ClaimTerm{
			{Provider: provider1, ClaimId: 1, TermMax: rt.CurrEpoch() - c.TermStart + policyMax},
		}})
		assert.True(t, ret.AllOk())
	})
}

func TestRemoveExpiredAllocations(t *testing.T) {
	t.Run("removes expired and returns datacap", func(t *testing.T) {
		rt, h := basicSetup(t)
		a1 := h.allocation(rt, client1, provider1, 1<<20)
		a2 := h.allocation(rt, client1, provider1, 2<<20)
		h.putAllocation(rt, 1, a1)
		h.putAllocation(rt, 2, a2)
		rt.SetEpoch(a1.Expiration)

		rt.SetCaller(tutil.NewIDAddr(501), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectSend(builtin.DatacapActorAddr, stbuiltin.MethodsDatacap.TransferExported, &datacap.TransferParams{
			To:     tutil.NewIDAddr(uint64(client1)),
			Amount: verifreg.DataCapToTokens(big.NewInt(3 << 20)),
		}, big.Zero(), nil, exitcode.Ok)
		ret := rt.Call(h.RemoveExpiredAllocations, &verifreg.RemoveExpiredAllocationsParams{
			Client:        client1,
			AllocationIds: []verifreg.AllocationId{1, 2},
		}).(*verifreg.RemoveExpiredAllocationsReturn)
		rt.Verify()

		assert.Equal(t, []verifreg.AllocationId{1, 2}, ret.Considered)
		assert.True(t, ret.Results.AllOk())
		assert.True(t, big.NewInt(3<<20).Equals(ret.DataCapRecovered))

		var st verifreg.State
		rt.GetState(&st)
		ids, err := st.ListAllocationIds(rt.AdtStore(), client1)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("empty id list sweeps all of the client's allocations", func(t *testing.T) {
		rt, h := basicSetup(t)
		a1 := h.allocation(rt, client1, provider1, 1<<20)
		h.putAllocation(rt, 1, a1)
		rt.SetEpoch(a1.Expiration + 10)

		rt.SetCaller(tutil.NewIDAddr(501), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectSend(builtin.DatacapActorAddr, stbuiltin.MethodsDatacap.TransferExported, &datacap.TransferParams{
			To:     tutil.NewIDAddr(uint64(client1)),
			Amount: verifreg.DataCapToTokens(big.NewInt(1 << 20)),
		}, big.Zero(), nil, exitcode.Ok)
		ret := rt.Call(h.RemoveExpiredAllocations, &verifreg.RemoveExpiredAllocationsParams{Client: client1}).(*verifreg.RemoveExpiredAllocationsReturn)
		rt.Verify()
		assert.Equal(t, []verifreg.AllocationId{1}, ret.Considered)
		assert.True(t, ret.Results.AllOk())
	})

	t.Run("unexpired and missing ids fail individually", func(t *testing.T) {
		rt, h := basicSetup(t)
		a1 := h.allocation(rt, client1, provider1, 1<<20)
		h.putAllocation(rt, 1, a1)
		rt.SetEpoch(a1.Expiration - 1)

		rt.SetCaller(tutil.NewIDAddr(501), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.RemoveExpiredAllocations, &verifreg.RemoveExpiredAllocationsParams{
			Client:        client1,
			AllocationIds: []verifreg.AllocationId{1, 2},
		}).(*verifreg.RemoveExpiredAllocationsReturn)
		rt.Verify()
		assert.Equal(t, []exitcode.ExitCode{exitcode.ErrForbidden, exitcode.ErrNotFound}, ret.Results.Codes())
		assert.True(t, ret.DataCapRecovered.IsZero())
	})
}

func TestRemoveExpiredClaims(t *testing.T) {
	t.Run("removes only expired claims", func(t *testing.T) {
		rt, h := basicSetup(t)
		c1 := h.claim(rt, provider1, client1, 1<<20, 0)
		c2 := h.claim(rt, provider1, client1, 1<<20, 0)
		c2.TermMax = c2.TermMax * 2
		h.putClaim(rt, provider1, 1, c1)
		h.putClaim(rt, provider1, 2, c2)
		rt.SetEpoch(c1.TermStart + c1.TermMax)

		rt.SetCaller(tutil.NewIDAddr(501), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.RemoveExpiredClaims, &verifreg.RemoveExpiredClaimsParams{
			Provider: provider1,
			ClaimIds: []verifreg.ClaimId{1, 2},
		}).(*verifreg.RemoveExpiredClaimsReturn)
		rt.Verify()

		assert.Equal(t, []verifreg.ClaimId{1, 2}, ret.Considered)
		assert.Equal(t, []exitcode.ExitCode{exitcode.Ok, exitcode.ErrForbidden}, ret.Results.Codes())

		_, found := h.getClaim(rt, provider1, 1)
		assert.False(t, found)
		_, found = h.getClaim(rt, provider1, 2)
		assert.True(t, found)
	})
}

func TestGetClaims(t *testing.T) {
	rt, h := basicSetup(t)
	c1 := h.claim(rt, provider1, client1, 1<<20, 0)
	h.putClaim(rt, provider1, 1, c1)

	rt.SetCaller(tutil.NewIDAddr(501), builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.GetClaims, &verifreg.GetClaimsParams{
		Provider: provider1,
		ClaimIds: []verifreg.ClaimId{1, 2},
	}).(*verifreg.GetClaimsReturn)
	rt.Verify()

	assert.Equal(t, []exitcode.ExitCode{exitcode.Ok, exitcode.ErrNotFound}, ret.BatchInfo.Codes())
	require.Len(t, ret.Claims, 1)
	assert.Equal(t, c1.Size, ret.Claims[0].Size)
}

///// Harness /////

type vrHarness struct {
	verifreg.Actor
	t       *testing.T
	rootKey address.Address
}

func (h *vrHarness) constructAndVerify(rt *mock.Runtime) {
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	rt.SetCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
	ret := rt.Call(h.Constructor, &verifreg.ConstructorParams{RootKey: h.rootKey})
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *vrHarness) addVerifier(rt *mock.Runtime, verifier address.Address, allowance verifreg.DataCap) {
	rt.ExpectValidateCallerAddr(h.rootKey)
	rt.SetCaller(h.rootKey, builtin.AccountActorCodeID)
	rt.Call(h.AddVerifier, &verifreg.AddVerifierParams{Address: verifier, Allowance: allowance})
	rt.Verify()
}

func (h *vrHarness) getVerifierCap(rt *mock.Runtime, verifier address.Address) (verifreg.DataCap, bool) {
	var st verifreg.State
	rt.GetState(&st)
	cap, found, err := st.GetVerifier(rt.AdtStore(), verifier)
	require.NoError(h.t, err)
	if !found {
		return big.Zero(), false
	}
	return *cap, true
}

// allocation returns a valid allocation anchored at the current epoch.
func (h *vrHarness) allocation(rt *mock.Runtime, client, provider abi.ActorID, size uint64) verifreg.Allocation {
	policy := rt.Policy()
	return verifreg.Allocation{
		Client:     client,
		Provider:   provider,
		Data:       tutil.MakePieceCID(fmt.Sprintf("piece-%d-%d-%d", client, provider, size)),
		Size:       abi.PaddedPieceSize(size),
		TermMin:    policy.MinimumVerifiedAllocationTerm,
		TermMax:    policy.MaximumVerifiedAllocationTerm,
		Expiration: rt.CurrEpoch() + 100,
	}
}

func (h *vrHarness) allocationRequest(rt *mock.Runtime, provider abi.ActorID, size uint64) verifreg.AllocationRequest {
	a := h.allocation(rt, client1, provider, size)
	return verifreg.AllocationRequest{
		Provider:   a.Provider,
		Data:       a.Data,
		Size:       a.Size,
		TermMin:    a.TermMin,
		TermMax:    a.TermMax,
		Expiration: a.Expiration,
	}
}

func (h *vrHarness) claim(rt *mock.Runtime, provider, client abi.ActorID, size uint64, termStart abi.ChainEpoch) verifreg.Claim {
	policy := rt.Policy()
	return verifreg.Claim{
		Provider:  provider,
		Client:    client,
		Data:      tutil.MakePieceCID(fmt.Sprintf("piece-%d-%d-%d", client, provider, size)),
		Size:      abi.PaddedPieceSize(size),
		TermMin:   policy.MinimumVerifiedAllocationTerm,
		TermMax:   policy.MaximumVerifiedAllocationTerm,
		TermStart: termStart,
		Sector:    1,
	}
}

func (h *vrHarness) putAllocation(rt *mock.Runtime, id verifreg.AllocationId, alloc verifreg.Allocation) {
	var st verifreg.State
	rt.GetState(&st)
	require.NoError(h.t, st.InsertAllocations(rt.AdtStore(), alloc.Client, map[verifreg.AllocationId]verifreg.Allocation{id: alloc}))
	if id >= st.NextAllocationId {
		st.NextAllocationId = id + 1
	}
	rt.ReplaceState(&st)
}

func (h *vrHarness) putClaim(rt *mock.Runtime, provider abi.ActorID, id verifreg.ClaimId, claim verifreg.Claim) {
	var st verifreg.State
	rt.GetState(&st)
	require.NoError(h.t, st.PutClaim(rt.AdtStore(), provider, id, claim))
	rt.ReplaceState(&st)
}

func (h *vrHarness) getClaim(rt *mock.Runtime, provider abi.ActorID, id verifreg.ClaimId) (*verifreg.Claim, bool) {
	var st verifreg.State
	rt.GetState(&st)
	claim, found, err := st.GetClaim(rt.AdtStore(), provider, id)
	require.NoError(h.t, err)
	return claim, found
}

func (h *vrHarness) claimAllocations(rt *mock.Runtime, provider abi.ActorID, params *verifreg.ClaimAllocationsParams, expectBurn big.Int) *verifreg.ClaimAllocationsReturn {
	rt.SetCaller(tutil.NewIDAddr(uint64(provider)), builtin.StorageMinerActorCodeID)
	rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
	if expectBurn.GreaterThan(big.Zero()) {
		rt.ExpectSend(builtin.DatacapActorAddr, stbuiltin.MethodsDatacap.BurnExported,
			&datacap.BurnParams{Amount: verifreg.DataCapToTokens(expectBurn)}, big.Zero(), nil, exitcode.Ok)
	}
	ret := rt.Call(h.ClaimAllocations, params).(*verifreg.ClaimAllocationsReturn)
	rt.Verify()
	return ret
}

func (h *vrHarness) extendClaimTerms(rt *mock.Runtime, caller abi.ActorID, params *verifreg.ExtendClaimTermsParams) *verifreg.ExtendClaimTermsReturn {
	rt.SetCaller(tutil.NewIDAddr(uint64(caller)), builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.ExtendClaimTerms, params).(*verifreg.ExtendClaimTermsReturn)
	rt.Verify()
	return ret
}

func (h *vrHarness) receiverParams(client abi.ActorID, amount big.Int, reqs verifreg.AllocationRequests) *builtin.UniversalReceiverParams {
	var opData bytes.Buffer
	require.NoError(h.t, reqs.MarshalCBOR(&opData))
	tokens := builtin.FRC46TokenReceived{
		From:         client,
		To:           abi.ActorID(6),
		Operator:     client,
		Amount:       amount,
		OperatorData: opData.Bytes(),
	}
	var payload bytes.Buffer
	require.NoError(h.t, tokens.MarshalCBOR(&payload))
	return &builtin.UniversalReceiverParams{Type_: builtin.FRC46TokenType, Payload: payload.Bytes()}
}

func (h *vrHarness) receiveTokens(rt *mock.Runtime, client abi.ActorID, amount big.Int, reqs verifreg.AllocationRequests) *verifreg.AllocationsResponse {
	rt.SetCaller(builtin.DatacapActorAddr, builtin.DataCapActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.DatacapActorAddr)
	ret := rt.Call(h.UniversalReceiverHook, h.receiverParams(client, amount, reqs)).(*verifreg.AllocationsResponse)
	rt.Verify()
	return ret
}
