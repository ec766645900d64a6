package verifreg

import (
	"bytes"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	stbuiltin "github.com/filecoin-project/go-state-types/builtin"
	datacap "github.com/filecoin-project/go-state-types/builtin/v9/datacap"
	"github.com/filecoin-project/go-state-types/exitcode"
	logging "github.com/ipfs/go-log/v2"

	"github.com/snissn/builtin-actors/actors/builtin"
	"github.com/snissn/builtin-actors/actors/runtime"
)

var log = logging.Logger("verifreg")

type Actor struct{}

func (a Actor) Constructor(rt runtime.Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	idAddr, ok := rt.ResolveAddress(params.RootKey)
	builtin.RequireParam(rt, ok, "root should be an ID address")

	st, err := ConstructState(rt.Store(), idAddr)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")
	rt.StateCreate(st)
	return nil
}

func (a Actor) AddVerifier(rt runtime.Runtime, params *AddVerifierParams) *abi.EmptyValue {
	builtin.RequireParam(rt, params.Allowance.GreaterThanEqual(rt.Policy().MinimumVerifiedAllocationSize),
		"allowance %v below minimum allocation size %v", params.Allowance, rt.Policy().MinimumVerifiedAllocationSize)

	verifier, ok := rt.ResolveAddress(params.Address)
	builtin.RequireParam(rt, ok, "failed to resolve verifier address %v", params.Address)

	var st State
	rt.StateReadonly(&st)
	rt.ValidateImmediateCallerIs(st.RootKey)
	builtin.RequireParam(rt, verifier != st.RootKey, "root cannot be a verifier")

	rt.StateTransaction(&st, func() {
		err := st.PutVerifier(rt.Store(), verifier, params.Allowance)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to add verifier")
	})
	return nil
}

func (a Actor) RemoveVerifier(rt runtime.Runtime, params *RemoveVerifierParams) *abi.EmptyValue {
	verifier, ok := rt.ResolveAddress(params.Verifier)
	builtin.RequireParam(rt, ok, "failed to resolve verifier address %v", params.Verifier)

	var st State
	rt.StateTransaction(&st, func() {
		rt.ValidateImmediateCallerIs(st.RootKey)

		_, found, err := st.GetVerifier(rt.Store(), verifier)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load verifier %v", verifier)
		builtin.RequireParam(rt, found, "verifier %v not found", verifier)

		err = st.RemoveVerifier(rt.Store(), verifier)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to remove verifier %v", verifier)
	})
	return nil
}

// AddVerifiedClient grants datacap to a client by minting tokens against the
// calling verifier's allowance.
func (a Actor) AddVerifiedClient(rt runtime.Runtime, params *AddVerifiedClientParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	builtin.RequireParam(rt, params.Allowance.GreaterThanEqual(rt.Policy().MinimumVerifiedAllocationSize),
		"allowance %v below minimum allocation size %v", params.Allowance, rt.Policy().MinimumVerifiedAllocationSize)

	client, ok := rt.ResolveAddress(params.Address)
	builtin.RequireParam(rt, ok, "failed to resolve client address %v", params.Address)

	verifier := rt.Caller()

	var st State
	rt.StateTransaction(&st, func() {
		builtin.RequireParam(rt, client != st.RootKey, "root cannot be a client")
		builtin.RequireParam(rt, client != verifier, "verifier cannot be a client")

		verifierCap, found, err := st.GetVerifier(rt.Store(), verifier)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load verifier %v", verifier)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "caller %v is not a verifier", verifier)
		}
		if verifierCap.LessThan(params.Allowance) {
			rt.Abortf(exitcode.ErrIllegalArgument, "allowance %v exceeds verifier's remaining datacap %v", params.Allowance, verifierCap)
		}

		newCap := big.Sub(*verifierCap, params.Allowance)
		err = st.PutVerifier(rt.Store(), verifier, newCap)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update verifier %v", verifier)
	})

	mintParams := datacap.MintParams{
		To:        client,
		Amount:    DataCapToTokens(params.Allowance),
		Operators: []address.Address{builtin.VerifiedRegistryActorAddr},
	}
	code := rt.Send(builtin.DatacapActorAddr, stbuiltin.MethodsDatacap.MintExported, &mintParams, big.Zero(), &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to mint datacap to client %v", client)
	return nil
}

// ClaimAllocations converts allocations into claims on behalf of the calling
// provider. Claims in each sector group succeed or fail together; with
// AllOrNothing set any failure aborts the whole call.
func (a Actor) ClaimAllocations(rt runtime.Runtime, params *ClaimAllocationsParams) *ClaimAllocationsReturn {
	rt.ValidateImmediateCallerType(builtin.StorageMinerActorCodeID)
	builtin.RequireParam(rt, len(params.Sectors) > 0, "claim allocations called with no claims")

	providerID, err := address.IDFromAddress(rt.Caller())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "caller %v is not an ID address", rt.Caller())
	provider := abi.ActorID(providerID)

	currEpoch := rt.CurrEpoch()
	gen := builtin.NewBatchReturnGen(len(params.Sectors))
	sectorClaims := make([]SectorClaimSummary, 0, len(params.Sectors))
	totalClaimed := big.Zero()

	var st State
	rt.StateTransaction(&st, func() {
		for _, group := range params.Sectors {
			groupCode, claimedSpace := claimSectorGroup(rt, &st, provider, currEpoch, group)
			if groupCode.IsSuccess() {
				gen.AddSuccess()
				sectorClaims = append(sectorClaims, SectorClaimSummary{ClaimedSpace: claimedSpace})
				totalClaimed = big.Add(totalClaimed, claimedSpace)
			} else {
				if params.AllOrNothing {
					rt.Abortf(exitcode.ErrIllegalArgument, "all-or-nothing claim failed for sector %d: %v", group.Sector, groupCode)
				}
				gen.AddFail(groupCode)
			}
		}
	})

	// Burn the datacap tokens for the newly committed data.
	if totalClaimed.GreaterThan(big.Zero()) {
		burnParams := datacap.BurnParams{Amount: DataCapToTokens(totalClaimed)}
		code := rt.Send(builtin.DatacapActorAddr, stbuiltin.MethodsDatacap.BurnExported, &burnParams, big.Zero(), &builtin.Discard{})
		builtin.RequireSuccess(rt, code, "failed to burn claimed datacap")
	}

	return &ClaimAllocationsReturn{
		SectorResults: gen.Gen(),
		SectorClaims:  sectorClaims,
	}
}

// claimSectorGroup validates every claim in a sector group against state and,
// only if all are valid, applies them. Returns the group's exit code and the
// space claimed.
func claimSectorGroup(rt runtime.Runtime, st *State, provider abi.ActorID, currEpoch abi.ChainEpoch, group SectorAllocationClaims) (exitcode.ExitCode, big.Int) {
	seen := make(map[AllocationId]struct{}, len(group.Claims))
	allocs := make([]*Allocation, 0, len(group.Claims))

	for _, claim := range group.Claims {
		if _, dup := seen[claim.AllocationId]; dup {
			rt.Abortf(exitcode.ErrIllegalArgument, "duplicate allocation %d in sector %d", claim.AllocationId, group.Sector)
		}
		seen[claim.AllocationId] = struct{}{}

		alloc, found, err := st.GetAllocation(rt.Store(), claim.Client, claim.AllocationId)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load allocation %d", claim.AllocationId)
		if !found {
			log.Infow("allocation not found", "client", claim.Client, "allocation", claim.AllocationId)
			return exitcode.ErrNotFound, big.Zero()
		}
		if code := validateClaim(alloc, provider, currEpoch, group.Expiry, claim); !code.IsSuccess() {
			return code, big.Zero()
		}
		allocs = append(allocs, alloc)
	}

	claimedSpace := big.Zero()
	for i, claim := range group.Claims {
		alloc := allocs[i]
		removed, err := st.RemoveAllocation(rt.Store(), claim.Client, claim.AllocationId)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to remove allocation %d", claim.AllocationId)
		builtin.RequireState(rt, removed, "allocation %d vanished during claim", claim.AllocationId)

		err = st.PutClaim(rt.Store(), provider, ClaimId(claim.AllocationId), Claim{
			Provider:  provider,
			Client:    alloc.Client,
			Data:      alloc.Data,
			Size:      alloc.Size,
			TermMin:   alloc.TermMin,
			TermMax:   alloc.TermMax,
			TermStart: currEpoch,
			Sector:    group.Sector,
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to write claim %d", claim.AllocationId)
		claimedSpace = big.Add(claimedSpace, big.NewInt(int64(alloc.Size)))
	}
	return exitcode.Ok, claimedSpace
}

func validateClaim(alloc *Allocation, provider abi.ActorID, currEpoch, sectorExpiry abi.ChainEpoch, claim AllocationClaim) exitcode.ExitCode {
	if alloc.Provider != provider {
		log.Infow("allocation provider mismatch", "allocation", claim.AllocationId, "expected", alloc.Provider, "actual", provider)
		return exitcode.ErrForbidden
	}
	if alloc.Data != claim.Data || alloc.Size != claim.Size {
		log.Infow("allocation data mismatch", "allocation", claim.AllocationId)
		return exitcode.ErrForbidden
	}
	if currEpoch > alloc.Expiration {
		log.Infow("allocation expired", "allocation", claim.AllocationId, "expiration", alloc.Expiration)
		return exitcode.ErrForbidden
	}
	term := sectorExpiry - currEpoch
	if term < alloc.TermMin || term > alloc.TermMax {
		log.Infow("sector lifetime outside allocation term", "allocation", claim.AllocationId, "term", term)
		return exitcode.ErrForbidden
	}
	return exitcode.Ok
}

// ExtendClaimTerms increases the maximum term of existing claims. Only the
// client which originally allocated the datacap may extend, and only up to
// the policy maximum measured from the current epoch.
func (a Actor) ExtendClaimTerms(rt runtime.Runtime, params *ExtendClaimTermsParams) *ExtendClaimTermsReturn {
	rt.ValidateImmediateCallerAcceptAny()

	callerID, err := address.IDFromAddress(rt.Caller())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "caller %v is not an ID address", rt.Caller())
	caller := abi.ActorID(callerID)

	currEpoch := rt.CurrEpoch()
	policyMax := rt.Policy().MaximumVerifiedAllocationTerm
	gen := builtin.NewBatchReturnGen(len(params.Terms))

	var st State
	rt.StateTransaction(&st, func() {
		for _, term := range params.Terms {
			claim, found, err := st.GetClaim(rt.Store(), term.Provider, term.ClaimId)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load claim %d", term.ClaimId)
			if !found {
				gen.AddFail(exitcode.ErrNotFound)
				continue
			}
			if claim.Client != caller {
				log.Infow("claim not owned by caller", "claim", term.ClaimId, "client", claim.Client, "caller", caller)
				gen.AddFail(exitcode.ErrForbidden)
				continue
			}
			if term.TermMax <= claim.TermMax {
				gen.AddFail(exitcode.ErrIllegalArgument)
				continue
			}
			if term.TermMax > currEpoch-claim.TermStart+policyMax {
				gen.AddFail(exitcode.ErrIllegalArgument)
				continue
			}

			claim.TermMax = term.TermMax
			err = st.PutClaim(rt.Store(), term.Provider, term.ClaimId, *claim)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update claim %d", term.ClaimId)
			gen.AddSuccess()
		}
	})

	ret := gen.Gen()
	return &ret
}

// RemoveExpiredAllocations removes allocations which were not claimed before
// their expiration, returning the unspent datacap to the client. An empty id
// list means all of the client's allocations are considered.
func (a Actor) RemoveExpiredAllocations(rt runtime.Runtime, params *RemoveExpiredAllocationsParams) *RemoveExpiredAllocationsReturn {
	rt.ValidateImmediateCallerAcceptAny()

	currEpoch := rt.CurrEpoch()
	recovered := big.Zero()
	var considered []AllocationId
	var gen *builtin.BatchReturnGen

	var st State
	rt.StateTransaction(&st, func() {
		considered = params.AllocationIds
		if len(considered) == 0 {
			var err error
			considered, err = st.ListAllocationIds(rt.Store(), params.Client)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to list allocations for client %d", params.Client)
		}
		gen = builtin.NewBatchReturnGen(len(considered))

		for _, id := range considered {
			alloc, found, err := st.GetAllocation(rt.Store(), params.Client, id)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load allocation %d", id)
			if !found {
				gen.AddFail(exitcode.ErrNotFound)
				continue
			}
			if currEpoch < alloc.Expiration {
				log.Infow("allocation not yet expired", "allocation", id, "expiration", alloc.Expiration)
				gen.AddFail(exitcode.ErrForbidden)
				continue
			}

			removed, err := st.RemoveAllocation(rt.Store(), params.Client, id)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to remove allocation %d", id)
			builtin.RequireState(rt, removed, "allocation %d vanished during removal", id)
			recovered = big.Add(recovered, big.NewInt(int64(alloc.Size)))
			gen.AddSuccess()
		}
	})

	// Return the datacap for the removed allocations to the client.
	if recovered.GreaterThan(big.Zero()) {
		clientAddr := builtin.TokenAccountAddress(params.Client)
		transferParams := datacap.TransferParams{
			To:     clientAddr,
			Amount: DataCapToTokens(recovered),
		}
		code := rt.Send(builtin.DatacapActorAddr, stbuiltin.MethodsDatacap.TransferExported, &transferParams, big.Zero(), &builtin.Discard{})
		builtin.RequireSuccess(rt, code, "failed to return datacap to client %d", params.Client)
	}

	return &RemoveExpiredAllocationsReturn{
		Considered:       considered,
		Results:          gen.Gen(),
		DataCapRecovered: recovered,
	}
}

// RemoveExpiredClaims removes claims whose term has passed its maximum. An
// empty id list means all of the provider's claims are considered.
func (a Actor) RemoveExpiredClaims(rt runtime.Runtime, params *RemoveExpiredClaimsParams) *RemoveExpiredClaimsReturn {
	rt.ValidateImmediateCallerAcceptAny()

	currEpoch := rt.CurrEpoch()
	var considered []ClaimId
	var gen *builtin.BatchReturnGen

	var st State
	rt.StateTransaction(&st, func() {
		considered = params.ClaimIds
		if len(considered) == 0 {
			var err error
			considered, err = st.ListClaimIds(rt.Store(), params.Provider)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to list claims for provider %d", params.Provider)
		}
		gen = builtin.NewBatchReturnGen(len(considered))

		for _, id := range considered {
			claim, found, err := st.GetClaim(rt.Store(), params.Provider, id)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load claim %d", id)
			if !found {
				gen.AddFail(exitcode.ErrNotFound)
				continue
			}
			if currEpoch < claim.TermStart+claim.TermMax {
				log.Infow("claim not yet expired", "claim", id, "termStart", claim.TermStart, "termMax", claim.TermMax)
				gen.AddFail(exitcode.ErrForbidden)
				continue
			}

			removed, err := st.RemoveClaim(rt.Store(), params.Provider, id)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to remove claim %d", id)
			builtin.RequireState(rt, removed, "claim %d vanished during removal", id)
			gen.AddSuccess()
		}
	})

	return &RemoveExpiredClaimsReturn{
		Considered: considered,
		Results:    gen.Gen(),
	}
}

// GetClaims returns the claims with the given ids for a provider. Missing
// claims are reported in the batch result without failing the call.
func (a Actor) GetClaims(rt runtime.Runtime, params *GetClaimsParams) *GetClaimsReturn {
	rt.ValidateImmediateCallerAcceptAny()

	gen := builtin.NewBatchReturnGen(len(params.ClaimIds))
	claims := make([]Claim, 0, len(params.ClaimIds))

	var st State
	rt.StateReadonly(&st)
	for _, id := range params.ClaimIds {
		claim, found, err := st.GetClaim(rt.Store(), params.Provider, id)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load claim %d", id)
		if !found {
			gen.AddFail(exitcode.ErrNotFound)
			continue
		}
		claims = append(claims, *claim)
		gen.AddSuccess()
	}

	return &GetClaimsReturn{
		BatchInfo: gen.Gen(),
		Claims:    claims,
	}
}

// UniversalReceiverHook receives datacap tokens and creates allocations or
// funds claim extensions according to the transfer's operator data. The
// entire payload must be valid or the call aborts, undoing the transfer.
func (a Actor) UniversalReceiverHook(rt runtime.Runtime, params *builtin.UniversalReceiverParams) *AllocationsResponse {
	rt.ValidateImmediateCallerIs(builtin.DatacapActorAddr)
	builtin.RequireParam(rt, params.Type_ == builtin.FRC46TokenType, "invalid token type %d", params.Type_)

	var tokens builtin.FRC46TokenReceived
	err := tokens.UnmarshalCBOR(bytes.NewReader(params.Payload))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to deserialize token payload")

	myID, err := address.IDFromAddress(rt.Receiver())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "receiver %v is not an ID address", rt.Receiver())
	builtin.RequireParam(rt, uint64(tokens.To) == myID, "token transfer to %d, expected %d", tokens.To, myID)

	var reqs AllocationRequests
	err = reqs.UnmarshalCBOR(bytes.NewReader(tokens.OperatorData))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to deserialize allocation requests")

	client := tokens.From
	currEpoch := rt.CurrEpoch()
	policy := rt.Policy()

	var newAllocIds []AllocationId
	extensionTotal := big.Zero()

	var st State
	rt.StateTransaction(&st, func() {
		// Validate and stage new allocations.
		allocationTotal := big.Zero()
		newAllocs := make(map[AllocationId]Allocation, len(reqs.Allocations))
		nextID := st.NextAllocationId
		for _, req := range reqs.Allocations {
			validateAllocationRequest(rt, policy, currEpoch, req)

			size := big.NewInt(int64(req.Size))
			allocationTotal = big.Add(allocationTotal, size)
			newAllocs[nextID] = Allocation{
				Client:     client,
				Provider:   req.Provider,
				Data:       req.Data,
				Size:       req.Size,
				TermMin:    req.TermMin,
				TermMax:    req.TermMax,
				Expiration: req.Expiration,
			}
			newAllocIds = append(newAllocIds, nextID)
			nextID++
		}

		// Validate and apply claim extensions.
		for _, ext := range reqs.Extensions {
			claim, found, err := st.GetClaim(rt.Store(), ext.Provider, ext.Claim)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load claim %d", ext.Claim)
			builtin.RequireParam(rt, found, "no claim %d for provider %d", ext.Claim, ext.Provider)
			builtin.RequireParam(rt, ext.TermMax > claim.TermMax,
				"term max %d for claim %d is not larger than existing %d", ext.TermMax, ext.Claim, claim.TermMax)
			builtin.RequireParam(rt, ext.TermMax <= currEpoch-claim.TermStart+policy.MaximumVerifiedAllocationTerm,
				"term max %d for claim %d exceeds maximum at current epoch", ext.TermMax, ext.Claim)

			extensionTotal = big.Add(extensionTotal, big.NewInt(int64(claim.Size)))
			claim.TermMax = ext.TermMax
			err = st.PutClaim(rt.Store(), ext.Provider, ext.Claim, *claim)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update claim %d", ext.Claim)
		}

		// The received tokens must exactly cover the datacap committed.
		total := big.Add(allocationTotal, extensionTotal)
		builtin.RequireParam(rt, DataCapToTokens(total).Equals(tokens.Amount),
			"token amount %v does not match datacap committed %v", tokens.Amount, total)

		err := st.InsertAllocations(rt.Store(), client, newAllocs)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to insert allocations")
		st.NextAllocationId = nextID
	})

	// Datacap for extended claims is committed immediately, so burn it now.
	// Datacap backing new allocations stays in this actor's balance until
	// the allocation is claimed or expires.
	if extensionTotal.GreaterThan(big.Zero()) {
		burnParams := datacap.BurnParams{Amount: DataCapToTokens(extensionTotal)}
		code := rt.Send(builtin.DatacapActorAddr, stbuiltin.MethodsDatacap.BurnExported, &burnParams, big.Zero(), &builtin.Discard{})
		builtin.RequireSuccess(rt, code, "failed to burn extension datacap")
	}

	return &AllocationsResponse{
		AllocationResults: builtin.BatchReturnOK(len(reqs.Allocations)),
		ExtensionResults:  builtin.BatchReturnOK(len(reqs.Extensions)),
		NewAllocations:    newAllocIds,
	}
}

func validateAllocationRequest(rt runtime.Runtime, policy *runtime.Policy, currEpoch abi.ChainEpoch, req AllocationRequest) {
	builtin.RequireParam(rt, big.NewInt(int64(req.Size)).GreaterThanEqual(policy.MinimumVerifiedAllocationSize),
		"allocation size %d below minimum %v", req.Size, policy.MinimumVerifiedAllocationSize)
	builtin.RequireParam(rt, req.TermMin >= policy.MinimumVerifiedAllocationTerm,
		"allocation term min %d below limit %d", req.TermMin, policy.MinimumVerifiedAllocationTerm)
	builtin.RequireParam(rt, req.TermMax <= policy.MaximumVerifiedAllocationTerm,
		"allocation term max %d above limit %d", req.TermMax, policy.MaximumVerifiedAllocationTerm)
	builtin.RequireParam(rt, req.TermMin <= req.TermMax,
		"allocation term min %d exceeds term max %d", req.TermMin, req.TermMax)
	builtin.RequireParam(rt, req.Expiration <= currEpoch+policy.MaximumVerifiedAllocationExpiration,
		"allocation expiration %d exceeds maximum %d", req.Expiration, currEpoch+policy.MaximumVerifiedAllocationExpiration)

	providerAddr := builtin.TokenAccountAddress(req.Provider)
	code, ok := rt.GetActorCodeCID(providerAddr)
	builtin.RequireParam(rt, ok && builtin.IsStorageMinerActor(code), "allocation provider %d is not a miner actor", req.Provider)
}
