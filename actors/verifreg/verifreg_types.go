package verifreg

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	stbuiltin "github.com/filecoin-project/go-state-types/builtin"
	"github.com/ipfs/go-cid"

	"github.com/snissn/builtin-actors/actors/builtin"
)

type ConstructorParams struct {
	RootKey address.Address
}

type AddVerifierParams struct {
	Address   address.Address
	Allowance DataCap
}

type RemoveVerifierParams struct {
	Verifier address.Address
}

type AddVerifiedClientParams struct {
	Address   address.Address
	Allowance DataCap
}

// ClaimAllocationsParams requests the conversion of allocations into claims,
// grouped by the sector into which the data has been committed.
type ClaimAllocationsParams struct {
	Sectors []SectorAllocationClaims
	// Whether to abort the whole call if any claim fails.
	AllOrNothing bool
}

type SectorAllocationClaims struct {
	// The sector in which the data was committed.
	Sector abi.SectorNumber
	// The epoch until which the sector is committed.
	Expiry abi.ChainEpoch
	// The allocations claimed by the sector.
	Claims []AllocationClaim
}

type AllocationClaim struct {
	Client       abi.ActorID
	AllocationId AllocationId
	Data         cid.Cid
	Size         abi.PaddedPieceSize
}

type ClaimAllocationsReturn struct {
	// Status of each sector grouping of claims.
	SectorResults builtin.BatchReturn
	// The claimed space for each successful sector group, in input order.
	SectorClaims []SectorClaimSummary
}

type SectorClaimSummary struct {
	// The total space claimed by the sector.
	ClaimedSpace big.Int
}

type ExtendClaimTermsParams struct {
	Terms []ClaimTerm
}

type ClaimTerm struct {
	Provider abi.ActorID
	ClaimId  ClaimId
	// The new maximum term, relative to the claim's term start.
	TermMax abi.ChainEpoch
}

type ExtendClaimTermsReturn = builtin.BatchReturn

type RemoveExpiredAllocationsParams struct {
	// Client for which to remove expired allocations.
	Client abi.ActorID
	// Allocations to attempt to remove; empty means all of the client's.
	AllocationIds []AllocationId
}

type RemoveExpiredAllocationsReturn struct {
	// The allocation ids considered for removal.
	Considered []AllocationId
	// Results for each considered id.
	Results builtin.BatchReturn
	// The datacap returned to the client for the removed allocations.
	DataCapRecovered DataCap
}

type RemoveExpiredClaimsParams struct {
	Provider abi.ActorID
	ClaimIds []ClaimId
}

type RemoveExpiredClaimsReturn struct {
	Considered []ClaimId
	Results    builtin.BatchReturn
}

type GetClaimsParams struct {
	Provider abi.ActorID
	ClaimIds []ClaimId
}

type GetClaimsReturn struct {
	BatchInfo builtin.BatchReturn
	Claims    []Claim
}

// AllocationRequests is the operator data payload of a datacap transfer to
// the registry: new allocations to create and claim terms to extend.
type AllocationRequests struct {
	Allocations []AllocationRequest
	Extensions  []ClaimExtensionRequest
}

type AllocationRequest struct {
	Provider   abi.ActorID
	Data       cid.Cid
	Size       abi.PaddedPieceSize
	TermMin    abi.ChainEpoch
	TermMax    abi.ChainEpoch
	Expiration abi.ChainEpoch
}

type ClaimExtensionRequest struct {
	Provider abi.ActorID
	Claim    ClaimId
	TermMax  abi.ChainEpoch
}

type AllocationsResponse struct {
	AllocationResults builtin.BatchReturn
	ExtensionResults  builtin.BatchReturn
	NewAllocations    []AllocationId
}

// DataCapToTokens scales a datacap amount in bytes to its token
// representation.
func DataCapToTokens(d DataCap) abi.TokenAmount {
	return big.Mul(d, stbuiltin.TokenPrecision)
}

// TokensToDataCap truncates a token amount to whole bytes of datacap.
func TokensToDataCap(t abi.TokenAmount) DataCap {
	return big.Div(t, stbuiltin.TokenPrecision)
}
