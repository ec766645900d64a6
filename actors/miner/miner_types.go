package miner

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"

	"github.com/snissn/builtin-actors/actors/builtin"
	"github.com/snissn/builtin-actors/actors/verifreg"
)

type ConstructorParams struct {
	Owner               address.Address
	Worker              address.Address
	ControlAddresses    []address.Address
	WindowPoStProofType abi.RegisteredPoStProof
}

// PreCommitSectorParams registers intent to prove a sector, fixing its
// sealed commitment and expiration ahead of proof submission.
type PreCommitSectorParams = SectorPreCommitInfo

// SectorActivationManifest describes the data to be committed into a sector
// being proven for the first time.
type SectorActivationManifest struct {
	SectorNumber abi.SectorNumber
	Pieces       []PieceActivationManifest
}

// PieceActivationManifest describes one piece of data in a sector, with its
// optional verified allocation and data-commitment notifications.
type PieceActivationManifest struct {
	CID  cid.Cid
	Size abi.PaddedPieceSize
	// The verified allocation this piece claims, if any.
	VerifiedAllocationKey *VerifiedAllocationKey
	// Parties to notify of the commitment.
	Notify []DataActivationNotification
}

type VerifiedAllocationKey struct {
	Client abi.ActorID
	ID     verifreg.AllocationId
}

type DataActivationNotification struct {
	// The actor to notify.
	Address address.Address
	// Opaque payload carried in the notification.
	Payload []byte
}

type ProveCommitSectors3Params struct {
	SectorActivations          []SectorActivationManifest
	SectorProofs               [][]byte
	RequireActivationSuccess   bool
	RequireNotificationSuccess bool
}

type ProveCommitSectors3Return struct {
	ActivationResults builtin.BatchReturn
}

// SectorUpdateManifest describes replacing the data in an existing sector.
type SectorUpdateManifest struct {
	Sector       abi.SectorNumber
	Deadline     uint64
	Partition    uint64
	NewSealedCID cid.Cid
	Pieces       []PieceActivationManifest
}

type ProveReplicaUpdates3Params struct {
	SectorUpdates              []SectorUpdateManifest
	SectorProofs               [][]byte
	UpdateProofsType           abi.RegisteredUpdateProof
	RequireActivationSuccess   bool
	RequireNotificationSuccess bool
}

type ProveReplicaUpdates3Return struct {
	ActivationResults builtin.BatchReturn
}

// SectorContentChangedParams notifies a receiver about data committed into
// sectors, grouped per sector.
type SectorContentChangedParams struct {
	Sectors []SectorChanges
}

type SectorChanges struct {
	Sector                 abi.SectorNumber
	MinimumCommitmentEpoch abi.ChainEpoch
	Added                  []PieceChange
}

type PieceChange struct {
	Data    cid.Cid
	Size    abi.PaddedPieceSize
	Payload []byte
}

type SectorContentChangedReturn struct {
	Sectors []SectorReturn
}

type SectorReturn struct {
	Added []PieceReturn
}

type PieceReturn struct {
	Accepted bool
}
