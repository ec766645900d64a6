package main

import (
	"fmt"
	"os"

	gen "github.com/whyrusleeping/cbor-gen"

	"github.com/snissn/builtin-actors/actors/builtin"
	"github.com/snissn/builtin-actors/actors/miner"
	"github.com/snissn/builtin-actors/actors/power"
	"github.com/snissn/builtin-actors/actors/verifreg"
)

func main() {
	err := gen.WriteTupleEncodersToFile("./actors/builtin/cbor_gen.go", "builtin",
		builtin.FailCode{},
		builtin.BatchReturn{},
		builtin.UniversalReceiverParams{},
		builtin.FRC46TokenReceived{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = gen.WriteTupleEncodersToFile("./actors/verifreg/cbor_gen.go", "verifreg",
		verifreg.State{},
		verifreg.Allocation{},
		verifreg.Claim{},
		verifreg.ConstructorParams{},
		verifreg.AddVerifierParams{},
		verifreg.RemoveVerifierParams{},
		verifreg.AddVerifiedClientParams{},
		verifreg.ClaimAllocationsParams{},
		verifreg.SectorAllocationClaims{},
		verifreg.AllocationClaim{},
		verifreg.ClaimAllocationsReturn{},
		verifreg.SectorClaimSummary{},
		verifreg.ExtendClaimTermsParams{},
		verifreg.ClaimTerm{},
		verifreg.RemoveExpiredAllocationsParams{},
		verifreg.RemoveExpiredAllocationsReturn{},
		verifreg.RemoveExpiredClaimsParams{},
		verifreg.RemoveExpiredClaimsReturn{},
		verifreg.GetClaimsParams{},
		verifreg.GetClaimsReturn{},
		verifreg.AllocationRequests{},
		verifreg.AllocationRequest{},
		verifreg.ClaimExtensionRequest{},
		verifreg.AllocationsResponse{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = gen.WriteTupleEncodersToFile("./actors/power/cbor_gen.go", "power",
		power.State{},
		power.Claim{},
		power.UpdateClaimedPowerParams{},
		power.CurrentTotalPowerReturn{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = gen.WriteTupleEncodersToFile("./actors/miner/cbor_gen.go", "miner",
		miner.State{},
		miner.MinerInfo{},
		miner.Deadline{},
		miner.Partition{},
		miner.ExpirationSet{},
		miner.SectorPreCommitInfo{},
		miner.SectorPreCommitOnChainInfo{},
		miner.SectorOnChainInfo{},
		miner.ConstructorParams{},
		miner.SectorActivationManifest{},
		miner.PieceActivationManifest{},
		miner.VerifiedAllocationKey{},
		miner.DataActivationNotification{},
		miner.ProveCommitSectors3Params{},
		miner.ProveCommitSectors3Return{},
		miner.SectorContentChangedParams{},
		miner.SectorChanges{},
		miner.PieceChange{},
		miner.SectorContentChangedReturn{},
		miner.SectorReturn{},
		miner.PieceReturn{},
		miner.SectorUpdateManifest{},
		miner.ProveReplicaUpdates3Params{},
		miner.ProveReplicaUpdates3Return{},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
