package builtin

import (
	"github.com/filecoin-project/go-address"
)

var (
	SystemActorAddr           = mustMakeAddress(0)
	InitActorAddr             = mustMakeAddress(1)
	StoragePowerActorAddr     = mustMakeAddress(4)
	VerifiedRegistryActorAddr = mustMakeAddress(6)
	DatacapActorAddr          = mustMakeAddress(7)
	BurntFundsActorAddr       = mustMakeAddress(99)
)

func mustMakeAddress(id uint64) address.Address {
	addr, err := address.NewIDAddress(id)
	if err != nil {
		panic(err)
	}
	return addr
}
