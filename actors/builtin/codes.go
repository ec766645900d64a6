package builtin

import (
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// Actor code CIDs, built as identity-hashed raw CIDs over the canonical actor
// names. Real networks embed these at genesis; here they serve as stable
// identifiers for caller-type validation.
var (
	SystemActorCodeID           = makeBuiltin("fil/1/system")
	InitActorCodeID             = makeBuiltin("fil/1/init")
	AccountActorCodeID          = makeBuiltin("fil/1/account")
	StoragePowerActorCodeID     = makeBuiltin("fil/1/storagepower")
	StorageMinerActorCodeID     = makeBuiltin("fil/1/storageminer")
	VerifiedRegistryActorCodeID = makeBuiltin("fil/1/verifiedregistry")
	DataCapActorCodeID          = makeBuiltin("fil/1/datacap")
	MultisigActorCodeID         = makeBuiltin("fil/1/multisig")
)

// CallerTypesSignable are the actor code CIDs whose messages can originate
// transactions, accepted wherever a method requires a signable caller.
var CallerTypesSignable = []cid.Cid{AccountActorCodeID, MultisigActorCodeID}

func makeBuiltin(name string) cid.Cid {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	c, err := builder.Sum([]byte(name))
	if err != nil {
		panic(err)
	}
	return c
}

func IsStorageMinerActor(code cid.Cid) bool {
	return code == StorageMinerActorCodeID
}

func IsSignableActor(code cid.Cid) bool {
	for _, c := range CallerTypesSignable {
		if c == code {
			return true
		}
	}
	return false
}
