package builtin

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	stbuiltin "github.com/filecoin-project/go-state-types/builtin"
)

// FRC46TokenType identifies FRC-0046 token payloads delivered through the
// universal receiver hook.
var FRC46TokenType = uint64(stbuiltin.MustGenerateFRCMethodNum("FRC46"))

// MethodReceive is the FRC-0042 method number of UniversalReceiverHook.
var MethodReceive = stbuiltin.MustGenerateFRCMethodNum("Receive")

// MethodSectorContentChanged is the FRC-0042 method number of the miner's
// data activation notification endpoint.
var MethodSectorContentChanged = stbuiltin.MustGenerateFRCMethodNum("SectorContentChanged")

// UniversalReceiverParams wraps a typed payload for a receiver hook target.
type UniversalReceiverParams struct {
	Type_   uint64
	Payload []byte
}

// FRC46TokenReceived describes a token transfer delivered to a receiver hook.
// From and To are token account IDs, which match actor IDs for the datacap
// token.
type FRC46TokenReceived struct {
	From         abi.ActorID
	To           abi.ActorID
	Operator     abi.ActorID
	Amount       abi.TokenAmount
	OperatorData []byte
	TokenData    []byte
}

// TokenAccountAddress returns the ID-address for a token account.
func TokenAccountAddress(id abi.ActorID) address.Address {
	addr, err := address.NewIDAddress(uint64(id))
	if err != nil {
		panic(err)
	}
	return addr
}
