package runtime

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/proof"
	cid "github.com/ipfs/go-cid"

	"github.com/snissn/builtin-actors/actors/util/adt"
)

// Runtime is the interface actor code is written against. It abstracts the
// host that executes messages: the message context, actor state access, and
// the synchronous cross-actor call primitive.
//
// Execution is fully serialized by the host. A Send is the only suspension
// point, and it is synchronous: the caller's staged state is not visible to
// any other message while the callee runs. An Abortf unwinds the current
// invocation and discards every effect staged within it.
type Runtime interface {
	// CurrEpoch returns the epoch of the block this message executes in.
	CurrEpoch() abi.ChainEpoch

	// Caller is the immediate (always ID) address of the calling actor.
	Caller() address.Address
	// Receiver is the (ID) address of the actor receiving this message.
	Receiver() address.Address
	// ValueReceived is the value attached to the message being processed.
	ValueReceived() abi.TokenAmount

	// TotalFilCircSupply returns the current network circulating supply.
	TotalFilCircSupply() abi.TokenAmount

	// Policy returns the immutable policy bounds this network runs with.
	Policy() *Policy

	// Exactly one caller validation must be performed by each exported method.
	ValidateImmediateCallerAcceptAny()
	ValidateImmediateCallerIs(addrs ...address.Address)
	ValidateImmediateCallerType(codes ...cid.Cid)

	// ResolveAddress resolves an address of any protocol to an ID address.
	ResolveAddress(addr address.Address) (address.Address, bool)
	// GetActorCodeCID looks up the code of the actor at an (ID) address.
	GetActorCodeCID(addr address.Address) (cid.Cid, bool)

	// Store provides access to the content-addressed block store.
	Store() adt.Store

	// StateCreate initializes this actor's state object.
	StateCreate(obj cbor.Marshaler)
	// StateReadonly loads a readonly copy of the state into obj.
	StateReadonly(obj cbor.Unmarshaler)
	// StateTransaction loads state into obj, runs f, and commits the
	// (possibly mutated) obj back as the new state root. Any abort inside f
	// discards the staged state.
	StateTransaction(obj cbor.Er, f func())

	// Send dispatches a synchronous call to another actor. A non-OK exit code
	// from the callee does not propagate automatically; the caller inspects
	// it and decides whether to recover or abort.
	Send(to address.Address, method abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, out cbor.Er) exitcode.ExitCode

	// Abortf aborts the current invocation with the given exit code, rolling
	// back all state changes it has staged.
	Abortf(exit exitcode.ExitCode, msg string, args ...interface{})

	// Proof syscalls, delegated to the cryptography host.
	ComputeUnsealedSectorCID(reg abi.RegisteredSealProof, pieces []abi.PieceInfo) (cid.Cid, error)
	VerifySeal(vi proof.SealVerifyInfo) error
	VerifyReplicaUpdate(update proof.ReplicaUpdateInfo) error
}
