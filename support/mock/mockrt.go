package mock

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/proof"
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"

	"github.com/snissn/builtin-actors/actors/runtime"
	"github.com/snissn/builtin-actors/actors/util/adt"
	"github.com/snissn/builtin-actors/support/ipld"
)

// Runtime is a test double of the execution host. Expectations are queued
// before a call and verified afterwards; unexpected interactions fail the
// test immediately.
type Runtime struct {
	t testing.TB

	ctx               context.Context
	epoch             abi.ChainEpoch
	caller            address.Address
	receiver          address.Address
	valueReceived     abi.TokenAmount
	circulatingSupply abi.TokenAmount
	policy            *runtime.Policy

	actorCodeCIDs map[address.Address]cid.Cid
	idAddresses   map[address.Address]address.Address

	store adt.Store
	state cid.Cid

	inCall        bool
	inTransaction bool

	expectValidateCallerAny  bool
	expectValidateCallerAddr []address.Address
	expectValidateCallerType []cid.Cid
	expectSends              []*expectedMessage
	expectComputeUnsealed    []*expectComputeUnsealed
	expectVerifySeal         []*expectVerifySeal
	expectReplicaVerify      []*expectReplicaVerify
}

var _ runtime.Runtime = &Runtime{}

type expectedMessage struct {
	to     address.Address
	method abi.MethodNum
	params cbor.Marshaler
	value  abi.TokenAmount

	sendReturn cbor.Marshaler
	exitCode   exitcode.ExitCode
}

type expectComputeUnsealed struct {
	reg    abi.RegisteredSealProof
	pieces []abi.PieceInfo
	cid    cid.Cid
	err    error
}

type expectVerifySeal struct {
	seal proof.SealVerifyInfo
	err  error
}

type expectReplicaVerify struct {
	update proof.ReplicaUpdateInfo
	err    error
}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

// RuntimeBuilder accumulates the fixed configuration for a runtime under
// construction.
type RuntimeBuilder struct {
	receiver address.Address
}

func NewBuilder(receiver address.Address) RuntimeBuilder {
	return RuntimeBuilder{receiver: receiver}
}

func (b RuntimeBuilder) Build(t testing.TB) *Runtime {
	ctx := context.Background()
	return &Runtime{
		t:                 t,
		ctx:               ctx,
		receiver:          b.receiver,
		valueReceived:     big.Zero(),
		circulatingSupply: big.Zero(),
		policy:            runtime.DefaultPolicy(),
		actorCodeCIDs:     make(map[address.Address]cid.Cid),
		idAddresses:       make(map[address.Address]address.Address),
		store:             ipld.NewADTStore(ctx),
	}
}

///// Configuration /////

func (rt *Runtime) SetCaller(addr address.Address, actorType cid.Cid) {
	rt.caller = addr
	rt.actorCodeCIDs[addr] = actorType
}

func (rt *Runtime) SetEpoch(epoch abi.ChainEpoch) {
	rt.epoch = epoch
}

func (rt *Runtime) SetReceived(amt abi.TokenAmount) {
	rt.valueReceived = amt
}

func (rt *Runtime) SetCirculatingSupply(amt abi.TokenAmount) {
	rt.circulatingSupply = amt
}

func (rt *Runtime) SetPolicy(p *runtime.Policy) {
	rt.policy = p
}

func (rt *Runtime) SetAddressActorType(addr address.Address, actorType cid.Cid) {
	rt.actorCodeCIDs[addr] = actorType
}

// AddIDAddress establishes a mapping from a robust address to its ID form.
func (rt *Runtime) AddIDAddress(src address.Address, target address.Address) {
	if target.Protocol() != address.ID {
		rt.t.Fatalf("target must be an ID address")
	}
	rt.idAddresses[src] = target
}

func (rt *Runtime) AdtStore() adt.Store {
	return rt.store
}

func (rt *Runtime) StateRoot() cid.Cid {
	return rt.state
}

func (rt *Runtime) GetState(o cbor.Unmarshaler) {
	if err := rt.store.Get(rt.ctx, rt.state, o); err != nil {
		rt.t.Fatalf("failed to load state: %v", err)
	}
}

func (rt *Runtime) ReplaceState(o cbor.Marshaler) {
	c, err := rt.store.Put(rt.ctx, o)
	if err != nil {
		rt.t.Fatalf("failed to replace state: %v", err)
	}
	rt.state = c
}

///// Runtime interface /////

func (rt *Runtime) CurrEpoch() abi.ChainEpoch {
	return rt.epoch
}

func (rt *Runtime) Caller() address.Address {
	return rt.caller
}

func (rt *Runtime) Receiver() address.Address {
	return rt.receiver
}

func (rt *Runtime) ValueReceived() abi.TokenAmount {
	return rt.valueReceived
}

func (rt *Runtime) TotalFilCircSupply() abi.TokenAmount {
	return rt.circulatingSupply
}

func (rt *Runtime) Policy() *runtime.Policy {
	return rt.policy
}

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	if !rt.expectValidateCallerAny {
		rt.t.Fatalf("unexpected validate-caller-any")
	}
	rt.expectValidateCallerAny = false
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...address.Address) {
	if rt.expectValidateCallerAddr == nil {
		rt.t.Fatalf("unexpected validate caller addrs %v", addrs)
		return
	}
	if !reflect.DeepEqual(rt.expectValidateCallerAddr, addrs) {
		rt.t.Fatalf("expected validate caller addrs %v, got %v", rt.expectValidateCallerAddr, addrs)
	}
	defer func() {
		rt.expectValidateCallerAddr = nil
	}()
	for _, expected := range addrs {
		if rt.caller == expected {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller address %v forbidden, allowed: %v", rt.caller, addrs)
}

func (rt *Runtime) ValidateImmediateCallerType(types ...cid.Cid) {
	if rt.expectValidateCallerType == nil {
		rt.t.Fatalf("unexpected validate caller code")
		return
	}
	if !reflect.DeepEqual(rt.expectValidateCallerType, types) {
		rt.t.Fatalf("expected validate caller code %v, got %v", rt.expectValidateCallerType, types)
	}
	defer func() {
		rt.expectValidateCallerType = nil
	}()
	callerCode, ok := rt.actorCodeCIDs[rt.caller]
	if !ok {
		rt.Abortf(exitcode.SysErrForbidden, "caller %v has no code", rt.caller)
	}
	for _, expected := range types {
		if callerCode == expected {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller type %v forbidden, allowed: %v", callerCode, types)
}

func (rt *Runtime) ResolveAddress(addr address.Address) (address.Address, bool) {
	if addr.Protocol() == address.ID {
		return addr, true
	}
	resolved, ok := rt.idAddresses[addr]
	return resolved, ok
}

func (rt *Runtime) GetActorCodeCID(addr address.Address) (cid.Cid, bool) {
	code, ok := rt.actorCodeCIDs[addr]
	return code, ok
}

func (rt *Runtime) Store() adt.Store {
	return rt.store
}

func (rt *Runtime) StateCreate(obj cbor.Marshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed")
	}
	c, err := rt.store.Put(rt.ctx, obj)
	if err != nil {
		rt.t.Fatalf("failed to create state: %v", err)
	}
	rt.state = c
}

func (rt *Runtime) StateReadonly(obj cbor.Unmarshaler) {
	if err := rt.store.Get(rt.ctx, rt.state, obj); err != nil {
		rt.t.Fatalf("failed to read state: %v", err)
	}
}

func (rt *Runtime) StateTransaction(obj cbor.Er, f func()) {
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nested state transaction")
	}
	if err := rt.store.Get(rt.ctx, rt.state, obj); err != nil {
		rt.t.Fatalf("failed to read state: %v", err)
	}
	rt.inTransaction = true
	defer func() {
		rt.inTransaction = false
	}()
	f()
	c, err := rt.store.Put(rt.ctx, obj)
	if err != nil {
		rt.t.Fatalf("failed to write state: %v", err)
	}
	rt.state = c
}

func (rt *Runtime) Send(to address.Address, method abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, out cbor.Er) exitcode.ExitCode {
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectSends) == 0 {
		rt.t.Fatalf("unexpected send to %v method %d", to, method)
	}
	exp := rt.expectSends[0]
	rt.expectSends = rt.expectSends[1:]

	if exp.to != to || exp.method != method {
		rt.t.Fatalf("expected send to %v method %d, got %v method %d", exp.to, exp.method, to, method)
	}
	if !exp.value.Equals(value) {
		rt.t.Fatalf("expected send value %v, got %v", exp.value, value)
	}
	expParams := marshalOrFatal(rt.t, exp.params)
	gotParams := marshalOrFatal(rt.t, params)
	if !bytes.Equal(expParams, gotParams) {
		rt.t.Fatalf("expected send params %x, got %x (to %v method %d)", expParams, gotParams, to, method)
	}

	if exp.exitCode.IsSuccess() && exp.sendReturn != nil && out != nil {
		buf := new(bytes.Buffer)
		if err := exp.sendReturn.MarshalCBOR(buf); err != nil {
			rt.t.Fatalf("failed to marshal send return: %v", err)
		}
		if err := out.UnmarshalCBOR(buf); err != nil {
			rt.t.Fatalf("failed to unmarshal send return into output: %v", err)
		}
	}
	return exp.exitCode
}

func (rt *Runtime) Abortf(exit exitcode.ExitCode, msg string, args ...interface{}) {
	panic(abort{exit, fmt.Sprintf(msg, args...)})
}

func (rt *Runtime) ComputeUnsealedSectorCID(reg abi.RegisteredSealProof, pieces []abi.PieceInfo) (cid.Cid, error) {
	if len(rt.expectComputeUnsealed) > 0 {
		exp := rt.expectComputeUnsealed[0]
		rt.expectComputeUnsealed = rt.expectComputeUnsealed[1:]
		if exp.reg != reg || !reflect.DeepEqual(exp.pieces, pieces) {
			rt.t.Fatalf("unexpected compute-unsealed-sector-cid %v %v", reg, pieces)
		}
		return exp.cid, exp.err
	}
	return MakeUnsealedCID(reg, pieces), nil
}

func (rt *Runtime) VerifySeal(vi proof.SealVerifyInfo) error {
	if len(rt.expectVerifySeal) > 0 {
		exp := rt.expectVerifySeal[0]
		rt.expectVerifySeal = rt.expectVerifySeal[1:]
		if exp.seal.SectorID != vi.SectorID {
			rt.t.Fatalf("unexpected seal verification for sector %v", vi.SectorID)
		}
		return exp.err
	}
	return nil
}

func (rt *Runtime) VerifyReplicaUpdate(update proof.ReplicaUpdateInfo) error {
	if len(rt.expectReplicaVerify) > 0 {
		exp := rt.expectReplicaVerify[0]
		rt.expectReplicaVerify = rt.expectReplicaVerify[1:]
		if exp.update.UpdateProofType != update.UpdateProofType || exp.update.NewSealedSectorCID != update.NewSealedSectorCID {
			rt.t.Fatalf("unexpected replica update verification %v", update)
		}
		return exp.err
	}
	return nil
}

// MakeUnsealedCID derives a deterministic unsealed sector CID from the piece
// set, standing in for the real proofs computation.
func MakeUnsealedCID(reg abi.RegisteredSealProof, pieces []abi.PieceInfo) cid.Cid {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("unsealed:%d", reg))
	for _, p := range pieces {
		buf.WriteString(p.PieceCID.String())
		buf.WriteString(fmt.Sprintf(":%d", p.Size))
	}
	c, err := cid.V1Builder{Codec: cid.Raw, MhType: mh.SHA2_256}.Sum(buf.Bytes())
	if err != nil {
		panic(err)
	}
	return c
}

///// Expectations /////

func (rt *Runtime) ExpectValidateCallerAny() {
	rt.expectValidateCallerAny = true
}

func (rt *Runtime) ExpectValidateCallerAddr(addrs ...address.Address) {
	rt.expectValidateCallerAddr = addrs[:]
}

func (rt *Runtime) ExpectValidateCallerType(types ...cid.Cid) {
	rt.expectValidateCallerType = types[:]
}

func (rt *Runtime) ExpectSend(to address.Address, method abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, ret cbor.Marshaler, exit exitcode.ExitCode) {
	rt.expectSends = append(rt.expectSends, &expectedMessage{
		to:         to,
		method:     method,
		params:     params,
		value:      value,
		sendReturn: ret,
		exitCode:   exit,
	})
}

func (rt *Runtime) ExpectComputeUnsealedSectorCID(reg abi.RegisteredSealProof, pieces []abi.PieceInfo, c cid.Cid, err error) {
	rt.expectComputeUnsealed = append(rt.expectComputeUnsealed, &expectComputeUnsealed{reg, pieces, c, err})
}

func (rt *Runtime) ExpectVerifySeal(seal proof.SealVerifyInfo, err error) {
	rt.expectVerifySeal = append(rt.expectVerifySeal, &expectVerifySeal{seal, err})
}

func (rt *Runtime) ExpectReplicaVerify(update proof.ReplicaUpdateInfo, err error) {
	rt.expectReplicaVerify = append(rt.expectReplicaVerify, &expectReplicaVerify{update, err})
}

// ExpectAbort runs f and requires that it aborts with the given code. State
// changes made before the abort are rolled back.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	rt.ExpectAbortContainsMessage(expected, "", f)
}

// ExpectAbortContainsMessage also requires the abort message to contain
// substr.
func (rt *Runtime) ExpectAbortContainsMessage(expected exitcode.ExitCode, substr string, f func()) {
	prevState := rt.state
	defer func() {
		r := recover()
		if r == nil {
			rt.t.Fatalf("expected abort with code %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.t.Fatalf("expected abort with code %v, got %v: %s", expected, a.code, a.msg)
		}
		if substr != "" && !strings.Contains(a.msg, substr) {
			rt.t.Fatalf("expected abort message to contain %q, got %q", substr, a.msg)
		}
		rt.state = prevState
		rt.Reset()
	}()
	f()
}

// Call invokes an actor method with the given parameter, returning its
// return value. Method is a bound method value taking (runtime, params).
func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	meth := reflect.ValueOf(method)
	if meth.Kind() != reflect.Func {
		rt.t.Fatalf("not a method: %v", method)
	}
	if rt.inCall {
		rt.t.Fatalf("re-entrant call")
	}
	rt.inCall = true
	defer func() {
		rt.inCall = false
	}()

	var paramVal reflect.Value
	if params != nil {
		paramVal = reflect.ValueOf(params)
	} else {
		paramVal = reflect.Zero(meth.Type().In(1))
	}
	ret := meth.Call([]reflect.Value{reflect.ValueOf(rt), paramVal})
	return ret[0].Interface()
}

// Verify requires that every queued expectation was consumed.
func (rt *Runtime) Verify() {
	rt.t.Helper()
	if rt.expectValidateCallerAny {
		rt.t.Errorf("missed expected validate-caller-any")
	}
	if rt.expectValidateCallerAddr != nil {
		rt.t.Errorf("missed expected validate caller addrs %v", rt.expectValidateCallerAddr)
	}
	if rt.expectValidateCallerType != nil {
		rt.t.Errorf("missed expected validate caller types %v", rt.expectValidateCallerType)
	}
	if len(rt.expectSends) > 0 {
		rt.t.Errorf("missed %d expected sends, first: %v", len(rt.expectSends), rt.expectSends[0])
	}
	if len(rt.expectComputeUnsealed) > 0 {
		rt.t.Errorf("missed %d expected unsealed-cid computations", len(rt.expectComputeUnsealed))
	}
	if len(rt.expectVerifySeal) > 0 {
		rt.t.Errorf("missed %d expected seal verifications", len(rt.expectVerifySeal))
	}
	if len(rt.expectReplicaVerify) > 0 {
		rt.t.Errorf("missed %d expected replica verifications", len(rt.expectReplicaVerify))
	}
	rt.Reset()
}

// Reset drops all unconsumed expectations.
func (rt *Runtime) Reset() {
	rt.expectValidateCallerAny = false
	rt.expectValidateCallerAddr = nil
	rt.expectValidateCallerType = nil
	rt.expectSends = nil
	rt.expectComputeUnsealed = nil
	rt.expectVerifySeal = nil
	rt.expectReplicaVerify = nil
}

func marshalOrFatal(t testing.TB, m cbor.Marshaler) []byte {
	if m == nil {
		return nil
	}
	buf := new(bytes.Buffer)
	if err := m.MarshalCBOR(buf); err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	return buf.Bytes()
}
