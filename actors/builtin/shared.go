package builtin

import (
	"io"

	"github.com/filecoin-project/go-state-types/exitcode"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/snissn/builtin-actors/actors/runtime"
)

// Discard is a sink for send return values the caller does not need.
type Discard struct{}

func (d *Discard) MarshalCBOR(w io.Writer) error {
	_, err := w.Write(cbg.CborNull)
	return err
}

func (d *Discard) UnmarshalCBOR(r io.Reader) error {
	deferred := cbg.Deferred{}
	return deferred.UnmarshalCBOR(r)
}

// RequireNoErr aborts the invocation if err is non-nil, wrapping the message.
// An exit code already carried by an actor-originated error wins over the
// default supplied here.
func RequireNoErr(rt runtime.Runtime, err error, defaultExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	if err != nil {
		args = append(args, err)
		rt.Abortf(defaultExitCode, msg+": %s", args...)
	}
}

// RequireParam aborts with ErrIllegalArgument if the predicate is false.
func RequireParam(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalArgument, msg, args...)
	}
}

// RequireState aborts with ErrIllegalState if the predicate is false.
func RequireState(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalState, msg, args...)
	}
}

// RequireSuccess aborts if a cross-actor call returned a non-OK exit code,
// forwarding the callee's code.
func RequireSuccess(rt runtime.Runtime, e exitcode.ExitCode, msg string, args ...interface{}) {
	if !e.IsSuccess() {
		rt.Abortf(e, msg, args...)
	}
}
