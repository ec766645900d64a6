package builtin

import (
	"github.com/filecoin-project/go-state-types/exitcode"
)

// BatchReturn represents the exit codes of a batched operation: one code per
// input item, in input order, compressed by storing only the failures.
// The whole-call exit code is independent of the per-item codes.
type BatchReturn struct {
	SuccessCount uint64
	FailCodes    []FailCode
}

// FailCode is a non-OK exit code at an index of a batch.
type FailCode struct {
	Idx  uint64
	Code exitcode.ExitCode
}

// BatchReturnOK returns a batch result of n successes.
func BatchReturnOK(n int) BatchReturn {
	return BatchReturn{SuccessCount: uint64(n)}
}

// BatchReturnOf returns a batch result with exactly the given codes.
func BatchReturnOf(codes ...exitcode.ExitCode) BatchReturn {
	gen := NewBatchReturnGen(len(codes))
	for _, c := range codes {
		gen.Add(c)
	}
	return gen.Gen()
}

// Size returns the number of items in the batch.
func (b *BatchReturn) Size() int {
	return int(b.SuccessCount) + len(b.FailCodes)
}

// AllOk reports whether every item in the batch succeeded.
func (b *BatchReturn) AllOk() bool {
	return len(b.FailCodes) == 0
}

// Codes expands the batch result into one exit code per item, in order.
func (b *BatchReturn) Codes() []exitcode.ExitCode {
	codes := make([]exitcode.ExitCode, 0, b.Size())
	for i := 0; i < b.Size(); i++ {
		codes = append(codes, exitcode.Ok)
	}
	for _, fc := range b.FailCodes {
		codes[fc.Idx] = fc.Code
	}
	return codes
}

// BatchReturnGen accumulates per-item exit codes for a batch in progress.
type BatchReturnGen struct {
	successCount uint64
	failCodes    []FailCode
	idx          uint64
}

func NewBatchReturnGen(capacity int) *BatchReturnGen {
	return &BatchReturnGen{
		failCodes: make([]FailCode, 0, capacity),
	}
}

func (g *BatchReturnGen) AddSuccess() {
	g.successCount++
	g.idx++
}

func (g *BatchReturnGen) AddFail(code exitcode.ExitCode) {
	g.failCodes = append(g.failCodes, FailCode{Idx: g.idx, Code: code})
	g.idx++
}

func (g *BatchReturnGen) Add(code exitcode.ExitCode) {
	if code.IsSuccess() {
		g.AddSuccess()
	} else {
		g.AddFail(code)
	}
}

// UpdateFail converts an item previously added as a success into a failure.
// Used when a later stage of a pipeline fails an item that passed earlier
// stages.
func (g *BatchReturnGen) UpdateFail(idx int, code exitcode.ExitCode) {
	pos := 0
	for pos < len(g.failCodes) && g.failCodes[pos].Idx < uint64(idx) {
		pos++
	}
	if pos < len(g.failCodes) && g.failCodes[pos].Idx == uint64(idx) {
		g.failCodes[pos].Code = code
		return
	}
	g.successCount--
	g.failCodes = append(g.failCodes, FailCode{})
	copy(g.failCodes[pos+1:], g.failCodes[pos:])
	g.failCodes[pos] = FailCode{Idx: uint64(idx), Code: code}
}

func (g *BatchReturnGen) Gen() BatchReturn {
	return BatchReturn{
		SuccessCount: g.successCount,
		FailCodes:    g.failCodes,
	}
}
