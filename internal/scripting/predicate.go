package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Evaluator evaluates catalog availability predicates: short Lua expressions
// attached to specialization options for rules a flat minimum level cannot
// express. Each evaluation runs in a fresh sandboxed VM with a strict opcode
// limit, so broken or hostile content can only fail, never hang the server.
type Evaluator struct {
	instLimit int
	logger    *zap.Logger
}

// NewEvaluator creates an Evaluator.
//
// Precondition: logger must be non-nil; instLimit <= 0 uses DefaultInstructionLimit.
func NewEvaluator(instLimit int, logger *zap.Logger) *Evaluator {
	return &Evaluator{instLimit: instLimit, logger: logger}
}

// EvalAvailability evaluates expr with `level` (number) and `class` (string)
// in scope and returns its boolean value.
//
// Postcondition: Returns the predicate result, or false and a non-nil error
// if the expression fails to parse, exceeds the opcode limit, or yields a
// non-boolean.
func (e *Evaluator) EvalAvailability(expr string, level int, classID string) (bool, error) {
	L := NewSandboxedState(e.instLimit)
	defer L.Close()

	L.SetGlobal("level", lua.LNumber(level))
	L.SetGlobal("class", lua.LString(classID))

	if err := L.DoString("return (" + expr + ")"); err != nil {
		return false, fmt.Errorf("evaluating availability predicate: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	b, ok := ret.(lua.LBool)
	if !ok {
		return false, fmt.Errorf("availability predicate returned %s, want boolean", ret.Type())
	}
	return bool(b), nil
}

// Available is the engine-facing wrapper: predicate failures are logged and
// treated as "not available" so malformed content degrades to hiding the
// option instead of blocking the whole eligibility query.
func (e *Evaluator) Available(expr string, level int, classID string) bool {
	ok, err := e.EvalAvailability(expr, level, classID)
	if err != nil {
		e.logger.Warn("availability predicate failed",
			zap.String("class", classID),
			zap.Int("level", level),
			zap.Error(err),
		)
		return false
	}
	return ok
}
