package opt

import "github.com/obround/lyn/internal/ir"

// isCallInstr reports whether instr is one of the two call variants. A
// handful of passes (LVN's value numbering, DIA's liveness sweep) need to
// treat calls specially: FunctionCall produces a value like any other
// AssignmentInstruction, but its value depends on side effects the pass
// can't see, so it must never be folded, copy-propagated, or numbered as
// interchangeable with another call.
func isCallInstr(instr ir.Instruction) bool {
	switch instr.(type) {
	case *ir.FunctionCall, *ir.ProcedureCall:
		return true
	default:
		return false
	}
}
