package opt

import (
	"fmt"

	"github.com/obround/lyn/internal/ir"
)

// LVN is the local value numbering pass. Within a single basic block it
// folds constants, recognizes when two instructions compute the same
// value and rewrites the later one into a copy of the first, and
// propagates the resulting copies and constants into every instruction
// that reads them. It finishes each block by running DIA, since LVN
// routinely leaves behind instructions nothing uses anymore.
type LVN struct {
	dia      DIA
	numCount int
}

// NewLVN creates an LVN pass with a fresh numbering counter.
func NewLVN() *LVN { return &LVN{numCount: -1} }

func (l *LVN) freshNum() int {
	l.numCount++
	return l.numCount
}

func asName(x ir.AssignmentInstruction) string { return fmt.Sprintf("%s.%d", x.Name(), x.SSAID()) }

// RunPass implements BlockPass.
func (l *LVN) RunPass(block *ir.Block) {
	numberings := map[string]int{}
	valueTable := map[Value]int{}
	name := map[int]ir.AssignmentInstruction{}

	for _, original := range append([]ir.Instruction(nil), block.Instrs()...) {
		instr, ok := original.(ir.AssignmentInstruction)
		if !ok || isCallInstr(instr) {
			continue
		}

		if folded := FoldInstr(instr); folded != nil {
			block.ReplaceInstr(instr, folded)
			instr = folded
		}

		commutative := false
		if bo, ok := instr.(*ir.BinOp); ok {
			commutative = bo.Op.IsCommutative()
		}

		n := instr.OperandNum()
		params := make([]string, n)
		for i := 0; i < n; i++ {
			params[i] = operandKey(instr.GetOperandAt(i), numberings)
		}
		value := NewValue(instr.OpcodeName(), instr.InstrType(), commutative, params)

		if number, found := valueTable[value]; found {
			// An equivalent instruction already exists in this block: replace
			// this one with a cheap copy of it.
			newInstr := ir.NewId(instr.Name(), instr.InstrType(), name[number])
			newInstr.SetSSAID(instr.SSAID())
			block.ReplaceInstr(instr, newInstr)
			numberings[asName(instr)] = number
			continue
		}

		number := l.freshNum()
		valueTable[value] = number
		name[number] = instr
		// Redirect every operand to its own canonical representative, so that
		// a later copy-propagated reference doesn't keep pointing at an
		// instruction this pass is about to delete.
		for i := 0; i < n; i++ {
			operand := instr.GetOperandAt(i)
			opAI, ok := operand.(ir.AssignmentInstruction)
			if !ok {
				continue
			}
			if redirectNum, found := numberings[asName(opAI)]; found {
				instr.SetOperandAt(i, name[redirectNum])
			}
		}
		numberings[asName(instr)] = number
	}

	l.dia.RunPass(block)
}

// operandKey turns one operand of the instruction currently being numbered
// into a string suitable for folding into a Value fingerprint: an
// assignment-producing, non-call operand is replaced by its current
// numbering (so that two structurally different but value-equal operand
// chains collide); one with no numbering in this block is rendered by its
// own SSA name. Everything else (opcodes, block labels, call callees,
// literal operands) is rendered as-is.
func operandKey(operand any, numberings map[string]int) string {
	if ai, ok := operand.(ir.AssignmentInstruction); ok && !isCallInstr(ai) {
		if number, found := numberings[asName(ai)]; found {
			return fmt.Sprintf("#%d", number)
		}
		return "%" + asName(ai)
	}
	return fmt.Sprintf("%v", operand)
}
