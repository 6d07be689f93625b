package opt

import "github.com/obround/lyn/internal/ir"

// DIA is the dead instruction elimination pass. Within one block it removes
// every assignment instruction with no users, then recursively removes
// whatever used-vars that freed up. The initial sweep only looks at the
// block it's given, but each freed used-var is removed from its own block,
// which may be a different one. It's meant to be run after a pass like LVN that can leave behind
// instructions nothing references anymore, not as a standalone global
// cleanup.
type DIA struct{}

// RunPass implements BlockPass.
func (DIA) RunPass(block *ir.Block) {
	var dead []ir.Instruction
	for _, instr := range block.Instrs() {
		if isCallInstr(instr) {
			continue
		}
		if ai, ok := instr.(ir.AssignmentInstruction); ok && !ai.IsUsed() {
			dead = append(dead, instr)
		}
	}
	removeDeadInstrs(dead)
}

// removeDeadInstrs removes each instr from its own owning block, not
// necessarily the block RunPass started from — a used-var freed up by
// removing a dead instruction may live in a different (e.g. predecessor)
// block.
func removeDeadInstrs(instrs []ir.Instruction) {
	for _, instr := range instrs {
		usedVars := append([]ir.Instruction(nil), instr.UsedVars()...)
		if phi, ok := instr.(*ir.Phi); ok {
			phi.Block().RemovePhiInstr(phi)
		} else {
			instr.Block().RemoveInstr(instr)
		}

		var freed []ir.Instruction
		for _, v := range usedVars {
			if isCallInstr(v) {
				continue
			}
			if !v.IsUsed() {
				freed = append(freed, v)
			}
		}
		removeDeadInstrs(freed)
	}
}
