// Package opt implements the optimization passes that run over a built IR
// module: local value numbering with integrated constant folding, dead
// instruction elimination, and the pass manager that dispatches both
// (along with any future module- or subroutine-level pass) in a fixed
// order with no fixed-point iteration.
package opt

import "github.com/obround/lyn/internal/ir"

// ModulePass runs once over the whole module.
type ModulePass interface {
	RunPass(m *ir.Module)
}

// SubroutinePass runs once per subroutine body (forward declarations are
// skipped, since they have nothing to optimize).
type SubroutinePass interface {
	RunPass(s ir.BlockContainer)
}

// BlockPass runs once per basic block.
type BlockPass interface {
	RunPass(b *ir.Block)
}

// InstructionPass runs once per instruction.
type InstructionPass interface {
	RunPass(i ir.Instruction)
}

// PassManager classifies registered passes by which of the four pass kinds
// they implement and runs them over a module in a fixed order: module
// passes, then per-subroutine passes, then per-block passes, then
// per-instruction passes. There is no fixed-point iteration — each pass
// runs exactly once per applicable unit, in registration order within its
// kind.
type PassManager struct {
	modulePasses     []ModulePass
	subroutinePasses []SubroutinePass
	blockPasses      []BlockPass
	instrPasses      []InstructionPass
}

// NewPassManager creates an empty pass manager.
func NewPassManager() *PassManager { return &PassManager{} }

// RegisterPass classifies p against the four pass interfaces and appends it
// to the list it matches. Every kind's method is named RunPass with a
// different parameter type, so a pass matches exactly one kind.
//
// The original manager classified passes with `isinstance(p, ModulePass)`
// where p was the pass *class*, not an instance of it; a class is never an
// instance of another class, so the isinstance check was always false and
// registration silently did nothing for every pass, no matter its kind.
// The fix here is a type switch against the pass interfaces, which is what
// `issubclass`-style classification actually requires in Go.
func (pm *PassManager) RegisterPass(p any) {
	registered := false
	if mp, ok := p.(ModulePass); ok {
		pm.modulePasses = append(pm.modulePasses, mp)
		registered = true
	}
	if sp, ok := p.(SubroutinePass); ok {
		pm.subroutinePasses = append(pm.subroutinePasses, sp)
		registered = true
	}
	if bp, ok := p.(BlockPass); ok {
		pm.blockPasses = append(pm.blockPasses, bp)
		registered = true
	}
	if ip, ok := p.(InstructionPass); ok {
		pm.instrPasses = append(pm.instrPasses, ip)
		registered = true
	}
	if !registered {
		panic("lyn/opt: pass implements none of ModulePass, SubroutinePass, BlockPass, InstructionPass")
	}
}

// RunPasses runs every registered pass over m in the fixed module ->
// subroutine -> block -> instruction order.
func (pm *PassManager) RunPasses(m *ir.Module) {
	for _, mp := range pm.modulePasses {
		mp.RunPass(m)
	}
	for _, sub := range m.Subroutines() {
		bc, ok := sub.(ir.BlockContainer)
		if !ok {
			continue
		}
		for _, sp := range pm.subroutinePasses {
			sp.RunPass(bc)
		}
		for _, block := range bc.Blocks() {
			for _, bp := range pm.blockPasses {
				bp.RunPass(block)
			}
			for _, instr := range append([]ir.Instruction(nil), block.Instrs()...) {
				for _, ip := range pm.instrPasses {
					ip.RunPass(instr)
				}
			}
		}
	}
}
