package ir

import (
	"fmt"
	"strings"
)

// Block is a basic block: a maximal straight-line instruction sequence with
// a single entry and single exit. A block's phis are always listed before
// its ordinary instructions, both in Instrs/Phis iteration and in the text
// form.
type Block struct {
	name       string
	subroutine Subroutine
	instrs     []Instruction
	phis       []*Phi
	preds      []*Block
	succs      []*Block
}

// NewBlock creates a detached block. Attach it to a subroutine with
// Subroutine's block-bearing methods (see AddBlock on Function/Procedure).
func NewBlock(name string) *Block {
	return &Block{name: name}
}

// Name returns the block's name, unique within its owning subroutine.
func (b *Block) Name() string { return b.name }

// Subroutine returns the subroutine this block belongs to, or nil if the
// block has not been attached to one yet.
func (b *Block) Subroutine() Subroutine { return b.subroutine }

func (b *Block) setSubroutine(s Subroutine) { b.subroutine = s }

// AddPhiInstr attaches a phi instruction to the block. Regular instructions
// go through AddInstr instead.
func (b *Block) AddPhiInstr(phi *Phi) *Phi {
	phi.setBlock(b)
	b.phis = append(b.phis, phi)
	return phi
}

// AddInstr attaches a non-phi instruction to the end of the block.
func (b *Block) AddInstr(instr Instruction) Instruction {
	instr.setBlock(b)
	b.instrs = append(b.instrs, instr)
	return instr
}

// InsertInstr inserts instr at position loc within the block's non-phi
// instruction list. O(n).
func (b *Block) InsertInstr(instr Instruction, loc int) Instruction {
	instr.setBlock(b)
	b.instrs = append(b.instrs, nil)
	copy(b.instrs[loc+1:], b.instrs[loc:])
	b.instrs[loc] = instr
	return instr
}

// ReplaceInstr replaces old with new in place. new must be detached and
// unused; every current user of old is rewired to new, and old is removed.
func (b *Block) ReplaceInstr(old, new Instruction) {
	idx := b.indexOfInstr(old)
	if idx < 0 {
		panic("lyn/ir: instruction not in instruction list")
	}
	if new.IsUsed() {
		panic("lyn/ir: the new instruction must not be used")
	}
	if new.Block() != nil {
		panic("lyn/ir: the new instruction must not be in another block")
	}
	new.setBlock(b)
	b.instrs = append(b.instrs, nil)
	copy(b.instrs[idx+1:], b.instrs[idx:])
	b.instrs[idx] = new
	old.ReplaceBy(new)
	b.instrs = append(b.instrs[:idx+1], b.instrs[idx+2:]...)
	old.setBlock(nil)
}

// RemoveInstr removes instr from the block. instr must have no users.
func (b *Block) RemoveInstr(instr Instruction) {
	idx := b.indexOfInstr(instr)
	if idx < 0 {
		panic("lyn/ir: instruction not in instruction list")
	}
	if instr.IsUsed() {
		panic("lyn/ir: the instruction is used! it is not safe to remove it")
	}
	instr.setBlock(nil)
	instr.RemoveUsedVars(append([]Instruction(nil), instr.UsedVars()...)...)
	b.instrs = append(b.instrs[:idx], b.instrs[idx+1:]...)
}

// RemovePhiInstr removes phi from the block. phi must have no users.
func (b *Block) RemovePhiInstr(phi *Phi) {
	idx := -1
	for i, p := range b.phis {
		if p == phi {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("lyn/ir: phi instruction not in phi list")
	}
	if phi.IsUsed() {
		panic("lyn/ir: phi is used! it is not safe to remove it")
	}
	phi.setBlock(nil)
	phi.RemoveUsedVars(append([]Instruction(nil), phi.UsedVars()...)...)
	b.phis = append(b.phis[:idx], b.phis[idx+1:]...)
}

// UnlinkPhi detaches phi from the block's phi list without checking whether
// it is still used. It exists solely for ssa.SSA.RemoveTrivialPhi, which
// must delist a phi before rewiring its remaining users via ReplaceBy — at
// that point the phi may still have users by construction.
func (b *Block) UnlinkPhi(phi *Phi) {
	idx := -1
	for i, p := range b.phis {
		if p == phi {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("lyn/ir: phi instruction not in phi list")
	}
	phi.setBlock(nil)
	b.phis = append(b.phis[:idx], b.phis[idx+1:]...)
}

func (b *Block) indexOfInstr(instr Instruction) int {
	for i, in := range b.instrs {
		if in == instr {
			return i
		}
	}
	return -1
}

// AddPred registers block as a predecessor, transparently registering the
// reverse successor edge on block if not already present.
func (b *Block) AddPred(block *Block) {
	b.preds = append(b.preds, block)
	if !block.hasSucc(b) {
		block.AddSucc(b)
	}
}

// AddSucc registers block as a successor, transparently registering the
// reverse predecessor edge on block if not already present.
func (b *Block) AddSucc(block *Block) {
	b.succs = append(b.succs, block)
	if !block.hasPred(b) {
		block.AddPred(b)
	}
}

func (b *Block) hasPred(block *Block) bool {
	for _, p := range b.preds {
		if p == block {
			return true
		}
	}
	return false
}

func (b *Block) hasSucc(block *Block) bool {
	for _, s := range b.succs {
		if s == block {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the block has no non-phi instructions.
func (b *Block) IsEmpty() bool { return len(b.instrs) == 0 }

// InstrCount returns the number of non-phi instructions in the block.
func (b *Block) InstrCount() int { return len(b.instrs) }

// Instrs returns the block's non-phi instructions, in order.
func (b *Block) Instrs() []Instruction { return b.instrs }

// Phis returns the block's phi instructions, in order.
func (b *Block) Phis() []*Phi { return b.phis }

// Preds returns the block's predecessor blocks, in order added.
func (b *Block) Preds() []*Block { return b.preds }

// Succs returns the block's successor blocks, in order added.
func (b *Block) Succs() []*Block { return b.succs }

func (b *Block) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, ".%s:\n", b.name)
	for _, phi := range b.phis {
		fmt.Fprintf(&out, "    %s\n", phi)
	}
	for _, instr := range b.instrs {
		fmt.Fprintf(&out, "    %s\n", instr)
	}
	return out.String()
}
