// Package ssa converts a procedural, block-structured program into pruned
// SSA form in a single pass, following Braun et al.'s on-the-fly construction
// algorithm: variable definitions are looked up lazily as each block is
// built, phi functions are inserted only where control-flow actually merges
// values, and trivial phis are pruned as soon as they are recognized.
package ssa

import (
	"fmt"

	"github.com/sasha-s/go-deadlock"

	"github.com/obround/lyn/internal/ir"
)

// ssaDef tracks one source-level variable's SSA numbering state: the next
// free ssa_id and, per block name, the instruction currently defining the
// variable at the end of that block.
type ssaDef struct {
	count      int
	currentDef map[string]ir.AssignmentInstruction
}

// SSA drives incremental SSA construction for a single subroutine. Create
// one SSA per subroutine being built; it is not meant to span a whole
// module.
//
// The mutex guards the builder's own maps (variables, incompletePhis,
// sealedBlocks). Each method holds it only while reading or writing those
// maps and releases it before calling back into the builder, so the mutual
// recursion of Braun-style construction (GetReachingDef -> AddPhiOperands ->
// GetReachingDef -> ...) never blocks on it, and a re-entrant call is not
// detected by it. It does not cover the IR blocks and instructions the
// builder mutates.
type SSA struct {
	mu deadlock.Mutex

	variables      map[string]*ssaDef
	incompletePhis map[string]map[string]*ir.Phi
	sealedBlocks   map[string]bool
}

// New creates an SSA builder with no variables, no pending phis, and no
// sealed blocks.
func New() *SSA {
	return &SSA{
		variables:      map[string]*ssaDef{},
		incompletePhis: map[string]map[string]*ir.Phi{},
		sealedBlocks:   map[string]bool{},
	}
}

// NewVariable registers a definition of instr as the reaching definition of
// its own name at the end of block, assigning it the next free ssa_id for
// that name. It returns instr unchanged, to thread through a builder's
// assignment-emission code.
func (s *SSA) NewVariable(instr ir.AssignmentInstruction, block *ir.Block) ir.AssignmentInstruction {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.variables[instr.Name()]
	if !ok {
		def = &ssaDef{count: 0, currentDef: map[string]ir.AssignmentInstruction{}}
		s.variables[instr.Name()] = def
		instr.SetSSAID(0)
		def.currentDef[block.Name()] = instr
		return instr
	}
	def.count++
	instr.SetSSAID(def.count)
	def.currentDef[block.Name()] = instr
	return instr
}

// GetReachingDef returns the value that variable holds at the end of block,
// inserting phi functions as needed when the definition must be merged or
// looked up through an as-yet-unsealed predecessor chain.
//
// Panics if variable was never registered via NewVariable anywhere in the
// subroutine: referencing an undeclared variable is a contract violation by
// the caller (typically a front-end bug), not a recoverable runtime
// condition.
func (s *SSA) GetReachingDef(variable string, block *ir.Block) ir.AssignmentInstruction {
	s.mu.Lock()
	def, ok := s.variables[variable]
	if !ok {
		s.mu.Unlock()
		panic(fmt.Sprintf("lyn/ssa: variable %q was never defined", variable))
	}
	if instr, ok := def.currentDef[block.Name()]; ok {
		s.mu.Unlock()
		return instr
	}
	s.mu.Unlock()
	return s.getReachingDefRecursive(variable, block)
}

func (s *SSA) getReachingDefRecursive(variable string, block *ir.Block) ir.AssignmentInstruction {
	s.mu.Lock()
	sealed := s.sealedBlocks[block.Name()]
	preds := block.Preds()
	s.mu.Unlock()

	if !sealed {
		// The block's predecessor set isn't final yet: park an incomplete phi
		// that AddSealedBlock will fill in once it is.
		phi := ir.NewPhi(variable)
		block.AddPhiInstr(phi)
		s.NewVariable(phi, block)

		s.mu.Lock()
		if s.incompletePhis[block.Name()] == nil {
			s.incompletePhis[block.Name()] = map[string]*ir.Phi{}
		}
		s.incompletePhis[block.Name()][variable] = phi
		s.mu.Unlock()
		return phi
	}

	if len(preds) == 1 {
		return s.GetReachingDef(variable, preds[0])
	}

	// More than one predecessor (or zero, at the entry block): pre-register an
	// operandless phi before recursing into AddPhiOperands, so that a cycle
	// back through this same variable/block finds a definition already in
	// place instead of recursing forever.
	phi := ir.NewPhi(variable)
	block.AddPhiInstr(phi)
	s.NewVariable(phi, block)
	return s.AddPhiOperands(variable, phi)
}

// AddPhiOperands fills in phi's operands from the reaching definition of
// variable in each of phi's block's predecessors, then immediately checks
// whether the now-complete phi turned out to be trivial.
func (s *SSA) AddPhiOperands(variable string, phi *ir.Phi) ir.AssignmentInstruction {
	for _, pred := range phi.Block().Preds() {
		phi.AddInput(s.GetReachingDef(variable, pred))
	}
	return s.RemoveTrivialPhi(phi)
}

// RemoveTrivialPhi detects a phi whose inputs are all equal (ignoring
// self-references) and, if so, replaces every use of it with that single
// common value, removes it from its block, and recursively re-examines any
// phi users that may have become trivial as a result.
//
// A non-trivial phi is returned unchanged.
func (s *SSA) RemoveTrivialPhi(phi *ir.Phi) ir.AssignmentInstruction {
	var same ir.AssignmentInstruction
	for _, param := range phi.Inputs() {
		if param == same || param == ir.AssignmentInstruction(phi) {
			continue
		}
		if same != nil {
			return phi
		}
		same = param
	}

	if same == nil {
		// phi has no inputs at all (e.g. an unreachable block) or refers only to
		// itself; there is nothing meaningful to replace it with, so it stays
		// in its block unchanged.
		return phi
	}

	phi.Block().UnlinkPhi(phi)

	users := make([]ir.Instruction, 0, len(phi.Users()))
	for _, u := range phi.Users() {
		if u != ir.Instruction(phi) {
			users = append(users, u)
		}
	}
	phi.ReplaceBy(same)

	s.mu.Lock()
	def := s.variables[phi.Name()]
	for blockName, instr := range def.currentDef {
		if instr == ir.AssignmentInstruction(phi) {
			def.currentDef[blockName] = same
		}
	}
	s.mu.Unlock()

	for _, use := range users {
		if p, ok := use.(*ir.Phi); ok {
			s.RemoveTrivialPhi(p)
		}
	}
	return same
}

// AddSealedBlock marks block as sealed — meaning no further predecessors
// will ever be added to it — and resolves every incomplete phi that was
// parked on it while its predecessor set was still open.
func (s *SSA) AddSealedBlock(block *ir.Block) {
	s.mu.Lock()
	pending := s.incompletePhis[block.Name()]
	s.mu.Unlock()

	for variable, phi := range pending {
		s.AddPhiOperands(variable, phi)
	}

	s.mu.Lock()
	s.sealedBlocks[block.Name()] = true
	s.mu.Unlock()
}
