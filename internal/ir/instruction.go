package ir

import "fmt"

// Instruction is the common interface satisfied by every IR instruction
// variant, producing or non-producing. A single concrete struct implements
// it per variant (Const, BinOp, Cast, Id, FunctionCall, ProcedureCall, Phi,
// Ubr, Cbr, Return) — the uniform operand accessors dispatch to each
// variant's own GetOperandAt/SetOperandAt/OperandNum/OpcodeName.
type Instruction interface {
	fmt.Stringer

	// Block returns the basic block this instruction is attached to, or nil
	// if the instruction is detached.
	Block() *Block
	setBlock(b *Block)

	// Users returns the instructions that consume this instruction's value.
	// Only meaningful for assignment-producing instructions; non-producing
	// instructions always have an empty user list.
	Users() []Instruction
	AddUser(i Instruction)
	RemoveUser(i Instruction)

	// UsedVars returns the assignment instructions this instruction reads.
	UsedVars() []Instruction
	AddUsedVars(vars ...Instruction)
	RemoveUsedVars(vars ...Instruction)

	// ReplaceBy redirects every current user of this instruction to read
	// value instead, then detaches this instruction's own used-vars.
	ReplaceBy(value Instruction)

	// ReplaceUse updates a single operand from old to new. Instructions with
	// no SSA operands (Const, GlobalConst, Ubr) panic.
	ReplaceUse(old, new Instruction)

	// GetOperandAt/SetOperandAt/OperandNum give uniform access to a variant's
	// operand list, per the table in spec §4.1.
	GetOperandAt(idx int) any
	SetOperandAt(idx int, value any)
	OperandNum() int

	// OpcodeName returns the lowercase mnemonic used in the text form.
	OpcodeName() string

	IsUsed() bool
	UseCount() int
}

// AssignmentInstruction is implemented by instruction variants that yield a
// named SSA value: Const, GlobalConst, BinOp, Cast, Id, FunctionCall, Phi.
type AssignmentInstruction interface {
	Instruction
	Name() string
	InstrType() Type
	SSAID() int
	SetSSAID(id int)
}

// base holds the bookkeeping state shared by every instruction variant:
// owning block, users, and used-vars. It is embedded (not composed through
// promoted methods, since the use-def helpers below need the owning
// Instruction's identity, not just its base) by every concrete variant.
type base struct {
	block    *Block
	users    []Instruction
	usedVars []Instruction
}

func (b *base) Block() *Block      { return b.block }
func (b *base) setBlock(blk *Block) { b.block = blk }
func (b *base) Users() []Instruction    { return b.users }
func (b *base) UsedVars() []Instruction { return b.usedVars }
func (b *base) IsUsed() bool            { return len(b.users) > 0 }
func (b *base) UseCount() int           { return len(b.users) }

func (b *base) addUser(i Instruction) {
	for _, u := range b.users {
		if u == i {
			return
		}
	}
	b.users = append(b.users, i)
}

func (b *base) removeUser(i Instruction) {
	for idx, u := range b.users {
		if u == i {
			b.users = append(b.users[:idx], b.users[idx+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("lyn/ir: %v is not a registered user", i))
}

// addUsedVars registers vars as operands read by self, recording self as a
// user on each of them. self must be the Instruction embedding b.
func addUsedVars(self Instruction, b *base, vars ...Instruction) {
	for _, v := range vars {
		found := false
		for _, u := range b.usedVars {
			if u == v {
				found = true
				break
			}
		}
		if !found {
			b.usedVars = append(b.usedVars, v)
		}
		v.AddUser(self)
	}
}

func removeUsedVars(self Instruction, b *base, vars ...Instruction) {
	for _, v := range vars {
		idx := -1
		for i, u := range b.usedVars {
			if u == v {
				idx = i
				break
			}
		}
		if idx < 0 {
			panic(fmt.Sprintf("lyn/ir: %v is not a registered used variable of %v", v, self))
		}
		b.usedVars = append(b.usedVars[:idx], b.usedVars[idx+1:]...)
		v.RemoveUser(self)
	}
}

// replaceBy implements Instruction.ReplaceBy for self, whose state lives in b.
func replaceBy(self Instruction, b *base, value Instruction) {
	users := append([]Instruction(nil), b.users...)
	for _, u := range users {
		u.ReplaceUse(self, value)
	}
	usedVars := append([]Instruction(nil), b.usedVars...)
	removeUsedVars(self, b, usedVars...)
}

func unsupportedReplaceUse(self Instruction) {
	panic(fmt.Sprintf("lyn/ir: %s doesn't use any variables; invalid call to ReplaceUse", self.OpcodeName()))
}
