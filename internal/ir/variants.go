package ir

import (
	"fmt"
	"strings"
)

// ---- Const -----------------------------------------------------------

// Const is a literal value of some concrete Type.
type Const struct {
	base
	name      string
	instrType Type
	ssaID     int

	Value string
}

// NewConst creates a detached Const instruction.
func NewConst(name string, instrType Type, value string) *Const {
	return &Const{name: name, instrType: instrType, Value: value}
}

func (c *Const) Name() string    { return c.name }
func (c *Const) InstrType() Type { return c.instrType }
func (c *Const) SSAID() int      { return c.ssaID }
func (c *Const) SetSSAID(id int) { c.ssaID = id }

func (c *Const) AddUser(i Instruction)    { c.base.addUser(i) }
func (c *Const) RemoveUser(i Instruction) { c.base.removeUser(i) }
func (c *Const) AddUsedVars(vars ...Instruction) {
	if len(vars) > 0 {
		panic("lyn/ir: Const has no used-vars")
	}
}
func (c *Const) RemoveUsedVars(vars ...Instruction) { removeUsedVars(c, &c.base, vars...) }
func (c *Const) ReplaceBy(value Instruction)        { replaceBy(c, &c.base, value) }
func (c *Const) ReplaceUse(old, new Instruction)    { unsupportedReplaceUse(c) }

func (c *Const) GetOperandAt(idx int) any {
	if idx != 0 {
		panic("lyn/ir: Const operand index out of range")
	}
	return c.Value
}

func (c *Const) SetOperandAt(idx int, value any) {
	if idx != 0 {
		panic("lyn/ir: Const operand index out of range")
	}
	c.Value = value.(string)
}

func (c *Const) OperandNum() int   { return 1 }
func (c *Const) OpcodeName() string { return "const" }

func (c *Const) String() string {
	return fmt.Sprintf("%%%s.%d: %s = const %s", c.name, c.ssaID, c.instrType, c.Value)
}

// ---- GlobalConst -------------------------------------------------------

// GlobalConst is a module-level constant, identified by a unique ConstID
// handed out by the owning Module (see Module.NextConstID).
type GlobalConst struct {
	base
	name      string
	instrType Type
	ssaID     int

	Value   string
	ConstID int
}

// NewGlobalConst creates a detached GlobalConst. constID should come from
// Module.NextConstID so that ids are unique across the whole module.
func NewGlobalConst(name string, instrType Type, value string, constID int) *GlobalConst {
	return &GlobalConst{name: name, instrType: instrType, Value: value, ConstID: constID}
}

func (c *GlobalConst) Name() string    { return c.name }
func (c *GlobalConst) InstrType() Type { return c.instrType }
func (c *GlobalConst) SSAID() int      { return c.ssaID }
func (c *GlobalConst) SetSSAID(id int) { c.ssaID = id }

func (c *GlobalConst) AddUser(i Instruction)    { c.base.addUser(i) }
func (c *GlobalConst) RemoveUser(i Instruction) { c.base.removeUser(i) }
func (c *GlobalConst) AddUsedVars(vars ...Instruction) {
	if len(vars) > 0 {
		panic("lyn/ir: GlobalConst has no used-vars")
	}
}
func (c *GlobalConst) RemoveUsedVars(vars ...Instruction) { removeUsedVars(c, &c.base, vars...) }
func (c *GlobalConst) ReplaceBy(value Instruction)        { replaceBy(c, &c.base, value) }
func (c *GlobalConst) ReplaceUse(old, new Instruction)    { unsupportedReplaceUse(c) }

func (c *GlobalConst) GetOperandAt(idx int) any {
	if idx != 0 {
		panic("lyn/ir: GlobalConst operand index out of range")
	}
	return c.Value
}

func (c *GlobalConst) SetOperandAt(idx int, value any) {
	if idx != 0 {
		panic("lyn/ir: GlobalConst operand index out of range")
	}
	c.Value = value.(string)
}

func (c *GlobalConst) OperandNum() int   { return 1 }
func (c *GlobalConst) OpcodeName() string { return "gconst" }

func (c *GlobalConst) String() string {
	return fmt.Sprintf("@%s.%d: %s = gconst %s", c.name, c.ssaID, c.instrType, c.Value)
}

// ---- BinOp ---------------------------------------------------------------

// BinOp computes `op x y`.
type BinOp struct {
	base
	name      string
	instrType Type
	ssaID     int

	Op Op
	X  AssignmentInstruction
	Y  AssignmentInstruction
}

// NewBinOp creates a detached BinOp, registering x and y as used-vars.
func NewBinOp(name string, instrType Type, op Op, x, y AssignmentInstruction) *BinOp {
	b := &BinOp{name: name, instrType: instrType, Op: op, X: x, Y: y}
	b.AddUsedVars(x, y)
	return b
}

func (b *BinOp) Name() string    { return b.name }
func (b *BinOp) InstrType() Type { return b.instrType }
func (b *BinOp) SSAID() int      { return b.ssaID }
func (b *BinOp) SetSSAID(id int) { b.ssaID = id }

func (b *BinOp) AddUser(i Instruction)           { b.base.addUser(i) }
func (b *BinOp) RemoveUser(i Instruction)        { b.base.removeUser(i) }
func (b *BinOp) AddUsedVars(vars ...Instruction) { addUsedVars(b, &b.base, vars...) }
func (b *BinOp) RemoveUsedVars(vars ...Instruction) { removeUsedVars(b, &b.base, vars...) }
func (b *BinOp) ReplaceBy(value Instruction)        { replaceBy(b, &b.base, value) }

func (b *BinOp) ReplaceUse(old, new Instruction) {
	baseReplaceUse(b, &b.base, old, new)
	if b.X == old {
		b.X = new.(AssignmentInstruction)
	}
	if b.Y == old {
		b.Y = new.(AssignmentInstruction)
	}
}

func (b *BinOp) GetOperandAt(idx int) any {
	switch idx {
	case 0:
		return b.Op
	case 1:
		return b.X
	case 2:
		return b.Y
	default:
		panic("lyn/ir: BinOp operand index out of range")
	}
}

func (b *BinOp) SetOperandAt(idx int, value any) {
	switch idx {
	case 0:
		b.Op = value.(Op)
	case 1:
		b.ReplaceUse(b.X, value.(Instruction))
	case 2:
		b.ReplaceUse(b.Y, value.(Instruction))
	default:
		panic("lyn/ir: BinOp operand index out of range")
	}
}

func (b *BinOp) OperandNum() int    { return 3 }
func (b *BinOp) OpcodeName() string { return b.Op.String() }

func (b *BinOp) String() string {
	return fmt.Sprintf("%%%s.%d: %s = %s %%%s.%d %%%s.%d",
		b.name, b.ssaID, b.instrType, b.Op, b.X.Name(), b.X.SSAID(), b.Y.Name(), b.Y.SSAID())
}

// ---- Cast ------------------------------------------------------------

// Cast converts Value to a new Type.
type Cast struct {
	base
	name      string
	instrType Type
	ssaID     int

	Value AssignmentInstruction
}

func NewCast(name string, instrType Type, value AssignmentInstruction) *Cast {
	c := &Cast{name: name, instrType: instrType, Value: value}
	c.AddUsedVars(value)
	return c
}

func (c *Cast) Name() string    { return c.name }
func (c *Cast) InstrType() Type { return c.instrType }
func (c *Cast) SSAID() int      { return c.ssaID }
func (c *Cast) SetSSAID(id int) { c.ssaID = id }

func (c *Cast) AddUser(i Instruction)              { c.base.addUser(i) }
func (c *Cast) RemoveUser(i Instruction)           { c.base.removeUser(i) }
func (c *Cast) AddUsedVars(vars ...Instruction)    { addUsedVars(c, &c.base, vars...) }
func (c *Cast) RemoveUsedVars(vars ...Instruction) { removeUsedVars(c, &c.base, vars...) }
func (c *Cast) ReplaceBy(value Instruction)        { replaceBy(c, &c.base, value) }

func (c *Cast) ReplaceUse(old, new Instruction) {
	baseReplaceUse(c, &c.base, old, new)
	c.Value = new.(AssignmentInstruction)
}

func (c *Cast) GetOperandAt(idx int) any {
	if idx != 0 {
		panic("lyn/ir: Cast operand index out of range")
	}
	return c.Value
}

func (c *Cast) SetOperandAt(idx int, value any) {
	if idx != 0 {
		panic("lyn/ir: Cast operand index out of range")
	}
	c.ReplaceUse(c.Value, value.(Instruction))
}

func (c *Cast) OperandNum() int    { return 1 }
func (c *Cast) OpcodeName() string { return "cast" }

func (c *Cast) String() string {
	return fmt.Sprintf("%%%s.%d: %s = cast %%%s.%d", c.name, c.ssaID, c.instrType, c.Value.Name(), c.Value.SSAID())
}

// ---- Id ------------------------------------------------------------

// Id is a plain copy of Value.
type Id struct {
	base
	name      string
	instrType Type
	ssaID     int

	Value AssignmentInstruction
}

func NewId(name string, instrType Type, value AssignmentInstruction) *Id {
	i := &Id{name: name, instrType: instrType, Value: value}
	i.AddUsedVars(value)
	return i
}

func (i *Id) Name() string    { return i.name }
func (i *Id) InstrType() Type { return i.instrType }
func (i *Id) SSAID() int      { return i.ssaID }
func (i *Id) SetSSAID(id int) { i.ssaID = id }

func (i *Id) AddUser(u Instruction)              { i.base.addUser(u) }
func (i *Id) RemoveUser(u Instruction)           { i.base.removeUser(u) }
func (i *Id) AddUsedVars(vars ...Instruction)    { addUsedVars(i, &i.base, vars...) }
func (i *Id) RemoveUsedVars(vars ...Instruction) { removeUsedVars(i, &i.base, vars...) }
func (i *Id) ReplaceBy(value Instruction)        { replaceBy(i, &i.base, value) }

func (i *Id) ReplaceUse(old, new Instruction) {
	baseReplaceUse(i, &i.base, old, new)
	i.Value = new.(AssignmentInstruction)
}

func (i *Id) GetOperandAt(idx int) any {
	if idx != 0 {
		panic("lyn/ir: Id operand index out of range")
	}
	return i.Value
}

func (i *Id) SetOperandAt(idx int, value any) {
	if idx != 0 {
		panic("lyn/ir: Id operand index out of range")
	}
	i.ReplaceUse(i.Value, value.(Instruction))
}

func (i *Id) OperandNum() int    { return 1 }
func (i *Id) OpcodeName() string { return "id" }

func (i *Id) String() string {
	return fmt.Sprintf("%%%s.%d: %s = id %%%s.%d", i.name, i.ssaID, i.instrType, i.Value.Name(), i.Value.SSAID())
}

// baseReplaceUse implements the common part of ReplaceUse shared by every
// variant with SSA operands: validate old is a currently-used var, then swap
// the use-def bookkeeping. Concrete variants call this before updating their
// own typed operand fields.
func baseReplaceUse(self Instruction, b *base, old, new Instruction) {
	found := false
	for _, v := range b.usedVars {
		if v == old {
			found = true
			break
		}
	}
	if !found {
		panic(fmt.Sprintf("lyn/ir: %v was not found in the variables used by %v", old, self))
	}
	removeUsedVars(self, b, old)
	addUsedVars(self, b, new)
}

// ---- Call (shared by FunctionCall and ProcedureCall) ----------------------

func callGetOperandAt(callee string, params []AssignmentInstruction, idx int) any {
	if idx < 0 || idx > len(params) {
		panic("lyn/ir: call operand index out of range")
	}
	if idx == 0 {
		return callee
	}
	return params[idx-1]
}

func callOperandNum(params []AssignmentInstruction) int { return len(params) + 1 }

func formatParams(params []AssignmentInstruction) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%%%s.%d", p.Name(), p.SSAID())
	}
	return strings.Join(parts, ", ")
}

// ---- FunctionCall ----------------------------------------------------

// FunctionCall invokes a named function and yields its return value. It is
// both an assignment-producing instruction and a call.
type FunctionCall struct {
	base
	name      string
	instrType Type
	ssaID     int

	Callee string
	Params []AssignmentInstruction
}

func NewFunctionCall(name string, instrType Type, callee string, params []AssignmentInstruction) *FunctionCall {
	f := &FunctionCall{name: name, instrType: instrType, Callee: callee, Params: params}
	for _, p := range params {
		f.AddUsedVars(p)
	}
	return f
}

func (f *FunctionCall) Name() string    { return f.name }
func (f *FunctionCall) InstrType() Type { return f.instrType }
func (f *FunctionCall) SSAID() int      { return f.ssaID }
func (f *FunctionCall) SetSSAID(id int) { f.ssaID = id }

func (f *FunctionCall) AddUser(i Instruction)              { f.base.addUser(i) }
func (f *FunctionCall) RemoveUser(i Instruction)           { f.base.removeUser(i) }
func (f *FunctionCall) AddUsedVars(vars ...Instruction)    { addUsedVars(f, &f.base, vars...) }
func (f *FunctionCall) RemoveUsedVars(vars ...Instruction) { removeUsedVars(f, &f.base, vars...) }
func (f *FunctionCall) ReplaceBy(value Instruction)        { replaceBy(f, &f.base, value) }

func (f *FunctionCall) ReplaceUse(old, new Instruction) {
	baseReplaceUse(f, &f.base, old, new)
	for i, p := range f.Params {
		if p == old {
			f.Params[i] = new.(AssignmentInstruction)
		}
	}
}

func (f *FunctionCall) AddParam(p AssignmentInstruction) {
	f.Params = append(f.Params, p)
	f.AddUsedVars(p)
}

func (f *FunctionCall) RemoveParam(p AssignmentInstruction) {
	for i, q := range f.Params {
		if q == p {
			f.Params = append(f.Params[:i], f.Params[i+1:]...)
			f.RemoveUsedVars(p)
			return
		}
	}
	panic(fmt.Sprintf("lyn/ir: parameter %v not found on %v", p, f))
}

func (f *FunctionCall) GetOperandAt(idx int) any { return callGetOperandAt(f.Callee, f.Params, idx) }

func (f *FunctionCall) SetOperandAt(idx int, value any) {
	if idx < 0 || idx > len(f.Params) {
		panic("lyn/ir: FunctionCall operand index out of range")
	}
	if idx == 0 {
		f.Callee = value.(string)
		return
	}
	f.ReplaceUse(f.Params[idx-1], value.(Instruction))
}

func (f *FunctionCall) OperandNum() int    { return callOperandNum(f.Params) }
func (f *FunctionCall) OpcodeName() string { return "fcall" }

func (f *FunctionCall) String() string {
	return fmt.Sprintf("%%%s.%d: %s = fcall %s(%s)", f.name, f.ssaID, f.instrType, f.Callee, formatParams(f.Params))
}

// ---- ProcedureCall -----------------------------------------------------

// ProcedureCall invokes a named procedure for its side effects; it produces
// no value.
type ProcedureCall struct {
	base

	Callee string
	Params []AssignmentInstruction
}

func NewProcedureCall(callee string, params []AssignmentInstruction) *ProcedureCall {
	p := &ProcedureCall{Callee: callee, Params: params}
	for _, param := range params {
		p.AddUsedVars(param)
	}
	return p
}

func (p *ProcedureCall) AddUser(i Instruction)              { p.base.addUser(i) }
func (p *ProcedureCall) RemoveUser(i Instruction)           { p.base.removeUser(i) }
func (p *ProcedureCall) AddUsedVars(vars ...Instruction)    { addUsedVars(p, &p.base, vars...) }
func (p *ProcedureCall) RemoveUsedVars(vars ...Instruction) { removeUsedVars(p, &p.base, vars...) }
func (p *ProcedureCall) ReplaceBy(value Instruction)        { replaceBy(p, &p.base, value) }

func (p *ProcedureCall) ReplaceUse(old, new Instruction) {
	baseReplaceUse(p, &p.base, old, new)
	for i, param := range p.Params {
		if param == old {
			p.Params[i] = new.(AssignmentInstruction)
		}
	}
}

func (p *ProcedureCall) AddParam(param AssignmentInstruction) {
	p.Params = append(p.Params, param)
	p.AddUsedVars(param)
}

func (p *ProcedureCall) RemoveParam(param AssignmentInstruction) {
	for i, q := range p.Params {
		if q == param {
			p.Params = append(p.Params[:i], p.Params[i+1:]...)
			p.RemoveUsedVars(param)
			return
		}
	}
	panic(fmt.Sprintf("lyn/ir: parameter %v not found on %v", param, p))
}

func (p *ProcedureCall) GetOperandAt(idx int) any { return callGetOperandAt(p.Callee, p.Params, idx) }

func (p *ProcedureCall) SetOperandAt(idx int, value any) {
	if idx < 0 || idx > len(p.Params) {
		panic("lyn/ir: ProcedureCall operand index out of range")
	}
	if idx == 0 {
		p.Callee = value.(string)
		return
	}
	p.ReplaceUse(p.Params[idx-1], value.(Instruction))
}

func (p *ProcedureCall) OperandNum() int    { return callOperandNum(p.Params) }
func (p *ProcedureCall) OpcodeName() string { return "pcall" }

func (p *ProcedureCall) String() string {
	return fmt.Sprintf("pcall %s(%s)", p.Callee, formatParams(p.Params))
}

// ---- Phi ---------------------------------------------------------------

// Phi merges a value based on its block's predecessors. All phis in a block
// execute simultaneously. Phi is created with zero inputs and filled in
// (possibly lazily) by the ssa package.
type Phi struct {
	base
	name      string
	instrType Type
	ssaID     int

	inputs []AssignmentInstruction
}

// NewPhi creates a detached, operandless phi for the given variable name.
func NewPhi(name string) *Phi {
	return &Phi{name: name, instrType: VOID}
}

func (p *Phi) Name() string    { return p.name }
func (p *Phi) InstrType() Type { return p.instrType }
func (p *Phi) SSAID() int      { return p.ssaID }
func (p *Phi) SetSSAID(id int) { p.ssaID = id }

func (p *Phi) AddUser(i Instruction)              { p.base.addUser(i) }
func (p *Phi) RemoveUser(i Instruction)           { p.base.removeUser(i) }
func (p *Phi) AddUsedVars(vars ...Instruction)    { addUsedVars(p, &p.base, vars...) }
func (p *Phi) RemoveUsedVars(vars ...Instruction) { removeUsedVars(p, &p.base, vars...) }
func (p *Phi) ReplaceBy(value Instruction)        { replaceBy(p, &p.base, value) }

func (p *Phi) ReplaceUse(old, new Instruction) {
	baseReplaceUse(p, &p.base, old, new)
	for i, in := range p.inputs {
		if in == old {
			p.inputs[i] = new.(AssignmentInstruction)
		}
	}
}

// Inputs returns the phi's current operand list, one per sealed predecessor.
func (p *Phi) Inputs() []AssignmentInstruction { return p.inputs }

// AddInput appends value as a new phi operand. value must already be
// attached to a block.
func (p *Phi) AddInput(value AssignmentInstruction) {
	if value.Block() == nil {
		panic("lyn/ir: phi input must be assigned a block")
	}
	p.inputs = append(p.inputs, value)
	p.AddUsedVars(value)
}

// RemoveInput removes value from the phi's operand list.
func (p *Phi) RemoveInput(value AssignmentInstruction) {
	for i, in := range p.inputs {
		if in == value {
			p.inputs = append(p.inputs[:i], p.inputs[i+1:]...)
			p.RemoveUsedVars(value)
			return
		}
	}
	panic(fmt.Sprintf("lyn/ir: %v not in phi's inputs", value))
}

func (p *Phi) GetOperandAt(idx int) any {
	if idx < 0 || idx >= len(p.inputs) {
		panic("lyn/ir: Phi operand index out of range")
	}
	return p.inputs[idx]
}

func (p *Phi) SetOperandAt(idx int, value any) {
	if idx < 0 || idx >= len(p.inputs) {
		panic("lyn/ir: Phi operand index out of range")
	}
	p.ReplaceUse(p.inputs[idx], value.(Instruction))
}

func (p *Phi) OperandNum() int    { return len(p.inputs) }
func (p *Phi) OpcodeName() string { return "phi" }

func (p *Phi) String() string {
	parts := make([]string, len(p.inputs))
	for i, in := range p.inputs {
		parts[i] = fmt.Sprintf("(.%s, %%%s.%d)", in.Block().Name(), in.Name(), in.SSAID())
	}
	return fmt.Sprintf("%%%s.%d: %s = phi(%s)", p.name, p.ssaID, p.instrType, strings.Join(parts, ", "))
}

// ---- Ubr -----------------------------------------------------------

// Ubr is an unconditional branch to ToBlock.
type Ubr struct {
	base
	ToBlock *Block
}

func NewUbr(toBlock *Block) *Ubr { return &Ubr{ToBlock: toBlock} }

func (u *Ubr) AddUser(i Instruction)    { u.base.addUser(i) }
func (u *Ubr) RemoveUser(i Instruction) { u.base.removeUser(i) }
func (u *Ubr) AddUsedVars(vars ...Instruction) {
	if len(vars) > 0 {
		panic("lyn/ir: Ubr has no used-vars")
	}
}
func (u *Ubr) RemoveUsedVars(vars ...Instruction) { removeUsedVars(u, &u.base, vars...) }
func (u *Ubr) ReplaceBy(value Instruction)        { replaceBy(u, &u.base, value) }
func (u *Ubr) ReplaceUse(old, new Instruction)    { unsupportedReplaceUse(u) }

func (u *Ubr) GetOperandAt(idx int) any {
	if idx != 0 {
		panic("lyn/ir: Ubr operand index out of range")
	}
	return u.ToBlock
}

func (u *Ubr) SetOperandAt(idx int, value any) {
	if idx != 0 {
		panic("lyn/ir: Ubr operand index out of range")
	}
	u.ToBlock = value.(*Block)
}

func (u *Ubr) OperandNum() int    { return 1 }
func (u *Ubr) OpcodeName() string { return "ubr" }

func (u *Ubr) String() string { return fmt.Sprintf("ubr .%s", u.ToBlock.Name()) }

// ---- Cbr -----------------------------------------------------------

// Cbr branches to TrueBlock if Cond is truthy, else to FalseBlock.
type Cbr struct {
	base
	Cond       AssignmentInstruction
	TrueBlock  *Block
	FalseBlock *Block
}

func NewCbr(cond AssignmentInstruction, trueBlock, falseBlock *Block) *Cbr {
	c := &Cbr{Cond: cond, TrueBlock: trueBlock, FalseBlock: falseBlock}
	c.AddUsedVars(cond)
	return c
}

func (c *Cbr) AddUser(i Instruction)              { c.base.addUser(i) }
func (c *Cbr) RemoveUser(i Instruction)           { c.base.removeUser(i) }
func (c *Cbr) AddUsedVars(vars ...Instruction)    { addUsedVars(c, &c.base, vars...) }
func (c *Cbr) RemoveUsedVars(vars ...Instruction) { removeUsedVars(c, &c.base, vars...) }
func (c *Cbr) ReplaceBy(value Instruction)        { replaceBy(c, &c.base, value) }

func (c *Cbr) ReplaceUse(old, new Instruction) {
	baseReplaceUse(c, &c.base, old, new)
	c.Cond = new.(AssignmentInstruction)
}

func (c *Cbr) GetOperandAt(idx int) any {
	switch idx {
	case 0:
		return c.Cond
	case 1:
		return c.TrueBlock
	case 2:
		return c.FalseBlock
	default:
		panic("lyn/ir: Cbr operand index out of range")
	}
}

func (c *Cbr) SetOperandAt(idx int, value any) {
	switch idx {
	case 0:
		c.ReplaceUse(c.Cond, value.(Instruction))
	case 1:
		c.TrueBlock = value.(*Block)
	case 2:
		c.FalseBlock = value.(*Block)
	default:
		panic("lyn/ir: Cbr operand index out of range")
	}
}

func (c *Cbr) OperandNum() int    { return 3 }
func (c *Cbr) OpcodeName() string { return "cbr" }

func (c *Cbr) String() string {
	return fmt.Sprintf("cbr %%%s.%d .%s .%s", c.Cond.Name(), c.Cond.SSAID(), c.TrueBlock.Name(), c.FalseBlock.Name())
}

// ---- Return -----------------------------------------------------------

// Return exits the current subroutine, optionally carrying Value.
type Return struct {
	base
	InstrType Type
	Value     AssignmentInstruction
}

// NewReturn creates a detached return. value is nil for a void return.
func NewReturn(instrType Type, value AssignmentInstruction) *Return {
	r := &Return{InstrType: instrType, Value: value}
	if value != nil {
		r.AddUsedVars(value)
	}
	return r
}

func (r *Return) AddUser(i Instruction)              { r.base.addUser(i) }
func (r *Return) RemoveUser(i Instruction)           { r.base.removeUser(i) }
func (r *Return) AddUsedVars(vars ...Instruction)    { addUsedVars(r, &r.base, vars...) }
func (r *Return) RemoveUsedVars(vars ...Instruction) { removeUsedVars(r, &r.base, vars...) }
func (r *Return) ReplaceBy(value Instruction)        { replaceBy(r, &r.base, value) }

func (r *Return) ReplaceUse(old, new Instruction) {
	baseReplaceUse(r, &r.base, old, new)
	r.Value = new.(AssignmentInstruction)
}

func (r *Return) GetOperandAt(idx int) any {
	if idx != 0 {
		panic("lyn/ir: Return operand index out of range")
	}
	return r.Value
}

func (r *Return) SetOperandAt(idx int, value any) {
	if idx != 0 {
		panic("lyn/ir: Return operand index out of range")
	}
	r.ReplaceUse(r.Value, value.(Instruction))
}

func (r *Return) OperandNum() int    { return 1 }
func (r *Return) OpcodeName() string { return "return" }

func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return fmt.Sprintf("return %%%s.%d", r.Value.Name(), r.Value.SSAID())
}
