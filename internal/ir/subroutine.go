package ir

import (
	"fmt"
	"strings"
)

// Subroutine is the common interface satisfied by every kind of callable:
// Function, Procedure, FunctionForwardDecl, ProcedureForwardDecl.
type Subroutine interface {
	fmt.Stringer
	SubroutineName() string
}

// BlockContainer is implemented by subroutine kinds that own a body —
// Function and Procedure, but not the forward-declaration variants.
type BlockContainer interface {
	Subroutine
	Binding() Binding
	Params() []Parameter
	AddParam(p Parameter) Parameter
	RemoveParam(p Parameter)
	AddBlock(b *Block) *Block
	RemoveBlock(b *Block)
	Blocks() []*Block
	BlockByName(name string) (*Block, bool)
}

// body holds the state shared by Function and Procedure: name, binding,
// parameters, and an insertion-ordered block table.
type body struct {
	name       string
	binding    Binding
	params     []Parameter
	blockOrder []string
	blocks     map[string]*Block
}

func newBody(name string, params []Parameter, binding Binding) body {
	return body{name: name, binding: binding, params: append([]Parameter(nil), params...), blocks: map[string]*Block{}}
}

func (s *body) SubroutineName() string { return s.name }
func (s *body) Binding() Binding       { return s.binding }
func (s *body) Params() []Parameter    { return s.params }

func (s *body) AddParam(p Parameter) Parameter {
	s.params = append(s.params, p)
	return p
}

func (s *body) RemoveParam(p Parameter) {
	for i, q := range s.params {
		if q == p {
			s.params = append(s.params[:i], s.params[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("lyn/ir: parameter %v not found", p))
}

// self is the owning Function/Procedure, attached to each block so a block
// can look up its subroutine.
func (s *body) addBlock(self Subroutine, b *Block) *Block {
	if _, exists := s.blocks[b.Name()]; exists {
		panic(fmt.Sprintf("lyn/ir: redefinition of block `%s`", b.Name()))
	}
	b.setSubroutine(self)
	s.blocks[b.Name()] = b
	s.blockOrder = append(s.blockOrder, b.Name())
	return b
}

func (s *body) RemoveBlock(b *Block) {
	if _, exists := s.blocks[b.Name()]; !exists {
		panic(fmt.Sprintf("lyn/ir: block %s does not exist", b.Name()))
	}
	delete(s.blocks, b.Name())
	for i, name := range s.blockOrder {
		if name == b.Name() {
			s.blockOrder = append(s.blockOrder[:i], s.blockOrder[i+1:]...)
			break
		}
	}
}

func (s *body) Blocks() []*Block {
	out := make([]*Block, len(s.blockOrder))
	for i, name := range s.blockOrder {
		out[i] = s.blocks[name]
	}
	return out
}

func (s *body) BlockByName(name string) (*Block, bool) {
	b, ok := s.blocks[name]
	return b, ok
}

func formatParamList(params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func formatBlocks(blocks []*Block) string {
	var out strings.Builder
	for _, b := range blocks {
		out.WriteString(b.String())
	}
	return out.String()
}

// Function is a subroutine that returns a value of RetType.
type Function struct {
	body
	RetType Type
}

// NewFunction creates a detached function with no blocks.
func NewFunction(name string, params []Parameter, retType Type, binding Binding) *Function {
	return &Function{body: newBody(name, params, binding), RetType: retType}
}

func (f *Function) AddBlock(b *Block) *Block { return f.body.addBlock(f, b) }

func (f *Function) String() string {
	return fmt.Sprintf("function %s %s%s(%s) {\n%s}",
		f.RetType, f.binding, f.name, formatParamList(f.params), formatBlocks(f.Blocks()))
}

// Procedure is a subroutine that returns no value.
type Procedure struct {
	body
}

// NewProcedure creates a detached procedure with no blocks.
func NewProcedure(name string, params []Parameter, binding Binding) *Procedure {
	return &Procedure{body: newBody(name, params, binding)}
}

func (p *Procedure) AddBlock(b *Block) *Block { return p.body.addBlock(p, b) }

func (p *Procedure) String() string {
	return fmt.Sprintf("procedure %s%s(%s) {\n%s}",
		p.binding, p.name, formatParamList(p.params), formatBlocks(p.Blocks()))
}

// FunctionForwardDecl declares a function's signature without a body,
// always printed with the GLOBAL `@` sigil.
type FunctionForwardDecl struct {
	Name    string
	Params  []Parameter
	RetType Type
}

func NewFunctionForwardDecl(name string, params []Parameter, retType Type) *FunctionForwardDecl {
	return &FunctionForwardDecl{Name: name, Params: params, RetType: retType}
}

func (f *FunctionForwardDecl) SubroutineName() string { return f.Name }

func (f *FunctionForwardDecl) String() string {
	return fmt.Sprintf("function %s @%s(%s)", f.RetType, f.Name, formatParamList(f.Params))
}

// ProcedureForwardDecl declares a procedure's signature without a body.
type ProcedureForwardDecl struct {
	Name   string
	Params []Parameter
}

func NewProcedureForwardDecl(name string, params []Parameter) *ProcedureForwardDecl {
	return &ProcedureForwardDecl{Name: name, Params: params}
}

func (p *ProcedureForwardDecl) SubroutineName() string { return p.Name }

func (p *ProcedureForwardDecl) String() string {
	return fmt.Sprintf("procedure @%s(%s)", p.Name, formatParamList(p.Params))
}

// SameStructure reports whether a and b have identical parameter lists and
// block bodies, ignoring name and binding — useful for tests that assert two
// independently built subroutines have the same shape.
func SameStructure(a, b Subroutine) bool {
	switch av := a.(type) {
	case *Function:
		bv, ok := b.(*Function)
		return ok && av.RetType == bv.RetType && sameParams(av.Params(), bv.Params()) && sameBlocks(av.Blocks(), bv.Blocks())
	case *Procedure:
		bv, ok := b.(*Procedure)
		return ok && sameParams(av.Params(), bv.Params()) && sameBlocks(av.Blocks(), bv.Blocks())
	default:
		return false
	}
}

func sameParams(a, b []Parameter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameBlocks(a, b []*Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}
