package ir

import "testing"

func TestConstStringForm(t *testing.T) {
	c := NewConst("x", I32, "42")
	c.SetSSAID(1)
	if got, want := c.String(), "%x.1: i32 = const 42"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBinOpUseDefSymmetry(t *testing.T) {
	x := NewConst("x", I32, "1")
	y := NewConst("y", I32, "2")
	add := NewBinOp("z", I32, ADD, x, y)

	if x.UseCount() != 1 || y.UseCount() != 1 {
		t.Fatalf("expected x and y to have exactly one user each, got %d and %d", x.UseCount(), y.UseCount())
	}
	if len(add.UsedVars()) != 2 {
		t.Fatalf("expected add to use 2 vars, got %d", len(add.UsedVars()))
	}
	if x.Users()[0] != add {
		t.Fatalf("expected add to be registered as x's user")
	}
}

func TestReplaceByRewiresAllUsers(t *testing.T) {
	x := NewConst("x", I32, "1")
	y := NewConst("y", I32, "2")
	add := NewBinOp("z", I32, ADD, x, y)
	r := NewReturn(I32, add)

	repl := NewConst("w", I32, "3")
	add.ReplaceBy(repl)

	if r.Value != repl {
		t.Fatalf("expected return's value to be rewired to repl")
	}
	if add.IsUsed() {
		t.Fatalf("expected add to have no users after ReplaceBy")
	}
	if len(add.UsedVars()) != 0 {
		t.Fatalf("expected add to have no used-vars after ReplaceBy, got %d", len(add.UsedVars()))
	}
	if x.IsUsed() || y.IsUsed() {
		t.Fatalf("expected x and y to lose add as a user")
	}
}

func TestRemoveUsedVarsPanicsOnUnregistered(t *testing.T) {
	x := NewConst("x", I32, "1")
	y := NewConst("y", I32, "2")
	add := NewBinOp("z", I32, ADD, x, y)

	other := NewConst("o", I32, "9")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when removing an unregistered used-var")
		}
	}()
	add.RemoveUsedVars(other)
}

func TestBlockAddInstrAttachesBlock(t *testing.T) {
	b := NewBlock("entry")
	c := NewConst("x", I32, "1")
	b.AddInstr(c)

	if c.Block() != b {
		t.Fatalf("expected c's block to be b")
	}
	if b.InstrCount() != 1 {
		t.Fatalf("expected block to contain 1 instruction, got %d", b.InstrCount())
	}
}

func TestBlockRemoveInstrPanicsIfUsed(t *testing.T) {
	b := NewBlock("entry")
	x := NewConst("x", I32, "1")
	y := NewConst("y", I32, "2")
	add := NewBinOp("z", I32, ADD, x, y)
	b.AddInstr(x)
	b.AddInstr(y)
	b.AddInstr(add)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when removing a still-used instruction")
		}
	}()
	b.RemoveInstr(x)
}

func TestBlockReplaceInstrDetachesOld(t *testing.T) {
	b := NewBlock("entry")
	x := NewConst("x", I32, "1")
	y := NewConst("y", I32, "2")
	add := NewBinOp("z", I32, ADD, x, y)
	b.AddInstr(x)
	b.AddInstr(y)
	b.AddInstr(add)

	repl := NewConst("w", I32, "3")
	b.ReplaceInstr(add, repl)

	if add.Block() != nil {
		t.Fatalf("expected old instruction's block to be nil after ReplaceInstr")
	}
	if repl.Block() != b {
		t.Fatalf("expected replacement's block to be b")
	}
	if b.InstrCount() != 3 {
		t.Fatalf("expected 3 instructions after replace, got %d", b.InstrCount())
	}
}

func TestBlockPredSuccSymmetry(t *testing.T) {
	a := NewBlock("a")
	bb := NewBlock("b")
	a.AddSucc(bb)

	if len(a.Succs()) != 1 || a.Succs()[0] != bb {
		t.Fatalf("expected a to have b as successor")
	}
	if len(bb.Preds()) != 1 || bb.Preds()[0] != a {
		t.Fatalf("expected b to have a as predecessor")
	}
}

func TestPhiOperandBounds(t *testing.T) {
	p := NewPhi("x")
	b := NewBlock("entry")
	v := NewConst("v", I32, "1")
	b.AddInstr(v)
	p.AddInput(v)

	if got := p.GetOperandAt(0); got != AssignmentInstruction(v) {
		t.Fatalf("expected operand 0 to be v")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range phi operand index")
		}
	}()
	p.GetOperandAt(1)
}

func TestPhiAddInputRequiresBlock(t *testing.T) {
	p := NewPhi("x")
	v := NewConst("v", I32, "1")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when adding a detached value as a phi input")
		}
	}()
	p.AddInput(v)
}

func TestGlobalConstIDsAreUniqueAcrossModule(t *testing.T) {
	m := NewModule("m")
	a := NewGlobalConst("a", I32, "1", m.NextConstID())
	b := NewGlobalConst("b", I32, "2", m.NextConstID())

	if a.ConstID == b.ConstID {
		t.Fatalf("expected distinct const ids, both got %d", a.ConstID)
	}
	if a.ConstID != 0 || b.ConstID != 1 {
		t.Fatalf("expected sequential ids starting at 0, got %d and %d", a.ConstID, b.ConstID)
	}
}

func TestFunctionDuplicateBlockPanics(t *testing.T) {
	f := NewFunction("f", nil, I32, GLOBAL)
	f.AddBlock(NewBlock("entry"))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when adding a second block with the same name")
		}
	}()
	f.AddBlock(NewBlock("entry"))
}

func TestFunctionRemoveUnknownBlockPanics(t *testing.T) {
	f := NewFunction("f", nil, I32, GLOBAL)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when removing a block that was never added")
		}
	}()
	f.RemoveBlock(NewBlock("missing"))
}

func TestModuleStringFormMatchesTextForm(t *testing.T) {
	m := NewModule("example")
	f := NewFunction("id", []Parameter{{Name: "x", Type: I32}}, I32, GLOBAL)
	entry := NewBlock("entry")
	x := NewConst("x", I32, "1")
	entry.AddInstr(x)
	entry.AddInstr(NewReturn(I32, x))
	f.AddBlock(entry)
	m.AddSubroutine(f)

	want := "module example\n\nfunction i32 @id(%x: i32) {\n.entry:\n    %x.0: i32 = const 1\n    return %x.0\n}\n"
	if got := m.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
