package opt

import (
	"testing"

	"github.com/obround/lyn/internal/ir"
)

func TestDIARemovesUnusedInstruction(t *testing.T) {
	b := ir.NewBlock("entry")
	x := ir.NewConst("x", ir.I32, "1")
	unused := ir.NewConst("y", ir.I32, "2")
	b.AddInstr(x)
	b.AddInstr(unused)
	b.AddInstr(ir.NewReturn(ir.I32, x))

	DIA{}.RunPass(b)

	if b.InstrCount() != 2 {
		t.Fatalf("expected the unused constant to be removed, got:\n%s", b)
	}
}

func TestDIARecursivelyFreesUsedVars(t *testing.T) {
	b := ir.NewBlock("entry")
	x := ir.NewConst("x", ir.I32, "1")
	y := ir.NewConst("y", ir.I32, "2")
	add := ir.NewBinOp("z", ir.I32, ir.ADD, x, y)
	b.AddInstr(x)
	b.AddInstr(y)
	b.AddInstr(add)
	// add has no users at all: removing it should cascade into removing x and y.

	DIA{}.RunPass(b)

	if b.InstrCount() != 0 {
		t.Fatalf("expected the whole dead chain to be removed, got:\n%s", b)
	}
}

func TestDIALeavesCallsAlone(t *testing.T) {
	b := ir.NewBlock("entry")
	call := ir.NewFunctionCall("r", ir.I32, "compute", nil)
	b.AddInstr(call)

	DIA{}.RunPass(b)

	if b.InstrCount() != 1 {
		t.Fatalf("expected an unused call to survive DIA (it may have side effects), got:\n%s", b)
	}
}
