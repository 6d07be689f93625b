package opt

import (
	"testing"

	"github.com/obround/lyn/internal/ir"
)

type recordingModulePass struct{ ran *bool }

func (p recordingModulePass) RunPass(m *ir.Module) { *p.ran = true }

func TestRegisterPassClassifiesByInterface(t *testing.T) {
	pm := NewPassManager()
	pm.RegisterPass(NewLVN())
	pm.RegisterPass(DIA{})

	if len(pm.blockPasses) != 2 {
		t.Fatalf("expected LVN and DIA to both classify as block passes, got %d", len(pm.blockPasses))
	}
}

func TestRegisterPassPanicsOnUnrecognizedPass(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when registering something that implements no pass interface")
		}
	}()
	NewPassManager().RegisterPass(struct{}{})
}

func TestRunPassesRunsModulePass(t *testing.T) {
	var ranModulePass bool
	pm := NewPassManager()
	pm.RegisterPass(recordingModulePass{ran: &ranModulePass})
	pm.RegisterPass(NewLVN())

	m := ir.NewModule("m")
	f := ir.NewFunction("f", nil, ir.I32, ir.GLOBAL)
	entry := ir.NewBlock("entry")
	x := ir.NewConst("x", ir.I32, "1")
	y := ir.NewConst("y", ir.I32, "2")
	add := ir.NewBinOp("z", ir.I32, ir.ADD, x, y)
	entry.AddInstr(x)
	entry.AddInstr(y)
	entry.AddInstr(add)
	entry.AddInstr(ir.NewReturn(ir.I32, add))
	f.AddBlock(entry)
	m.AddSubroutine(f)

	pm.RunPasses(m)

	if !ranModulePass {
		t.Fatalf("expected the module pass to run")
	}
}

func TestRunPassesSkipsForwardDeclarations(t *testing.T) {
	pm := NewPassManager()
	pm.RegisterPass(NewLVN())

	m := ir.NewModule("m")
	m.AddSubroutine(ir.NewFunctionForwardDecl("extern_fn", nil, ir.I32))

	// Should not panic despite the forward decl having no blocks.
	pm.RunPasses(m)
}
