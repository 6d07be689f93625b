package opt

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/obround/lyn/internal/ir"
)

func TestFoldInstrAdd(t *testing.T) {
	x := ir.NewConst("x", ir.I32, "2000000000")
	y := ir.NewConst("y", ir.I32, "2000000000")
	add := ir.NewBinOp("z", ir.I32, ir.ADD, x, y)
	add.SetSSAID(5)

	folded := FoldInstr(add)
	if folded == nil {
		t.Fatalf("expected a foldable constant")
	}
	// 4000000000 wraps around a 32-bit signed range.
	if folded.Value != "-294967296" {
		t.Fatalf("got %s, want -294967296", folded.Value)
	}
	if folded.SSAID() != 5 || folded.Name() != "z" {
		t.Fatalf("expected folded const to keep name/ssa_id of original instruction")
	}
}

func TestFoldInstrUnsignedWrap(t *testing.T) {
	x := ir.NewConst("x", ir.U8, "200")
	y := ir.NewConst("y", ir.U8, "100")
	add := ir.NewBinOp("z", ir.U8, ir.ADD, x, y)

	folded := FoldInstr(add)
	if folded == nil || folded.Value != "44" {
		t.Fatalf("got %v, want 44", folded)
	}
}

func TestFoldInstrSkipsDiv(t *testing.T) {
	x := ir.NewConst("x", ir.I32, "10")
	y := ir.NewConst("y", ir.I32, "2")
	div := ir.NewBinOp("z", ir.I32, ir.DIV, x, y)

	if folded := FoldInstr(div); folded != nil {
		t.Fatalf("expected DIV to never be folded, got %v", folded)
	}
}

func TestFoldInstrSkipsNonConstOperands(t *testing.T) {
	x := ir.NewConst("x", ir.I32, "1")
	y := ir.NewBinOp("y", ir.I32, ir.ADD, x, x)
	add := ir.NewBinOp("z", ir.I32, ir.ADD, x, y)

	if folded := FoldInstr(add); folded != nil {
		t.Fatalf("expected a non-const operand to block folding, got %v", folded)
	}
}

func TestFoldInstrNegativeMod(t *testing.T) {
	x := ir.NewConst("x", ir.I32, "7")
	y := ir.NewConst("y", ir.I32, "-3")
	mod := ir.NewBinOp("z", ir.I32, ir.MOD, x, y)

	folded := FoldInstr(mod)
	if folded == nil || folded.Value != "-2" {
		t.Fatalf("got %v, want -2 (floor-mod, sign of divisor)", folded)
	}
}

func TestWrapRoundTripsWithinRange(t *testing.T) {
	f := func(raw int64) bool {
		value := big.NewInt(raw)
		wrapped := wrap(new(big.Int).Set(value), 32, true)
		return wrapped.Cmp(big.NewInt(-(1<<31))) >= 0 && wrapped.Cmp(big.NewInt(1<<31-1)) <= 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestWrapIsIdempotentOnAlreadyWrappedValues(t *testing.T) {
	f := func(raw int32) bool {
		value := big.NewInt(int64(raw))
		once := wrap(new(big.Int).Set(value), 32, true)
		twice := wrap(new(big.Int).Set(once), 32, true)
		return once.Cmp(twice) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
