package opt

import (
	"math/big"

	"github.com/obround/lyn/internal/ir"
)

// foldableOps lists the BinOp operations constant folding knows how to
// evaluate at compile time. DIV is deliberately excluded: integer division
// by a folded-away zero divisor would need to surface as a compile
// diagnostic rather than silently producing a folded constant, and that
// plumbing doesn't exist yet.
var foldableOps = map[ir.Op]bool{
	ir.ADD: true,
	ir.SUB: true,
	ir.MUL: true,
	ir.MOD: true,
	ir.LSH: true,
	ir.RSH: true,
}

// floorMod computes x mod y using floor-division semantics (result takes
// the sign of y), matching the language's own `%` operator. math/big's
// native Mod is Euclidean and only agrees with floor-mod when y is
// positive, which holds for wrap's own use (y is always a power of two) but
// not in general for a MOD instruction's two operands.
func floorMod(x, y *big.Int) *big.Int {
	m := new(big.Int).Mod(x, y)
	if m.Sign() != 0 && y.Sign() < 0 {
		m.Add(m, y)
	}
	return m
}

// wrap reduces value to its representation in a fixed-width integer of the
// given bit width, reinterpreting the top half of the range as negative
// when signed is true.
func wrap(value *big.Int, bits int, signed bool) *big.Int {
	base := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	v := floorMod(value, base)
	if signed && v.BitLen() == bits {
		v.Sub(v, base)
	}
	return v
}

func evalOp(op ir.Op, x, y *big.Int) (*big.Int, bool) {
	switch op {
	case ir.ADD:
		return new(big.Int).Add(x, y), true
	case ir.SUB:
		return new(big.Int).Sub(x, y), true
	case ir.MUL:
		return new(big.Int).Mul(x, y), true
	case ir.MOD:
		if y.Sign() == 0 {
			return nil, false
		}
		return floorMod(x, y), true
	case ir.LSH:
		if y.Sign() < 0 {
			return nil, false
		}
		return new(big.Int).Lsh(x, uint(y.Uint64())), true
	case ir.RSH:
		if y.Sign() < 0 {
			return nil, false
		}
		return new(big.Int).Rsh(x, uint(y.Uint64())), true
	default:
		return nil, false
	}
}

// FoldInstr attempts to constant-fold instr into an equivalent Const,
// returning nil if instr isn't a foldable BinOp over two concrete-width
// constants. The returned Const carries instr's own name and ssa_id so a
// caller can swap it in via Block.ReplaceInstr without renumbering anything
// downstream.
func FoldInstr(instr ir.Instruction) *ir.Const {
	bo, ok := instr.(*ir.BinOp)
	if !ok || !foldableOps[bo.Op] {
		return nil
	}
	x, ok := bo.X.(*ir.Const)
	if !ok || x.InstrType().Bits() == 0 {
		return nil
	}
	y, ok := bo.Y.(*ir.Const)
	if !ok || y.InstrType().Bits() == 0 {
		return nil
	}

	xi, ok := new(big.Int).SetString(x.Value, 10)
	if !ok {
		return nil
	}
	yi, ok := new(big.Int).SetString(y.Value, 10)
	if !ok {
		return nil
	}

	result, ok := evalOp(bo.Op, xi, yi)
	if !ok {
		return nil
	}
	result = wrap(result, bo.InstrType().Bits(), bo.InstrType().IsSigned())

	folded := ir.NewConst(bo.Name(), bo.InstrType(), result.String())
	folded.SetSSAID(bo.SSAID())
	return folded
}
