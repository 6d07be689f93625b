package opt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/obround/lyn/internal/ir"
)

// Value is the fingerprint local value numbering hash-conses instructions
// by: two instructions with equal Values compute the same result and one
// can be rewritten as a cheap copy of the other.
//
// The original implementation built this as a (opcode_name, instr_type,
// *params) tuple, relying on Python tuples being hashable regardless of
// what's inside them. Go slices can't be map keys, and a struct holding an
// ir.Type plus a []string operand list wouldn't be comparable either once
// you account for needing order-independent equality on commutative
// operators — so instead of a tuple, this folds the same three fields into
// one canonical string and uses that as the map key.
type Value struct {
	key string
}

// NewValue builds a fingerprint from an instruction's opcode, result type,
// and already-resolved operand strings (see lvn.go for how operands are
// turned into strings). When isCommutative is true the operand strings are
// sorted before joining, so `add a b` and `add b a` collide.
//
// The original constructor took its parameters in a different order than
// its call site passed them — `Value(opcode_name, is_commutative,
// instr_type, params)` defined, but `Value(opcode_name, instr_type,
// is_commutative_bool, params)` called — which silently stored the
// commutativity flag as `instr_type` and a `Type` enum member (always
// truthy) as the commutativity flag, so sorting ran unconditionally and the
// type was never actually compared. This constructor uses one order and
// the call site in lvn.go matches it.
func NewValue(opcodeName string, instrType ir.Type, isCommutative bool, params []string) Value {
	ps := append([]string(nil), params...)
	if isCommutative {
		sort.Strings(ps)
	}
	return Value{key: fmt.Sprintf("%s|%s|%s", opcodeName, instrType, strings.Join(ps, ","))}
}
