package ir

import (
	"fmt"
	"strings"
)

// Module is the top-level compilation unit: an ordered collection of
// subroutines (bodies and forward declarations) sharing one global constant
// ID counter.
//
// The counter is owned here, not on GlobalConst itself, fixing a bug in the
// original source where each GlobalConst kept its own shadowed counter
// starting at zero — every global constant ended up with ID 0 regardless of
// how many had already been created.
type Module struct {
	Name string

	order        []string
	subroutines  map[string]Subroutine
	constCounter int
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name, subroutines: map[string]Subroutine{}}
}

// NextConstID returns a fresh, module-wide unique constant ID, intended for
// use as GlobalConst's ConstID argument.
func (m *Module) NextConstID() int {
	id := m.constCounter
	m.constCounter++
	return id
}

// AddSubroutine registers a subroutine under its own name. Redeclaring an
// existing name panics.
func (m *Module) AddSubroutine(s Subroutine) Subroutine {
	name := s.SubroutineName()
	if _, exists := m.subroutines[name]; exists {
		panic(fmt.Sprintf("lyn/ir: redefinition of subroutine `%s`", name))
	}
	m.subroutines[name] = s
	m.order = append(m.order, name)
	return s
}

// RemoveSubroutine removes a previously registered subroutine by name.
func (m *Module) RemoveSubroutine(name string) {
	if _, exists := m.subroutines[name]; !exists {
		panic(fmt.Sprintf("lyn/ir: subroutine %s does not exist", name))
	}
	delete(m.subroutines, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Subroutine looks up a registered subroutine by name.
func (m *Module) Subroutine(name string) (Subroutine, bool) {
	s, ok := m.subroutines[name]
	return s, ok
}

// Subroutines returns every registered subroutine, in registration order.
func (m *Module) Subroutines() []Subroutine {
	out := make([]Subroutine, len(m.order))
	for i, name := range m.order {
		out[i] = m.subroutines[name]
	}
	return out
}

// Functions returns only the Function-bodied subroutines, in registration
// order, skipping forward declarations and procedures.
func (m *Module) Functions() []*Function {
	var out []*Function
	for _, name := range m.order {
		if f, ok := m.subroutines[name].(*Function); ok {
			out = append(out, f)
		}
	}
	return out
}

// Procedures returns only the Procedure-bodied subroutines, in registration
// order.
func (m *Module) Procedures() []*Procedure {
	var out []*Procedure
	for _, name := range m.order {
		if p, ok := m.subroutines[name].(*Procedure); ok {
			out = append(out, p)
		}
	}
	return out
}

func (m *Module) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "module %s\n", m.Name)
	for _, name := range m.order {
		out.WriteString("\n")
		out.WriteString(m.subroutines[name].String())
		out.WriteString("\n")
	}
	return out.String()
}
