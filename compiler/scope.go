package compiler

// Type tags the value held by a variable's register. The language has a
// single integer type, so every binding is TypeInt.
type Type uint8

const (
	TypeInt Type = 1
)

// Binding is the register a variable lives in.
type Binding struct {
	Type     Type
	Register uint8
}

// Scope maps variable names to registers. Scopes are persistent: With
// returns an extended scope and never modifies the receiver, so a binding
// made in a let block or parameter list cannot leak into the enclosing
// scope. The nil *Scope is the empty scope.
type Scope struct {
	parent  *Scope
	name    string
	binding Binding
}

// With returns a scope in which name is bound to register, shadowing any
// outer binding of the same name.
func (s *Scope) With(name string, register uint8) *Scope {
	return &Scope{
		parent:  s,
		name:    name,
		binding: Binding{Type: TypeInt, Register: register},
	}
}

// Lookup returns the innermost binding of name.
func (s *Scope) Lookup(name string) (Binding, bool) {
	for curr := s; curr != nil; curr = curr.parent {
		if curr.name == name {
			return curr.binding, true
		}
	}
	return Binding{}, false
}

// IsDefined returns true if name is bound in this scope.
func (s *Scope) IsDefined(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Names returns the visible variable names, innermost first. Shadowed
// bindings are not included.
func (s *Scope) Names() []string {
	var names []string
	seen := map[string]bool{}
	for curr := s; curr != nil; curr = curr.parent {
		if seen[curr.name] {
			continue
		}
		seen[curr.name] = true
		names = append(names, curr.name)
	}
	return names
}

// Len returns the number of visible variables.
func (s *Scope) Len() int {
	return len(s.Names())
}
