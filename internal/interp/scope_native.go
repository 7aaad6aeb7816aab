package interp

import (
	"fmt"

	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// ScopeValue is the reflective wrapper returned by the `scope()`
// expression. Prop reads map to variable lookup and prop writes
// install unconditionally, so user code can inspect and extend a
// scope as if it were an object.
type ScopeValue struct {
	scope *Scope
}

// NewScopeValue wraps a scope as a first-class value.
func NewScopeValue(sc *Scope) *ScopeValue {
	return &ScopeValue{scope: sc}
}

// ScopeOf unwraps a reflective scope value.
func ScopeOf(v Value) (*Scope, bool) {
	if sv, ok := v.(*ScopeValue); ok {
		return sv.scope, true
	}
	return nil, false
}

// Type returns "Scope".
func (*ScopeValue) Type() string { return "Scope" }

// String identifies the scope by its identity token.
func (s *ScopeValue) String() string { return fmt.Sprintf("Scope(%d)", s.scope.uid) }

// UID returns the wrapped scope's identity token.
func (s *ScopeValue) UID() uint64 { return s.scope.uid }

// NativeType returns the Scope type singleton.
func (*ScopeValue) NativeType() Value { return ScopeType }

// GetProp resolves a variable through the wrapped scope's chain.
func (s *ScopeValue) GetProp(id ident.Ident) (Value, error) {
	return s.scope.Get(id)
}

// SetProp installs a variable in the wrapped scope.
func (s *ScopeValue) SetProp(id ident.Ident, v Value) error {
	s.scope.LetSet(id, v)
	return nil
}
