package subst

import (
	"fmt"

	"github.com/specterlang/effectcore/internal/effect"
)

// CyclicalBindingError is returned by BindEffect/BindEntity when the
// occurs-check fails: the name being bound appears free in the value
// it would be bound to.
type CyclicalBindingError struct {
	Name  string
	Value string
}

func (e *CyclicalBindingError) Error() string {
	return fmt.Sprintf("cyclical binding: %s occurs in %s", e.Name, e.Value)
}

// BindEffect produces the singleton substitution {name -> value} after
// an occurs-check: it refuses if name appears free in value, unless
// value is exactly Quantified{name} (binding a variable to itself is
// always fine and yields the empty substitution).
func BindEffect(name string, value effect.Effect) (Subst, error) {
	if q, ok := value.(effect.Quantified); ok && q.Name == name {
		return Empty(), nil
	}
	for _, free := range effect.FreeEffectVars(value) {
		if free == name {
			return Subst{}, &CyclicalBindingError{Name: name, Value: value.String()}
		}
	}
	return Subst{Bindings: []Binding{{Kind: EffectVar, Name: name, EffectVal: value}}}, nil
}

// BindEntity is BindEffect's counterpart for entity (variable-set)
// variables.
func BindEntity(name string, value effect.Variables) (Subst, error) {
	if q, ok := value.(effect.VQuantified); ok && q.Name == name {
		return Empty(), nil
	}
	for _, free := range effect.FreeVariablesOfVariables(value) {
		if free == name {
			return Subst{}, &CyclicalBindingError{Name: name, Value: value.String()}
		}
	}
	return Subst{Bindings: []Binding{{Kind: EntityVar, Name: name, VarsVal: value}}}, nil
}
