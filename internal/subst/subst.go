// Package subst implements the substitution algebra of the inference
// engine: ordered, named bindings over two disjoint kinds — effect
// variables and entity (variable-set) variables — with structural
// application, composition, and occurs-checked binding.
package subst

import (
	"fmt"

	"github.com/specterlang/effectcore/internal/effect"
)

// Kind distinguishes the two disjoint namespaces a binding can belong
// to. A name bound as an effect variable and a name bound as an
// entity variable never collide even if they share a string, because
// lookups are always scoped by Kind.
type Kind int

const (
	EffectVar Kind = iota
	EntityVar
)

// Binding is one entry of a Subst: a Kind-tagged name bound either to
// an Effect (EffectVar) or to a Variables (EntityVar). Exactly one of
// the two value fields is meaningful, selected by Kind.
type Binding struct {
	Kind      Kind
	Name      string
	EffectVal effect.Effect
	VarsVal   effect.Variables
}

// Subst is an ordered sequence of Bindings. Order matters only for
// Compose's "first occurrence wins" dedup rule; Apply always resolves
// a name to its fully-substituted value regardless of position.
type Subst struct {
	Bindings []Binding
}

// Empty returns the substitution with no bindings.
func Empty() Subst { return Subst{} }

// IsEmpty reports whether s has no bindings.
func (s Subst) IsEmpty() bool { return len(s.Bindings) == 0 }

func (s Subst) lookup(kind Kind, name string) (Binding, bool) {
	for _, b := range s.Bindings {
		if b.Kind == kind && b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// ApplyEffect substitutes every bound name occurring in e, resolving
// through chains of bindings (a -> b, b -> c applies "a" all the way
// to c) with cycle detection standing in for the fact that the
// occurs-check at Bind time should already have ruled cycles out.
func (s Subst) ApplyEffect(e effect.Effect) effect.Effect {
	return s.applyEffect(e, map[string]bool{})
}

func (s Subst) applyEffect(e effect.Effect, visiting map[string]bool) effect.Effect {
	switch t := e.(type) {
	case effect.Quantified:
		if visiting[t.Name] {
			return t
		}
		if b, ok := s.lookup(EffectVar, t.Name); ok {
			next := map[string]bool{t.Name: true}
			for k := range visiting {
				next[k] = true
			}
			return s.applyEffect(b.EffectVal, next)
		}
		return t
	case effect.Arrow:
		params := make([]effect.Effect, len(t.Params))
		for i, p := range t.Params {
			params[i] = s.applyEffect(p, visiting)
		}
		return effect.Arrow{Params: params, Result: s.applyEffect(t.Result, visiting)}
	case effect.Concrete:
		comps := make([]effect.EffectComponent, len(t.Components))
		for i, c := range t.Components {
			comps[i] = effect.EffectComponent{Kind: c.Kind, Variables: s.applyVariables(c.Variables, map[string]bool{})}
		}
		return effect.Concrete{Components: comps}
	default:
		return e
	}
}

// ApplyVariables is ApplyEffect's counterpart for Variables values.
func (s Subst) ApplyVariables(v effect.Variables) effect.Variables {
	return s.applyVariables(v, map[string]bool{})
}

func (s Subst) applyVariables(v effect.Variables, visiting map[string]bool) effect.Variables {
	switch t := v.(type) {
	case effect.VQuantified:
		if visiting[t.Name] {
			return t
		}
		if b, ok := s.lookup(EntityVar, t.Name); ok {
			next := map[string]bool{t.Name: true}
			for k := range visiting {
				next[k] = true
			}
			return s.applyVariables(b.VarsVal, next)
		}
		return t
	case effect.VUnion:
		members := make([]effect.Variables, len(t.Members))
		for i, m := range t.Members {
			members[i] = s.applyVariables(m, visiting)
		}
		return effect.VUnion{Members: members}
	default:
		return v
	}
}

func (b Binding) String() string {
	if b.Kind == EffectVar {
		return fmt.Sprintf("%s :: effect -> %s", b.Name, b.EffectVal.String())
	}
	return fmt.Sprintf("%s :: entity -> %s", b.Name, b.VarsVal.String())
}
