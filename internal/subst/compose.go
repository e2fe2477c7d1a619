package subst

import (
	"fmt"

	"github.com/specterlang/effectcore/internal/effect"
)

// InconsistentBindingError is returned by Compose when s1 and s2
// disagree on the value bound to the same (kind, name).
type InconsistentBindingError struct {
	Name string
	A, B string
}

func (e *InconsistentBindingError) Error() string {
	return fmt.Sprintf("inconsistent binding for %s: %s vs %s", e.Name, e.A, e.B)
}

type bindKey struct {
	kind Kind
	name string
}

// Compose applies s1 to every value bound in s2, then concatenates s1
// with the result, deduplicating by (kind, name) with first occurrence
// (i.e. s1's binding) winning. It fails if the two substitutions
// disagree on the value for the same name.
func Compose(s1, s2 Subst) (Subst, error) {
	s2applied := make([]Binding, len(s2.Bindings))
	for i, b := range s2.Bindings {
		nb := b
		if b.Kind == EffectVar {
			nb.EffectVal = s1.ApplyEffect(b.EffectVal)
		} else {
			nb.VarsVal = s1.ApplyVariables(b.VarsVal)
		}
		s2applied[i] = nb
	}

	combined := make([]Binding, 0, len(s1.Bindings)+len(s2applied))
	combined = append(combined, s1.Bindings...)
	combined = append(combined, s2applied...)

	seen := map[bindKey]Binding{}
	out := make([]Binding, 0, len(combined))
	for _, b := range combined {
		key := bindKey{b.kindOf(), b.Name}
		if prev, ok := seen[key]; ok {
			if !bindingValuesEqual(prev, b) {
				return Subst{}, &InconsistentBindingError{Name: b.Name, A: prev.String(), B: b.String()}
			}
			continue
		}
		seen[key] = b
		out = append(out, b)
	}
	return Subst{Bindings: out}, nil
}

func (b Binding) kindOf() Kind { return b.Kind }

func bindingValuesEqual(a, b Binding) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == EffectVar {
		return effect.Print(a.EffectVal) == effect.Print(b.EffectVal)
	}
	return effect.PrintVariables(a.VarsVal) == effect.PrintVariables(b.VarsVal)
}
