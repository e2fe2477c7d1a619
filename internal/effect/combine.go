package effect

import "fmt"

// Combine merges a list of effects into a single effect by unioning
// their components kind-wise. concrete[] is the combine identity:
// folding it into anything leaves the other operand untouched. It is
// the building block the inferrer's structural (propagating) built-in
// operators use: "this expression's effect is whatever its children's
// effects are, combined." (The unifier's tuple-unpacking step does its
// own kind-wise merge, combineByKind in internal/unify.)
//
// Any operand that doesn't simplify to Concrete (most commonly a
// still-unbound parameter's Quantified effect variable) is kept out of
// the kind-wise merge. When exactly one such operand is
// present and every other operand is the identity concrete[] — spec.md
// S5's `def f(x) = x + 1`, where `1` contributes nothing — Combine
// returns that operand exactly as-is, so the quantified effect
// variable survives instead of collapsing to concrete[]. Effect has no
// "union of unresolved effects" variant (unlike Variables' VUnion), so
// two or more simultaneously-unresolved operands with nothing concrete
// to merge them against can't be folded into a single value; Combine
// reports that case as an error rather than guessing, mirroring the
// unifier's own documented "union of two unions not supported"
// restriction. An unresolved operand alongside a non-empty concrete
// residue (e.g. assign's own Update component next to an unresolved
// parameter passed as the value) still resolves to the concrete
// residue, the same as before this function started preserving lone
// unresolved operands — that combination has no representation in this
// algebra either, and is the one case callers must still treat as a
// known approximation (see DESIGN.md).
func Combine(effs []Effect) (Effect, error) {
	byKind := map[Kind][]Variables{}
	var order []Kind
	var unresolved []Effect
	for _, e := range effs {
		s := Simplify(e)
		c, ok := s.(Concrete)
		if !ok {
			unresolved = append(unresolved, s)
			continue
		}
		for _, comp := range c.Components {
			if _, seen := byKind[comp.Kind]; !seen {
				order = append(order, comp.Kind)
			}
			byKind[comp.Kind] = append(byKind[comp.Kind], comp.Variables)
		}
	}
	comps := make([]EffectComponent, 0, len(order))
	for _, k := range order {
		comps = append(comps, EffectComponent{Kind: k, Variables: SimplifyVariables(VUnion{Members: byKind[k]})})
	}
	merged := Concrete{Components: comps}

	if len(unresolved) == 0 || len(comps) > 0 {
		return merged, nil
	}
	if len(unresolved) == 1 {
		return unresolved[0], nil
	}
	return nil, fmt.Errorf("can't combine %d simultaneously unresolved effects with no concrete effect between them to anchor them", len(unresolved))
}
