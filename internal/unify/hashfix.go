package unify

import (
	"sort"
	"strings"

	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/subst"
)

// canonicalizeUnary implements the hashed-variable arrow-fixpoint
// trick (spec §4.D, §9): when an arrow is unary and its single
// parameter prints equal to its result and is concrete, every
// component's quantified variable names are replaced by one
// synthetic "hash" variable named by joining the originals with "#",
// and a binding from each original name to that hash variable is
// recorded. This is what lets a unary (Read[a,b]) -> Read[a,b] later
// unify with (Read[c]) -> Read[c]: both sides ultimately bind their
// quantified names to a common point.
//
// params/result are returned unchanged, together with the empty
// substitution, whenever the precondition does not hold — this is not
// an optimization to skip, it is required for correctness on the
// general (non-fixpoint) case.
func canonicalizeUnary(params []effect.Effect, result effect.Effect) ([]effect.Effect, effect.Effect, subst.Subst) {
	if len(params) != 1 {
		return params, result, subst.Empty()
	}
	p := effect.Simplify(params[0])
	r := effect.Simplify(result)
	if effect.Print(p) != effect.Print(r) {
		return params, result, subst.Empty()
	}
	pc, ok := p.(effect.Concrete)
	if !ok {
		return params, result, subst.Empty()
	}

	hashed, bindings := hashConcrete(pc)
	if len(bindings.Bindings) == 0 {
		return params, result, subst.Empty()
	}
	return []effect.Effect{hashed}, hashed, bindings
}

func hashConcrete(c effect.Concrete) (effect.Concrete, subst.Subst) {
	bindings := subst.Empty()
	comps := make([]effect.EffectComponent, len(c.Components))
	for i, comp := range c.Components {
		names := effect.FreeVariablesOfVariables(comp.Variables)
		if len(names) == 0 {
			comps[i] = comp
			continue
		}
		sorted := append([]string(nil), names...)
		sort.Strings(sorted)
		hashName := strings.Join(sorted, "#")
		for _, n := range sorted {
			b, err := subst.BindEntity(n, effect.VQuantified{Name: hashName})
			if err != nil {
				// Self-binding (n == hashName for a singleton) never
				// fails the occurs-check; any other failure here
				// would mean the precondition above was violated.
				continue
			}
			composed, err := subst.Compose(bindings, b)
			if err == nil {
				bindings = composed
			}
		}
		comps[i] = effect.EffectComponent{Kind: comp.Kind, Variables: effect.VQuantified{Name: hashName}}
	}
	return effect.Concrete{Components: comps}, bindings
}
