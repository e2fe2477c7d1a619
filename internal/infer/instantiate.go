package infer

import (
	"sort"

	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/subst"
)

// instantiate replaces every name in scheme's two quantifier sets with
// a fresh variable of the matching kind, then applies that renaming
// substitution to scheme's Effect: a universally-quantified scheme
// becomes one concrete instance, usable at a single call or name-ref
// site without entangling it with any other use of the same
// definition.
//
// The quantifier sets are Go maps, whose iteration order is not
// itself stable; names are sorted before fresh variables are minted
// for them so that two runs over identical input always pair the same
// original name with the same fresh name, which the Determinism
// requirement depends on.
func (r *Run) instantiate(s effect.EffectScheme) effect.Effect {
	if len(s.EffectVars) == 0 && len(s.EntityVars) == 0 {
		return s.Effect
	}
	bindings := make([]subst.Binding, 0, len(s.EffectVars)+len(s.EntityVars))
	for _, name := range sortedNames(s.EffectVars) {
		bindings = append(bindings, subst.Binding{
			Kind:      subst.EffectVar,
			Name:      name,
			EffectVal: effect.Quantified{Name: r.fresh.nextEffectVar()},
		})
	}
	for _, name := range sortedNames(s.EntityVars) {
		bindings = append(bindings, subst.Binding{
			Kind:    subst.EntityVar,
			Name:    name,
			VarsVal: effect.VQuantified{Name: r.fresh.nextEntityVar()},
		})
	}
	rename := subst.Subst{Bindings: bindings}
	return rename.ApplyEffect(s.Effect)
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
