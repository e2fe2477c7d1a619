package unify

import (
	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/subst"
)

// unifyConcrete implements the Read/Update/Temporal kind-interaction
// table of spec §4.D: every cross pair of components from a and b is
// checked — same kind unifies variable-sets, compatible kinds need no
// action, a dominating kind nullifies the dominated one's variables,
// anything else fails. Kinds present on only one side are then
// nullified against the empty set.
func unifyConcrete(a, b effect.Concrete) (subst.Subst, error) {
	result := subst.Empty()

	presentA := map[effect.Kind]bool{}
	presentB := map[effect.Kind]bool{}
	for _, c := range a.Components {
		presentA[c.Kind] = true
	}
	for _, c := range b.Components {
		presentB[c.Kind] = true
	}

	for _, c1 := range a.Components {
		for _, c2 := range b.Components {
			v1 := result.ApplyVariables(c1.Variables)
			v2 := result.ApplyVariables(c2.Variables)

			var s subst.Subst
			var err error
			dominant, isDomination := dominatesPair(c1.Kind, c2.Kind)
			switch {
			case c1.Kind == c2.Kind:
				s, err = UnifyVariables(v1, v2)
			case compatible(c1.Kind, c2.Kind):
				s, err = subst.Empty(), nil
			case isDomination:
				if dominant == c1.Kind {
					s, err = UnifyVariables(v2, effect.VConcrete{})
				} else {
					s, err = UnifyVariables(v1, effect.VConcrete{})
				}
			default:
				err = kindError("incompatible effect component kinds: " + c1.Kind.String() + " vs " + c2.Kind.String())
			}
			if err != nil {
				return subst.Subst{}, err
			}
			result, err = subst.Compose(result, s)
			if err != nil {
				return subst.Subst{}, err
			}
		}
	}

	for _, k := range []effect.Kind{effect.Read, effect.Update, effect.Temporal} {
		if presentA[k] && !presentB[k] {
			s, err := nullifyKind(a, k, result)
			if err != nil {
				return subst.Subst{}, err
			}
			result, err = subst.Compose(result, s)
			if err != nil {
				return subst.Subst{}, err
			}
		}
		if presentB[k] && !presentA[k] {
			s, err := nullifyKind(b, k, result)
			if err != nil {
				return subst.Subst{}, err
			}
			result, err = subst.Compose(result, s)
			if err != nil {
				return subst.Subst{}, err
			}
		}
	}

	return result, nil
}

func nullifyKind(c effect.Concrete, k effect.Kind, applied subst.Subst) (subst.Subst, error) {
	for _, comp := range c.Components {
		if comp.Kind == k {
			return UnifyVariables(applied.ApplyVariables(comp.Variables), effect.VConcrete{})
		}
	}
	return subst.Empty(), nil
}

// compatible reports whether k1/k2 need no interaction at all: Read is
// compatible with both Update and Temporal in either order.
func compatible(k1, k2 effect.Kind) bool {
	return (k1 == effect.Read && (k2 == effect.Update || k2 == effect.Temporal)) ||
		(k2 == effect.Read && (k1 == effect.Update || k1 == effect.Temporal))
}

// dominatesPair reports whether (k1, k2) is the Update/Temporal
// domination pair, and if so which kind is dominant.
func dominatesPair(k1, k2 effect.Kind) (effect.Kind, bool) {
	if k1 == effect.Update && k2 == effect.Temporal {
		return effect.Update, true
	}
	if k1 == effect.Temporal && k2 == effect.Update {
		return effect.Update, true
	}
	return 0, false
}
