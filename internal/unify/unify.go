// Package unify implements structural unification of effects (arrows
// and concrete component sets) and of variable-sets, following the
// Read/Update/Temporal compatibility table and the hashed-variable
// arrow-fixpoint canonicalization that makes unary arrows of
// differing parameter arity unifiable.
package unify

import (
	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/subst"
)

// Unify computes a most-general substitution making e1 and e2 equal,
// or an error. Both inputs are simplified first; if their canonical
// printed forms already agree, the empty substitution is returned
// immediately without any structural work.
func Unify(e1, e2 effect.Effect) (subst.Subst, error) {
	a := effect.Simplify(e1)
	b := effect.Simplify(e2)

	if effect.Print(a) == effect.Print(b) {
		return subst.Empty(), nil
	}

	if x, ok := a.(effect.Quantified); ok {
		return subst.BindEffect(x.Name, b)
	}
	if y, ok := b.(effect.Quantified); ok {
		return subst.BindEffect(y.Name, a)
	}

	switch x := a.(type) {
	case effect.Arrow:
		y, ok := b.(effect.Arrow)
		if !ok {
			return subst.Subst{}, kindError("can't unify different kinds of effects")
		}
		return unifyArrows(x, y)
	case effect.Concrete:
		y, ok := b.(effect.Concrete)
		if !ok {
			return subst.Subst{}, kindError("can't unify different kinds of effects")
		}
		return unifyConcrete(x, y)
	default:
		return subst.Subst{}, kindError("can't unify different kinds of effects")
	}
}

func unifyArrows(a, b effect.Arrow) (subst.Subst, error) {
	p1, p2, err := reconcileArity(a.Params, b.Params)
	if err != nil {
		return subst.Subst{}, err
	}

	result := subst.Empty()

	// Arrow-fixpoint canonicalization: only meaningful for unary
	// arrows whose single parameter already equals the result once
	// simplified and concrete. Apply to each side independently.
	p1, r1, s1 := canonicalizeUnary(p1, a.Result)
	p2, r2, s2 := canonicalizeUnary(p2, b.Result)
	result, err = subst.Compose(result, s1)
	if err != nil {
		return subst.Subst{}, err
	}
	result, err = subst.Compose(result, s2)
	if err != nil {
		return subst.Subst{}, err
	}

	for i := range p1 {
		s, err := Unify(result.ApplyEffect(p1[i]), result.ApplyEffect(p2[i]))
		if err != nil {
			return subst.Subst{}, err
		}
		result, err = subst.Compose(result, s)
		if err != nil {
			return subst.Subst{}, err
		}
	}

	s, err := Unify(result.ApplyEffect(r1), result.ApplyEffect(r2))
	if err != nil {
		return subst.Subst{}, err
	}
	result, err = subst.Compose(result, s)
	if err != nil {
		return subst.Subst{}, err
	}
	return result, nil
}

// reconcileArity equalizes differing-length parameter lists via tuple
// unpacking (spec §4.D): it only succeeds if the shorter list has
// exactly one, concrete element; the longer list's components are
// then combined by kind into unions, producing a single concrete
// effect that stands in for the missing parameters.
func reconcileArity(p1, p2 []effect.Effect) ([]effect.Effect, []effect.Effect, error) {
	if len(p1) == len(p2) {
		return p1, p2, nil
	}
	shorter, longer := p1, p2
	shorterIsFirst := true
	if len(p2) < len(p1) {
		shorter, longer = p2, p1
		shorterIsFirst = false
	}
	if len(shorter) != 1 {
		return nil, nil, arityError(len(longer), len(shorter))
	}
	sc, ok := effect.Simplify(shorter[0]).(effect.Concrete)
	if !ok {
		return nil, nil, arityError(len(longer), len(shorter))
	}
	combined, err := combineByKind(longer)
	if err != nil {
		return nil, nil, err
	}
	if shorterIsFirst {
		return []effect.Effect{sc}, []effect.Effect{combined}, nil
	}
	return []effect.Effect{combined}, []effect.Effect{sc}, nil
}

func combineByKind(effs []effect.Effect) (effect.Concrete, error) {
	byKind := map[effect.Kind][]effect.Variables{}
	var order []effect.Kind
	for _, e := range effs {
		c, ok := effect.Simplify(e).(effect.Concrete)
		if !ok {
			return effect.Concrete{}, arityError(len(effs), 1)
		}
		for _, comp := range c.Components {
			if _, seen := byKind[comp.Kind]; !seen {
				order = append(order, comp.Kind)
			}
			byKind[comp.Kind] = append(byKind[comp.Kind], comp.Variables)
		}
	}
	comps := make([]effect.EffectComponent, 0, len(order))
	for _, k := range order {
		comps = append(comps, effect.EffectComponent{Kind: k, Variables: effect.SimplifyVariables(effect.VUnion{Members: byKind[k]})})
	}
	return effect.Concrete{Components: comps}, nil
}
