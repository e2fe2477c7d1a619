package unify

import (
	"sort"
	"strings"

	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/subst"
)

// UnifyVariables computes a most-general substitution making v1 and v2
// denote the same set of state variables, per the rules of spec §4.D:
// both are flattened first; concrete × concrete requires the same
// names; quantified × anything binds after occurs-check; union ×
// concrete distributes; union × union (once neither side collapsed to
// a single member) is a deliberate, explicit failure.
func UnifyVariables(v1, v2 effect.Variables) (subst.Subst, error) {
	v1 = effect.SimplifyVariables(v1)
	v2 = effect.SimplifyVariables(v2)

	if effect.PrintVariables(v1) == effect.PrintVariables(v2) {
		return subst.Empty(), nil
	}

	switch a := v1.(type) {
	case effect.VQuantified:
		return subst.BindEntity(a.Name, v2)
	case effect.VConcrete:
		switch b := v2.(type) {
		case effect.VQuantified:
			return subst.BindEntity(b.Name, v1)
		case effect.VConcrete:
			return unifyConcreteVars(a, b)
		case effect.VUnion:
			return unifyUnionWithConcrete(b, a)
		}
	case effect.VUnion:
		switch b := v2.(type) {
		case effect.VQuantified:
			return subst.BindEntity(b.Name, v1)
		case effect.VConcrete:
			return unifyUnionWithConcrete(a, b)
		case effect.VUnion:
			return subst.Subst{}, unionOfUnionsError()
		}
	}
	return subst.Subst{}, unionOfUnionsError()
}

func unifyConcreteVars(a, b effect.VConcrete) (subst.Subst, error) {
	namesA := stateVarNames(a)
	namesB := stateVarNames(b)
	if namesA == namesB {
		return subst.Empty(), nil
	}
	return subst.Subst{}, variableDisagreementError(strings.Join(sortedKeys(a), ","), strings.Join(sortedKeys(b), ","))
}

func stateVarNames(c effect.VConcrete) string {
	return strings.Join(sortedKeys(c), ",")
}

func sortedKeys(c effect.VConcrete) []string {
	names := make([]string, len(c.Vars))
	for i, sv := range c.Vars {
		names[i] = sv.Name
	}
	sort.Strings(names)
	return names
}

// unifyUnionWithConcrete unifies every member of a union against a
// single concrete variable-set, concatenating the resulting
// substitutions (per spec: "unify each member of the union with the
// concrete; concatenate substitutions").
func unifyUnionWithConcrete(union effect.VUnion, concrete effect.VConcrete) (subst.Subst, error) {
	result := subst.Empty()
	for _, member := range union.Members {
		s, err := UnifyVariables(member, concrete)
		if err != nil {
			return subst.Subst{}, err
		}
		composed, err := subst.Compose(result, s)
		if err != nil {
			return subst.Subst{}, err
		}
		result = composed
	}
	return result, nil
}
