package effect

// Simplify rewrites e into canonical form: duplicate components of the
// same Kind within a Concrete are merged by unioning their variables,
// nested unions are flattened and deduplicated, empty concrete members
// are dropped, and singleton unions are unwrapped. Arrow params and
// result are simplified independently; arrow structure itself is
// never flattened.
func Simplify(e Effect) Effect {
	switch v := e.(type) {
	case Concrete:
		return simplifyConcrete(v)
	case Arrow:
		params := make([]Effect, len(v.Params))
		for i, p := range v.Params {
			params[i] = Simplify(p)
		}
		return Arrow{Params: params, Result: Simplify(v.Result)}
	case Quantified:
		return v
	default:
		return e
	}
}

func simplifyConcrete(c Concrete) Concrete {
	byKind := map[Kind][]Variables{}
	order := []Kind{}
	for _, comp := range c.Components {
		vars := SimplifyVariables(comp.Variables)
		if isEmptyVariables(vars) {
			// Still record the kind with an empty set so merging
			// with a later non-empty component of the same kind
			// works, but drop kinds that stay empty at the end.
		}
		if _, seen := byKind[comp.Kind]; !seen {
			order = append(order, comp.Kind)
		}
		byKind[comp.Kind] = append(byKind[comp.Kind], vars)
	}
	out := make([]EffectComponent, 0, len(order))
	for _, k := range order {
		merged := mergeVariables(byKind[k])
		if isEmptyVariables(merged) {
			continue
		}
		out = append(out, EffectComponent{Kind: k, Variables: merged})
	}
	return Concrete{Components: out}
}

func mergeVariables(vs []Variables) Variables {
	if len(vs) == 1 {
		return vs[0]
	}
	return SimplifyVariables(VUnion{Members: vs})
}

// SimplifyVariables flattens nested unions, deduplicates structurally
// equal members, drops empty concrete members, and unwraps singleton
// unions down to their sole member. A union collapsing to zero
// members becomes VConcrete{} (the empty set).
func SimplifyVariables(v Variables) Variables {
	flat := flattenVariables(v)
	if len(flat) == 0 {
		return VConcrete{}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return VUnion{Members: flat}
}

// flattenVariables returns the flattened, deduplicated, non-empty
// leaf members of v (VConcrete or VQuantified only — never a nested
// VUnion).
func flattenVariables(v Variables) []Variables {
	var leaves []Variables
	var walk func(Variables)
	walk = func(x Variables) {
		switch t := x.(type) {
		case VUnion:
			for _, m := range t.Members {
				walk(m)
			}
		case VConcrete:
			if len(t.Vars) > 0 {
				leaves = append(leaves, mergeConcreteDuplicates(t))
			}
		case VQuantified:
			leaves = append(leaves, t)
		}
	}
	walk(v)
	return dedupeVariables(leaves)
}

func mergeConcreteDuplicates(c VConcrete) VConcrete {
	seen := map[string]bool{}
	out := make([]StateVar, 0, len(c.Vars))
	for _, sv := range c.Vars {
		if seen[sv.Name] {
			continue
		}
		seen[sv.Name] = true
		out = append(out, sv)
	}
	return VConcrete{Vars: out}
}

func dedupeVariables(leaves []Variables) []Variables {
	// Merge all VConcrete leaves into one, keep VQuantified leaves
	// deduplicated by name, preserve first-seen order of quantified
	// names with the merged concrete set (if any) placed first.
	var concreteVars []StateVar
	seenVar := map[string]bool{}
	var quantified []Variables
	seenQ := map[string]bool{}
	for _, l := range leaves {
		switch t := l.(type) {
		case VConcrete:
			for _, sv := range t.Vars {
				if !seenVar[sv.Name] {
					seenVar[sv.Name] = true
					concreteVars = append(concreteVars, sv)
				}
			}
		case VQuantified:
			if !seenQ[t.Name] {
				seenQ[t.Name] = true
				quantified = append(quantified, t)
			}
		}
	}
	var out []Variables
	if len(concreteVars) > 0 {
		out = append(out, VConcrete{Vars: concreteVars})
	}
	out = append(out, quantified...)
	return out
}

func isEmptyVariables(v Variables) bool {
	c, ok := v.(VConcrete)
	return ok && len(c.Vars) == 0
}

// IsPure reports whether e carries no components at all, i.e. is
// concrete[] after simplification.
func IsPure(e Effect) bool {
	c, ok := Simplify(e).(Concrete)
	return ok && len(c.Components) == 0
}
