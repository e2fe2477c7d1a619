package effect

// Print simplifies e and renders its canonical string form. Two
// effects print equal after Print iff they are structurally identical
// once simplified; the unifier uses this as a fast-equality
// short-circuit before attempting full structural unification.
func Print(e Effect) string {
	return Simplify(e).String()
}

// PrintVariables is Print's counterpart for Variables values.
func PrintVariables(v Variables) string {
	return SimplifyVariables(v).String()
}

// FreeEffectVars returns every Quantified name appearing in e,
// including inside nested Arrow params/result, in first-seen order.
func FreeEffectVars(e Effect) []string {
	var out []string
	seen := map[string]bool{}
	var walk func(Effect)
	walk = func(x Effect) {
		switch t := x.(type) {
		case Quantified:
			if !seen[t.Name] {
				seen[t.Name] = true
				out = append(out, t.Name)
			}
		case Arrow:
			for _, p := range t.Params {
				walk(p)
			}
			walk(t.Result)
		case Concrete:
			// Concrete effects carry entity (Variables) vars, not
			// effect vars; nothing to do here.
		}
	}
	walk(e)
	return out
}

// FreeEntityVars returns every VQuantified name appearing anywhere
// inside e — within Concrete components at any nesting depth of
// Arrow — in first-seen order.
func FreeEntityVars(e Effect) []string {
	var out []string
	seen := map[string]bool{}
	record := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	var walkVars func(Variables)
	walkVars = func(v Variables) {
		switch t := v.(type) {
		case VQuantified:
			record(t.Name)
		case VUnion:
			for _, m := range t.Members {
				walkVars(m)
			}
		}
	}
	var walk func(Effect)
	walk = func(x Effect) {
		switch t := x.(type) {
		case Concrete:
			for _, c := range t.Components {
				walkVars(c.Variables)
			}
		case Arrow:
			for _, p := range t.Params {
				walk(p)
			}
			walk(t.Result)
		}
	}
	walk(e)
	return out
}

// FreeVariablesOfVariables returns every VQuantified name appearing
// inside v itself (v is not an Effect, so it needs its own entry
// point distinct from FreeEntityVars).
func FreeVariablesOfVariables(v Variables) []string {
	var out []string
	seen := map[string]bool{}
	var walk func(Variables)
	walk = func(x Variables) {
		switch t := x.(type) {
		case VQuantified:
			if !seen[t.Name] {
				seen[t.Name] = true
				out = append(out, t.Name)
			}
		case VUnion:
			for _, m := range t.Members {
				walk(m)
			}
		}
	}
	walk(v)
	return out
}
