// Package effect defines the effect algebra that is the central data
// model of the inference engine: Effect, its Read/Update/Temporal
// components, the Variables (state-variable-set) sub-algebra, and the
// universally-quantified EffectScheme storage form. It also owns
// simplification and canonical printing (normalizing unions, merging
// duplicate components, and producing the stable string form the
// unifier uses as a fast-equality short-circuit).
//
// Substitution and unification are separate packages (internal/subst,
// internal/unify) that operate on the types defined here; this package
// has no notion of binding or unification itself.
package effect

import (
	"sort"
	"strings"
)

// Kind distinguishes the three ways an expression can interact with
// mutable state.
type Kind int

const (
	Read Kind = iota
	Update
	Temporal
)

func (k Kind) String() string {
	switch k {
	case Read:
		return "Read"
	case Update:
		return "Update"
	case Temporal:
		return "Temporal"
	default:
		return "kind?"
	}
}

// order fixes the canonical printing order of component kinds.
func (k Kind) order() int { return int(k) }

// StateVar is a mutable module-level name. Two state variables compare
// equal iff their Name fields are equal; RefID exists purely for
// diagnostics (e.g. printing "declared at <location>") and never
// participates in equality.
type StateVar struct {
	Name  string
	RefID int
}

// Effect is a tagged variant: Concrete, Arrow, or Quantified.
type Effect interface {
	String() string
	isEffect()
}

// Concrete is a finite set of components, at most one per Kind once
// simplified.
type Concrete struct {
	Components []EffectComponent
}

// Arrow is the effect of an operator or lambda: Params are the
// effects its arguments must unify against, Result is the effect of
// its body/application.
type Arrow struct {
	Params []Effect
	Result Effect
}

// Quantified is an as-yet-unbound effect-level variable, to be
// replaced by substitution.
type Quantified struct {
	Name string
}

func (Concrete) isEffect()   {}
func (Arrow) isEffect()      {}
func (Quantified) isEffect() {}

// EffectComponent pairs a Kind with the Variables it ranges over.
type EffectComponent struct {
	Kind      Kind
	Variables Variables
}

// Variables is a tagged variant over state-variable sets: VConcrete,
// VQuantified, or VUnion.
type Variables interface {
	String() string
	isVariables()
}

// VConcrete is an explicit, finite set of state variables.
type VConcrete struct {
	Vars []StateVar
}

// VQuantified stands for an as-yet-unbound set of state variables.
type VQuantified struct {
	Name string
}

// VUnion is a not-yet-collapsed union of variable sets; Simplify
// flattens and deduplicates it.
type VUnion struct {
	Members []Variables
}

func (VConcrete) isVariables()   {}
func (VQuantified) isVariables() {}
func (VUnion) isVariables()      {}

// EffectScheme is the storage form the inferrer records per
// expression id: a universally-quantified Effect together with the
// two disjoint sets of names it quantifies over.
type EffectScheme struct {
	EffectVars map[string]struct{}
	EntityVars map[string]struct{}
	Effect     Effect
}

// NewScheme returns a monomorphic scheme (both quantifier sets empty).
func NewScheme(e Effect) EffectScheme {
	return EffectScheme{EffectVars: map[string]struct{}{}, EntityVars: map[string]struct{}{}, Effect: e}
}

// Pure is the effect of anything that touches no state: concrete[].
func Pure() Effect { return Concrete{} }

// ---- printing ----

// String renders e in the canonical form used as a fast-equality
// short-circuit by the unifier: component kinds in Read, Update,
// Temporal order; variable names sorted, state-vars before quantified
// names.
func (e Concrete) String() string {
	comps := make([]EffectComponent, len(e.Components))
	copy(comps, e.Components)
	sort.SliceStable(comps, func(i, j int) bool { return comps[i].Kind.order() < comps[j].Kind.order() })
	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = c.Kind.String() + "[" + c.Variables.String() + "]"
	}
	return "concrete(" + strings.Join(parts, ", ") + ")"
}

func (e Arrow) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + e.Result.String()
}

func (e Quantified) String() string { return "?" + e.Name }

func (v VConcrete) String() string {
	names := make([]string, len(v.Vars))
	for i, sv := range v.Vars {
		names[i] = sv.Name
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

func (v VQuantified) String() string { return "?" + v.Name }

func (v VUnion) String() string {
	names := make([]string, 0, len(v.Members))
	for _, m := range v.Members {
		names = append(names, m.String())
	}
	sort.Slice(names, func(i, j int) bool {
		qi, qj := strings.HasPrefix(names[i], "?"), strings.HasPrefix(names[j], "?")
		if qi != qj {
			return !qi
		}
		return names[i] < names[j]
	})
	return "union(" + strings.Join(names, "|") + ")"
}
