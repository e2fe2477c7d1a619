package infer

import (
	"fmt"

	"github.com/specterlang/effectcore/internal/builtin"
	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/ir"
	"github.com/specterlang/effectcore/internal/unify"
)

// inferApply infers an operator application. Its own six-step
// contract (instantiate each argument's scheme, build the actual
// arrow this call site presents, fetch a signature, unify, compose,
// record) only literally runs for a resolved user-defined operator or
// a parameter/placeholder call — the built-in table's Propagate,
// StateAccess and Iterator shapes compute their result directly by
// combining argument effects (see inferBuiltinApply) rather than
// through a generic arrow template, because the Effect algebra has no
// literal "union of N arguments' effects" arrow shape to unify
// against without turning every multi-argument propagate operator
// into an accidental equality constraint between its arguments (see
// DESIGN.md).
func (r *Run) inferApply(n *ir.Apply) (effect.Effect, bool) {
	argEffects := make([]effect.Effect, len(n.Args))
	anyChildFailed := false
	for i, a := range n.Args {
		e, ok := r.inferExpr(a, n.Scope)
		if !ok {
			anyChildFailed = true
			continue
		}
		argEffects[i] = e
	}
	if anyChildFailed {
		return nil, false
	}

	if n.Op == "_" {
		fresh := effect.Quantified{Name: r.fresh.nextEffectVar()}
		return r.unifyApply(n, argEffects, fresh)
	}

	if entry, ok := builtin.Lookup(n.Op); ok {
		return r.inferBuiltinApply(n, entry, argEffects)
	}

	lr := r.lookup.Lookup(n.Op, n.Scope)
	if !lr.Found {
		r.fail(n.ID, fmt.Sprintf("couldn't find %s in the lookup table", n.Op))
		return nil, false
	}

	var signature effect.Effect
	switch lr.Kind {
	case ir.BindParam:
		// The signature of a parameter-bound function value is simply
		// its own quantified effect variable; unifying an Arrow
		// against a bare Quantified binds the whole call shape to it.
		signature = effect.Quantified{Name: paramVarName(n.Op, lr.DefID)}
	case ir.BindVal, ir.BindDef:
		scheme, ok := r.results[lr.DefID]
		if !ok {
			r.fail(n.ID, fmt.Sprintf("%s's effect has not been inferred yet", n.Op))
			return nil, false
		}
		signature = r.instantiate(scheme)
	default:
		r.fail(n.ID, fmt.Sprintf("%s is not an operator", n.Op))
		return nil, false
	}
	return r.unifyApply(n, argEffects, signature)
}

// unifyApply builds this call site's actual arrow shape — argument
// effects as parameters, a fresh result variable — and unifies it
// against signature.
func (r *Run) unifyApply(n *ir.Apply, argEffects []effect.Effect, signature effect.Effect) (effect.Effect, bool) {
	resultVar := effect.Quantified{Name: r.fresh.nextEffectVar()}
	actual := effect.Arrow{Params: argEffects, Result: resultVar}
	s, err := unify.Unify(actual, signature)
	if err != nil {
		r.failUnify(n.ID, err)
		return nil, false
	}
	if err := r.compose(s); err != nil {
		r.failUnify(n.ID, err)
		return nil, false
	}
	result := r.sub.ApplyEffect(resultVar)
	r.refineArgResults(n.Args)
	r.results[n.ID] = effect.NewScheme(result)
	return result, true
}

// refineArgResults re-applies the run's substitution (just grown by
// the unification above) to every argument's already-recorded scheme,
// so a later read of that id reflects what was actually learned about
// it here rather than the pre-unification snapshot.
func (r *Run) refineArgResults(args []ir.Expr) {
	for _, a := range args {
		if scheme, ok := r.results[a.ExprID()]; ok {
			scheme.Effect = r.sub.ApplyEffect(scheme.Effect)
			r.results[a.ExprID()] = scheme
		}
	}
}

func (r *Run) inferBuiltinApply(n *ir.Apply, entry builtin.Entry, argEffects []effect.Effect) (effect.Effect, bool) {
	if len(argEffects) < entry.MinArity || (entry.MaxArity >= 0 && len(argEffects) > entry.MaxArity) {
		r.fail(n.ID, fmt.Sprintf("%s expects between %d and %d arguments, got %d", n.Op, entry.MinArity, entry.MaxArity, len(argEffects)))
		return nil, false
	}
	switch entry.Shape {
	case builtin.StateAccess:
		return r.inferAssign(n, argEffects)
	case builtin.Iterator:
		return r.inferIterator(n, argEffects)
	default:
		result, err := effect.Combine(argEffects)
		if err != nil {
			r.fail(n.ID, err.Error())
			return nil, false
		}
		r.results[n.ID] = effect.NewScheme(result)
		return result, true
	}
}

// inferAssign handles assign(x, e): the state variable x is never
// itself read by the assignment, so its own effect (a Read, per the
// ordinary NameRef rule) is deliberately excluded — only e's effect is
// combined with the Update component this assignment contributes.
func (r *Run) inferAssign(n *ir.Apply, argEffects []effect.Effect) (effect.Effect, bool) {
	target, ok := n.Args[0].(*ir.NameRef)
	if !ok {
		r.fail(n.ID, "assign's first argument must be a state variable reference")
		return nil, false
	}
	lr := r.lookup.Lookup(target.Name, target.Scope)
	if !lr.Found || lr.Kind != ir.BindVar {
		r.fail(n.ID, fmt.Sprintf("assign: %s is not a state variable", target.Name))
		return nil, false
	}
	update := effect.EffectComponent{
		Kind:      effect.Update,
		Variables: effect.VConcrete{Vars: []effect.StateVar{{Name: target.Name, RefID: int(lr.DefID)}}},
	}
	result, err := effect.Combine([]effect.Effect{argEffects[1], effect.Concrete{Components: []effect.EffectComponent{update}}})
	if err != nil {
		r.fail(n.ID, err.Error())
		return nil, false
	}
	r.results[n.ID] = effect.NewScheme(result)
	return result, true
}

// inferIterator handles map/filter/forall/exists/fold and friends: the
// result combines every non-lambda argument's effect with the body
// effect of whichever argument is a lambda, approximating a genuine
// arrow-unification against a polymorphic per-element signature (see
// inferApply's doc comment and DESIGN.md).
func (r *Run) inferIterator(n *ir.Apply, argEffects []effect.Effect) (effect.Effect, bool) {
	parts := make([]effect.Effect, 0, len(n.Args))
	for i, a := range n.Args {
		lam, ok := a.(*ir.Lambda)
		if !ok {
			parts = append(parts, argEffects[i])
			continue
		}
		if bodyScheme, ok := r.results[lam.Body.ExprID()]; ok {
			parts = append(parts, bodyScheme.Effect)
		}
	}
	result, err := effect.Combine(parts)
	if err != nil {
		r.fail(n.ID, err.Error())
		return nil, false
	}
	r.results[n.ID] = effect.NewScheme(result)
	return result, true
}
