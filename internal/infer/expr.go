package infer

import (
	"fmt"

	"github.com/specterlang/effectcore/internal/builtin"
	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/ir"
)

// inferExpr infers e's effect as seen from scope, recording its
// scheme in r.results and returning (effect, true) on success. On
// failure it returns (nil, false); whether it also records a new
// entry in r.errors depends on the failure's category — a child that
// already failed propagates silently, so one real failure doesn't
// turn into a cascade of identical-looking ones at every enclosing
// node.
func (r *Run) inferExpr(e ir.Expr, scope ir.ID) (effect.Effect, bool) {
	if r.maxDepth > 0 {
		r.depth++
		defer func() { r.depth-- }()
		if r.depth > r.maxDepth {
			r.fail(e.ExprID(), fmt.Sprintf("expression nesting exceeds the configured safety valve of %d", r.maxDepth))
			return nil, false
		}
	}
	switch n := e.(type) {
	case *ir.Literal:
		return r.inferLiteral(n)
	case *ir.NameRef:
		return r.inferNameRef(n)
	case *ir.Apply:
		return r.inferApply(n)
	case *ir.Lambda:
		return r.inferLambda(n)
	case *ir.LetIn:
		return r.inferLetIn(n)
	default:
		return nil, false
	}
}

func (r *Run) inferLiteral(n *ir.Literal) (effect.Effect, bool) {
	e := effect.Pure()
	r.results[n.ID] = effect.NewScheme(e)
	return e, true
}

func (r *Run) inferNameRef(n *ir.NameRef) (effect.Effect, bool) {
	lr := r.lookup.Lookup(n.Name, n.Scope)
	if !lr.Found {
		r.fail(n.ID, fmt.Sprintf("couldn't find %s in the lookup table", n.Name))
		return nil, false
	}
	switch lr.Kind {
	case ir.BindParam:
		e := effect.Quantified{Name: paramVarName(n.Name, lr.DefID)}
		r.results[n.ID] = effect.NewScheme(e)
		return e, true
	case ir.BindConst:
		e := effect.Pure()
		r.results[n.ID] = effect.NewScheme(e)
		return e, true
	case ir.BindVar:
		e := effect.Concrete{Components: []effect.EffectComponent{
			{Kind: effect.Read, Variables: effect.VConcrete{Vars: []effect.StateVar{{Name: n.Name, RefID: int(lr.DefID)}}}},
		}}
		r.results[n.ID] = effect.NewScheme(e)
		return e, true
	case ir.BindVal, ir.BindDef:
		if scheme, ok := r.results[lr.DefID]; ok {
			e := r.instantiate(scheme)
			r.results[n.ID] = effect.NewScheme(e)
			return e, true
		}
		// Not yet inferred (forward or mutual reference): fall back
		// to the built-in table in case the name also names a
		// built-in of arity zero: a bare reference to it is pure.
		if entry, ok := builtin.Lookup(n.Name); ok && entry.MinArity == 0 {
			e := effect.Pure()
			r.results[n.ID] = effect.NewScheme(e)
			return e, true
		}
		r.fail(n.ID, fmt.Sprintf("%s's effect has not been inferred yet", n.Name))
		return nil, false
	default:
		r.fail(n.ID, fmt.Sprintf("%s does not denote a value", n.Name))
		return nil, false
	}
}

func (r *Run) inferLambda(n *ir.Lambda) (effect.Effect, bool) {
	bodyEff, ok := r.inferExpr(n.Body, n.ID)
	if !ok {
		return nil, false
	}
	arrow, scheme := r.buildParamScheme(n.Body.ExprID(), n.Params, bodyEff)
	r.results[n.ID] = scheme
	return arrow, true
}

func (r *Run) inferLetIn(n *ir.LetIn) (effect.Effect, bool) {
	if n.Def != nil && n.Def.Body != nil {
		defScope := n.ID
		if len(n.Def.Params) > 0 {
			defScope = n.Def.ID
		}
		defBodyEff, ok := r.inferExpr(n.Def.Body, defScope)
		if !ok {
			return nil, false
		}
		if len(n.Def.Params) == 0 {
			r.results[n.Def.ID] = effect.NewScheme(defBodyEff)
		} else {
			_, scheme := r.buildParamScheme(n.Def.Body.ExprID(), n.Def.Params, defBodyEff)
			r.results[n.Def.ID] = scheme
		}
	}
	bodyEff, ok := r.inferExpr(n.Body, n.ID)
	if !ok {
		return nil, false
	}
	r.results[n.ID] = effect.NewScheme(bodyEff)
	return bodyEff, true
}
