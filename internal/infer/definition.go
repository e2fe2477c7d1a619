package infer

import (
	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/ir"
)

// InferModule runs inference over every definition in m, in
// declaration order, recording a scheme or an error per id. Call it
// once per Run; build a fresh Run per module so fresh-variable
// numbering always restarts at the same point.
func (r *Run) InferModule(m *ir.Module) {
	for _, d := range m.Definitions {
		r.inferDefinition(d, m.ID)
	}
}

func (r *Run) inferDefinition(d ir.Definition, scope ir.ID) {
	switch def := d.(type) {
	case *ir.ConstDef:
		r.results[def.ID] = effect.NewScheme(effect.Pure())
	case *ir.VarDef:
		r.results[def.ID] = effect.NewScheme(effect.Pure())
	case *ir.Opdef:
		r.inferOpdef(def, scope)
	case *ir.NestedModuleDef:
		r.InferModule(def.Module)
	case *ir.AssumeDef:
		if def.Body != nil {
			if e, ok := r.inferExpr(def.Body, scope); ok {
				r.results[def.ID] = effect.NewScheme(e)
			}
		}
	// TypeDef, ImportDef and InstanceDef carry no expression whose
	// effect needs inferring.
	default:
	}
}

// inferOpdef is component E's rule for a module-level definition: its
// effect is the effect of its body, with no bearing from Qualifier —
// except that a parameterized opdef ("def f(x) = x + 1") generalizes
// exactly the way a Lambda does, with its body expression's id as the
// defining id for its parameters' quantified variables.
func (r *Run) inferOpdef(def *ir.Opdef, scope ir.ID) {
	if def.Body == nil {
		return
	}
	bodyScope := scope
	if len(def.Params) > 0 {
		bodyScope = def.ID
	}
	bodyEff, ok := r.inferExpr(def.Body, bodyScope)
	if !ok {
		return
	}
	if len(def.Params) == 0 {
		r.results[def.ID] = effect.NewScheme(bodyEff)
		return
	}
	_, scheme := r.buildParamScheme(def.Body.ExprID(), def.Params, bodyEff)
	r.results[def.ID] = scheme
}
