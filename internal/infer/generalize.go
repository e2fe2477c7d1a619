package infer

import (
	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/ir"
)

// buildParamScheme is the generalization step shared by Lambda and by
// an Opdef that carries its own parameter list (spec scenario S5:
// "def f(x) = x + 1" generalizes exactly the way a lambda would).
// Quantifier sets are the free effect/entity variables appearing in
// the parameter effects only — never in the result — matching the
// per-parameter quantified-variable naming rule: a parameter's effect
// is always exactly the distinguished variable e_<name>_<bodyID>
// (bodyID is the id of the body expression, not of the lambda/opdef
// itself — see ir.BuildScopeTree), so it is always free, and always
// belongs in the scheme that introduced it.
func (r *Run) buildParamScheme(bodyID ir.ID, params []string, bodyEff effect.Effect) (effect.Arrow, effect.EffectScheme) {
	paramEffs := make([]effect.Effect, len(params))
	for i, p := range params {
		paramEffs[i] = r.sub.ApplyEffect(effect.Quantified{Name: paramVarName(p, bodyID)})
	}
	arrow := effect.Arrow{Params: paramEffs, Result: r.sub.ApplyEffect(bodyEff)}
	effVars, entVars := freeVarsOfParams(paramEffs)
	return arrow, effect.EffectScheme{EffectVars: effVars, EntityVars: entVars, Effect: arrow}
}

func freeVarsOfParams(params []effect.Effect) (map[string]struct{}, map[string]struct{}) {
	effVars := map[string]struct{}{}
	entVars := map[string]struct{}{}
	for _, p := range params {
		for _, v := range effect.FreeEffectVars(p) {
			effVars[v] = struct{}{}
		}
		for _, v := range effect.FreeEntityVars(p) {
			entVars[v] = struct{}{}
		}
	}
	return effVars, entVars
}
