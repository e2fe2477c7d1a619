package irtext

import (
	"fmt"

	"github.com/specterlang/effectcore/internal/ir"
)

// Parse reads src as the fixture notation and returns the ir.Module it
// describes, with every node's Scope field already set the way
// ir.BuildScopeTree expects to find it (see convert's per-construct
// comments) — callers still need to call ir.BuildScopeTree on the
// result themselves before handing it to internal/infer, the same as
// any other IR producer would.
func Parse(src string) (*ir.Module, error) {
	f, err := parse(src)
	if err != nil {
		return nil, err
	}
	b := &builder{}
	return b.convertModule(f.Module)
}

// builder hands out strictly increasing ir.ID values as it walks the
// concrete syntax tree, so every node in the resulting ir.Module gets
// a distinct, stable id.
type builder struct {
	next ir.ID
}

func (b *builder) freshID() ir.ID {
	b.next++
	return b.next
}

func (b *builder) convertModule(m *moduleNode) (*ir.Module, error) {
	modID := b.freshID()
	mod := &ir.Module{ID: modID, Name: m.Name}
	for _, d := range m.Defs {
		def, err := b.convertDef(d, modID)
		if err != nil {
			return nil, err
		}
		mod.Definitions = append(mod.Definitions, def)
	}
	return mod, nil
}

func (b *builder) convertDef(d *defNode, scope ir.ID) (ir.Definition, error) {
	switch {
	case d.Var != nil:
		return &ir.VarDef{ID: b.freshID(), Name: d.Var.Name, Type: ir.TUntyped{}}, nil
	case d.Const != nil:
		return &ir.ConstDef{ID: b.freshID(), Name: d.Const.Name, Type: ir.TUntyped{}}, nil
	case d.Op != nil:
		return b.convertOpdef(d.Op, scope)
	default:
		return nil, fmt.Errorf("irtext: empty definition")
	}
}

// convertOpdef mirrors ir.BuildScopeTree's indexOpdefBody: a
// parameterized opdef gets its own scope, keyed by its own id (not by
// its body's id — that id is reserved for the per-parameter quantified
// variable name internal/infer derives, a distinct concern from which
// id a NameRef's Scope field should point at).
func (b *builder) convertOpdef(o *opDecl, scope ir.ID) (*ir.Opdef, error) {
	id := b.freshID()
	bodyScope := scope
	if len(o.Params) > 0 {
		bodyScope = id
	}
	body, err := b.convertExpr(o.Body, bodyScope)
	if err != nil {
		return nil, err
	}
	return &ir.Opdef{
		ID:         id,
		Qualifier:  qualifierFromString(o.Qualifier),
		Visibility: ir.Public,
		Name:       o.Name,
		Params:     o.Params,
		Body:       body,
	}, nil
}

func (b *builder) convertExpr(e *exprNode, scope ir.ID) (ir.Expr, error) {
	switch {
	case e.Apply != nil:
		return b.convertApply(e.Apply, scope)
	case e.Lambda != nil:
		return b.convertLambda(e.Lambda, scope)
	case e.Let != nil:
		return b.convertLet(e.Let, scope)
	case e.Int != nil:
		return &ir.Literal{ID: b.freshID(), Kind: ir.LitInt}, nil
	case e.Name != nil:
		return &ir.NameRef{ID: b.freshID(), Name: *e.Name, Scope: scope}, nil
	default:
		return nil, fmt.Errorf("irtext: empty expression")
	}
}

func (b *builder) convertApply(a *applyNode, scope ir.ID) (*ir.Apply, error) {
	id := b.freshID()
	args := make([]ir.Expr, len(a.Args))
	for i, ae := range a.Args {
		converted, err := b.convertExpr(ae, scope)
		if err != nil {
			return nil, err
		}
		args[i] = converted
	}
	return &ir.Apply{ID: id, Op: a.Op, Scope: scope, Args: args}, nil
}

// convertLambda mirrors ir.BuildScopeTree's Lambda case: the lambda's
// own id is both its node id and the scope its body is indexed under.
func (b *builder) convertLambda(l *lambdaNode, scope ir.ID) (*ir.Lambda, error) {
	id := b.freshID()
	body, err := b.convertExpr(l.Body, id)
	if err != nil {
		return nil, err
	}
	return &ir.Lambda{ID: id, Params: []string{l.Param}, Body: body}, nil
}

// convertLet mirrors ir.BuildScopeTree's LetIn case: both the bound
// definition's body (a zero-param val, so no further scope of its
// own) and the "in" expression are indexed under the let's own id.
func (b *builder) convertLet(l *letNode, scope ir.ID) (*ir.LetIn, error) {
	id := b.freshID()
	value, err := b.convertExpr(l.Value, id)
	if err != nil {
		return nil, err
	}
	def := &ir.Opdef{ID: b.freshID(), Qualifier: ir.QualVal, Visibility: ir.Public, Name: l.Name, Body: value}
	body, err := b.convertExpr(l.Body, id)
	if err != nil {
		return nil, err
	}
	return &ir.LetIn{ID: id, Def: def, Body: body}, nil
}

func qualifierFromString(s string) ir.Qualifier {
	switch s {
	case "def":
		return ir.QualDef
	case "defrec":
		return ir.QualDefRec
	case "pureval":
		return ir.QualPureVal
	case "puredef":
		return ir.QualPureDef
	case "action":
		return ir.QualAction
	case "run":
		return ir.QualRun
	case "temporal":
		return ir.QualTemporal
	default:
		return ir.QualVal
	}
}
