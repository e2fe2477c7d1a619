package ir

import "testing"

func opdef(id ID, name string, params []string, body Expr) *Opdef {
	return &Opdef{ID: id, Qualifier: QualVal, Visibility: Public, Name: name, Params: params, Body: body}
}

func TestLookupResolvesModuleLevelParam(t *testing.T) {
	body := &Literal{ID: 2, Kind: LitInt}
	def := opdef(1, "f", []string{"x"}, body)
	m := &Module{ID: 100, Definitions: []Definition{def}}
	tree := BuildScopeTree(m)

	res := tree.Lookup("x", def.ID)
	if !res.Found {
		t.Fatal("expected x to resolve inside f's body scope")
	}
	if res.Kind != BindParam {
		t.Errorf("x resolved to kind %v, want BindParam", res.Kind)
	}
	if res.DefID != body.ID {
		t.Errorf("x's DefID = %v, want the body expression's id %v", res.DefID, body.ID)
	}
}

func TestLookupInnerLambdaShadowsOuterParam(t *testing.T) {
	innerBody := &Literal{ID: 3, Kind: LitInt}
	inner := &Lambda{ID: 2, Params: []string{"x"}, Body: innerBody}
	outer := opdef(1, "f", []string{"x"}, inner)
	m := &Module{ID: 100, Definitions: []Definition{outer}}
	tree := BuildScopeTree(m)

	res := tree.Lookup("x", inner.ID)
	if !res.Found || res.Kind != BindParam {
		t.Fatal("expected x to resolve to the inner lambda's own param")
	}
	if res.DefID != innerBody.ID {
		t.Errorf("shadowed x's DefID = %v, want the inner body's id %v", res.DefID, innerBody.ID)
	}
}

func TestLookupFallsThroughToEnclosingScope(t *testing.T) {
	innerBody := &Literal{ID: 3, Kind: LitInt}
	inner := &Lambda{ID: 2, Params: []string{"y"}, Body: innerBody}
	outer := opdef(1, "f", []string{"x"}, inner)
	m := &Module{ID: 100, Definitions: []Definition{outer}}
	tree := BuildScopeTree(m)

	res := tree.Lookup("x", inner.ID)
	if !res.Found {
		t.Fatal("expected x to resolve by walking out to the enclosing opdef scope")
	}
	if res.DefID != outer.Body.ExprID() {
		t.Errorf("x's DefID = %v, want outer body's id %v", res.DefID, outer.Body.ExprID())
	}
}

func TestLookupUnboundNameNotFound(t *testing.T) {
	body := &Literal{ID: 2, Kind: LitInt}
	def := opdef(1, "f", nil, body)
	m := &Module{ID: 100, Definitions: []Definition{def}}
	tree := BuildScopeTree(m)

	if res := tree.Lookup("nope", def.ID); res.Found {
		t.Error("expected an unbound name to not be found")
	}
}

func TestLookupLetInBindsLocalName(t *testing.T) {
	value := &Literal{ID: 3, Kind: LitInt}
	letDef := &Opdef{ID: 2, Qualifier: QualVal, Visibility: Public, Name: "y", Body: value}
	inBody := &NameRef{ID: 4, Name: "y", Scope: 5}
	let := &LetIn{ID: 5, Def: letDef, Body: inBody}
	outer := opdef(1, "f", nil, let)
	m := &Module{ID: 100, Definitions: []Definition{outer}}
	tree := BuildScopeTree(m)

	res := tree.Lookup("y", let.ID)
	if !res.Found || res.Kind != BindVal {
		t.Fatal("expected y to resolve as a let-bound val")
	}
	if res.DefID != letDef.ID {
		t.Errorf("y's DefID = %v, want the let definition's id %v", res.DefID, letDef.ID)
	}
}

func TestChildrenOfApply(t *testing.T) {
	a := &Literal{ID: 2, Kind: LitInt}
	b := &Literal{ID: 3, Kind: LitInt}
	apply := &Apply{ID: 1, Op: "iadd", Args: []Expr{a, b}}
	def := opdef(4, "f", nil, apply)
	m := &Module{ID: 100, Definitions: []Definition{def}}
	tree := BuildScopeTree(m)

	children := tree.ChildrenOf(apply.ID)
	if len(children) != 2 || children[0] != a.ID || children[1] != b.ID {
		t.Errorf("ChildrenOf(apply) = %v, want [%v %v]", children, a.ID, b.ID)
	}
}
