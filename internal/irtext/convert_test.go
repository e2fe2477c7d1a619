package irtext

import (
	"testing"

	"github.com/specterlang/effectcore/internal/ir"
)

func TestParseRoundTripsModuleShape(t *testing.T) {
	m, err := Parse(`module M { var x const c def f(a) = assign(x, a) }`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Name != "M" {
		t.Errorf("module name = %q, want M", m.Name)
	}
	if len(m.Definitions) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(m.Definitions))
	}

	v, ok := m.Definitions[0].(*ir.VarDef)
	if !ok || v.Name != "x" {
		t.Errorf("def[0] = %#v, want VarDef named x", m.Definitions[0])
	}
	c, ok := m.Definitions[1].(*ir.ConstDef)
	if !ok || c.Name != "c" {
		t.Errorf("def[1] = %#v, want ConstDef named c", m.Definitions[1])
	}
	f, ok := m.Definitions[2].(*ir.Opdef)
	if !ok || f.Name != "f" {
		t.Fatalf("def[2] = %#v, want Opdef named f", m.Definitions[2])
	}
	if f.Qualifier != ir.QualDef {
		t.Errorf("f.Qualifier = %v, want QualDef", f.Qualifier)
	}
	if len(f.Params) != 1 || f.Params[0] != "a" {
		t.Errorf("f.Params = %v, want [a]", f.Params)
	}

	apply, ok := f.Body.(*ir.Apply)
	if !ok || apply.Op != "assign" {
		t.Fatalf("f.Body = %#v, want Apply(assign)", f.Body)
	}
	if len(apply.Args) != 2 {
		t.Fatalf("assign has %d args, want 2", len(apply.Args))
	}
	target, ok := apply.Args[0].(*ir.NameRef)
	if !ok || target.Name != "x" {
		t.Errorf("assign's first arg = %#v, want NameRef x", apply.Args[0])
	}
	arg, ok := apply.Args[1].(*ir.NameRef)
	if !ok || arg.Name != "a" {
		t.Errorf("assign's second arg = %#v, want NameRef a", apply.Args[1])
	}
}

func TestParseEveryNodeGetsADistinctID(t *testing.T) {
	m, err := Parse(`module M { var x val f = x }`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	seen := map[ir.ID]bool{m.ID: true}
	for _, d := range m.Definitions {
		if seen[d.DefID()] {
			t.Fatalf("duplicate id %d", d.DefID())
		}
		seen[d.DefID()] = true
	}
	f := m.Definitions[1].(*ir.Opdef)
	if seen[f.Body.ExprID()] {
		t.Fatalf("body id %d collides with a definition id", f.Body.ExprID())
	}
}

func TestParseLambdaBodyScopedToLambdaID(t *testing.T) {
	m, err := Parse(`module M { def f(a) = map(a, \e -> e) }`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	f := m.Definitions[0].(*ir.Opdef)
	apply := f.Body.(*ir.Apply)
	lambda, ok := apply.Args[1].(*ir.Lambda)
	if !ok {
		t.Fatalf("map's second arg = %#v, want *ir.Lambda", apply.Args[1])
	}
	name, ok := lambda.Body.(*ir.NameRef)
	if !ok {
		t.Fatalf("lambda body = %#v, want *ir.NameRef", lambda.Body)
	}
	if name.Scope != lambda.ID {
		t.Errorf("lambda body's NameRef.Scope = %d, want the lambda's own id %d", name.Scope, lambda.ID)
	}
}

func TestParseLetBodyScopedToLetID(t *testing.T) {
	m, err := Parse(`module M { val f = let y = 1 in y }`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	f := m.Definitions[0].(*ir.Opdef)
	let, ok := f.Body.(*ir.LetIn)
	if !ok {
		t.Fatalf("f.Body = %#v, want *ir.LetIn", f.Body)
	}
	if let.Def.Name != "y" {
		t.Errorf("let.Def.Name = %q, want y", let.Def.Name)
	}
	name, ok := let.Body.(*ir.NameRef)
	if !ok {
		t.Fatalf("let.Body = %#v, want *ir.NameRef", let.Body)
	}
	if name.Scope != let.ID {
		t.Errorf("let body's NameRef.Scope = %d, want the let's own id %d", name.Scope, let.ID)
	}
}

func TestParseRejectsMalformedSource(t *testing.T) {
	if _, err := Parse(`module { var x }`); err == nil {
		t.Error("expected an error for a module missing its name")
	}
}
