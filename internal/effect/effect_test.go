package effect

import "testing"

func TestPrintOrdersComponentsByKind(t *testing.T) {
	e := Concrete{Components: []EffectComponent{
		{Kind: Temporal, Variables: VConcrete{Vars: []StateVar{{Name: "c"}}}},
		{Kind: Read, Variables: VConcrete{Vars: []StateVar{{Name: "a"}}}},
		{Kind: Update, Variables: VConcrete{Vars: []StateVar{{Name: "b"}}}},
	}}
	got := Print(e)
	want := "concrete(Read[a], Update[b], Temporal[c])"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestSimplifyMergesDuplicateKinds(t *testing.T) {
	e := Concrete{Components: []EffectComponent{
		{Kind: Read, Variables: VConcrete{Vars: []StateVar{{Name: "a"}}}},
		{Kind: Read, Variables: VConcrete{Vars: []StateVar{{Name: "b"}}}},
	}}
	got := Print(e)
	want := "concrete(Read[a,b])"
	if got != want {
		t.Errorf("Print(Simplify()) = %q, want %q", got, want)
	}
}

func TestIsPure(t *testing.T) {
	if !IsPure(Concrete{}) {
		t.Error("empty Concrete should be pure")
	}
	if IsPure(Concrete{Components: []EffectComponent{{Kind: Read, Variables: VConcrete{Vars: []StateVar{{Name: "a"}}}}}}) {
		t.Error("a Concrete with a Read component should not be pure")
	}
}

func TestCombineUnionsComponentsKindWise(t *testing.T) {
	a := Concrete{Components: []EffectComponent{{Kind: Read, Variables: VConcrete{Vars: []StateVar{{Name: "s"}}}}}}
	b := Concrete{Components: []EffectComponent{{Kind: Update, Variables: VConcrete{Vars: []StateVar{{Name: "t"}}}}}}
	combined, err := Combine([]Effect{a, b})
	if err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	got := Print(combined)
	want := "concrete(Read[s], Update[t])"
	if got != want {
		t.Errorf("Combine() = %q, want %q", got, want)
	}
}

func TestCombinePreservesALoneUnresolvedOperand(t *testing.T) {
	x := Quantified{Name: "e_x"}
	combined, err := Combine([]Effect{x, Concrete{}})
	if err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	if got := Print(combined); got != Print(x) {
		t.Errorf("Combine([quantified, concrete[]]) = %q, want %q (the quantified operand unchanged)", got, Print(x))
	}
}

func TestCombineFailsOnTwoUnanchoredUnresolvedOperands(t *testing.T) {
	x := Quantified{Name: "e_x"}
	y := Quantified{Name: "e_y"}
	if _, err := Combine([]Effect{x, y}); err == nil {
		t.Error("expected an error combining two simultaneously unresolved effects with nothing concrete to anchor them")
	}
}

func TestFreeEffectVarsWalksArrow(t *testing.T) {
	arrow := Arrow{Params: []Effect{Quantified{Name: "x"}}, Result: Quantified{Name: "y"}}
	got := FreeEffectVars(arrow)
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("FreeEffectVars(arrow) = %v, want [x y]", got)
	}
}
