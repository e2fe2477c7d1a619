package unify

import (
	"testing"

	"github.com/specterlang/effectcore/internal/effect"
)

func sv(names ...string) effect.VConcrete {
	vars := make([]effect.StateVar, len(names))
	for i, n := range names {
		vars[i] = effect.StateVar{Name: n}
	}
	return effect.VConcrete{Vars: vars}
}

func TestUnifyQuantifiedBindsEitherSide(t *testing.T) {
	concrete := effect.Concrete{Components: []effect.EffectComponent{{Kind: effect.Read, Variables: sv("a")}}}

	s, err := Unify(effect.Quantified{Name: "e"}, concrete)
	if err != nil {
		t.Fatalf("Unify failed: %v", err)
	}
	got := effect.Print(s.ApplyEffect(effect.Quantified{Name: "e"}))
	if got != effect.Print(concrete) {
		t.Errorf("quantified-left bound to %q, want %q", got, effect.Print(concrete))
	}

	s2, err := Unify(concrete, effect.Quantified{Name: "e"})
	if err != nil {
		t.Fatalf("Unify (swapped) failed: %v", err)
	}
	got2 := effect.Print(s2.ApplyEffect(effect.Quantified{Name: "e"}))
	if got2 != effect.Print(concrete) {
		t.Errorf("quantified-right bound to %q, want %q", got2, effect.Print(concrete))
	}
}

func TestCompatibleReadWithUpdateAndTemporal(t *testing.T) {
	if !compatible(effect.Read, effect.Update) || !compatible(effect.Update, effect.Read) {
		t.Error("Read and Update should be compatible in either order")
	}
	if !compatible(effect.Read, effect.Temporal) || !compatible(effect.Temporal, effect.Read) {
		t.Error("Read and Temporal should be compatible in either order")
	}
	if compatible(effect.Update, effect.Temporal) {
		t.Error("Update and Temporal are a domination pair, not a compatible one")
	}
}

func TestUnifyReadAndUpdateCoexistWhenBothSidesCarryBoth(t *testing.T) {
	a := effect.Concrete{Components: []effect.EffectComponent{
		{Kind: effect.Read, Variables: sv("a")},
		{Kind: effect.Update, Variables: sv("b")},
	}}
	b := effect.Concrete{Components: []effect.EffectComponent{
		{Kind: effect.Read, Variables: sv("a")},
		{Kind: effect.Update, Variables: sv("b")},
	}}
	if _, err := Unify(a, b); err != nil {
		t.Errorf("identical Read/Update effects should unify, got: %v", err)
	}
}

func TestDominatesPairUpdateOverTemporal(t *testing.T) {
	if d, ok := dominatesPair(effect.Update, effect.Temporal); !ok || d != effect.Update {
		t.Errorf("dominatesPair(Update, Temporal) = (%v, %v), want (Update, true)", d, ok)
	}
	if d, ok := dominatesPair(effect.Temporal, effect.Update); !ok || d != effect.Update {
		t.Errorf("dominatesPair(Temporal, Update) = (%v, %v), want (Update, true)", d, ok)
	}
	if _, ok := dominatesPair(effect.Read, effect.Update); ok {
		t.Error("Read/Update is not a domination pair")
	}
}

func TestUnifyUpdateDominatesEmptyTemporal(t *testing.T) {
	both := effect.Concrete{Components: []effect.EffectComponent{
		{Kind: effect.Update, Variables: sv("x")},
		{Kind: effect.Temporal, Variables: effect.VConcrete{}},
	}}
	updateOnly := effect.Concrete{Components: []effect.EffectComponent{{Kind: effect.Update, Variables: sv("x")}}}
	if _, err := Unify(both, updateOnly); err != nil {
		t.Errorf("Update dominating an empty Temporal should unify cleanly, got: %v", err)
	}
}

func TestUnifySameKindDifferentVarsFails(t *testing.T) {
	a := effect.Concrete{Components: []effect.EffectComponent{{Kind: effect.Update, Variables: sv("x")}}}
	b := effect.Concrete{Components: []effect.EffectComponent{{Kind: effect.Update, Variables: sv("y")}}}
	if _, err := Unify(a, b); err == nil {
		t.Error("expected a variable-disagreement error, got nil")
	}
}

func TestUnifyArityUnpacksSingleParamAgainstMany(t *testing.T) {
	one := effect.Arrow{
		Params: []effect.Effect{effect.Concrete{Components: []effect.EffectComponent{
			{Kind: effect.Read, Variables: sv("a", "b")},
		}}},
		Result: effect.Concrete{},
	}
	two := effect.Arrow{
		Params: []effect.Effect{
			effect.Concrete{Components: []effect.EffectComponent{{Kind: effect.Read, Variables: sv("a")}}},
			effect.Concrete{Components: []effect.EffectComponent{{Kind: effect.Read, Variables: sv("b")}}},
		},
		Result: effect.Concrete{},
	}
	if _, err := Unify(one, two); err != nil {
		t.Errorf("tuple-unpacking unification failed: %v", err)
	}
}

func TestUnifyArityMismatchWithoutSingletonFails(t *testing.T) {
	two := effect.Arrow{Params: []effect.Effect{effect.Concrete{}, effect.Concrete{}}, Result: effect.Concrete{}}
	three := effect.Arrow{Params: []effect.Effect{effect.Concrete{}, effect.Concrete{}, effect.Concrete{}}, Result: effect.Concrete{}}
	if _, err := Unify(two, three); err == nil {
		t.Error("expected an arity error, got nil")
	}
}

func TestUnifyIsSymmetricUpToNames(t *testing.T) {
	a := effect.Arrow{Params: []effect.Effect{effect.Quantified{Name: "x"}}, Result: effect.Quantified{Name: "x"}}
	b := effect.Arrow{Params: []effect.Effect{effect.Quantified{Name: "y"}}, Result: effect.Quantified{Name: "y"}}

	s1, err := Unify(a, b)
	if err != nil {
		t.Fatalf("Unify(a, b) failed: %v", err)
	}
	s2, err := Unify(b, a)
	if err != nil {
		t.Fatalf("Unify(b, a) failed: %v", err)
	}
	r1 := effect.Print(s1.ApplyEffect(a.Result))
	r2 := effect.Print(s2.ApplyEffect(b.Result))
	if r1 != effect.Print(s1.ApplyEffect(b.Result)) {
		t.Errorf("Unify(a,b) did not equate the two sides: %q vs %q", r1, effect.Print(s1.ApplyEffect(b.Result)))
	}
	if r2 != effect.Print(s2.ApplyEffect(a.Result)) {
		t.Errorf("Unify(b,a) did not equate the two sides: %q vs %q", r2, effect.Print(s2.ApplyEffect(a.Result)))
	}
}

func TestUnifyVariablesUnionDistributesOverConcrete(t *testing.T) {
	union := effect.VUnion{Members: []effect.Variables{sv("a"), effect.VQuantified{Name: "q"}}}
	concrete := sv("a")
	s, err := UnifyVariables(union, concrete)
	if err != nil {
		t.Fatalf("union-against-concrete distribution failed: %v", err)
	}
	got := effect.PrintVariables(s.ApplyVariables(effect.VQuantified{Name: "q"}))
	if got != effect.PrintVariables(concrete) {
		t.Errorf("quantified union member bound to %q, want %q", got, effect.PrintVariables(concrete))
	}
}

func TestUnifyVariablesUnionOfUnionsFails(t *testing.T) {
	u1 := effect.VUnion{Members: []effect.Variables{sv("a"), sv("b")}}
	u2 := effect.VUnion{Members: []effect.Variables{sv("c"), sv("d")}}
	if _, err := UnifyVariables(u1, u2); err == nil {
		t.Error("expected union-of-unions to fail, got nil")
	}
}

func TestUnifyCanonicalPrintEqualityImpliesEmptySubstitution(t *testing.T) {
	a := effect.Concrete{Components: []effect.EffectComponent{
		{Kind: effect.Update, Variables: sv("x")},
		{Kind: effect.Read, Variables: sv("a", "b")},
	}}
	b := effect.Concrete{Components: []effect.EffectComponent{
		{Kind: effect.Read, Variables: sv("b", "a")},
		{Kind: effect.Update, Variables: sv("x")},
	}}
	if effect.Print(a) != effect.Print(b) {
		t.Fatalf("fixture doesn't exercise the law: %q != %q", effect.Print(a), effect.Print(b))
	}
	s, err := Unify(a, b)
	if err != nil {
		t.Fatalf("Unify of canonically-equal effects failed: %v", err)
	}
	if !s.IsEmpty() {
		t.Errorf("Unify of canonically-equal effects should return the empty substitution, got %v", s)
	}
}

func TestUnifyOccursCheckPropagatesThroughArrow(t *testing.T) {
	x := effect.Quantified{Name: "x"}
	containsX := effect.Arrow{Params: []effect.Effect{x}, Result: effect.Concrete{}}
	if _, err := Unify(x, containsX); err == nil {
		t.Error("expected an occurs-check failure, got nil")
	}
}
