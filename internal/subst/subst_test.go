package subst

import (
	"testing"

	"github.com/specterlang/effectcore/internal/effect"
)

func TestApplyEffectResolvesChain(t *testing.T) {
	s := Subst{Bindings: []Binding{
		{Kind: EffectVar, Name: "a", EffectVal: effect.Quantified{Name: "b"}},
		{Kind: EffectVar, Name: "b", EffectVal: effect.Concrete{}},
	}}
	got := effect.Print(s.ApplyEffect(effect.Quantified{Name: "a"}))
	want := effect.Print(effect.Concrete{})
	if got != want {
		t.Errorf("ApplyEffect chain = %q, want %q", got, want)
	}
}

func TestBindEffectOccursCheck(t *testing.T) {
	arrow := effect.Arrow{Params: []effect.Effect{effect.Quantified{Name: "x"}}, Result: effect.Quantified{Name: "x"}}
	_, err := BindEffect("x", arrow)
	if err == nil {
		t.Fatal("expected a cyclical binding error")
	}
	if _, ok := err.(*CyclicalBindingError); !ok {
		t.Errorf("expected *CyclicalBindingError, got %T", err)
	}
}

func TestBindEffectSelfBindingIsNoop(t *testing.T) {
	s, err := BindEffect("x", effect.Quantified{Name: "x"})
	if err != nil {
		t.Fatalf("self-binding should never fail: %v", err)
	}
	if !s.IsEmpty() {
		t.Errorf("self-binding should produce the empty substitution, got %v", s)
	}
}

func TestComposeDetectsInconsistentBinding(t *testing.T) {
	s1 := Subst{Bindings: []Binding{{Kind: EffectVar, Name: "x", EffectVal: effect.Concrete{}}}}
	s2 := Subst{Bindings: []Binding{{Kind: EffectVar, Name: "x", EffectVal: effect.Quantified{Name: "y"}}}}
	_, err := Compose(s1, s2)
	if err == nil {
		t.Fatal("expected an inconsistent binding error")
	}
}

func TestApplyEffectIsIdempotentAfterCompose(t *testing.T) {
	s1 := Subst{Bindings: []Binding{{Kind: EffectVar, Name: "x", EffectVal: effect.Quantified{Name: "y"}}}}
	s2 := Subst{Bindings: []Binding{{Kind: EffectVar, Name: "y", EffectVal: effect.Concrete{}}}}
	composed, err := Compose(s1, s2)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	e := effect.Quantified{Name: "x"}
	once := composed.ApplyEffect(e)
	twice := composed.ApplyEffect(once)
	if effect.Print(once) != effect.Print(twice) {
		t.Errorf("apply(s, apply(s, e)) = %q, want apply(s, e) = %q", effect.Print(twice), effect.Print(once))
	}
}

func TestComposeAppliesFirstToSecond(t *testing.T) {
	s1 := Subst{Bindings: []Binding{{Kind: EffectVar, Name: "x", EffectVal: effect.Concrete{}}}}
	s2 := Subst{Bindings: []Binding{{Kind: EffectVar, Name: "y", EffectVal: effect.Quantified{Name: "x"}}}}
	composed, err := Compose(s1, s2)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	got := effect.Print(composed.ApplyEffect(effect.Quantified{Name: "y"}))
	want := effect.Print(effect.Concrete{})
	if got != want {
		t.Errorf("composed y = %q, want %q", got, want)
	}
}
