package builtin

import "testing"

func TestLookupKnownOperator(t *testing.T) {
	e, ok := Lookup("iadd")
	if !ok {
		t.Fatal("iadd should be registered")
	}
	if e.Shape != Propagate || e.MinArity != 2 || e.MaxArity != 2 {
		t.Errorf("iadd entry = %+v, want Propagate/2/2", e)
	}
}

func TestLookupUnknownOperator(t *testing.T) {
	if _, ok := Lookup("not-a-real-operator"); ok {
		t.Error("unregistered name should not be found")
	}
}

func TestAssignIsStateAccess(t *testing.T) {
	e, ok := Lookup("assign")
	if !ok {
		t.Fatal("assign should be registered")
	}
	if e.Shape != StateAccess {
		t.Errorf("assign shape = %v, want StateAccess", e.Shape)
	}
}

func TestIteratorsAllowUnboundedArity(t *testing.T) {
	for _, name := range []string{"map", "filter", "forall", "exists", "fold"} {
		e, ok := Lookup(name)
		if !ok {
			t.Fatalf("%s should be registered", name)
		}
		if e.Shape != Iterator {
			t.Errorf("%s shape = %v, want Iterator", name, e.Shape)
		}
		if e.MaxArity != -1 {
			t.Errorf("%s MaxArity = %d, want unbounded (-1)", name, e.MaxArity)
		}
	}
}
