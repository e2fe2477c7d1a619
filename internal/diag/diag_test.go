package diag

import (
	"strings"
	"testing"

	"github.com/specterlang/effectcore/internal/ir"
)

func TestErrorFlattensTreeDepthFirst(t *testing.T) {
	leaf := New("id#2", "couldn't find y")
	wrapped := Wrap("id#1", "effect unification failed", leaf)

	got := wrapped.Error()
	if !strings.HasPrefix(got, "id#1: effect unification failed") {
		t.Errorf("expected the root frame first, got %q", got)
	}
	if !strings.Contains(got, "id#2: couldn't find y") {
		t.Errorf("expected the child frame to appear, got %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[1], "  ") {
		t.Errorf("child line should be indented, got %q", lines[1])
	}
}

func TestCollectCombinesPerIDErrors(t *testing.T) {
	errs := map[ir.ID]*Error{
		1: New("id#1", "first problem"),
		2: New("id#2", "second problem"),
	}
	err := Collect(errs)
	if err == nil {
		t.Fatal("expected a combined error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "first problem") || !strings.Contains(msg, "second problem") {
		t.Errorf("combined error missing one of the per-id messages: %q", msg)
	}
}

func TestCollectEmptyMapReturnsNil(t *testing.T) {
	if err := Collect(map[ir.ID]*Error{}); err != nil {
		t.Errorf("expected nil for an empty error map, got %v", err)
	}
}
