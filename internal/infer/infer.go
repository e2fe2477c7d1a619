// Package infer implements the Hindley-Milner-style effect inferrer:
// the component that walks an ir.Module in post order and produces an
// effect.EffectScheme per expression and definition id. Applications
// of user-defined operators, parameters and the "_" placeholder are
// resolved with internal/unify against an already-inferred scheme or a
// fresh variable; built-in operators (internal/builtin) are resolved by
// combining their arguments' effects according to their Shape, without
// unification.
//
// A Run owns everything mutable about one inference pass: the running
// substitution, the per-id result and error tables, and a
// fresh-variable counter reset at construction. Two Runs built fresh
// over identical input always mint identical variable names in
// identical order, which is what the engine's determinism requirement
// reduces to.
package infer

import (
	"fmt"

	"github.com/specterlang/effectcore/internal/diag"
	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/ir"
	"github.com/specterlang/effectcore/internal/subst"
)

// DefaultMaxDepth is the recursion-depth safety valve applied when a
// Run is never given one explicitly via SetMaxDepth: deep enough for
// any legitimate module, shallow enough to turn a pathologically
// self-referential or generator-produced expression tree into a
// reported error instead of a stack overflow.
const DefaultMaxDepth = 5000

// Run is one inference pass over a single module.
type Run struct {
	lookup   ir.Lookup
	sub      subst.Subst
	results  map[ir.ID]effect.EffectScheme
	errors   map[ir.ID]*diag.Error
	fresh    *freshGen
	maxDepth int
	depth    int
}

// NewRun creates a Run ready to infer over a module resolved by
// lookup — normally an *ir.ScopeTree built from that same module.
func NewRun(lookup ir.Lookup) *Run {
	return &Run{
		lookup:   lookup,
		sub:      subst.Empty(),
		results:  make(map[ir.ID]effect.EffectScheme),
		errors:   make(map[ir.ID]*diag.Error),
		fresh:    newFreshGen(),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the recursion-depth safety valve for this Run
// (cmd/effectinfer wires it to internal/config's Inference.MaxDepth
// setting). n <= 0 disables the check entirely.
func (r *Run) SetMaxDepth(n int) { r.maxDepth = n }

// Results returns the per-id scheme table accumulated so far.
func (r *Run) Results() map[ir.ID]effect.EffectScheme { return r.results }

// Errors returns the per-id error table accumulated so far.
func (r *Run) Errors() map[ir.ID]*diag.Error { return r.errors }

func (r *Run) fail(id ir.ID, message string) {
	r.errors[id] = diag.New(locOf(id), message)
}

func (r *Run) failUnify(id ir.ID, err error) {
	r.errors[id] = diag.Wrap(locOf(id), "effect unification failed", diag.New(locOf(id), err.Error()))
}

func (r *Run) compose(s subst.Subst) error {
	combined, err := subst.Compose(r.sub, s)
	if err != nil {
		return err
	}
	r.sub = combined
	return nil
}

func locOf(id ir.ID) string { return fmt.Sprintf("id#%d", id) }

// paramVarName is the deterministic name given to the quantified
// effect variable standing for parameter name, keyed by bodyID — the
// id of the body expression of the Lambda or Opdef that binds it (per
// spec.md's e_<name>_<body id> rule, not the lambda/opdef's own id).
func paramVarName(name string, bodyID ir.ID) string {
	return fmt.Sprintf("e_%s_%d", name, bodyID)
}
