// Package builtin holds the built-in operator signature table the
// inferrer consults for any opcode that is not a reference to a
// user-defined operator. The table is deliberately data (a map of
// Entry values), not code per operator, matching the way the core's
// operator-application step (internal/infer) treats every entry
// uniformly by Shape.
package builtin

// Shape classifies how an operator's result effect relates to its
// arguments' effects.
type Shape int

const (
	// Propagate: the operator contributes no effect of its own; its
	// result is its arguments' effects combined kind-wise. Covers
	// arithmetic, comparison, logical operators, and the set/list/
	// tuple/record constructors — none of these add a Read, Update,
	// or Temporal component; they only surface what their children
	// already do.
	Propagate Shape = iota
	// StateAccess: like Propagate, but an extra Update component
	// (named by the specific state variable referenced — resolved by
	// the inferrer, not by this table) is added on top. Only "assign"
	// has this shape.
	StateAccess
	// Iterator: operators whose last argument is a lambda whose body
	// effect is combined into the result (map, filter, forall, exists,
	// fold and friends).
	Iterator
)

// Entry describes one built-in operator.
type Entry struct {
	Name     string
	Shape    Shape
	MinArity int
	MaxArity int // -1 means unbounded
}

// Table maps an operator name to its Entry. Built once at package
// init and never mutated afterward.
var Table = map[string]Entry{}

func register(name string, shape Shape, min, max int) {
	Table[name] = Entry{Name: name, Shape: shape, MinArity: min, MaxArity: max}
}

func init() {
	// Arithmetic — pure, propagate.
	for _, name := range []string{"iadd", "isub", "imul", "idiv", "imod", "ipow"} {
		register(name, Propagate, 2, 2)
	}
	register("iuminus", Propagate, 1, 1)

	// Comparison — pure, propagate.
	for _, name := range []string{"eq", "neq", "ilt", "ilte", "igt", "igte"} {
		register(name, Propagate, 2, 2)
	}

	// Logical — pure over effectful arguments, propagate.
	register("not", Propagate, 1, 1)
	for _, name := range []string{"and", "or", "iff", "implies"} {
		register(name, Propagate, 2, -1)
	}

	// Set/list/tuple/record constructors — pure, propagate, any arity.
	for _, name := range []string{"set", "list", "tuple", "record"} {
		register(name, Propagate, 0, -1)
	}

	// State access.
	register("assign", StateAccess, 2, 2)

	// Structural control combinators — propagate.
	register("actionAny", Propagate, 1, -1)
	register("actionAll", Propagate, 1, -1)
	register("then", Propagate, 2, 2)
	register("ite", Propagate, 3, 3)

	// Quantifiers and iterators — last argument is a lambda.
	for _, name := range []string{"map", "filter", "forall", "exists", "fold"} {
		register(name, Iterator, 1, -1)
	}

	// The anonymous-application placeholder: a fresh effect variable,
	// no constraints.
	register("_", Propagate, 0, -1)
}

// Lookup returns the Entry for name, if any.
func Lookup(name string) (Entry, bool) {
	e, ok := Table[name]
	return e, ok
}
