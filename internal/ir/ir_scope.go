package ir

// BindingKind is what a name resolved to.
type BindingKind int

const (
	BindParam BindingKind = iota
	BindConst
	BindVar
	BindVal
	BindDef
	BindTypedef
)

// LookupResult is the answer to a name lookup: either a binding, fully
// described, or Found == false. It is a plain value, never an error —
// a missing name is a well-formed outcome the caller (the inferrer)
// decides how to react to.
type LookupResult struct {
	Kind    BindingKind
	DefID   ID
	Found   bool
}

// Lookup is the name-resolution facility the inferrer consumes. It is
// deliberately the only way the inferrer learns anything about scope
// structure; everything else about resolution is out of scope per the
// module's stated non-goals.
type Lookup interface {
	// Lookup resolves name as seen from scope. Shadowing: the
	// innermost scope enclosing the reference wins.
	Lookup(name string, scope ID) LookupResult
	// ChildrenOf returns the ordered child expression ids of id, for
	// traversal drivers that only need shape, not typed children.
	ChildrenOf(id ID) []ID
}

type scopeKind int

const (
	scopeModule scopeKind = iota
	scopeLambda
	scopeLet
)

type binding struct {
	kind  BindingKind
	defID ID
}

type scopeNode struct {
	id       ID
	parent   ID
	hasParent bool
	kind     scopeKind
	bindings map[string]binding
}

// ScopeTree is the concrete Lookup implementation built from a Module.
// It walks the module's definition list once, assigning one scopeNode
// per scope-introducing construct (the module itself, every lambda,
// every let-in), and answers Lookup by walking parent links outward
// until a binding is found or the module root is exhausted.
type ScopeTree struct {
	scopes  map[ID]*scopeNode
	exprs   map[ID]Expr
	module  *Module
}

// BuildScopeTree constructs a ScopeTree over m, recording every
// scope-introducing node and every name it binds.
func BuildScopeTree(m *Module) *ScopeTree {
	t := &ScopeTree{
		scopes: make(map[ID]*scopeNode),
		exprs:  make(map[ID]Expr),
		module: m,
	}
	root := &scopeNode{id: m.ID, kind: scopeModule, bindings: make(map[string]binding)}
	t.scopes[m.ID] = root
	t.indexDefinitions(m.ID, m.Definitions)
	return t
}

func (t *ScopeTree) indexDefinitions(scope ID, defs []Definition) {
	root := t.scopes[scope]
	for _, d := range defs {
		switch def := d.(type) {
		case *ConstDef:
			root.bindings[def.Name] = binding{BindConst, def.ID}
		case *VarDef:
			root.bindings[def.Name] = binding{BindVar, def.ID}
		case *TypeDef:
			root.bindings[def.Name] = binding{BindTypedef, def.ID}
		case *Opdef:
			kind := BindVal
			if def.Qualifier == QualDef || def.Qualifier == QualDefRec || def.Qualifier == QualPureDef {
				kind = BindDef
			}
			root.bindings[def.Name] = binding{kind, def.ID}
			t.indexOpdefBody(scope, def)
		case *NestedModuleDef:
			nested := &scopeNode{id: def.Module.ID, parent: scope, hasParent: true, kind: scopeModule, bindings: make(map[string]binding)}
			t.scopes[def.Module.ID] = nested
			t.indexDefinitions(def.Module.ID, def.Module.Definitions)
		case *AssumeDef:
			if def.Body != nil {
				t.indexExpr(scope, def.ID, def.Body)
			}
		}
	}
}

// indexOpdefBody indexes an Opdef's body. If the opdef carries
// parameters (the module-level equivalent of a lambda — "def f(x) =
// ..."), it gets its own scope node, exactly the way Lambda does, so a
// NameRef to x inside the body resolves to BindParam. Per spec.md's
// naming rule for the per-parameter quantified variable (e_<n>_<the
// id of the body expression>, not the id of the lambda/opdef itself),
// the binding's defID is the body's own expression id.
func (t *ScopeTree) indexOpdefBody(scope ID, def *Opdef) {
	if def.Body == nil {
		return
	}
	if len(def.Params) == 0 {
		t.indexExpr(scope, def.ID, def.Body)
		return
	}
	node := &scopeNode{id: def.ID, parent: scope, hasParent: true, kind: scopeLambda, bindings: make(map[string]binding)}
	bodyID := def.Body.ExprID()
	for _, p := range def.Params {
		node.bindings[p] = binding{BindParam, bodyID}
	}
	t.scopes[def.ID] = node
	t.indexExpr(def.ID, bodyID, def.Body)
}

// indexExpr walks e recording every Lambda/LetIn as a new scope
// chained to parent, and recording param bindings inside a lambda's
// own scope keyed by the lambda body's own expression id (per
// spec.md's e_<name>_<body id> naming rule, reproduced in
// internal/infer's paramVarName). definingID is passed down the
// recursion but not consulted: a NameRef's answer comes from the
// scope chain above its Scope id, and the parameter bindings recorded
// on each scope node already carry the right body id.
func (t *ScopeTree) indexExpr(parent ID, definingID ID, e Expr) {
	t.exprs[e.ExprID()] = e
	switch n := e.(type) {
	case *Literal:
		// leaf
	case *NameRef:
		// leaf; n.Scope is assumed already set by the IR producer
	case *Apply:
		for _, a := range n.Args {
			t.indexExpr(parent, definingID, a)
		}
	case *Lambda:
		node := &scopeNode{id: n.ID, parent: parent, hasParent: true, kind: scopeLambda, bindings: make(map[string]binding)}
		bodyID := n.Body.ExprID()
		for _, p := range n.Params {
			node.bindings[p] = binding{BindParam, bodyID}
		}
		t.scopes[n.ID] = node
		t.indexExpr(n.ID, bodyID, n.Body)
	case *LetIn:
		node := &scopeNode{id: n.ID, parent: parent, hasParent: true, kind: scopeLet, bindings: make(map[string]binding)}
		kind := BindVal
		if n.Def.Qualifier == QualDef || n.Def.Qualifier == QualDefRec || n.Def.Qualifier == QualPureDef {
			kind = BindDef
		}
		node.bindings[n.Def.Name] = binding{kind, n.Def.ID}
		t.scopes[n.ID] = node
		t.indexOpdefBody(n.ID, n.Def)
		t.indexExpr(n.ID, definingID, n.Body)
	}
}

// Lookup implements the Lookup interface.
func (t *ScopeTree) Lookup(name string, scope ID) LookupResult {
	cur, ok := t.scopes[scope]
	for ok {
		if b, found := cur.bindings[name]; found {
			return LookupResult{Kind: b.kind, DefID: b.defID, Found: true}
		}
		if !cur.hasParent {
			break
		}
		cur, ok = t.scopes[cur.parent]
	}
	return LookupResult{Found: false}
}

// ChildrenOf implements the Lookup interface.
func (t *ScopeTree) ChildrenOf(id ID) []ID {
	if e, ok := t.exprs[id]; ok {
		return ChildrenOf(e)
	}
	return nil
}

// Expr returns the expression indexed under id, if any. Drivers
// outside the inferrer (the CLI, diagnostics) use this to describe a
// result or error by the node it belongs to without re-deriving the
// module's expression index themselves.
func (t *ScopeTree) Expr(id ID) (Expr, bool) {
	e, ok := t.exprs[id]
	return e, ok
}

// Module returns the module this tree was built from.
func (t *ScopeTree) Module() *Module { return t.module }
