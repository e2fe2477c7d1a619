package ir

// ChildrenOf returns the ordered child expression ids of expr, for
// drivers that want to traverse the IR without re-deriving the
// recursion structure themselves. The inferrer's own post-order walk
// (internal/infer) recurses directly on the typed nodes instead, since
// it needs the typed children, not just their ids; this helper exists
// for callers (diagnostics, the CLI) that only need the shape.
func ChildrenOf(e Expr) []ID {
	switch n := e.(type) {
	case *Literal:
		return nil
	case *NameRef:
		return nil
	case *Apply:
		ids := make([]ID, len(n.Args))
		for i, a := range n.Args {
			ids[i] = a.ExprID()
		}
		return ids
	case *Lambda:
		return []ID{n.Body.ExprID()}
	case *LetIn:
		ids := []ID{n.Def.ID}
		if n.Def.Body != nil {
			ids = append(ids, n.Def.Body.ExprID())
		}
		return append(ids, n.Body.ExprID())
	default:
		return nil
	}
}
