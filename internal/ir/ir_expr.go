package ir

// LiteralKind distinguishes the three literal shapes the language has;
// the literal's actual value is irrelevant to effect inference, so it
// is not even modeled here.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitBool
	LitStr
)

// Expr is any expression node. Every variant carries its own id;
// there is no shared embedded base struct because the node kinds are
// meant to be consumed through a type switch, not through a common
// interface surface.
type Expr interface {
	ExprID() ID
	isExpr()
}

// Literal is a leaf expression carrying no effect.
type Literal struct {
	ID   ID
	Kind LiteralKind
}

// NameRef is a reference to a const, var, val, def, or parameter name
// visible at Scope.
type NameRef struct {
	ID    ID
	Name  string
	Scope ID
}

// Apply is an operator or user-defined-operator application. Opcode is
// either a built-in name (see internal/builtin) or a user-defined
// operator name resolved through the lookup facility.
type Apply struct {
	ID    ID
	Op    string
	Scope ID
	Args  []Expr
}

// Lambda introduces Params as fresh bindings visible only inside Body.
type Lambda struct {
	ID     ID
	Params []string
	Body   Expr
}

// LetIn binds Def locally and evaluates Body in a scope where Def is
// visible; Def's own id is how its scheme gets recorded.
type LetIn struct {
	ID   ID
	Def  *Opdef
	Body Expr
}

func (e *Literal) ExprID() ID { return e.ID }
func (e *NameRef) ExprID() ID { return e.ID }
func (e *Apply) ExprID() ID   { return e.ID }
func (e *Lambda) ExprID() ID  { return e.ID }
func (e *LetIn) ExprID() ID   { return e.ID }

func (*Literal) isExpr() {}
func (*NameRef) isExpr() {}
func (*Apply) isExpr()   {}
func (*Lambda) isExpr()  {}
func (*LetIn) isExpr()   {}
