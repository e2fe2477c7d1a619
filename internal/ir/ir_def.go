package ir

// Definition is any top-level or nested module member. Like Expr, it
// is consumed through a type switch rather than a shared method set.
type Definition interface {
	DefID() ID
	DefName() string
	isDefinition()
}

type ConstDef struct {
	ID   ID
	Name string
	Type ValueType
}

type VarDef struct {
	ID   ID
	Name string
	Type ValueType
}

// Opdef is the catch-all for val/def/defrec/pureval/puredef/action/run/
// temporal definitions. Per spec.md §4.E, the Qualifier never changes
// how its effect is inferred.
type Opdef struct {
	ID         ID
	Qualifier  Qualifier
	Visibility Visibility
	Name       string
	Params     []string
	TypeAnn    ValueType
	Body       Expr
}

type TypeDef struct {
	ID       ID
	Name     string
	Underlying ValueType
}

type AssumeDef struct {
	ID   ID
	Name string
	Body Expr
}

type ImportDef struct {
	ID         ID
	ModuleName string
	Alias      string
}

type NestedModuleDef struct {
	ID     ID
	Module *Module
}

type InstanceDef struct {
	ID         ID
	ModuleName string
	Bindings   map[string]Expr
}

func (d *ConstDef) DefID() ID   { return d.ID }
func (d *VarDef) DefID() ID     { return d.ID }
func (d *Opdef) DefID() ID      { return d.ID }
func (d *TypeDef) DefID() ID    { return d.ID }
func (d *AssumeDef) DefID() ID  { return d.ID }
func (d *ImportDef) DefID() ID  { return d.ID }
func (d *NestedModuleDef) DefID() ID { return d.ID }
func (d *InstanceDef) DefID() ID { return d.ID }

func (d *ConstDef) DefName() string        { return d.Name }
func (d *VarDef) DefName() string          { return d.Name }
func (d *Opdef) DefName() string           { return d.Name }
func (d *TypeDef) DefName() string         { return d.Name }
func (d *AssumeDef) DefName() string       { return d.Name }
func (d *ImportDef) DefName() string       { return d.Alias }
func (d *NestedModuleDef) DefName() string { return d.Module.Name }
func (d *InstanceDef) DefName() string     { return d.ModuleName }

func (*ConstDef) isDefinition()        {}
func (*VarDef) isDefinition()          {}
func (*Opdef) isDefinition()           {}
func (*TypeDef) isDefinition()         {}
func (*AssumeDef) isDefinition()       {}
func (*ImportDef) isDefinition()       {}
func (*NestedModuleDef) isDefinition() {}
func (*InstanceDef) isDefinition()     {}

// Module is the top-level container: an ordered sequence of
// definitions plus the names of modules it extends.
type Module struct {
	ID          ID
	Name        string
	Definitions []Definition
	Extends     []string
}
