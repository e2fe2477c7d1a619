package infer

import "fmt"

// freshGen hands out strictly increasing, prefix-distinguished names
// for effect and entity variables. A single monotonic counter backs
// both prefixes so that the sequence in which names are minted always
// matches the order in which inference visited the nodes that needed
// them, whichever kind they were — that ordering, reset once per Run,
// is the whole of what the Determinism requirement asks for.
type freshGen struct {
	n int
}

func newFreshGen() *freshGen { return &freshGen{} }

func (f *freshGen) nextEffectVar() string {
	f.n++
	return fmt.Sprintf("r%d", f.n)
}

func (f *freshGen) nextEntityVar() string {
	f.n++
	return fmt.Sprintf("v%d", f.n)
}
