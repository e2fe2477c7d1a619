package irtext

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

var textParser = participle.MustBuild[fileNode](
	participle.Lexer(textLexer),
	participle.Elide("Whitespace", "Comment"),
)

// parse runs the participle grammar over src and returns the raw
// concrete syntax tree, before any conversion to ir.
func parse(src string) (*fileNode, error) {
	f, err := textParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("irtext: %w", err)
	}
	if f.Module == nil {
		return nil, fmt.Errorf("irtext: expected a module")
	}
	return f, nil
}
