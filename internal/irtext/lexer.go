// Package irtext is a small textual fixture notation for building
// ir.Module trees directly, without any of the concrete-syntax
// parsing, name-resolution or type-checking machinery the spec
// explicitly keeps out of scope for the inference core. It exists for
// tests and the CLI demo: a compact, readable way to write down a
// module and its expressions instead of constructing ir structs by
// hand field-by-field.
package irtext

import "github.com/alecthomas/participle/v2/lexer"

// textLexer's keyword rules are listed ahead of Ident, exactly so that
// e.g. "let" lexes as LetKw and never as an Ident capture — the same
// ordering trick day43_type_inference_go's own participle lexer uses.
var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "ModuleKw", Pattern: `\bmodule\b`},
	{Name: "VarKw", Pattern: `\bvar\b`},
	{Name: "ConstKw", Pattern: `\bconst\b`},
	{Name: "LetKw", Pattern: `\blet\b`},
	{Name: "InKw", Pattern: `\bin\b`},
	{Name: "QualKw", Pattern: `\b(pureval|puredef|defrec|temporal|action|run|def|val)\b`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[(){},=\\]`},
	{Name: "Whitespace", Pattern: `\s+`},
})
