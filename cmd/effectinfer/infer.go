package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/specterlang/effectcore/internal/cache"
	"github.com/specterlang/effectcore/internal/config"
	"github.com/specterlang/effectcore/internal/effect"
	"github.com/specterlang/effectcore/internal/infer"
	"github.com/specterlang/effectcore/internal/ir"
	"github.com/specterlang/effectcore/internal/irtext"
)

func inferCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "infer <file.irtext>",
		Short: "Infer the effect of every definition in an irtext fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(configPath)
			if err != nil {
				return err
			}
			colorOn := shouldColor(settings.Color.Mode, noColor)

			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("infer: read %s: %w", args[0], err)
			}

			m, err := irtext.Parse(string(src))
			if err != nil {
				return fmt.Errorf("infer: parse %s: %w", args[0], err)
			}

			tree := ir.BuildScopeTree(m)
			run := infer.NewRun(tree)
			run.SetMaxDepth(settings.Inference.MaxDepth)
			run.InferModule(m)

			var store *cache.Store
			if settings.Cache.Enabled {
				store, err = cache.Open(settings.Cache.Path)
				if err != nil {
					return err
				}
				defer store.Close()
				populateCache(store, m, run, string(src))
			}

			printResults(cmd, tree, run, colorOn)

			if len(run.Errors()) > 0 {
				return fmt.Errorf("infer: %d definition(s) failed", len(run.Errors()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI highlighting of Read/Update/Temporal components")
	return cmd
}

// shouldColor resolves the effective color decision from the
// configured mode, the --no-color override, and (for "auto") whether
// stdout is a real terminal — the same isatty.IsTerminal /
// IsCygwinTerminal check the teacher's own terminal-aware builtins use,
// plus the conventional NO_COLOR / TERM=dumb escape hatches.
func shouldColor(mode string, noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

func printResults(cmd *cobra.Command, tree *ir.ScopeTree, run *infer.Run, colorOn bool) {
	out := cmd.OutOrStdout()
	ids := collectIDs(tree, run)
	for _, id := range ids {
		label := describe(tree, id)
		if errEntry, failed := run.Errors()[id]; failed {
			fmt.Fprintf(out, "id#%d %s: error: %s\n", id, label, errEntry.Error())
			continue
		}
		scheme, ok := run.Results()[id]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "id#%d %s: %s\n", id, label, highlight(effect.Print(scheme.Effect), colorOn))
	}
}

func collectIDs(tree *ir.ScopeTree, run *infer.Run) []ir.ID {
	seen := make(map[ir.ID]struct{})
	for id := range run.Results() {
		seen[id] = struct{}{}
	}
	for id := range run.Errors() {
		seen[id] = struct{}{}
	}
	ids := make([]ir.ID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func describe(tree *ir.ScopeTree, id ir.ID) string {
	e, ok := tree.Expr(id)
	if !ok {
		return "(definition)"
	}
	switch n := e.(type) {
	case *ir.Literal:
		return "literal"
	case *ir.NameRef:
		return fmt.Sprintf("name %s", n.Name)
	case *ir.Apply:
		return fmt.Sprintf("apply %s", n.Op)
	case *ir.Lambda:
		return "lambda"
	case *ir.LetIn:
		return "let"
	default:
		return "expr"
	}
}

const (
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// highlight wraps each Read/Update/Temporal component name with a
// fixed color when colorOn, leaving the rest of the printed form
// untouched. It works on the already-canonicalized print string rather
// than the Effect tree, since by the time a scheme reaches the CLI its
// Read/Update/Temporal keywords appear verbatim and in a stable order.
func highlight(s string, colorOn bool) string {
	if !colorOn {
		return s
	}
	s = strings.ReplaceAll(s, "Read", ansiGreen+"Read"+ansiReset)
	s = strings.ReplaceAll(s, "Update", ansiYellow+"Update"+ansiReset)
	s = strings.ReplaceAll(s, "Temporal", ansiRed+"Temporal"+ansiReset)
	return s
}

func populateCache(store *cache.Store, m *ir.Module, run *infer.Run, fingerprint string) {
	for id, scheme := range run.Results() {
		defName := enclosingDefName(m, id)
		key := cache.Key(m.Name, defName, id, fingerprint)
		entry := cache.Entry{
			EffectPrint: effect.Print(scheme.Effect),
			EffectVars:  joinKeys(scheme.EffectVars),
			EntityVars:  joinKeys(scheme.EntityVars),
		}
		_ = store.Put(key, entry)
	}
}

// enclosingDefName best-efforts a definition name for the cache key.
// It walks the module's top-level definitions and returns the first
// one whose own id matches, falling back to the module name: the
// inference core has no notion of "the definition an id belongs to"
// since it operates purely over ids, so this is CLI-only bookkeeping.
func enclosingDefName(m *ir.Module, id ir.ID) string {
	for _, d := range m.Definitions {
		if d.DefID() == id {
			return d.DefName()
		}
	}
	return m.Name
}

func joinKeys(set map[string]struct{}) string {
	names := make([]string, 0, len(set))
	for k := range set {
		names = append(names, k)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ","
		}
		out += n
	}
	return out
}
