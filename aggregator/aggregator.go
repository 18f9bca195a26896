// Package aggregator composes the full symbol universe visible from an
// entry file: intrinsics, the entry file's own declarations, and the
// declarations of every file transitively reachable through its include
// graph.
package aggregator

import (
	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/preprocessor"
	"github.com/boralg/shadersense/shading"
	"github.com/boralg/shadersense/symbols"
)

// Unit bundles one parsed file's module, preprocessor facts, and
// extracted declaration symbols — the three pieces of per-file state the
// aggregator needs.
type Unit struct {
	Module       *module.ShaderModule
	Preprocessor *preprocessor.Preprocessor
	Symbols      *symbols.List
}

// Graph is the set of loaded units reachable from EntryPath, keyed by
// each unit's absolute file path (the same strings carried in
// preprocessor.Include.AbsolutePath). A unit missing from Units is
// treated as unresolved: its include contributes no symbols beyond the
// Include-kind placeholder.
type Graph struct {
	Units     map[string]Unit
	EntryPath string
}

type dedupKey struct {
	label string
	kind  symbols.Type
	file  string
	rng   shading.Range
}

func keyFor(s symbols.Symbol) dedupKey {
	k := dedupKey{label: s.Label, kind: s.Kind}
	if s.Range != nil {
		k.file = s.Range.FilePath
		k.rng = s.Range.Range
	}
	return k
}

// Environment maps each visited file's absolute path to the macro
// definitions visible to it: every macro defined earlier in an ancestor
// file, or in a preceding sibling include of that ancestor, in textual
// source order. A macro defined only inside one include is absent from
// every other file's entry, including a sibling include that precedes
// it and the files that include it before the #include line is reached.
type Environment map[string][]preprocessor.Define

// Visible reports whether a macro named name is visible at path per the
// aggregated macro visibility rule.
func (e Environment) Visible(path, name string) bool {
	for _, d := range e[path] {
		if d.Name == name {
			return true
		}
	}
	return false
}

// Aggregate builds the symbol universe for g: intrinsicsView's symbols
// plus every declaration, macro, and include record reachable from the
// entry file, each appearing once even when reachable through multiple
// inclusion paths. The returned Environment records, for every visited
// file, which macros were in scope at the point that file was reached.
func Aggregate(g Graph, intrinsicsView *symbols.List) (*symbols.List, Environment) {
	out := symbols.NewList()
	seen := make(map[dedupKey]bool)

	if intrinsicsView != nil {
		addAll(out, seen, intrinsicsView.All())
	}

	visited := make(map[string]bool)
	env := make(Environment)
	walk(g, g.EntryPath, nil, out, seen, visited, env)
	return out, env
}

func addAll(out *symbols.List, seen map[dedupKey]bool, syms []symbols.Symbol) {
	for _, s := range syms {
		add(out, seen, s)
	}
}

func add(out *symbols.List, seen map[dedupKey]bool, s symbols.Symbol) {
	k := keyFor(s)
	if seen[k] {
		return
	}
	seen[k] = true
	out.Add(s)
}

// walk visits path's unit (if loaded), contributing its declaration
// symbols immediately and its macro/include records in source order so
// that macro visibility follows textual preprocessing order: a macro
// defined before an include is passed into that include's walk via
// macroEnv, and a macro defined inside an include is folded back into
// macroEnv on return so later siblings at the same level see it. The
// macroEnv snapshot recorded into env[path] on entry is exactly what
// Environment.Visible reports for that file, the gate the rule requires.
func walk(g Graph, path string, macroEnv []preprocessor.Define, out *symbols.List, seen map[dedupKey]bool, visited map[string]bool, env Environment) []preprocessor.Define {
	if visited[path] {
		return macroEnv
	}
	visited[path] = true
	env[path] = macroEnv

	unit, ok := g.Units[path]
	if !ok {
		return macroEnv
	}

	addAll(out, seen, unit.Symbols.All())

	defines := unit.Preprocessor.Defines
	includes := unit.Preprocessor.Includes
	di, ii := 0, 0
	for di < len(defines) || ii < len(includes) {
		takeDefine := ii >= len(includes)
		if !takeDefine && di < len(defines) {
			takeDefine = defines[di].Range.Range.Start.Less(includes[ii].Range.Range.Start)
		}

		if takeDefine {
			d := defines[di]
			macroEnv = append(macroEnv, d)
			add(out, seen, defineSymbol(d))
			di++
			continue
		}

		inc := includes[ii]
		add(out, seen, includeSymbol(inc))
		if inc.AbsolutePath != "" {
			macroEnv = walk(g, inc.AbsolutePath, append([]preprocessor.Define(nil), macroEnv...), out, seen, visited, env)
		}
		ii++
	}

	return macroEnv
}

func defineSymbol(d preprocessor.Define) symbols.Symbol {
	r := d.Range
	doc := ""
	if d.Value != nil {
		doc = *d.Value
	}
	return symbols.Symbol{
		Label: d.Name,
		Kind:  symbols.Macros,
		Range: &r,
		Doc:   symbols.Documentation{Usage: doc},
	}
}

func includeSymbol(inc preprocessor.Include) symbols.Symbol {
	r := inc.Range
	return symbols.Symbol{
		Label: inc.RelativePath,
		Kind:  symbols.Include,
		Range: &r,
		Doc:   symbols.Documentation{Usage: inc.AbsolutePath},
	}
}
