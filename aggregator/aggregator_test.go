package aggregator

import (
	"testing"

	"github.com/boralg/shadersense/preprocessor"
	"github.com/boralg/shadersense/shading"
	"github.com/boralg/shadersense/symbols"
)

func pos(file string, line, col uint32) shading.Position {
	return shading.NewPosition(file, line, col)
}

func rng(file string, startLine, startCol, endLine, endCol uint32) shading.FileRange {
	return shading.NewFileRange(file, shading.NewRange(pos(file, startLine, startCol), pos(file, endLine, endCol)))
}

func declSymbol(label, file string, line uint32) symbols.Symbol {
	r := rng(file, line, 0, line, uint32(len(label)))
	return symbols.Symbol{Label: label, Kind: symbols.Functions, Range: &r}
}

func TestAggregateDedupesAcrossMultipleIncludePaths(t *testing.T) {
	common := Unit{
		Preprocessor: &preprocessor.Preprocessor{},
		Symbols:      list(declSymbol("sharedFn", "common.hlsl", 0)),
	}
	a := Unit{
		Preprocessor: &preprocessor.Preprocessor{
			Includes: []preprocessor.Include{preprocessor.NewInclude("common.hlsl", "common.hlsl", rng("a.hlsl", 0, 0, 0, 10))},
		},
		Symbols: list(),
	}
	b := Unit{
		Preprocessor: &preprocessor.Preprocessor{
			Includes: []preprocessor.Include{preprocessor.NewInclude("common.hlsl", "common.hlsl", rng("b.hlsl", 0, 0, 0, 10))},
		},
		Symbols: list(),
	}
	entry := Unit{
		Preprocessor: &preprocessor.Preprocessor{
			Includes: []preprocessor.Include{
				preprocessor.NewInclude("a.hlsl", "a.hlsl", rng("entry.hlsl", 0, 0, 0, 5)),
				preprocessor.NewInclude("b.hlsl", "b.hlsl", rng("entry.hlsl", 1, 0, 1, 5)),
			},
		},
		Symbols: list(),
	}

	g := Graph{
		EntryPath: "entry.hlsl",
		Units: map[string]Unit{
			"entry.hlsl":  entry,
			"a.hlsl":      a,
			"b.hlsl":      b,
			"common.hlsl": common,
		},
	}

	out, _ := Aggregate(g, nil)
	count := 0
	for _, s := range out.All() {
		if s.Label == "sharedFn" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected sharedFn to appear exactly once despite two inclusion paths, got %d", count)
	}
}

func TestAggregateExcludesUnreachableFiles(t *testing.T) {
	entry := Unit{Preprocessor: &preprocessor.Preprocessor{}, Symbols: list(declSymbol("entryFn", "entry.hlsl", 0))}
	orphan := Unit{Preprocessor: &preprocessor.Preprocessor{}, Symbols: list(declSymbol("orphanFn", "orphan.hlsl", 0))}

	g := Graph{
		EntryPath: "entry.hlsl",
		Units: map[string]Unit{
			"entry.hlsl":  entry,
			"orphan.hlsl": orphan,
		},
	}

	out, _ := Aggregate(g, nil)
	for _, s := range out.All() {
		if s.Label == "orphanFn" {
			t.Error("orphan.hlsl is not reachable from entry.hlsl's include graph and should be excluded")
		}
	}
}

func TestMacroVisibilityBeforeInclude(t *testing.T) {
	included := Unit{
		Preprocessor: &preprocessor.Preprocessor{},
		Symbols:      list(),
	}
	entry := Unit{
		Preprocessor: &preprocessor.Preprocessor{
			Defines: []preprocessor.Define{
				preprocessor.NewDefine("BEFORE", rng("entry.hlsl", 0, 0, 0, 6), nil),
			},
			Includes: []preprocessor.Include{
				preprocessor.NewInclude("inc.hlsl", "inc.hlsl", rng("entry.hlsl", 1, 0, 1, 10)),
			},
		},
		Symbols: list(),
	}

	g := Graph{
		EntryPath: "entry.hlsl",
		Units: map[string]Unit{
			"entry.hlsl": entry,
			"inc.hlsl":   included,
		},
	}

	out, env := Aggregate(g, nil)
	if !hasMacro(out, "BEFORE") {
		t.Error("BEFORE macro should be in the aggregate symbol universe")
	}
	if !env.Visible("inc.hlsl", "BEFORE") {
		t.Error("BEFORE is defined before the #include and should be visible inside inc.hlsl")
	}
}

func TestMacroDefinedInsideIncludeVisibleToLaterSibling(t *testing.T) {
	firstInclude := Unit{
		Preprocessor: &preprocessor.Preprocessor{
			Defines: []preprocessor.Define{
				preprocessor.NewDefine("INSIDE", rng("first.hlsl", 0, 0, 0, 6), nil),
			},
		},
		Symbols: list(),
	}
	secondInclude := Unit{Preprocessor: &preprocessor.Preprocessor{}, Symbols: list()}
	entry := Unit{
		Preprocessor: &preprocessor.Preprocessor{
			Includes: []preprocessor.Include{
				preprocessor.NewInclude("first.hlsl", "first.hlsl", rng("entry.hlsl", 0, 0, 0, 10)),
				preprocessor.NewInclude("second.hlsl", "second.hlsl", rng("entry.hlsl", 1, 0, 1, 10)),
			},
		},
		Symbols: list(),
	}

	g := Graph{
		EntryPath: "entry.hlsl",
		Units: map[string]Unit{
			"entry.hlsl":  entry,
			"first.hlsl":  firstInclude,
			"second.hlsl": secondInclude,
		},
	}

	out, env := Aggregate(g, nil)
	if !hasMacro(out, "INSIDE") {
		t.Error("INSIDE macro defined in first.hlsl should survive into the aggregate universe")
	}
	if !env.Visible("second.hlsl", "INSIDE") {
		t.Error("INSIDE is defined inside first.hlsl, the sibling that precedes second.hlsl, and should be visible there")
	}
}

func TestMacroDefinedInsideIncludeNotVisibleToPrecedingSibling(t *testing.T) {
	firstInclude := Unit{Preprocessor: &preprocessor.Preprocessor{}, Symbols: list()}
	secondInclude := Unit{
		Preprocessor: &preprocessor.Preprocessor{
			Defines: []preprocessor.Define{
				preprocessor.NewDefine("LATER", rng("second.hlsl", 0, 0, 0, 5), nil),
			},
		},
		Symbols: list(),
	}
	entry := Unit{
		Preprocessor: &preprocessor.Preprocessor{
			Includes: []preprocessor.Include{
				preprocessor.NewInclude("first.hlsl", "first.hlsl", rng("entry.hlsl", 0, 0, 0, 10)),
				preprocessor.NewInclude("second.hlsl", "second.hlsl", rng("entry.hlsl", 1, 0, 1, 10)),
			},
		},
		Symbols: list(),
	}

	g := Graph{
		EntryPath: "entry.hlsl",
		Units: map[string]Unit{
			"entry.hlsl":  entry,
			"first.hlsl":  firstInclude,
			"second.hlsl": secondInclude,
		},
	}

	out, env := Aggregate(g, nil)
	if !hasMacro(out, "LATER") {
		t.Error("LATER macro defined in second.hlsl should still appear in the aggregate symbol universe")
	}
	if env.Visible("first.hlsl", "LATER") {
		t.Error("LATER is defined inside second.hlsl, which is included after first.hlsl, and must not be visible there")
	}
	if env.Visible("entry.hlsl", "LATER") {
		t.Error("LATER is defined inside an include and must not be visible to the parent before that #include line")
	}
}

func hasMacro(l *symbols.List, label string) bool {
	for _, s := range l.Of(symbols.Macros) {
		if s.Label == label {
			return true
		}
	}
	return false
}

func list(syms ...symbols.Symbol) *symbols.List {
	l := symbols.NewList()
	for _, s := range syms {
		l.Add(s)
	}
	return l
}
