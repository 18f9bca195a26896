// Package symbols turns a parsed module into a scope-aware symbol table
// using per-language tree queries, following a query-rule/filter
// extraction pipeline.
package symbols

import (
	"log/slog"

	"github.com/boralg/shadersense/shading"
)

// Type is the closed set of symbol kinds.
type Type int

const (
	Types Type = iota
	Constants
	Variables
	Functions
	Macros
	Include
	Keyword
)

func (t Type) String() string {
	switch t {
	case Types:
		return "types"
	case Constants:
		return "constants"
	case Variables:
		return "variables"
	case Functions:
		return "functions"
	case Macros:
		return "macros"
	case Include:
		return "include"
	case Keyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Requirement gates an intrinsic's availability on compilation
// parameters. A nil Requirement is always satisfied.
type Requirement struct {
	MinShaderModel   string
	MinLanguage      int
	Requires16Bit    bool
	Client           string
	MinSpirvVersion  string
	RequiredCapFlags []string
}

// Documentation holds a symbol's extracted doc comment, split into the
// full text and a short usage line the way a hover panel would show it.
type Documentation struct {
	Full  string
	Usage string
}

// Symbol is one declaration, intrinsic, or preprocessor artifact
// surfaced by the extractor or the intrinsics store. A Symbol with no
// Range is an intrinsic: synthetic, not attributable to source. A Symbol
// with an empty ScopeStack is file-scope.
type Symbol struct {
	Label       string
	Kind        Type
	Range       *shading.FileRange
	ScopeStack  []shading.Scope
	Stages      []shading.Stage
	Requirement *Requirement
	Doc         Documentation
	Signature   string
}

// IsIntrinsic reports whether the symbol has no source range.
func (s Symbol) IsIntrinsic() bool {
	return s.Range == nil
}

// IsFileScope reports whether the symbol has no enclosing scope.
func (s Symbol) IsFileScope() bool {
	return len(s.ScopeStack) == 0
}

func (s Symbol) HasStage(stage shading.Stage) bool {
	if len(s.Stages) == 0 {
		return true
	}
	for _, st := range s.Stages {
		if st == stage {
			return true
		}
	}
	return false
}

// List maps a symbol kind to its ordered sequence of symbols (insertion
// order within a kind).
type List struct {
	byKind map[Type][]Symbol
}

func NewList() *List {
	return &List{byKind: make(map[Type][]Symbol)}
}

func (l *List) Add(s Symbol) {
	l.byKind[s.Kind] = append(l.byKind[s.Kind], s)
}

func (l *List) Of(kind Type) []Symbol {
	return l.byKind[kind]
}

// All returns every symbol across every kind, kind by kind in the
// iteration order of the Type constants.
func (l *List) All() []Symbol {
	var out []Symbol
	for kind := Types; kind <= Keyword; kind++ {
		out = append(out, l.byKind[kind]...)
	}
	return out
}

// Retain keeps only symbols of kind for which keep returns true,
// preserving insertion order. Used by language Filters.
func (l *List) Retain(kind Type, keep func(Symbol) bool) {
	syms := l.byKind[kind]
	if syms == nil {
		return
	}
	kept := syms[:0]
	for _, s := range syms {
		if keep(s) {
			kept = append(kept, s)
		}
	}
	l.byKind[kind] = kept
}

// RetainAll applies keep across every kind.
func (l *List) RetainAll(keep func(Symbol) bool) {
	for kind := Types; kind <= Keyword; kind++ {
		l.Retain(kind, keep)
	}
}

// DocumentSymbols returns the symbols suitable for a "go to symbol" view:
// keywords and rangeless (intrinsic) symbols are excluded.
func (l *List) DocumentSymbols() []Symbol {
	var out []Symbol
	for kind := Types; kind <= Keyword; kind++ {
		if kind == Keyword {
			continue
		}
		for _, s := range l.byKind[kind] {
			if s.Range != nil {
				out = append(out, s)
			}
		}
	}
	return out
}

func (l *List) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(l.byKind))
	for kind := Types; kind <= Keyword; kind++ {
		attrs = append(attrs, slog.Int(kind.String(), len(l.byKind[kind])))
	}
	return slog.GroupValue(attrs...)
}
