package symbols

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

// Rule is a query-based symbol parser: it supplies a tree pattern and a
// function mapping each match of that pattern to zero or more symbols.
// The query/match/scope shape is a closed set per language, matched by
// table rather than by open inheritance.
type Rule interface {
	// Query returns the tree-sitter query string this rule matches
	// against the module's root node.
	Query() string
	// Process turns one match into symbols appended to list. scopeStack
	// holds only the scopes that contain the match's primary capture,
	// already computed by the extractor.
	Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error
}

// Filter removes symbols from a List in place, given the source file
// name (used to infer stage).
type Filter interface {
	FilterSymbols(list *List, fileName string)
}

// captureByName returns the first node captured under the given name,
// looking it up by index in names the way GetQueryMatches resolves
// query.CaptureNames()[capture.Index] into a map key.
func captureByName(match *tree_sitter.QueryMatch, names []string, name string) (tree_sitter.Node, bool) {
	for _, c := range match.Captures {
		if names[c.Index] == name {
			return c.Node, true
		}
	}
	return tree_sitter.Node{}, false
}

// Extractor runs a scope query followed by a table of symbol Rules, then
// a chain of Filters, over a parsed module.
type Extractor struct {
	language   *tree_sitter.Language
	scopeQuery *tree_sitter.Query
	rules      []compiledRule
	filters    []Filter
}

type compiledRule struct {
	rule  Rule
	query *tree_sitter.Query
}

// NewExtractor compiles scopeQueryStr and every rule's query once
// against language, caching them at construction instead of
// recompiling per file.
func NewExtractor(language *tree_sitter.Language, scopeQueryStr string, rules []Rule, filters []Filter) (*Extractor, error) {
	scopeQuery, err := tree_sitter.NewQuery(language, scopeQueryStr)
	if err != nil {
		return nil, &shaderr.InternalError{Message: "compiling scope query: " + err.Error()}
	}
	e := &Extractor{language: language, scopeQuery: scopeQuery, filters: filters}
	for _, r := range rules {
		q, err := tree_sitter.NewQuery(language, r.Query())
		if err != nil {
			return nil, &shaderr.InternalError{Message: "compiling rule query: " + err.Error()}
		}
		e.rules = append(e.rules, compiledRule{rule: r, query: q})
	}
	return e, nil
}

// scopes runs the scope query over the module and returns every matched
// range as a shading.Scope.
func (e *Extractor) scopes(m *module.ShaderModule) []shading.Scope {
	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(e.scopeQuery, m.RootNode(), []byte(m.Content))
	var scopes []shading.Scope
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			scopes = append(scopes, nodeScope(capture.Node, m.FilePath))
		}
	}
	return scopes
}

func nodeScope(node tree_sitter.Node, filePath string) shading.Scope {
	return shading.NewScope(nodeRange(node, filePath))
}

func nodeRange(node tree_sitter.Node, filePath string) shading.Range {
	start := node.StartPosition()
	end := node.EndPosition()
	return shading.NewRange(
		shading.NewPosition(filePath, uint32(start.Row), uint32(start.Column)),
		shading.NewPosition(filePath, uint32(end.Row), uint32(end.Column)),
	)
}

// scopeStack returns every scope that contains range, in the order they
// were discovered by the scope query, i.e. query iteration order rather
// than re-sorted by nesting depth.
func scopeStack(scopes []shading.Scope, r shading.Range) []shading.Scope {
	var stack []shading.Scope
	for _, s := range scopes {
		if s.ContainsRange(r) {
			stack = append(stack, s)
		}
	}
	return stack
}

// Extract runs the scope query, then every rule, then every filter, over
// m. A SymbolQueryError from one rule does not stop extraction; remaining
// rules still run and contribute their symbols, per the recoverable-
// error policy: a bad rule degrades extraction, it does not abort it.
func (e *Extractor) Extract(m *module.ShaderModule) (*List, []error) {
	scopes := e.scopes(m)
	list := NewList()
	var errs []error

	content := []byte(m.Content)
	for _, cr := range e.rules {
		cursor := tree_sitter.NewQueryCursor()
		matches := cursor.Matches(cr.query, m.RootNode(), content)
		names := cr.query.CaptureNames()
		for match := matches.Next(); match != nil; match = matches.Next() {
			primary := match.Captures[0].Node
			stack := scopeStack(scopes, nodeRange(primary, m.FilePath))
			if err := cr.rule.Process(match, names, m.FilePath, m.Content, stack, list); err != nil {
				errs = append(errs, err)
			}
		}
		cursor.Close()
	}

	for _, f := range e.filters {
		f.FilterSymbols(list, m.FilePath)
	}

	return list, errs
}

// Close releases the extractor's compiled queries.
func (e *Extractor) Close() {
	e.scopeQuery.Close()
	for _, cr := range e.rules {
		cr.query.Close()
	}
}
