package preprocessor

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

// Rule is a query-based preprocessor parser: one tree pattern, matched
// against the module root, whose matches append Defines/Includes to a
// Preprocessor record. Include rules additionally resolve paths through
// ctx. Mirrors symbols.Rule's shape; kept distinct since preprocessor
// rules need the include-resolution Context the symbol rules don't.
type Rule interface {
	Query() string
	Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, ctx *Context, pre *Preprocessor) error
}

// RegionFinder computes conditional-region spans for a module. HLSL
// performs real evaluation; GLSL and WGSL each get their own stub
// returning no regions (see glsl.go/wgsl.go) rather than sharing one
// no-op type, so a future real GLSL evaluator only needs a type swap.
type RegionFinder interface {
	FindRegions(m *module.ShaderModule, pre *Preprocessor) []shading.Range
}

type compiledRule struct {
	rule  Rule
	query *tree_sitter.Query
}

// Evaluator runs a fixed set of preprocessor Rules over a module, then a
// RegionFinder, producing one Preprocessor record.
type Evaluator struct {
	rules   []compiledRule
	regions RegionFinder
}

func NewEvaluator(language *tree_sitter.Language, rules []Rule, regions RegionFinder) (*Evaluator, error) {
	e := &Evaluator{regions: regions}
	for _, r := range rules {
		q, err := tree_sitter.NewQuery(language, r.Query())
		if err != nil {
			return nil, &shaderr.InternalError{Message: "compiling preprocessor rule query: " + err.Error()}
		}
		e.rules = append(e.rules, compiledRule{rule: r, query: q})
	}
	return e, nil
}

// Evaluate runs every rule over m in order, then the region finder. ctx's
// directory stack must already be positioned for m (the caller is
// responsible for EnterFile/ExitFile around recursive evaluation of
// included modules).
func (e *Evaluator) Evaluate(m *module.ShaderModule, ctx *Context) (*Preprocessor, []error) {
	pre := &Preprocessor{}
	var errs []error

	root := m.RootNode()
	content := []byte(m.Content)
	for _, cr := range e.rules {
		cursor := tree_sitter.NewQueryCursor()
		matches := cursor.Matches(cr.query, root, content)
		names := cr.query.CaptureNames()
		for match := matches.Next(); match != nil; match = matches.Next() {
			if err := cr.rule.Process(match, names, m.FilePath, m.Content, ctx, pre); err != nil {
				errs = append(errs, err)
			}
		}
		cursor.Close()
	}

	if e.regions != nil {
		pre.Regions = e.regions.FindRegions(m, pre)
	}

	return pre, errs
}

func (e *Evaluator) Close() {
	for _, cr := range e.rules {
		cr.query.Close()
	}
}
