package preprocessor

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

// glslIncludeRule resolves `#include "path"` / `#include <path>`
// directives. Query literal ported from
// GlslIncludeTreePreprocessorParser::get_query.
type glslIncludeRule struct{}

func (glslIncludeRule) Query() string {
	return `(preproc_include
		path: [(string_literal)(system_lib_string)] @include
	)`
}

func (glslIncludeRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, ctx *Context, pre *Preprocessor) error {
	node, ok := captureByName(match, names, "include")
	if !ok {
		return &shaderr.SymbolQueryError{Reason: "include rule missing include capture"}
	}
	raw := node.Utf8Text([]byte(content))
	relativePath := stripQuotesOrAngles(raw)

	absolutePath, found := ctx.SearchPathInIncludes(relativePath)
	if !found {
		// Unresolved includes are silently omitted from the symbol graph
		// but still preserved as an Include record so consumers can warn.
		pre.Includes = append(pre.Includes, NewInclude(relativePath, "", shading.NewFileRange(filePath, nodeRange(node, filePath))))
		return nil
	}
	pre.Includes = append(pre.Includes, NewInclude(relativePath, absolutePath, shading.NewFileRange(filePath, nodeRange(node, filePath))))
	return nil
}

func stripQuotesOrAngles(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// glslDefineRule extracts `#define NAME [value]`. Query literal ported
// from GlslDefineTreePreprocessorParser::get_query.
type glslDefineRule struct{}

func (glslDefineRule) Query() string {
	return `(preproc_def
		name: (identifier) @define.label
		value: (preproc_arg)? @define.value
	)`
}

func (glslDefineRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, ctx *Context, pre *Preprocessor) error {
	nameNode, ok := captureByName(match, names, "define.label")
	if !ok {
		return &shaderr.SymbolQueryError{Reason: "define rule missing define.label capture"}
	}
	name := nameNode.Utf8Text([]byte(content))
	var value *string
	if valueNode, ok := captureByName(match, names, "define.value"); ok {
		trimmed := strings.TrimSpace(valueNode.Utf8Text([]byte(content)))
		value = &trimmed
	}
	pre.Defines = append(pre.Defines, NewDefine(name, shading.NewFileRange(filePath, nodeRange(nameNode, filePath)), value))
	return nil
}

// GlslRegionFinder is GLSL's conditional-region stub: it always returns
// no regions. A separate, intentionally trivial type from
// WgslRegionFinder so a future real GLSL evaluator only needs a type
// swap.
type GlslRegionFinder struct{}

func (GlslRegionFinder) FindRegions(m *module.ShaderModule, pre *Preprocessor) []shading.Range {
	return nil
}

func nodeRange(node tree_sitter.Node, filePath string) shading.Range {
	start := node.StartPosition()
	end := node.EndPosition()
	return shading.NewRange(
		shading.NewPosition(filePath, uint32(start.Row), uint32(start.Column)),
		shading.NewPosition(filePath, uint32(end.Row), uint32(end.Column)),
	)
}

func captureByName(match *tree_sitter.QueryMatch, names []string, name string) (tree_sitter.Node, bool) {
	for _, c := range match.Captures {
		if names[c.Index] == name {
			return c.Node, true
		}
	}
	return tree_sitter.Node{}, false
}
