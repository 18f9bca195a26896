package preprocessor

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/shading"
)

// hlslIncludeRule mirrors glslIncludeRule's query and behavior: both
// grammars descend from the same preprocessor-directive grammar shape.
type hlslIncludeRule struct{ glslIncludeRule }

// hlslDefineRule mirrors glslDefineRule.
type hlslDefineRule struct{ glslDefineRule }

// HlslRegionFinder performs real conditional-region evaluation: it walks
// every #if/#ifdef/#ifndef node in the tree and, for each branch whose
// condition does not hold against the currently known #define
// environment, records the branch body as an inactive ShaderRange. Only
// HLSL does real evaluation here; GLSL and WGSL stub.
type HlslRegionFinder struct{}

func (HlslRegionFinder) FindRegions(m *module.ShaderModule, pre *Preprocessor) []shading.Range {
	defined := make(map[string]bool)
	for _, d := range pre.Defines {
		defined[d.Name] = true
	}

	var regions []shading.Range
	walkConditionals(m.RootNode(), []byte(m.Content), m.FilePath, defined, &regions)
	return regions
}

// walkConditionals recursively finds preproc_if/preproc_ifdef nodes and
// appends inactive branch ranges. It does not attempt full macro
// expression evaluation: #ifdef/#ifndef against the known define set are
// evaluated exactly, #if is evaluated only for the simple conditions
// evaluateSimpleCondition understands, and any other #if is left active
// (a false negative, never a false positive — safer than hiding code
// that might matter).
func walkConditionals(node tree_sitter.Node, content []byte, filePath string, defined map[string]bool, regions *[]shading.Range) {
	switch node.Kind() {
	case "preproc_ifdef":
		evaluateIfdef(node, content, filePath, defined, regions)
	case "preproc_if":
		evaluateIf(node, content, filePath, defined, regions)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child != nil {
			walkConditionals(*child, content, filePath, defined, regions)
		}
	}
}

func evaluateIfdef(node tree_sitter.Node, content []byte, filePath string, defined map[string]bool, regions *[]shading.Range) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := nameNode.Utf8Text(content)
	isIfndef := strings.Contains(directiveKeyword(node, content), "ifndef")

	holds := defined[name]
	if isIfndef {
		holds = !holds
	}
	if !holds {
		if body := conditionalBody(node); body != nil {
			*regions = append(*regions, nodeRange(*body, filePath))
		}
	} else if alt := node.ChildByFieldName("alternative"); alt != nil {
		*regions = append(*regions, nodeRange(*alt, filePath))
	}
}

func evaluateIf(node tree_sitter.Node, content []byte, filePath string, defined map[string]bool, regions *[]shading.Range) {
	condNode := node.ChildByFieldName("condition")
	if condNode == nil {
		return
	}
	cond := strings.TrimSpace(condNode.Utf8Text(content))
	holds, known := evaluateSimpleCondition(cond, defined)
	if !known {
		return
	}
	if !holds {
		if body := conditionalBody(node); body != nil {
			*regions = append(*regions, nodeRange(*body, filePath))
		}
	} else if alt := node.ChildByFieldName("alternative"); alt != nil {
		*regions = append(*regions, nodeRange(*alt, filePath))
	}
}

// evaluateSimpleCondition understands "defined(NAME)", "!defined(NAME)",
// bare "0"/"1", and a bare macro name treated as defined(name). Anything
// more complex is reported unknown.
func evaluateSimpleCondition(cond string, defined map[string]bool) (holds bool, known bool) {
	switch {
	case cond == "0":
		return false, true
	case cond == "1":
		return true, true
	case strings.HasPrefix(cond, "!defined(") && strings.HasSuffix(cond, ")"):
		name := strings.TrimSuffix(strings.TrimPrefix(cond, "!defined("), ")")
		return !defined[strings.TrimSpace(name)], true
	case strings.HasPrefix(cond, "defined(") && strings.HasSuffix(cond, ")"):
		name := strings.TrimSuffix(strings.TrimPrefix(cond, "defined("), ")")
		return defined[strings.TrimSpace(name)], true
	case isIdentifier(cond):
		return defined[cond], true
	default:
		return false, false
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return true
}

// directiveKeyword returns the raw text of a preproc_ifdef's leading
// directive token ("#ifdef"/"#ifndef"), needed since the grammar
// collapses both spellings into one node kind.
func directiveKeyword(node tree_sitter.Node, content []byte) string {
	if node.ChildCount() == 0 {
		return ""
	}
	first := node.Child(0)
	if first == nil {
		return ""
	}
	return first.Utf8Text(content)
}

// conditionalBody returns the node covering the branch taken when the
// condition holds — everything between the directive and its
// alternative/endif, modeled here as field "consequence" with a fallback
// of nil when the grammar doesn't expose one.
func conditionalBody(node tree_sitter.Node) *tree_sitter.Node {
	return node.ChildByFieldName("consequence")
}
