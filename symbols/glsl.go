package symbols

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_glsl "github.com/tree-sitter-grammars/tree-sitter-glsl/bindings/go"

	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

var glslLanguage *tree_sitter.Language

func GlslLanguage() *tree_sitter.Language {
	if glslLanguage == nil {
		glslLanguage = tree_sitter.NewLanguage(tree_sitter_glsl.Language())
	}
	return glslLanguage
}

type glslFunctionRule struct{}

func (glslFunctionRule) Query() string {
	return `(function_definition declarator: (function_declarator declarator: (identifier) @function.name)) @function.def`
}

func (glslFunctionRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error {
	nameNode, ok := captureByName(match, names, "function.name")
	if !ok {
		return &shaderr.SymbolQueryError{Reason: "function rule missing function.name capture"}
	}
	defNode, _ := captureByName(match, names, "function.def")
	list.Add(Symbol{
		Label:      nameNode.Utf8Text([]byte(content)),
		Kind:       Functions,
		Range:      &shading.FileRange{FilePath: filePath, Range: nodeRange(nameNode, filePath)},
		ScopeStack: scopeStack,
		Signature:  contentSlice(content, nodeRange(defNode, filePath)),
	})
	return nil
}

type glslVariableRule struct{}

func (glslVariableRule) Query() string {
	return `(declaration declarator: (identifier) @variable.name) @variable.def`
}

func (glslVariableRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error {
	nameNode, ok := captureByName(match, names, "variable.name")
	if !ok {
		return &shaderr.SymbolQueryError{Reason: "variable rule missing variable.name capture"}
	}
	list.Add(Symbol{
		Label:      nameNode.Utf8Text([]byte(content)),
		Kind:       Variables,
		Range:      &shading.FileRange{FilePath: filePath, Range: nodeRange(nameNode, filePath)},
		ScopeStack: scopeStack,
	})
	return nil
}

type glslStructRule struct{}

func (glslStructRule) Query() string {
	return `(struct_specifier name: (type_identifier) @type.name) @type.def`
}

func (glslStructRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error {
	nameNode, ok := captureByName(match, names, "type.name")
	if !ok {
		return &shaderr.SymbolQueryError{Reason: "struct rule missing type.name capture"}
	}
	list.Add(Symbol{
		Label:      nameNode.Utf8Text([]byte(content)),
		Kind:       Types,
		Range:      &shading.FileRange{FilePath: filePath, Range: nodeRange(nameNode, filePath)},
		ScopeStack: scopeStack,
	})
	return nil
}

// NewGlslExtractor builds the GLSL SymbolExtractor. Declaration rules
// mirror HLSL's (both grammars descend from the same C-family shape);
// filters are VersionFilter then StageFilter, in that order.
func NewGlslExtractor() (*Extractor, error) {
	return NewExtractor(
		GlslLanguage(),
		`(compound_statement) @scope`,
		[]Rule{glslFunctionRule{}, glslVariableRule{}, glslStructRule{}},
		[]Filter{VersionFilter{}, StageFilter{}},
	)
}
