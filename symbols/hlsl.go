package symbols

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_hlsl "github.com/tree-sitter-grammars/tree-sitter-hlsl/bindings/go"

	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

// HlslLanguage loads the HLSL grammar once, lazily.
var hlslLanguage *tree_sitter.Language

func HlslLanguage() *tree_sitter.Language {
	if hlslLanguage == nil {
		hlslLanguage = tree_sitter.NewLanguage(tree_sitter_hlsl.Language())
	}
	return hlslLanguage
}

type hlslFunctionRule struct{}

func (hlslFunctionRule) Query() string {
	return `(function_definition declarator: (function_declarator declarator: (identifier) @function.name)) @function.def`
}

func (hlslFunctionRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error {
	nameNode, ok := captureByName(match, names, "function.name")
	if !ok {
		return &shaderr.SymbolQueryError{Reason: "function rule missing function.name capture"}
	}
	defNode, _ := captureByName(match, names, "function.def")
	fr := nodeRange(defNode, filePath)
	list.Add(Symbol{
		Label:      nameNode.Utf8Text([]byte(content)),
		Kind:       Functions,
		Range:      &shading.FileRange{FilePath: filePath, Range: nodeRange(nameNode, filePath)},
		ScopeStack: scopeStack,
		Signature:  contentSlice(content, fr),
	})
	return nil
}

type hlslVariableRule struct{}

func (hlslVariableRule) Query() string {
	return `(declaration declarator: (identifier) @variable.name) @variable.def`
}

func (hlslVariableRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error {
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

type hlslStructRule struct{}

func (hlslStructRule) Query() string {
	return `(struct_specifier name: (type_identifier) @type.name) @type.def`
}

func (hlslStructRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error {
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

// NewHlslExtractor builds the HLSL SymbolExtractor: function, variable,
// and struct declaration rules, compound-statement scopes, and the stage
// filter (HLSL has no version filter).
func NewHlslExtractor() (*Extractor, error) {
	return NewExtractor(
		HlslLanguage(),
		`(compound_statement) @scope`,
		[]Rule{hlslFunctionRule{}, hlslVariableRule{}, hlslStructRule{}},
		[]Filter{StageFilter{}},
	)
}

func contentSlice(content string, r shading.Range) string {
	start, err1 := shading.OffsetAt(content, r.Start)
	end, err2 := shading.OffsetAt(content, r.End)
	if err1 != nil || err2 != nil || start > end || end > len(content) {
		return ""
	}
	return content[start:end]
}
