package symbols

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_wgsl "github.com/tree-sitter-grammars/tree-sitter-wgsl-bevy/bindings/go"

	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

var wgslLanguage *tree_sitter.Language

func WgslLanguage() *tree_sitter.Language {
	if wgslLanguage == nil {
		wgslLanguage = tree_sitter.NewLanguage(tree_sitter_wgsl.Language())
	}
	return wgslLanguage
}

type wgslFunctionRule struct{}

func (wgslFunctionRule) Query() string {
	return `(function_declaration name: (identifier) @function.name) @function.def`
}

func (wgslFunctionRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error {
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

type wgslGlobalVariableRule struct{}

func (wgslGlobalVariableRule) Query() string {
	return `(global_variable_declaration name: (identifier) @variable.name) @variable.def`
}

func (wgslGlobalVariableRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error {
	nameNode, ok := captureByName(match, names, "variable.name")
	if !ok {
		return &shaderr.SymbolQueryError{Reason: "global variable rule missing variable.name capture"}
	}
	list.Add(Symbol{
		Label:      nameNode.Utf8Text([]byte(content)),
		Kind:       Variables,
		Range:      &shading.FileRange{FilePath: filePath, Range: nodeRange(nameNode, filePath)},
		ScopeStack: scopeStack,
	})
	return nil
}

type wgslStructRule struct{}

func (wgslStructRule) Query() string {
	return `(struct_declaration name: (identifier) @type.name) @type.def`
}

func (wgslStructRule) Process(match *tree_sitter.QueryMatch, names []string, filePath, content string, scopeStack []shading.Scope, list *List) error {
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

// NewWgslExtractor builds the WGSL SymbolExtractor. WGSL has no filters:
// no stage or version filtering is applied to extracted WGSL symbols.
func NewWgslExtractor() (*Extractor, error) {
	return NewExtractor(
		WgslLanguage(),
		`(compound_statement) @scope`,
		[]Rule{wgslFunctionRule{}, wgslGlobalVariableRule{}, wgslStructRule{}},
		nil,
	)
}
