package module

import (
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_glsl "github.com/tree-sitter-grammars/tree-sitter-glsl/bindings/go"
	tree_sitter_hlsl "github.com/tree-sitter-grammars/tree-sitter-hlsl/bindings/go"
	tree_sitter_wgsl "github.com/tree-sitter-grammars/tree-sitter-wgsl-bevy/bindings/go"

	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

// Parser builds and incrementally edits the syntax tree for modules of
// one shading language. A Parser is not safe for concurrent use; distinct
// modules processed in parallel need distinct Parser instances, since the
// underlying tree-sitter parser carries mutable state.
type Parser struct {
	language *tree_sitter.Language
	ts       *tree_sitter.Parser
	mu       sync.Mutex
}

// NewParser builds a Parser for lang. Panics if the grammar fails to
// load, which only happens if a binding package is broken at build time.
func NewParser(lang shading.Language) *Parser {
	p := &Parser{ts: tree_sitter.NewParser()}
	switch lang {
	case shading.Hlsl:
		p.language = tree_sitter.NewLanguage(tree_sitter_hlsl.Language())
	case shading.Glsl:
		p.language = tree_sitter.NewLanguage(tree_sitter_glsl.Language())
	case shading.Wgsl:
		p.language = tree_sitter.NewLanguage(tree_sitter_wgsl.Language())
	default:
		panic("module: unknown shading language")
	}
	p.ts.SetLanguage(p.language)
	return p
}

// Create parses content from scratch into a new ShaderModule.
func (p *Parser) Create(filePath string, lang shading.Language, content string) (*ShaderModule, error) {
	p.mu.Lock()
	tree := p.ts.Parse([]byte(content), nil)
	p.ts.Reset()
	p.mu.Unlock()

	if tree == nil {
		return nil, &shaderr.ParseError{FilePath: filePath, Reason: "grammar produced no tree"}
	}

	return &ShaderModule{
		FilePath: filePath,
		Language: lang,
		Content:  content,
		Tree:     tree,
	}, nil
}

// ReplaceAll replaces the whole content of module, equivalent to Edit
// over the module's full range.
func (p *Parser) ReplaceAll(m *ShaderModule, newContent string) error {
	whole, err := shading.Whole(m.FilePath, m.Content)
	if err != nil {
		return err
	}
	return p.Edit(m, whole, newContent)
}

// Edit replaces the byte range [start, end) of module.Content with
// newText, informs a copy of the prior tree of the edit, and reparses
// using that copy as a hint. Fails with ParseError if the reparse yields no tree; module is
// left untouched in that case.
func (p *Parser) Edit(m *ShaderModule, oldRange shading.FileRange, newText string) error {
	startOffset, err := m.OffsetAt(oldRange.Range.Start)
	if err != nil {
		return err
	}
	endOffset, err := m.OffsetAt(oldRange.Range.End)
	if err != nil {
		return err
	}

	newContent := m.Content[:startOffset] + newText + m.Content[endOffset:]

	startPoint := tree_sitter.Point{Row: uint(oldRange.Range.Start.Line), Column: uint(oldRange.Range.Start.Column)}
	oldEndPoint := tree_sitter.Point{Row: uint(oldRange.Range.End.Line), Column: uint(oldRange.Range.End.Column)}
	newEndPoint := endPointAfterInsert(startPoint, newText)

	edit := tree_sitter.InputEdit{
		StartByte:      uint(startOffset),
		OldEndByte:     uint(endOffset),
		NewEndByte:     uint(startOffset + len(newText)),
		StartPosition:  startPoint,
		OldEndPosition: oldEndPoint,
		NewEndPosition: newEndPoint,
	}

	// The edit is applied to a copy of the prior tree so that a failed
	// reparse leaves m.Tree exactly as it was.
	var hint *tree_sitter.Tree
	if m.Tree != nil {
		hint = m.Tree.Clone()
		hint.Edit(&edit)
	}

	p.mu.Lock()
	tree := p.ts.Parse([]byte(newContent), hint)
	p.ts.Reset()
	p.mu.Unlock()

	if hint != nil {
		hint.Close()
	}
	if tree == nil {
		return &shaderr.ParseError{FilePath: m.FilePath, Reason: "grammar produced no tree on reparse"}
	}

	if m.Tree != nil {
		m.Tree.Close()
	}
	m.Tree = tree
	m.Content = newContent
	m.invalidateLineIndex()
	return nil
}

// endPointAfterInsert computes the new end point for text inserted at
// start: if text spans multiple lines the row advances by the number of
// newlines and the column becomes the length of the last line; otherwise
// the row is unchanged and the column advances by the text's length.
func endPointAfterInsert(start tree_sitter.Point, text string) tree_sitter.Point {
	lines := 0
	lastLineLen := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines++
			lastLineLen = 0
		} else {
			lastLineLen++
		}
	}
	if lines == 0 {
		return tree_sitter.Point{Row: start.Row, Column: start.Column + uint(len(text))}
	}
	return tree_sitter.Point{Row: start.Row + uint(lines), Column: uint(lastLineLen)}
}

// Close releases the parser's tree-sitter resources.
func (p *Parser) Close() {
	p.ts.Close()
}
