// Package module wraps the tree-sitter parse tree for one shader source
// file and the incremental edit operations that keep it in sync with its
// content.
package module

import (
	"fmt"
	"log/slog"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/boralg/shadersense/shading"
)

// ShaderModule is one shader source file plus its parse tree. It is
// mutable only through Parser's edit APIs, so the tree always stays
// consistent with Content.
type ShaderModule struct {
	FilePath string
	Language shading.Language
	Content  string
	Tree     *tree_sitter.Tree

	lineStarts []int
}

// LogValue lets the module appear in structured log records without
// dumping its tree or full content.
func (m *ShaderModule) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file_path", m.FilePath),
		slog.String("language", m.Language.String()),
		slog.Int("content_len", len(m.Content)),
	)
}

// RootNode returns the tree's root node.
func (m *ShaderModule) RootNode() tree_sitter.Node {
	return m.Tree.RootNode()
}

// Close releases the module's parse tree.
func (m *ShaderModule) Close() {
	if m.Tree != nil {
		m.Tree.Close()
		m.Tree = nil
	}
}

func (m *ShaderModule) invalidateLineIndex() {
	m.lineStarts = nil
}

// lineIndex lazily computes and caches byte offsets of line starts,
// invalidated on every edit (position conversions are hot). It backs
// the module's own OffsetAt/PositionAt; shading.OffsetAt/PositionAt
// scan the content from the start on every call instead.
func (m *ShaderModule) lineIndex() []int {
	if m.lineStarts != nil {
		return m.lineStarts
	}
	starts := []int{0}
	for i := 0; i < len(m.Content); i++ {
		if m.Content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	m.lineStarts = starts
	return starts
}

// OffsetAt converts a position within this module to a byte offset,
// using the cached line index instead of scanning from scratch.
func (m *ShaderModule) OffsetAt(p shading.Position) (int, error) {
	starts := m.lineIndex()
	if int(p.Line) >= len(starts) {
		return 0, fmt.Errorf("module: line %d out of range in %s", p.Line, m.FilePath)
	}
	lineStart := starts[p.Line]
	lineEnd := len(m.Content)
	if int(p.Line)+1 < len(starts) {
		lineEnd = starts[p.Line+1] - 1
	}
	offset := lineStart + int(p.Column)
	if offset > lineEnd {
		return 0, fmt.Errorf("module: column %d out of range on line %d in %s", p.Column, p.Line, m.FilePath)
	}
	return offset, nil
}

// PositionAt converts a byte offset within this module back to a
// Position, using the cached line index.
func (m *ShaderModule) PositionAt(offset int) (shading.Position, error) {
	if offset < 0 || offset > len(m.Content) {
		return shading.Position{}, fmt.Errorf("module: offset %d out of range in %s", offset, m.FilePath)
	}
	starts := m.lineIndex()
	// binary search for the last line start <= offset
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return shading.NewPosition(m.FilePath, uint32(lo), uint32(offset-starts[lo])), nil
}
