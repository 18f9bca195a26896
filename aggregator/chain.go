package aggregator

import (
	"errors"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

// ChainLink is one identifier in a field-access chain, together with its
// source range.
type ChainLink struct {
	Label string
	Range shading.Range
}

// FindLabelChain returns the ordered chain of `a.b.c` field-access
// identifiers ending at position, innermost field first (e.g. for a
// cursor on `c` in `a.b.c`, the result is [c, b, a]) — mirroring
// find_label_chain_at_position_in_node's traversal order. Only HLSL
// resolves chains; GLSL and WGSL report shaderr.NoSymbol, since neither
// grammar binding distinguishes identifier/field_identifier the way the
// HLSL one does.
func FindLabelChain(m *module.ShaderModule, position shading.Position) ([]ChainLink, error) {
	if m.Language != shading.Hlsl {
		return nil, shaderr.NoSymbol
	}
	return findInNode(m.RootNode(), []byte(m.Content), m.FilePath, position)
}

func findInNode(node tree_sitter.Node, content []byte, filePath string, position shading.Position) ([]ChainLink, error) {
	r := nodeRange(node, filePath)
	if !r.Contain(position) {
		return nil, shaderr.NoSymbol
	}

	switch node.Kind() {
	case "identifier":
		return []ChainLink{{Label: node.Utf8Text(content), Range: r}}, nil
	case "field_identifier":
		return fieldChain(node, content, filePath)
	default:
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			if child == nil {
				continue
			}
			chain, err := findInNode(*child, content, filePath, position)
			if err == nil {
				return chain, nil
			}
			if !errors.Is(err, shaderr.NoSymbol) {
				return nil, err
			}
		}
		return nil, shaderr.NoSymbol
	}
}

// fieldChain walks backward from a field_identifier through its
// enclosing field-expression's "argument" chain, collecting each level's
// field name until it bottoms out at a base identifier with no further
// "argument" field.
func fieldChain(node tree_sitter.Node, content []byte, filePath string) ([]ChainLink, error) {
	prev := node.PrevNamedSibling()
	if prev == nil {
		return nil, &shaderr.InternalError{Message: "field_identifier with no preceding argument sibling"}
	}

	var chain []ChainLink
	current := *prev
	for {
		field := current.NextNamedSibling()
		if field == nil || field.Kind() != "field_identifier" {
			kind := "<none>"
			if field != nil {
				kind = field.Kind()
			}
			return nil, &shaderr.InternalError{Message: "unhandled case in field identifier chain: " + kind}
		}
		chain = append(chain, ChainLink{Label: field.Utf8Text(content), Range: nodeRange(*field, filePath)})

		argument := current.ChildByFieldName("argument")
		if argument == nil {
			chain = append(chain, ChainLink{Label: current.Utf8Text(content), Range: nodeRange(current, filePath)})
			return chain, nil
		}
		current = *argument
	}
}

func nodeRange(node tree_sitter.Node, filePath string) shading.Range {
	start := node.StartPosition()
	end := node.EndPosition()
	return shading.NewRange(
		shading.NewPosition(filePath, uint32(start.Row), uint32(start.Column)),
		shading.NewPosition(filePath, uint32(end.Row), uint32(end.Column)),
	)
}
