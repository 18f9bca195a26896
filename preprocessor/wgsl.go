package preprocessor

import (
	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/shading"
)

// WgslRegionFinder is WGSL's conditional-region stub. WGSL has no
// `#include`/`#define`/`#if` preprocessor at the language level (unlike
// HLSL/GLSL's C-family preprocessor), so WGSL's Evaluator carries no
// rules at all — only this region stub, kept as its own type rather than
// sharing GlslRegionFinder's so each language's stub can grow independently.
type WgslRegionFinder struct{}

func (WgslRegionFinder) FindRegions(m *module.ShaderModule, pre *Preprocessor) []shading.Range {
	return nil
}
