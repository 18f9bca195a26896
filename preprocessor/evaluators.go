package preprocessor

import "github.com/boralg/shadersense/symbols"

// NewHlslEvaluator builds the HLSL preprocessor Evaluator: include and
// define extraction plus real conditional-region evaluation.
func NewHlslEvaluator() (*Evaluator, error) {
	return NewEvaluator(symbols.HlslLanguage(), []Rule{hlslIncludeRule{}, hlslDefineRule{}}, HlslRegionFinder{})
}

// NewGlslEvaluator builds the GLSL preprocessor Evaluator: include and
// define extraction, conditional regions stubbed.
func NewGlslEvaluator() (*Evaluator, error) {
	return NewEvaluator(symbols.GlslLanguage(), []Rule{glslIncludeRule{}, glslDefineRule{}}, GlslRegionFinder{})
}

// NewWgslEvaluator builds the WGSL preprocessor Evaluator: no rules (WGSL
// has no C-style preprocessor), conditional regions stubbed.
func NewWgslEvaluator() (*Evaluator, error) {
	return NewEvaluator(symbols.WgslLanguage(), nil, WgslRegionFinder{})
}
