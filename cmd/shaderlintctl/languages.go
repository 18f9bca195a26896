package main

import (
	"fmt"

	"github.com/boralg/shadersense/preprocessor"
	"github.com/boralg/shadersense/shading"
	"github.com/boralg/shadersense/symbols"
	"github.com/boralg/shadersense/validator"
)

// newExtractor returns the symbol extractor for lang. Callers own the
// returned Extractor and must Close it.
func newExtractor(lang shading.Language) (*symbols.Extractor, error) {
	switch lang {
	case shading.Hlsl:
		return symbols.NewHlslExtractor()
	case shading.Glsl:
		return symbols.NewGlslExtractor()
	case shading.Wgsl:
		return symbols.NewWgslExtractor()
	default:
		return nil, fmt.Errorf("unsupported language %s", lang)
	}
}

// newPreprocessorEvaluator returns the preprocessor evaluator for lang.
// Callers own the returned Evaluator and must Close it.
func newPreprocessorEvaluator(lang shading.Language) (*preprocessor.Evaluator, error) {
	switch lang {
	case shading.Hlsl:
		return preprocessor.NewHlslEvaluator()
	case shading.Glsl:
		return preprocessor.NewGlslEvaluator()
	case shading.Wgsl:
		return preprocessor.NewWgslEvaluator()
	default:
		return nil, fmt.Errorf("unsupported language %s", lang)
	}
}

// newValidator returns the external-compiler validator configured for
// lang, using the paths recorded in the project configuration.
func newValidator(lang shading.Language, cfg *Config) (validator.Validator, error) {
	switch lang {
	case shading.Hlsl:
		return &validator.Dxc{Command: cfg.project.DxcPath}, nil
	case shading.Glsl:
		return &validator.Glslang{Command: cfg.project.GlslangPath}, nil
	case shading.Wgsl:
		return &validator.Naga{Command: cfg.project.NagaPath}, nil
	default:
		return nil, fmt.Errorf("unsupported language %s", lang)
	}
}
