// Package shading defines the closed data model shared by every other
// package in this module: shading languages, pipeline stages, and the
// position/range types used to address source text.
package shading

import (
	"path/filepath"
	"strings"
)

// Language identifies one of the three shading languages this module
// understands.
type Language int

const (
	Hlsl Language = iota
	Glsl
	Wgsl
)

func (l Language) String() string {
	switch l {
	case Hlsl:
		return "hlsl"
	case Glsl:
		return "glsl"
	case Wgsl:
		return "wgsl"
	default:
		return "unknown"
	}
}

var languageExtensions = map[string]Language{
	".hlsl":  Hlsl,
	".hlsli": Hlsl,
	".fx":    Hlsl,
	".fxh":   Hlsl,
	".glsl":  Glsl,
	".vert":  Glsl,
	".frag":  Glsl,
	".geom":  Glsl,
	".comp":  Glsl,
	".tesc":  Glsl,
	".tese":  Glsl,
	".wgsl":  Wgsl,
}

// LanguageFromFilename infers a shading language from name's final
// extension (e.g. "tonemap.frag" -> Glsl, "common.hlsli" -> Hlsl). The
// second result is false when the extension is unrecognized.
func LanguageFromFilename(name string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	lang, ok := languageExtensions[ext]
	return lang, ok
}
