// Package validator obtains external-compiler diagnostics for a shader
// module by invoking a per-language command-line compiler and mapping
// its output onto the diagnostic taxonomy.
package validator

import (
	"github.com/boralg/shadersense/diagnostic"
	"github.com/boralg/shadersense/shading"
)

// Params mirrors ValidationParams: the compilation context a validator
// needs beyond the raw source text.
type Params struct {
	EntryPoint           string
	ShaderStage          shading.Stage
	Includes             []string
	Defines              map[string]string
	PathRemapping        map[string]string
	HlslShaderModel      string
	HlslVersion          string
	HlslEnable16BitTypes bool
	GlslClient           string
	GlslSpirv            string
}

// IncludeCallback receives include file paths during validation. The
// validators in this package run command-line compilers that resolve
// includes on their own: Dxc and Glslang call it once, before the
// compiler runs, for each file directly inside a staged include
// directory, and Naga never calls it. Its return values are not
// consulted and are not passed on to the compiler.
type IncludeCallback func(path string) (content string, ok bool)

// Validator obtains diagnostics for one module from an external
// compiler.
type Validator interface {
	Validate(content, filePath string, params Params, include IncludeCallback) (diagnostic.List, error)
}
