// Package config loads a project's shaderlsp.jsonc file: search
// directories, path remapping, per-language compilation defaults, and
// validator overrides, tolerating comments in the source JSON.
package config

import (
	"encoding/json"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/boralg/shadersense/shaderr"
)

// Project is one workspace's shader tooling configuration.
type Project struct {
	IncludeDirs          []string          `json:"include_dirs,omitempty"`
	PathRemapping        map[string]string `json:"path_remapping,omitempty"`
	Defines              map[string]string `json:"defines,omitempty"`
	HlslShaderModel      string            `json:"hlsl_shader_model,omitempty"`
	HlslVersion          string            `json:"hlsl_version,omitempty"`
	HlslEnable16BitTypes bool              `json:"hlsl_enable_16bit_types,omitempty"`
	GlslClient           string            `json:"glsl_client,omitempty"`
	GlslSpirv            string            `json:"glsl_spirv,omitempty"`
	CompilerDiagnostics  bool              `json:"compiler_diagnostics,omitempty"`
	DxcPath              string            `json:"dxc_path,omitempty"`
	GlslangPath          string            `json:"glslang_path,omitempty"`
	NagaPath             string            `json:"naga_path,omitempty"`
}

// UnmarshalJSON pre-seeds defaults before delegating to encoding/json:
// an aliased type breaks the recursive UnmarshalJSON call, and fields
// the project file omits keep their default rather than a JSON zero
// value.
func (p *Project) UnmarshalJSON(content []byte) error {
	type alias Project
	cfg := alias(Default())
	if err := json.Unmarshal(content, &cfg); err != nil {
		return err
	}
	*p = Project(cfg)
	return nil
}

// Default returns the configuration used when no project file is
// present.
func Default() Project {
	return Project{
		HlslShaderModel:     "6.0",
		HlslVersion:         "2021",
		GlslClient:          "vulkan1.1",
		GlslSpirv:           "1.3",
		CompilerDiagnostics: true,
		DxcPath:             "dxc",
		GlslangPath:         "glslangValidator",
		NagaPath:            "naga",
	}
}

// Load reads and parses path as JSONC, returning Default() unchanged if
// the file does not exist.
func Load(path string) (Project, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Project{}, &shaderr.IoError{Path: path, Err: err}
	}

	var p Project
	if err := json.Unmarshal(jsonc.ToJSON(raw), &p); err != nil {
		return Project{}, &shaderr.ParseError{FilePath: path, Reason: err.Error()}
	}
	return p, nil
}
