package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "does-not-exist.jsonc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p, Default()) {
		t.Errorf("expected Default() for a missing file, got %+v", p)
	}
}

func TestLoadParsesCommentsAndPreservesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shaderlsp.jsonc")
	content := `{
		// project-specific include search path
		"include_dirs": ["./shaders/include"],
		"hlsl_shader_model": "6.6",
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.IncludeDirs) != 1 || p.IncludeDirs[0] != "./shaders/include" {
		t.Errorf("unexpected IncludeDirs: %+v", p.IncludeDirs)
	}
	if p.HlslShaderModel != "6.6" {
		t.Errorf("expected overridden shader model 6.6, got %q", p.HlslShaderModel)
	}
	if p.GlslClient != "vulkan1.1" {
		t.Errorf("expected default glsl_client to survive when the file doesn't override it, got %q", p.GlslClient)
	}
	if p.DxcPath != "dxc" {
		t.Errorf("expected default dxc_path to survive, got %q", p.DxcPath)
	}
}

func TestLoadRejectsMalformedJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.jsonc")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed JSONC")
	}
}
