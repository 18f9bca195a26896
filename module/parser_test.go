package module

import (
	"testing"

	"github.com/boralg/shadersense/shading"
)

func TestCreateAndEditRoundTrip(t *testing.T) {
	p := NewParser(shading.Hlsl)
	defer p.Close()

	content := "float4 main() : SV_Target {\n  return float4(1,1,1,1);\n}\n"
	m, err := p.Create("shader.hlsl", shading.Hlsl, content)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer m.Close()

	if m.Content != content {
		t.Fatalf("module content mismatch")
	}

	whole, err := shading.Whole(m.FilePath, m.Content)
	if err != nil {
		t.Fatalf("Whole: %v", err)
	}
	newContent := "float4 main() : SV_Target {\n  return float4(0,0,0,1);\n}\n"
	if err := p.Edit(m, whole, newContent); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if m.Content != newContent {
		t.Fatalf("content after replace_all = %q, want %q", m.Content, newContent)
	}
}

func TestOffsetPositionUseLineCache(t *testing.T) {
	p := NewParser(shading.Glsl)
	defer p.Close()

	m, err := p.Create("shader.glsl", shading.Glsl, "void main() {\n  int x = 1;\n}\n")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer m.Close()

	pos, err := m.PositionAt(16)
	if err != nil {
		t.Fatalf("PositionAt: %v", err)
	}
	if pos.Line != 1 || pos.Column != 2 {
		t.Fatalf("PositionAt(16) = %v, want line 1 col 2", pos)
	}
	back, err := m.OffsetAt(pos)
	if err != nil {
		t.Fatalf("OffsetAt: %v", err)
	}
	if back != 16 {
		t.Fatalf("OffsetAt round trip = %d, want 16", back)
	}
}
