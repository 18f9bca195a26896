package shading

import "testing"

func TestLanguageFromFilename(t *testing.T) {
	cases := []struct {
		name     string
		wantLang Language
		wantOk   bool
	}{
		{"tonemap.hlsl", Hlsl, true},
		{"common.HLSLI", Hlsl, true},
		{"tonemap.frag", Glsl, true},
		{"common.glsl", Glsl, true},
		{"triangle.wgsl", Wgsl, true},
		{"readme.txt", Language(0), false},
		{"noext", Language(0), false},
	}
	for _, c := range cases {
		lang, ok := LanguageFromFilename(c.name)
		if ok != c.wantOk {
			t.Errorf("LanguageFromFilename(%q) ok = %v, want %v", c.name, ok, c.wantOk)
			continue
		}
		if ok && lang != c.wantLang {
			t.Errorf("LanguageFromFilename(%q) = %v, want %v", c.name, lang, c.wantLang)
		}
	}
}
