package shading

import "testing"

func TestStageFromFilename(t *testing.T) {
	cases := []struct {
		name string
		want Stage
	}{
		{"tonemap.frag.glsl", Fragment},
		{"tonemap.FRAG.glsl", Fragment},
		{"triangle.vert", Vertex},
		{"triangle.vs.hlsl", Vertex},
		{"blur.comp", Compute},
		{"scene.rgen", RayGen},
		{"common.glsl", StageNone},
		{"noext", StageNone},
	}
	for _, c := range cases {
		if got := StageFromFilename(c.name); got != c.want {
			t.Errorf("StageFromFilename(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
