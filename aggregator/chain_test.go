package aggregator

import (
	"errors"
	"testing"

	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

func TestFindLabelChainStubsNonHlsl(t *testing.T) {
	for _, lang := range []shading.Language{shading.Glsl, shading.Wgsl} {
		m := &module.ShaderModule{FilePath: "x", Language: lang, Content: "a.b.c;"}
		_, err := FindLabelChain(m, shading.NewPosition("x", 0, 0))
		if !errors.Is(err, shaderr.NoSymbol) {
			t.Errorf("language %s: expected NoSymbol, got %v", lang, err)
		}
	}
}
