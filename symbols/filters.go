package symbols

import "github.com/boralg/shadersense/shading"

// StageFilter retains a symbol only if its declared stage set contains
// the file's inferred stage or is empty; files with no inferable stage
// are left unfiltered. Used by both HLSL and GLSL per
// hlsl_filter.rs/glsl_filter.rs.
type StageFilter struct{}

func (StageFilter) FilterSymbols(list *List, fileName string) {
	stage := shading.StageFromFilename(fileName)
	if stage == shading.StageNone {
		return
	}
	list.RetainAll(func(s Symbol) bool {
		return s.HasStage(stage)
	})
}

// VersionFilter is GLSL's reserved hook for filtering symbols whose
// requirement does not match the observed #version directive. It is a
// deliberate no-op until intrinsics requirement data is verified
// against real GLSL compiler behavior.
type VersionFilter struct{}

func (VersionFilter) FilterSymbols(list *List, fileName string) {}
