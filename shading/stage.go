package shading

import (
	"path/filepath"
	"strings"
)

// Stage identifies a pipeline stage a shader or symbol is restricted to.
type Stage int

const (
	StageNone Stage = iota
	Vertex
	Fragment
	Compute
	Geometry
	TessControl
	TessEval
	RayGen
	Miss
	ClosestHit
	AnyHit
	Intersection
	Callable
	Mesh
	Task
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	case Compute:
		return "compute"
	case Geometry:
		return "geometry"
	case TessControl:
		return "tess_control"
	case TessEval:
		return "tess_eval"
	case RayGen:
		return "ray_gen"
	case Miss:
		return "miss"
	case ClosestHit:
		return "closest_hit"
	case AnyHit:
		return "any_hit"
	case Intersection:
		return "intersection"
	case Callable:
		return "callable"
	case Mesh:
		return "mesh"
	case Task:
		return "task"
	default:
		return "none"
	}
}

var stageSuffixes = map[string]Stage{
	".vert":  Vertex,
	".vs":    Vertex,
	".frag":  Fragment,
	".fs":    Fragment,
	".ps":    Fragment,
	".comp":  Compute,
	".cs":    Compute,
	".geom":  Geometry,
	".tesc":  TessControl,
	".tese":  TessEval,
	".mesh":  Mesh,
	".task":  Task,
	".rgen":  RayGen,
	".rmiss": Miss,
	".rchit": ClosestHit,
	".rahit": AnyHit,
	".rint":  Intersection,
	".rcall": Callable,
}

// StageFromFilename infers the pipeline stage from the suffix preceding a
// file's final extension, matched case-insensitively (e.g.
// "tonemap.frag.glsl" -> Fragment). A bare stage extension with no further
// file extension (e.g. "tonemap.vert") is also recognized. Returns
// StageNone when no recognized suffix is present.
func StageFromFilename(name string) Stage {
	parts := strings.Split(filepath.Base(name), ".")
	var candidate string
	switch {
	case len(parts) >= 3:
		candidate = "." + parts[len(parts)-2]
	case len(parts) == 2:
		candidate = "." + parts[len(parts)-1]
	default:
		return StageNone
	}
	if stage, ok := stageSuffixes[strings.ToLower(candidate)]; ok {
		return stage
	}
	return StageNone
}

var stageNames = map[string]Stage{
	"vertex":       Vertex,
	"fragment":     Fragment,
	"compute":      Compute,
	"geometry":     Geometry,
	"tess_control": TessControl,
	"tess_eval":    TessEval,
	"ray_gen":      RayGen,
	"miss":         Miss,
	"closest_hit":  ClosestHit,
	"any_hit":      AnyHit,
	"intersection": Intersection,
	"callable":     Callable,
	"mesh":         Mesh,
	"task":         Task,
}

// StageFromName maps a stage's String() spelling back to a Stage, the
// inverse used when parsing a stage name out of configuration or
// intrinsics JSON. Unrecognized names return StageNone.
func StageFromName(name string) Stage {
	if stage, ok := stageNames[strings.ToLower(name)]; ok {
		return stage
	}
	return StageNone
}
