package validator

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/boralg/shadersense/diagnostic"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

// Glslang validates GLSL by shelling out to glslangValidator.
type Glslang struct {
	Command string
}

// glslangDiagnostic matches glslangValidator's
// "severity: stage-unused:line:col: message" and the simpler
// "ERROR: path:line: message" forms it emits depending on target.
var glslangDiagnostic = regexp.MustCompile(`(?m)^(ERROR|WARNING):\s+(?:[^:]*:)?(\d+):\s*(.*)$`)

func (g *Glslang) Validate(content, filePath string, params Params, include IncludeCallback) (diagnostic.List, error) {
	ws, err := stage(content, filePath, params.Includes)
	if err != nil {
		return diagnostic.Empty(), err
	}
	defer ws.Close()
	notifyIncludes(ws.IncludeDirs, include)

	args := []string{"-S", glslStageFlag(params.ShaderStage)}
	for _, dir := range ws.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	for name, value := range params.Defines {
		if value == "" {
			args = append(args, "-D"+name)
		} else {
			args = append(args, "-D"+fmt.Sprintf("%s=%s", name, value))
		}
	}
	if params.GlslClient != "" {
		args = append(args, "--target-env", params.GlslClient)
	}
	args = append(args, ws.EntryPath)

	bin := g.Command
	if bin == "" {
		bin = "glslangValidator"
	}
	cmd := exec.Command(bin, args...)
	var stdout strings.Builder
	cmd.Stdout = &stdout
	runErr := cmd.Run()

	if runErr == nil {
		return diagnostic.Empty(), nil
	}
	if _, isExitErr := runErr.(*exec.ExitError); !isExitErr {
		return diagnostic.Empty(), &shaderr.ValidationError{Message: runErr.Error()}
	}

	return parseGlslangOutput(stdout.String(), filePath)
}

func glslStageFlag(stage shading.Stage) string {
	switch stage {
	case shading.Vertex:
		return "vert"
	case shading.Fragment:
		return "frag"
	case shading.Compute:
		return "comp"
	case shading.Geometry:
		return "geom"
	case shading.TessControl:
		return "tesc"
	case shading.TessEval:
		return "tese"
	default:
		return "frag"
	}
}

func parseGlslangOutput(output, filePath string) (diagnostic.List, error) {
	matches := glslangDiagnostic.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return diagnostic.Empty(), &shaderr.InternalError{Message: "glslangValidator failed with no parsable diagnostics: " + output}
	}

	list := diagnostic.Empty()
	for _, m := range matches {
		line, _ := strconv.Atoi(m[2])
		if line > 0 {
			line--
		}
		pos := shading.NewPosition(filePath, uint32(line), 0)
		severity := diagnostic.Error
		if strings.EqualFold(m[1], "WARNING") {
			severity = diagnostic.Warning
		}
		list.Push(diagnostic.Diagnostic{
			Severity: severity,
			Message:  strings.TrimSpace(m[3]),
			Range:    shading.NewRange(pos, pos),
		})
	}
	return list, nil
}
