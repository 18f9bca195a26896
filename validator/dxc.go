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

// Dxc validates HLSL by shelling out to the dxc command-line compiler,
// using the same os/exec-plus-regexp-output-parsing shape as the other
// validators in this package.
type Dxc struct {
	// Command overrides the binary name, defaulting to "dxc".
	Command string
}

// dxcDiagnostic matches dxc/fxc's "path(line,col): severity CODE: message"
// diagnostic line format.
var dxcDiagnostic = regexp.MustCompile(`(?m)^(.+)\((\d+),(\d+)\):\s+(error|warning)\s+[A-Za-z0-9]+:\s+(.*)$`)

func (d *Dxc) Validate(content, filePath string, params Params, include IncludeCallback) (diagnostic.List, error) {
	ws, err := stage(content, filePath, params.Includes)
	if err != nil {
		return diagnostic.Empty(), err
	}
	defer ws.Close()
	notifyIncludes(ws.IncludeDirs, include)

	args := []string{"-T", hlslProfile(params), ws.EntryPath}
	for _, dir := range ws.IncludeDirs {
		args = append(args, "-I", dir)
	}
	for name, value := range params.Defines {
		if value == "" {
			args = append(args, "-D", name)
		} else {
			args = append(args, "-D", fmt.Sprintf("%s=%s", name, value))
		}
	}
	if params.EntryPoint != "" {
		args = append(args, "-E", params.EntryPoint)
	}
	if params.HlslEnable16BitTypes {
		args = append(args, "-enable-16bit-types")
	}

	bin := d.Command
	if bin == "" {
		bin = "dxc"
	}
	cmd := exec.Command(bin, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	if runErr == nil {
		return diagnostic.Empty(), nil
	}
	if _, isExitErr := runErr.(*exec.ExitError); !isExitErr {
		return diagnostic.Empty(), &shaderr.ValidationError{Message: runErr.Error()}
	}

	return parseDxcOutput(stderr.String(), filePath)
}

func hlslProfile(params Params) string {
	model := params.HlslShaderModel
	if model == "" {
		model = "6_0"
	}
	model = strings.ReplaceAll(model, ".", "_")
	stage := hlslStageProfile(params.ShaderStage)
	return fmt.Sprintf("%s_%s", stage, model)
}

func hlslStageProfile(stage shading.Stage) string {
	switch stage {
	case shading.Vertex:
		return "vs"
	case shading.Fragment:
		return "ps"
	case shading.Compute:
		return "cs"
	case shading.Geometry:
		return "gs"
	case shading.TessControl:
		return "hs"
	case shading.TessEval:
		return "ds"
	default:
		return "lib"
	}
}

func parseDxcOutput(output, filePath string) (diagnostic.List, error) {
	matches := dxcDiagnostic.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return diagnostic.Empty(), &shaderr.InternalError{Message: "dxc failed with no parsable diagnostics: " + output}
	}

	list := diagnostic.Empty()
	for _, m := range matches {
		line, _ := strconv.Atoi(m[2])
		col, _ := strconv.Atoi(m[3])
		if line > 0 {
			line--
		}
		pos := shading.NewPosition(filePath, uint32(line), uint32(col))
		list.Push(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityFromString(m[4]),
			Message:  m[5],
			Range:    shading.NewRange(pos, pos),
		})
	}
	return list, nil
}
