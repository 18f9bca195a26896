package validator

import (
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/boralg/shadersense/diagnostic"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/shading"
)

// Naga validates WGSL by shelling out to naga-cli rather than an
// in-process library call — there is no Go binding for naga, so this
// validator invokes the CLI the same family of tools ships and parses
// its diagnostic output the way a compiler's stderr gets parsed
// elsewhere in this package.
type Naga struct {
	Command string
}

// nagaSpan matches naga-cli's "error: ... --> path:line:col" span
// format (mirroring naga's own miette-based diagnostic rendering).
var nagaSpan = regexp.MustCompile(`(?m)-->\s+(.+):(\d+):(\d+)`)

var nagaErrorHeader = regexp.MustCompile(`(?m)^error(?:\[[^\]]*\])?:\s*(.*)$`)

func (n *Naga) Validate(content, filePath string, params Params, include IncludeCallback) (diagnostic.List, error) {
	ws, err := stage(content, filePath, nil)
	if err != nil {
		return diagnostic.Empty(), err
	}
	defer ws.Close()
	_ = include // naga-cli has no include mechanism; WGSL has no #include directive.

	bin := n.Command
	if bin == "" {
		bin = "naga"
	}
	cmd := exec.Command(bin, ws.EntryPath)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	if runErr == nil {
		return diagnostic.Empty(), nil
	}
	if _, isExitErr := runErr.(*exec.ExitError); !isExitErr {
		return diagnostic.Empty(), &shaderr.ValidationError{Message: runErr.Error()}
	}

	return mapNagaOutput(stdout.String()+stderr.String(), filePath)
}

// mapNagaOutput ports naga.rs's validate_shader error-to-diagnostic
// mapping: when the failure carries one or more spans, each becomes a
// diagnostic at (line-1, col); when it carries none, the call fails with
// InternalError instead of silently succeeding.
func mapNagaOutput(output, filePath string) (diagnostic.List, error) {
	headerMatch := nagaErrorHeader.FindStringSubmatch(output)
	message := output
	if headerMatch != nil {
		message = headerMatch[1]
	}

	spans := nagaSpan.FindAllStringSubmatch(output, -1)
	if len(spans) == 0 {
		return diagnostic.Empty(), &shaderr.InternalError{Message: message}
	}

	list := diagnostic.Empty()
	for _, s := range spans {
		line, _ := strconv.Atoi(s[2])
		col, _ := strconv.Atoi(s[3])
		if line > 0 {
			line--
		}
		pos := shading.NewPosition(filePath, uint32(line), uint32(col))
		list.Push(diagnostic.Diagnostic{
			Severity: diagnostic.Error,
			Message:  message,
			Range:    shading.NewRange(pos, pos),
		})
	}
	return list, nil
}
