// Package intrinsics loads each shading language's built-in symbols from
// embedded JSON and exposes a view filtered by compilation parameters.
package intrinsics

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/boralg/shadersense/shading"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/symbols"
)

//go:embed data/hlsl.json
var hlslJSON []byte

//go:embed data/glsl.json
var glslJSON []byte

//go:embed data/wgsl.json
var wgslJSON []byte

// jsonSymbol mirrors the intrinsics JSON blob schema.
type jsonSymbol struct {
	Label       string           `json:"label"`
	Description string           `json:"description"`
	Signature   string           `json:"signature"`
	Stages      []string         `json:"stages"`
	Requirement *jsonRequirement `json:"requirement"`
}

type jsonRequirement struct {
	MinShaderModel   string   `json:"min_shader_model"`
	MinLanguage      int      `json:"min_language"`
	Requires16Bit    bool     `json:"requires_16bit"`
	Client           string   `json:"client"`
	MinSpirvVersion  string   `json:"min_spirv_version"`
	RequiredCapFlags []string `json:"required_cap_flags"`
}

// Store is one language's lazily parsed, immutable, process-wide
// intrinsic symbol list.
type Store struct {
	list *symbols.List
}

var (
	stores   = make(map[shading.Language]*Store)
	storesMu sync.Mutex
)

// For returns the cached Store for language, parsing its embedded JSON
// blob on first access. Mirrors ShaderIntrinsics::get's
// LazyLock<HashMap<...>> cache, one entry per language computed once and
// reused for the life of the process.
func For(language shading.Language) (*Store, error) {
	storesMu.Lock()
	defer storesMu.Unlock()

	if s, ok := stores[language]; ok {
		return s, nil
	}

	raw, ok := blobFor(language)
	if !ok {
		return nil, &shaderr.InternalError{Message: "no intrinsics blob for language " + language.String()}
	}

	list, err := parseBlob(raw)
	if err != nil {
		return nil, &shaderr.ParseError{FilePath: "<embedded:" + language.String() + ">", Reason: err.Error()}
	}

	s := &Store{list: list}
	stores[language] = s
	return s, nil
}

func blobFor(language shading.Language) ([]byte, bool) {
	switch language {
	case shading.Hlsl:
		return hlslJSON, true
	case shading.Glsl:
		return glslJSON, true
	case shading.Wgsl:
		return wgslJSON, true
	default:
		return nil, false
	}
}

func parseBlob(raw []byte) (*symbols.List, error) {
	var entries []jsonSymbol
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	list := symbols.NewList()
	for _, e := range entries {
		list.Add(symbols.Symbol{
			Label:       e.Label,
			Kind:        symbols.Functions,
			Stages:      stagesFromStrings(e.Stages),
			Requirement: requirementFromJSON(e.Requirement),
			Doc:         symbols.Documentation{Full: e.Description, Usage: e.Signature},
			Signature:   e.Signature,
		})
	}
	return list, nil
}

func requirementFromJSON(r *jsonRequirement) *symbols.Requirement {
	if r == nil {
		return nil
	}
	return &symbols.Requirement{
		MinShaderModel:   r.MinShaderModel,
		MinLanguage:      r.MinLanguage,
		Requires16Bit:    r.Requires16Bit,
		Client:           r.Client,
		MinSpirvVersion:  r.MinSpirvVersion,
		RequiredCapFlags: r.RequiredCapFlags,
	}
}

func stagesFromStrings(names []string) []shading.Stage {
	if len(names) == 0 {
		return nil
	}
	out := make([]shading.Stage, 0, len(names))
	for _, n := range names {
		out = append(out, shading.StageFromName(n))
	}
	return out
}

// Get returns a read-only view retaining only the symbols whose
// requirement, if any, is met by params — functions/all kinds filtered
// identically, since intrinsics are declared as Functions.
func (s *Store) Get(params Params) *symbols.List {
	view := symbols.NewList()
	for _, sym := range s.list.All() {
		if satisfied(sym.Requirement, params) {
			view.Add(sym)
		}
	}
	return view
}
