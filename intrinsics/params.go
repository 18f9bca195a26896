package intrinsics

// Params describes the compilation parameters an intrinsic's requirement
// predicate is evaluated against: shader model, language version,
// 16-bit support, client, and SPIR-V version.
type Params struct {
	ShaderModel      string
	LanguageVersion  int
	Enable16BitTypes bool
	Client           string
	SpirvVersion     string
	CapabilityFlags  []string
}

func (p Params) hasCapability(flag string) bool {
	for _, f := range p.CapabilityFlags {
		if f == flag {
			return true
		}
	}
	return false
}
