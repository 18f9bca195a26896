package intrinsics

import (
	"strconv"
	"strings"

	"github.com/boralg/shadersense/symbols"
)

// satisfied reports whether req holds for params. A nil requirement is
// always satisfied, matching ShaderIntrinsics::get_intrinsics_symbol's
// `None => true` branch.
func satisfied(req *symbols.Requirement, params Params) bool {
	if req == nil {
		return true
	}
	if req.MinShaderModel != "" && compareDottedVersions(params.ShaderModel, req.MinShaderModel) < 0 {
		return false
	}
	if req.MinLanguage != 0 && params.LanguageVersion < req.MinLanguage {
		return false
	}
	if req.Requires16Bit && !params.Enable16BitTypes {
		return false
	}
	if req.Client != "" && !strings.EqualFold(req.Client, params.Client) {
		return false
	}
	if req.MinSpirvVersion != "" && compareDottedVersions(params.SpirvVersion, req.MinSpirvVersion) < 0 {
		return false
	}
	for _, flag := range req.RequiredCapFlags {
		if !params.hasCapability(flag) {
			return false
		}
	}
	return true
}

// compareDottedVersions compares two "major.minor" version strings
// component-wise, treating a missing or malformed component as 0. An
// empty have-version therefore compares as lower than any nonzero
// required version.
func compareDottedVersions(have, want string) int {
	haveParts := strings.Split(have, ".")
	wantParts := strings.Split(want, ".")
	n := len(haveParts)
	if len(wantParts) > n {
		n = len(wantParts)
	}
	for i := 0; i < n; i++ {
		h := versionComponent(haveParts, i)
		w := versionComponent(wantParts, i)
		if h != w {
			if h < w {
				return -1
			}
			return 1
		}
	}
	return 0
}

func versionComponent(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}
