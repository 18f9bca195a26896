// Package preprocessor enumerates #include, #define, and conditional
// regions in a module, resolving include paths against search
// directories, a path-remap table, and a directory stack.
package preprocessor

import "github.com/boralg/shadersense/shading"

// Define is one `#define NAME [value]` occurrence. Redefinitions append;
// consumers see all occurrences in source order.
type Define struct {
	Name  string
	Range shading.FileRange
	Value *string
}

func NewDefine(name string, r shading.FileRange, value *string) Define {
	return Define{Name: name, Range: r, Value: value}
}

// Include is one resolved `#include` directive.
type Include struct {
	RelativePath string
	AbsolutePath string
	Range        shading.FileRange
}

func NewInclude(relativePath, absolutePath string, r shading.FileRange) Include {
	return Include{RelativePath: relativePath, AbsolutePath: absolutePath, Range: r}
}

// Preprocessor is the full set of preprocessing facts recorded for one
// module.
type Preprocessor struct {
	Defines  []Define
	Includes []Include
	Regions  []shading.Range
}
