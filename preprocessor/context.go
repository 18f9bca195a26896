package preprocessor

import (
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/boralg/shadersense/util"
)

// Context is the mutable include-search state threaded through one
// evaluation: search directories, a path-remap table, and a directory
// stack pushed as includes are entered and popped on return (a cyclic
// include pushes nothing).
type Context struct {
	searchDirs []string
	remap      map[string]string
	dirStack   []string
	fileStack  map[string]bool

	// exists reports whether a candidate absolute path refers to a real
	// file. Defaults to util.IsValidPath; overridable in tests so
	// include-resolution scenarios don't require fixture files on disk.
	exists func(string) bool
}

// NewContext builds a Context rooted at entryFile's directory.
func NewContext(entryFile string, searchDirs []string, remap map[string]string) *Context {
	return &Context{
		searchDirs: searchDirs,
		remap:      remap,
		dirStack:   []string{filepath.Dir(entryFile)},
		fileStack:  map[string]bool{entryFile: true},
		exists:     util.IsValidPath,
	}
}

// EnterFile pushes file's parent directory onto the directory stack and
// marks file as open, unless file is already on the stack — a cyclic
// include, broken silently since many shader build systems tolerate
// self-guarded headers. Returns false when the cycle is
// detected, in which case no push happened and the caller must not
// descend into file.
func (c *Context) EnterFile(file string) bool {
	if c.fileStack[file] {
		return false
	}
	c.fileStack[file] = true
	c.dirStack = append(c.dirStack, filepath.Dir(file))
	return true
}

// ExitFile pops the top of the directory stack and clears file from the
// open set. It pairs with an EnterFile that returned true; after an
// EnterFile that reported a cycle nothing was pushed, and calling
// ExitFile would pop the enclosing file's directory instead.
func (c *Context) ExitFile(file string) {
	delete(c.fileStack, file)
	if len(c.dirStack) > 0 {
		c.dirStack = c.dirStack[:len(c.dirStack)-1]
	}
}

// SearchPathInIncludes resolves a raw include path (already stripped of
// quotes/angle brackets) to an absolute path whose target exists,
// trying in order: the path itself if absolute, each path-remap
// substitution (virtual prefixes in sorted order), the top of the
// directory stack, then each configured
// search directory. Deterministic: same inputs always yield the same
// result.
func (c *Context) SearchPathInIncludes(relative string) (string, bool) {
	if filepath.IsAbs(relative) && c.exists(relative) {
		return relative, true
	}

	virtualPrefixes := make([]string, 0, len(c.remap))
	for virtualPrefix := range c.remap {
		virtualPrefixes = append(virtualPrefixes, virtualPrefix)
	}
	sort.Strings(virtualPrefixes)
	for _, virtualPrefix := range virtualPrefixes {
		if rest, ok := stripPrefixComponents(relative, virtualPrefix); ok {
			candidate := filepath.Join(c.remap[virtualPrefix], rest)
			if c.exists(candidate) {
				return candidate, true
			}
		}
	}

	if len(c.dirStack) > 0 {
		top := c.dirStack[len(c.dirStack)-1]
		candidate := filepath.Join(top, relative)
		if c.exists(candidate) {
			return candidate, true
		}
	}

	for _, dir := range c.searchDirs {
		candidate := filepath.Join(dir, relative)
		if c.exists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// stripPrefixComponents reports whether input begins with prefix,
// compared component-wise (splitting on path separators rather than
// doing a raw string prefix match, so "Packages2" does not match prefix
// "Packages"). On platforms whose native separator is backslash, a
// backslash in prefix also matches a forward slash in input; elsewhere
// the two separators are not interchangeable.
func stripPrefixComponents(input, prefix string) (string, bool) {
	splitSep := "/"
	normInput := input
	normPrefix := prefix
	if runtime.GOOS == "windows" {
		normInput = strings.ReplaceAll(normInput, "\\", "/")
		normPrefix = strings.ReplaceAll(normPrefix, "\\", "/")
	}

	inputParts := strings.Split(strings.Trim(normInput, splitSep), splitSep)
	prefixParts := strings.Split(strings.Trim(normPrefix, splitSep), splitSep)

	if len(prefixParts) > len(inputParts) {
		return "", false
	}
	for i, p := range prefixParts {
		if inputParts[i] != p {
			return "", false
		}
	}
	return strings.Join(inputParts[len(prefixParts):], "/"), true
}
