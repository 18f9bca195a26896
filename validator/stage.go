package validator

import (
	"os"
	"path/filepath"

	"github.com/otiai10/copy"

	"github.com/boralg/shadersense/shaderr"
)

// workspace is a scratch directory holding the entry file plus a staged
// copy of each include directory, built fresh per validate call so the
// external compiler never reads or writes the consumer's live tree.
type workspace struct {
	Dir          string
	EntryPath    string
	IncludeDirs  []string
	includeIndex map[string]string
}

// stage creates a temp directory, writes content as entryName, and
// copies each of includeDirs into it, so dxc/glslangValidator/naga see
// a self-contained tree rather than the caller's live one.
func stage(content, entryName string, includeDirs []string) (*workspace, error) {
	dir, err := os.MkdirTemp("", "shadersense-validate-*")
	if err != nil {
		return nil, &shaderr.IoError{Path: entryName, Err: err}
	}

	entryPath := filepath.Join(dir, filepath.Base(entryName))
	if err := os.WriteFile(entryPath, []byte(content), 0644); err != nil {
		os.RemoveAll(dir)
		return nil, &shaderr.IoError{Path: entryPath, Err: err}
	}

	w := &workspace{Dir: dir, EntryPath: entryPath, includeIndex: make(map[string]string)}
	for _, src := range includeDirs {
		dst := filepath.Join(dir, "include", filepath.Base(src))
		if err := copy.Copy(src, dst); err != nil {
			os.RemoveAll(dir)
			return nil, &shaderr.IoError{Path: src, Err: err}
		}
		w.IncludeDirs = append(w.IncludeDirs, dst)
		w.includeIndex[src] = dst
	}
	return w, nil
}

func (w *workspace) Close() {
	os.RemoveAll(w.Dir)
}

// notifyIncludes best-effort-honors the "include_callback invoked
// synchronously for any file the compiler demands" contract: since the
// command-line compilers this validator shells out to don't expose a
// custom include-resolution hook the way an in-process library
// embedding would, the files directly inside each staged include
// directory are offered to the callback up front rather than lazily
// during the compiler's own run. Subdirectories are not descended, and
// the callback's results are ignored.
func notifyIncludes(dirs []string, include IncludeCallback) {
	if include == nil {
		return
	}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			include(filepath.Join(dir, e.Name()))
		}
	}
}
