package cache

import (
	"sync"

	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/preprocessor"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/symbols"
)

// Extract re-derives a module's symbol table and preprocessor facts.
// Supplied by the consumer so cache stays independent of which
// Extractor/Evaluator pair a language uses.
type Extract func(m *module.ShaderModule) (*symbols.List, *preprocessor.Preprocessor, error)

// Handle is one watched file's cache entry. All state transitions are
// serialized by mu, since the fsnotify watcher goroutine and the
// consumer's edit path both mutate a Handle.
type Handle struct {
	FilePath string

	mu           sync.Mutex
	state        State
	module       *module.ShaderModule
	symbols      *symbols.List
	preprocessor *preprocessor.Preprocessor
	extract      Extract
}

// NewHandle creates an Unloaded handle. extract is invoked whenever the
// handle needs to move out of Dirty back to Loaded.
func NewHandle(filePath string, extract Extract) *Handle {
	return &Handle{FilePath: filePath, state: Unloaded, extract: extract}
}

func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Open drives Unloaded -> Loaded, running extract once against m.
func (h *Handle) Open(m *module.ShaderModule) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == Closed {
		return &shaderr.InternalError{Message: "cache: Open called on a Closed handle for " + h.FilePath}
	}

	h.module = m
	syms, pre, err := h.extract(m)
	if err != nil {
		return err
	}
	h.symbols = syms
	h.preprocessor = pre
	h.state = Loaded
	return nil
}

// MarkDirty drives Loaded -> Dirty (or Unloaded -> Dirty, for a file
// edited before it was ever opened through this handle). A no-op on an
// already-Dirty or Closed handle.
func (h *Handle) MarkDirty() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == Closed {
		return
	}
	h.state = Dirty
}

// EnsureFresh drives Dirty -> Loaded by re-running extract, the
// operation every symbol-requiring call performs first to guarantee
// fresh symbols. A no-op when already Loaded.
func (h *Handle) EnsureFresh() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case Closed:
		return &shaderr.InternalError{Message: "cache: EnsureFresh called on a Closed handle for " + h.FilePath}
	case Unloaded:
		return &shaderr.InternalError{Message: "cache: EnsureFresh called before Open for " + h.FilePath}
	case Loaded:
		return nil
	}

	syms, pre, err := h.extract(h.module)
	if err != nil {
		return err
	}
	h.symbols = syms
	h.preprocessor = pre
	h.state = Loaded
	return nil
}

// Symbols returns the handle's cached symbol list. Callers that need
// guaranteed-fresh symbols must call EnsureFresh first.
func (h *Handle) Symbols() *symbols.List {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.symbols
}

// Preprocessor returns the handle's cached preprocessor facts.
func (h *Handle) Preprocessor() *preprocessor.Preprocessor {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.preprocessor
}

// Module returns the handle's current module, or nil before Open.
func (h *Handle) Module() *module.ShaderModule {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.module
}

// Close drives any state to Closed. Once Closed the handle is invalid:
// Open/MarkDirty/EnsureFresh all reject it.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.module != nil {
		h.module.Close()
	}
	h.state = Closed
}
