package cache

import (
	"errors"
	"testing"

	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/preprocessor"
	"github.com/boralg/shadersense/shaderr"
	"github.com/boralg/shadersense/symbols"
)

func stubExtract(calls *int) Extract {
	return func(m *module.ShaderModule) (*symbols.List, *preprocessor.Preprocessor, error) {
		*calls++
		return symbols.NewList(), &preprocessor.Preprocessor{}, nil
	}
}

func TestHandleLifecycle(t *testing.T) {
	var calls int
	h := NewHandle("shader.hlsl", stubExtract(&calls))

	if h.State() != Unloaded {
		t.Fatalf("new handle should start Unloaded, got %v", h.State())
	}

	if err := h.Open(&module.ShaderModule{FilePath: "shader.hlsl"}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if h.State() != Loaded {
		t.Fatalf("expected Loaded after Open, got %v", h.State())
	}
	if calls != 1 {
		t.Fatalf("expected extract to run once on Open, got %d calls", calls)
	}

	h.MarkDirty()
	if h.State() != Dirty {
		t.Fatalf("expected Dirty after MarkDirty, got %v", h.State())
	}

	if err := h.EnsureFresh(); err != nil {
		t.Fatalf("EnsureFresh failed: %v", err)
	}
	if h.State() != Loaded {
		t.Fatalf("expected Loaded after EnsureFresh, got %v", h.State())
	}
	if calls != 2 {
		t.Fatalf("expected extract to run again on EnsureFresh from Dirty, got %d calls", calls)
	}

	if err := h.EnsureFresh(); err != nil {
		t.Fatalf("EnsureFresh on an already-Loaded handle should be a no-op, got error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("EnsureFresh should not re-extract when already Loaded, got %d calls", calls)
	}

	h.Close()
	if h.State() != Closed {
		t.Fatalf("expected Closed after Close, got %v", h.State())
	}
}

func TestClosedHandleRejectsOperations(t *testing.T) {
	var calls int
	h := NewHandle("shader.hlsl", stubExtract(&calls))
	h.Close()

	err := h.Open(&module.ShaderModule{FilePath: "shader.hlsl"})
	var internal *shaderr.InternalError
	if !errors.As(err, &internal) {
		t.Errorf("expected Open on a Closed handle to fail with *shaderr.InternalError, got %v", err)
	}

	if err := h.EnsureFresh(); !errors.As(err, &internal) {
		t.Errorf("expected EnsureFresh on a Closed handle to fail with *shaderr.InternalError, got %v", err)
	}
}

func TestEnsureFreshBeforeOpenFails(t *testing.T) {
	var calls int
	h := NewHandle("shader.hlsl", stubExtract(&calls))
	err := h.EnsureFresh()
	var internal *shaderr.InternalError
	if !errors.As(err, &internal) {
		t.Errorf("expected EnsureFresh before Open to fail with *shaderr.InternalError, got %v", err)
	}
}
