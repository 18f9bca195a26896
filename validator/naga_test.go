package validator

import (
	"errors"
	"testing"

	"github.com/boralg/shadersense/shaderr"
)

func TestMapNagaOutputWithSpansProducesOneDiagnosticPerSpan(t *testing.T) {
	output := "error: type mismatch\n  --> shader.wgsl:4:9\n  --> shader.wgsl:9:1\n"
	list, err := mapNagaOutput(output, "shader.wgsl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(list.Diagnostics))
	}
	if list.Diagnostics[0].Range.Start.Line != 3 {
		t.Errorf("expected 1-based line 4 to map to 0-based line 3, got %d", list.Diagnostics[0].Range.Start.Line)
	}
	if list.Diagnostics[0].Range.Start.Column != 9 {
		t.Errorf("expected column to pass through unchanged, got %d", list.Diagnostics[0].Range.Start.Column)
	}
}

func TestMapNagaOutputWithNoSpansFailsInternal(t *testing.T) {
	_, err := mapNagaOutput("error: something went wrong with no location info", "shader.wgsl")
	if err == nil {
		t.Fatal("expected an error when the compiler message carries no spans")
	}
	var internal *shaderr.InternalError
	if !errors.As(err, &internal) {
		t.Errorf("expected *shaderr.InternalError, got %T: %v", err, err)
	}
}
