package validator

import "testing"

func TestParseDxcOutputMapsLineAndSeverity(t *testing.T) {
	output := "shader.hlsl(12,5): error X3004: undeclared identifier 'foo'\n"
	list, err := parseDxcOutput(output, "shader.hlsl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(list.Diagnostics))
	}
	d := list.Diagnostics[0]
	if d.Range.Start.Line != 11 {
		t.Errorf("expected 1-based line 12 to map to 0-based line 11, got %d", d.Range.Start.Line)
	}
	if d.Range.Start.Column != 5 {
		t.Errorf("expected column to pass through unchanged, got %d", d.Range.Start.Column)
	}
	if d.Message != "undeclared identifier 'foo'" {
		t.Errorf("unexpected message: %q", d.Message)
	}
}

func TestParseDxcOutputNoMatchesFails(t *testing.T) {
	if _, err := parseDxcOutput("some unrelated tool crash output", "shader.hlsl"); err == nil {
		t.Fatal("expected an error when no diagnostic lines are parsable")
	}
}

func TestHlslProfileDefaultsAndOverrides(t *testing.T) {
	if got := hlslProfile(Params{}); got != "lib_6_0" {
		t.Errorf("expected default profile lib_6_0, got %q", got)
	}
	if got := hlslProfile(Params{HlslShaderModel: "6.6"}); got != "lib_6_6" {
		t.Errorf("expected overridden profile lib_6_6, got %q", got)
	}
}
