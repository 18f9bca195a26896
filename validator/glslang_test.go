package validator

import "testing"

func TestParseGlslangOutputMapsLineAndSeverity(t *testing.T) {
	output := "ERROR: shader.frag:7: 'foo' : undeclared identifier\nWARNING: shader.frag:3: unused variable 'bar'\n"
	list, err := parseGlslangOutput(output, "shader.frag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(list.Diagnostics))
	}
	if list.Diagnostics[0].Range.Start.Line != 6 {
		t.Errorf("expected 1-based line 7 to map to 0-based line 6, got %d", list.Diagnostics[0].Range.Start.Line)
	}
	if list.Diagnostics[1].Severity.String() != "warning" {
		t.Errorf("expected second diagnostic to be a warning, got %v", list.Diagnostics[1].Severity)
	}
}

func TestParseGlslangOutputNoMatchesFails(t *testing.T) {
	if _, err := parseGlslangOutput("unrelated crash dump", "shader.frag"); err == nil {
		t.Fatal("expected an error when no diagnostic lines are parsable")
	}
}
