package diagnostic

import "github.com/boralg/shadersense/shading"

// Diagnostic is one compiler or parser finding, with a 0-based half-open
// range. Empty ranges at a single point are permitted.
type Diagnostic struct {
	Severity Severity
	Message  string
	Range    shading.Range
}

// List is an ordered collection of diagnostics produced by a single
// validation or parse pass.
type List struct {
	Diagnostics []Diagnostic
}

func Empty() List {
	return List{}
}

func (l *List) Push(d Diagnostic) {
	l.Diagnostics = append(l.Diagnostics, d)
}

func (l List) IsEmpty() bool {
	return len(l.Diagnostics) == 0
}
