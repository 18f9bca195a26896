package shading

import "testing"

func TestOffsetPositionRoundTrip(t *testing.T) {
	content := "line0\nline1\nline2"
	for offset := 0; offset <= len(content); offset++ {
		pos, err := PositionAt(content, "x.hlsl", offset)
		if err != nil {
			t.Fatalf("PositionAt(%d): %v", offset, err)
		}
		back, err := OffsetAt(content, pos)
		if err != nil {
			t.Fatalf("OffsetAt(%v): %v", pos, err)
		}
		if back != offset {
			t.Errorf("offset %d -> %v -> %d, want round trip", offset, pos, back)
		}
	}
}

func TestOffsetAtOutOfRange(t *testing.T) {
	content := "abc\ndef"
	if _, err := OffsetAt(content, NewPosition("x.hlsl", 0, 10)); err == nil {
		t.Error("expected error for column past end of line")
	}
	if _, err := OffsetAt(content, NewPosition("x.hlsl", 5, 0)); err == nil {
		t.Error("expected error for line past end of content")
	}
}

func TestRangeContain(t *testing.T) {
	r := NewRange(NewPosition("x.hlsl", 1, 0), NewPosition("x.hlsl", 3, 0))
	if !r.Contain(NewPosition("x.hlsl", 1, 0)) {
		t.Error("expected start to be contained")
	}
	if r.Contain(NewPosition("x.hlsl", 3, 0)) {
		t.Error("end should be exclusive")
	}
	if r.Contain(NewPosition("y.hlsl", 2, 0)) {
		t.Error("position in a different file must never be contained")
	}
}

func TestRangeContainBounds(t *testing.T) {
	outer := NewRange(NewPosition("x.hlsl", 0, 0), NewPosition("x.hlsl", 10, 0))
	inner := NewRange(NewPosition("x.hlsl", 2, 0), NewPosition("x.hlsl", 4, 0))
	if !outer.ContainBounds(inner) {
		t.Error("expected outer to contain inner")
	}
	if inner.ContainBounds(outer) {
		t.Error("inner must not contain outer")
	}
}
