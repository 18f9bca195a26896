package preprocessor

import "testing"

func fakeFS(known ...string) func(string) bool {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}
	return func(p string) bool { return set[p] }
}

func TestVirtualIncludeWithPrefix(t *testing.T) {
	ctx := NewContext("./test/hlsl/dontcare.hlsl", nil, map[string]string{
		"/Packages": "./test/hlsl/inc0/inc1",
		"Packages":  "./test/hlsl/inc0/inc1",
	})
	ctx.exists = fakeFS("test/hlsl/inc0/inc1/level1.hlsl")

	got, ok := ctx.SearchPathInIncludes("/Packages/level1.hlsl")
	if !ok {
		t.Fatal("expected virtual path with prefix to resolve")
	}
	want := "test/hlsl/inc0/inc1/level1.hlsl"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVirtualIncludeWithoutLeadingSlash(t *testing.T) {
	ctx := NewContext("./test/hlsl/dontcare.hlsl", nil, map[string]string{
		"/Packages": "./test/hlsl/inc0/inc1",
		"Packages":  "./test/hlsl/inc0/inc1",
	})
	ctx.exists = fakeFS("test/hlsl/inc0/inc1/level1.hlsl")

	got, ok := ctx.SearchPathInIncludes("Packages/level1.hlsl")
	if !ok {
		t.Fatal("expected virtual path without leading slash to resolve")
	}
	want := "test/hlsl/inc0/inc1/level1.hlsl"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDirectoryStack(t *testing.T) {
	ctx := NewContext("./test/hlsl/include-level.hlsl", nil, nil)
	ctx.exists = fakeFS(
		"test/hlsl/inc0/level0.hlsl",
		"test/hlsl/inc0/inc1/level1.hlsl",
	)

	level0, ok := ctx.SearchPathInIncludes("./inc0/level0.hlsl")
	if !ok {
		t.Fatal("expected inc0/level0.hlsl to resolve from entry dir")
	}
	if level0 != "test/hlsl/inc0/level0.hlsl" {
		t.Fatalf("got %q", level0)
	}

	if !ctx.EnterFile(level0) {
		t.Fatal("expected EnterFile to succeed for a file not already on the stack")
	}
	defer ctx.ExitFile(level0)

	level1, ok := ctx.SearchPathInIncludes("./inc1/level1.hlsl")
	if !ok {
		t.Fatal("expected inc1/level1.hlsl to resolve while inside inc0/level0.hlsl")
	}
	if level1 != "test/hlsl/inc0/inc1/level1.hlsl" {
		t.Fatalf("got %q", level1)
	}
}

func TestCyclicIncludeBrokenSilently(t *testing.T) {
	ctx := NewContext("./a.hlsl", nil, nil)
	if !ctx.EnterFile("./b.hlsl") {
		t.Fatal("first entry into b.hlsl should succeed")
	}
	if ctx.EnterFile("./a.hlsl") {
		t.Error("re-entering the entry file should be detected as a cycle")
	}
}

func TestSearchPathDeterministic(t *testing.T) {
	ctx := NewContext("./test/hlsl/dontcare.hlsl", []string{"./shared"}, nil)
	ctx.exists = fakeFS("shared/common.hlsl")

	first, ok1 := ctx.SearchPathInIncludes("common.hlsl")
	second, ok2 := ctx.SearchPathInIncludes("common.hlsl")
	if !ok1 || !ok2 || first != second {
		t.Fatalf("expected deterministic resolution, got (%q,%v) then (%q,%v)", first, ok1, second, ok2)
	}
}
