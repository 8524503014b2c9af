package widget

import (
	"errors"
	"slices"
	"testing"

	"mad-hud/internal/core"
	"mad-hud/internal/overlay"
)

type stubWidget struct{ name string }

func (w *stubWidget) Name() string                        { return w.name }
func (w *stubWidget) Position(core.Resolution) core.Point { return core.Point{} }
func (w *stubWidget) Update(uint64, core.Resolution)      {}
func (w *stubWidget) Draw(*overlay.Session)               {}

func TestRegistryBuildsInOrder(t *testing.T) {
	Register("stub-b", func(Env) (Widget, error) { return &stubWidget{name: "b"}, nil })
	Register("stub-a", func(Env) (Widget, error) { return &stubWidget{name: "a"}, nil })
	Register("", func(Env) (Widget, error) { return nil, nil })
	Register("stub-nil", nil)

	ws, err := Build([]string{"stub-b", "stub-a"}, Env{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(ws) != 2 || ws[0].Name() != "b" || ws[1].Name() != "a" {
		t.Fatalf("built %v", ws)
	}
	names := Names()
	if !slices.IsSorted(names) || !slices.Contains(names, "stub-a") {
		t.Fatalf("Names = %v", names)
	}
	if slices.Contains(names, "") || slices.Contains(names, "stub-nil") {
		t.Fatal("empty names and nil factories must be ignored")
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build([]string{"does-not-exist"}, Env{}); err == nil {
		t.Fatal("unknown widget must fail")
	}
	boom := errors.New("boom")
	Register("stub-fail", func(Env) (Widget, error) { return nil, boom })
	if _, err := Build([]string{"stub-fail"}, Env{}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}
