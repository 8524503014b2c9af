package overlay

import (
	"errors"
	"slices"
	"testing"

	"mad-hud/internal/core"
	"mad-hud/internal/gfx/record"
)

type fakeHost struct{ res core.Resolution }

func (h fakeHost) ScaledResolution() core.Resolution { return h.res }

type fakeResources struct{}

func (fakeResources) ReadFile(string) ([]byte, error) { return nil, errors.New("missing") }

type drawCall struct {
	text   string
	x, y   float64
	color  core.Color
	align  core.Alignment
	shadow bool
}

type fakeFont struct {
	spacing   int
	calls     []drawCall
	reloads   int
	reloadErr error
}

func (f *fakeFont) CharWidth(r rune) int {
	switch r {
	case 'A':
		return 5
	case 'B':
		return 6
	default:
		return 4
	}
}

func (f *fakeFont) CharSpacing() int { return f.spacing }

func (f *fakeFont) DrawString(text string, x, y float64, c core.Color, align core.Alignment, shadow bool) int {
	f.calls = append(f.calls, drawCall{text: text, x: x, y: y, color: c, align: align, shadow: shadow})
	return len(text) * 4
}

func (f *fakeFont) Reload(core.ResourceManager) error {
	f.reloads++
	return f.reloadErr
}

func newSession() (*Session, *record.Recorder, *fakeFont) {
	rec := record.New()
	font := &fakeFont{spacing: 1}
	return New(rec, font), rec, font
}

func TestBeginSetsUpPass(t *testing.T) {
	s, rec, _ := newSession()
	if err := s.Begin(10, 20); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if !s.Rendering() {
		t.Fatal("session must be rendering after Begin")
	}
	if s.Origin() != (core.Point{X: 10, Y: 20}) {
		t.Fatalf("origin = %+v", s.Origin())
	}
	if s.CurrentScale() != 1 || s.CurrentRotation() != 0 {
		t.Fatalf("scale=%v rotation=%v, want neutral", s.CurrentScale(), s.CurrentRotation())
	}
	if rec.Depth() != 1 {
		t.Fatalf("matrix depth = %d, want 1", rec.Depth())
	}
	if !rec.Enabled(core.CapBlend) || rec.CurrentColor() != core.White {
		t.Fatal("Begin must enable blending and reset colour to white")
	}
}

func TestBeginWhileRenderingLeavesStateUnchanged(t *testing.T) {
	s, rec, _ := newSession()
	_ = s.Begin(3, 4)
	s.SetTransformationOrigin(1, 1)
	s.Scale(2)
	calls := len(rec.Calls())

	err := s.Begin(50, 60)
	if !errors.Is(err, ErrAlreadyRendering) {
		t.Fatalf("second Begin err = %v, want ErrAlreadyRendering", err)
	}
	if s.Origin() != (core.Point{X: 3, Y: 4}) || s.TransformationOrigin() != (core.Point{X: 1, Y: 1}) {
		t.Fatalf("origin changed to %+v / %+v", s.Origin(), s.TransformationOrigin())
	}
	if s.CurrentScale() != 2 {
		t.Fatalf("scale changed to %v", s.CurrentScale())
	}
	if len(rec.Calls()) != calls {
		t.Fatal("second Begin must not issue graphics calls")
	}
}

func TestEndWithoutBegin(t *testing.T) {
	s, rec, _ := newSession()
	if err := s.End(); !errors.Is(err, ErrNotRendering) {
		t.Fatalf("End err = %v, want ErrNotRendering", err)
	}
	if len(rec.Calls()) != 0 {
		t.Fatal("unmatched End must not issue graphics calls")
	}
}

func TestEndRestoresNeutralState(t *testing.T) {
	s, rec, _ := newSession()
	_ = s.Begin(7, 9)
	s.SetTransformationOrigin(4, 4)
	s.Scale(4)
	s.Rotate(45)
	s.Scale(0.5)
	s.Rotate(10)
	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if s.Rendering() {
		t.Fatal("session still rendering after End")
	}
	if s.CurrentScale() != 1 || s.CurrentRotation() != 0 {
		t.Fatalf("scale=%v rotation=%v after End", s.CurrentScale(), s.CurrentRotation())
	}
	if s.Origin() != (core.Point{}) || s.TransformationOrigin() != (core.Point{}) {
		t.Fatalf("origins not cleared: %+v %+v", s.Origin(), s.TransformationOrigin())
	}
	if rec.Depth() != 0 {
		t.Fatalf("matrix depth = %d after End", rec.Depth())
	}
	if rec.CurrentColor() != core.White {
		t.Fatal("End must reset colour to white")
	}

	// The net rotation and scale are undone before the checkpoint is popped.
	ops := rec.Ops()
	pop := slices.Index(ops, record.OpPopMatrix)
	var rot, scale float64 = 0, 1
	for _, c := range rec.Calls()[:pop] {
		switch c.Op {
		case record.OpRotate:
			rot += c.X
		case record.OpScale:
			scale *= c.X
		}
	}
	if rot != 0 || scale != 1 {
		t.Fatalf("net rotate=%v scale=%v before pop", rot, scale)
	}
	last := rec.Calls()[pop-1]
	if last.Op != record.OpTranslate || last.X != -7 || last.Y != -9 {
		t.Fatalf("call before pop = %+v, want translate by -origin", last)
	}
}

func TestScaleComposesMultiplicatively(t *testing.T) {
	pairs := [][2]float64{{2, 3}, {0.5, 0.25}, {1.5, -2}, {10, 0.1}}
	for _, p := range pairs {
		s, _, _ := newSession()
		_ = s.Begin(0, 0)
		s.Scale(p[0])
		s.Scale(p[1])
		if got := s.CurrentScale(); got != p[0]*p[1] {
			t.Fatalf("scale(%v) scale(%v) = %v", p[0], p[1], got)
		}
		s.ResetScale()
		if s.CurrentScale() != 1 {
			t.Fatalf("ResetScale left %v", s.CurrentScale())
		}
	}
}

func TestRotateComposesAdditively(t *testing.T) {
	pairs := [][2]float64{{30, 60}, {-90, 400}, {0.5, 0.25}}
	for _, p := range pairs {
		s, _, _ := newSession()
		_ = s.Begin(0, 0)
		s.Rotate(p[0])
		s.Rotate(p[1])
		if got := s.CurrentRotation(); got != p[0]+p[1] {
			t.Fatalf("rotate(%v) rotate(%v) = %v", p[0], p[1], got)
		}
		s.ResetRotation()
		if s.CurrentRotation() != 0 {
			t.Fatalf("ResetRotation left %v", s.CurrentRotation())
		}
	}
}

func TestTransformsPivotAroundOriginPlusTransformationOrigin(t *testing.T) {
	s, rec, _ := newSession()
	_ = s.Begin(100, 50)
	s.SetTransformationOrigin(8, 4)
	rec.Reset()

	s.Rotate(90)
	want := []record.Call{
		{Op: record.OpTranslate, X: 108, Y: 54},
		{Op: record.OpRotate, X: 90},
		{Op: record.OpTranslate, X: -108, Y: -54},
	}
	if !slices.Equal(rec.Calls(), want) {
		t.Fatalf("rotate calls = %+v", rec.Calls())
	}

	rec.Reset()
	s.Scale(2)
	want = []record.Call{
		{Op: record.OpTranslate, X: 108, Y: 54},
		{Op: record.OpScale, X: 2, Y: 2, Z: 2},
		{Op: record.OpTranslate, X: -108, Y: -54},
	}
	if !slices.Equal(rec.Calls(), want) {
		t.Fatalf("scale calls = %+v", rec.Calls())
	}
}

func TestResetsAreNoOpsWhenNeutral(t *testing.T) {
	s, rec, _ := newSession()
	_ = s.Begin(0, 0)
	rec.Reset()
	s.ResetScale()
	s.ResetRotation()
	if len(rec.Calls()) != 0 {
		t.Fatalf("neutral resets issued %d calls", len(rec.Calls()))
	}
}

func TestScaleByZeroIgnored(t *testing.T) {
	s, rec, _ := newSession()
	_ = s.Begin(0, 0)
	rec.Reset()
	s.Scale(0)
	if s.CurrentScale() != 1 || len(rec.Calls()) != 0 {
		t.Fatal("Scale(0) must be ignored")
	}
}

func TestIdleSessionIgnoresTransformsAndDraws(t *testing.T) {
	s, rec, font := newSession()
	s.Scale(2)
	s.Rotate(15)
	s.DrawRect(core.Black, 0, 0, 5, 5)
	s.DrawTexture(rec.FakeTexture(4, 4, true), 0, 0, 4, 4, 0, 0, 1, 1)
	if w := s.DrawText("A", 0, 0, core.White); w != 0 {
		t.Fatalf("idle DrawText returned %d", w)
	}
	if len(rec.Calls()) != 0 || len(font.calls) != 0 {
		t.Fatal("idle session must not draw")
	}
	if s.CurrentScale() != 1 || s.CurrentRotation() != 0 {
		t.Fatal("idle session must not accumulate transforms")
	}
}

func TestRefreshReadsResolution(t *testing.T) {
	s, _, _ := newSession()
	res := core.Resolution{Width: 427, Height: 240, Factor: 3}
	if got := s.Refresh(fakeHost{res: res}); got != res {
		t.Fatalf("Refresh = %+v", got)
	}
	if s.Resolution() != res {
		t.Fatalf("Resolution = %+v", s.Resolution())
	}
}

func TestReloadResources(t *testing.T) {
	s, _, font := newSession()
	if err := s.ReloadResources(fakeResources{}); err != nil {
		t.Fatalf("ReloadResources: %v", err)
	}
	if font.reloads != 1 {
		t.Fatalf("reloads = %d", font.reloads)
	}
	font.reloadErr = errors.New("boom")
	if err := s.ReloadResources(fakeResources{}); err == nil {
		t.Fatal("reload error must surface")
	}

	noFont := New(record.New(), nil)
	if err := noFont.ReloadResources(fakeResources{}); err != nil {
		t.Fatalf("reload without font: %v", err)
	}
}

func TestIsMaskingNeverSet(t *testing.T) {
	s, _, _ := newSession()
	_ = s.Begin(0, 0)
	if s.IsMasking() {
		t.Fatal("masking is not implemented")
	}
}
