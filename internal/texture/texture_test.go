package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"mad-hud/internal/gfx/record"
	"mad-hud/internal/resource"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
<rect x="0" y="0" width="10" height="10" fill="currentColor"/>
</svg>`

func newManager(t *testing.T) (*Manager, fstest.MapFS) {
	t.Helper()
	files := fstest.MapFS{
		"icon.png":   {Data: encodePNG(t, 12, 6, color.White)},
		"square.svg": {Data: []byte(squareSVG)},
		"broken.png": {Data: []byte("not a png")},
	}
	return NewManager(record.New(), resource.New(files)), files
}

func TestGetReturnsUnloadedHandle(t *testing.T) {
	m, _ := newManager(t)
	h := m.Get("later.png")
	if h.Loaded() || h.Width() != 0 || h.Height() != 0 {
		t.Fatal("fresh handle must be unloaded and empty")
	}
	h.Bind()
	if m.Get("later.png") != h {
		t.Fatal("Get must return the same handle")
	}
}

func TestLoadPNG(t *testing.T) {
	m, _ := newManager(t)
	early := m.Get("icon.png")
	h, err := m.Load("icon.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h != early {
		t.Fatal("Load must fill the existing handle")
	}
	if !h.Loaded() || h.Width() != 12 || h.Height() != 6 {
		t.Fatalf("loaded=%v size=%dx%d", h.Loaded(), h.Width(), h.Height())
	}
}

func TestLoadErrors(t *testing.T) {
	m, _ := newManager(t)
	if _, err := m.Load("missing.png"); err == nil {
		t.Fatal("expected error for missing resource")
	}
	h, err := m.Load("broken.png")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if h.Loaded() {
		t.Fatal("failed load must leave the handle unloaded")
	}
	if _, err := m.Load("square.svg"); err == nil {
		t.Fatal("svg through Load must be rejected")
	}
}

func TestLoadSVGTints(t *testing.T) {
	m, _ := newManager(t)
	h, err := m.LoadSVG("square.svg", 20, 20, color.RGBA{R: 255, A: 255})
	if err != nil {
		t.Fatalf("LoadSVG: %v", err)
	}
	if h.Width() != 20 || h.Height() != 20 {
		t.Fatalf("size = %dx%d", h.Width(), h.Height())
	}

	img, err := RasterizeSVG([]byte(squareSVG), 8, 8, color.RGBA{G: 255, A: 255})
	if err != nil {
		t.Fatalf("RasterizeSVG: %v", err)
	}
	r, g, _, a := img.At(4, 4).RGBA()
	if r != 0 || g>>8 != 255 || a>>8 != 255 {
		t.Fatalf("centre pixel = %v", img.At(4, 4))
	}
}

func TestRasterizeSVGRejectsBadInput(t *testing.T) {
	if _, err := RasterizeSVG([]byte(squareSVG), 0, 4, nil); err == nil {
		t.Fatal("expected size error")
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	m, files := newManager(t)
	if _, err := m.Load("icon.png"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	files["icon.png"] = &fstest.MapFile{Data: encodePNG(t, 3, 9, color.Black)}
	if err := m.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	h := m.Get("icon.png")
	if h.Width() != 3 || h.Height() != 9 {
		t.Fatalf("reloaded size = %dx%d", h.Width(), h.Height())
	}

	delete(files, "icon.png")
	if err := m.Reload(); err == nil {
		t.Fatal("expected reload error")
	}
	if h.Width() != 3 {
		t.Fatal("failed reload must keep the previous texture")
	}
}

func TestReloadReportsFirstFailureByName(t *testing.T) {
	m, files := newManager(t)
	for _, name := range []string{"d.png", "b.png", "c.png", "a.png"} {
		files[name] = &fstest.MapFile{Data: encodePNG(t, 2, 2, color.White)}
		if _, err := m.Load(name); err != nil {
			t.Fatalf("Load %s: %v", name, err)
		}
	}
	delete(files, "d.png")
	delete(files, "c.png")
	delete(files, "b.png")
	for i := 0; i < 20; i++ {
		err := m.Reload()
		if err == nil || !strings.Contains(err.Error(), `"b.png"`) {
			t.Fatalf("Reload = %v, want the b.png failure", err)
		}
	}
}

func TestUploadDisposesReplacedTexture(t *testing.T) {
	m, _ := newManager(t)
	h, err := m.Load("icon.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	old := h.tex.(*record.Texture)
	if _, err := m.Load("icon.png"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !old.Disposed() {
		t.Fatal("replaced texture must be disposed")
	}
	if !h.Loaded() {
		t.Fatal("handle must point at the new texture")
	}
}

func TestDecodeAndResize(t *testing.T) {
	img, err := Decode(encodePNG(t, 4, 4, color.White))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	small := Resize(img, 2, 2)
	if small.Bounds().Dx() != 2 || small.Bounds().Dy() != 2 {
		t.Fatalf("resized bounds = %v", small.Bounds())
	}
	if _, _, _, a := small.At(1, 1).RGBA(); a>>8 != 255 {
		t.Fatal("resize lost alpha")
	}
}
