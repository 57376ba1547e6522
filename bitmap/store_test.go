package bitmap

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// atlasPNG encodes a 16x6 grid atlas with cells of the given size.
// Every glyph is a filled box one pixel inside its cell.
func atlasPNG(t *testing.T, cellW, cellH int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 16*cellW, 6*cellH))
	for i := 0; i < 96; i++ {
		cx, cy := (i%16)*cellW, (i/16)*cellH
		for y := 1; y < cellH-1; y++ {
			for x := 1; x < cellW-1; x++ {
				img.Set(cx+x, cy+y, color.White)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestStoreExists(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"fonts/font_12.png": {Data: atlasPNG(t, 7, 12)},
		"fonts/dir":         {Mode: os.ModeDir},
	})

	tests := []struct {
		name string
		want bool
	}{
		{"fonts/font_12.png", true},
		{"./fonts/font_12.png", true},
		{"/fonts/font_12.png", true},
		{"fonts/font_13.png", false},
		{"fonts/dir", false},
		{"../escape.png", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.Exists(tt.name); got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestStoreLoadPNG(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"font_12.png": {Data: atlasPNG(t, 7, 12)},
	})

	f, err := store.LoadFont("font_12.png")
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}

	if f.Name() != "font_12.png" {
		t.Errorf("Name() = %q", f.Name())
	}
	if f.PixelSize() != 12 {
		t.Errorf("PixelSize() = %d, want 12", f.PixelSize())
	}
	// Derived metrics: descent = 12/5 = 2, ascent = 10.
	if got := f.Dimension("abc"); got != image.Pt(21, 12) {
		t.Errorf("Dimension(abc) = %v, want (21,12)", got)
	}
	if f.KerningHeight() != 0 {
		t.Errorf("KerningHeight() = %d, want 0", f.KerningHeight())
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := f.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() = %v, want ErrClosed", err)
	}
}

func TestStoreLoadDescriptor(t *testing.T) {
	const desc = `<font texture="atlas/font_9.png" columns="16" rows="6" first="32"
		ascent="7" descent="2" advance="5" linegap="3"/>`

	store := NewStore(fstest.MapFS{
		"fonts/font_9.xml":       {Data: []byte(desc)},
		"fonts/atlas/font_9.png": {Data: atlasPNG(t, 6, 9)},
	})

	f, err := store.LoadFont("fonts/font_9.xml")
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if got := f.Dimension("abcd"); got != image.Pt(20, 9) {
		t.Errorf("Dimension(abcd) = %v, want (20,9)", got)
	}
	if f.KerningHeight() != 3 {
		t.Errorf("KerningHeight() = %d, want 3", f.KerningHeight())
	}
}

func TestStoreLoadErrors(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"bad.png":       {Data: []byte("not a png")},
		"notexture.xml": {Data: []byte(`<font columns="16"/>`)},
		"dangling.xml":  {Data: []byte(`<font texture="missing.png"/>`)},
		"font.ttf":      {Data: []byte("ttf")},
	})

	tests := []struct {
		name    string
		wantErr error
	}{
		{"bad.png", nil},
		{"notexture.xml", ErrBadLayout},
		{"dangling.xml", os.ErrNotExist},
		{"missing.png", os.ErrNotExist},
		{"font.ttf", ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.LoadFont(tt.name)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStoreOSFilesystem(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "font_10.png")
	if err := os.WriteFile(name, atlasPNG(t, 6, 10), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(nil)
	if !store.Exists(name) {
		t.Fatalf("Exists(%q) = false", name)
	}
	if store.Exists(filepath.Join(dir, "font_11.png")) {
		t.Error("Exists reported a missing file")
	}
	if _, err := store.LoadFont(name); err != nil {
		t.Errorf("LoadFont failed: %v", err)
	}
}
