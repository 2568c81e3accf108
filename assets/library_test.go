package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLibraryLoadsGroupsAndFlagsMissing(t *testing.T) {
	fsys := fstest.MapFS{
		"images/character-idle-1.png": {Data: pngBytes(t, 8, 8)},
		"images/character-idle-2.png": {Data: pngBytes(t, 8, 8)},
		"images/character-run-1.png":  {Data: pngBytes(t, 8, 8)},
		"images/hp-logo.png":          {Data: pngBytes(t, 4, 4)},
		"images/background.png":       {Data: []byte("not a png")},
	}
	lib := NewLibrary(fsys, "images")

	for g := range Groups {
		if lib.Ready(g) {
			t.Fatalf("group %s ready before loading", g)
		}
	}

	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	<-lib.Done()

	for g := range Groups {
		if !lib.Ready(g) {
			t.Errorf("group %s not ready after Load", g)
		}
	}

	if img, ok := lib.Decoded("character-idle-2"); !ok || img.Bounds().Dx() != 8 {
		t.Errorf("idle frame not decoded: ok=%v", ok)
	}
	if _, ok := lib.Decoded("hp-logo"); !ok {
		t.Error("hp-logo not decoded")
	}
	if _, ok := lib.Decoded("background"); ok {
		t.Error("corrupt background decoded")
	}
	if got := lib.Missing(GroupBackground); len(got) != 1 {
		t.Errorf("Missing(background) = %v, want the corrupt file", got)
	}
	if got := lib.Missing(GroupRunning); len(got) != 3 {
		t.Errorf("Missing(running) = %v, want 3 frames", got)
	}
	if got := lib.Missing(GroupPlatforms); len(got) != 4 {
		t.Errorf("Missing(platforms) = %v, want all 4", got)
	}
}

func TestLibraryTriesOtherExtensions(t *testing.T) {
	fsys := fstest.MapFS{
		"art/road-1.jpeg": {Data: nil},
		"art/road-2.png":  {Data: pngBytes(t, 2, 2)},
	}
	lib := NewLibrary(fsys, "art")
	if err := lib.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, ok := lib.Decoded("road-2"); !ok {
		t.Error("road-2.png not found")
	}
	if _, ok := lib.Decoded("road-1"); ok {
		t.Error("empty jpeg should fail to decode")
	}
}

func TestLibraryWithoutFileSystem(t *testing.T) {
	lib := NewLibrary(nil, "")
	if err := lib.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !lib.Ready(GroupPickup) {
		t.Error("pickup group not ready")
	}
	if _, ok := lib.Decoded("hp-logo"); ok {
		t.Error("decoded an image from no file system")
	}
}

func TestLibraryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lib := NewLibrary(fstest.MapFS{}, "images")
	if err := lib.Load(ctx); err == nil {
		t.Error("Load with cancelled context returned nil")
	}
}

func TestLibraryUnknownAsset(t *testing.T) {
	lib := NewLibrary(nil, "")
	if _, ok := lib.Decoded("no-such-asset"); ok {
		t.Error("unknown asset reported as decoded")
	}
}

func TestLibraryLoadsOnce(t *testing.T) {
	fsys := fstest.MapFS{"images/hp-logo.png": {Data: pngBytes(t, 4, 4)}}
	lib := NewLibrary(fsys, "images")

	lib.LoadAsync(context.Background())
	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("third Load: %v", err)
	}
	if _, ok := lib.Decoded("hp-logo"); !ok {
		t.Error("hp-logo not decoded")
	}
}
