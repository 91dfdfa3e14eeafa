package frames

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var testPalette = color.Palette{color.Transparent, color.RGBA{R: 0xff, A: 0xff}, color.RGBA{B: 0xff, A: 0xff}}

// writeTestGIF writes a 4x4 animation whose second frame only covers the top
// left pixel.
func writeTestGIF(t *testing.T, path string, disposal byte) {
	t.Helper()

	full := image.NewPaletted(image.Rect(0, 0, 4, 4), testPalette)
	for i := range full.Pix {
		full.Pix[i] = 1
	}
	corner := image.NewPaletted(image.Rect(0, 0, 1, 1), testPalette)
	corner.Pix[0] = 2

	g := &gif.GIF{
		Image:    []*image.Paletted{full, corner},
		Delay:    []int{10, 10},
		Disposal: []byte{disposal, 0},
		Config:   image.Config{Width: 4, Height: 4, ColorModel: testPalette},
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, g); err != nil {
		t.Fatal(err)
	}
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestSplitGIF(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "load.gif")
	writeTestGIF(t, src, gif.DisposalNone)

	dir, n, err := SplitGIF(src, root)
	if err != nil {
		t.Fatalf("SplitGIF: %v", err)
	}
	if dir != filepath.Join(root, "load") || n != 2 {
		t.Fatalf("got dir=%s n=%d", dir, n)
	}

	second := readPNG(t, filepath.Join(dir, "2.png"))
	if second.Bounds().Dx() != 4 || second.Bounds().Dy() != 4 {
		t.Fatalf("frame 2 should be full canvas, got %v", second.Bounds())
	}
	if _, _, b, _ := second.At(0, 0).RGBA(); b == 0 {
		t.Errorf("frame 2 corner should be blue")
	}
	if r, _, _, _ := second.At(3, 3).RGBA(); r == 0 {
		t.Errorf("frame 2 should keep frame 1 pixels outside the corner")
	}

	s, err := Build(root, WithLoader(nopLoader), quiet())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if l, _ := s.Len("load"); l != 2 {
		t.Fatalf("split sequence has %d frames, want 2", l)
	}
}

func TestSplitGIFRefusesExistingSequence(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "idle.gif")
	writeTestGIF(t, src, gif.DisposalNone)
	if err := os.Mkdir(filepath.Join(root, "idle"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, _, err := SplitGIF(src, root); !errors.Is(err, ErrSequenceExists) {
		t.Fatalf("err = %v, want ErrSequenceExists", err)
	}
}

func TestCompositeDisposalBackground(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "bg.gif")
	writeTestGIF(t, src, gif.DisposalBackground)

	f, err := os.Open(src)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}

	out := Composite(g)
	if len(out) != 2 {
		t.Fatalf("got %d frames, want 2", len(out))
	}
	if _, _, _, a := out[1].At(3, 3).RGBA(); a != 0 {
		t.Errorf("background disposal should clear frame 1 before frame 2")
	}
	if _, _, b, _ := out[1].At(0, 0).RGBA(); b == 0 {
		t.Errorf("frame 2 corner should be blue")
	}
}
