package frames

import (
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

// SplitGIF writes every frame of an animated GIF as <root>/<stem>/<n>.png,
// numbered from 1, so the result can be loaded as the sequence <stem>. It
// refuses to touch an existing sequence directory.
func SplitGIF(gifPath, root string) (string, int, error) {
	stem := strings.TrimSuffix(filepath.Base(gifPath), filepath.Ext(gifPath))
	dir := filepath.Join(root, stem)
	if _, err := os.Stat(dir); err == nil {
		return dir, 0, fmt.Errorf("%w: %s", ErrSequenceExists, dir)
	}

	f, err := os.Open(gifPath)
	if err != nil {
		return dir, 0, fmt.Errorf("frames: open %s: %w", gifPath, err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return dir, 0, fmt.Errorf("frames: decode %s: %w", gifPath, err)
	}

	images := Composite(g)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return dir, 0, fmt.Errorf("frames: create %s: %w", dir, err)
	}
	for i, img := range images {
		name := filepath.Join(dir, strconv.Itoa(i+1)+".png")
		if err := writePNG(name, img); err != nil {
			_ = os.RemoveAll(dir)
			return dir, 0, err
		}
	}
	return dir, len(images), nil
}

// Composite renders each GIF frame onto a full-size canvas, applying the
// previous frames' disposal methods, and returns one image per frame.
func Composite(g *gif.GIF) []*image.RGBA {
	if g == nil || len(g.Image) == 0 {
		return nil
	}
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, p := range g.Image {
			bounds = bounds.Union(p.Bounds())
		}
	}

	canvas := image.NewRGBA(bounds)
	out := make([]*image.RGBA, 0, len(g.Image))
	for i, p := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var saved *image.RGBA
		if disposal == gif.DisposalPrevious {
			saved = cloneRGBA(canvas)
		}

		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)
		out = append(out, cloneRGBA(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = saved
		}
	}
	return out
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("frames: create %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("frames: encode %s: %w", name, err)
	}
	return f.Close()
}
