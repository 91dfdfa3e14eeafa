package frames

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Loader turns one frame file inside fsys into an image. The format is picked
// by the registered image decoders.
type Loader func(fsys fs.FS, name string) (*ebiten.Image, error)

// DecodeImage is the default Loader. It decodes png, jpeg, gif, bmp and webp.
func DecodeImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
