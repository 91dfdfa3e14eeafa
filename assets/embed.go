// Package assets embeds a fallback set of frame sequences so the app still
// animates when the configured asset root is missing.
package assets

import (
	"embed"

	"github.com/milk9111/flipbook/frames"
)

//go:embed images
var imagesFS embed.FS

// LoadStore builds a Frame Store from the embedded sequences.
func LoadStore(opts ...frames.Option) (*frames.Store, error) {
	return frames.BuildFS(imagesFS, "images", opts...)
}
