// Command gifsplit turns animated GIFs into frame sequence directories. Each
// <name>.gif under the asset root becomes <root>/<name>/1.png .. N.png and the
// GIF is removed unless -keep is set.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/flipbook/frames"
)

func main() {
	root := flag.String("root", "assets/images", "asset root that receives the sequence directories")
	keep := flag.Bool("keep", false, "keep the source GIFs")
	flag.Parse()

	gifs := flag.Args()
	if len(gifs) == 0 {
		matches, err := filepath.Glob(filepath.Join(*root, "*.gif"))
		if err != nil {
			log.Fatalf("gifsplit: %v", err)
		}
		gifs = matches
	}
	if len(gifs) == 0 {
		log.Printf("gifsplit: no gifs in %s", *root)
		return
	}

	failed := false
	for _, path := range gifs {
		dir, n, err := frames.SplitGIF(path, *root)
		if err != nil {
			log.Printf("gifsplit: %v", err)
			failed = true
			continue
		}
		log.Printf("gifsplit: %s -> %s (%d frames)", path, dir, n)
		if *keep {
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Printf("gifsplit: remove %s: %v", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
