package frames

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// Store maps sequence keys to their ordered frames. It is built once and never
// mutated afterwards, so it can be shared by pointer across bindings.
type Store struct {
	sequences map[string][]*Frame
	root      string
}

type options struct {
	loader Loader
	logger *log.Logger
}

// Option configures Build and BuildFS.
type Option func(*options)

// WithLoader replaces the image decoder. Tests use it to avoid touching the GPU.
func WithLoader(l Loader) Option {
	return func(o *options) {
		if l != nil {
			o.loader = l
		}
	}
}

// WithLogger sets the logger used for load summaries.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{loader: DecodeImage, logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Build scans the immediate subdirectories of root. Each subdirectory becomes
// a sequence named after it and each file inside becomes one frame, ordered by
// natural file name order.
func Build(root string, opts ...Option) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: root %s: %w", ErrAssetLoad, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: root %s is not a directory", ErrAssetLoad, root)
	}
	return build(os.DirFS(root), ".", root, newOptions(opts))
}

// BuildFS is Build over an fs.FS, e.g. an embed.FS or fstest.MapFS. root is a
// slash-separated path inside fsys.
func BuildFS(fsys fs.FS, root string, opts ...Option) (*Store, error) {
	return build(fsys, root, root, newOptions(opts))
}

func build(fsys fs.FS, root, display string, o options) (*Store, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("%w: root %s: %w", ErrAssetLoad, display, err)
	}

	s := &Store{sequences: make(map[string][]*Frame), root: display}
	total := 0
	for _, entry := range entries {
		if !entry.IsDir() || hidden(entry.Name()) {
			continue
		}
		key := entry.Name()
		dir := path.Join(root, key)
		files, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("%w: sequence %s: %w", ErrAssetLoad, key, err)
		}

		names := make([]string, 0, len(files))
		for _, f := range files {
			if f.IsDir() || hidden(f.Name()) {
				continue
			}
			names = append(names, f.Name())
		}
		slices.SortFunc(names, func(a, b string) int {
			switch {
			case natural.Less(a, b):
				return -1
			case natural.Less(b, a):
				return 1
			}
			return 0
		})

		seq := make([]*Frame, 0, len(names))
		for i, name := range names {
			name = path.Join(dir, name)
			img, err := o.loader(fsys, name)
			if err != nil {
				return nil, fmt.Errorf("%w: frame %s: %w", ErrAssetLoad, name, err)
			}
			seq = append(seq, &Frame{
				Key:   key,
				Index: i,
				Path:  filepath.Join(display, filepath.FromSlash(strings.TrimPrefix(name, root+"/"))),
				Image: img,
			})
		}
		if len(seq) == 0 {
			o.logger.Printf("frames: sequence %q in %s has no frames", key, display)
		}
		s.sequences[key] = seq
		total += len(seq)
	}

	o.logger.Printf("frames: loaded %d sequences (%d frames) from %s", len(s.sequences), total, display)
	return s, nil
}

// hidden reports dot-prefixed names. They are skipped both as sequence
// directories and as frame files, so editor and OS litter (.DS_Store, .git)
// never becomes a key or a frame. A sequence's length is therefore its count of
// visible files, not of every directory entry.
func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Get returns frame index of sequence key. It never clamps or wraps: an
// unknown key or an index outside the sequence is an error.
func (s *Store) Get(key string, index int) (*Frame, error) {
	seq, err := s.sequence(key)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(seq) {
		return nil, fmt.Errorf("%w: %s[%d], sequence has %d frames", ErrFrameIndexOutOfRange, key, index, len(seq))
	}
	return seq[index], nil
}

// MustGet is Get for setup code that treats a missing frame as a content bug.
func (s *Store) MustGet(key string, index int) *Frame {
	f, err := s.Get(key, index)
	if err != nil {
		panic(err)
	}
	return f
}

// Len returns the number of frames in sequence key.
func (s *Store) Len(key string) (int, error) {
	seq, err := s.sequence(key)
	if err != nil {
		return 0, err
	}
	return len(seq), nil
}

// Has reports whether key was loaded.
func (s *Store) Has(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.sequences[key]
	return ok
}

// Keys returns the sequence keys in sorted order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.sequences))
	for k := range s.sequences {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Root returns the directory the Store was built from.
func (s *Store) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

func (s *Store) sequence(key string) ([]*Frame, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: %q (nil store)", ErrUnknownSequence, key)
	}
	seq, ok := s.sequences[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSequence, key)
	}
	return seq, nil
}
