package frames

import "errors"

var (
	// ErrAssetLoad reports an unreadable asset root or an undecodable frame.
	ErrAssetLoad = errors.New("frames: asset load failed")
	// ErrUnknownSequence reports a lookup of a key the Store never loaded.
	ErrUnknownSequence = errors.New("frames: unknown sequence")
	// ErrFrameIndexOutOfRange reports an index outside [0, len(sequence)).
	ErrFrameIndexOutOfRange = errors.New("frames: frame index out of range")
	// ErrSequenceExists is returned by SplitGIF when the target directory is
	// already present.
	ErrSequenceExists = errors.New("frames: sequence directory already exists")
)
