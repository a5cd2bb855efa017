package lzf

import "errors"

// Magic marker preceding every block in a framed stream.
var magic = []byte{'Z', 'V'}

const (
	blockTypeLiteral    = 0
	blockTypeCompressed = 1

	literalHeaderSize    = 5
	compressedHeaderSize = 7
)

const (
	hashLog  = 16
	hashSize = 1 << hashLog

	maxLiteral = 1 << 5              // longest literal run
	maxMatch   = (1 << 8) + (1 << 3) // longest back-reference
	maxOffset  = 1 << 13             // farthest back-reference distance
)

// MaxBlockSize is the largest block size representable by the fixed-width
// length fields of a block header.
const MaxBlockSize = 1<<16 - 1

var (
	// ErrInsufficientSpace is returned when an output buffer is too small to
	// hold the result. For Compress, a buffer of MaxCompressedSize bytes
	// always suffices.
	ErrInsufficientSpace = errors.New("lzf: insufficient output space")

	// ErrTruncatedInput is returned when a token stream, block header or
	// block payload ends before its declared content.
	ErrTruncatedInput = errors.New("lzf: truncated input")

	// ErrInvalidReference is returned when a back-reference points before
	// the start of the output.
	ErrInvalidReference = errors.New("lzf: invalid back-reference")

	// ErrBadMagic is returned when a block header does not start with the
	// 'Z' 'V' marker.
	ErrBadMagic = errors.New("lzf: bad magic byte sequence")

	// ErrBadBlockType is returned when a block header carries an unknown
	// type byte.
	ErrBadBlockType = errors.New("lzf: bad block type")

	// ErrLengthMismatch is returned when a compressed block does not decode
	// to its declared uncompressed size.
	ErrLengthMismatch = errors.New("lzf: block length mismatch")

	// ErrInvalidConfiguration is returned when a requested block size is
	// outside the representable range.
	ErrInvalidConfiguration = errors.New("lzf: invalid configuration")

	// ErrClosed is returned when a closed Writer is used.
	ErrClosed = errors.New("lzf: is closed")
)

// MaxCompressedSize returns the worst-case compressed size for an input of
// n bytes, covering all-literal output plus per-run token overhead.
// Compress never returns ErrInsufficientSpace when given an output buffer
// of this size.
func MaxCompressedSize(n int) int {
	return ((n * 33) >> 5) + 1
}
