package lzf

import "io"

// WriterOptions define writer specific options.
type WriterOptions struct {
	// BlockSize is the maximum uncompressed size in bytes of each framed
	// block. Must not exceed MaxBlockSize.
	// Default: MaxBlockSize.
	BlockSize int

	// EOFMarker appends a single zero byte after the final block on Close,
	// matching the historical lzf utility stream.
	EOFMarker bool
}

func (o *WriterOptions) norm() *WriterOptions {
	var oo WriterOptions
	if o != nil {
		oo = *o
	}

	if oo.BlockSize == 0 {
		oo.BlockSize = MaxBlockSize
	}
	return &oo
}

// Writer instances frame and compress a byte stream into "ZV" blocks.
//
// Incoming bytes accumulate until they fill a block, which is then framed
// and written to the underlying writer. Close flushes the final partial
// block; an abandoned Writer loses buffered, not-yet-flushed bytes.
type Writer struct {
	w io.Writer
	o *WriterOptions

	buf  []byte // accumulated plain bytes, less than one block
	comp []byte // compression scratch buffer
	out  []byte // framed block scratch buffer
}

// NewWriter wraps a writer and returns a Writer.
func NewWriter(w io.Writer, o *WriterOptions) (*Writer, error) {
	o = o.norm()
	if o.BlockSize < 1 || o.BlockSize > MaxBlockSize {
		return nil, ErrInvalidConfiguration
	}

	return &Writer{
		w:    w,
		o:    o,
		buf:  make([]byte, 0, o.BlockSize),
		comp: make([]byte, o.BlockSize),
	}, nil
}

// Write appends p to the stream. Whole blocks within p bypass the
// accumulation buffer and are framed directly.
func (w *Writer) Write(p []byte) (int, error) {
	if w.comp == nil {
		return 0, ErrClosed
	}
	written := len(p)

	if len(w.buf) != 0 {
		n := w.o.BlockSize - len(w.buf)
		if n > len(p) {
			n = len(p)
		}
		w.buf = append(w.buf, p[:n]...)
		p = p[n:]

		if len(w.buf) == w.o.BlockSize {
			if err := w.writeBlock(w.buf); err != nil {
				return 0, err
			}
			w.buf = w.buf[:0]
		}
	}

	for len(p) >= w.o.BlockSize {
		if err := w.writeBlock(p[:w.o.BlockSize]); err != nil {
			return 0, err
		}
		p = p[w.o.BlockSize:]
	}

	w.buf = append(w.buf, p...)
	return written, nil
}

// Close flushes any buffered partial block and finalizes the stream.
// Subsequent calls return ErrClosed.
func (w *Writer) Close() error {
	if w.comp == nil {
		return ErrClosed
	}

	if len(w.buf) != 0 {
		if err := w.writeBlock(w.buf); err != nil {
			return err
		}
		w.buf = w.buf[:0]
	}

	if w.o.EOFMarker {
		if _, err := w.w.Write([]byte{0}); err != nil {
			return err
		}
	}
	w.comp = nil
	return nil
}

func (w *Writer) writeBlock(chunk []byte) error {
	w.out = appendBlock(w.out[:0], w.comp, chunk)
	_, err := w.w.Write(w.out)
	return err
}
