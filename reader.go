package lzf

import (
	"encoding/binary"
	"io"
)

// Reader instances decode a framed "ZV" block stream incrementally.
//
// Blocks are parsed and decompressed lazily, one at a time; block
// boundaries are invisible to the caller.
type Reader struct {
	r io.Reader

	hdr [compressedHeaderSize]byte
	in  []byte // compressed payload of the current block
	out []byte // decompressed bytes of the current block
	pos int    // cursor within out
	eos bool   // source exhausted
}

// NewReader wraps a reader and returns a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader. A single call may span multiple blocks; io.EOF
// is returned only once the source is exhausted and all buffered bytes have
// been served.
func (r *Reader) Read(p []byte) (int, error) {
	var n int
	for n < len(p) {
		if r.pos < len(r.out) {
			m := copy(p[n:], r.out[r.pos:])
			r.pos += m
			n += m
			continue
		}

		ok, err := r.nextBlock()
		if err != nil {
			return n, err
		}
		if !ok {
			if n == 0 {
				return 0, io.EOF
			}
			break
		}
	}
	return n, nil
}

// nextBlock parses and decompresses the next block from the source. It
// returns false once the source is exhausted or terminated by a zero byte.
func (r *Reader) nextBlock() (bool, error) {
	if r.eos {
		return false, nil
	}

	if _, err := io.ReadFull(r.r, r.hdr[:1]); err != nil {
		if err == io.EOF {
			r.eos = true
			return false, nil
		}
		return false, err
	}
	if r.hdr[0] == 0 { // stream terminator
		r.eos = true
		return false, nil
	}

	if _, err := io.ReadFull(r.r, r.hdr[1:literalHeaderSize]); err != nil {
		return false, readErr(err)
	}
	if r.hdr[0] != magic[0] || r.hdr[1] != magic[1] {
		return false, ErrBadMagic
	}

	switch r.hdr[2] {
	case blockTypeLiteral:
		un := int(binary.BigEndian.Uint16(r.hdr[3:]))
		r.out = grow(r.out, un)
		if _, err := io.ReadFull(r.r, r.out); err != nil {
			return false, readErr(err)
		}

	case blockTypeCompressed:
		cn := int(binary.BigEndian.Uint16(r.hdr[3:]))
		if _, err := io.ReadFull(r.r, r.hdr[literalHeaderSize:compressedHeaderSize]); err != nil {
			return false, readErr(err)
		}
		un := int(binary.BigEndian.Uint16(r.hdr[5:]))

		r.in = grow(r.in, cn)
		if _, err := io.ReadFull(r.r, r.in); err != nil {
			return false, readErr(err)
		}

		r.out = grow(r.out, un)
		wn, err := Decompress(r.in, r.out)
		if err != nil {
			return false, err
		}
		if wn != un {
			return false, ErrLengthMismatch
		}

	default:
		return false, ErrBadBlockType
	}

	r.pos = 0
	return true, nil
}

// readErr maps io errors on partial headers and payloads to the package
// error taxonomy.
func readErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncatedInput
	}
	return err
}

func grow(b []byte, sz int) []byte {
	if cap(b) >= sz {
		return b[:sz]
	}
	return make([]byte, sz)
}
