package lzf

import "encoding/binary"

// EncodeBlocks splits src into chunks of at most blockSize bytes and frames
// each as one block of the "ZV" stream. Chunks that do not shrink under
// compression are stored as literal blocks, so no block ever expands its
// chunk.
//
// blockSize must be between 1 and MaxBlockSize, otherwise
// ErrInvalidConfiguration is returned.
func EncodeBlocks(src []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > MaxBlockSize {
		return nil, ErrInvalidConfiguration
	}

	numBlocks := len(src)/blockSize + 1
	dst := make([]byte, 0, len(src)+numBlocks*compressedHeaderSize)
	comp := make([]byte, blockSize)

	for len(src) > 0 {
		n := len(src)
		if n > blockSize {
			n = blockSize
		}
		dst = appendBlock(dst, comp, src[:n])
		src = src[n:]
	}
	return dst, nil
}

// appendBlock frames a single chunk. Compression must save at least the two
// extra header bytes of a compressed block, so the attempt is budgeted at
// len(chunk)-4 output bytes; chunks that miss the budget are stored
// literally.
func appendBlock(dst, comp, chunk []byte) []byte {
	if budget := len(chunk) - 4; budget > 0 {
		if cn, err := Compress(chunk, comp[:budget]); err == nil {
			dst = append(dst, magic...)
			dst = append(dst, blockTypeCompressed)
			dst = appendUint16(dst, uint16(cn))
			dst = appendUint16(dst, uint16(len(chunk)))
			return append(dst, comp[:cn]...)
		}
	}

	dst = append(dst, magic...)
	dst = append(dst, blockTypeLiteral)
	dst = appendUint16(dst, uint16(len(chunk)))
	return append(dst, chunk...)
}

func appendUint16(dst []byte, v uint16) []byte {
	return append(dst, byte(v>>8), byte(v))
}

// DecodeBlocks parses a framed "ZV" block stream produced by EncodeBlocks,
// a Writer, or the lzf utility, and returns the reconstructed bytes.
//
// The stream ends at exact end-of-input after a complete block, or at a
// single zero byte where a block header would start. A dangling partial
// header or payload is ErrTruncatedInput, a magic mismatch ErrBadMagic, an
// unknown type byte ErrBadBlockType, and a block whose payload does not
// decode to its declared uncompressed size ErrLengthMismatch.
func DecodeBlocks(src []byte) ([]byte, error) {
	dst := []byte{}

	for len(src) > 0 {
		if src[0] == 0 { // stream terminator
			break
		}
		if len(src) < literalHeaderSize {
			return nil, ErrTruncatedInput
		}
		if src[0] != magic[0] || src[1] != magic[1] {
			return nil, ErrBadMagic
		}

		switch src[2] {
		case blockTypeLiteral:
			n := int(binary.BigEndian.Uint16(src[3:]))
			src = src[literalHeaderSize:]
			if len(src) < n {
				return nil, ErrTruncatedInput
			}
			dst = append(dst, src[:n]...)
			src = src[n:]

		case blockTypeCompressed:
			if len(src) < compressedHeaderSize {
				return nil, ErrTruncatedInput
			}
			cn := int(binary.BigEndian.Uint16(src[3:]))
			un := int(binary.BigEndian.Uint16(src[5:]))
			src = src[compressedHeaderSize:]
			if len(src) < cn {
				return nil, ErrTruncatedInput
			}

			off := len(dst)
			dst = append(dst, make([]byte, un)...)
			wn, err := Decompress(src[:cn], dst[off:])
			if err != nil {
				return nil, err
			}
			if wn != un {
				return nil, ErrLengthMismatch
			}
			src = src[cn:]

		default:
			return nil, ErrBadBlockType
		}
	}
	return dst, nil
}
