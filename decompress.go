package lzf

// Decompress decodes a raw LZF token stream from src into dst and returns
// the number of bytes written.
//
// It returns ErrTruncatedInput when a control byte demands bytes beyond the
// end of src, ErrInvalidReference when a back-reference points before the
// start of dst, and ErrInsufficientSpace when dst is exhausted before the
// token stream is. Partial output after a failure is undefined and must be
// discarded.
//
// Decompress performs no allocations.
func Decompress(src, dst []byte) (int, error) {
	var ip, op int

	for ip < len(src) {
		ctrl := int(src[ip])
		ip++

		if ctrl < 32 { // literal run of ctrl+1 bytes
			n := ctrl + 1
			if ip+n > len(src) {
				return 0, ErrTruncatedInput
			}
			if op+n > len(dst) {
				return 0, ErrInsufficientSpace
			}
			copy(dst[op:], src[ip:ip+n])
			ip += n
			op += n
			continue
		}

		n := ctrl>>5 + 2
		if n == 7+2 { // long form, one extra length byte
			if ip >= len(src) {
				return 0, ErrTruncatedInput
			}
			n += int(src[ip])
			ip++
		}
		if ip >= len(src) {
			return 0, ErrTruncatedInput
		}
		off := (ctrl&0x1f)<<8 | int(src[ip])
		ip++

		if off >= op {
			return 0, ErrInvalidReference
		}
		if op+n > len(dst) {
			return 0, ErrInsufficientSpace
		}

		// Source and destination may overlap whenever the distance is
		// shorter than the length, so the copy must advance byte by byte.
		ref := op - off - 1
		for i := 0; i < n; i++ {
			dst[op+i] = dst[ref+i]
		}
		op += n
	}

	return op, nil
}
