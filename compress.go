package lzf

// hash3 maps the 3 bytes at src[i:] to a slot in the hash table.
func hash3(src []byte, i int) uint32 {
	v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
	return (v * 0x1e35a7bd) >> (32 - hashLog - 8) & (hashSize - 1)
}

// Compress encodes src into dst as a raw LZF token stream and returns the
// number of bytes written. The output is readable by liblzf's
// lzf_decompress.
//
// It returns ErrInsufficientSpace when dst cannot hold the encoded stream;
// callers can pre-size dst via MaxCompressedSize. Partial output after a
// failure is undefined and must be discarded.
//
// Compress performs no allocations: the hash index lives on the stack and
// is discarded when the call returns.
func Compress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	// Single-slot index of 3-byte prefixes. Slots store position+1 so that
	// zero means empty; collisions simply overwrite.
	var htab [hashSize]uint32

	var op, anchor int
	var err error

	pos := 0
	for pos+2 < len(src) {
		h := hash3(src, pos)
		prev := int(htab[h])
		htab[h] = uint32(pos + 1)

		if prev > 0 && prev-1 < pos {
			candidate := prev - 1
			off := pos - candidate - 1

			// The hash may collide, so the candidate bytes must be verified.
			if off < maxOffset &&
				src[candidate] == src[pos] &&
				src[candidate+1] == src[pos+1] &&
				src[candidate+2] == src[pos+2] {

				if op, err = emitLiterals(dst, op, src[anchor:pos]); err != nil {
					return 0, err
				}

				max := len(src) - pos
				if max > maxMatch {
					max = maxMatch
				}
				mlen := 3
				for mlen < max && src[candidate+mlen] == src[pos+mlen] {
					mlen++
				}

				if op, err = emitReference(dst, op, off, mlen); err != nil {
					return 0, err
				}

				// Keep the index warm inside the matched span.
				for scan := pos + 1; scan+2 < pos+mlen; scan++ {
					htab[hash3(src, scan)] = uint32(scan + 1)
				}

				pos += mlen
				anchor = pos
				continue
			}
		}
		pos++
	}

	return emitLiterals(dst, op, src[anchor:])
}

// emitLiterals appends lit to dst as one or more literal-run tokens of at
// most maxLiteral bytes each.
func emitLiterals(dst []byte, op int, lit []byte) (int, error) {
	for len(lit) > 0 {
		n := len(lit)
		if n > maxLiteral {
			n = maxLiteral
		}
		if op+1+n > len(dst) {
			return 0, ErrInsufficientSpace
		}
		dst[op] = byte(n - 1)
		op++
		op += copy(dst[op:], lit[:n])
		lit = lit[n:]
	}
	return op, nil
}

// emitReference appends a back-reference token for a match of mlen bytes
// (3 <= mlen <= maxMatch) at distance off+1.
func emitReference(dst []byte, op, off, mlen int) (int, error) {
	l := mlen - 2
	if l < 7 {
		if op+2 > len(dst) {
			return 0, ErrInsufficientSpace
		}
		dst[op] = byte(l)<<5 | byte(off>>8)
		op++
	} else {
		if op+3 > len(dst) {
			return 0, ErrInsufficientSpace
		}
		dst[op] = 7<<5 | byte(off>>8)
		dst[op+1] = byte(l - 7)
		op += 2
	}
	dst[op] = byte(off)
	return op + 1, nil
}
