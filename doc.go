/*
Package lzf implements the LZF compression format: the raw token codec
compatible with liblzf's lzf_compress/lzf_decompress, the framed "ZV"
block stream written by the lzf command-line utility, and streaming
adapters layered on top.

Data Structure Documentation

Token Stream

A raw compressed stream is a sequence of tokens, each introduced by a
control byte. Control bytes below 32 start a literal run, all others a
back-reference into the previously decoded output.

    Literal run (L+1 bytes, 1-32, copied verbatim):
    +----------+----------------------+
    | 000LLLLL |  L+1 literal bytes   |
    +----------+----------------------+

    Short back-reference (length L+2, range 3-8):
    +----------+----------+
    | LLLddddd | dddddddd |
    +----------+----------+

    Long back-reference (length L+9, range 9-264):
    +----------+----------+----------+
    | 111ddddd | LLLLLLLL | dddddddd |
    +----------+----------+----------+

The 13 distance bits d (high bits in the control byte, low bits in the
trailing byte) encode distance-1, for distances of 1 to 8192 bytes behind
the current output position. There is no stream terminator; consumers know
the length from the enclosing buffer or block.

Block Stream

A framed stream is a sequence of self-describing blocks, each carrying up
to 65535 bytes of input. Blocks whose payload would not shrink under
compression are stored literally. An optional single zero byte terminates
the stream.

    Literal block:
    +-----+-----+------+---------------+---------------+
    | 'Z' | 'V' | 0x00 | usize (2, BE) |  usize bytes  |
    +-----+-----+------+---------------+---------------+

    Compressed block:
    +-----+-----+------+---------------+---------------+---------------+
    | 'Z' | 'V' | 0x01 | csize (2, BE) | usize (2, BE) |  csize bytes  |
    +-----+-----+------+---------------+---------------+---------------+
*/
package lzf
