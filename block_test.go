package lzf_test

import (
	"github.com/bsm/lzf"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("EncodeBlocks", func() {

	It("should round-trip", func() {
		framed, err := lzf.EncodeBlocks([]byte("hello framed world"), 32768)
		Expect(err).NotTo(HaveOccurred())

		plain, err := lzf.DecodeBlocks(framed)
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(Equal([]byte("hello framed world")))
	})

	It("should round-trip across chunk sizes", func() {
		in := seedText(200000)
		for _, sz := range []int{1, 7, 512, 4096, 65535} {
			framed, err := lzf.EncodeBlocks(in, sz)
			Expect(err).NotTo(HaveOccurred())

			plain, err := lzf.DecodeBlocks(framed)
			Expect(err).NotTo(HaveOccurred())
			Expect(plain).To(Equal(in))
		}
	})

	It("should encode empty input as an empty stream", func() {
		framed, err := lzf.EncodeBlocks(nil, 4096)
		Expect(err).NotTo(HaveOccurred())
		Expect(framed).To(BeEmpty())
	})

	It("should reject block sizes outside the representable range", func() {
		for _, sz := range []int{0, -1, lzf.MaxBlockSize + 1} {
			_, err := lzf.EncodeBlocks([]byte("data"), sz)
			Expect(err).To(MatchError(lzf.ErrInvalidConfiguration))
		}
	})

	It("should split input into multiple blocks", func() {
		in := seedText(150000)
		framed, err := lzf.EncodeBlocks(in, 4096)
		Expect(err).NotTo(HaveOccurred())

		infos := parseBlocks(framed)
		Expect(len(infos)).To(BeNumerically(">", 1))

		total := 0
		for _, info := range infos {
			Expect(info.USize).To(BeNumerically("<=", 4096))
			total += info.USize
		}
		Expect(total).To(Equal(len(in)))

		plain, err := lzf.DecodeBlocks(framed)
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(Equal(in))
	})

	It("should never emit an expanding compressed block", func() {
		in := seedRandom(10000)
		framed, err := lzf.EncodeBlocks(in, 4096)
		Expect(err).NotTo(HaveOccurred())

		for _, info := range parseBlocks(framed) {
			if info.Type == 1 {
				Expect(info.CSize).To(BeNumerically("<", info.USize))
			}
		}

		plain, err := lzf.DecodeBlocks(framed)
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(Equal(in))
	})

	It("should store incompressable chunks literally", func() {
		in := seedRandom(10000)
		framed, err := lzf.EncodeBlocks(in, 4096)
		Expect(err).NotTo(HaveOccurred())

		for _, info := range parseBlocks(framed) {
			Expect(info.Type).To(Equal(byte(0)))
		}
		Expect(len(framed)).To(Equal(len(in) + 3*5))
	})

	It("should compress compressable chunks", func() {
		in := seedText(4096)
		framed, err := lzf.EncodeBlocks(in, 4096)
		Expect(err).NotTo(HaveOccurred())

		infos := parseBlocks(framed)
		Expect(infos).To(HaveLen(1))
		Expect(infos[0].Type).To(Equal(byte(1)))
		Expect(len(framed)).To(BeNumerically("<", len(in)))
	})
})

var _ = Describe("DecodeBlocks", func() {

	It("should decode empty streams", func() {
		plain, err := lzf.DecodeBlocks(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(BeEmpty())
	})

	It("should stop at a zero-byte terminator", func() {
		framed, err := lzf.EncodeBlocks([]byte("terminated"), 4096)
		Expect(err).NotTo(HaveOccurred())
		framed = append(framed, 0x00, 'g', 'a', 'r', 'b', 'a', 'g', 'e')

		plain, err := lzf.DecodeBlocks(framed)
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(Equal([]byte("terminated")))
	})

	It("should reject bad magic", func() {
		framed, err := lzf.EncodeBlocks(seedText(64), 4096)
		Expect(err).NotTo(HaveOccurred())

		for _, pos := range []int{0, 1} {
			tampered := append([]byte{}, framed...)
			tampered[pos] ^= 0xff
			_, err = lzf.DecodeBlocks(tampered)
			Expect(err).To(MatchError(lzf.ErrBadMagic))
		}
	})

	It("should reject unknown block types", func() {
		_, err := lzf.DecodeBlocks([]byte{'Z', 'V', 9, 0, 0})
		Expect(err).To(MatchError(lzf.ErrBadBlockType))
	})

	It("should reject dangling partial headers", func() {
		framed, err := lzf.EncodeBlocks([]byte("hello hello hello hello"), 4096)
		Expect(err).NotTo(HaveOccurred())

		_, err = lzf.DecodeBlocks(framed[:3])
		Expect(err).To(MatchError(lzf.ErrTruncatedInput))

		_, err = lzf.DecodeBlocks([]byte{'Z', 'V', 1, 0, 9, 0})
		Expect(err).To(MatchError(lzf.ErrTruncatedInput))
	})

	It("should reject truncated payloads", func() {
		framed, err := lzf.EncodeBlocks([]byte("hello hello hello hello"), 4096)
		Expect(err).NotTo(HaveOccurred())

		_, err = lzf.DecodeBlocks(framed[:len(framed)-1])
		Expect(err).To(MatchError(lzf.ErrTruncatedInput))
	})

	It("should reject length mismatches", func() {
		in := seedText(1024)
		framed, err := lzf.EncodeBlocks(in, 4096)
		Expect(err).NotTo(HaveOccurred())
		Expect(framed[2]).To(Equal(byte(1)))

		// declare one more uncompressed byte than the payload decodes to
		framed[5] = byte(1025 >> 8)
		framed[6] = byte(1025 & 0xff)
		_, err = lzf.DecodeBlocks(framed)
		Expect(err).To(MatchError(lzf.ErrLengthMismatch))
	})
})
