// Command lzf compresses and decompresses files in the LZF block-stream
// format, compatible with the lzf utility shipped with liblzf.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/bsm/lzf"
	"github.com/spf13/cobra"
)

const fileSuffix = ".lzf"

var flags struct {
	BlockSize int
	Force     bool
	Verbose   bool
}

func main() {
	cmd := &cobra.Command{
		Use:           "lzf",
		Short:         "Compress and decompress files in the LZF block-stream format",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().IntVarP(&flags.BlockSize, "blocksize", "b", lzf.MaxBlockSize, "maximum uncompressed block size")
	cmd.PersistentFlags().BoolVarP(&flags.Force, "force", "f", false, "force overwrite of output files")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose mode")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "compress [file ...]",
			Short: "Compress files in place, or stdin to stdout",
			RunE: func(_ *cobra.Command, args []string) error {
				return run(args, compressFile, compressStream)
			},
		},
		&cobra.Command{
			Use:     "decompress [file ...]",
			Aliases: []string{"uncompress"},
			Short:   "Decompress files in place, or stdin to stdout",
			RunE: func(_ *cobra.Command, args []string) error {
				return run(args, decompressFile, decompressStream)
			},
		},
		&cobra.Command{
			Use:   "cat [file ...]",
			Short: "Decompress files to stdout",
			RunE: func(_ *cobra.Command, args []string) error {
				return run(args, catFile, decompressStream)
			},
		},
	)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lzf: %v\n", err)
		os.Exit(1)
	}
}

// run applies perFile to each argument, or streams stdin to stdout when no
// files are given.
func run(args []string, perFile func(string) error, stream func(io.Reader, io.Writer) error) error {
	if len(args) == 0 {
		return stream(os.Stdin, os.Stdout)
	}

	for _, name := range args {
		if err := perFile(name); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func compressStream(r io.Reader, w io.Writer) error {
	wrt, err := lzf.NewWriter(w, &lzf.WriterOptions{BlockSize: flags.BlockSize})
	if err != nil {
		return err
	}
	if _, err := io.Copy(wrt, r); err != nil {
		return err
	}
	return wrt.Close()
}

func decompressStream(r io.Reader, w io.Writer) error {
	_, err := io.Copy(w, lzf.NewReader(r))
	return err
}

func compressFile(name string) error {
	plain, err := ioutil.ReadFile(name)
	if err != nil {
		return err
	}

	framed, err := lzf.EncodeBlocks(plain, flags.BlockSize)
	if err != nil {
		return err
	}
	return replaceFile(name, name+fileSuffix, framed, len(plain), len(framed))
}

func decompressFile(name string) error {
	if !strings.HasSuffix(name, fileSuffix) {
		return fmt.Errorf("unknown suffix")
	}

	framed, err := ioutil.ReadFile(name)
	if err != nil {
		return err
	}

	plain, err := lzf.DecodeBlocks(framed)
	if err != nil {
		return err
	}
	return replaceFile(name, strings.TrimSuffix(name, fileSuffix), plain, len(plain), len(framed))
}

func catFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(os.Stdout, lzf.NewReader(f))
	return err
}

// replaceFile writes data to dst, preserving the permissions of src, and
// removes src on success.
func replaceFile(src, dst string, data []byte, plainLen, framedLen int) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	mode := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !flags.Force {
		mode |= os.O_EXCL
	}
	f, err := os.OpenFile(dst, mode, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if flags.Verbose {
		pct := 0.0
		if plainLen != 0 {
			pct = 100.0 - float64(framedLen)/float64(plainLen)*100.0
		}
		fmt.Fprintf(os.Stderr, "%s: %5.1f%% -- replaced with %s\n", src, pct, dst)
	}
	return os.Remove(src)
}
