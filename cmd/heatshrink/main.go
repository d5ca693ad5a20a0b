// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command heatshrink compresses and decompresses files in the
// heatshrink LZSS format. With no file arguments it filters stdin to
// stdout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	heatshrink "github.com/jcdubois/heatshrink-go"
	"github.com/spf13/cobra"
)

// appBufferSize is the size of the buffered file I/O around the codec.
const appBufferSize = 64 * 1024

var (
	encodeFlag bool
	decodeFlag bool
	verbose    bool
	windowArg  int
	lengthArg  int
)

var rootCmd = &cobra.Command{
	Use:           "heatshrink [flags] [input [output]]",
	Short:         "Compress or decompress data in the heatshrink LZSS format",
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&encodeFlag, "encode", "e", false, "compress data")
	f.BoolVarP(&decodeFlag, "decode", "d", false, "decompress data")
	f.BoolVarP(&verbose, "verbose", "v", false,
		"print input & output sizes, compression ratio, etc")
	f.IntVarP(&windowArg, "window", "w", heatshrink.WindowBits,
		"base-2 log of the LZSS sliding window size")
	f.IntVarP(&lengthArg, "length", "l", heatshrink.LookaheadBits,
		"number of bits used for back-reference lengths")
	rootCmd.MarkFlagsOneRequired("encode", "decode")
	rootCmd.MarkFlagsMutuallyExclusive("encode", "decode")
}

// countReader counts the bytes read from the wrapped reader.
type countReader struct {
	r io.Reader
	n int64
}

func (c *countReader) Read(p []byte) (n int, err error) {
	n, err = c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// countWriter counts the bytes passed to the wrapped writer.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (n int, err error) {
	n, err = c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func run(cmd *cobra.Command, args []string) error {
	// Window and lookahead are compile-time constants of the library;
	// other values cannot be honored.
	if windowArg != heatshrink.WindowBits {
		return fmt.Errorf("only the compiled-in window size %d is supported",
			heatshrink.WindowBits)
	}
	if lengthArg != heatshrink.LookaheadBits {
		return fmt.Errorf("only the compiled-in back-reference length %d is supported",
			heatshrink.LookaheadBits)
	}

	inName := "-"
	var in io.Reader = os.Stdin
	if len(args) >= 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		inName = args[0]
		in = f
	}

	toStdout := len(args) < 2
	var out io.Writer = os.Stdout
	if !toStdout {
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	cr := &countReader{r: bufio.NewReaderSize(in, appBufferSize)}
	bw := bufio.NewWriterSize(out, appBufferSize)
	cw := &countWriter{w: bw}

	var err error
	if encodeFlag {
		err = encode(cr, cw)
	} else {
		err = decode(cr, cw)
	}
	if err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}

	if verbose {
		report(toStdout, inName, cr.n, cw.n)
	}
	return nil
}

func encode(r io.Reader, w io.Writer) error {
	hw, err := heatshrink.NewIndexedWriter(w)
	if err != nil {
		return err
	}
	if _, err = io.Copy(hw, r); err != nil {
		return err
	}
	return hw.Close()
}

func decode(r io.Reader, w io.Writer) error {
	hr, err := heatshrink.NewReader(r)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, hr)
	return err
}

// report prints the per-file summary in the format of the reference
// heatshrink tool. It goes to stderr when the output stream is stdout.
func report(useStderr bool, name string, inLen, outLen int64) {
	ratio := 0.0
	if inLen > 0 {
		ratio = 100.0 - 100.0*float64(outLen)/float64(inLen)
	}
	w := os.Stdout
	if useStderr {
		w = os.Stderr
	}
	fmt.Fprintf(w, "%s %.2f%% \t%d -> %d (-w %d -l %d)\n",
		name, ratio, inLen, outLen,
		heatshrink.WindowBits, heatshrink.LookaheadBits)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
