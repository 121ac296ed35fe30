// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

// Command lz77tool is the thin file-handling wrapper around the lz77
// package: argument parsing, file I/O, and error reporting, none of which
// belong in the core compression library. It reads the whole input file
// into memory and invokes the core on a byte slice.
//
//	lz77tool lz77 compress   <input-path> <output-path>
//	lz77tool lz77 decompress <input-path> <output-path>
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lz77tool", flag.ContinueOnError)
	stats := fs.Bool("stats", false, "print input/output byte counts to stderr")
	verbose := fs.BoolP("verbose", "v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	positional := fs.Args()
	if len(positional) != 4 {
		return fmt.Errorf("usage: lz77tool <algorithm> <mode> <input-path> <output-path>")
	}
	algoName, mode, inputPath, outputPath := positional[0], positional[1], positional[2], positional[3]

	algo, err := algorithmFor(algoName)
	if err != nil {
		return err
	}

	input, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "%s %s: %d bytes from %s\n", algoName, mode, len(input), inputPath)
	}

	var out bytes.Buffer
	switch mode {
	case "compress":
		err = algo.Compress(bytes.NewReader(input), &out)
	case "decompress":
		err = algo.Decompress(bytes.NewReader(input), &out)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", mode, err)
	}

	// Write atomically so a crash or interrupted run never leaves a
	// half-written file behind; the reference error policy is to discard
	// partial output, and that applies to the file on disk too.
	if err := atomic.WriteFile(outputPath, bytes.NewReader(out.Bytes())); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if *stats {
		fmt.Fprintf(os.Stderr, "%s: %d -> %d bytes\n", mode, len(input), out.Len())
	}
	return nil
}
