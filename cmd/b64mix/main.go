package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/base64mix/codec"
	"github.com/wippyai/base64mix/host"
)

func main() {
	var (
		decode      = flag.Bool("d", false, "Decode instead of encode")
		urlSafe     = flag.Bool("url", false, "Use the URL-safe alphabet")
		mixed       = flag.Bool("mix", false, "Accept either alphabet when decoding")
		inFile      = flag.String("in", "", "Input file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		host.SetLogger(logger)
		zap.ReplaceGlobals(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Reading base64 from an interactive terminal is almost always an
	// accident; point at the TUI instead.
	if *inFile == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Usage: b64mix [-d] [-url] [-mix] [-in file] [-out file]")
		fmt.Fprintln(os.Stderr, "       b64mix -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "Reading from a terminal; pipe data in or pass -in.")
		os.Exit(1)
	}

	if err := run(*decode, *urlSafe, *mixed, *inFile, *outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(decode, urlSafe, mixed bool, inFile, outFile string) error {
	if mixed && !decode {
		return fmt.Errorf("-mix only applies to decoding")
	}
	if mixed && urlSafe {
		return fmt.Errorf("-mix already accepts the URL-safe alphabet")
	}

	src, err := readInput(inFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var out []byte
	switch {
	case !decode && !urlSafe:
		out, err = codec.EncodeStd(src)
	case !decode:
		out, err = codec.EncodeURL(src)
	case mixed:
		out, err = codec.DecodeMix(trimTrailingNewline(src))
	case urlSafe:
		out, err = codec.DecodeURL(trimTrailingNewline(src))
	default:
		out, err = codec.DecodeStd(trimTrailingNewline(src))
	}
	if err != nil {
		return err
	}

	if !decode {
		out = append(out, '\n')
	}
	return writeOutput(outFile, out)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// trimTrailingNewline drops a single final line ending so that piped
// encoder output decodes cleanly.
func trimTrailingNewline(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
	}
	return b
}
