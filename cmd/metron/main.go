// metron - length value codec CLI
//
// Usage:
//
//	metron parse [--lang=TAG] [file]    Print amount and unit for each measurement
//	metron fmt [--lang=TAG] [file]      Reformat measurements canonically
//	metron encode [--lang=TAG] [file]   Encode text measurements to hex
//	metron decode [file]                Decode hex measurements to text
//	metron pack [--lang=TAG] [-z] [file]  Pack measurements into an MLS1 container (stdout)
//	metron unpack [file]                Print the values of an MLS1 container
//	metron version                      Print version info
//
// Input is one measurement per line (or one hex encoding per line for
// decode). If no file is given, reads from stdin. --lang selects the
// numeric culture by BCP-47 tag (default: invariant).
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Neumenon/metron/metron"
	"github.com/Neumenon/metron/stream"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	culture := metron.Invariant
	compress := false
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case strings.HasPrefix(arg, "--lang="):
			c, err := metron.ParseCulture(strings.TrimPrefix(arg, "--lang="))
			if err != nil {
				fatal("bad --lang tag: %v", err)
			}
			culture = c
		case arg == "-z":
			compress = true
		default:
			if !strings.HasPrefix(arg, "-") && arg != "-" {
				fileArg = arg
			}
		}
	}

	var input io.Reader = os.Stdin
	if fileArg != "" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	switch cmd {
	case "parse":
		cmdParse(input, culture)
	case "fmt":
		cmdFmt(input, culture)
	case "encode":
		cmdEncode(input, culture)
	case "decode":
		cmdDecode(input, culture)
	case "pack":
		cmdPack(input, culture, compress)
	case "unpack":
		cmdUnpack(input, culture)
	case "version", "-v", "--version":
		fmt.Printf("metron %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `metron - length value codec CLI

Usage:
  metron parse [--lang=TAG] [file]      Print amount and unit for each measurement
  metron fmt [--lang=TAG] [file]        Reformat measurements canonically
  metron encode [--lang=TAG] [file]     Encode text measurements to hex
  metron decode [file]                  Decode hex measurements to text
  metron pack [--lang=TAG] [-z] [file]  Pack measurements into an MLS1 container (stdout)
  metron unpack [file]                  Print the values of an MLS1 container
  metron version                        Print version info

Options:
  --lang=TAG    Numeric culture as a BCP-47 tag, e.g. --lang=de-DE
  -z            Compress the packed container with zstd

Input is one measurement per line. If no file is given, reads stdin.

Examples:
  echo 2.5column | metron encode
  # Output: e20000000000000440

  echo 7f | metron decode
  # Output: 127

  printf '12\nauto\n3column\n' | metron pack -z > lengths.mls
  metron unpack lengths.mls
`)
}

// forEachLine calls fn for each non-empty input line.
func forEachLine(r io.Reader, fn func(line string)) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	if err := sc.Err(); err != nil {
		fatal("read input: %v", err)
	}
}

// cmdParse: parse each line and print amount and unit separately.
func cmdParse(r io.Reader, c metron.Culture) {
	forEachLine(r, func(line string) {
		v, err := metron.ParseValue(line, c)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("%g\t%s\n", v.Amount, v.Unit)
	})
}

// cmdFmt: parse each line and print its canonical form.
func cmdFmt(r io.Reader, c metron.Culture) {
	forEachLine(r, func(line string) {
		v, err := metron.ParseValue(line, c)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(metron.FormatValue(v, c))
	})
}

// cmdEncode: parse each line and print the hex binary encoding.
func cmdEncode(r io.Reader, c metron.Culture) {
	forEachLine(r, func(line string) {
		v, err := metron.ParseValue(line, c)
		if err != nil {
			fatal("%v", err)
		}
		b, err := metron.EncodeBinary(v)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(hex.EncodeToString(b))
	})
}

// cmdDecode: decode each hex line and print canonical text.
func cmdDecode(r io.Reader, c metron.Culture) {
	forEachLine(r, func(line string) {
		data, err := hex.DecodeString(line)
		if err != nil {
			fatal("bad hex %q: %v", line, err)
		}
		v, n, err := metron.DecodeBinary(data)
		if err != nil {
			fatal("%v", err)
		}
		if n != len(data) {
			fatal("trailing bytes after value in %q", line)
		}
		fmt.Println(metron.FormatValue(v, c))
	})
}

// cmdPack: parse each line and write one MLS1 container to stdout.
func cmdPack(r io.Reader, c metron.Culture, compress bool) {
	w := stream.NewWriter(os.Stdout, stream.Options{Compress: compress})
	forEachLine(r, func(line string) {
		v, err := metron.ParseValue(line, c)
		if err != nil {
			fatal("%v", err)
		}
		if err := w.Write(v); err != nil {
			fatal("%v", err)
		}
	})
	if err := w.Close(); err != nil {
		fatal("write container: %v", err)
	}
}

// cmdUnpack: print each value of an MLS1 container, one per line.
func cmdUnpack(r io.Reader, c metron.Culture) {
	sr, err := stream.NewReader(r)
	if err != nil {
		fatal("%v", err)
	}
	vals, err := sr.ReadAll()
	if err != nil {
		fatal("%v", err)
	}
	for _, v := range vals {
		fmt.Println(metron.FormatValue(v, c))
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "metron: "+format+"\n", args...)
	os.Exit(1)
}
