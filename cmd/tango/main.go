// Command tango drives a tango tree from a line-oriented protocol: the
// first token on stdin is the universe size n, and every record after
// that is either "1 <k>" (search for k, reorganizing preferred paths as
// needed) or "2" (print the current tree). Any other token is reported as
// an invalid operation and the program continues.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/mikenye/tangotree/tango"
)

func main() {
	logLevel := flag.String("log-level", "info", "splice trace verbosity (debug, info, warn, error)")
	flag.Parse()

	level, err := parseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tango: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		return
	}
	n, err := strconv.Atoi(scanner.Text())
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "tango: invalid universe size %q\n", scanner.Text())
		os.Exit(1)
	}

	root, err := tango.Build(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tango: %v\n", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	trace := func(tr tango.SpliceTrace) {
		logger.Debug("splice", "key", tr.Key, "case", tr.Case, "crossed", tr.BoundKey)
	}

	for scanner.Scan() {
		switch scanner.Text() {
		case "1":
			if !scanner.Scan() {
				fmt.Fprint(out, "Invalid operation\n")
				continue
			}
			k, err := strconv.Atoi(scanner.Text())
			if err != nil {
				fmt.Fprint(out, "Invalid operation\n")
				continue
			}
			root = tango.SearchTango(root, k, trace)
		case "2":
			fmt.Fprint(out, tango.ShowTango(root))
		default:
			fmt.Fprint(out, "Invalid operation\n")
		}
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid -log-level %q: %w", s, err)
	}
	return level, nil
}
