// Command rbtreeshell drives a map of independently keyed LLRB trees from
// a line-oriented protocol: "1 id v" inserts, "2 id v" prints True/False
// for containment, "3 id v" removes, "4 id1 v id2" joins two trees through
// a fresh key v, "5 id k" splits a tree at k and prints both halves, and
// "6 id" prints a tree. Any malformed record is reported as an invalid
// operation and the program continues.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/mikenye/tangotree/llrb"
)

func main() {
	logLevel := flag.String("log-level", "info", "operation trace verbosity (debug, info, warn, error)")
	flag.Parse()

	level, err := parseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rbtreeshell: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	trees := map[int]*llrb.Tree{}
	tree := func(id int) *llrb.Tree {
		t, ok := trees[id]
		if !ok {
			t = llrb.New()
			trees[id] = t
		}
		return t
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	nextInt := func() (int, bool) {
		if !scanner.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(scanner.Text())
		return v, err == nil
	}

	for scanner.Scan() {
		switch scanner.Text() {
		case "1":
			id, ok1 := nextInt()
			v, ok2 := nextInt()
			if !ok1 || !ok2 {
				fmt.Fprint(out, "Invalid operation\n")
				continue
			}
			tree(id).Insert(v)
			logger.Debug("insert", "id", id, "key", v)

		case "2":
			id, ok1 := nextInt()
			v, ok2 := nextInt()
			if !ok1 || !ok2 {
				fmt.Fprint(out, "Invalid operation\n")
				continue
			}
			if tree(id).Contains(v) {
				fmt.Fprint(out, "True\n")
			} else {
				fmt.Fprint(out, "False\n")
			}

		case "3":
			id, ok1 := nextInt()
			v, ok2 := nextInt()
			if !ok1 || !ok2 {
				fmt.Fprint(out, "Invalid operation\n")
				continue
			}
			tree(id).Remove(v)
			logger.Debug("remove", "id", id, "key", v)

		case "4":
			id1, ok1 := nextInt()
			v, ok2 := nextInt()
			id2, ok3 := nextInt()
			if !ok1 || !ok2 || !ok3 {
				fmt.Fprint(out, "Invalid operation\n")
				continue
			}
			joined := llrb.JoinTrees(tree(id1), v, tree(id2))
			delete(trees, id2)
			trees[id1] = joined
			logger.Debug("join", "lo", id1, "mid", v, "hi", id2)

		case "5":
			id, ok1 := nextInt()
			k, ok2 := nextInt()
			if !ok1 || !ok2 {
				fmt.Fprint(out, "Invalid operation\n")
				continue
			}
			lo, hi, err := tree(id).Split(k)
			if err != nil {
				fmt.Fprintf(out, "Invalid operation: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "lo:\n%smid: %d\nhi:\n%s", lo.String(), k, hi.String())
			trees[id] = lo
			logger.Debug("split", "id", id, "key", k)

		case "6":
			id, ok1 := nextInt()
			if !ok1 {
				fmt.Fprint(out, "Invalid operation\n")
				continue
			}
			fmt.Fprint(out, tree(id).String())

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
