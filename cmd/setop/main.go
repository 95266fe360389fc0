// Applies ordered-set operations to line-delimited files.
package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/anacrolix/tagflag"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/anacrolix/wbtree"
)

var logger = log.Default.WithNames("main")

var args = struct {
	Verbose bool `name:"v" help:"log input sizes and timings"`
	Sorted  bool `help:"trust that inputs are sorted with no duplicate lines"`
	tagflag.StartPos
	Op string `help:"union, inter, diff or comm"`
	A  string
	B  string
}{}

func main() {
	defer envpprof.Stop()
	err := mainErr()
	if err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	tagflag.Parse(&args, tagflag.Description(
		"Applies ordered-set operations to line-delimited files A and B. Pass - to read an input from stdin."))
	started := time.Now()
	a, b, err := loadInputs()
	if err != nil {
		return err
	}
	if args.Verbose {
		logger.Levelf(log.Info, "loaded %v and %v lines in %v",
			humanize.Comma(int64(a.Len())), humanize.Comma(int64(b.Len())), time.Since(started))
	}
	w := bufio.NewWriter(os.Stdout)
	opStarted := time.Now()
	switch args.Op {
	case "union":
		writeAll(w, a.Union(b))
	case "inter":
		writeAll(w, a.Intersect(b))
	case "diff":
		writeAll(w, a.Difference(b))
	case "comm":
		writeComm(w, a, b)
	default:
		return fmt.Errorf("unknown op %q", args.Op)
	}
	if args.Verbose {
		logger.Levelf(log.Info, "%v took %v", args.Op, time.Since(opStarted))
	}
	return w.Flush()
}

func loadInputs() (a, b wbtree.Set[string], err error) {
	// stdin can only feed one side, so don't race two readers over it.
	if args.A == "-" || args.B == "-" {
		a, err = loadSet(args.A)
		if err == nil {
			b, err = loadSet(args.B)
		}
		return
	}
	var eg errgroup.Group
	eg.Go(func() (err error) {
		a, err = loadSet(args.A)
		return
	})
	eg.Go(func() (err error) {
		b, err = loadSet(args.B)
		return
	})
	err = eg.Wait()
	return
}

func loadSet(path string) (ret wbtree.Set[string], err error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return ret, err
		}
		defer f.Close()
		r = f
	}
	if args.Sorted {
		var lines []string
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return ret, err
		}
		return wbtree.FromSortedSlice(lines), nil
	}
	return wbtree.TryCollect(scanLines(r))
}

func scanLines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", err)
		}
	}
}

func writeAll(w *bufio.Writer, s wbtree.Set[string]) {
	for x := range s.All() {
		fmt.Fprintln(w, x)
	}
}

// writeComm interleaves the two ascending orders the way comm(1) does:
// lines only in a in the first column, lines only in b behind one tab,
// lines in both behind two.
func writeComm(w *bufio.Writer, a, b wbtree.Set[string]) {
	ai := a.Ascending()
	bi := b.Ascending()
	av, aok := ai.Next()
	bv, bok := bi.Next()
	for aok || bok {
		switch {
		case !bok || (aok && av < bv):
			fmt.Fprintln(w, av)
			av, aok = ai.Next()
		case !aok || bv < av:
			fmt.Fprintf(w, "\t%s\n", bv)
			bv, bok = bi.Next()
		default:
			fmt.Fprintf(w, "\t\t%s\n", av)
			av, aok = ai.Next()
			bv, bok = bi.Next()
		}
	}
}
