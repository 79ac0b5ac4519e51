package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/wordtree"
	"github.com/npillmayer/wordtree/order"
	"github.com/npillmayer/wordtree/report"
	"github.com/npillmayer/wordtree/textfile"
	"github.com/pterm/pterm"
)

// main() reads a dictionary into a word tree, reports on the tree's shape and
// measures lookups of the words of a second file. Optionally it drops into an
// interactive mode, where users may look up words by hand.
func main() {
	initDisplay()
	gtrace.CoreTracer = gologadapter.New()
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	tracer().SetTraceLevel(tracing.TraceLevelFromString(opts.trace))
	out := report.ForFile(os.Stdout)
	if opts.nocolor {
		out = report.New(os.Stdout, false)
	}
	dict, err := run(opts, out, os.Stderr)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if opts.interactive {
		if err := interactive(dict, out); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// run performs one benchmark run as configured by opts. Results go to out,
// progress messages to progress. It returns the filled dictionary.
func run(opts *options, out *report.Reporter, progress io.Writer) (*wordtree.Tree, error) {
	words, err := readWords(opts.dictFile, opts.maxDict, opts.split, progress)
	if err != nil {
		return nil, err
	}
	// create our search tree (and time how long it all takes)
	fmt.Fprintf(progress, "Inserting into dictionary (%s)...", opts.strategy.Description())
	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}
	dict := wordtree.New()
	var feedErr error
	elapsed := report.Timed(func() {
		feedErr = order.Feed(dict, words, opts.strategy, rng)
	})
	if feedErr != nil {
		return nil, feedErr
	}
	fmt.Fprintln(progress, " done!")
	tracer().Infof("inserted %d words in %v", dict.Size(), elapsed)
	if err := out.Insertion(elapsed); err != nil {
		return nil, err
	}
	if err := out.Statistics(dict); err != nil {
		return nil, err
	}
	if err := out.Median(dict); err != nil {
		return nil, err
	}
	if err := extras(opts, dict, out); err != nil {
		return nil, err
	}
	// read some words to check against our dictionary (and time it)
	words, err = readWords(opts.checkFile, opts.maxCheck, opts.split, progress)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(progress, "Looking up these words in the dictionary...")
	var hits int
	elapsed = report.Timed(func() {
		hits = report.CountHits(dict, words)
	})
	fmt.Fprintln(progress, " done!")
	if err := out.Lookup(elapsed, len(words), hits); err != nil {
		return nil, err
	}
	return dict, nil
}

func readWords(name string, max int, split textfile.Split, progress io.Writer) ([]string, error) {
	fmt.Fprintf(progress, "Reading words from %s...", name)
	words, err := textfile.ReadWords(name, max, split)
	if err != nil {
		fmt.Fprintln(progress)
		return nil, err
	}
	fmt.Fprintln(progress, " done!")
	return words, nil
}

// extras writes the optional DOT file and shape rendering.
func extras(opts *options, dict *wordtree.Tree, out *report.Reporter) error {
	if opts.dotFile != "" {
		f, err := os.Create(opts.dotFile)
		if err != nil {
			return err
		}
		err = wordtree.Tree2Dot(dict, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		tracer().Infof("tree written to %s", opts.dotFile)
	}
	if opts.shape {
		err := out.Shape(dict, report.DefaultShapeLimit)
		if errors.Is(err, report.ErrTooLarge) {
			tracer().Infof("not rendering shape: %v", err)
			return nil
		}
		return err
	}
	return nil
}

// interactive starts a REPL for looking up words in dict.
func interactive(dict *wordtree.Tree, out *report.Reporter) error {
	rl, err := readline.New("minispell> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Enter words to look up, :help for commands")
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	session := &session{dict: dict, out: out, w: os.Stdout}
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			break
		}
		if session.eval(line) {
			break
		}
	}
	fmt.Println("Good bye!")
	return nil
}
