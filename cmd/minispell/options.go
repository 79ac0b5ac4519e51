package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/wordtree/order"
	"github.com/npillmayer/wordtree/textfile"
)

// Default files, may be overridden by environment variables.
const (
	DictFile  = "/home/student/data/smalldict.words"
	CheckFile = "/home/student/data/ispell.words"
)

// usageError is an error in the command line. It results in exit code 1.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

// options holds the configuration of a run.
type options struct {
	strategy    order.Strategy
	dictFile    string
	checkFile   string
	maxDict     int // textfile.All unless given on the command line
	maxCheck    int
	seed        uint64 // shuffle seed, 0 means random
	split       textfile.Split
	dotFile     string
	shape       bool
	interactive bool
	nocolor     bool
	trace       string
}

func defaultOptions() *options {
	opts := &options{
		strategy:  order.AsRead,
		dictFile:  DictFile,
		checkFile: CheckFile,
		maxDict:   textfile.All,
		maxCheck:  textfile.All,
		split:     textfile.SplitSpace,
		trace:     "Error",
	}
	if f := os.Getenv("WORDTREE_DICT"); f != "" {
		opts.dictFile = f
	}
	if f := os.Getenv("WORDTREE_CHECK"); f != "" {
		opts.checkFile = f
	}
	return opts
}

// parseArgs reads the command line. Every option is registered under its short
// and its long name; Go's flag package accepts both '-' and '--' prefixes.
// If the user asks for help, flag.ErrHelp is returned.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := defaultOptions()
	fs := flag.NewFlagSet("minispell", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs, stderr) }
	strategy := func(s order.Strategy) func(string) error {
		return func(string) error {
			opts.strategy = s
			return nil
		}
	}
	count := func(name string, dst *int) func(string) error {
		return func(v string) error {
			n, err := strconv.ParseUint(v, 10, 63)
			if err != nil {
				return fmt.Errorf("-%s expects a number", name)
			}
			*dst = int(n)
			return nil
		}
	}
	for _, name := range []string{"f", "file-order"} {
		fs.BoolFunc(name, "Insert words in the order they appear (default).", strategy(order.AsRead))
	}
	for _, name := range []string{"s", "shuffled-order"} {
		fs.BoolFunc(name, "Insert words in a random order.", strategy(order.Shuffled))
	}
	for _, name := range []string{"b", "balanced-order"} {
		fs.BoolFunc(name, "Insert words in a balanced order.", strategy(order.Balanced))
	}
	for _, name := range []string{"n", "num-dict-words"} {
		fs.Func(name, "Number of words to read from the dictionary.", count("n", &opts.maxDict))
	}
	for _, name := range []string{"m", "num-check-words"} {
		fs.Func(name, "Number of words to check for spelling.", count("m", &opts.maxCheck))
	}
	for _, name := range []string{"d", "dict-file"} {
		fs.StringVar(&opts.dictFile, name, opts.dictFile, "Use a different dictionary file.")
	}
	fs.Uint64Var(&opts.seed, "seed", 0, "Seed for shuffled order (0 = random).")
	fs.Func("split", "Word splitting [space|uax14].", func(v string) error {
		split, err := textfile.ParseSplit(v)
		opts.split = split
		return err
	})
	fs.StringVar(&opts.dotFile, "dot", "", "Write the tree in Graphviz DOT format to this file.")
	fs.BoolVar(&opts.shape, "shape", false, "Render the shape of small trees.")
	fs.BoolVar(&opts.interactive, "i", false, "Look up words interactively after the run.")
	fs.BoolVar(&opts.nocolor, "nocolor", false, "Do not color the output.")
	fs.StringVar(&opts.trace, "trace", opts.trace, "Trace level [Debug|Info|Error].")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, usageError{msg: err.Error()}
	}
	rest := fs.Args()
	if len(rest) > 0 {
		opts.checkFile = rest[0]
		if len(rest) > 1 {
			return nil, usageError{msg: fmt.Sprintf("extra argument(s), %s", rest[1])}
		}
	}
	return opts, nil
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options] [file-to-check ...]\n", fs.Name())
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nDefault dictionary file: %s\n", DictFile)
	fmt.Fprintf(w, "Default file to check:   %s\n", CheckFile)
}
