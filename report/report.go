package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/wordtree"
	"golang.org/x/term"
)

// ErrNoOutput is returned when a Reporter has no writer to report to.
var ErrNoOutput = errors.New("report: no output writer")

// Reporter writes the lines of a run report to an output writer.
type Reporter struct {
	w       io.Writer
	colored bool
	values  *color.Color // numbers and durations
	words   *color.Color // words from the dictionary
	alarm   *color.Color // degenerate shapes
}

// New creates a reporter writing to w. If colored is false, no escape
// sequences are written.
func New(w io.Writer, colored bool) *Reporter {
	return &Reporter{
		w:       w,
		colored: colored,
		values:  color.New(color.FgBlue, color.Bold),
		words:   color.New(color.FgGreen),
		alarm:   color.New(color.FgRed, color.Bold),
	}
}

// ForFile creates a reporter for an OS file, typically os.Stdout. Output is
// colored if and only if f is a terminal.
func ForFile(f *os.File) *Reporter {
	colored := f != nil && term.IsTerminal(int(f.Fd()))
	tracer().Debugf("report output is a terminal: %v", colored)
	return New(f, colored)
}

// Colored reports whether r writes color escape sequences.
func (r *Reporter) Colored() bool {
	return r.colored
}

func (r *Reporter) paint(c *color.Color, format string, args ...interface{}) string {
	if r == nil || !r.colored {
		return fmt.Sprintf(format, args...)
	}
	return c.Sprintf(format, args...)
}

func (r *Reporter) printf(format string, args ...interface{}) error {
	if r == nil || r.w == nil {
		return ErrNoOutput
	}
	_, err := fmt.Fprintf(r.w, format, args...)
	return err
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.6g", d.Seconds())
}

// Insertion reports the time it took to fill the dictionary.
func (r *Reporter) Insertion(elapsed time.Duration) error {
	return r.printf(" - insertion took %s seconds\n", r.paint(r.values, "%s", seconds(elapsed)))
}

// Statistics reports the shape of tree. Trees far from balance are
// highlighted.
func (r *Reporter) Statistics(tree *wordtree.Tree) error {
	var line strings.Builder
	if err := tree.ShowStatistics(&line); err != nil {
		return err
	}
	c := r.values
	if tree.Statistics().Balance() < 0.25 {
		c = r.alarm
	}
	return r.printf(" - %s\n", r.paint(c, "%s", strings.TrimSuffix(line.String(), "\n")))
}

// Median reports the median word of tree. For an empty tree, nothing is
// reported.
func (r *Reporter) Median(tree *wordtree.Tree) error {
	median, ok := tree.Median()
	if !ok {
		return r.printf(" - dictionary is empty\n\n")
	}
	return r.printf(" - median word in dictionary: '%s'\n\n", r.paint(r.words, "%s", median))
}

// Lookup reports the time spent on looking up words and the number of hits.
func (r *Reporter) Lookup(elapsed time.Duration, read, hits int) error {
	if err := r.printf(" - looking up took %s seconds\n", r.paint(r.values, "%s", seconds(elapsed))); err != nil {
		return err
	}
	return r.printf(" - %s words read, %s in dictionary\n\n",
		r.paint(r.values, "%d", read), r.paint(r.values, "%d", hits))
}

// Lookuper is implemented by *wordtree.Tree.
type Lookuper interface {
	Exists(key string) bool
}

// CountHits looks up every word of words in dict and returns the number of
// words found. Duplicates in words are counted each time.
func CountHits(dict Lookuper, words []string) int {
	hits := 0
	for _, w := range words {
		if dict.Exists(w) {
			hits++
		}
	}
	return hits
}

// Timed calls f and returns its run time.
func Timed(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}
