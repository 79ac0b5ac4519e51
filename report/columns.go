package report

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

var setupGraphemes sync.Once

// displayWidth returns the number of fixed-width positions ('en's) a word
// occupies on a console. East Asian wide characters count twice, combining
// marks not at all.
func displayWidth(word string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(word), context)
}

// LineWidth returns the usable width of the terminal on stdin, or 65 if stdin
// is not a terminal.
func LineWidth() int {
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 20 {
			return w - 5
		}
	}
	return 65
}

// Columns writes words in columns, filling rows from left to right. Columns
// are aligned by display width, so words from any script line up on a fixed
// width console. linewidth is measured in 'en's; if it is too small for two
// columns, one word per line is written.
func (r *Reporter) Columns(words []string, linewidth int) error {
	if len(words) == 0 {
		return nil
	}
	context := uax11.LatinContext
	widths := make([]int, len(words))
	colwidth := 0
	for i, w := range words {
		widths[i] = displayWidth(w, context)
		colwidth = max(colwidth, widths[i])
	}
	colwidth += 2
	ncols := max(1, linewidth/colwidth)
	var line strings.Builder
	for i, w := range words {
		line.WriteString(r.paint(r.words, "%s", w))
		if (i+1)%ncols == 0 || i == len(words)-1 {
			line.WriteByte('\n')
			if err := r.printf("%s", line.String()); err != nil {
				return err
			}
			line.Reset()
			continue
		}
		line.WriteString(strings.Repeat(" ", colwidth-widths[i]))
	}
	return nil
}
