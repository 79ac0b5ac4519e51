package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/wordtree"
	"github.com/npillmayer/wordtree/report"
)

// session is the state of an interactive lookup session.
type session struct {
	dict *wordtree.Tree
	out  *report.Reporter
	w    io.Writer
}

const replHelp = `Enter one or more words to look them up. Commands:
  :stats      show the shape of the dictionary tree
  :median     show the median word
  :list [N]   list the first N words in order (default 20)
  :help       show this message
  :quit       leave
`

// eval evaluates one line of input. It returns true if the session should
// end.
func (s *session) eval(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ":") {
		return s.command(strings.Fields(line[1:]))
	}
	for _, word := range strings.Fields(line) {
		if s.dict.Exists(word) {
			fmt.Fprintf(s.w, "%s: in dictionary\n", word)
		} else {
			fmt.Fprintf(s.w, "%s: NOT in dictionary\n", word)
		}
	}
	return false
}

func (s *session) command(args []string) (quit bool) {
	if len(args) == 0 {
		fmt.Fprint(s.w, replHelp)
		return false
	}
	var err error
	switch args[0] {
	case "q", "quit", "exit":
		return true
	case "stats":
		err = s.out.Statistics(s.dict)
	case "median":
		err = s.out.Median(s.dict)
	case "list":
		n := 20
		if len(args) > 1 {
			if n, err = strconv.Atoi(args[1]); err != nil || n < 0 {
				fmt.Fprintf(s.w, "list expects a number, got %q\n", args[1])
				return false
			}
		}
		words := make([]string, 0, min(n, s.dict.Size()))
		for c := s.dict.Begin(); c.Valid() && len(words) < n; c.Next() {
			words = append(words, c.Key())
		}
		err = s.out.Columns(words, report.LineWidth())
	case "help":
		fmt.Fprint(s.w, replHelp)
	default:
		fmt.Fprintf(s.w, "unknown command :%s\n", args[0])
	}
	if err != nil {
		tracer().Errorf("%v", err)
	}
	return false
}
