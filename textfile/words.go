package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/

// Split selects how a text is broken into words.
type Split int

// Word splitting modes
const (
	SplitSpace Split = iota // words are delimited by Unicode white space
	SplitUAX14              // words are delimited by UAX #14 line break opportunities
)

func (s Split) String() string {
	switch s {
	case SplitSpace:
		return "space"
	case SplitUAX14:
		return "uax14"
	}
	return fmt.Sprintf("Split(%d)", int(s))
}

// ParseSplit maps the name of a splitting mode ("space" or "uax14") to a Split.
func ParseSplit(name string) (Split, error) {
	switch strings.ToLower(name) {
	case "", "space", "whitespace":
		return SplitSpace, nil
	case "uax14", "linebreak":
		return SplitUAX14, nil
	}
	return SplitSpace, fmt.Errorf("%w: %q", ErrUnknownSplit, name)
}

// Errors of package textfile
var (
	ErrNotRegular   = errors.New("textfile: not a regular file")
	ErrUnknownSplit = errors.New("textfile: unknown word splitting mode")
)

// All may be passed as a word limit to read every word of a text.
const All = -1

// Some constants for the loading pipeline
const (
	batchSize   = 512     // words per published batch
	prefetch    = 16      // batches buffered ahead of the collector
	maxWordSize = 1 << 20 // longest word accepted by the scanner
)

// ReadWords reads a text file and returns its words in file order. At most
// max words are read; a negative max (see All) means no limit.
//
// Errors are wrapped together with the file name.
func ReadWords(name string, max int, split Split) ([]string, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, fmt.Errorf("error reading '%s': %w", name, err)
	}
	defer file.Close()
	words, err := ReadWordsFrom(file, max, split)
	if err != nil {
		return words, fmt.Errorf("error reading '%s': %w", name, err)
	}
	tracer().Debugf("read %d words from %s", len(words), name)
	return words, nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, ErrNotRegular
	}
	return os.Open(name) // just open for read access
}

// ReadWordsFrom reads words from r, at most max of them (max < 0 means no
// limit). For max == 0, r is not read at all.
//
// A loader goroutine scans r and broadcasts batches of words; ReadWordsFrom
// subscribes before the loader starts and collects batches until the loader
// signals completion.
func ReadWordsFrom(r io.Reader, max int, split Split) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("textfile: nil reader")
	}
	if split != SplitSpace && split != SplitUAX14 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSplit, split)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cast := caster.New(ctx) // we will broadcast batches of words when loaded
	defer cast.Close()
	sub, ok := cast.Sub(ctx, prefetch)
	if !ok {
		return nil, fmt.Errorf("textfile: cannot subscribe to word loader")
	}
	go load(r, max, split, cast)
	var words []string
	for msg := range sub {
		switch m := msg.(type) {
		case wordBatch:
			words = append(words, m...)
		case loadDone:
			return words, m.err
		}
	}
	return words, fmt.Errorf("textfile: word loader terminated unexpectedly")
}

// wordBatch is a message from the loader carrying the next words in order.
type wordBatch []string

// loadDone is the final message of the loader.
type loadDone struct {
	err error
}

// --- Loading goroutine -----------------------------------------------------

func load(r io.Reader, max int, split Split, cast *caster.Caster) {
	if max == 0 {
		cast.Pub(loadDone{})
		return
	}
	batch := make(wordBatch, 0, batchSize)
	count := 0
	emit := func(word string) bool {
		batch = append(batch, word)
		count++
		if len(batch) == batchSize {
			cast.Pub(batch)
			batch = make(wordBatch, 0, batchSize)
		}
		return max < 0 || count < max
	}
	var err error
	switch split {
	case SplitSpace:
		err = scanSpace(r, emit)
	case SplitUAX14:
		err = scanUAX14(r, emit)
	}
	if len(batch) > 0 {
		cast.Pub(batch)
	}
	cast.Pub(loadDone{err: err})
}

// scanSpace breaks r into words delimited by Unicode white space.
// emit returns false if no more words are wanted.
func scanSpace(r io.Reader, emit func(string) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxWordSize)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if !emit(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// scanUAX14 breaks r at line break opportunities and trims surrounding white
// space from each segment. Segments consisting of white space only are
// dropped.
func scanUAX14(r io.Reader, emit func(string) bool) error {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	for segmenter.Next() {
		for _, word := range strings.Fields(string(segmenter.Bytes())) {
			if !emit(word) {
				return nil
			}
		}
	}
	return segmenter.Err()
}
