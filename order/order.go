package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Inserter is the destination of a producer. *wordtree.Tree implements it.
type Inserter interface {
	Insert(key string) bool
}

// Strategy selects the order in which words are fed into an Inserter.
type Strategy int

// Insertion strategies
const (
	AsRead Strategy = iota
	Shuffled
	Balanced
)

// ErrUnknownStrategy is returned by ParseStrategy for names it does not know.
var ErrUnknownStrategy = errors.New("order: unknown insertion strategy")

func (s Strategy) String() string {
	switch s {
	case AsRead:
		return "as-read"
	case Shuffled:
		return "shuffled"
	case Balanced:
		return "balanced"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Description is a human readable phrase for s, as used in progress messages.
func (s Strategy) Description() string {
	switch s {
	case AsRead:
		return "in order read"
	case Shuffled:
		return "in shuffled order"
	case Balanced:
		return "in perfect-balance order"
	}
	return s.String()
}

// ParseStrategy maps a strategy name to a Strategy. Names are case
// insensitive; "file" and "file-order" are accepted as aliases for AsRead.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "as-read", "asread", "file", "file-order":
		return AsRead, nil
	case "shuffled", "shuffled-order", "random":
		return Shuffled, nil
	case "balanced", "balanced-order":
		return Balanced, nil
	}
	return AsRead, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Feed inserts every word of words into dst, in the order prescribed by s.
// rng is used by the Shuffled strategy only; if it is nil, a randomly seeded
// source is used. words is never modified.
func Feed(dst Inserter, words []string, s Strategy, rng *rand.Rand) error {
	if dst == nil {
		return fmt.Errorf("order: nil destination")
	}
	tracer().Debugf("feeding %d words %s", len(words), s.Description())
	switch s {
	case AsRead:
		InsertAsRead(dst, words)
	case Shuffled:
		InsertShuffled(dst, words, rng)
	case Balanced:
		InsertBalanced(dst, words)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
	return nil
}

// InsertAsRead inserts words into dst in exactly the order given.
func InsertAsRead(dst Inserter, words []string) {
	for _, w := range words {
		dst.Insert(w)
	}
}

// InsertShuffled inserts a random permutation of words into dst.
// If rng is nil, a randomly seeded generator is used.
func InsertShuffled(dst Inserter, words []string, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	shuffled := slices.Clone(words)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	InsertAsRead(dst, shuffled)
}

// InsertBalanced sorts a copy of words and inserts the middle word of every
// range before the words of its two halves. For n distinct words this
// produces a tree of height ⌈log2(n+1)⌉.
//
// Pending ranges are kept on an explicit stack, left half on top, so the
// insertion sequence equals the one of the naive recursive formulation.
func InsertBalanced(dst Inserter, words []string) {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	type span struct{ lo, hi int } // [lo,hi)
	stack := []span{{0, len(sorted)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.lo >= s.hi {
			continue
		}
		mid := s.lo + (s.hi-s.lo)/2
		dst.Insert(sorted[mid])
		stack = append(stack, span{mid + 1, s.hi}, span{s.lo, mid})
	}
}
