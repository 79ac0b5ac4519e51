package order

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wordtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is an Inserter remembering the sequence of insertions.
type recorder struct {
	keys []string
}

func (r *recorder) Insert(key string) bool {
	r.keys = append(r.keys, key)
	return true
}

func TestInsertAsRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordtree")
	defer teardown()
	//
	words := []string{"a", "b", "c", "d", "e"}
	tree := wordtree.New()
	InsertAsRead(tree, words)
	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, 5, tree.Height(), "sorted input must degenerate the tree")
}

func TestInsertBalancedSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordtree")
	defer teardown()
	//
	rec := &recorder{}
	InsertBalanced(rec, []string{"e", "b", "a", "d", "c", "f", "g"})
	want := []string{"d", "b", "a", "c", "f", "e", "g"}
	if diff := cmp.Diff(want, rec.keys); diff != "" {
		t.Errorf("balanced sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertBalancedHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordtree")
	defer teardown()
	//
	tree := wordtree.New()
	InsertBalanced(tree, []string{"a", "b", "c", "d", "e"})
	assert.Equal(t, 3, tree.Height())
	for _, n := range []int{0, 1, 2, 3, 7, 8, 100, 1023, 1024, 5000} {
		words := make([]string, n)
		for i := range words {
			words[i] = string(rune('a'+i%26)) + string(rune('A'+i/26%26)) + string(rune('0'+i/676))
		}
		tree := wordtree.New()
		InsertBalanced(tree, words)
		require.Equal(t, n, tree.Size())
		assert.Equal(t, wordtree.MinHeight(n), tree.Height(), "n=%d", n)
		require.NoError(t, tree.Check())
	}
}

func TestInsertBalancedWithDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordtree")
	defer teardown()
	//
	words := []string{"c", "a", "c", "b", "a", "d", "c"}
	tree := wordtree.New()
	InsertBalanced(tree, words)
	assert.Equal(t, 4, tree.Size())
	assert.Equal(t, wordtree.MinHeight(4), tree.Height())
	assert.Equal(t, []string{"c", "a", "c", "b", "a", "d", "c"}, words, "input must not be modified")
}

func TestInsertShuffledDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordtree")
	defer teardown()
	//
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	r1, r2 := &recorder{}, &recorder{}
	InsertShuffled(r1, words, rand.New(rand.NewPCG(42, 42)))
	InsertShuffled(r2, words, rand.New(rand.NewPCG(42, 42)))
	assert.Equal(t, r1.keys, r2.keys, "same seed must give same order")
	got := slices.Clone(r1.keys)
	slices.Sort(got)
	assert.Equal(t, words, got, "shuffle must be a permutation")
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, words)
	r3 := &recorder{}
	InsertShuffled(r3, words, nil)
	assert.Len(t, r3.keys, len(words))
}

func TestFeedSameContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordtree")
	defer teardown()
	//
	words := []string{"kiwi", "apple", "fig", "banana", "cherry", "date", "elder", "grape"}
	var keys [][]string
	for _, s := range []Strategy{AsRead, Shuffled, Balanced} {
		tree := wordtree.New()
		require.NoError(t, Feed(tree, words, s, rand.New(rand.NewPCG(1, 1))))
		keys = append(keys, tree.Keys())
	}
	assert.Equal(t, keys[0], keys[1])
	assert.Equal(t, keys[0], keys[2])
	err := Feed(wordtree.New(), words, Strategy(9), nil)
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
	assert.Error(t, Feed(nil, words, AsRead, nil))
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"file":     AsRead,
		"as-read":  AsRead,
		"Shuffled": Shuffled,
		"balanced": Balanced,
		" random ": Shuffled,
	}
	for name, want := range cases {
		got, err := ParseStrategy(name)
		if err != nil {
			t.Errorf("ParseStrategy(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseStrategy(%q) = %s, want %s", name, got, want)
		}
	}
	if _, err := ParseStrategy("sideways"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
	if Balanced.String() != "balanced" || Strategy(7).String() != "Strategy(7)" {
		t.Errorf("unexpected strategy names")
	}
}
