package wordtree

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/openacid/testkeys"
)

var cache = map[string][]string{}

func getKeys(fn string) []string {
	ss, ok := cache[fn]
	if ok {
		return ss
	}
	ks := testkeys.Load(fn)
	cache[fn] = ks
	return ks
}

// benchBigKeySet runs f for every key corpus of reasonable size. The corpora
// are sorted, i.e. inserting them as read builds a list-shaped tree; this is
// limited to smaller sets.
func benchBigKeySet(b *testing.B, maxKeys int, f func(b *testing.B, keys []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)
		if n := len(keys); n < 1000 || n > maxKeys {
			continue
		}
		b.Run(fn, func(b *testing.B) {
			f(b, keys)
		})
	}
}

func BenchmarkInsertSorted(b *testing.B) {
	benchBigKeySet(b, 20000, func(b *testing.B, keys []string) {
		sorted := slices.Clone(keys)
		slices.Sort(sorted)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tree := New()
			for _, k := range sorted {
				tree.Insert(k)
			}
		}
	})
}

func BenchmarkInsertShuffled(b *testing.B) {
	benchBigKeySet(b, 1<<20, func(b *testing.B, keys []string) {
		shuffled := slices.Clone(keys)
		rng := rand.New(rand.NewPCG(3, 5))
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tree := New()
			for _, k := range shuffled {
				tree.Insert(k)
			}
		}
	})
}

func BenchmarkExistsShuffled(b *testing.B) {
	benchBigKeySet(b, 1<<20, func(b *testing.B, keys []string) {
		shuffled := slices.Clone(keys)
		rng := rand.New(rand.NewPCG(3, 5))
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		tree := New()
		for _, k := range shuffled {
			tree.Insert(k)
		}
		b.Logf("%s", tree.Statistics())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tree.Exists(keys[i%len(keys)])
		}
	})
}
