package engine

import (
	"cmp"
	"sort"
)

// ============================================================================
// RANKING — Deterministic top-N / bottom-N selection
// ============================================================================
// Ordering: descending by metric, ties broken by ascending key. Bottom-N is
// the tail of the SAME descending ranking, not a re-sort ascending — when a
// grouping has 2×N entries or fewer, top and bottom overlap. That overlap is
// accepted, observable output and is never deduplicated.
// ============================================================================

// Ranked pairs a group key with its accumulator in ranking order.
type Ranked[K comparable, A any] struct {
	Key   K
	Value A
}

// RankAll returns every group ordered descending by metric,
// ties broken by ascending key.
func RankAll[K cmp.Ordered, A any](g *Grouped[K, A], metric func(A) float64) []Ranked[K, A] {
	return RankMap(g.Map(), metric)
}

// RankMap ranks a plain key → accumulator map with the same ordering rule.
func RankMap[K cmp.Ordered, A any](m map[K]A, metric func(A) float64) []Ranked[K, A] {
	ranked := make([]Ranked[K, A], 0, len(m))
	for k, acc := range m {
		ranked = append(ranked, Ranked[K, A]{Key: k, Value: acc})
	}
	sort.Slice(ranked, func(i, j int) bool {
		mi, mj := metric(ranked[i].Value), metric(ranked[j].Value)
		if mi != mj {
			return mi > mj
		}
		return ranked[i].Key < ranked[j].Key
	})
	return ranked
}

// Top returns the first n entries of a ranking (all of them if n exceeds len).
func Top[K comparable, A any](ranked []Ranked[K, A], n int) []Ranked[K, A] {
	if n <= 0 || len(ranked) == 0 {
		return nil
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// Bottom returns the last n entries of a ranking, still in descending order.
func Bottom[K comparable, A any](ranked []Ranked[K, A], n int) []Ranked[K, A] {
	if n <= 0 || len(ranked) == 0 {
		return nil
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[len(ranked)-n:]
}
