package engine

// ============================================================================
// GROUP-REDUCE — Generic grouping and per-group folding
// ============================================================================
// The shared primitive behind every report type: partition a record slice by
// a key function and fold each partition into a typed accumulator.
// Group iteration order is first-seen-key order, so the same input always
// produces the same output ordering.
// ============================================================================

// Grouped holds per-key accumulators in first-seen key order.
type Grouped[K comparable, A any] struct {
	order  []K
	groups map[K]A
}

// GroupReduce partitions items by key and folds each group's accumulator.
// init produces a fresh accumulator for a newly seen key; fold merges one
// item into the group's accumulator and returns the updated value.
func GroupReduce[T any, K comparable, A any](
	items []T,
	key func(T) K,
	init func() A,
	fold func(A, T) A,
) *Grouped[K, A] {
	g := &Grouped[K, A]{groups: make(map[K]A)}
	for _, item := range items {
		k := key(item)
		acc, ok := g.groups[k]
		if !ok {
			g.order = append(g.order, k)
			acc = init()
		}
		g.groups[k] = fold(acc, item)
	}
	return g
}

// Len returns the number of groups.
func (g *Grouped[K, A]) Len() int { return len(g.order) }

// Keys returns group keys in first-seen order.
func (g *Grouped[K, A]) Keys() []K { return g.order }

// Get returns the accumulator for a key.
func (g *Grouped[K, A]) Get(k K) (A, bool) {
	acc, ok := g.groups[k]
	return acc, ok
}

// Map returns the underlying key → accumulator mapping.
// Callers must treat it as read-only.
func (g *Grouped[K, A]) Map() map[K]A { return g.groups }

// Each calls fn for every group in first-seen order.
func (g *Grouped[K, A]) Each(fn func(k K, acc A)) {
	for _, k := range g.order {
		fn(k, g.groups[k])
	}
}
