package mahjong

import "sort"

// TileMultiset is an ordered multiset of tiles: a mapping from tile
// identity to a positive count, with bucket iteration in tile order.
// Grounded on the original source's MultiBTreeSet (collections.rs), which
// wraps a BTreeMap<Tile, usize> for the same reason: iteration order must
// be the tile's total order, not insertion order.
type TileMultiset struct {
	counts map[Tile]int
	order  []Tile // kept sorted; counts[t] > 0 for every t in order
}

// NewTileMultiset returns an empty multiset.
func NewTileMultiset() *TileMultiset {
	return &TileMultiset{counts: make(map[Tile]int)}
}

// NewTileMultisetFromSorted builds a multiset from an already
// tile-sorted slice in O(n) by grouping contiguous runs. Callers holding
// an unsorted source must sort first (NewTileMultisetFromUnsorted does
// that for them).
func NewTileMultisetFromSorted(tiles []Tile) *TileMultiset {
	m := NewTileMultiset()
	var i int
	for i < len(tiles) {
		j := i + 1
		for j < len(tiles) && tiles[j] == tiles[i] {
			j++
		}
		m.counts[tiles[i]] = j - i
		m.order = append(m.order, tiles[i])
		i = j
	}
	return m
}

// NewTileMultisetFromUnsorted sorts a copy of tiles, then builds the
// multiset from it.
func NewTileMultisetFromUnsorted(tiles []Tile) *TileMultiset {
	cp := append([]Tile(nil), tiles...)
	sort.Slice(cp, func(i, j int) bool { return Less(cp[i], cp[j]) })
	return NewTileMultisetFromSorted(cp)
}

// Insert increments t's count, creating the bucket if absent.
func (m *TileMultiset) Insert(t Tile) {
	if m.counts[t] == 0 {
		pos := sort.Search(len(m.order), func(i int) bool { return !Less(m.order[i], t) })
		m.order = append(m.order, Tile{})
		copy(m.order[pos+1:], m.order[pos:])
		m.order[pos] = t
	}
	m.counts[t]++
}

// Remove decrements t's count, deleting the bucket if it reaches zero.
// Reports whether t was present.
func (m *TileMultiset) Remove(t Tile) bool {
	n, ok := m.counts[t]
	if !ok {
		return false
	}
	if n == 1 {
		delete(m.counts, t)
		pos := sort.Search(len(m.order), func(i int) bool { return !Less(m.order[i], t) })
		m.order = append(m.order[:pos], m.order[pos+1:]...)
	} else {
		m.counts[t] = n - 1
	}
	return true
}

// Contains reports whether t has a positive count.
func (m *TileMultiset) Contains(t Tile) bool { return m.counts[t] > 0 }

// Count returns t's current count (0 if absent).
func (m *TileMultiset) Count(t Tile) int { return m.counts[t] }

// Len returns the sum of all live counts.
func (m *TileMultiset) Len() int {
	n := 0
	for _, c := range m.counts {
		n += c
	}
	return n
}

// Bucket is one (tile, count) pair yielded by Buckets, in tile order.
type Bucket struct {
	Tile  Tile
	Count int
}

// Buckets returns the (tile, count) pairs in strictly increasing tile
// order. The returned slice is a snapshot; mutating the multiset
// afterwards does not affect it.
func (m *TileMultiset) Buckets() []Bucket {
	out := make([]Bucket, len(m.order))
	for i, t := range m.order {
		out[i] = Bucket{Tile: t, Count: m.counts[t]}
	}
	return out
}

// Clone returns an independent deep copy.
func (m *TileMultiset) Clone() *TileMultiset {
	cp := &TileMultiset{
		counts: make(map[Tile]int, len(m.counts)),
		order:  append([]Tile(nil), m.order...),
	}
	for t, n := range m.counts {
		cp.counts[t] = n
	}
	return cp
}

// Tiles expands the multiset back into a flat, tile-ordered slice — the
// inverse of NewTileMultisetFromSorted/NewTileMultisetFromUnsorted.
func (m *TileMultiset) Tiles() []Tile {
	out := make([]Tile, 0, m.Len())
	for _, t := range m.order {
		n := m.counts[t]
		for i := 0; i < n; i++ {
			out = append(out, t)
		}
	}
	return out
}
