package mahjong

import (
	"strconv"
	"strings"

	"mahjongcore/cache"
)

// PartKind distinguishes the three group shapes a HandDecomposer partition
// can contain.
type PartKind uint8

const (
	PartPair PartKind = iota
	PartTriplet
	PartRun
)

// ClosedPart is one group within an enumerated partition: a Pair or
// Triplet identified by their shared tile, or a Run identified by its
// three ascending tiles.
type ClosedPart struct {
	Kind PartKind
	Tile Tile    // meaningful for PartPair, PartTriplet
	Run  [3]Tile // meaningful for PartRun
}

func (p ClosedPart) String() string {
	switch p.Kind {
	case PartPair:
		return "Pair(" + p.Tile.String() + ")"
	case PartTriplet:
		return "Triplet(" + p.Tile.String() + ")"
	case PartRun:
		return "Run(" + p.Run[0].String() + "," + p.Run[1].String() + "," + p.Run[2].String() + ")"
	default:
		return "?"
	}
}

// Decomposer enumerates every way a closed tile set plus one new tile can
// be partitioned into exactly one pair and some number of triplets/runs.
// Grounded on the teacher's Searcher (searcher.go): canFormMelds and
// dfsNormalShanten walk the same bucket-recursion shape, but report a
// shanten count rather than the partitions themselves. This type performs
// the analogous recursion and accumulates the full partition instead,
// fronted by a ristretto-backed memo in place of the teacher's hand-rolled
// mutex-guarded map cache, since the recursion is a pure function of the
// bucket signature.
type Decomposer struct {
	memo *cache.Memo
}

// NewDecomposer builds a Decomposer. memo may be nil, in which case every
// call re-runs the recursive search uncached.
func NewDecomposer(memo *cache.Memo) *Decomposer {
	return &Decomposer{memo: memo}
}

// Decompose enumerates every partition of closed ∪ {newTile} into one
// pair and any number of triplets/runs. Returns an empty (nil) slice if
// no partition exists, per spec: an input with no bucket of count ≥ 2
// cannot form a pair at all.
func (d *Decomposer) Decompose(closed *TileMultiset, newTile Tile) [][]ClosedPart {
	working := closed.Clone()
	working.Insert(newTile)

	key := bucketSignature(working)
	if d.memo != nil {
		if v, ok := d.memo.Get(key); ok {
			if cached, ok2 := v.([][]ClosedPart); ok2 {
				return cached
			}
		}
	}

	var results [][]ClosedPart
	for _, b := range working.Buckets() {
		if b.Count < 2 {
			continue
		}
		remainder := working.Clone()
		remainder.Remove(b.Tile)
		remainder.Remove(b.Tile)
		pair := ClosedPart{Kind: PartPair, Tile: b.Tile}
		decomposeRemainder(remainder, []ClosedPart{pair}, &results)
	}

	if d.memo != nil {
		d.memo.Set(key, results)
	}
	return results
}

// decomposeRemainder implements step 2-3 of the algorithm: repeatedly
// take the smallest-keyed bucket with count > 0 and branch into its legal
// continuations, emitting the accumulated partition once the remainder is
// empty.
func decomposeRemainder(remaining *TileMultiset, acc []ClosedPart, results *[][]ClosedPart) {
	buckets := remaining.Buckets()
	if len(buckets) == 0 {
		*results = append(*results, acc)
		return
	}

	smallest := buckets[0]

	if smallest.Tile.IsNumber() {
		t2, hasT2 := smallest.Tile.NextNumber()
		if hasT2 {
			if t3, hasT3 := t2.NextNumber(); hasT3 {
				if remaining.Count(smallest.Tile) >= 1 && remaining.Count(t2) >= 1 && remaining.Count(t3) >= 1 {
					next := remaining.Clone()
					next.Remove(smallest.Tile)
					next.Remove(t2)
					next.Remove(t3)
					part := ClosedPart{Kind: PartRun, Run: [3]Tile{smallest.Tile, t2, t3}}
					decomposeRemainder(next, appendPart(acc, part), results)
				}
			}
		}
		if smallest.Count == 3 {
			next := remaining.Clone()
			next.Remove(smallest.Tile)
			next.Remove(smallest.Tile)
			next.Remove(smallest.Tile)
			part := ClosedPart{Kind: PartTriplet, Tile: smallest.Tile}
			decomposeRemainder(next, appendPart(acc, part), results)
		}
		return
	}

	// Wind or Symbol: the only legal continuation is a triplet.
	if smallest.Count == 3 {
		next := remaining.Clone()
		next.Remove(smallest.Tile)
		next.Remove(smallest.Tile)
		next.Remove(smallest.Tile)
		part := ClosedPart{Kind: PartTriplet, Tile: smallest.Tile}
		decomposeRemainder(next, appendPart(acc, part), results)
	}
}

// appendPart returns a fresh slice, since sibling recursive branches share
// acc and a plain append could alias and overwrite each other's tail.
func appendPart(acc []ClosedPart, p ClosedPart) []ClosedPart {
	next := make([]ClosedPart, len(acc)+1)
	copy(next, acc)
	next[len(acc)] = p
	return next
}

// bucketSignature renders a TileMultiset's bucket view as a cache key.
// Tile's fields are small integers, so a compact textual encoding is
// enough to disambiguate any two distinct bucket views.
func bucketSignature(m *TileMultiset) string {
	var sb strings.Builder
	for _, b := range m.Buckets() {
		sb.WriteByte(byte(b.Tile.Kind))
		sb.WriteByte(':')
		sb.WriteByte(byte(b.Tile.Suite))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(int(b.Tile.Rank)))
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(b.Count))
		sb.WriteByte(';')
	}
	return sb.String()
}
