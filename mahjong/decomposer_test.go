package mahjong

import (
	"testing"
	"time"

	"mahjongcore/cache"
)

func partitionsEqual(a, b []ClosedPart) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsPartition(all [][]ClosedPart, want []ClosedPart) bool {
	for _, p := range all {
		if partitionsEqual(p, want) {
			return true
		}
	}
	return false
}

func TestDecomposer_EmptyDecomposition(t *testing.T) {
	d := NewDecomposer(nil)
	closed := NewTileMultiset()
	got := d.Decompose(closed, NewSymbol(Green))
	if len(got) != 0 {
		t.Fatalf("got %d partitions, want 0: %v", len(got), got)
	}
}

func TestDecomposer_SinglePair(t *testing.T) {
	d := NewDecomposer(nil)
	closed := NewTileMultisetFromUnsorted([]Tile{NewSymbol(Green)})
	got := d.Decompose(closed, NewSymbol(Green))
	if len(got) != 1 {
		t.Fatalf("got %d partitions, want 1: %v", len(got), got)
	}
	want := []ClosedPart{{Kind: PartPair, Tile: NewSymbol(Green)}}
	if !partitionsEqual(got[0], want) {
		t.Fatalf("got %v, want %v", got[0], want)
	}
}

func TestDecomposer_PairPlusTriplet(t *testing.T) {
	d := NewDecomposer(nil)
	closed := NewTileMultisetFromUnsorted([]Tile{
		NewNumber(Green, 2), NewNumber(Green, 2),
		NewNumber(Green, 3), NewNumber(Green, 3),
	})
	got := d.Decompose(closed, NewNumber(Green, 2))
	if len(got) != 1 {
		t.Fatalf("got %d partitions, want 1: %v", len(got), got)
	}
	// Combined tiles are three copies of N(Green,2) and two of N(Green,3):
	// the only way to split 5 tiles into one pair and one triplet is pair
	// from the 2-count bucket, triplet from the 3-count bucket.
	want := []ClosedPart{
		{Kind: PartPair, Tile: NewNumber(Green, 3)},
		{Kind: PartTriplet, Tile: NewNumber(Green, 2)},
	}
	if !partitionsEqual(got[0], want) {
		t.Fatalf("got %v, want %v", got[0], want)
	}
}

func TestDecomposer_CacheHit(t *testing.T) {
	memo, err := cache.New(1<<20, time.Minute)
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	defer memo.Close()

	d := NewDecomposer(memo)
	closed := NewTileMultisetFromUnsorted([]Tile{
		NewNumber(Green, 2), NewNumber(Green, 2),
		NewNumber(Green, 3), NewNumber(Green, 3),
	})
	newTile := NewNumber(Green, 2)

	first := d.Decompose(closed, newTile)
	memo.Wait()

	key := bucketSignature(func() *TileMultiset {
		w := closed.Clone()
		w.Insert(newTile)
		return w
	}())
	cached, ok := memo.Get(key)
	if !ok {
		t.Fatalf("expected a cache entry after first Decompose call")
	}
	cachedPartitions, ok := cached.([][]ClosedPart)
	if !ok {
		t.Fatalf("cache entry has unexpected type %T", cached)
	}
	if len(cachedPartitions) != len(first) {
		t.Fatalf("cached entry has %d partitions, want %d", len(cachedPartitions), len(first))
	}

	second := d.Decompose(closed, newTile)
	if len(second) != len(first) {
		t.Fatalf("second call returned %d partitions, want %d", len(second), len(first))
	}
	for i := range first {
		if !partitionsEqual(first[i], second[i]) {
			t.Fatalf("partition %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestDecomposer_AllRunsPartitionExists(t *testing.T) {
	d := NewDecomposer(nil)
	closed := NewTileMultisetFromUnsorted([]Tile{
		NewNumber(Green, 1),
		NewNumber(Green, 2), NewNumber(Green, 3), NewNumber(Green, 4),
	})
	got := d.Decompose(closed, NewNumber(Green, 1))
	want := []ClosedPart{
		{Kind: PartPair, Tile: NewNumber(Green, 1)},
		{Kind: PartRun, Run: [3]Tile{NewNumber(Green, 2), NewNumber(Green, 3), NewNumber(Green, 4)}},
	}
	if !containsPartition(got, want) {
		t.Fatalf("expected a pair+run partition among %v", got)
	}
}
