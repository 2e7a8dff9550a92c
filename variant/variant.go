// Package variant models a concrete rule set as a value bundle: tile
// universe, pattern catalogue, deal size, and settlement-relevant
// parameters — never as a parametric family over the core (spec.md §9:
// "model a variant as a value bundle... Keeps the core concrete and
// monomorphic; variants are constructed at the edge").
package variant

import (
	"math/rand"

	"mahjongcore/mahjong"
)

// Variant bundles everything a concrete rule set supplies to the
// variant-agnostic core.
type Variant struct {
	Name string

	// DealSize is the rest-state concealed+exposed tile count (16 for
	// jp4s17t).
	DealSize int

	// ChowEnabled is passed through to HandModerator. jp4s17t sets this
	// false: its catalogue has no sequence-based pattern (spec.md §9).
	// PlayerBroker.MenuOnForeignDiscard never offers Chow, whatever the
	// value of this flag.
	ChowEnabled bool

	// Catalogue is the ordered list of winning-hand patterns tested on
	// every draw and discard.
	Catalogue []mahjong.WinningHand

	// TileUniverse returns one full, unshuffled copy of every tile
	// identity this variant deals with, including duplicate copies —
	// the population Shuffle permutes.
	TileUniverse func() []mahjong.Tile

	// DistinctTiles returns each tile identity exactly once — used only
	// to probe readiness (PlayerBroker.IsReady) at an exhaustive draw.
	DistinctTiles func() []mahjong.Tile
}

// Shuffle returns a uniformly random permutation of tiles using r.
// Reproducible: identical seeds (identical r sequences) yield identical
// permutations, per spec.md §5. Grounded on the teacher's
// DeckManager.InitRound, which shuffles with rand.Rand.Shuffle.
func Shuffle(r *rand.Rand, tiles []mahjong.Tile) []mahjong.Tile {
	out := append([]mahjong.Tile(nil), tiles...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
