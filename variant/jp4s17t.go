package variant

import "mahjongcore/mahjong"

// jp4s17t's four suites, in the order spec.md §6 declares them.
var jp4s17tSuites = []mahjong.Suite{mahjong.Green, mahjong.Red, mahjong.White, mahjong.Black}

const (
	jp4s17tDealSize          = 16
	jp4s17tDeadWallSize      = 14
	jp4s17tSupplementalCount = 4
	jp4s17tIndicatorTiles    = 10 // 5 pairs
)

// NewJp4s17t builds the jp4s17t rule set's value bundle: a 176-tile
// universe (9 ranks x 4 suites x 4 copies of Number, plus 4 suites x 4
// copies each of Wind and Symbol, per spec.md §6's N = 9·4·4 + 4·4 + 4·4
// count), the three reference catalogue patterns at the point values
// jp4s17t/hands.rs assigns them, and Chow disabled (no sequence-based
// pattern is catalogued for this variant, per spec.md §9).
func NewJp4s17t() Variant {
	return Variant{
		Name:          "jp4s17t",
		DealSize:      jp4s17tDealSize,
		ChowEnabled:   false,
		Catalogue:     jp4s17tCatalogue(),
		TileUniverse:  jp4s17tTileUniverse,
		DistinctTiles: jp4s17tDistinctTiles,
	}
}

func jp4s17tCatalogue() []mahjong.WinningHand {
	return []mahjong.WinningHand{
		mahjong.EightPairsAndHalf{ClosedValue: 2, OpenValue: 1},
		mahjong.AllInTriplets{ClosedValue: 2, OpenValue: 2},
		mahjong.NewSixteenOrphans(jp4s17tSuites, 1, 2),
	}
}

// jp4s17tTileUniverse returns 176 tiles: every Number(suite, rank) for
// rank 1..9 four times over, plus every Wind(suite) and Symbol(suite)
// four times over, across the four suites.
func jp4s17tTileUniverse() []mahjong.Tile {
	var tiles []mahjong.Tile
	for _, s := range jp4s17tSuites {
		for rank := uint8(1); rank <= 9; rank++ {
			for copy := 0; copy < 4; copy++ {
				tiles = append(tiles, mahjong.NewNumber(s, rank))
			}
		}
		for copy := 0; copy < 4; copy++ {
			tiles = append(tiles, mahjong.NewWind(s))
		}
		for copy := 0; copy < 4; copy++ {
			tiles = append(tiles, mahjong.NewSymbol(s))
		}
	}
	return tiles
}

// jp4s17tDistinctTiles returns each of the 44 tile identities once: nine
// Number ranks, one Wind, one Symbol, times four suites.
func jp4s17tDistinctTiles() []mahjong.Tile {
	var tiles []mahjong.Tile
	for _, s := range jp4s17tSuites {
		for rank := uint8(1); rank <= 9; rank++ {
			tiles = append(tiles, mahjong.NewNumber(s, rank))
		}
		tiles = append(tiles, mahjong.NewWind(s), mahjong.NewSymbol(s))
	}
	return tiles
}

// Deal splits a full 176-tile shuffled sequence into the dead wall, the
// four seats' opening hands, and the live wall, per spec.md §6: "Dead
// wall = first 14 tiles. Each of the four seats then receives 16
// consecutive tiles. Remainder is the live wall... Of the dead wall, the
// first 4 tiles are supplemental-draw tiles... and the remaining 10
// provide up to 5 reward-indicator pairs." Grounded on the teacher's
// DeckManager.InitRound (material.go), which performs the same
// head-slice-then-deal split over one shuffled deck.
func Deal(shuffled []mahjong.Tile) ([4]*mahjong.PlayerHand, *mahjong.WallState) {
	if len(shuffled) != len(jp4s17tTileUniverse()) {
		panic("variant: jp4s17t.Deal requires a full 176-tile shuffled sequence")
	}

	deadWall := shuffled[:jp4s17tDeadWallSize]
	rest := shuffled[jp4s17tDeadWallSize:]

	var hands [4]*mahjong.PlayerHand
	for seat := 0; seat < 4; seat++ {
		start := seat * jp4s17tDealSize
		hands[seat] = mahjong.NewPlayerHand(jp4s17tDealSize, rest[start:start+jp4s17tDealSize])
	}

	live := rest[4*jp4s17tDealSize:]
	supplemental := deadWall[:jp4s17tSupplementalCount]
	indicators := deadWall[jp4s17tSupplementalCount : jp4s17tSupplementalCount+jp4s17tIndicatorTiles]

	wall := mahjong.NewWallState(live, supplemental, indicators)
	return hands, wall
}
