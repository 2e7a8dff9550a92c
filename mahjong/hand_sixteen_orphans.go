package mahjong

// SixteenOrphans recognises a closed hand holding one of each terminal or
// honour tile (sixteen distinct identities under the jp4s17t tile space),
// with two point values depending on whether the completing tile merely
// duplicates an already-held orphan (sixteen-way wait, higher value) or
// fills the hand's single pair (standard value). Grounded on
// jp4s17t/hands.rs's YakumanHand<SixteenOrphans>::test.
type SixteenOrphans struct {
	Orphans          []Tile // the sixteen terminal/honour identities for this variant's tile space
	StandardValue    uint8
	SixteenWaitValue uint8
}

// NewSixteenOrphans builds the pattern for a 4-suite variant whose
// terminals and honours are exactly: Number(s,1), Number(s,9), Wind(s),
// Symbol(s) for each suite s.
func NewSixteenOrphans(suites []Suite, standardValue, sixteenWaitValue uint8) SixteenOrphans {
	orphans := make([]Tile, 0, len(suites)*4)
	for _, s := range suites {
		orphans = append(orphans, NewNumber(s, 1), NewNumber(s, 9), NewWind(s), NewSymbol(s))
	}
	return SixteenOrphans{Orphans: orphans, StandardValue: standardValue, SixteenWaitValue: sixteenWaitValue}
}

func (p SixteenOrphans) orphanSet() map[Tile]bool {
	set := make(map[Tile]bool, len(p.Orphans))
	for _, t := range p.Orphans {
		set[t] = true
	}
	return set
}

func (p SixteenOrphans) test(hand *PlayerHand, newTile Tile) Verdict {
	if len(hand.ExposedMelds()) != 0 {
		return Nothing
	}
	orphans := p.orphanSet()

	byCount := histogramByCount(hand.ClosedTiles())
	if len(byCount) == 1 {
		if ones, ok := byCount[1]; ok {
			if setEquals(ones, orphans) && orphans[newTile] {
				return Winning(YakumanPoint(p.SixteenWaitValue))
			}
		}
		return Nothing
	}

	tiles := hand.ClosedTiles().Clone()
	tiles.Insert(newTile)
	byCount = histogramByCount(tiles)
	ones, hasOnes := byCount[1]
	twos, hasTwos := byCount[2]
	if !hasOnes || !hasTwos || len(ones) != 15 || len(twos) != 1 {
		return Nothing
	}

	tileForPair := twos[0]
	if !orphans[tileForPair] {
		return Nothing
	}
	onesSet := make(map[Tile]bool, len(ones))
	for _, t := range ones {
		onesSet[t] = true
	}
	// Every orphan except tileForPair must appear among the singles, and
	// no non-orphan tile may appear among them.
	for t := range orphans {
		if t == tileForPair {
			if onesSet[t] {
				return Nothing
			}
			continue
		}
		if !onesSet[t] {
			return Nothing
		}
	}
	for t := range onesSet {
		if !orphans[t] {
			return Nothing
		}
	}
	return Winning(YakumanPoint(p.StandardValue))
}

func setEquals(tiles []Tile, set map[Tile]bool) bool {
	if len(tiles) != len(set) {
		return false
	}
	for _, t := range tiles {
		if !set[t] {
			return false
		}
	}
	return true
}

func (p SixteenOrphans) TestOnSelfDraw(hand *PlayerHand, drawn Tile) Verdict {
	return p.test(hand, drawn)
}

func (p SixteenOrphans) TestOnForeignDiscard(hand *PlayerHand, discarded Tile) Verdict {
	return p.test(hand, discarded)
}
