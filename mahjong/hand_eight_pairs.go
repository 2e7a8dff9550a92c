package mahjong

// EightPairsAndHalf recognises a hand that partitions into exactly seven
// pairs and one triplet. Grounded on jp4s17t/hands.rs's
// FanHand<EightPairsAndHalf>::test: a pure bucket-count histogram check,
// no call into the combinatorial decomposer.
type EightPairsAndHalf struct {
	ClosedValue uint8 // Fan value when the hand is closed
	OpenValue   uint8 // Fan value otherwise
}

func (p EightPairsAndHalf) test(hand *PlayerHand, newTile Tile) Verdict {
	tiles := hand.ClosedTiles().Clone()
	tiles.Insert(newTile)
	byCount := histogramByCount(tiles)

	if len(byCount[2]) == 7 && len(byCount[3]) == 1 {
		value := p.OpenValue
		if hand.IsClosed() {
			value = p.ClosedValue
		}
		return Winning(FanPoint(value))
	}
	return Nothing
}

func (p EightPairsAndHalf) TestOnSelfDraw(hand *PlayerHand, drawn Tile) Verdict {
	return p.test(hand, drawn)
}

func (p EightPairsAndHalf) TestOnForeignDiscard(hand *PlayerHand, discarded Tile) Verdict {
	return p.test(hand, discarded)
}
