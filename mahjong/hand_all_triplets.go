package mahjong

// AllInTriplets recognises a hand whose every exposed meld is a Pong or
// Kong and whose closed tiles partition into one pair and the rest
// triplets. Grounded on jp4s17t/hands.rs's FanHand<AllInTriplets>::test,
// including its "naked pair" special case: when every closed bucket
// (with the new tile added) has count 2, the hand wins, whether it holds
// one such pair or several (the one-pair case covers a hand like
// scenario 5: one tile left in hand backed by several exposed Pongs).
type AllInTriplets struct {
	ClosedValue uint8
	OpenValue   uint8
}

func (p AllInTriplets) test(hand *PlayerHand, newTile Tile) Verdict {
	for _, m := range hand.ExposedMelds() {
		if m.Kind != MeldPong && m.Kind != MeldKong {
			return Nothing
		}
	}

	value := p.OpenValue
	if hand.IsClosed() {
		value = p.ClosedValue
	}
	winning := Winning(FanPoint(value))

	tiles := hand.ClosedTiles().Clone()
	tiles.Insert(newTile)
	nClosed := tiles.Len()
	byCount := histogramByCount(tiles)

	if len(byCount) == 1 && len(byCount[2]) > 0 {
		return winning
	}

	pairs, triplets := byCount[2], byCount[3]
	if len(pairs) == 1 && len(triplets) == (nClosed-2)/3 {
		return winning
	}
	return Nothing
}

func (p AllInTriplets) TestOnSelfDraw(hand *PlayerHand, drawn Tile) Verdict {
	return p.test(hand, drawn)
}

func (p AllInTriplets) TestOnForeignDiscard(hand *PlayerHand, discarded Tile) Verdict {
	return p.test(hand, discarded)
}
