package mahjong

import "testing"

func TestEightPairsAndHalf_WhenDrawnWins(t *testing.T) {
	p := EightPairsAndHalf{ClosedValue: 2, OpenValue: 1}
	var tiles []Tile
	for rank := uint8(1); rank <= 8; rank++ {
		tiles = append(tiles, NewNumber(Green, rank), NewNumber(Green, rank))
	}
	hand := NewPlayerHand(16, tiles)
	got := p.TestOnSelfDraw(hand, NewNumber(Green, 1))
	want := Winning(FanPoint(2))
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEightPairsAndHalf_WrongShapeIsNothing(t *testing.T) {
	p := EightPairsAndHalf{ClosedValue: 2, OpenValue: 1}
	var tiles []Tile
	for rank := uint8(1); rank <= 8; rank++ {
		tiles = append(tiles, NewNumber(Red, rank), NewNumber(Red, rank))
	}
	hand := NewPlayerHand(16, tiles)
	got := p.TestOnSelfDraw(hand, NewNumber(Red, 9))
	if got != Nothing {
		t.Fatalf("got %+v, want Nothing", got)
	}
}

func TestAllInTriplets_NakedSingleWait(t *testing.T) {
	p := AllInTriplets{ClosedValue: 2, OpenValue: 2}
	hand := NewPlayerHand(16, []Tile{NewNumber(Green, 6)})
	for rank := uint8(1); rank <= 5; rank++ {
		hand.melds = append(hand.melds, NewPong(NewNumber(Green, rank), SideLeft))
	}
	got := p.TestOnSelfDraw(hand, NewNumber(Green, 6))
	want := Winning(FanPoint(2))
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSixteenOrphans_SixteenWayWait(t *testing.T) {
	p := NewSixteenOrphans([]Suite{Green, Red, White, Black}, 1, 2)
	var tiles []Tile
	for _, s := range []Suite{Green, Red, White, Black} {
		tiles = append(tiles, NewNumber(s, 1), NewNumber(s, 9), NewWind(s), NewSymbol(s))
	}
	hand := NewPlayerHand(16, tiles)
	got := p.TestOnSelfDraw(hand, NewNumber(Green, 1))
	want := Winning(YakumanPoint(2))
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSixteenOrphans_StandardWait(t *testing.T) {
	p := NewSixteenOrphans([]Suite{Green, Red, White, Black}, 1, 2)
	var tiles []Tile
	for _, s := range []Suite{Green, Red, White, Black} {
		tiles = append(tiles, NewNumber(s, 1), NewNumber(s, 9), NewWind(s), NewSymbol(s))
	}
	// Replace Green-1 with a second Green-9 so the hand holds fourteen
	// singles and one orphan pair; the drawn Green-1 is then the single
	// missing orphan.
	tiles = append(tiles[1:], NewNumber(Green, 9))
	hand := NewPlayerHand(16, tiles)
	got := p.TestOnSelfDraw(hand, NewNumber(Green, 1))
	want := Winning(YakumanPoint(1))
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
