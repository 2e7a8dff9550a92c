package mahjong

// WallState holds the tiles remaining to be drawn, the dead wall's
// supplemental-draw tiles (for Kong replacement), and its reward-
// indicator tiles, plus a count of how many indicator pairs are
// currently active. Grounded on the teacher's DeckManager/Wang
// (material.go): KanTiles there is this type's supplemental tiles,
// DoraIndicators/UraDoraIndicators collapse into one indicator-pair
// sequence (this specification defines a single indicator track, not a
// separate dora/ura-dora split), and RevealDoraIndicator is
// RevealNextIndicator.
//
// Dealing out of a shuffled sequence into dead wall / seats / live wall
// is a variant concern (variant.Deal); WallState itself only manages the
// already-split pieces.
type WallState struct {
	live               []Tile // drawn from the tail
	supplemental       []Tile
	supplementalIndex  int
	indicators         []Tile // flat; pair i is indicators[2i], indicators[2i+1]
	activeIndicatorLen int    // number of active indicator pairs
}

// NewWallState builds a WallState from its three already-separated tile
// groups. One indicator pair starts active, per spec.md §6, if at least
// one pair exists.
func NewWallState(live, supplemental, indicators []Tile) *WallState {
	w := &WallState{
		live:         append([]Tile(nil), live...),
		supplemental: append([]Tile(nil), supplemental...),
		indicators:   append([]Tile(nil), indicators...),
	}
	if len(indicators) >= 2 {
		w.activeIndicatorLen = 1
	}
	return w
}

// Draw pops the next tile from the live wall's tail. Reports false on an
// empty wall — the moderator treats that as the transition to
// ExhaustiveDraw, never as an error.
func (w *WallState) Draw() (Tile, bool) {
	if len(w.live) == 0 {
		return Tile{}, false
	}
	t := w.live[len(w.live)-1]
	w.live = w.live[:len(w.live)-1]
	return t, true
}

// RemainingLive returns the number of tiles left in the live wall.
func (w *WallState) RemainingLive() int { return len(w.live) }

// DrawSupplemental pops the next Kong-replacement tile from the dead
// wall. Reports false once all supplemental tiles are exhausted.
func (w *WallState) DrawSupplemental() (Tile, bool) {
	if w.supplementalIndex >= len(w.supplemental) {
		return Tile{}, false
	}
	t := w.supplemental[w.supplementalIndex]
	w.supplementalIndex++
	return t, true
}

// MaxIndicatorPairs returns how many indicator pairs this wall was built
// with (5 for jp4s17t).
func (w *WallState) MaxIndicatorPairs() int { return len(w.indicators) / 2 }

// ActiveIndicatorPairs returns how many indicator pairs are currently
// active (revealed).
func (w *WallState) ActiveIndicatorPairs() int { return w.activeIndicatorLen }

// RevealNextIndicator activates the next indicator pair, called whenever
// a Kong (concealed, exposed, or promoted) is formed. A no-op once every
// pair is already active; reports whether a new pair was activated.
func (w *WallState) RevealNextIndicator() bool {
	if w.activeIndicatorLen >= w.MaxIndicatorPairs() {
		return false
	}
	w.activeIndicatorLen++
	return true
}

// ActiveIndicators returns the currently-revealed indicator tiles, two
// per active pair, in reveal order.
func (w *WallState) ActiveIndicators() []Tile {
	return append([]Tile(nil), w.indicators[:w.activeIndicatorLen*2]...)
}
