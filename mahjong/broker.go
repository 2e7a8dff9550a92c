package mahjong

// TurnChoiceKind distinguishes the four actions a seat may take on its
// own draw.
type TurnChoiceKind uint8

const (
	TurnDiscard TurnChoiceKind = iota
	TurnConcealedKong
	TurnPromoteKongFromPong
	TurnDeclareCompletion
)

// TurnChoice is one menu entry offered after a self-draw. Copy identifies
// which physical copy of Tile a Discard entry refers to (copies of the
// same tile are otherwise indistinguishable).
type TurnChoice struct {
	Kind TurnChoiceKind
	Tile Tile
	Copy int
}

// MeldChoiceKind distinguishes the five actions a seat may take in
// response to another seat's discard.
type MeldChoiceKind uint8

const (
	MeldPass MeldChoiceKind = iota
	MeldChoicePong
	MeldChoiceExposedKong
	MeldChoiceChow
	MeldChoiceComplete
	MeldChoiceRobKong // reserved: never emitted by this broker, contract slot only
)

// MeldChoice is one menu entry offered in response to a foreign discard.
type MeldChoice struct {
	Kind MeldChoiceKind
}

// PlayerBroker is a pure view over a PlayerHand: it computes legal action
// menus and does not mutate the hand. Grounded on the original source's
// PlayerBroker (player_broker.rs) — get_options_on_drawing and
// get_options_when_discarded are carried near-verbatim in shape; the Go
// port returns []TurnChoice/[]MeldChoice instead of an enum Vec. The
// chosen action is applied by HandModerator through PlayerHand's own
// mutators (ApplyDiscard, FormConcealedKong, PromoteKongFromPong,
// ClaimMeld).
type PlayerBroker struct {
	Hand *PlayerHand
}

// MenuOnDraw computes the action menu after drawing drawnTile, per
// spec.md §4.5. catalogue is the variant's ordered list of winning-hand
// patterns.
func (b *PlayerBroker) MenuOnDraw(drawnTile Tile, catalogue []WinningHand) []TurnChoice {
	tiles := b.Hand.ClosedTiles().Clone()
	tiles.Insert(drawnTile)

	var options []TurnChoice

	for _, bucket := range tiles.Buckets() {
		if bucket.Count == 4 {
			options = append(options, TurnChoice{Kind: TurnConcealedKong, Tile: bucket.Tile})
		}
	}

	for _, m := range b.Hand.ExposedMelds() {
		if m.Kind == MeldPong && tiles.Contains(m.Identity()) {
			options = append(options, TurnChoice{Kind: TurnPromoteKongFromPong, Tile: m.Identity()})
		}
	}

	for _, h := range catalogue {
		if h.TestOnSelfDraw(b.Hand, drawnTile).Won {
			options = append(options, TurnChoice{Kind: TurnDeclareCompletion, Tile: drawnTile})
			break
		}
	}

	for _, bucket := range tiles.Buckets() {
		for i := 0; i < bucket.Count; i++ {
			options = append(options, TurnChoice{Kind: TurnDiscard, Tile: bucket.Tile, Copy: i})
		}
	}

	return options
}

// MenuOnForeignDiscard computes the action menu in response to tile
// discarded by another seat, per spec.md §4.5. kongAllowed and
// meldAllowed gate Kong/Pong/Chow; meldAllowed alone gates Pong (Chow is
// reserved but never offered by this broker, per spec.md §9).
func (b *PlayerBroker) MenuOnForeignDiscard(kongAllowed, meldAllowed bool, catalogue []WinningHand, discarded Tile) []MeldChoice {
	options := []MeldChoice{{Kind: MeldPass}}

	held := b.Hand.ClosedTiles().Count(discarded)

	if meldAllowed && held >= 2 {
		options = append(options, MeldChoice{Kind: MeldChoicePong})
	}
	if kongAllowed && meldAllowed && held == 3 {
		options = append(options, MeldChoice{Kind: MeldChoiceExposedKong})
	}

	for _, h := range catalogue {
		if h.TestOnForeignDiscard(b.Hand, discarded).Won {
			options = append(options, MeldChoice{Kind: MeldChoiceComplete})
			break
		}
	}

	return options
}

// MenuDiscardOnly offers one Discard entry per held tile copy, with no
// draw-dependent options (ConcealedKong/PromoteKongFromPong/
// DeclareCompletion). Used when a seat becomes active by claiming a
// foreign discard's meld rather than by drawing.
func (b *PlayerBroker) MenuDiscardOnly() []TurnChoice {
	var options []TurnChoice
	for _, bucket := range b.Hand.ClosedTiles().Buckets() {
		for i := 0; i < bucket.Count; i++ {
			options = append(options, TurnChoice{Kind: TurnDiscard, Tile: bucket.Tile, Copy: i})
		}
	}
	return options
}

// IsReady reports whether the hand is one tile away from completion
// under any catalogued pattern: it tests every tile in candidates against
// each pattern's self-draw predicate and returns true on the first win.
func (b *PlayerBroker) IsReady(catalogue []WinningHand, candidates []Tile) bool {
	for _, t := range candidates {
		for _, h := range catalogue {
			if h.TestOnSelfDraw(b.Hand, t).Won {
				return true
			}
		}
	}
	return false
}
