package mahjong

// DiscardEntry is one tile in a participant's river, with a flag set once
// a later opponent has claimed it into a meld.
type DiscardEntry struct {
	Tile       Tile
	UsedInMeld bool
}

// PlayerHand holds one seated participant's concealed tiles, exposed
// melds, and discard pile. Grounded on the teacher's PlayerImage
// (player_image.go), narrowed to the fields spec.md's data model names;
// the teacher's riichi/furiten bookkeeping is variant-specific scoring
// state this specification does not define and is not carried here.
type PlayerHand struct {
	closed   *TileMultiset
	melds    []Meld
	discards []DiscardEntry
	dealSize int
}

// NewPlayerHand deals tiles into a fresh PlayerHand. dealSize is the
// variant-defined rest-state tile count (16 for jp4s17t).
func NewPlayerHand(dealSize int, tiles []Tile) *PlayerHand {
	return &PlayerHand{
		closed:   NewTileMultisetFromUnsorted(tiles),
		dealSize: dealSize,
	}
}

// ConcealedCount returns the number of concealed tiles currently held.
func (h *PlayerHand) ConcealedCount() int { return h.closed.Len() }

// ClosedTiles exposes the concealed multiset for read access (catalogue
// tests and the broker need to inspect bucket counts directly).
func (h *PlayerHand) ClosedTiles() *TileMultiset { return h.closed }

// ExposedMelds returns the revealed melds in formation order.
func (h *PlayerHand) ExposedMelds() []Meld {
	return append([]Meld(nil), h.melds...)
}

// DiscardPile returns the river in discard order.
func (h *PlayerHand) DiscardPile() []DiscardEntry {
	return append([]DiscardEntry(nil), h.discards...)
}

// IsClosed reports whether every exposed meld is a concealed Kong, i.e.
// nothing has been revealed to opponents.
func (h *PlayerHand) IsClosed() bool {
	for _, m := range h.melds {
		if !m.IsConcealedKong() {
			return false
		}
	}
	return true
}

// TileCount returns the total physical tile count: concealed tiles plus
// 3 per Pong/Chow and 4 per Kong. Per spec this must equal dealSize at
// rest or dealSize+1 between draw and discard.
func (h *PlayerHand) TileCount() int {
	n := h.closed.Len()
	for _, m := range h.melds {
		n += m.Size()
	}
	return n
}

// ApplyDiscard inserts drawn into the concealed set, then removes the
// discarded tile's index-th copy (copies of the same tile are otherwise
// indistinguishable; index only disambiguates which menu entry was
// picked). Panics with a ContractError if the hand does not hold that
// many copies of discarded after the insert — the broker is expected to
// never offer such a menu entry.
func (h *PlayerHand) ApplyDiscard(drawn, discarded Tile, index int) {
	h.closed.Insert(drawn)
	if index < 0 || index >= h.closed.Count(discarded) {
		violateContract("PlayerHand.ApplyDiscard", "discarded tile copy index out of range")
	}
	h.closed.Remove(discarded)
	h.discards = append(h.discards, DiscardEntry{Tile: discarded})
}

// DiscardWithoutDraw removes a held tile directly, for the Interrupt-
// resolution case where a claiming seat becomes active without a wall
// draw (spec.md §4.6: "they play a discard next").
func (h *PlayerHand) DiscardWithoutDraw(t Tile, index int) {
	if index < 0 || index >= h.closed.Count(t) {
		violateContract("PlayerHand.DiscardWithoutDraw", "discarded tile copy index out of range")
	}
	h.closed.Remove(t)
	h.discards = append(h.discards, DiscardEntry{Tile: t})
}

// MarkLastDiscardUsed flags the most recent discard as claimed by an
// opponent's meld, used by the moderator when resolving an interrupt.
func (h *PlayerHand) MarkLastDiscardUsed() {
	if len(h.discards) == 0 {
		violateContract("PlayerHand.MarkLastDiscardUsed", "no discard to mark")
	}
	h.discards[len(h.discards)-1].UsedInMeld = true
}

// FormConcealedKong reveals a concealed Kong from four held copies of t.
func (h *PlayerHand) FormConcealedKong(t Tile) {
	if h.closed.Count(t) != 4 {
		violateContract("PlayerHand.FormConcealedKong", "fewer than four copies held")
	}
	h.closed.Remove(t)
	h.closed.Remove(t)
	h.closed.Remove(t)
	h.closed.Remove(t)
	h.melds = append(h.melds, NewConcealedKong(t))
}

// PromoteKongFromPong upgrades an existing exposed Pong on t to a Kong,
// consuming the fourth held copy from the concealed set.
func (h *PlayerHand) PromoteKongFromPong(t Tile) {
	for i, m := range h.melds {
		if m.Kind == MeldPong && m.Identity() == t {
			if h.closed.Count(t) < 1 {
				violateContract("PlayerHand.PromoteKongFromPong", "no matching tile held to promote with")
			}
			h.closed.Remove(t)
			h.melds[i] = NewExposedKong(t, m.Source)
			return
		}
	}
	violateContract("PlayerHand.PromoteKongFromPong", "no exposed Pong on that tile")
}

// ClaimMeld forms meld from a foreign discard, removing the held copies
// the meld consumes (its full tile set minus the one claimed tile, which
// came from the discarder rather than this hand's concealed set) and
// appending it to the exposed melds.
func (h *PlayerHand) ClaimMeld(m Meld, claimed Tile) {
	var need []Tile
	switch m.Kind {
	case MeldPong:
		need = []Tile{claimed, claimed}
	case MeldKong:
		need = []Tile{claimed, claimed, claimed}
	case MeldChow:
		for _, t := range m.Tiles[:] {
			if t != claimed {
				need = append(need, t)
			}
		}
	}
	for _, t := range need {
		if !h.closed.Remove(t) {
			violateContract("PlayerHand.ClaimMeld", "meld requires a tile copy this hand does not hold")
		}
	}
	h.melds = append(h.melds, m)
}
