package mahjong

import (
	"github.com/google/uuid"

	applog "mahjongcore/log"
)

// ResultKind distinguishes the two terminal states a hand can reach.
type ResultKind uint8

const (
	ResultWin ResultKind = iota
	ResultExhaustiveDraw
)

// Result is the Moderator's sole observed output, per spec.md §6: either
// a Win with its point verdict and source, or an ExhaustiveDraw with the
// ready-seat set.
type Result struct {
	Kind        ResultKind
	WinnerSeat  int
	Point       Point
	WinningTile Tile
	SourceSeat  int // -1 for a self-draw win; unused for ExhaustiveDraw
	ReadySeats  [4]bool
	DealerSeat  int // dealer seat for the *next* hand, for both Win and ExhaustiveDraw
	Honba       int // deal-repeat counter for the *next* hand, for both Win and ExhaustiveDraw
}

// HandModerator orchestrates one hand from already-dealt hands: the turn
// loop, meld interrupts, termination, and the next hand's dealer seat and
// honba. Point transfers are not computed here (see WinTransfers and
// ExhaustiveDrawTransfers). Grounded on the
// teacher's riichi_mahjong_4p_engine.go in its separation of "compute
// menu" / "apply choice" / "advance turn", but implemented as a plain
// synchronous call chain rather than the teacher's actor/channel event
// loop — that pattern exists to serve many concurrent networked rooms, a
// concern this specification places out of scope (see SPEC_FULL.md §5).
type HandModerator struct {
	ID uuid.UUID

	hands    [4]*PlayerHand
	brokers  [4]*PlayerBroker
	policies [4]Policy
	wall     *WallState

	catalogue    []WinningHand
	tileUniverse []Tile // distinct tile identities, used only for readiness tests at exhaustive draw

	chowEnabled bool
	dealerSeat  int
	honba       int

	log *applog.Logger
}

// NewHandModerator builds a HandModerator ready to play one hand. hands
// must already hold each seat's dealt tiles; wall must already be dealt
// (dead wall separated out). dealerSeat/honba come from the match state
// carried across hands (spec.md §3).
func NewHandModerator(
	hands [4]*PlayerHand,
	policies [4]Policy,
	wall *WallState,
	catalogue []WinningHand,
	tileUniverse []Tile,
	chowEnabled bool,
	dealerSeat, honba int,
	logger *applog.Logger,
) *HandModerator {
	id := uuid.New()
	m := &HandModerator{
		ID:           id,
		hands:        hands,
		wall:         wall,
		catalogue:    catalogue,
		tileUniverse: tileUniverse,
		chowEnabled:  chowEnabled,
		dealerSeat:   dealerSeat,
		honba:        honba,
		policies:     policies,
		log:          logger.With("hand", id.String()),
	}
	for seat := range hands {
		m.brokers[seat] = &PlayerBroker{Hand: hands[seat]}
		policies[seat].OnDeal(append([]Tile(nil), hands[seat].ClosedTiles().Tiles()...))
	}
	return m
}

// Play runs the turn loop to completion and returns the terminal Result.
func (m *HandModerator) Play() Result {
	active := m.dealerSeat
	for {
		drawn, ok := m.wall.Draw()
		if !ok {
			return m.settleExhaustiveDraw()
		}
		m.log.Debug("draw", "seat", active, "tile", drawn.String())

		result, nextActive := m.takeTurn(active, drawn)
		if result != nil {
			return *result
		}
		active = nextActive
	}
}

// takeTurn runs one seat's action in response to a drawn tile, looping
// internally on Kong/Promote re-draws, and returns either a terminal
// Result or the seat that should act next.
func (m *HandModerator) takeTurn(active int, drawn Tile) (*Result, int) {
	for {
		hand := m.hands[active]
		broker := m.brokers[active]
		menu := broker.MenuOnDraw(drawn, m.catalogue)
		choice := m.policies[active].ChooseTurnAction(drawn, menu)
		if !turnChoiceInMenu(choice, menu) {
			violateContract("HandModerator.Play", "policy chose an action outside the offered menu")
		}

		switch choice.Kind {
		case TurnDeclareCompletion:
			point := winningPointSelfDraw(hand, m.catalogue, drawn)
			m.log.Info("win", "seat", active, "self_draw", true, "point", point)
			dealerSeat, honba := m.nextDealerAfterWin(active)
			return &Result{Kind: ResultWin, WinnerSeat: active, Point: point, WinningTile: drawn, SourceSeat: -1, DealerSeat: dealerSeat, Honba: honba}, active

		case TurnConcealedKong:
			hand.ClosedTiles().Insert(drawn)
			hand.FormConcealedKong(choice.Tile)
			m.wall.RevealNextIndicator()
			supplemental, ok := m.wall.DrawSupplemental()
			if !ok {
				return m.exhaustiveResultPtr(), active
			}
			drawn = supplemental
			continue

		case TurnPromoteKongFromPong:
			hand.ClosedTiles().Insert(drawn)
			if robber, ok := m.pollRobKong(active, choice.Tile); ok {
				point := winningPointForeignDiscard(m.hands[robber], m.catalogue, choice.Tile)
				m.log.Info("win", "seat", robber, "robbed_kong", true, "point", point)
				dealerSeat, honba := m.nextDealerAfterWin(robber)
				return &Result{Kind: ResultWin, WinnerSeat: robber, Point: point, WinningTile: choice.Tile, SourceSeat: active, DealerSeat: dealerSeat, Honba: honba}, robber
			}
			hand.PromoteKongFromPong(choice.Tile)
			m.wall.RevealNextIndicator()
			supplemental, ok := m.wall.DrawSupplemental()
			if !ok {
				return m.exhaustiveResultPtr(), active
			}
			drawn = supplemental
			continue

		case TurnDiscard:
			hand.ApplyDiscard(drawn, choice.Tile, choice.Copy)
			m.log.Debug("discard", "seat", active, "tile", choice.Tile.String())
			return m.resolveInterrupt(active, choice.Tile)

		default:
			violateContract("HandModerator.Play", "unknown turn choice kind")
			return nil, active // unreachable
		}
	}
}

// resolveInterrupt implements spec.md §4.6's Interrupt(t, i, seat) state:
// poll the other three seats clockwise from the discarder, resolve by
// priority, and either end the hand, hand control to a claimant, or push
// the discard and advance to the next seat.
func (m *HandModerator) resolveInterrupt(discarder int, t Tile) (*Result, int) {
	downstream := (discarder + 1) % 4

	type declaration struct {
		seat   int
		choice MeldChoice
	}
	var declared []declaration

	for i := 0; i < 3; i++ {
		seat := (discarder + 1 + i) % 4
		broker := m.brokers[seat]
		meldAllowed := seat == downstream
		menu := broker.MenuOnForeignDiscard(true, meldAllowed, m.catalogue, t)
		choice := m.policies[seat].ChooseMeldAction(t, menu)
		if !meldChoiceInMenu(choice, menu) {
			violateContract("HandModerator.resolveInterrupt", "policy chose an action outside the offered menu")
		}
		if choice.Kind != MeldPass {
			declared = append(declared, declaration{seat: seat, choice: choice})
		}
	}

	winner := -1
	bestPriority := -1
	for _, d := range declared {
		p := meldChoicePriority(d.choice.Kind)
		if p > bestPriority {
			bestPriority = p
			winner = d.seat
		}
	}

	if winner == -1 {
		return nil, (discarder + 1) % 4
	}

	chosen := MeldChoice{}
	for _, d := range declared {
		if d.seat == winner {
			chosen = d.choice
			break
		}
	}

	switch chosen.Kind {
	case MeldChoiceComplete:
		point := winningPointForeignDiscard(m.hands[winner], m.catalogue, t)
		m.log.Info("win", "seat", winner, "source", discarder, "point", point)
		dealerSeat, honba := m.nextDealerAfterWin(winner)
		return &Result{Kind: ResultWin, WinnerSeat: winner, Point: point, WinningTile: t, SourceSeat: discarder, DealerSeat: dealerSeat, Honba: honba}, winner

	case MeldChoiceExposedKong:
		side := relativeSide(winner, discarder)
		m.hands[discarder].MarkLastDiscardUsed()
		m.hands[winner].ClaimMeld(NewExposedKong(t, side), t)
		m.wall.RevealNextIndicator()
		return m.continueAfterClaim(winner)

	case MeldChoicePong:
		side := relativeSide(winner, discarder)
		m.hands[discarder].MarkLastDiscardUsed()
		m.hands[winner].ClaimMeld(NewPong(t, side), t)
		return m.continueAfterClaim(winner)

	case MeldChoiceChow:
		violateContract("HandModerator.resolveInterrupt", "chow is reserved but not implemented by this variant")
		return nil, winner

	default:
		violateContract("HandModerator.resolveInterrupt", "unexpected winning meld choice kind")
		return nil, winner
	}
}

// continueAfterClaim lets a meld claimant discard without a wall draw,
// per spec.md §4.6 ("its seat becomes the active seat without a wall
// draw; they play a discard next").
func (m *HandModerator) continueAfterClaim(seat int) (*Result, int) {
	broker := m.brokers[seat]
	menu := broker.MenuDiscardOnly()
	if len(menu) == 0 {
		return m.exhaustiveResultPtr(), seat
	}
	choice := m.policies[seat].ChooseTurnAction(Tile{}, menu)
	if !turnChoiceInMenu(choice, menu) || choice.Kind != TurnDiscard {
		violateContract("HandModerator.continueAfterClaim", "policy must discard after claiming a meld")
	}
	m.hands[seat].DiscardWithoutDraw(choice.Tile, choice.Copy)
	return m.resolveInterrupt(seat, choice.Tile)
}

// pollRobKong checks whether any of the other three seats can declare
// completion against the tile a Pong is being promoted with.
func (m *HandModerator) pollRobKong(promoter int, t Tile) (int, bool) {
	for i := 1; i <= 3; i++ {
		seat := (promoter + i) % 4
		if winningPointForeignDiscardOK(m.hands[seat], m.catalogue, t) {
			return seat, true
		}
	}
	return 0, false
}

// nextDealerAfterWin implements spec.md §4.6's dealer-retention rule on a
// win: the dealer keeps the seat and the honba counter increments iff the
// dealer themself won; otherwise the seat rotates and honba resets,
// mirroring settleExhaustiveDraw's rotation rule for the draw path.
func (m *HandModerator) nextDealerAfterWin(winnerSeat int) (int, int) {
	if winnerSeat == m.dealerSeat {
		return m.dealerSeat, m.honba + 1
	}
	return (m.dealerSeat + 1) % 4, 0
}

func (m *HandModerator) exhaustiveResultPtr() *Result {
	r := m.settleExhaustiveDraw()
	return &r
}

// settleExhaustiveDraw implements spec.md §4.6's closing state: each
// broker reports readiness and the dealer rotates iff not ready (spec.md
// §9). It does not apply the fixed point schedule; ExhaustiveDrawTransfers
// computes that from the returned ReadySeats.
func (m *HandModerator) settleExhaustiveDraw() Result {
	var ready [4]bool
	for seat := 0; seat < 4; seat++ {
		ready[seat] = m.brokers[seat].IsReady(m.catalogue, m.tileUniverse)
	}
	m.log.Info("exhaustive_draw", "ready", ready)

	dealerSeat, honba := m.dealerSeat, m.honba
	if DealerRotates(m.dealerSeat, ready) {
		dealerSeat = (m.dealerSeat + 1) % 4
		honba = 0
	} else {
		honba = m.honba + 1
	}

	return Result{Kind: ResultExhaustiveDraw, ReadySeats: ready, DealerSeat: dealerSeat, Honba: honba}
}

func winningPointSelfDraw(hand *PlayerHand, catalogue []WinningHand, tile Tile) Point {
	for _, h := range catalogue {
		if v := h.TestOnSelfDraw(hand, tile); v.Won {
			return v.Point
		}
	}
	violateContract("HandModerator", "declared completion but no catalogued pattern confirms it")
	return Point{}
}

func winningPointForeignDiscard(hand *PlayerHand, catalogue []WinningHand, tile Tile) Point {
	for _, h := range catalogue {
		if v := h.TestOnForeignDiscard(hand, tile); v.Won {
			return v.Point
		}
	}
	violateContract("HandModerator", "declared completion but no catalogued pattern confirms it")
	return Point{}
}

func winningPointForeignDiscardOK(hand *PlayerHand, catalogue []WinningHand, tile Tile) bool {
	for _, h := range catalogue {
		if h.TestOnForeignDiscard(hand, tile).Won {
			return true
		}
	}
	return false
}

func relativeSide(claimant, discarder int) Side {
	switch (discarder - claimant + 4) % 4 {
	case 1:
		return SideLeft
	case 2:
		return SideAcross
	case 3:
		return SideRight
	default:
		return SideSelf
	}
}

func meldChoicePriority(k MeldChoiceKind) int {
	switch k {
	case MeldChoiceComplete:
		return 4
	case MeldChoiceExposedKong:
		return 3
	case MeldChoicePong:
		return 2
	case MeldChoiceChow:
		return 1
	default:
		return 0
	}
}

func turnChoiceInMenu(choice TurnChoice, menu []TurnChoice) bool {
	for _, c := range menu {
		if c == choice {
			return true
		}
	}
	return false
}

func meldChoiceInMenu(choice MeldChoice, menu []MeldChoice) bool {
	for _, c := range menu {
		if c == choice {
			return true
		}
	}
	return false
}
