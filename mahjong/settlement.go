package mahjong

// Settlement computes point transfers for the two terminal states a hand
// can reach. Grounded on the teacher's score_calculator.go
// (callHuPoints/getFixedPoints/calculateBasePoints): this specification's
// catalogue only emits Fan/Yakuman, never a fu count (HandDecomposer's
// partitions are not wired to a fu calculator here), so the sub-mangan
// base-point formula below assumes a fixed nominal fu (30, the common
// case) rather than computing one — documented as a simplification, not
// an omission.
type Settlement struct{}

// WinTransfers returns the four-seat point delta for a completed hand.
// sourceSeat is -1 for a self-draw win, otherwise the discarder's seat.
// honba is the deal-repeat counter (spec.md §3).
func WinTransfers(point Point, winnerSeat, sourceSeat, dealerSeat, honba int) [4]int {
	isDealerWin := winnerSeat == dealerSeat
	isTsumo := sourceSeat < 0

	var out [4]int
	if isTsumo {
		for seat := 0; seat < 4; seat++ {
			if seat == winnerSeat {
				continue
			}
			pay := tsumoShare(point, isDealerWin, seat == dealerSeat && !isDealerWin)
			pay += 100 * honba
			out[seat] -= pay
			out[winnerSeat] += pay
		}
		return out
	}

	pay := ronTotal(point, isDealerWin)
	pay += 300 * honba
	out[sourceSeat] -= pay
	out[winnerSeat] += pay
	return out
}

// ronTotal is the full amount the discarder pays.
func ronTotal(point Point, isDealerWin bool) int {
	if point.Kind == PointYakuman {
		base := 8000 * int(point.Value)
		if isDealerWin {
			return base * 6
		}
		return base * 4
	}
	if fixed, ok := fixedRonPoints(point.Value, isDealerWin); ok {
		return fixed
	}
	base := roundUpTo100(30 * (1 << (2 + point.Value)))
	if isDealerWin {
		return base * 6
	}
	return base * 4
}

// tsumoShare is the amount one non-winning seat pays on a self-draw win.
// dealerPaysDouble is true for a non-dealer winner's dealer-seat payer.
func tsumoShare(point Point, isDealerWin, dealerPaysDouble bool) int {
	if point.Kind == PointYakuman {
		base := 8000 * int(point.Value)
		if isDealerWin {
			return base * 2
		}
		if dealerPaysDouble {
			return base * 2
		}
		return base
	}
	if fixed, ok := fixedTsumoShare(point.Value, isDealerWin, dealerPaysDouble); ok {
		return fixed
	}
	base := roundUpTo100(30 * (1 << (2 + point.Value)))
	if isDealerWin {
		return base * 2
	}
	if dealerPaysDouble {
		return base * 2
	}
	return base
}

// fixedRonPoints mirrors the teacher's getFixedPoints table for han ≥ 5
// (mangan through sanbaiman), discarder-pays-all form.
func fixedRonPoints(fan uint8, isDealer bool) (int, bool) {
	switch {
	case fan == 5:
		if isDealer {
			return 12000, true
		}
		return 8000, true
	case fan >= 6 && fan <= 7:
		if isDealer {
			return 18000, true
		}
		return 12000, true
	case fan >= 8 && fan <= 10:
		if isDealer {
			return 24000, true
		}
		return 16000, true
	case fan >= 11:
		if isDealer {
			return 36000, true
		}
		return 24000, true
	default:
		return 0, false
	}
}

// fixedTsumoShare mirrors the teacher's getFixedPoints table for han ≥ 5,
// per-payer form.
func fixedTsumoShare(fan uint8, isDealerWin, dealerPaysDouble bool) (int, bool) {
	var dealerShare, otherShare int
	switch {
	case fan == 5:
		dealerShare, otherShare = 4000, 2000
	case fan >= 6 && fan <= 7:
		dealerShare, otherShare = 6000, 3000
	case fan >= 8 && fan <= 10:
		dealerShare, otherShare = 8000, 4000
	case fan >= 11:
		dealerShare, otherShare = 12000, 6000
	default:
		return 0, false
	}
	if isDealerWin {
		return dealerShare, true
	}
	if dealerPaysDouble {
		return dealerShare, true
	}
	return otherShare, true
}

func roundUpTo100(x int) int {
	return ((x + 99) / 100) * 100
}

// ExhaustiveDrawTransfers implements spec.md §4.6's fixed schedule: a
// per-pair transfer amount (1000 for 1-or-3 ready seats, 1500 for 2)
// moves from every non-ready seat to every ready seat; 0 or 4 ready seats
// transfer nothing.
func ExhaustiveDrawTransfers(ready [4]bool) [4]int {
	count := 0
	for _, r := range ready {
		if r {
			count++
		}
	}

	var perPair int
	switch count {
	case 1, 3:
		perPair = 1000
	case 2:
		perPair = 1500
	default:
		return [4]int{}
	}

	var out [4]int
	for i := 0; i < 4; i++ {
		if ready[i] {
			continue
		}
		for j := 0; j < 4; j++ {
			if !ready[j] {
				continue
			}
			out[i] -= perPair
			out[j] += perPair
		}
	}
	return out
}

// DealerRotates implements spec.md §9's resolved open question: the
// dealer rotates iff they are not in the ready set at an exhaustive draw.
func DealerRotates(dealerSeat int, ready [4]bool) bool {
	return !ready[dealerSeat]
}
