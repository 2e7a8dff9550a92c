package mahjong

import "testing"

func sumSeats(deltas [4]int) int {
	sum := 0
	for _, d := range deltas {
		sum += d
	}
	return sum
}

func TestExhaustiveDrawTransfers_TwoReadyNetsZero(t *testing.T) {
	ready := [4]bool{true, false, true, false}
	got := ExhaustiveDrawTransfers(ready)
	if sumSeats(got) != 0 {
		t.Fatalf("transfers do not net to zero: %v", got)
	}
	for seat, isReady := range ready {
		if isReady {
			if got[seat] != 3000 {
				t.Fatalf("ready seat %d got %d, want 3000 (1500 from each of 2 non-ready seats)", seat, got[seat])
			}
		} else {
			if got[seat] != -3000 {
				t.Fatalf("non-ready seat %d got %d, want -3000", seat, got[seat])
			}
		}
	}
}

func TestExhaustiveDrawTransfers_AllOrNoneReadyIsNoOp(t *testing.T) {
	if got := ExhaustiveDrawTransfers([4]bool{true, true, true, true}); got != ([4]int{}) {
		t.Fatalf("all-ready transfers = %v, want zero", got)
	}
	if got := ExhaustiveDrawTransfers([4]bool{}); got != ([4]int{}) {
		t.Fatalf("none-ready transfers = %v, want zero", got)
	}
}

func TestDealerRotates(t *testing.T) {
	if DealerRotates(1, [4]bool{false, true, false, false}) {
		t.Fatalf("dealer (seat 1, ready) should not rotate")
	}
	if !DealerRotates(1, [4]bool{true, false, true, false}) {
		t.Fatalf("dealer (seat 1, not ready) should rotate")
	}
}

func TestWinTransfers_TsumoNetsZero(t *testing.T) {
	got := WinTransfers(FanPoint(3), 0, -1, 0, 0)
	if sumSeats(got) != 0 {
		t.Fatalf("tsumo transfers do not net to zero: %v", got)
	}
	if got[0] <= 0 {
		t.Fatalf("winner delta = %d, want positive", got[0])
	}
}

func TestWinTransfers_RonNetsZero(t *testing.T) {
	got := WinTransfers(FanPoint(3), 2, 1, 0, 1)
	if sumSeats(got) != 0 {
		t.Fatalf("ron transfers do not net to zero: %v", got)
	}
	if got[1] >= 0 || got[2] <= 0 {
		t.Fatalf("expected discarder negative, winner positive: %v", got)
	}
}
