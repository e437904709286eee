package board

import "testing"

func TestOpponent(t *testing.T) {
	if Black.Opponent() != White {
		t.Errorf("Black.Opponent() = %v, want White", Black.Opponent())
	}
	if White.Opponent() != Black {
		t.Errorf("White.Opponent() = %v, want Black", White.Opponent())
	}
}

func TestCheckShape(t *testing.T) {
	s := NewState(1)
	if err := s.CheckShape(); err != nil {
		t.Fatalf("CheckShape() on fresh state: %v", err)
	}

	bad := State{Size: 9, Stones: make([]byte, 81), Territory: make([]byte, 81)}
	if err := bad.CheckShape(); err != ErrSizeMismatch {
		t.Errorf("CheckShape() on 9x9 = %v, want ErrSizeMismatch", err)
	}

	short := State{Size: Size, Stones: make([]byte, Cells-1), Territory: make([]byte, Cells)}
	if err := short.CheckShape(); err != ErrSizeMismatch {
		t.Errorf("CheckShape() on short stones = %v, want ErrSizeMismatch", err)
	}
}

func TestCollectStonePositionsOrder(t *testing.T) {
	stones := make([]byte, Cells)
	stones[Idx(5, 0)] = byte(Black)
	stones[Idx(2, 0)] = byte(Black)
	stones[Idx(0, 1)] = byte(Black)

	got := CollectStonePositions(stones, Black)
	want := []Point{{2, 0}, {5, 0}, {0, 1}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCountTerritory(t *testing.T) {
	territory := make([]byte, Cells)
	territory[0] = byte(Black)
	territory[1] = byte(Black)
	territory[2] = byte(White)

	if n := CountTerritory(territory, Black); n != 2 {
		t.Errorf("CountTerritory(Black) = %d, want 2", n)
	}
	if n := CountTerritory(territory, White); n != 1 {
		t.Errorf("CountTerritory(White) = %d, want 1", n)
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Log("should not panic")
}
