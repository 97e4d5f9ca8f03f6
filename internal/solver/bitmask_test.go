package solver

import (
	"math/bits"
	"testing"
)

func TestBitStateMirrorsGrid(t *testing.T) {
	grid := sample
	var st bitState
	st.init(&grid)

	for r := 0; r < 9; r++ {
		var want uint16
		for c := 0; c < 9; c++ {
			if v := grid[r][c]; v != 0 {
				want |= 1 << v
			}
		}
		if st.rows[r] != want {
			t.Fatalf("row %d mask %09b, want %09b", r, st.rows[r]>>1, want>>1)
		}
	}

	// place/remove keeps the mirror exact
	st.place(0, 2, 4)
	if st.rows[0]&(1<<4) == 0 || st.cols[2]&(1<<4) == 0 || st.boxes[0]&(1<<4) == 0 {
		t.Fatal("place did not set all three masks")
	}
	st.remove(0, 2, 4)
	if st.rows[0]&(1<<4) != 0 || st.cols[2]&(1<<4) != 0 || st.boxes[0]&(1<<4) != 0 {
		t.Fatal("remove did not clear all three masks")
	}
}

func TestCandidatesAscendingOrder(t *testing.T) {
	grid := sample
	var st bitState
	st.init(&grid)

	// (0,2) on the sample: row has 5,3,7; col has 8; box has 5,3,6,9,8
	cand := st.candidates(0, 2)
	var got []uint8
	for m := cand; m != 0; {
		bit := m & -m
		m &^= bit
		got = append(got, uint8(bits.TrailingZeros16(bit)))
	}
	want := []uint8{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("candidates at (0,2): got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate order: got %v, want ascending %v", got, want)
		}
	}
}

func TestCandidatesEmptyOnFullHouse(t *testing.T) {
	grid := sampleSolved
	grid[4][4] = 0
	var st bitState
	st.init(&grid)
	if c := st.candidates(4, 4); bits.OnesCount16(c) != 1 {
		t.Fatalf("forced cell should have exactly one candidate, mask %09b", c>>1)
	}
	grid2 := sampleSolved
	var st2 bitState
	st2.init(&grid2)
	if c := st2.candidates(0, 0); c != 0 {
		t.Fatalf("filled board leaves no candidates anywhere, got mask %09b", c>>1)
	}
}
