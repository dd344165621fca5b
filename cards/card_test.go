package cards

import "testing"

func TestRankValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Two, 2},
		{Nine, 9},
		{Ten, 10},
		{Jack, 11},
		{Queen, 12},
		{King, 13},
		{Ace, 14},
	}

	for _, tt := range tests {
		if got := RankValue(tt.rank); got != tt.want {
			t.Errorf("RankValue(%s) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestIsFace(t *testing.T) {
	if !NewCard(Jack, Spades).IsFace() {
		t.Error("Jack should be a face card")
	}
	if !NewCard(Queen, Spades).IsFace() {
		t.Error("Queen should be a face card")
	}
	if !NewCard(King, Spades).IsFace() {
		t.Error("King should be a face card")
	}
	if NewCard(Ace, Spades).IsFace() {
		t.Error("Ace should not be a face card")
	}
	if NewCard(Ten, Spades).IsFace() {
		t.Error("Ten should not be a face card")
	}
}

func TestClone(t *testing.T) {
	original := NewCard(Ace, Hearts)
	original.Enhancement = EnhancementGlass
	original.Edition = EditionFoil

	dup := original.Clone()

	if dup.ID == original.ID {
		t.Error("Clone should carry a fresh id")
	}
	if dup.Rank != original.Rank || dup.Suit != original.Suit {
		t.Error("Clone should keep rank and suit")
	}
	if dup.Enhancement != original.Enhancement || dup.Edition != original.Edition {
		t.Error("Clone should keep enhancement and edition")
	}
}
