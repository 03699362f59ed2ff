package domain

// IsValidTableauMove reports whether the bottom card of a dragged run may be
// placed on the tableau pile whose face-up run is targetUp.
//   - An empty pile accepts only a King.
//   - Otherwise the moving card must be exactly one rank below the pile's top
//     card and of the opposite color.
//
// Only the bottom-most card of a run is checked; intra-run consistency holds
// because deals and moves never create an invalid run.
func IsValidTableauMove(targetUp []Card, moving Card) bool {
	if len(targetUp) == 0 {
		return moving.Rank == King
	}
	top := targetUp[len(targetUp)-1]
	return moving.Rank+1 == top.Rank && IsOppositeColor(moving, top)
}

// IsValidFoundationMove reports whether a single card may be placed on the
// foundation assigned to suit. An empty foundation accepts only the Ace of its
// suit; otherwise the card must be the next rank up.
func IsValidFoundationMove(foundation []Card, c Card, suit Suit) bool {
	if c.Suit != suit {
		return false
	}
	if len(foundation) == 0 {
		return c.Rank == Ace
	}
	return c.Rank == foundation[len(foundation)-1].Rank+1
}
