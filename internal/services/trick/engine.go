// Package trick implements play legality and trick resolution.
package trick

import (
	"github.com/mattrk/trickhall/internal/model"
)

// CheckFollowsSuit validates the suit-following rule: a player holding the
// lead suit must play it. The hand passed in still contains the candidate
// card. A nil lead suit means the player is leading and anything goes.
func CheckFollowsSuit(hand []model.Card, leadSuit *model.Suit, card model.Card) error {
	if leadSuit == nil || card.Suit == *leadSuit {
		return nil
	}
	if model.HasSuit(hand, *leadSuit) {
		return model.ErrMustFollowSuit
	}
	return nil
}

// ResolveWinner determines the winning play of a completed trick: the
// highest trump if any trump was played, else the highest card of the lead
// suit. Cards of neither suit cannot win regardless of rank.
func ResolveWinner(t model.Trick, trumpSuit model.Suit) model.PlayerID {
	if len(t.Plays) == 0 || t.LeadSuit == nil {
		return ""
	}

	best := -1
	bestTrump := false
	for i, play := range t.Plays {
		isTrump := play.Card.Suit == trumpSuit
		switch {
		case best == -1 && (isTrump || play.Card.Suit == *t.LeadSuit):
			best, bestTrump = i, isTrump
		case best == -1:
			// Off-suit non-trump card can never win
		case isTrump && !bestTrump:
			best, bestTrump = i, true
		case isTrump == bestTrump && play.Card.Suit == t.Plays[best].Card.Suit &&
			play.Card.Rank > t.Plays[best].Card.Rank:
			best = i
		}
	}
	if best == -1 {
		return ""
	}
	return t.Plays[best].PlayerID
}
