package trick

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattrk/trickhall/internal/model"
)

func card(suit model.Suit, rank model.Rank) model.Card {
	return model.NewCard(suit, rank)
}

func trickOf(plays ...model.TrickPlay) model.Trick {
	t := model.Trick{}
	for _, p := range plays {
		t.AddPlay(p.PlayerID, p.Card)
	}
	return t
}

func TestCheckFollowsSuit(t *testing.T) {
	hearts := model.SuitHeart

	tests := []struct {
		name    string
		hand    []model.Card
		lead    *model.Suit
		play    model.Card
		wantErr error
	}{
		{
			name: "leading allows any card",
			hand: []model.Card{card(model.SuitClub, model.RankTwo)},
			lead: nil,
			play: card(model.SuitClub, model.RankTwo),
		},
		{
			name: "following lead suit is legal",
			hand: []model.Card{card(model.SuitHeart, model.RankFour), card(model.SuitSpade, model.RankAce)},
			lead: &hearts,
			play: card(model.SuitHeart, model.RankFour),
		},
		{
			name:    "holding lead suit forbids off-suit play",
			hand:    []model.Card{card(model.SuitHeart, model.RankFour), card(model.SuitSpade, model.RankAce)},
			lead:    &hearts,
			play:    card(model.SuitSpade, model.RankAce),
			wantErr: model.ErrMustFollowSuit,
		},
		{
			name: "void in lead suit allows anything including trump",
			hand: []model.Card{card(model.SuitClub, model.RankNine), card(model.SuitSpade, model.RankThree)},
			lead: &hearts,
			play: card(model.SuitSpade, model.RankThree),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFollowsSuit(tt.hand, tt.lead, tt.play)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveWinnerHighestLeadSuitWins(t *testing.T) {
	tr := trickOf(
		model.TrickPlay{PlayerID: "a", Card: card(model.SuitHeart, model.RankSeven)},
		model.TrickPlay{PlayerID: "b", Card: card(model.SuitHeart, model.RankKing)},
		model.TrickPlay{PlayerID: "c", Card: card(model.SuitHeart, model.RankNine)},
	)

	assert.Equal(t, model.PlayerID("b"), ResolveWinner(tr, model.SuitClub))
}

func TestResolveWinnerTrumpBeatsLeadSuit(t *testing.T) {
	// Lead is hearts; one spade (trump) wins regardless of heart ranks
	tr := trickOf(
		model.TrickPlay{PlayerID: "a", Card: card(model.SuitHeart, model.RankAce)},
		model.TrickPlay{PlayerID: "b", Card: card(model.SuitSpade, model.RankTwo)},
		model.TrickPlay{PlayerID: "c", Card: card(model.SuitHeart, model.RankKing)},
	)

	assert.Equal(t, model.PlayerID("b"), ResolveWinner(tr, model.SuitSpade))
}

func TestResolveWinnerHighestTrumpAmongSeveral(t *testing.T) {
	tr := trickOf(
		model.TrickPlay{PlayerID: "a", Card: card(model.SuitDiamond, model.RankAce)},
		model.TrickPlay{PlayerID: "b", Card: card(model.SuitClub, model.RankFive)},
		model.TrickPlay{PlayerID: "c", Card: card(model.SuitClub, model.RankJack)},
		model.TrickPlay{PlayerID: "d", Card: card(model.SuitDiamond, model.RankKing)},
	)

	assert.Equal(t, model.PlayerID("c"), ResolveWinner(tr, model.SuitClub))
}

func TestResolveWinnerOffSuitHighCardCannotWin(t *testing.T) {
	// b is void and sloughs an ace of a suit that is neither lead nor trump
	tr := trickOf(
		model.TrickPlay{PlayerID: "a", Card: card(model.SuitClub, model.RankThree)},
		model.TrickPlay{PlayerID: "b", Card: card(model.SuitDiamond, model.RankAce)},
		model.TrickPlay{PlayerID: "c", Card: card(model.SuitClub, model.RankTwo)},
	)

	assert.Equal(t, model.PlayerID("a"), ResolveWinner(tr, model.SuitSpade))
}

func TestResolveWinnerEmptyTrick(t *testing.T) {
	assert.Equal(t, model.PlayerID(""), ResolveWinner(model.Trick{}, model.SuitSpade))
}
