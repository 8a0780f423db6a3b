package round

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mattrk/trickhall/internal/dependencies/mocks"
	"github.com/mattrk/trickhall/internal/model"
	"github.com/mattrk/trickhall/internal/services/deck"
	"github.com/mattrk/trickhall/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	random     *mocks.MockRandom
	controller *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.controller = NewController(deck.New(s.random), testutil.NopLogger())
}

func (s *ControllerSuite) newGame(numPlayers, initialCards int) *model.Game {
	g := &model.Game{
		Code:      "GAME01",
		Phase:     model.GamePhaseBetting,
		Universe:  deck.BuildStandardDeck(),
		Settings:  model.Settings{InitialCards: initialCards},
		CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	for i := 0; i < numPlayers; i++ {
		g.Players = append(g.Players, model.Player{
			ID:     model.PlayerID(string(rune('a' + i))),
			IsHost: i == 0,
		})
	}
	return g
}

func (s *ControllerSuite) TestTrumpForRoundCycles() {
	s.Equal(model.SuitSpade, TrumpForRound(1))
	s.Equal(model.SuitHeart, TrumpForRound(2))
	s.Equal(model.SuitDiamond, TrumpForRound(3))
	s.Equal(model.SuitClub, TrumpForRound(4))
	s.Equal(model.SuitSpade, TrumpForRound(5))
	s.Equal(model.SuitHeart, TrumpForRound(6))
}

func (s *ControllerSuite) TestStartRoundDealsFourPlayersSevenCards() {
	g := s.newGame(4, 7)

	err := s.controller.StartRound(g, 1, 7, 0)
	s.Require().NoError(err)

	// 52 - 4*7 = 24 discarded
	s.Len(g.Universe, 28)
	for i := range g.Players {
		s.Len(g.Players[i].Hand, 7)
	}
	s.Equal(7, g.Round.TotalRounds)
	s.Equal(1, g.Round.Number)
	s.Equal(model.SuitSpade, g.Round.TrumpSuit)
	s.Equal(0, g.Round.DealerIndex)
	s.Equal(1, g.CurrentTurnIndex)
}

func (s *ControllerSuite) TestStartRoundHandsAreDisjointAndFromUniverse() {
	g := s.newGame(4, 7)

	err := s.controller.StartRound(g, 1, 7, 2)
	s.Require().NoError(err)

	inUniverse := make(map[string]bool)
	for _, c := range g.Universe {
		inUniverse[c.ID] = true
	}

	seen := make(map[string]bool)
	for i := range g.Players {
		for _, c := range g.Players[i].Hand {
			s.False(seen[c.ID], "card %s dealt twice", c.ID)
			s.True(inUniverse[c.ID], "card %s dealt from outside universe", c.ID)
			seen[c.ID] = true
		}
	}
	s.Len(seen, 28)
}

func (s *ControllerSuite) TestStartRoundOneDiscardsWeakestCards() {
	g := s.newGame(4, 7)

	err := s.controller.StartRound(g, 1, 7, 0)
	s.Require().NoError(err)

	// The 24 weakest cards are ranks 2-7 of every suit; the survivors all
	// rank 8 or higher
	for _, c := range g.Universe {
		s.GreaterOrEqual(int(c.Rank), int(model.RankEight))
	}
}

func (s *ControllerSuite) TestStartRoundResetsPlayerRoundState() {
	g := s.newGame(3, 5)
	bet := 2
	g.Players[1].CurrentBet = &bet
	g.Players[1].TricksWon = 3

	err := s.controller.StartRound(g, 1, 5, 1)
	s.Require().NoError(err)

	for i := range g.Players {
		s.Nil(g.Players[i].CurrentBet)
		s.Zero(g.Players[i].TricksWon)
	}
}

func (s *ControllerSuite) TestStartRoundSetsFirstActorLeftOfDealer() {
	g := s.newGame(4, 5)

	err := s.controller.StartRound(g, 1, 5, 3)
	s.Require().NoError(err)
	s.Equal(0, g.CurrentTurnIndex)
}

func (s *ControllerSuite) TestLaterRoundShrinksUniverseStrictly() {
	g := s.newGame(4, 7)
	s.Require().NoError(s.controller.StartRound(g, 1, 7, 0))

	sizes := []int{len(g.Universe)}
	for round, cards := 2, 6; cards >= 1; round, cards = round+1, cards-1 {
		s.Require().NoError(s.controller.StartRound(g, round, cards, (round-1)%4))
		sizes = append(sizes, len(g.Universe))
	}

	for i := 1; i < len(sizes); i++ {
		s.Less(sizes[i], sizes[i-1], "universe must shrink round over round")
	}
	s.Equal(4, sizes[len(sizes)-1])
}

func (s *ControllerSuite) TestLaterRoundDealsFromShrunkUniverseOnly() {
	g := s.newGame(2, 3)
	s.Require().NoError(s.controller.StartRound(g, 1, 3, 0))

	before := make(map[string]bool)
	for _, c := range g.Universe {
		before[c.ID] = true
	}

	s.Require().NoError(s.controller.StartRound(g, 2, 2, 1))
	for _, c := range g.Universe {
		s.True(before[c.ID], "card %s returned to the universe", c.ID)
	}
	s.Len(g.Universe, 4)
}

func (s *ControllerSuite) TestStartRoundClearsTrickState() {
	g := s.newGame(2, 2)
	lead := model.SuitHeart
	g.Trick = model.Trick{
		LeadSuit: &lead,
		Plays:    []model.TrickPlay{{PlayerID: "a", Card: model.NewCard(model.SuitHeart, model.RankTen)}},
	}
	g.TrickHistory = []model.ResolvedTrick{{Winner: "a"}}

	err := s.controller.StartRound(g, 1, 2, 0)
	s.Require().NoError(err)
	s.Nil(g.Trick.LeadSuit)
	s.Empty(g.Trick.Plays)
	s.Nil(g.TrickHistory)
}

func (s *ControllerSuite) TestStartRoundRejectsOversizedDeal() {
	g := s.newGame(4, 14)

	err := s.controller.StartRound(g, 1, 14, 0)
	s.ErrorIs(err, model.ErrInvalidConfiguration)
}
