package round

import (
	"log/slog"

	"github.com/mattrk/trickhall/internal/model"
	"github.com/mattrk/trickhall/internal/services/deck"
)

// trumpCycle maps round numbers onto suits; round 1 is spades, then the
// cycle repeats every four rounds
var trumpCycle = []model.Suit{
	model.SuitSpade,
	model.SuitHeart,
	model.SuitDiamond,
	model.SuitClub,
}

// TrumpForRound returns the trump suit for a 1-based round number.
// The mapping is deterministic so every client derives the same suit.
func TrumpForRound(roundNumber int) model.Suit {
	return trumpCycle[(roundNumber-1)%len(trumpCycle)]
}

// Controller prepares each round: shrinking the universe, dealing hands
// and setting the round parameters on the game aggregate
type Controller struct {
	deckService *deck.Service
	logger      *slog.Logger
}

// NewController creates a new round Controller
func NewController(deckService *deck.Service, logger *slog.Logger) *Controller {
	return &Controller{
		deckService: deckService,
		logger:      logger,
	}
}

// StartRound shrinks the universe to exactly cardsPerPlayer cards per seat,
// deals from a shuffled working copy, resets per-round player state and
// installs the new round parameters. The universe held on the game is the
// match-scoped survivor set; the shuffle order lives only in this call.
func (c *Controller) StartRound(g *model.Game, roundNumber, cardsPerPlayer, dealerIndex int) error {
	numPlayers := len(g.Players)
	k := len(g.Universe) - cardsPerPlayer*numPlayers
	if k < 0 {
		return model.ErrInvalidConfiguration
	}

	var (
		universe []model.Card
		err      error
	)
	if roundNumber == 1 {
		universe, err = c.deckService.DiscardLowest(g.Universe, k)
	} else {
		universe, err = c.deckService.DiscardRandom(g.Universe, k)
	}
	if err != nil {
		return err
	}

	working := c.deckService.Shuffle(universe)
	for i := range g.Players {
		hand := make([]model.Card, cardsPerPlayer)
		copy(hand, working[i*cardsPerPlayer:(i+1)*cardsPerPlayer])
		g.Players[i].Hand = hand
		g.Players[i].ResetRound()
	}

	g.Universe = universe
	g.Round = &model.Round{
		Number:         roundNumber,
		TotalRounds:    g.Settings.InitialCards,
		CardsPerPlayer: cardsPerPlayer,
		TrumpSuit:      TrumpForRound(roundNumber),
		DealerIndex:    dealerIndex,
	}
	g.CurrentTurnIndex = (dealerIndex + 1) % numPlayers
	g.Trick = model.Trick{}
	g.TrickHistory = nil

	c.logger.Info("round started",
		slog.String("game_code", string(g.Code)),
		slog.Int("round", roundNumber),
		slog.Int("cards_per_player", cardsPerPlayer),
		slog.Int("discarded", k),
		slog.String("trump", string(g.Round.TrumpSuit)),
		slog.Int("dealer_index", dealerIndex),
	)

	return nil
}
