package game

import (
	"context"
	"log/slog"

	"github.com/mattrk/trickhall/internal/dependencies/clock"
	"github.com/mattrk/trickhall/internal/dependencies/random"
	"github.com/mattrk/trickhall/internal/model"
	"github.com/mattrk/trickhall/internal/services/deck"
	"github.com/mattrk/trickhall/internal/services/round"
	"github.com/mattrk/trickhall/internal/services/scoring"
	"github.com/mattrk/trickhall/internal/services/trick"
	"github.com/mattrk/trickhall/internal/storage"
)

const (
	// GameCodeLength is the length of generated game codes
	GameCodeLength = 6
	// GameCodeAlphabet is the characters used in game codes (avoid confusing chars)
	GameCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// PlayerIDLength is the length of generated player IDs
	PlayerIDLength = 12
	// PlayerIDAlphabet is the characters used in player IDs
	PlayerIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// MinPlayers is the smallest table that can play a round
	MinPlayers = 2
	// DeckSize bounds initial cards times players
	DeckSize = 52
)

// Controller owns the game state machine: lobby membership and the action
// dispatcher that advances a game through betting, play and scoring.
// Every action is applied under a per-game lock: read the aggregate, run
// the reducer, persist the whole aggregate or nothing.
type Controller struct {
	storage         storage.Storage
	roundController *round.Controller
	scoringService  *scoring.Service
	clock           clock.Clock
	random          random.Random
	logger          *slog.Logger
	locks           *keyedMutex
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	roundController *round.Controller,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:         storage,
		roundController: roundController,
		scoringService:  scoringService,
		clock:           clock,
		random:          random,
		logger:          logger,
		locks:           newKeyedMutex(),
	}
}

// CreateGame creates a new game in the lobby phase with the creating
// player seated as host
func (c *Controller) CreateGame(ctx context.Context, displayName string) (*model.Game, model.PlayerID, error) {
	now := c.clock.Now()

	// Generate unique game code
	var code model.GameCode
	for {
		code = model.GameCode(c.random.String(GameCodeLength, GameCodeAlphabet))
		exists, err := c.storage.GameExists(ctx, code)
		if err != nil {
			return nil, "", err
		}
		if !exists {
			break
		}
	}

	hostID := model.PlayerID(c.random.String(PlayerIDLength, PlayerIDAlphabet))
	g := &model.Game{
		Code:  code,
		Phase: model.GamePhaseLobby,
		Players: []model.Player{
			{
				ID:          hostID,
				DisplayName: displayName,
				IsHost:      true,
				JoinedAt:    now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, "", err
	}

	c.logger.Info("game created",
		slog.String("game_code", string(code)),
		slog.String("host_id", string(hostID)),
	)

	return g, hostID, nil
}

// GetGame retrieves a game by code
func (c *Controller) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return c.storage.GetGame(ctx, code)
}

// JoinGame seats a new player in a lobby-phase game and returns their ID
func (c *Controller) JoinGame(ctx context.Context, code model.GameCode, displayName string) (*model.Game, model.PlayerID, error) {
	unlock := c.locks.Lock(code)
	defer unlock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		return nil, "", err
	}

	if g.Phase != model.GamePhaseLobby {
		return nil, "", model.ErrGameAlreadyStarted
	}
	if len(g.Players) >= model.MaxPlayers {
		return nil, "", model.ErrGameFull
	}

	playerID := model.PlayerID(c.random.String(PlayerIDLength, PlayerIDAlphabet))
	g.Players = append(g.Players, model.Player{
		ID:          playerID,
		DisplayName: displayName,
		JoinedAt:    c.clock.Now(),
	})
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, "", err
	}

	c.logger.Info("player joined",
		slog.String("game_code", string(code)),
		slog.String("player_id", string(playerID)),
		slog.Int("player_count", len(g.Players)),
	)

	return g, playerID, nil
}

// LeaveGame removes a player from a lobby-phase game. If the host leaves,
// the oldest remaining seat becomes host; an emptied game is deleted.
func (c *Controller) LeaveGame(ctx context.Context, code model.GameCode, playerID model.PlayerID) error {
	unlock := c.locks.Lock(code)
	defer unlock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		return err
	}

	if g.Phase != model.GamePhaseLobby {
		return model.ErrGameAlreadyStarted
	}

	idx := g.PlayerIndex(playerID)
	if idx < 0 {
		return model.ErrPlayerNotInGame
	}

	wasHost := g.Players[idx].IsHost
	g.Players = append(g.Players[:idx], g.Players[idx+1:]...)

	if len(g.Players) == 0 {
		return c.storage.DeleteGame(ctx, code)
	}

	if wasHost {
		g.Players[0].IsHost = true
	}
	g.UpdatedAt = c.clock.Now()

	return c.storage.SaveGame(ctx, g)
}

// Apply dispatches one player action against the game. Rejected actions
// leave the persisted state completely untouched; successful actions
// persist the updated aggregate and return it.
func (c *Controller) Apply(ctx context.Context, code model.GameCode, playerID model.PlayerID, action model.Action) (*model.Game, error) {
	unlock := c.locks.Lock(code)
	defer unlock()

	g, err := c.storage.GetGame(ctx, code)
	if err != nil {
		return nil, err
	}

	player := g.GetPlayer(playerID)
	if player == nil {
		return nil, model.ErrPlayerNotInGame
	}

	if g.Phase == model.GamePhaseFinished {
		return nil, model.ErrGameFinished
	}

	switch a := action.(type) {
	case model.ToggleReady:
		err = c.applyToggleReady(g, player)
	case model.StartGame:
		err = c.applyStartGame(g, player, a)
	case model.SubmitBet:
		err = c.applySubmitBet(g, player, a)
	case model.PlayCard:
		err = c.applyPlayCard(g, player, a)
	default:
		err = model.ErrUnknownAction
	}
	if err != nil {
		return nil, err
	}

	g.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("action applied",
		slog.String("game_code", string(code)),
		slog.String("player_id", string(playerID)),
		slog.String("action", string(action.Type())),
		slog.String("phase", string(g.Phase)),
	)

	return g, nil
}

func (c *Controller) applyToggleReady(g *model.Game, player *model.Player) error {
	if g.Phase != model.GamePhaseLobby {
		return model.ErrWrongPhase
	}
	player.IsReady = !player.IsReady
	return nil
}

func (c *Controller) applyStartGame(g *model.Game, player *model.Player, a model.StartGame) error {
	if g.Phase != model.GamePhaseLobby {
		return model.ErrWrongPhase
	}
	if !player.IsHost {
		return model.ErrNotHost
	}
	if len(g.Players) < MinPlayers {
		return model.ErrInsufficientPlayers
	}
	if !g.AllReady() {
		return model.ErrPlayersNotReady
	}
	if a.InitialCards < 1 || a.InitialCards*len(g.Players) > DeckSize {
		return model.ErrInvalidConfiguration
	}

	g.Settings = model.Settings{InitialCards: a.InitialCards}
	g.Universe = deck.BuildStandardDeck()
	for i := range g.Players {
		g.Players[i].Score = 0
	}

	if err := c.roundController.StartRound(g, 1, a.InitialCards, 0); err != nil {
		return err
	}
	g.Phase = model.GamePhaseBetting
	return nil
}

func (c *Controller) applySubmitBet(g *model.Game, player *model.Player, a model.SubmitBet) error {
	if g.Phase != model.GamePhaseBetting {
		return model.ErrWrongPhase
	}
	if g.CurrentPlayer() == nil || g.CurrentPlayer().ID != player.ID {
		return model.ErrNotPlayerTurn
	}
	if a.Bet < 0 || a.Bet > g.Round.CardsPerPlayer {
		return model.ErrInvalidBet
	}

	// The dealer bids last and may not make the bets sum to the number of
	// tricks available, so at least one player must miss their bid
	if g.IsDealerTurn() && g.SumOfBets()+a.Bet == g.Round.CardsPerPlayer {
		return model.ErrForbiddenBetSum
	}

	bet := a.Bet
	player.CurrentBet = &bet

	if g.IsDealerTurn() {
		// All bets are in; play starts left of the dealer
		g.Phase = model.GamePhasePlaying
		g.CurrentTurnIndex = (g.Round.DealerIndex + 1) % len(g.Players)
		g.Trick = model.Trick{}
		return nil
	}

	g.CurrentTurnIndex = (g.CurrentTurnIndex + 1) % len(g.Players)
	return nil
}

func (c *Controller) applyPlayCard(g *model.Game, player *model.Player, a model.PlayCard) error {
	if g.Phase != model.GamePhasePlaying {
		return model.ErrWrongPhase
	}
	if g.CurrentPlayer() == nil || g.CurrentPlayer().ID != player.ID {
		return model.ErrNotPlayerTurn
	}

	idx := model.FindCard(player.Hand, a.CardID)
	if idx < 0 {
		return model.ErrCardNotInHand
	}
	card := player.Hand[idx]

	if err := trick.CheckFollowsSuit(player.Hand, g.Trick.LeadSuit, card); err != nil {
		return err
	}

	player.RemoveCard(a.CardID)
	g.Trick.AddPlay(player.ID, card)

	if !g.Trick.IsComplete(len(g.Players)) {
		g.CurrentTurnIndex = (g.CurrentTurnIndex + 1) % len(g.Players)
		return nil
	}

	winnerID := trick.ResolveWinner(g.Trick, g.Round.TrumpSuit)
	winnerIdx := g.PlayerIndex(winnerID)
	g.Players[winnerIdx].TricksWon++
	g.TrickHistory = append(g.TrickHistory, model.ResolvedTrick{
		Plays:  g.Trick.Plays,
		Winner: winnerID,
	})
	g.Trick = model.Trick{}
	g.CurrentTurnIndex = winnerIdx

	if g.AllHandsEmpty() {
		return c.endRound(g)
	}
	return nil
}

// endRound scores the finished round and either deals the next one or
// finishes the match
func (c *Controller) endRound(g *model.Game) error {
	c.scoringService.ApplyRoundScores(g)

	nextCards := g.Round.CardsPerPlayer - 1
	if nextCards < 1 {
		g.Phase = model.GamePhaseFinished
		c.logger.Info("game finished",
			slog.String("game_code", string(g.Code)),
			slog.Int("rounds_played", g.Round.Number),
			slog.String("winner", string(c.scoringService.DetermineWinner(g.Players))),
		)
		return nil
	}

	nextDealer := (g.Round.DealerIndex + 1) % len(g.Players)
	if err := c.roundController.StartRound(g, g.Round.Number+1, nextCards, nextDealer); err != nil {
		return err
	}
	g.Phase = model.GamePhaseBetting
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, displayName string) (*model.Game, model.PlayerID, error)
	GetGame(ctx context.Context, code model.GameCode) (*model.Game, error)
	JoinGame(ctx context.Context, code model.GameCode, displayName string) (*model.Game, model.PlayerID, error)
	LeaveGame(ctx context.Context, code model.GameCode, playerID model.PlayerID) error
	Apply(ctx context.Context, code model.GameCode, playerID model.PlayerID, action model.Action) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
