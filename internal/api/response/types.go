package response

import (
	"time"

	"github.com/mattrk/trickhall/internal/model"
)

// Card represents a card in API responses
type Card struct {
	ID   string `json:"id"`
	Suit string `json:"suit"`
	Rank int    `json:"rank"`
}

// CardFromModel converts a model.Card
func CardFromModel(c model.Card) Card {
	return Card{
		ID:   c.ID,
		Suit: string(c.Suit),
		Rank: int(c.Rank),
	}
}

func cardsFromModel(cards []model.Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = CardFromModel(c)
	}
	return out
}

// Player represents a seat in API responses. Hand is only populated for
// the viewing player; everyone else gets a card count.
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsHost      bool   `json:"is_host"`
	IsReady     bool   `json:"is_ready"`
	HandCount   int    `json:"hand_count"`
	Hand        []Card `json:"hand,omitempty"`
	CurrentBet  *int   `json:"current_bet"`
	TricksWon   int    `json:"tricks_won"`
	Score       int    `json:"score"`
}

// TrickPlay represents one card played into the current trick
type TrickPlay struct {
	PlayerID string `json:"player_id"`
	Card     Card   `json:"card"`
}

// Trick represents the in-progress trick
type Trick struct {
	LeadSuit *string     `json:"lead_suit"`
	Plays    []TrickPlay `json:"plays"`
}

// Round represents the round parameters
type Round struct {
	Number         int    `json:"number"`
	TotalRounds    int    `json:"total_rounds"`
	CardsPerPlayer int    `json:"cards_per_player"`
	TrumpSuit      string `json:"trump_suit"`
	DealerIndex    int    `json:"dealer_index"`
	DealerID       string `json:"dealer_id"`
}

// Game represents a game in API responses
type Game struct {
	Code             string    `json:"code"`
	Phase            string    `json:"phase"`
	Players          []Player  `json:"players"`
	CurrentTurnIndex int       `json:"current_turn_index"`
	CurrentTurnID    string    `json:"current_turn_id,omitempty"`
	Round            *Round    `json:"round"`
	Trick            *Trick    `json:"trick,omitempty"`
	UniverseSize     int       `json:"universe_size"`
	InitialCards     int       `json:"initial_cards,omitempty"`
	Winner           *string   `json:"winner,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// GameFromModel converts a model.Game to its API shape from the given
// viewer's perspective: only the viewer's own hand is revealed.
func GameFromModel(g *model.Game, viewerID model.PlayerID, winner model.PlayerID) Game {
	players := make([]Player, len(g.Players))
	for i := range g.Players {
		p := &g.Players[i]
		players[i] = Player{
			ID:          string(p.ID),
			DisplayName: p.DisplayName,
			IsHost:      p.IsHost,
			IsReady:     p.IsReady,
			HandCount:   len(p.Hand),
			CurrentBet:  p.CurrentBet,
			TricksWon:   p.TricksWon,
			Score:       p.Score,
		}
		if p.ID == viewerID {
			players[i].Hand = cardsFromModel(p.Hand)
		}
	}

	var roundResp *Round
	if g.Round != nil {
		roundResp = &Round{
			Number:         g.Round.Number,
			TotalRounds:    g.Round.TotalRounds,
			CardsPerPlayer: g.Round.CardsPerPlayer,
			TrumpSuit:      string(g.Round.TrumpSuit),
			DealerIndex:    g.Round.DealerIndex,
			DealerID:       string(g.Players[g.Round.DealerIndex].ID),
		}
	}

	var trickResp *Trick
	if g.Phase == model.GamePhasePlaying {
		plays := make([]TrickPlay, len(g.Trick.Plays))
		for i, p := range g.Trick.Plays {
			plays[i] = TrickPlay{PlayerID: string(p.PlayerID), Card: CardFromModel(p.Card)}
		}
		var lead *string
		if g.Trick.LeadSuit != nil {
			l := string(*g.Trick.LeadSuit)
			lead = &l
		}
		trickResp = &Trick{LeadSuit: lead, Plays: plays}
	}

	var currentTurnID string
	if g.Phase == model.GamePhaseBetting || g.Phase == model.GamePhasePlaying {
		if cp := g.CurrentPlayer(); cp != nil {
			currentTurnID = string(cp.ID)
		}
	}

	var winnerResp *string
	if winner != "" {
		w := string(winner)
		winnerResp = &w
	}

	return Game{
		Code:             string(g.Code),
		Phase:            string(g.Phase),
		Players:          players,
		CurrentTurnIndex: g.CurrentTurnIndex,
		CurrentTurnID:    currentTurnID,
		Round:            roundResp,
		Trick:            trickResp,
		UniverseSize:     len(g.Universe),
		InitialCards:     g.Settings.InitialCards,
		Winner:           winnerResp,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

// CreateGameResponse is returned when a game is created
type CreateGameResponse struct {
	Game     Game   `json:"game"`
	PlayerID string `json:"player_id"`
}

// JoinGameResponse is returned when a player joins a game
type JoinGameResponse struct {
	Game     Game   `json:"game"`
	PlayerID string `json:"player_id"`
}

// ActionResponse is returned for every accepted action
type ActionResponse struct {
	Success bool `json:"success"`
	Game    Game `json:"game"`
}
