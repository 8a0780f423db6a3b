package model

import "time"

// GameCode is the uppercase identifier players use to join a game
type GameCode string

// GamePhase represents the current phase of a game
type GamePhase string

const (
	GamePhaseLobby    GamePhase = "lobby"    // Waiting for players to ready up
	GamePhaseBetting  GamePhase = "betting"  // Players bidding on tricks
	GamePhasePlaying  GamePhase = "playing"  // Tricks being played
	GamePhaseFinished GamePhase = "finished" // Final round scored, terminal
)

// MaxPlayers caps table size so every configuration down to one card per
// player remains dealable
const MaxPlayers = 10

// Settings holds the host-chosen game configuration
type Settings struct {
	InitialCards int `json:"initial_cards"`
}

// Round holds the parameters of the round in progress
type Round struct {
	Number         int  `json:"number"` // 1-based
	TotalRounds    int  `json:"total_rounds"`
	CardsPerPlayer int  `json:"cards_per_player"`
	TrumpSuit      Suit `json:"trump_suit"`
	DealerIndex    int  `json:"dealer_index"`
}

// TrickPlay is one card played into a trick
type TrickPlay struct {
	PlayerID PlayerID `json:"player_id"`
	Card     Card     `json:"card"`
}

// Trick is the in-progress trick. LeadSuit is nil before the first play.
type Trick struct {
	LeadSuit *Suit       `json:"lead_suit"`
	Plays    []TrickPlay `json:"plays"`
}

// AddPlay appends a play; the first play of a trick fixes the lead suit
func (t *Trick) AddPlay(playerID PlayerID, card Card) {
	if len(t.Plays) == 0 {
		suit := card.Suit
		t.LeadSuit = &suit
	}
	t.Plays = append(t.Plays, TrickPlay{PlayerID: playerID, Card: card})
}

// IsComplete reports whether every seat has played into the trick
func (t *Trick) IsComplete(numPlayers int) bool {
	return len(t.Plays) >= numPlayers
}

// ResolvedTrick is a completed trick kept for the round's audit trail
type ResolvedTrick struct {
	Plays  []TrickPlay `json:"plays"`
	Winner PlayerID    `json:"winner"`
}

// Game is the full state of one match. It is the unit of persistence:
// every action rewrites the whole aggregate.
type Game struct {
	Code             GameCode        `json:"code"`
	Phase            GamePhase       `json:"phase"`
	Players          []Player        `json:"players"` // seat order is turn order
	CurrentTurnIndex int             `json:"current_turn_index"`
	Round            *Round          `json:"round"` // nil in lobby
	Trick            Trick           `json:"trick"`
	TrickHistory     []ResolvedTrick `json:"trick_history"`
	Universe         []Card          `json:"universe"` // undealt cards still in play this match
	Settings         Settings        `json:"settings"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// GetPlayer returns the player with the given ID, or nil if not seated
func (g *Game) GetPlayer(id PlayerID) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// PlayerIndex returns the seat index of the given player, or -1
func (g *Game) PlayerIndex(id PlayerID) int {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	if g.CurrentTurnIndex < 0 || g.CurrentTurnIndex >= len(g.Players) {
		return nil
	}
	return &g.Players[g.CurrentTurnIndex]
}

// GetHost returns the host player, or nil if none
func (g *Game) GetHost() *Player {
	for i := range g.Players {
		if g.Players[i].IsHost {
			return &g.Players[i]
		}
	}
	return nil
}

// AllReady reports whether every seated player has readied up
func (g *Game) AllReady() bool {
	for i := range g.Players {
		if !g.Players[i].IsReady {
			return false
		}
	}
	return len(g.Players) > 0
}

// AllHandsEmpty reports whether every player has played out their hand
func (g *Game) AllHandsEmpty() bool {
	for i := range g.Players {
		if len(g.Players[i].Hand) > 0 {
			return false
		}
	}
	return true
}

// IsDealerTurn reports whether the acting seat is the round's dealer
func (g *Game) IsDealerTurn() bool {
	return g.Round != nil && g.CurrentTurnIndex == g.Round.DealerIndex
}

// SumOfBets returns the total of all submitted bets this round
func (g *Game) SumOfBets() int {
	sum := 0
	for i := range g.Players {
		if g.Players[i].CurrentBet != nil {
			sum += *g.Players[i].CurrentBet
		}
	}
	return sum
}
