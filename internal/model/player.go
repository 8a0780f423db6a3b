package model

import "time"

// PlayerID uniquely identifies a player within a game
type PlayerID string

// Player is a seat at the table. Hand, CurrentBet and TricksWon are
// per-round state; Score accumulates across rounds.
type Player struct {
	ID          PlayerID  `json:"id"`
	DisplayName string    `json:"display_name"`
	IsHost      bool      `json:"is_host"`
	IsReady     bool      `json:"is_ready"`
	Hand        []Card    `json:"hand"`
	CurrentBet  *int      `json:"current_bet"`
	TricksWon   int       `json:"tricks_won"`
	Score       int       `json:"score"`
	JoinedAt    time.Time `json:"joined_at"`
}

// HasBet reports whether the player has submitted a bet this round
func (p *Player) HasBet() bool {
	return p.CurrentBet != nil
}

// ResetRound clears the player's per-round state
func (p *Player) ResetRound() {
	p.CurrentBet = nil
	p.TricksWon = 0
}

// RemoveCard removes the card with the given ID from the player's hand.
// Returns false if the card is not held.
func (p *Player) RemoveCard(id string) (Card, bool) {
	idx := FindCard(p.Hand, id)
	if idx < 0 {
		return Card{}, false
	}
	card := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	return card, true
}
