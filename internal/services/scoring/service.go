// Package scoring converts round results into points.
//
// The formula: an exact bid pays a flat bonus plus two points per trick
// bid; any miss scores zero for the round.
package scoring

import "github.com/mattrk/trickhall/internal/model"

const (
	// ExactBidBonus is the flat reward for winning exactly as many tricks as bid
	ExactBidBonus = 10
	// PointsPerBidTrick is the per-trick reward on an exact bid
	PointsPerBidTrick = 2
)

// Service computes round scores and final standings
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// RoundScore returns the points earned for a round given the player's bid
// and the tricks they actually won
func (s *Service) RoundScore(bid, tricksWon int) int {
	if bid == tricksWon {
		return ExactBidBonus + PointsPerBidTrick*bid
	}
	return 0
}

// ApplyRoundScores adds each player's round score to their cumulative
// total and clears their per-round state
func (s *Service) ApplyRoundScores(g *model.Game) {
	for i := range g.Players {
		p := &g.Players[i]
		bid := 0
		if p.CurrentBet != nil {
			bid = *p.CurrentBet
		}
		p.Score += s.RoundScore(bid, p.TricksWon)
		p.ResetRound()
	}
}

// DetermineWinner returns the player with the highest cumulative score,
// or empty on a tie for first
func (s *Service) DetermineWinner(players []model.Player) model.PlayerID {
	if len(players) == 0 {
		return ""
	}

	best := players[0]
	tied := false
	for _, p := range players[1:] {
		if p.Score > best.Score {
			best = p
			tied = false
		} else if p.Score == best.Score {
			tied = true
		}
	}
	if tied {
		return ""
	}
	return best.ID
}
