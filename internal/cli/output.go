package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case CreateGameResult:
		o.printGame(v.Game)
		fmt.Printf("\nYour player ID: %s (saved to session)\n", v.PlayerID)
	case JoinGameResult:
		o.printGame(v.Game)
		fmt.Printf("\nYour player ID: %s (saved to session)\n", v.PlayerID)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Card response type (matches API)
type Card struct {
	ID   string `json:"id"`
	Suit string `json:"suit"`
	Rank int    `json:"rank"`
}

// Seat response type
type Seat struct {
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

// TrickPlay response type
type TrickPlay struct {
	PlayerID string `json:"player_id"`
	Card     Card   `json:"card"`
}

// Trick response type
type Trick struct {
	LeadSuit *string     `json:"lead_suit"`
	Plays    []TrickPlay `json:"plays"`
}

// Round response type
type Round struct {
	Number         int    `json:"number"`
	TotalRounds    int    `json:"total_rounds"`
	CardsPerPlayer int    `json:"cards_per_player"`
	TrumpSuit      string `json:"trump_suit"`
	DealerID       string `json:"dealer_id"`
}

// Game response type
type Game struct {
	Code          string  `json:"code"`
	Phase         string  `json:"phase"`
	Players       []Seat  `json:"players"`
	CurrentTurnID string  `json:"current_turn_id,omitempty"`
	Round         *Round  `json:"round"`
	Trick         *Trick  `json:"trick,omitempty"`
	UniverseSize  int     `json:"universe_size"`
	Winner        *string `json:"winner,omitempty"`
}

// CreateGameResult response type
type CreateGameResult struct {
	Game     Game   `json:"game"`
	PlayerID string `json:"player_id"`
}

// JoinGameResult response type
type JoinGameResult struct {
	Game     Game   `json:"game"`
	PlayerID string `json:"player_id"`
}

// ActionResult response type
type ActionResult struct {
	Success bool `json:"success"`
	Game    Game `json:"game"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.Code)
	fmt.Printf("Phase: %s\n", g.Phase)

	if g.Round != nil {
		fmt.Printf("Round: %d of %d (%d cards, trump %s)\n",
			g.Round.Number, g.Round.TotalRounds, g.Round.CardsPerPlayer, g.Round.TrumpSuit)
		fmt.Printf("Dealer: %s\n", g.Round.DealerID)
	}
	if g.CurrentTurnID != "" {
		fmt.Printf("Waiting on: %s\n", g.CurrentTurnID)
	}

	fmt.Printf("Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		tags := []string{}
		if p.IsHost {
			tags = append(tags, "host")
		}
		if g.Phase == "lobby" && p.IsReady {
			tags = append(tags, "ready")
		}
		tagStr := ""
		if len(tags) > 0 {
			tagStr = " [" + strings.Join(tags, ", ") + "]"
		}

		fmt.Printf("  - %s (%s)%s", p.DisplayName, p.ID, tagStr)
		if g.Phase == "betting" || g.Phase == "playing" {
			betStr := "-"
			if p.CurrentBet != nil {
				betStr = fmt.Sprintf("%d", *p.CurrentBet)
			}
			fmt.Printf(" bet=%s tricks=%d", betStr, p.TricksWon)
		}
		fmt.Printf(" score=%d\n", p.Score)

		if len(p.Hand) > 0 {
			fmt.Printf("    hand: %s\n", formatCards(p.Hand))
		}
	}

	if g.Trick != nil && len(g.Trick.Plays) > 0 {
		fmt.Println("Current trick:")
		for _, play := range g.Trick.Plays {
			fmt.Printf("  %s played %s\n", play.PlayerID, play.Card.ID)
		}
	}

	if g.Phase == "playing" || g.Phase == "betting" {
		fmt.Printf("Cards left in universe: %d\n", g.UniverseSize)
	}

	if g.Winner != nil {
		fmt.Printf("\nWinner: %s\n", *g.Winner)
	}
}

func formatCards(cards []Card) string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return strings.Join(ids, " ")
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
