package request

// CreateGameRequest is the body for POST /games
type CreateGameRequest struct {
	DisplayName string `json:"display_name"`
}

// JoinGameRequest is the body for POST /games/{code}/join
type JoinGameRequest struct {
	DisplayName string `json:"display_name"`
}

// LeaveGameRequest is the body for POST /games/{code}/leave
type LeaveGameRequest struct {
	PlayerID string `json:"player_id"`
}

// ActionRequest is the body for POST /games/{code}/actions. Action is one
// of TOGGLE_READY, START_GAME, SUBMIT_BET, PLAY_CARD; the optional fields
// belong to the actions that carry them.
type ActionRequest struct {
	Action   string `json:"action"`
	PlayerID string `json:"player_id"`

	// START_GAME
	InitialCards *int `json:"initial_cards,omitempty"`

	// SUBMIT_BET
	Bet *int `json:"bet,omitempty"`

	// PLAY_CARD: card id matched against the player's hand
	Card string `json:"card,omitempty"`
}
