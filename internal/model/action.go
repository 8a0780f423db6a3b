package model

// ActionType is the wire name of a player action
type ActionType string

const (
	ActionToggleReady ActionType = "TOGGLE_READY"
	ActionStartGame   ActionType = "START_GAME"
	ActionSubmitBet   ActionType = "SUBMIT_BET"
	ActionPlayCard    ActionType = "PLAY_CARD"
)

// Action is the closed set of moves a player can submit. The dispatcher
// type-switches over the concrete types, so an unhandled action is a
// compile-visible gap rather than a silent no-op.
type Action interface {
	Type() ActionType
}

// ToggleReady flips the acting player's ready flag in the lobby
type ToggleReady struct{}

func (ToggleReady) Type() ActionType { return ActionToggleReady }

// StartGame begins round 1; only valid from the host in the lobby
type StartGame struct {
	InitialCards int
}

func (StartGame) Type() ActionType { return ActionStartGame }

// SubmitBet records the acting player's bid for the round
type SubmitBet struct {
	Bet int
}

func (SubmitBet) Type() ActionType { return ActionSubmitBet }

// PlayCard plays the identified card from the acting player's hand
type PlayCard struct {
	CardID string
}

func (PlayCard) Type() ActionType { return ActionPlayCard }
