package model

import "errors"

// Common errors used across the application
var (
	// Game lookup / membership errors
	ErrGameNotFound    = errors.New("game not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrPlayerNotInGame = errors.New("player is not part of this game")
	ErrGameFull        = errors.New("game is full")

	// Phase errors
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrGameFinished       = errors.New("game is finished")
	ErrWrongPhase         = errors.New("action not valid in current phase")
	ErrUnknownAction      = errors.New("unknown action")

	// Lobby / start errors
	ErrNotHost              = errors.New("player is not the host")
	ErrInsufficientPlayers  = errors.New("insufficient players to start game")
	ErrPlayersNotReady      = errors.New("not all players are ready")
	ErrInvalidConfiguration = errors.New("invalid game configuration")

	// Turn errors
	ErrNotPlayerTurn = errors.New("not this player's turn")

	// Legality errors
	ErrInvalidBet      = errors.New("bet out of range")
	ErrForbiddenBetSum = errors.New("dealer bet would make bets sum to cards per player")
	ErrCardNotInHand   = errors.New("card is not in player's hand")
	ErrMustFollowSuit  = errors.New("must follow the lead suit")

	// Deck errors
	ErrInvalidDiscardCount = errors.New("invalid discard count")
)
