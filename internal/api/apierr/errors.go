package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mattrk/trickhall/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidConfig       = "INVALID_CONFIGURATION"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodePlayerNotInGame     = "PLAYER_NOT_IN_GAME"
	CodeGameFull            = "GAME_FULL"
	CodeGameAlreadyStarted  = "GAME_ALREADY_STARTED"
	CodeWrongPhase          = "WRONG_PHASE"
	CodeNotHost             = "NOT_HOST"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodePlayersNotReady     = "PLAYERS_NOT_READY"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeInvalidBet          = "INVALID_BET"
	CodeBetSumForbidden     = "BET_SUM_FORBIDDEN"
	CodeCardNotInHand       = "CARD_NOT_IN_HAND"
	CodeMustFollowSuit      = "MUST_FOLLOW_SUIT"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrPlayerNotInGame), errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusForbidden, APIError{CodePlayerNotInGame, "Player is not part of this game"}}
	case errors.Is(err, model.ErrGameFull):
		return &httpError{http.StatusConflict, APIError{CodeGameFull, "Game is full"}}
	case errors.Is(err, model.ErrGameAlreadyStarted), errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameAlreadyStarted, "Game has already started"}}
	case errors.Is(err, model.ErrWrongPhase), errors.Is(err, model.ErrUnknownAction):
		return &httpError{http.StatusConflict, APIError{CodeWrongPhase, "Action not valid in current phase"}}
	case errors.Is(err, model.ErrNotHost):
		return &httpError{http.StatusForbidden, APIError{CodeNotHost, "Only the host can perform this action"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrPlayersNotReady):
		return &httpError{http.StatusConflict, APIError{CodePlayersNotReady, "Not all players are ready"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrInvalidConfiguration), errors.Is(err, model.ErrInvalidDiscardCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, "Invalid game configuration"}}
	case errors.Is(err, model.ErrInvalidBet):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBet, "Bet out of range"}}
	case errors.Is(err, model.ErrForbiddenBetSum):
		return &httpError{http.StatusBadRequest, APIError{CodeBetSumForbidden, "Dealer bet would let every bid succeed"}}
	case errors.Is(err, model.ErrCardNotInHand):
		return &httpError{http.StatusBadRequest, APIError{CodeCardNotInHand, "Card is not in your hand"}}
	case errors.Is(err, model.ErrMustFollowSuit):
		return &httpError{http.StatusBadRequest, APIError{CodeMustFollowSuit, "You must follow the lead suit"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
