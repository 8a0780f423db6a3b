package handler

import (
	"net/http"

	"github.com/mattrk/trickhall/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeInvalidConfig       = apierr.CodeInvalidConfig
	CodeGameNotFound        = apierr.CodeGameNotFound
	CodePlayerNotInGame     = apierr.CodePlayerNotInGame
	CodeGameFull            = apierr.CodeGameFull
	CodeGameAlreadyStarted  = apierr.CodeGameAlreadyStarted
	CodeWrongPhase          = apierr.CodeWrongPhase
	CodeNotHost             = apierr.CodeNotHost
	CodeNotYourTurn         = apierr.CodeNotYourTurn
	CodePlayersNotReady     = apierr.CodePlayersNotReady
	CodeInsufficientPlayers = apierr.CodeInsufficientPlayers
	CodeInvalidBet          = apierr.CodeInvalidBet
	CodeBetSumForbidden     = apierr.CodeBetSumForbidden
	CodeCardNotInHand       = apierr.CodeCardNotInHand
	CodeMustFollowSuit      = apierr.CodeMustFollowSuit
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
