package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mattrk/trickhall/internal/api/request"
	"github.com/mattrk/trickhall/internal/api/response"
	"github.com/mattrk/trickhall/internal/model"
	"github.com/mattrk/trickhall/internal/services/game"
	"github.com/mattrk/trickhall/internal/services/scoring"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	scoringService *scoring.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface, scoringService *scoring.Service) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		scoringService: scoringService,
	}
}

// gameCode extracts the uppercase game code from the route
func gameCode(r *http.Request) model.GameCode {
	return model.GameCode(strings.ToUpper(mux.Vars(r)["code"]))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		WriteError(w, NewInvalidRequestError("display_name is required"))
		return
	}

	g, playerID, err := h.gameController.CreateGame(r.Context(), req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.CreateGameResponse{
		Game:     response.GameFromModel(g, playerID, ""),
		PlayerID: string(playerID),
	}
	response.JSON(w, http.StatusCreated, resp)
}

// Join handles POST /api/v1/games/{code}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		WriteError(w, NewInvalidRequestError("display_name is required"))
		return
	}

	g, playerID, err := h.gameController.JoinGame(r.Context(), gameCode(r), req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.JoinGameResponse{
		Game:     response.GameFromModel(g, playerID, ""),
		PlayerID: string(playerID),
	}
	response.JSON(w, http.StatusOK, resp)
}

// Leave handles POST /api/v1/games/{code}/leave
func (h *GameHandler) Leave(w http.ResponseWriter, r *http.Request) {
	var req request.LeaveGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.gameController.LeaveGame(r.Context(), gameCode(r), model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Get handles GET /api/v1/games/{code}. The optional player_id query
// parameter selects whose hand is revealed in the response.
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	viewerID := model.PlayerID(r.URL.Query().Get("player_id"))
	response.JSON(w, http.StatusOK, response.GameFromModel(g, viewerID, h.winner(g)))
}

// Action handles POST /api/v1/games/{code}/actions
func (h *GameHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req request.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	action, err := parseAction(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	playerID := model.PlayerID(req.PlayerID)
	g, err := h.gameController.Apply(r.Context(), gameCode(r), playerID, action)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.ActionResponse{
		Success: true,
		Game:    response.GameFromModel(g, playerID, h.winner(g)),
	}
	response.JSON(w, http.StatusOK, resp)
}

// parseAction converts the wire action into its typed form, validating
// that the action-specific fields are present
func parseAction(req request.ActionRequest) (model.Action, error) {
	switch model.ActionType(req.Action) {
	case model.ActionToggleReady:
		return model.ToggleReady{}, nil
	case model.ActionStartGame:
		if req.InitialCards == nil {
			return nil, NewInvalidRequestError("initial_cards is required for START_GAME")
		}
		return model.StartGame{InitialCards: *req.InitialCards}, nil
	case model.ActionSubmitBet:
		if req.Bet == nil {
			return nil, NewInvalidRequestError("bet is required for SUBMIT_BET")
		}
		return model.SubmitBet{Bet: *req.Bet}, nil
	case model.ActionPlayCard:
		if req.Card == "" {
			return nil, NewInvalidRequestError("card is required for PLAY_CARD")
		}
		return model.PlayCard{CardID: req.Card}, nil
	default:
		return nil, NewInvalidRequestError("unknown action: " + req.Action)
	}
}

// winner reports the match winner for finished games
func (h *GameHandler) winner(g *model.Game) model.PlayerID {
	if g.Phase != model.GamePhaseFinished {
		return ""
	}
	return h.scoringService.DetermineWinner(g.Players)
}
