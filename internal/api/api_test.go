package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattrk/trickhall/internal/api"
	"github.com/mattrk/trickhall/internal/api/response"
	"github.com/mattrk/trickhall/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		ScoringService: app.ScoringService,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"display_name": "Alice"}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.CreateGameResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Len(t, resp.Game.Code, 6)
	assert.Equal(t, "lobby", resp.Game.Phase)
	assert.NotEmpty(t, resp.PlayerID)
	require.Len(t, resp.Game.Players, 1)
	assert.Equal(t, "Alice", resp.Game.Players[0].DisplayName)
	assert.True(t, resp.Game.Players[0].IsHost)
}

func TestCreateGameRequiresDisplayName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestJoinGame(t *testing.T) {
	ts := newTestServer(t)

	code, _ := createGame(t, ts, "Alice")

	body := map[string]string{"display_name": "Bob"}
	rr := ts.request(http.MethodPost, "/api/v1/games/"+code+"/join", body)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.JoinGameResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.PlayerID)
	assert.Len(t, resp.Game.Players, 2)
	assert.False(t, resp.Game.Players[1].IsHost)
}

func TestJoinUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"display_name": "Bob"}
	rr := ts.request(http.MethodPost, "/api/v1/games/ZZZZZZ/join", body)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestGetGameRedactsOtherHands(t *testing.T) {
	ts := newTestServer(t)

	code, hostID := createGame(t, ts, "Alice")
	bobID := joinGame(t, ts, code, "Bob")

	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": hostID})
	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": bobID})
	submitAction(t, ts, code, map[string]any{"action": "START_GAME", "player_id": hostID, "initial_cards": 3})

	rr := ts.request(http.MethodGet, "/api/v1/games/"+code+"?player_id="+hostID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var g response.Game
	err := json.Unmarshal(rr.Body.Bytes(), &g)
	require.NoError(t, err)

	require.Len(t, g.Players, 2)
	for _, p := range g.Players {
		assert.Equal(t, 3, p.HandCount)
		if p.ID == hostID {
			assert.Len(t, p.Hand, 3)
		} else {
			assert.Empty(t, p.Hand)
		}
	}
}

func TestStartGameRejectedForNonHost(t *testing.T) {
	ts := newTestServer(t)

	code, hostID := createGame(t, ts, "Alice")
	bobID := joinGame(t, ts, code, "Bob")

	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": hostID})
	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": bobID})

	rr := ts.request(http.MethodPost, "/api/v1/games/"+code+"/actions",
		map[string]any{"action": "START_GAME", "player_id": bobID, "initial_cards": 3})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_HOST")
}

func TestJoinAfterStartRejected(t *testing.T) {
	ts := newTestServer(t)

	code, hostID := createGame(t, ts, "Alice")
	bobID := joinGame(t, ts, code, "Bob")

	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": hostID})
	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": bobID})
	submitAction(t, ts, code, map[string]any{"action": "START_GAME", "player_id": hostID, "initial_cards": 3})

	rr := ts.request(http.MethodPost, "/api/v1/games/"+code+"/join", map[string]string{"display_name": "Carol"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_ALREADY_STARTED")
}

func TestUnknownActionRejected(t *testing.T) {
	ts := newTestServer(t)

	code, hostID := createGame(t, ts, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/"+code+"/actions",
		map[string]any{"action": "DO_A_BARREL_ROLL", "player_id": hostID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestFullBettingAndTrickFlow(t *testing.T) {
	ts := newTestServer(t)

	code, hostID := createGame(t, ts, "Alice")
	bobID := joinGame(t, ts, code, "Bob")

	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": hostID})
	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": bobID})

	g := submitAction(t, ts, code, map[string]any{"action": "START_GAME", "player_id": hostID, "initial_cards": 3})
	assert.Equal(t, "betting", g.Phase)
	require.NotNil(t, g.Round)
	assert.Equal(t, 1, g.Round.Number)
	assert.Equal(t, 3, g.Round.CardsPerPlayer)
	assert.Equal(t, "spade", g.Round.TrumpSuit)
	// Betting starts with the player left of the dealer
	assert.Equal(t, bobID, g.CurrentTurnID)

	// Non-dealer bets first
	g = submitAction(t, ts, code, map[string]any{"action": "SUBMIT_BET", "player_id": bobID, "bet": 0})
	assert.Equal(t, "betting", g.Phase)
	bobHand := playerHand(t, g, bobID)

	// Dealer may not make the bets sum to the cards dealt
	rr := ts.request(http.MethodPost, "/api/v1/games/"+code+"/actions",
		map[string]any{"action": "SUBMIT_BET", "player_id": hostID, "bet": 3})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "BET_SUM_FORBIDDEN")

	g = submitAction(t, ts, code, map[string]any{"action": "SUBMIT_BET", "player_id": hostID, "bet": 0})
	assert.Equal(t, "playing", g.Phase)
	assert.Equal(t, bobID, g.CurrentTurnID)
	aliceHand := playerHand(t, g, hostID)

	// Bob leads the first trick
	lead := bobHand[0]
	g = submitAction(t, ts, code, map[string]any{"action": "PLAY_CARD", "player_id": bobID, "card": lead.ID})
	require.NotNil(t, g.Trick)
	require.Len(t, g.Trick.Plays, 1)
	require.NotNil(t, g.Trick.LeadSuit)
	assert.Equal(t, lead.Suit, *g.Trick.LeadSuit)
	assert.Equal(t, hostID, g.CurrentTurnID)

	// Alice follows suit when she can
	follow := legalPlay(aliceHand, lead.Suit)
	g = submitAction(t, ts, code, map[string]any{"action": "PLAY_CARD", "player_id": hostID, "card": follow.ID})

	// Trick resolved: exactly one trick awarded, next one not started
	require.NotNil(t, g.Trick)
	assert.Empty(t, g.Trick.Plays)
	total := 0
	for _, p := range g.Players {
		total += p.TricksWon
		assert.Equal(t, 2, p.HandCount)
	}
	assert.Equal(t, 1, total)
}

func TestPlayOutOfTurnRejected(t *testing.T) {
	ts := newTestServer(t)

	code, hostID := createGame(t, ts, "Alice")
	bobID := joinGame(t, ts, code, "Bob")

	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": hostID})
	submitAction(t, ts, code, map[string]any{"action": "TOGGLE_READY", "player_id": bobID})
	submitAction(t, ts, code, map[string]any{"action": "START_GAME", "player_id": hostID, "initial_cards": 3})

	// The dealer does not bet first
	rr := ts.request(http.MethodPost, "/api/v1/games/"+code+"/actions",
		map[string]any{"action": "SUBMIT_BET", "player_id": hostID, "bet": 0})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_YOUR_TURN")
}

func TestLeaveGame(t *testing.T) {
	ts := newTestServer(t)

	code, hostID := createGame(t, ts, "Alice")
	bobID := joinGame(t, ts, code, "Bob")

	rr := ts.request(http.MethodPost, "/api/v1/games/"+code+"/leave", map[string]string{"player_id": bobID})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+code, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var g response.Game
	err := json.Unmarshal(rr.Body.Bytes(), &g)
	require.NoError(t, err)
	require.Len(t, g.Players, 1)
	assert.Equal(t, hostID, g.Players[0].ID)

	// Last player leaving deletes the game
	rr = ts.request(http.MethodPost, "/api/v1/games/"+code+"/leave", map[string]string{"player_id": hostID})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+code, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// Helper functions

func createGame(t *testing.T, ts *testServer, displayName string) (code, playerID string) {
	t.Helper()

	body := map[string]string{"display_name": displayName}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.CreateGameResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.Game.Code, resp.PlayerID
}

func joinGame(t *testing.T, ts *testServer, code, displayName string) string {
	t.Helper()

	body := map[string]string{"display_name": displayName}
	rr := ts.request(http.MethodPost, "/api/v1/games/"+code+"/join", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.JoinGameResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.PlayerID
}

func submitAction(t *testing.T, ts *testServer, code string, body map[string]any) response.Game {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/games/"+code+"/actions", body)
	require.Equal(t, http.StatusOK, rr.Code, "action %v: %s", body["action"], rr.Body.String())

	var resp response.ActionResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.True(t, resp.Success)

	return resp.Game
}

func playerHand(t *testing.T, g response.Game, playerID string) []response.Card {
	t.Helper()

	for _, p := range g.Players {
		if p.ID == playerID {
			require.NotEmpty(t, p.Hand)
			return p.Hand
		}
	}
	t.Fatalf("player %s not in game", playerID)
	return nil
}

// legalPlay picks a card that follows the lead suit if the hand has one
func legalPlay(hand []response.Card, leadSuit string) response.Card {
	for _, c := range hand {
		if c.Suit == leadSuit {
			return c
		}
	}
	return hand[0]
}
