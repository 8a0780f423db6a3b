package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameLeaveCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameReadyCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameBetCmd())
	cmd.AddCommand(newGamePlayCmd())

	return cmd
}

// requirePlayerID returns the configured player ID or an error
func requirePlayerID() (string, error) {
	if cfg.PlayerID == "" {
		return "", fmt.Errorf("no player ID: create or join a game first, or pass --player")
	}
	return cfg.PlayerID, nil
}

// postAction submits an action and prints the resulting game state
func postAction(code string, body map[string]any) error {
	playerID, err := requirePlayerID()
	if err != nil {
		return err
	}
	body["player_id"] = playerID

	var result ActionResult
	if err := client.Post(fmt.Sprintf("/api/v1/games/%s/actions", strings.ToUpper(code)), body, &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	out.Print(result.Game)
	return nil
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <display-name>",
		Short: "Create a new game and become its host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"display_name": args[0]}
			var result CreateGameResult

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.PlayerID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <code> <display-name>",
		Short: "Join an existing game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])

			req := map[string]string{"display_name": args[1]}
			var result JoinGameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/join", code), req, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.PlayerID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <code>",
		Short: "Leave a game that has not started",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}

			code := strings.ToUpper(args[0])
			req := map[string]string{"player_id": playerID}

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/leave", code), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Left game " + code)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])

			path := fmt.Sprintf("/api/v1/games/%s", code)
			if cfg.PlayerID != "" {
				path += "?player_id=" + cfg.PlayerID
			}

			var result Game
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameReadyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready <code>",
		Short: "Toggle your ready state in the lobby",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAction(args[0], map[string]any{"action": "TOGGLE_READY"})
		},
	}
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <code> <initial-cards>",
		Short: "Start the game (host only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			initialCards, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid initial-cards: %w", err)
			}

			return postAction(args[0], map[string]any{
				"action":        "START_GAME",
				"initial_cards": initialCards,
			})
		},
	}
}

func newGameBetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bet <code> <amount>",
		Short: "Bet how many tricks you will win this round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid bet: %w", err)
			}

			return postAction(args[0], map[string]any{
				"action": "SUBMIT_BET",
				"bet":    amount,
			})
		},
	}
}

func newGamePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <code> <card>",
		Short: "Play a card from your hand (e.g. AS, 10H, 2C)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAction(args[0], map[string]any{
				"action": "PLAY_CARD",
				"card":   strings.ToUpper(args[1]),
			})
		},
	}
}
