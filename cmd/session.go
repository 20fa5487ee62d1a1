package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/pareto-trade/internal/adapters/render/board"
	"github.com/bnema/pareto-trade/internal/application"
	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/spf13/cobra"
)

// sessionFlags are shared by every command that replays moves into a fresh
// session before acting on it.
type sessionFlags struct {
	scenario string
	player   string
	moves    []string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.scenario, "scenario", "s", string(domain.DefaultScenarioID), "Scenario ID to start from")
	cmd.Flags().StringVar(&f.player, "player", "", "Player name (default from config)")
	cmd.Flags().StringArrayVarP(&f.moves, "move", "m", nil, "Barter to replay first as aPizza,aSoda,bPizza,bSoda (repeatable)")
}

func startReplayedSession(cmd *cobra.Command, app *app, flags sessionFlags) (*application.Session, error) {
	moves, err := parseMoves(flags.moves)
	if err != nil {
		return nil, err
	}

	player := flags.player
	if player == "" {
		player = app.config.PlayerName
	}

	session, err := app.service.StartSession(cmd.Context(), application.StartSessionCommand{
		ScenarioID: domain.ScenarioID(flags.scenario),
		PlayerName: player,
	})
	if err != nil {
		return nil, err
	}

	if err := session.Replay(moves); err != nil {
		return nil, fmt.Errorf("replay moves: %w", err)
	}

	return session, nil
}

func parseMoves(raw []string) ([]domain.Barter, error) {
	moves := make([]domain.Barter, 0, len(raw))
	for _, move := range raw {
		barter, err := domain.ParseBarter(strings.Split(move, ","))
		if err != nil {
			return nil, fmt.Errorf("parse --move %q: %w", move, err)
		}
		moves = append(moves, barter)
	}

	return moves, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeBoard(cmd *cobra.Command, app *app, snapshot application.Snapshot, opts board.RenderOptions) error {
	rendered, err := app.boardRenderer(snapshot, opts)
	if err != nil {
		return fmt.Errorf("render board: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
