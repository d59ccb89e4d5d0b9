// selfplay plays the engine against itself and logs every ply with its tier
// reason. Wall-clock enforcement, pairings and ratings belong to the outer
// tournament layer, not here.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"github.com/fitil-jpg/chess-sub000/board"
	"github.com/fitil-jpg/chess-sub000/config"
	"github.com/fitil-jpg/chess-sub000/engine"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "selfplay:", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	weights := cfg.Weights()
	tally := map[chess.Outcome]int{}

	for g := 0; g < cfg.Games; g++ {
		outcome := playGame(logger, weights, cfg.Seed+uint64(2*g), cfg.MaxPlies, g)
		tally[outcome]++
	}

	logger.Info().
		Int("white", tally[chess.WhiteWon]).
		Int("black", tally[chess.BlackWon]).
		Int("draw", tally[chess.Draw]).
		Int("unfinished", tally[chess.NoOutcome]).
		Msg("selfplay finished")
}

func playGame(logger zerolog.Logger, w engine.Weights, seed uint64, maxPlies, gameIdx int) chess.Outcome {
	// Independent RNG streams per side keep the two bots from mirroring each
	// other's tie-breaks.
	white := engine.NewSelector(seed, engine.WithWeights(w), engine.WithLogger(logger))
	black := engine.NewSelector(seed+1, engine.WithWeights(w), engine.WithLogger(logger))

	game := chess.NewGame()
	for ply := 0; game.Outcome() == chess.NoOutcome && ply < maxPlies; ply++ {
		b := board.FromPosition(game.Position())
		sel := white
		if b.Turn() == chess.Black {
			sel = black
		}

		move, reason, err := sel.ChooseMove(b, nil)
		if err != nil {
			logger.Error().Err(err).Int("game", gameIdx).Int("ply", ply).Msg("selection failed")
			break
		}
		san := b.SAN(move)
		if err := game.Move(move); err != nil {
			logger.Error().Err(err).Str("move", move.String()).Msg("illegal move from engine")
			break
		}
		logger.Info().
			Int("game", gameIdx).
			Int("ply", ply).
			Str("side", b.Turn().String()).
			Str("san", san).
			Str("reason", string(reason)).
			Msg("played")
	}

	logger.Info().
		Int("game", gameIdx).
		Str("outcome", game.Outcome().String()).
		Str("method", game.Method().String()).
		Msg("game over")
	return game.Outcome()
}
