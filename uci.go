package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"github.com/fitil-jpg/chess-sub000/board"
	"github.com/fitil-jpg/chess-sub000/engine"
)

func main() {
	uciLoop()
}

// uciLoop speaks just enough UCI to drive the cascade from an arena or a GUI.
// The engine answers instantly, so time-control options are parsed and
// ignored; the caller's clock is its own problem.
func uciLoop() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)

	scanner := bufio.NewScanner(os.Stdin)
	pos := chess.NewGame().Position()
	var seed uint64 = 1
	selector := engine.NewSelector(seed, engine.WithLogger(logger))

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name chess-sub000")
			fmt.Println("id author fitil")
			fmt.Println("option name Seed type spin default 1 min 0 max 1000000")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "setoption":
			// setoption name Seed value N
			if len(tokens) == 5 && strings.EqualFold(tokens[1], "name") &&
				strings.EqualFold(tokens[2], "Seed") && strings.EqualFold(tokens[3], "value") {
				if v, err := strconv.ParseUint(tokens[4], 10, 64); err == nil {
					seed = v
					selector = engine.NewSelector(seed, engine.WithLogger(logger))
				}
			}
		case "ucinewgame":
			pos = chess.NewGame().Position()
			selector = engine.NewSelector(seed, engine.WithLogger(logger))
		case "position":
			next, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Println("info string", err)
				continue
			}
			pos = next
		case "go":
			b := board.FromPosition(pos)
			move, reason, err := selector.ChooseMove(b, nil)
			if err != nil {
				fmt.Println("info string", err)
				continue
			}
			fmt.Println("info string", string(reason))
			fmt.Println("bestmove", move.String())
		case "stop":
			// Move selection is synchronous; nothing to interrupt.
		case "quit":
			return
		}
	}
}

// parsePosition handles "startpos [moves ...]" and "fen <6 fields> [moves ...]".
func parsePosition(tokens []string) (*chess.Position, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("malformed position command")
	}
	var pos *chess.Position
	rest := tokens[1:]
	switch strings.ToLower(tokens[0]) {
	case "startpos":
		pos = chess.NewGame().Position()
	case "fen":
		if len(rest) < 6 {
			return nil, fmt.Errorf("malformed fen in position command")
		}
		b, err := board.FromFEN(strings.Join(rest[:6], " "))
		if err != nil {
			return nil, err
		}
		pos = b.Position()
		rest = rest[6:]
	default:
		return nil, fmt.Errorf("unknown position subcommand %q", tokens[0])
	}

	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		for _, tok := range rest[1:] {
			m, err := chess.UCINotation{}.Decode(pos, tok)
			if err != nil {
				return nil, fmt.Errorf("bad move %q: %w", tok, err)
			}
			pos = pos.Update(m)
		}
	}
	return pos, nil
}
