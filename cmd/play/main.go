package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"mnkgame/internal/engine"
	"mnkgame/internal/game"
)

var output = termenv.NewOutput(os.Stdout)

func playerType(name, value string) game.PlayerType {
	switch value {
	case "human":
		return game.PlayerHuman
	case "engine":
		return game.PlayerEngine
	default:
		fmt.Fprintf(os.Stderr, "-%s must be human or engine, got %q\n", name, value)
		os.Exit(2)
		return game.PlayerHuman
	}
}

func main() {
	width := flag.Int("width", 3, "board width (columns)")
	height := flag.Int("height", 3, "board height (rows)")
	winLength := flag.Int("win", 3, "stones in a row needed to win")
	cross := flag.String("cross", "human", "who plays crosses: human or engine")
	nought := flag.String("nought", "engine", "who plays noughts: human or engine")
	assist := flag.Bool("assist", false, "print the solver's recommendation before each human move")
	flag.Parse()

	settings := game.Settings{
		BoardWidth:    *width,
		BoardHeight:   *height,
		WinLength:     *winLength,
		CrossType:     playerType("cross", *cross),
		NoughtType:    playerType("nought", *nought),
		AssistEnabled: false,
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	created := game.NewGame(settings)
	g := &created
	g.Start()
	rules := g.Rules()
	solver := engine.NewSolver(rules)
	reader := bufio.NewScanner(os.Stdin)

	fmt.Printf("%dx%d board, %d in a row to win\n\n",
		rules.BoardWidth(), rules.BoardHeight(), rules.WinLength())
	drawBoard(g)

	for {
		state := g.State()
		if state.Status.Finished() {
			break
		}
		if g.CurrentPlayerIsHuman() {
			if *assist {
				printAssist(solver, state)
			}
			move, ok := promptMove(reader, state.ToMove)
			if !ok {
				fmt.Println("bye")
				return
			}
			if applied, reason := g.TryApplyMove(move); !applied {
				fmt.Println(output.String(reason).Foreground(termenv.ANSIYellow))
				continue
			}
		} else {
			waitForEngine(g)
		}
		drawBoard(g)
		printLastMove(g)
	}

	printResult(g)
}

func waitForEngine(g *game.Game) {
	for {
		if g.Tick() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func promptMove(reader *bufio.Scanner, toMove engine.Player) (engine.Move, bool) {
	for {
		fmt.Printf("%s to move (e.g. B2): ", toMove)
		if !reader.Scan() {
			return engine.Move{}, false
		}
		move, err := engine.ParseAlgebraic(reader.Text())
		if err != nil {
			fmt.Println(output.String(err.Error()).Foreground(termenv.ANSIYellow))
			continue
		}
		return move, true
	}
}

func printAssist(solver *engine.Solver, state game.State) {
	decision := solver.Solve(state.Position, state.ToMove)
	verdict := "draw"
	switch {
	case decision.Value == 1 && state.ToMove == engine.PlayerCross,
		decision.Value == -1 && state.ToMove == engine.PlayerNought:
		verdict = "win"
	case decision.Value != 0:
		verdict = "loss"
	}
	fmt.Printf("assist: %s with best play, optimal %s",
		verdict, engine.FormatMoveList(decision.Optimal))
	if len(decision.Candidates) > 0 {
		fmt.Printf(" unproven %s", engine.FormatMoveList(decision.Candidates))
	}
	fmt.Printf(" (%d states, %.1fms)\n",
		decision.StatesExplored, float64(decision.Elapsed.Microseconds())/1000.0)
}

func printLastMove(g *game.Game) {
	entries := g.History().All()
	if len(entries) == 0 {
		return
	}
	entry := entries[len(entries)-1]
	if entry.IsEngine {
		fmt.Printf("%s plays %s (value %+d, %d states, %.1fms)\n",
			entry.Player, entry.Move.Algebraic(), entry.Value, entry.StatesExplored, entry.ElapsedMs)
	} else {
		fmt.Printf("%s plays %s\n", entry.Player, entry.Move.Algebraic())
	}
}

func printResult(g *game.Game) {
	state := g.State()
	switch state.Status {
	case game.StatusCrossWon:
		fmt.Println(output.String("cross wins on "+engine.FormatMoveList(state.WinningLine)).Foreground(termenv.ANSIGreen))
	case game.StatusNoughtWon:
		fmt.Println(output.String("nought wins on "+engine.FormatMoveList(state.WinningLine)).Foreground(termenv.ANSIGreen))
	case game.StatusDraw:
		fmt.Println(output.String("draw").Foreground(termenv.ANSICyan))
	}
}

func drawBoard(g *game.Game) {
	state := g.State()
	board := state.Position.Board
	last := state.LastMove

	var header strings.Builder
	header.WriteString("   ")
	for x := 1; x <= board.Width(); x++ {
		header.WriteString(fmt.Sprintf(" %c", 'A'+x-1))
	}
	fmt.Println(header.String())

	for y := 1; y <= board.Height(); y++ {
		fmt.Printf("%2d ", y)
		for x := 1; x <= board.Width(); x++ {
			fmt.Printf(" %s", cellGlyph(board.At(x, y), last.Equals(engine.NewMove(x, y))))
		}
		fmt.Println()
	}
	fmt.Println()
}

func cellGlyph(cell engine.Cell, isLast bool) string {
	switch cell {
	case engine.CellCross:
		style := output.String("X").Foreground(termenv.ANSIRed)
		if isLast {
			style = style.Bold()
		}
		return style.String()
	case engine.CellNought:
		style := output.String("O").Foreground(termenv.ANSICyan)
		if isLast {
			style = style.Bold()
		}
		return style.String()
	default:
		return "."
	}
}
