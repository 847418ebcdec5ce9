package server

import (
	"encoding/json"

	"mnkgame/internal/engine"
	"mnkgame/internal/game"
)

type StatusResponse struct {
	GameID          string            `json:"game_id"`
	Settings        settingsDTO       `json:"settings"`
	Board           [][]int           `json:"board"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	Status          string            `json:"status"`
	LastMessage     string            `json:"last_message,omitempty"`
	WinningLine     []moveDTO         `json:"winning_line"`
	History         []historyEntryDTO `json:"history"`
	EngineThinking  bool              `json:"engine_thinking"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type settingsDTO struct {
	BoardWidth    int    `json:"board_width"`
	BoardHeight   int    `json:"board_height"`
	WinLength     int    `json:"win_length"`
	CrossType     string `json:"cross_type"`
	NoughtType    string `json:"nought_type"`
	AssistEnabled bool   `json:"assist_enabled"`
}

type moveDTO struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Coord string `json:"coord"`
}

type apiMove struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Coord string `json:"coord"`
}

type historyEntryDTO struct {
	X              int     `json:"x"`
	Y              int     `json:"y"`
	Coord          string  `json:"coord"`
	Player         int     `json:"player"`
	ElapsedMs      float64 `json:"elapsed_ms"`
	IsEngine       bool    `json:"is_engine"`
	Value          int     `json:"value"`
	StatesExplored int     `json:"states_explored"`
}

type historyPayload struct {
	GameID  string            `json:"game_id"`
	History []historyEntryDTO `json:"history"`
}

type analysisDTO struct {
	GameID         string    `json:"game_id"`
	Player         int       `json:"player"`
	Value          int       `json:"value"`
	Optimal        []moveDTO `json:"optimal"`
	Candidates     []moveDTO `json:"candidates"`
	OptimalText    string    `json:"optimal_text"`
	StatesExplored int       `json:"states_explored"`
	Nodes          int       `json:"nodes"`
	ElapsedMs      float64   `json:"elapsed_ms"`
}

type createGameRequest struct {
	Settings *settingsDTO `json:"settings"`
}

func playerToInt(p engine.Player) int {
	if p == engine.PlayerCross {
		return 1
	}
	return 2
}

func winnerFromStatus(status game.Status) int {
	switch status {
	case game.StatusCrossWon:
		return 1
	case game.StatusNoughtWon:
		return 2
	case game.StatusDraw:
		return 3
	default:
		return 0
	}
}

func playerTypeToString(t game.PlayerType) string {
	if t == game.PlayerEngine {
		return "engine"
	}
	return "human"
}

func playerTypeFromString(s string, fallback game.PlayerType) game.PlayerType {
	switch s {
	case "engine":
		return game.PlayerEngine
	case "human":
		return game.PlayerHuman
	default:
		return fallback
	}
}

func settingsToDTO(settings game.Settings) settingsDTO {
	return settingsDTO{
		BoardWidth:    settings.BoardWidth,
		BoardHeight:   settings.BoardHeight,
		WinLength:     settings.WinLength,
		CrossType:     playerTypeToString(settings.CrossType),
		NoughtType:    playerTypeToString(settings.NoughtType),
		AssistEnabled: settings.AssistEnabled,
	}
}

func settingsFromDTO(dto *settingsDTO, base game.Settings) game.Settings {
	if dto == nil {
		return base
	}
	settings := base
	if dto.BoardWidth > 0 {
		settings.BoardWidth = dto.BoardWidth
	}
	if dto.BoardHeight > 0 {
		settings.BoardHeight = dto.BoardHeight
	}
	if dto.WinLength > 0 {
		settings.WinLength = dto.WinLength
	}
	settings.CrossType = playerTypeFromString(dto.CrossType, base.CrossType)
	settings.NoughtType = playerTypeFromString(dto.NoughtType, base.NoughtType)
	settings.AssistEnabled = dto.AssistEnabled
	return settings
}

func boardToRows(board engine.Board) [][]int {
	rows := make([][]int, board.Height())
	for y := 1; y <= board.Height(); y++ {
		row := make([]int, board.Width())
		for x := 1; x <= board.Width(); x++ {
			row[x-1] = int(board.At(x, y))
		}
		rows[y-1] = row
	}
	return rows
}

func movesToDTO(moves []engine.Move) []moveDTO {
	out := make([]moveDTO, 0, len(moves))
	for _, move := range moves {
		out = append(out, moveDTO{X: move.X, Y: move.Y, Coord: move.Algebraic()})
	}
	return out
}

func historyEntryToDTO(entry game.HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		X:              entry.Move.X,
		Y:              entry.Move.Y,
		Coord:          entry.Move.Algebraic(),
		Player:         playerToInt(entry.Player),
		ElapsedMs:      entry.ElapsedMs,
		IsEngine:       entry.IsEngine,
		Value:          entry.Value,
		StatesExplored: entry.StatesExplored,
	}
}

func historyToDTO(history game.MoveHistory) []historyEntryDTO {
	entries := history.All()
	out := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntryToDTO(entry))
	}
	return out
}

func analysisToDTO(gameID string, player engine.Player, decision engine.Decision) analysisDTO {
	return analysisDTO{
		GameID:         gameID,
		Player:         playerToInt(player),
		Value:          decision.Value,
		Optimal:        movesToDTO(decision.Optimal),
		Candidates:     movesToDTO(decision.Candidates),
		OptimalText:    engine.FormatMoveList(decision.Optimal),
		StatesExplored: decision.StatesExplored,
		Nodes:          decision.Nodes,
		ElapsedMs:      float64(decision.Elapsed.Microseconds()) / 1000.0,
	}
}

func controllerStatus(controller *game.Controller) StatusResponse {
	state := controller.State()
	return StatusResponse{
		GameID:          controller.ID(),
		Settings:        settingsToDTO(controller.Settings()),
		Board:           boardToRows(state.Position.Board),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          state.Status.String(),
		LastMessage:     state.LastMessage,
		WinningLine:     movesToDTO(state.WinningLine),
		History:         historyToDTO(controller.History()),
		EngineThinking:  controller.EngineThinking(),
		TurnStartedAtMs: controller.TurnStartedAtMs(),
	}
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return data
}
