package bootstrap

import (
	"testing"

	"mnkgame/internal/game"
)

func TestGameSettingsMapping(t *testing.T) {
	cfg := Default()
	cfg.BoardWidth = 4
	cfg.BoardHeight = 5
	cfg.WinLength = 4
	cfg.CrossEngine = true
	cfg.NoughtEngine = false
	cfg.AssistEnabled = true

	settings := cfg.GameSettings()
	if settings.BoardWidth != 4 || settings.BoardHeight != 5 || settings.WinLength != 4 {
		t.Fatalf("dimensions not mapped: %+v", settings)
	}
	if settings.CrossType != game.PlayerEngine {
		t.Fatalf("cross should be the engine")
	}
	if settings.NoughtType != game.PlayerHuman {
		t.Fatalf("nought should be human")
	}
	if !settings.AssistEnabled {
		t.Fatalf("assist flag not mapped")
	}
}

func TestDefaultSettingsValidate(t *testing.T) {
	if err := Default().GameSettings().Validate(); err != nil {
		t.Fatalf("default settings must validate: %v", err)
	}
}
