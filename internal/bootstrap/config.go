package bootstrap

import (
	"github.com/spf13/viper"

	"mnkgame/internal/game"
)

type Config struct {
	ServerPort     string `mapstructure:"SERVER_PORT"`
	BoardWidth     int    `mapstructure:"BOARD_WIDTH"`
	BoardHeight    int    `mapstructure:"BOARD_HEIGHT"`
	WinLength      int    `mapstructure:"WIN_LENGTH"`
	CrossEngine    bool   `mapstructure:"CROSS_ENGINE"`
	NoughtEngine   bool   `mapstructure:"NOUGHT_ENGINE"`
	AssistEnabled  bool   `mapstructure:"ASSIST_ENABLED"`
	LogSearchStats bool   `mapstructure:"LOG_SEARCH_STATS"`
}

func Default() *Config {
	return &Config{
		ServerPort:     ":8080",
		BoardWidth:     3,
		BoardHeight:    3,
		WinLength:      3,
		CrossEngine:    false,
		NoughtEngine:   true,
		AssistEnabled:  false,
		LogSearchStats: true,
	}
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)
	viper.SetConfigType("env")

	cfg := Default()
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GameSettings maps the service configuration to the default settings of a
// newly created game.
func (c *Config) GameSettings() game.Settings {
	settings := game.Settings{
		BoardWidth:    c.BoardWidth,
		BoardHeight:   c.BoardHeight,
		WinLength:     c.WinLength,
		AssistEnabled: c.AssistEnabled,
	}
	settings.CrossType = game.PlayerHuman
	if c.CrossEngine {
		settings.CrossType = game.PlayerEngine
	}
	settings.NoughtType = game.PlayerHuman
	if c.NoughtEngine {
		settings.NoughtType = game.PlayerEngine
	}
	return settings
}
