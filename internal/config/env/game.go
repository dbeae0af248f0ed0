package env

import (
	"dice_game/internal/config"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	gameConfigPathEnvName = "GAME_CONFIG_PATH"
	defaultGameConfigPath = "config.yaml"
)

// Значения по умолчанию совпадают с экраном настройки игры: 5 раундов из 1-20
const (
	defaultMaxRounds       = 5
	defaultMaxRoundsLimit  = 20
	defaultComputerDelayMs = 1500
)

type gameFile struct {
	Game gameYAML `yaml:"game"`
}

type gameYAML struct {
	MaxRounds       int    `yaml:"max_rounds"`
	MaxRoundsLimit  int    `yaml:"max_rounds_limit"`
	TwoPlayer       bool   `yaml:"two_player"`
	ComputerDelayMs int    `yaml:"computer_delay_ms"`
	Player1Name     string `yaml:"player1_name"`
	Player2Name     string `yaml:"player2_name"`
	ComputerName    string `yaml:"computer_name"`
}

type gameConfig struct {
	maxRounds      int
	maxRoundsLimit int
	twoPlayer      bool
	computerDelay  time.Duration
	player1Name    string
	player2Name    string
	computerName   string
}

func defaultGameYAML() gameYAML {
	return gameYAML{
		MaxRounds:       defaultMaxRounds,
		MaxRoundsLimit:  defaultMaxRoundsLimit,
		ComputerDelayMs: defaultComputerDelayMs,
		Player1Name:     "Player 1",
		Player2Name:     "Player 2",
		ComputerName:    "Computer",
	}
}

// NewGameConfig - читает путь к файлу из GAME_CONFIG_PATH (по умолчанию config.yaml).
// Если файла нет - используются значения по умолчанию
func NewGameConfig() (config.GameConfig, error) {
	path := os.Getenv(gameConfigPathEnvName)
	if len(path) == 0 {
		path = defaultGameConfigPath
	}

	cfg, err := NewGameConfigFromYAML(path)
	if errors.Is(err, os.ErrNotExist) {
		return newGameConfig(defaultGameYAML())
	}
	return cfg, err
}

// NewGameConfigFromYAML - настройки игры из yaml файла. Незаданные поля берутся по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	file := gameFile{Game: defaultGameYAML()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config %s: %w", path, err)
	}

	return newGameConfig(file.Game)
}

func newGameConfig(g gameYAML) (config.GameConfig, error) {
	if g.MaxRoundsLimit < 1 {
		return nil, fmt.Errorf("max_rounds_limit must be positive, got %d", g.MaxRoundsLimit)
	}
	if g.MaxRounds < 1 || g.MaxRounds > g.MaxRoundsLimit {
		return nil, fmt.Errorf("max_rounds must be within 1..%d, got %d", g.MaxRoundsLimit, g.MaxRounds)
	}
	if g.ComputerDelayMs < 0 {
		return nil, fmt.Errorf("computer_delay_ms must not be negative, got %d", g.ComputerDelayMs)
	}

	return &gameConfig{
		maxRounds:      g.MaxRounds,
		maxRoundsLimit: g.MaxRoundsLimit,
		twoPlayer:      g.TwoPlayer,
		computerDelay:  time.Duration(g.ComputerDelayMs) * time.Millisecond,
		player1Name:    g.Player1Name,
		player2Name:    g.Player2Name,
		computerName:   g.ComputerName,
	}, nil
}

func (g *gameConfig) DefaultMaxRounds() int {
	return g.maxRounds
}

func (g *gameConfig) MaxRoundsLimit() int {
	return g.maxRoundsLimit
}

func (g *gameConfig) DefaultTwoPlayer() bool {
	return g.twoPlayer
}

func (g *gameConfig) ComputerDelay() time.Duration {
	return g.computerDelay
}

func (g *gameConfig) Player1Name() string {
	return g.player1Name
}

func (g *gameConfig) Player2Name() string {
	return g.player2Name
}

func (g *gameConfig) ComputerName() string {
	return g.computerName
}
