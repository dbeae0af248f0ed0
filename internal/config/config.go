package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load - подгружает переменные окружения из .env файла
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// ParseEnv - заполняет target из переменных окружения
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type GameConfig interface {
	DefaultMaxRounds() int
	MaxRoundsLimit() int
	DefaultTwoPlayer() bool
	ComputerDelay() time.Duration
	Player1Name() string
	Player2Name() string
	ComputerName() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type KafkaConfig interface {
	Brokers() []string
	Topic() string
	Enabled() bool
}
