package env

import (
	"dice_game/internal/config"
	"dice_game/pkg/token"
	"fmt"
	"log"
	"time"
)

type jwtEnv struct {
	AccessToken         string        `env:"GAME_TOKEN_SECRET"`
	AccessTokenDuration time.Duration `env:"GAME_TOKEN_TTL" envDefault:"24h"`
}

type jwtConfig struct {
	accessTokenSecretKey []byte
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	var e jwtEnv
	if err := config.ParseEnv(&e); err != nil {
		return nil, err
	}

	if e.AccessTokenDuration <= 0 {
		return nil, fmt.Errorf("invalid game token duration: %s", e.AccessTokenDuration)
	}

	secret := []byte(e.AccessToken)
	// Без секрета генерируем ключ на время жизни процесса - токены не переживут рестарт
	if len(secret) == 0 {
		key, err := token.GenerateSigningKey()
		if err != nil {
			return nil, fmt.Errorf("generate game token secret: %w", err)
		}
		log.Println("GAME_TOKEN_SECRET not set, using a random per-process key")
		secret = key
	}

	return &jwtConfig{
		accessTokenSecretKey: secret,
		accessTokenDuration:  e.AccessTokenDuration,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return j.accessTokenSecretKey
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
