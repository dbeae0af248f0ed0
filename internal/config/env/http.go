package env

import (
	"dice_game/internal/config"
)

type httpEnv struct {
	Address string `env:"HTTP_ADDR" envDefault:":8080"`
}

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var e httpEnv
	if err := config.ParseEnv(&e); err != nil {
		return nil, err
	}

	return &httpConfig{
		address: e.Address,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
