package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewHTTPConfig(t *testing.T) {
	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatalf("http config: %v", err)
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("default address = %q", cfg.Address())
	}

	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	cfg, err = NewHTTPConfig()
	if err != nil {
		t.Fatalf("http config: %v", err)
	}
	if cfg.Address() != "127.0.0.1:9000" {
		t.Fatalf("address = %q", cfg.Address())
	}
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("GAME_TOKEN_SECRET", "secret")
	t.Setenv("GAME_TOKEN_TTL", "2h")

	cfg, err := NewJWTConfig()
	if err != nil {
		t.Fatalf("jwt config: %v", err)
	}
	if string(cfg.AccessTokenSecretKey()) != "secret" {
		t.Fatalf("secret = %q", cfg.AccessTokenSecretKey())
	}
	if cfg.AccessTokenDuration() != 2*time.Hour {
		t.Fatalf("duration = %s", cfg.AccessTokenDuration())
	}
}

func TestNewJWTConfigGeneratesSecret(t *testing.T) {
	t.Setenv("GAME_TOKEN_SECRET", "")

	cfg, err := NewJWTConfig()
	if err != nil {
		t.Fatalf("jwt config: %v", err)
	}
	if len(cfg.AccessTokenSecretKey()) == 0 {
		t.Fatal("expected generated secret")
	}
	if cfg.AccessTokenDuration() != 24*time.Hour {
		t.Fatalf("default duration = %s", cfg.AccessTokenDuration())
	}
}

func TestNewJWTConfigInvalidDuration(t *testing.T) {
	t.Setenv("GAME_TOKEN_TTL", "soon")
	if _, err := NewJWTConfig(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestNewKafkaConfig(t *testing.T) {
	cfg, err := NewKafkaConfig()
	if err != nil {
		t.Fatalf("kafka config: %v", err)
	}
	if cfg.Enabled() {
		t.Fatal("kafka must be disabled without brokers")
	}
	if cfg.Topic() != "dice-rolls" {
		t.Fatalf("default topic = %q", cfg.Topic())
	}

	t.Setenv("KAFKA_BROKER", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "rolls")
	cfg, err = NewKafkaConfig()
	if err != nil {
		t.Fatalf("kafka config: %v", err)
	}
	if !cfg.Enabled() || len(cfg.Brokers()) != 2 || cfg.Topic() != "rolls" {
		t.Fatalf("unexpected kafka config: %v %q", cfg.Brokers(), cfg.Topic())
	}
}

func TestNewGameConfigFromYAML(t *testing.T) {
	path := writeYAML(t, `
game:
  max_rounds: 10
  two_player: true
  computer_delay_ms: 250
  player1_name: Ann
`)

	cfg, err := NewGameConfigFromYAML(path)
	if err != nil {
		t.Fatalf("game config: %v", err)
	}
	if cfg.DefaultMaxRounds() != 10 || !cfg.DefaultTwoPlayer() {
		t.Fatalf("unexpected rounds/mode: %d %v", cfg.DefaultMaxRounds(), cfg.DefaultTwoPlayer())
	}
	if cfg.ComputerDelay() != 250*time.Millisecond {
		t.Fatalf("delay = %s", cfg.ComputerDelay())
	}
	if cfg.Player1Name() != "Ann" || cfg.ComputerName() != "Computer" || cfg.MaxRoundsLimit() != 20 {
		t.Fatalf("defaults not applied: %q %q %d", cfg.Player1Name(), cfg.ComputerName(), cfg.MaxRoundsLimit())
	}
}

func TestNewGameConfigFromYAMLInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero rounds", content: "game:\n  max_rounds: 0\n"},
		{name: "rounds above limit", content: "game:\n  max_rounds: 30\n"},
		{name: "negative delay", content: "game:\n  computer_delay_ms: -1\n"},
		{name: "broken yaml", content: "game: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGameConfigFromYAML(writeYAML(t, tt.content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewGameConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GAME_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := NewGameConfig()
	if err != nil {
		t.Fatalf("game config: %v", err)
	}
	if cfg.DefaultMaxRounds() != 5 || cfg.ComputerDelay() != 1500*time.Millisecond {
		t.Fatalf("unexpected defaults: %d %s", cfg.DefaultMaxRounds(), cfg.ComputerDelay())
	}
}
