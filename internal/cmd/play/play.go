// Package play игра в кости в терминале
package play

import (
	"bufio"
	"context"
	"dice_game/internal/config"
	"dice_game/internal/model"
	"dice_game/internal/service/dice"
	"dice_game/internal/service/engine"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// Config Настройки терминальной игры: env, затем флаги
type Config struct {
	Rounds    int           `env:"GAME_MAX_ROUNDS" envDefault:"5"`
	TwoPlayer bool          `env:"GAME_TWO_PLAYER" envDefault:"false"`
	Delay     time.Duration `env:"GAME_COMPUTER_DELAY" envDefault:"1500ms"`
	Seed      int64         `env:"GAME_SEED"` // 0 - случайный
	Player1   string        `env:"GAME_PLAYER1_NAME"`
	Player2   string        `env:"GAME_PLAYER2_NAME"`
}

// ParseConfig Читает переменные окружения и флаги
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "Number of rounds")
	fs.BoolVar(&cfg.TwoPlayer, "two-player", cfg.TwoPlayer, "Two human players instead of the computer")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Pause before the computer rolls")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Dice seed, 0 for random")
	fs.StringVar(&cfg.Player1, "player1", cfg.Player1, "Name of player 1")
	fs.StringVar(&cfg.Player2, "player2", cfg.Player2, "Name of player 2")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type session struct {
	cfg Config
	src dice.Source
	eng *engine.Engine
	out io.Writer
}

// Run Игровой цикл: Enter - бросок, n - новая игра, m - смена режима, q - выход
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	src := dice.NewSource()
	if cfg.Seed != 0 {
		src = dice.NewSeededSource(cfg.Seed)
	}

	s := &session{cfg: cfg, src: src, out: out}
	if err := s.start(cfg.TwoPlayer); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		if s.eng.IsComputerTurn() {
			if err := s.computerTurn(ctx); err != nil {
				return nil
			}
			continue
		}

		s.prompt()
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "r":
			s.roll()
		case "n":
			s.eng.NewGame()
			fmt.Fprintln(out, "New game started.")
			s.status()
		case "m":
			if err := s.start(!s.eng.Config().IsTwoPlayerMode()); err != nil {
				return err
			}
		case "s":
			fmt.Fprintln(out, s.eng.Player1().DetailedStatistics())
			fmt.Fprintln(out, s.eng.Player2().DetailedStatistics())
		case "q":
			fmt.Fprintln(out, "Bye!")
			return nil
		default:
			fmt.Fprintln(out, "Unknown command.")
		}
	}
}

// start Новый движок в нужном режиме
func (s *session) start(twoPlayer bool) error {
	cfg, err := model.NewGameConfiguration(twoPlayer, s.cfg.Rounds)
	if err != nil {
		return err
	}

	player2 := s.cfg.Player2
	if twoPlayer != s.cfg.TwoPlayer {
		// Имя второго игрока задано для исходного режима
		player2 = ""
	}

	eng, err := engine.New(cfg,
		engine.WithSource(s.src),
		engine.WithPlayerNames(s.cfg.Player1, player2),
	)
	if err != nil {
		return err
	}
	s.eng = eng

	mode := "Single player vs " + eng.Player2().Name
	if twoPlayer {
		mode = "Two players"
	}
	fmt.Fprintf(s.out, "%s, %d rounds.\n", mode, cfg.MaxRounds())
	s.status()
	return nil
}

func (s *session) prompt() {
	if s.eng.IsEnded() {
		fmt.Fprint(s.out, "[n] new game, [m] switch mode, [s] stats, [q] quit: ")
		return
	}
	fmt.Fprintf(s.out, "%s, press Enter to roll: ", s.eng.CurrentPlayer().Name)
}

func (s *session) computerTurn(ctx context.Context) error {
	fmt.Fprintf(s.out, "%s is rolling...\n", s.eng.CurrentPlayer().Name)

	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	s.roll()
	return nil
}

func (s *session) roll() {
	outcome, err := s.eng.RequestRoll()
	if err != nil {
		fmt.Fprintln(s.out, "The game is over. Start a new game with [n].")
		return
	}

	line := fmt.Sprintf("%s rolled %d and %d: %d points", outcome.Actor.Name, outcome.Die1, outcome.Die2, outcome.Points)
	if outcome.IsDouble {
		line += " (DOUBLES!)"
	}
	fmt.Fprintln(s.out, line)

	if outcome.Ended {
		s.finish()
		return
	}
	s.status()
}

func (s *session) status() {
	fmt.Fprintf(s.out, "Round %d/%d | %s | %s\n",
		s.eng.CurrentRound(), s.eng.Config().MaxRounds(),
		s.eng.Player1().Summary(), s.eng.Player2().Summary())
}

func (s *session) finish() {
	result, err := s.eng.Result()
	if err != nil {
		return
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, result.Headline())
	fmt.Fprintln(s.out, result.Player1.DetailedStatistics())
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, result.Player2.DetailedStatistics())
	fmt.Fprintln(s.out)
}
