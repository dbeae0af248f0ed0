package game

import (
	"context"
	"dice_game/internal/model"
	sessionModel "dice_game/internal/repository/game_repo/model"
	"dice_game/internal/service/engine"
	"dice_game/pkg/token"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Create Создает партию и выдает токен ее хоста
func (s *serv) Create(ctx context.Context, req model.NewGame) (*model.CreatedGame, error) {
	// Незаданные параметры берем из настроек
	twoPlayer := s.gameCfg.DefaultTwoPlayer()
	if req.TwoPlayer != nil {
		twoPlayer = *req.TwoPlayer
	}
	maxRounds := s.gameCfg.DefaultMaxRounds()
	if req.MaxRounds != nil {
		maxRounds = *req.MaxRounds
	}
	if maxRounds > s.gameCfg.MaxRoundsLimit() {
		return nil, fmt.Errorf("%w: max rounds %d exceeds limit %d", model.ErrInvalidConfiguration, maxRounds, s.gameCfg.MaxRoundsLimit())
	}

	cfg, err := model.NewGameConfiguration(twoPlayer, maxRounds)
	if err != nil {
		return nil, err
	}

	eng, err := s.newEngine(cfg, req.Player1Name, req.Player2Name)
	if err != nil {
		return nil, err
	}

	session := &sessionModel.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Engine:    eng,
	}

	accessToken, err := token.GenerateAccessToken(session.ID, s.jwtCfg.AccessTokenSecretKey(), s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return nil, fmt.Errorf("generate game token: %w", err)
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	s.statsRepo.RecordGameStarted(twoPlayer)

	log.Printf("[game %s] created: two_player=%v rounds=%d", session.ID, twoPlayer, maxRounds)

	session.Mu.Lock()
	defer session.Mu.Unlock()
	return &model.CreatedGame{
		Game:  snapshot(session),
		Token: accessToken,
	}, nil
}

// newEngine Движок с именами из запроса или из настроек
func (s *serv) newEngine(cfg model.GameConfiguration, player1, player2 string) (*engine.Engine, error) {
	if player1 == "" {
		player1 = s.gameCfg.Player1Name()
	}
	if player2 == "" {
		player2 = s.opponentName(cfg.IsTwoPlayerMode())
	}
	return engine.New(cfg,
		engine.WithSource(s.newSource()),
		engine.WithPlayerNames(player1, player2),
	)
}

func (s *serv) opponentName(twoPlayer bool) string {
	if twoPlayer {
		return s.gameCfg.Player2Name()
	}
	return s.gameCfg.ComputerName()
}

// snapshot Вызывается под session.Mu
func snapshot(session *sessionModel.Session) model.GameSnapshot {
	e := session.Engine
	die1, die2 := e.Dice()

	snap := model.GameSnapshot{
		ID:              session.ID,
		CreatedAt:       session.CreatedAt,
		State:           e.State(),
		TwoPlayer:       e.Config().IsTwoPlayerMode(),
		MaxRounds:       e.Config().MaxRounds(),
		CurrentRound:    e.CurrentRound(),
		RoundsCompleted: e.RoundsCompleted(),
		Player1Turn:     e.IsPlayer1Turn(),
		ComputerPending: e.IsComputerTurn(),
		Ended:           e.IsEnded(),
		Die1:            die1,
		Die2:            die2,
		Player1:         e.Player1(),
		Player2:         e.Player2(),
	}
	if result, err := e.Result(); err == nil {
		snap.Result = &result
	}
	return snap
}
