package converter

import (
	dto "dice_game/internal/api/dto/game"
	"dice_game/internal/model"
	statsModel "dice_game/internal/repository/stats_repo/model"
)

func ToNewGame(req dto.CreateGameRequest) model.NewGame {
	return model.NewGame{
		TwoPlayer:   req.TwoPlayer,
		MaxRounds:   req.MaxRounds,
		Player1Name: req.Player1Name,
		Player2Name: req.Player2Name,
	}
}

func ToCreateGameResponse(created model.CreatedGame) dto.CreateGameResponse {
	return dto.CreateGameResponse{
		GameID: created.Game.ID,
		Token:  created.Token,
		State:  ToGameResponse(created.Game),
	}
}

func ToGameResponse(g model.GameSnapshot) dto.GameResponse {
	return dto.GameResponse{
		GameID:          g.ID,
		CreatedAt:       g.CreatedAt,
		State:           g.State.String(),
		TwoPlayer:       g.TwoPlayer,
		MaxRounds:       g.MaxRounds,
		CurrentRound:    g.CurrentRound,
		RoundsCompleted: g.RoundsCompleted,
		Player1Turn:     g.Player1Turn,
		ComputerPending: g.ComputerPending,
		Ended:           g.Ended,
		Dice:            [2]int{g.Die1, g.Die2},
		Player1:         toPlayerResponse(g.Player1),
		Player2:         toPlayerResponse(g.Player2),
		Result:          toResultResponse(g.Result),
	}
}

func ToRollResponse(res model.RollResult) dto.RollResponse {
	return dto.RollResponse{
		Die1:     res.Outcome.Die1,
		Die2:     res.Outcome.Die2,
		Points:   res.Outcome.Points,
		IsDouble: res.Outcome.IsDouble,
		Player:   res.Outcome.Actor.Name,
		Round:    res.Outcome.Round,
		Ended:    res.Outcome.Ended,
		State:    ToGameResponse(res.Game),
	}
}

func ToStatsResponse(s statsModel.GameStats) dto.StatsResponse {
	return dto.StatsResponse{
		GamesStarted:      s.GamesStarted,
		GamesFinished:     s.GamesFinished,
		SinglePlayerGames: s.SinglePlayerGames,
		TwoPlayerGames:    s.TwoPlayerGames,
		TotalRolls:        s.TotalRolls,
		TotalPoints:       s.TotalPoints,
		DoubleRolls:       s.DoubleRolls,
		HighestRoll:       s.HighestRoll,
		AveragePoints:     s.AveragePoints,
		Player1Wins:       s.Player1Wins,
		Player2Wins:       s.Player2Wins,
		Ties:              s.Ties,
	}
}

func toPlayerResponse(p model.PlayerAccount) dto.PlayerResponse {
	return dto.PlayerResponse{
		Name:                   p.Name,
		Score:                  p.Score,
		RollCount:              p.RollCount,
		DoublesCount:           p.DoublesCount,
		HighestSingleRoll:      p.HighestSingleRoll,
		TotalPointsFromDoubles: p.TotalPointsFromDoubles,
		AverageScore:           p.AverageScore(),
		DoublesPercentage:      p.DoublesPercentage(),
		Summary:                p.Summary(),
	}
}

func toResultResponse(r *model.GameResult) *dto.ResultResponse {
	if r == nil {
		return nil
	}
	return &dto.ResultResponse{
		Winner:       r.Winner.String(),
		Headline:     r.Headline(),
		RoundsPlayed: r.RoundsPlayed,
		Player1Score: r.Player1.Score,
		Player2Score: r.Player2.Score,
	}
}
