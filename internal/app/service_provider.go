package app

import (
	gameAPI "dice_game/internal/api/game"
	watchAPI "dice_game/internal/api/watch"
	"dice_game/internal/config"
	"dice_game/internal/config/env"
	"dice_game/internal/middleware"
	"dice_game/internal/publisher"
	"dice_game/internal/repository"
	"dice_game/internal/repository/game_repo"
	"dice_game/internal/repository/stats_repo"
	"dice_game/internal/service"
	"dice_game/internal/service/game"
	"dice_game/pkg/kafka"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type ServiceProvider struct {
	// Configs
	httpCfg  config.HTTPConfig
	gameCfg  config.GameConfig
	jwtCfg   config.JWTConfig
	kafkaCfg config.KafkaConfig

	// Game bits
	gameRepo  repository.GameRepository
	statsRepo repository.StatsRepository
	hub       *publisher.Hub
	publisher repository.OutcomePublisher
	gameServ  service.GameService
	gameHand  *gameAPI.Handler
	watchHand *watchAPI.Handler

	// Router
	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) KafkaCfg() config.KafkaConfig {
	if sp.kafkaCfg == nil {
		cfg, err := env.NewKafkaConfig()
		if err != nil {
			panic("failed to get kafka config: " + err.Error())
		}
		sp.kafkaCfg = cfg
	}
	return sp.kafkaCfg
}

func (sp *ServiceProvider) GameRepository() repository.GameRepository {
	if sp.gameRepo == nil {
		sp.gameRepo = game_repo.NewGameRepository()
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

// Hub Зрители партий по WebSocket
func (sp *ServiceProvider) Hub() *publisher.Hub {
	if sp.hub == nil {
		sp.hub = publisher.NewHub()
	}
	return sp.hub
}

// Publisher События идут зрителям и в Kafka, если задан брокер
func (sp *ServiceProvider) Publisher() repository.OutcomePublisher {
	if sp.publisher == nil {
		cfg := sp.KafkaCfg()
		if cfg.Enabled() {
			log.Printf("publishing game events to kafka topic %s", cfg.Topic())
			sp.publisher = publisher.NewMultiPublisher(
				sp.Hub(),
				publisher.NewKafkaPublisher(kafka.NewKafkaWriter(cfg.Brokers(), cfg.Topic())),
			)
		} else {
			sp.publisher = sp.Hub()
		}
	}
	return sp.publisher
}

func (sp *ServiceProvider) GameService() service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.GameCfg(),
			sp.JWTCfg(),
			sp.GameRepository(),
			sp.StatsRepository(),
			sp.Publisher(),
			game.NewTimerScheduler(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler() *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) WatchHandler() *watchAPI.Handler {
	if sp.watchHand == nil {
		sp.watchHand = watchAPI.NewHandler(watchAPI.HandlerDeps{
			Games: sp.GameService(),
			Hub:   sp.Hub(),
		})
	}
	return sp.watchHand
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		gameHandler := sp.GameHandler()
		watchHandler := sp.WatchHandler()

		r.Get("/stats", gameHandler.Stats)

		// Game endpoints
		r.Route("/games", func(rr chi.Router) {
			rr.Post("/", gameHandler.Create)

			// Запросы к партии требуют токен ее хоста
			rr.Route("/{id}", func(gr chi.Router) {
				gr.Use(middleware.GameAuth(sp.JWTCfg().AccessTokenSecretKey()))
				gr.Get("/", gameHandler.Get)
				gr.Delete("/", gameHandler.Delete)
				gr.Post("/roll", gameHandler.Roll)
				gr.Post("/new", gameHandler.NewGame)
				gr.Post("/mode", gameHandler.SwitchMode)
				gr.Get("/events", watchHandler.Events)
			})
		})

		sp.router = r
	}
	return sp.router
}
