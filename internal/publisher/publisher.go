package publisher

import (
	"context"
	"dice_game/internal/model"
	"dice_game/internal/repository"
	"dice_game/pkg/kafka"
	"errors"
	"time"
)

type kafkaPublisher struct {
	writer kafka.MessageWriter
	clock  func() time.Time
}

// NewKafkaPublisher События партии пишутся в топик с ключом = ID игры,
// чтобы события одной партии шли по порядку в одном разделе
func NewKafkaPublisher(writer kafka.MessageWriter) repository.OutcomePublisher {
	return &kafkaPublisher{
		writer: writer,
		clock:  time.Now,
	}
}

func (p *kafkaPublisher) PublishRoll(ctx context.Context, gameID string, outcome model.RollOutcome) error {
	return p.publish(ctx, rollEvent(gameID, outcome))
}

func (p *kafkaPublisher) PublishGameEnded(ctx context.Context, gameID string, result model.GameResult) error {
	return p.publish(ctx, resultEvent(gameID, result))
}

func (p *kafkaPublisher) publish(ctx context.Context, evt event) error {
	value, err := encode(evt, p.clock())
	if err != nil {
		return err
	}
	return kafka.WriteMessage(ctx, p.writer, []byte(evt.GameID), value)
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type multiPublisher []repository.OutcomePublisher

// NewMultiPublisher Рассылает каждое событие всем получателям
func NewMultiPublisher(publishers ...repository.OutcomePublisher) repository.OutcomePublisher {
	return multiPublisher(publishers)
}

func (m multiPublisher) PublishRoll(ctx context.Context, gameID string, outcome model.RollOutcome) error {
	var errs []error
	for _, p := range m {
		if err := p.PublishRoll(ctx, gameID, outcome); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multiPublisher) PublishGameEnded(ctx context.Context, gameID string, result model.GameResult) error {
	var errs []error
	for _, p := range m {
		if err := p.PublishGameEnded(ctx, gameID, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multiPublisher) CloseGame(gameID string) {
	for _, p := range m {
		if c, ok := p.(repository.GameCloser); ok {
			c.CloseGame(gameID)
		}
	}
}

func (m multiPublisher) Close() error {
	var errs []error
	for _, p := range m {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
