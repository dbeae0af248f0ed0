package env

import (
	"dice_game/internal/config"
)

type kafkaEnv struct {
	Brokers []string `env:"KAFKA_BROKER" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"dice-rolls"`
}

type kafkaConfig struct {
	brokers []string
	topic   string
}

// NewKafkaConfig - настройки публикации событий. Без KAFKA_BROKER публикация выключена
func NewKafkaConfig() (config.KafkaConfig, error) {
	var e kafkaEnv
	if err := config.ParseEnv(&e); err != nil {
		return nil, err
	}

	return &kafkaConfig{
		brokers: e.Brokers,
		topic:   e.Topic,
	}, nil
}

func (k *kafkaConfig) Brokers() []string {
	return k.brokers
}

func (k *kafkaConfig) Topic() string {
	return k.topic
}

func (k *kafkaConfig) Enabled() bool {
	return len(k.brokers) > 0
}
