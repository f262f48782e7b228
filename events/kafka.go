package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Kafka publishes events as JSON to a topic per event type, keyed by user.
type Kafka struct {
	producer sarama.SyncProducer
}

// NewKafka dials the brokers, retrying while they come up.
func NewKafka(brokers []string, log *zap.Logger) (*Kafka, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	var (
		producer sarama.SyncProducer
		err      error
	)
	for i := 1; i <= 10; i++ {
		producer, err = sarama.NewSyncProducer(brokers, config)
		if err == nil {
			log.Info("kafka producer initialized", zap.Strings("brokers", brokers))
			return NewKafkaWithProducer(producer), nil
		}
		log.Warn("waiting for kafka", zap.Int("attempt", i), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("start kafka producer: %w", err)
}

func NewKafkaWithProducer(p sarama.SyncProducer) *Kafka {
	return &Kafka{producer: p}
}

func (k *Kafka) Publish(_ context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", e.Topic(), err)
	}

	msg := &sarama.ProducerMessage{
		Topic: e.Topic(),
		Key:   sarama.StringEncoder(e.Key()),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := k.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send %s: %w", e.Topic(), err)
	}
	return nil
}

func (k *Kafka) Close() error {
	return k.producer.Close()
}
