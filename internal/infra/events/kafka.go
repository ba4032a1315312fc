package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	// ErrPublish возвращается, когда событие не удалось отправить в брокер
	ErrPublish = errors.New("events: failed to publish event")
)

// KafkaPublisher публикует события в топик Kafka. Ключ сообщения - ID филиала,
// поэтому события одного филиала попадают в одну партицию и сохраняют порядок
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher создает писателя в топик
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	message := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BranchID, 10)),
		Value: data,
		Time:  event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("%w: write: %v", ErrPublish, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
