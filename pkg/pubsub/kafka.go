package pubsub

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/vedantpatel1997/dapr-storefront/pkg/apperrors"
	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
)

// KafkaBus implements Publisher and Subscriber on a Kafka cluster. One
// writer is kept per topic.
type KafkaBus struct {
	brokers []string

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewKafkaBus parses a comma-separated broker list.
func NewKafkaBus(brokersCSV string) *KafkaBus {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return &KafkaBus{
		brokers: brokers,
		writers: make(map[string]*kafka.Writer),
	}
}

func (b *KafkaBus) writer(topic string) *kafka.Writer {
	b.mu.Lock()
	defer b.mu.Unlock()

	w, ok := b.writers[topic]
	if !ok {
		w = &kafka.Writer{
			Addr:         kafka.TCP(b.brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		b.writers[topic] = w
	}
	return w
}

func (b *KafkaBus) Publish(ctx context.Context, topic, key string, payload []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
	}
	if err := b.writer(topic).WriteMessages(ctx, msg); err != nil {
		return &apperrors.DownstreamError{Target: "pubsub:" + topic, Op: "publish", Err: err}
	}
	return nil
}

// Subscribe consumes the topic with a consumer group until ctx is
// cancelled. A handler error is logged and the message is not redelivered
// by us; broker redelivery may still duplicate messages.
func (b *KafkaBus) Subscribe(ctx context.Context, topic, group string, handler Handler) error {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  b.brokers,
		Topic:    topic,
		GroupID:  group,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})
	defer r.Close()

	logger.L().Info("Kafka consumer started",
		zap.String("topic", topic),
		zap.String("group", group),
	)

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return &apperrors.DownstreamError{Target: "pubsub:" + topic, Op: "read", Err: err}
		}

		if err := handler(ctx, m.Value); err != nil {
			logger.L().Error("Message handler failed",
				zap.String("topic", topic),
				zap.Int64("offset", m.Offset),
				zap.Error(err),
			)
		}
	}
}

// Close releases all topic writers.
func (b *KafkaBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	for _, w := range b.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
