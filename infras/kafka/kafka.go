package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"frontdesk/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	headerEvent       = "event"
	headerContentType = "content-type"
	contentTypeJSON   = "application/json"
	batchTimeout      = 50 * time.Millisecond
)

type Message struct {
	Key   string
	Value any
	// Event is carried as a header so consumers can route without decoding the value.
	Event string
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	headers := []kafkaGo.Header{{Key: headerContentType, Value: []byte(contentTypeJSON)}}
	if m.Event != "" {
		headers = append(headers, kafkaGo.Header{Key: headerEvent, Value: []byte(m.Event)})
	}

	return kafkaGo.Message{
		Key:     []byte(m.Key),
		Value:   value,
		Headers: headers,
	}, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
	Close() error
}

// client keeps one writer per topic for the life of the process.
type client struct {
	newWriter func(topic string) *kafkaGo.Writer

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

func New(cfg *config.Config) Client {
	transport := &kafkaGo.Transport{}

	if cfg.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	addr := kafkaGo.TCP(cfg.Kafka.Brokers...)

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Bool("enabled", cfg.Kafka.Enable).Msg("Kafka client initialized")

	return &client{
		writers: map[string]*kafkaGo.Writer{},
		newWriter: func(topic string) *kafkaGo.Writer {
			return &kafkaGo.Writer{
				Addr:                   addr,
				Topic:                  topic,
				Transport:              transport,
				AllowAutoTopicCreation: true,
				Balancer:               &kafkaGo.Hash{},
				BatchTimeout:           batchTimeout,
				RequiredAcks:           kafkaGo.RequireAll,
			}
		},
	}
}

func (c *client) writer(topic string) *kafkaGo.Writer {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.writers[topic]
	if !ok {
		w = c.newWriter(topic)
		c.writers[topic] = w
	}

	return w
}

func (c *client) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return err
		}

		msgs = append(msgs, msg)
	}

	if err := c.writer(topic).WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Sent messages to Kafka.")

	return nil
}

// Close flushes and closes every writer opened so far.
func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	for topic, w := range c.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing writer for %s: %w", topic, err))
		}

		delete(c.writers, topic)
	}

	return errors.Join(errs...)
}
