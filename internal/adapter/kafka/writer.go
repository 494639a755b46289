// Package kafka publishes assembled disaster-news records to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
)

// Writer produces one message per record to a Kafka topic.
// It implements pipeline.Sink.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the record topic.
func NewWriter(brokers []string, topic string, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

func (w *Writer) Name() string {
	return "kafka"
}

// Write serializes and publishes every record in the envelope in a single
// WriteMessages call. An empty run publishes nothing.
func (w *Writer) Write(ctx context.Context, env domain.Envelope) error {
	if len(env.Articles) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(env.Articles))
	for i := range env.Articles {
		msg, err := serializeToMessage(env.Articles[i], env.Metadata)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	w.logger.Debug("publishing records", "topic", w.writer.Topic, "count", len(msgs))
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a record into a Kafka message keyed by its
// article link so replays of the same article land on the same partition.
func serializeToMessage(rec domain.Record, meta domain.RunMetadata) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(rec.Link),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte(rec.Source)},
			{Key: "run_timestamp", Value: []byte(meta.Timestamp)},
		},
	}, nil
}
