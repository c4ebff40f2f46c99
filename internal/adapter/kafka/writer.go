package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/coastalwx/marine-forecast-etl/internal/config"
	"github.com/coastalwx/marine-forecast-etl/internal/domain"
)

// schemaVersion identifies the record layout for downstream consumers.
const schemaVersion = "marine.forecast.v1"

// Writer produces forecast records to a Kafka topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishRecords serializes and publishes a run's forecast records in a
// single WriteMessages call.
func (w *Writer) PublishRecords(ctx context.Context, records []domain.ForecastRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a ForecastRecord into a Kafka message keyed by
// zone, so one zone's forecasts stay on one partition.
func serializeToMessage(rec domain.ForecastRecord) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize forecast record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(rec.Zone),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "zone", Value: []byte(rec.Zone)},
			{Key: "day", Value: []byte(rec.Day)},
			{Key: "schema", Value: []byte(schemaVersion)},
		},
	}, nil
}
