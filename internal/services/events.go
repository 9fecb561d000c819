package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a lifecycle event to Kafka. Publishing is best effort:
// a missing writer or a failed write is logged and otherwise ignored.
func publishEvent(ctx context.Context, w KafkaWriter, eventType string, userID int64, detail string) {
	event := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Type:      eventType,
		UserID:    userID,
		Detail:    detail,
	}

	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(eventType)},
			{Key: "user_id", Value: []byte(strconv.FormatInt(userID, 10))},
		},
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType, "user_id", userID)
	}
}
