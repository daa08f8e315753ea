package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

// BookingEvent is published when a booking is created or closed.
type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    string    `json:"booking_id"`
	FlightNumber string    `json:"flight_number"`
	SeatNumber   int       `json:"seat_number"`
	CabinClass   string    `json:"cabin_class"`
	Passenger    string    `json:"passenger"`
	Total        string    `json:"total"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// FlightEvent is published on flight creation and lifecycle transitions.
type FlightEvent struct {
	Type         string    `json:"type"`
	FlightNumber string    `json:"flight_number"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func (p *Producer) PublishWithRetry(ctx context.Context, topic, key string, payload interface{}, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if err := p.Publish(ctx, topic, key, payload); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if i < maxRetries-1 {
			time.Sleep(time.Duration(i+1) * 500 * time.Millisecond)
		}
	}
	return fmt.Errorf("publish failed after %d retries: %w", maxRetries, lastErr)
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
