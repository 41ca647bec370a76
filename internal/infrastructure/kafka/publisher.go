package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type RequestPublisher struct {
	writer *kafka.Writer
}

func NewRequestPublisher(brokers []string, topic string) *RequestPublisher {
	return &RequestPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *RequestPublisher) PublishRequest(event RequestEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.RequestID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *RequestPublisher) Close() error {
	return p.writer.Close()
}
