package service

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/bookloop/lending-service/pkg/kafka"
)

// Publisher emits lending events for downstream consumers (audit,
// stats). Publishing is best effort: a broker failure never fails the
// lending operation that triggered it.
type Publisher interface {
	Publish(event kafka.EventLending) error
}

func NewPublisher(producer sarama.SyncProducer) Publisher {
	return &publisherImpl{
		producer: producer,
	}
}

type publisherImpl struct {
	producer sarama.SyncProducer
}

func (p *publisherImpl) Publish(event kafka.EventLending) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: kafka.LendingTopic, Value: sarama.StringEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// NewNopPublisher is used when no broker is configured, and in tests.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

type nopPublisher struct{}

func (nopPublisher) Publish(kafka.EventLending) error { return nil }
