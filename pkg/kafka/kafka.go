package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	LendingTopic = "lending-events"
)

type EventType string

const (
	EventLoanCreated     EventType = "LOAN_CREATED"
	EventLoanReturned    EventType = "LOAN_RETURNED"
	EventLoanOverdue     EventType = "LOAN_OVERDUE"
	EventBookContributed EventType = "BOOK_CONTRIBUTED"
	EventBookDeleted     EventType = "BOOK_DELETED"
)

// EventLending is the audit record published for every
// state-changing lending operation.
type EventLending struct {
	Timestamp time.Time `json:"timestamp"`
	EventType EventType `json:"event_type"`
	UserID    string    `json:"user_id"`
	BookID    string    `json:"book_id"`
	LoanID    string    `json:"loan_id,omitempty"`
}

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
