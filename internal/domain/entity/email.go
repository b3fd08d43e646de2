package entity

import (
	"time"
)

// Email delivery status
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// EmailMessage is what the email collaborator delivers
type EmailMessage struct {
	To      string `bson:"to" json:"to"`
	Subject string `bson:"subject" json:"subject"`
	HTML    string `bson:"html" json:"html"`
	Text    string `bson:"text" json:"text"`
}

// EmailLog records one outgoing notification and how delivery went
type EmailLog struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Kind        string       `bson:"kind" json:"kind"`
	Message     EmailMessage `bson:"message" json:"message"`
	Status      string       `bson:"status" json:"status"`
	ProviderID  string       `bson:"providerId,omitempty" json:"providerId,omitempty"`
	ErrorDetail string       `bson:"errorDetail,omitempty" json:"errorDetail,omitempty"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	SentAt      *time.Time   `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
}

// DomainEvent is published to the message broker
type DomainEvent struct {
	Type        string                 `json:"type"`
	AggregateID string                 `json:"aggregateId"`
	OccurredAt  time.Time              `json:"occurredAt"`
	Data        map[string]interface{} `json:"data,omitempty"`
}
