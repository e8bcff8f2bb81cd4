// SPDX-License-Identifier: GPL-3.0-only

package events

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

type PublisherConfig struct {
	amqpURL  string
	exchange string
}

type Publisher struct {
	Exchange string
	Conn     *amqp.Connection
	Channel  *amqp.Channel
}

// TrackingEvent is the payload fanned out for every successful lookup.
type TrackingEvent struct {
	PhoneNumber     string `json:"phone_number"`
	FormattedNumber string `json:"formatted_number"`
	Operator        string `json:"operator"`
	City            string `json:"city"`
	KeyID           string `json:"key_id"`
	Cached          bool   `json:"cached"`
	ConfidenceScore int    `json:"confidence_score"`
	TrackedAt       string `json:"tracked_at"`
}
