// SPDX-License-Identifier: GPL-3.0-only

package events

import (
	"context"
	"encoding/json"
	"lacak-server/commons"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NewPublisher connects to the broker and declares the tracking exchange.
// Returns (nil, nil) when no AMQP_URL is configured; event publishing is an
// optional sink, not a pipeline dependency.
func NewPublisher(c PublisherConfig) (*Publisher, error) {
	if c.amqpURL == "" {
		c.amqpURL = commons.GetEnv("AMQP_URL")
	}
	if c.amqpURL == "" {
		return nil, nil
	}
	if c.exchange == "" {
		c.exchange = commons.GetEnv("AMQP_EXCHANGE", "tracking.events")
	}

	conn, err := amqp.Dial(c.amqpURL)
	if err != nil {
		commons.Logger.Error("Failed to connect to RabbitMQ:", err)
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		commons.Logger.Error("Failed to open RabbitMQ channel:", err)
		return nil, err
	}

	if err := ch.ExchangeDeclare(c.exchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		commons.Logger.Errorf("Failed to declare exchange %s: %v", c.exchange, err)
		return nil, err
	}

	commons.Logger.Infof("RabbitMQ publisher initialized for exchange %s", c.exchange)
	return &Publisher{
		Exchange: c.exchange,
		Conn:     conn,
		Channel:  ch,
	}, nil
}

// Publish sends one tracking event. Failures are logged and swallowed; a
// broker outage must not fail the lookup that produced the event.
func (p *Publisher) Publish(event TrackingEvent) {
	if p == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		commons.Logger.Error("Failed to marshal tracking event:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.Channel.PublishWithContext(ctx, p.Exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		commons.Logger.Errorf("Failed to publish tracking event: %v", err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.Channel != nil {
		p.Channel.Close()
	}
	if p.Conn != nil {
		p.Conn.Close()
	}
}
