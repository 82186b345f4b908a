package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"civicflow/backend/models"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends stored reports to a direct exchange for downstream analysis.
type Publisher struct {
	conn       *amqp.Connection
	channel    channel
	exchange   string
	routingKey string
}

// ReportEvent is the message body published for every stored report.
type ReportEvent struct {
	Id             int64   `json:"id"`
	Location       string  `json:"location"`
	Issue          string  `json:"issue"`
	Description    string  `json:"description"`
	SentimentScore float64 `json:"sentiment_score"`
	PriorityScore  int     `json:"priority_score"`
	Status         string  `json:"status"`
	Timestamp      string  `json:"timestamp"`
}

// NewPublisher dials RabbitMQ and declares the exchange.
func NewPublisher(amqpURL, exchangeName, routingKey string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		conn:       conn,
		channel:    ch,
		exchange:   exchangeName,
		routingKey: routingKey,
	}, nil
}

// PublishReport publishes r with the configured routing key.
func (p *Publisher) PublishReport(r *models.Report) error {
	return p.Publish(ReportEvent{
		Id:             r.Id,
		Location:       r.Location,
		Issue:          r.Issue,
		Description:    r.Description,
		SentimentScore: r.SentimentScore,
		PriorityScore:  r.PriorityScore,
		Status:         string(r.Status),
		Timestamp:      r.Timestamp,
	})
}

// Publish sends a JSON message to the exchange with the configured routing key
func (p *Publisher) Publish(message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}

	err = p.channel.Publish(
		p.exchange,   // exchange
		p.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Close closes the publisher channel and connection
func (p *Publisher) Close() error {
	var err error

	if p.channel != nil {
		if channelErr := p.channel.Close(); channelErr != nil {
			log.Warnf("Failed to close channel: %v", channelErr)
			err = channelErr
		}
	}

	if p.conn != nil {
		if connErr := p.conn.Close(); connErr != nil {
			log.Warnf("Failed to close connection: %v", connErr)
			if err == nil {
				err = connErr
			}
		}
	}

	return err
}
