package event

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"
)

// Publisher emits engine events. A NopPublisher stands in when RabbitMQ is
// not configured so callers never need nil checks.
type Publisher interface {
	Publish(eventType string, payload interface{})
	Close()
}

type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPPublisher(amqpURL, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish is best-effort: a broker hiccup must never fail the request that
// triggered the event.
func (p *AMQPPublisher) Publish(eventType string, payload interface{}) {
	body, err := json.Marshal(map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		log.Printf("event %s: marshal failed: %v", eventType, err)
		return
	}
	err = p.channel.Publish(p.exchange, eventType, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Printf("event %s: publish failed: %v", eventType, err)
	}
}

func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

type NopPublisher struct{}

func (NopPublisher) Publish(string, interface{}) {}
func (NopPublisher) Close()                      {}
