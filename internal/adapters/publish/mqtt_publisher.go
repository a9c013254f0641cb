package publish

import (
	"context"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTPublisher delivers payloads to an MQTT broker as retained QoS 0 messages.
type MQTTPublisher struct {
	client mqtt.Client
}

// NewMQTTPublisher connects to broker (e.g. "tcp://localhost:1883").
func NewMQTTPublisher(broker, clientID string, timeout time.Duration) (*MQTTPublisher, error) {
	if broker == "" {
		return nil, errors.New("mqtt publisher: broker is empty")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(timeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("mqtt publisher: connect %s: timed out after %s", broker, timeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt publisher: connect %s: %w", broker, err)
	}

	return &MQTTPublisher{client: client}, nil
}

func (p *MQTTPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	token := p.client.Publish(topic, 0, true, payload)

	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("mqtt publish %s: %w", topic, ctx.Err())
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, err)
	}
	return nil
}

func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
