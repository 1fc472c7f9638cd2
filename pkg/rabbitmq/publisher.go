package rabbitmq

import (
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// IPublisher is the publishing side of the broker layer.
type IPublisher interface {
	PublishMessage(message interface{}) error
	PublishToQos(topic string, qos byte, retained bool, message string) error
	Close()
}

// Publisher holds the client and default topic for publishing messages.
type Publisher struct {
	client mqtt.Client
	topic  string
}

// NewPublisher creates a Publisher over the shared MQTT client bound to a
// default topic.
func NewPublisher(client mqtt.Client, topic string) *Publisher {
	return &Publisher{
		client: client,
		topic:  topic,
	}
}

// PublishMessage publishes a message to the default topic at QoS 0.
func (p *Publisher) PublishMessage(message interface{}) error {
	messageStr, ok := message.(string)
	if !ok {
		return fmt.Errorf("invalid message format, expected string")
	}

	token := p.client.Publish(p.topic, 0, false, messageStr)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("failed to publish message: %v", token.Error())
	}

	log.Printf("Message published to topic '%s'", p.topic)
	return nil
}

// PublishToQos publishes to an explicit topic with the given QoS. Assessment
// events go out at QoS 1 so a broker hiccup never drops a result.
func (p *Publisher) PublishToQos(topic string, qos byte, retained bool, message string) error {
	token := p.client.Publish(topic, qos, retained, message)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("failed to publish message to %s: %v", topic, token.Error())
	}
	return nil
}

// Close gracefully closes the MQTT connection for the publisher.
func (p *Publisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(250)
		log.Println("MQTT client disconnected")
	}
}
